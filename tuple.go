package genrand

import "math/rand/v2"

// Tuple2 is a fixed pair of heterogeneous values.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 is a fixed triple of heterogeneous values.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 is a fixed quadruple of heterogeneous values.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple5 is a fixed quintuple of heterogeneous values.
type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Tuple6 is a fixed sextuple of heterogeneous values.
type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Tuple7 is a fixed septuple of heterogeneous values.
type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// Tuple8 is a fixed octuple of heterogeneous values.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// Tuple9 is a fixed nonuple of heterogeneous values.
type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// Tuple10 is a fixed decuple of heterogeneous values.
type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

// Tuple11 is a fixed undecuple of heterogeneous values.
type Tuple11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

// Tuple12 is a fixed duodecuple of heterogeneous values.
type Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// TupleOf2 returns a generator that generates both components in position
// order.
//
// Example:
//
//	pair := genrand.TupleOf2(genrand.String, genrand.Int[int])(r)
func TupleOf2[A, B any](genA Gen[A], genB Gen[B]) Gen[Tuple2[A, B]] {
	return func(r *rand.Rand) Tuple2[A, B] {
		a := genA(r)
		b := genB(r)
		return Tuple2[A, B]{A: a, B: b}
	}
}

// TupleOf3 returns a generator that generates all three components in
// position order.
func TupleOf3[A, B, C any](genA Gen[A], genB Gen[B], genC Gen[C]) Gen[Tuple3[A, B, C]] {
	return func(r *rand.Rand) Tuple3[A, B, C] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		return Tuple3[A, B, C]{A: a, B: b, C: c}
	}
}

// TupleOf4 returns a generator that generates all four components in
// position order.
func TupleOf4[A, B, C, D any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D]) Gen[Tuple4[A, B, C, D]] {
	return func(r *rand.Rand) Tuple4[A, B, C, D] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		return Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d}
	}
}

// TupleOf5 returns a generator that generates all five components in
// position order.
func TupleOf5[A, B, C, D, E any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E]) Gen[Tuple5[A, B, C, D, E]] {
	return func(r *rand.Rand) Tuple5[A, B, C, D, E] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		return Tuple5[A, B, C, D, E]{A: a, B: b, C: c, D: d, E: e}
	}
}

// TupleOf6 returns a generator that generates all six components in
// position order.
func TupleOf6[A, B, C, D, E, F any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F]) Gen[Tuple6[A, B, C, D, E, F]] {
	return func(r *rand.Rand) Tuple6[A, B, C, D, E, F] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		return Tuple6[A, B, C, D, E, F]{A: a, B: b, C: c, D: d, E: e, F: f}
	}
}

// TupleOf7 returns a generator that generates all seven components in
// position order.
func TupleOf7[A, B, C, D, E, F, G any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G]) Gen[Tuple7[A, B, C, D, E, F, G]] {
	return func(r *rand.Rand) Tuple7[A, B, C, D, E, F, G] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		return Tuple7[A, B, C, D, E, F, G]{A: a, B: b, C: c, D: d, E: e, F: f, G: g}
	}
}

// TupleOf8 returns a generator that generates all eight components in
// position order.
func TupleOf8[A, B, C, D, E, F, G, H any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G], genH Gen[H]) Gen[Tuple8[A, B, C, D, E, F, G, H]] {
	return func(r *rand.Rand) Tuple8[A, B, C, D, E, F, G, H] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		h := genH(r)
		return Tuple8[A, B, C, D, E, F, G, H]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h}
	}
}

// TupleOf9 returns a generator that generates all nine components in
// position order.
func TupleOf9[A, B, C, D, E, F, G, H, I any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G], genH Gen[H], genI Gen[I]) Gen[Tuple9[A, B, C, D, E, F, G, H, I]] {
	return func(r *rand.Rand) Tuple9[A, B, C, D, E, F, G, H, I] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		h := genH(r)
		i := genI(r)
		return Tuple9[A, B, C, D, E, F, G, H, I]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h, I: i}
	}
}

// TupleOf10 returns a generator that generates all ten components in
// position order.
func TupleOf10[A, B, C, D, E, F, G, H, I, J any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G], genH Gen[H], genI Gen[I], genJ Gen[J]) Gen[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return func(r *rand.Rand) Tuple10[A, B, C, D, E, F, G, H, I, J] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		h := genH(r)
		i := genI(r)
		j := genJ(r)
		return Tuple10[A, B, C, D, E, F, G, H, I, J]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h, I: i, J: j}
	}
}

// TupleOf11 returns a generator that generates all eleven components in
// position order.
func TupleOf11[A, B, C, D, E, F, G, H, I, J, K any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G], genH Gen[H], genI Gen[I], genJ Gen[J], genK Gen[K]) Gen[Tuple11[A, B, C, D, E, F, G, H, I, J, K]] {
	return func(r *rand.Rand) Tuple11[A, B, C, D, E, F, G, H, I, J, K] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		h := genH(r)
		i := genI(r)
		j := genJ(r)
		k := genK(r)
		return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h, I: i, J: j, K: k}
	}
}

// TupleOf12 returns a generator that generates all twelve components in
// position order.
func TupleOf12[A, B, C, D, E, F, G, H, I, J, K, L any](genA Gen[A], genB Gen[B], genC Gen[C], genD Gen[D], genE Gen[E], genF Gen[F], genG Gen[G], genH Gen[H], genI Gen[I], genJ Gen[J], genK Gen[K], genL Gen[L]) Gen[Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]] {
	return func(r *rand.Rand) Tuple12[A, B, C, D, E, F, G, H, I, J, K, L] {
		a := genA(r)
		b := genB(r)
		c := genC(r)
		d := genD(r)
		e := genE(r)
		f := genF(r)
		g := genG(r)
		h := genH(r)
		i := genI(r)
		j := genJ(r)
		k := genK(r)
		l := genL(r)
		return Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h, I: i, J: j, K: k, L: l}
	}
}
