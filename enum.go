package genrand

import (
	"fmt"
	"math/rand/v2"
)

// Variant is one named alternative of a sum type, carrying a generator for
// its payload. The weight defaults to 1; see WithWeight.
type Variant[T any] struct {
	name   string
	weight int
	gen    Gen[T]
}

// NewVariant declares a variant with the default weight of 1. The payload
// generator builds the complete tagged value for this variant, generating
// its fields in declaration order.
//
// Example:
//
//	genrand.NewVariant("Leaf", func(r *rand.Rand) Tree {
//		return Tree{Value: genrand.Int[int](r)}
//	})
func NewVariant[T any](name string, gen Gen[T]) Variant[T] {
	return Variant[T]{
		name:   name,
		weight: 1,
		gen:    gen,
	}
}

// WithWeight returns a copy of the variant with the given selection weight.
// A variant with weight n is n times as likely to be selected as a variant
// with weight 1. A weight of 0 excludes the variant from weighted selection
// entirely; it remains reachable through GenerateVariant.
func (v Variant[T]) WithWeight(weight int) Variant[T] {
	v.weight = weight
	return v
}

// Name returns the variant's declared name.
func (v Variant[T]) Name() string {
	return v.name
}

// Enum generates random values of a sum type by first selecting a variant
// biased by the declared weights, then generating that variant's payload.
//
// The variant list is fixed at construction: declaration order assigns each
// variant a stable zero-based index used by VariantName and GenerateVariant.
//
// Example:
//
//	shapeGen := genrand.NewEnum(
//		genrand.NewVariant("Circle", circleGen),
//		genrand.NewVariant("Square", squareGen),
//		// Twice as likely as the others.
//		genrand.NewVariant("Point", pointGen).WithWeight(2),
//	)
//
//	s := shapeGen.Generate(r)
type Enum[T any] struct {
	variants []Variant[T]
	total    int
}

// NewEnum builds the generator for a sum type from its variants, declared in
// order. It is meant to be called once per type, not per generation call.
//
// NewEnum panics if any weight is negative. A table whose weights are all
// zero is accepted here but makes Generate panic, since no variant is
// selectable.
func NewEnum[T any](variants ...Variant[T]) *Enum[T] {
	total := 0
	for i, v := range variants {
		if v.weight < 0 {
			panic(fmt.Sprintf("genrand: variant %q (index %d) has negative weight %d", v.name, i, v.weight))
		}
		total += v.weight
	}

	return &Enum[T]{
		variants: variants,
		total:    total,
	}
}

// NumVariants returns the number of declared variants.
func (e *Enum[T]) NumVariants() int {
	return len(e.variants)
}

// VariantName returns the declared name of the variant at the given index,
// or the empty string when the index is out of range. It never panics, so it
// is safe in diagnostic call sites.
func (e *Enum[T]) VariantName(index int) string {
	if index < 0 || index >= len(e.variants) {
		return ""
	}
	return e.variants[index].name
}

// GenerateVariant generates a value pinned to the variant at the given
// index, bypassing weighted selection. An out-of-range index falls back to
// ordinary weighted generation rather than failing, keeping the call total
// over all integer inputs.
func (e *Enum[T]) GenerateVariant(r *rand.Rand, index int) T {
	if index < 0 || index >= len(e.variants) {
		return e.Generate(r)
	}
	return e.variants[index].gen(r)
}

// Generate selects a variant by weight and generates its payload. It is a
// Gen[T] and composes with the rest of the package as a method value:
//
//	genrand.SliceOf(shapeGen.Generate)
//
// Selection draws one value uniformly from [0, total weight) and walks the
// variants in declaration order, each owning the half-open interval
// [cumulative, cumulative+weight) of the draw space. Exactly one interval
// contains the draw, so the walk always selects.
//
// Generate panics when the total weight is zero: silently falling back to
// uniform selection would override an explicit weight of 0, which states
// intent to exclude a variant.
func (e *Enum[T]) Generate(r *rand.Rand) T {
	if e.total <= 0 {
		panic("genrand: enum has no selectable variant (total weight is 0)")
	}

	value := r.IntN(e.total)
	start := 0
	for _, v := range e.variants {
		end := start + v.weight
		if start <= value && value < end {
			return v.gen(r)
		}
		start = end
	}

	// Unreachable: value < total and the intervals cover [0, total).
	panic("genrand: weighted selection failed to select a variant")
}
