package genrand

import "math/rand/v2"

// Option returns a generator for an optional value. One boolean is drawn
// first: on true the inner value is generated and returned behind a pointer,
// on false the result is nil and the inner generator is never invoked, so an
// absent value consumes exactly one draw.
//
// Example:
//
//	nickname := genrand.Option(genrand.String)(r) // *string, nil about half the time
func Option[T any](gen Gen[T]) Gen[*T] {
	return func(r *rand.Rand) *T {
		if !Bool(r) {
			return nil
		}
		v := gen(r)
		return &v
	}
}

// Ptr returns a generator that generates the inner value and wraps it behind
// a pointer. The result is never nil and no additional randomness is
// consumed; this is plain heap indirection, not optionality.
func Ptr[T any](gen Gen[T]) Gen[*T] {
	return func(r *rand.Rand) *T {
		v := gen(r)
		return &v
	}
}

// Repeat returns a generator for a fixed-size sequence: exactly n independent
// inner values, generated in index order.
//
// Example:
//
//	ipv4 := genrand.Repeat(4, genrand.Int[byte])(r) // always 4 bytes
func Repeat[T any](n int, gen Gen[T]) Gen[[]T] {
	return func(r *rand.Rand) []T {
		res := make([]T, n)
		for i := range res {
			res[i] = gen(r)
		}
		return res
	}
}

// SliceOf returns a generator for a bounded dynamic sequence. The length is
// drawn uniformly from [0, 8), then that many inner values are generated in
// order. A drawn length of 0 yields an empty slice with no inner calls.
//
// Example:
//
//	tags := genrand.SliceOf(genrand.String)(r) // 0 to 7 strings
func SliceOf[T any](gen Gen[T]) Gen[[]T] {
	return func(r *rand.Rand) []T {
		n := r.IntN(maxLen)
		res := make([]T, n)
		for i := range res {
			res[i] = gen(r)
		}
		return res
	}
}

// SetOf returns a generator for a bounded set. The length is drawn uniformly
// from [0, 8), then that many inner values are generated and inserted.
// Duplicates collapse silently, so the realized size may be smaller than the
// drawn length; the drawn values are never re-drawn to compensate, which
// keeps generation reproducible.
func SetOf[T comparable](gen Gen[T]) Gen[map[T]struct{}] {
	return func(r *rand.Rand) map[T]struct{} {
		n := r.IntN(maxLen)
		res := make(map[T]struct{}, n)
		for i := 0; i < n; i++ {
			res[gen(r)] = struct{}{}
		}
		return res
	}
}

// MapOf returns a generator for a bounded mapping. The length is drawn
// uniformly from [0, 8), then that many (key, value) pairs are generated,
// key before value. Duplicate keys collapse silently with later draws
// overwriting earlier ones, so the realized size may be smaller than the
// drawn length.
//
// Example:
//
//	scores := genrand.MapOf(genrand.String, genrand.Int[int])(r)
func MapOf[K comparable, V any](keyGen Gen[K], valGen Gen[V]) Gen[map[K]V] {
	return func(r *rand.Rand) map[K]V {
		n := r.IntN(maxLen)
		res := make(map[K]V, n)
		for i := 0; i < n; i++ {
			k := keyGen(r)
			res[k] = valGen(r)
		}
		return res
	}
}
