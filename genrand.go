// Package genrand generates random values of arbitrary, possibly nested,
// data types for property-based testing and fuzz-style test generation.
//
// A generator is a plain function from a randomness stream to a value:
//
//	type Gen[T any] func(r *rand.Rand) T
//
// Primitive generators sample directly from the stream; composite generators
// (Option, SliceOf, MapOf, tuples, ...) recursively invoke inner generators
// in a fixed left-to-right order. Generation is a pure function of the
// generator and the stream state: the same seed always produces the same
// value, which makes generated inputs reproducible in regression tests.
//
// Sum types are modeled by Enum, which selects a variant by non-negative
// integer weight before generating that variant's payload.
//
// Example:
//
//	type User struct {
//		Name    string
//		Age     uint8
//		Aliases []string
//	}
//
//	userGen := func(r *rand.Rand) User {
//		return User{
//			Name:    genrand.String(r),
//			Age:     genrand.Int[uint8](r),
//			Aliases: genrand.SliceOf(genrand.String)(r),
//		}
//	}
//
//	u := userGen(genrand.NewSeeded(42))
package genrand

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Gen generates a random value of type T from the given randomness stream.
// Every generator in this package is a Gen, and user-written generators
// compose with them freely.
//
// The stream is owned by the caller and consumed strictly left-to-right;
// generators never retain it between calls.
type Gen[T any] func(r *rand.Rand) T

// Policy constants of the generation scheme. They bound generated collections
// so that instances stay small and printable; they are not caller-tunable.
const (
	// maxLen is the exclusive upper bound on generated collection lengths.
	maxLen = 8

	// maxStringLen is the exclusive upper bound on generated string lengths.
	maxStringLen = 32
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bool generates a random boolean with equal probability for each value.
//
// Example:
//
//	present := genrand.Bool(r)
func Bool(r *rand.Rand) bool {
	return r.IntN(2) == 1
}

// Int generates a uniformly distributed value of any fixed-width integer
// type. The full representable range of T is covered.
//
// Example:
//
//	age := genrand.Int[uint8](r)
//	id := genrand.Int[int64](r)
func Int[T constraints.Integer](r *rand.Rand) T {
	return T(r.Uint64())
}

// Float32 generates a random float32 in [0.0, 1.0).
func Float32(r *rand.Rand) float32 {
	return r.Float32()
}

// Float64 generates a random float64 in [0.0, 1.0).
func Float64(r *rand.Rand) float64 {
	return r.Float64()
}

// Rune generates a uniformly distributed Unicode scalar value.
// The surrogate range U+D800..U+DFFF is excluded, so the result is always a
// valid rune.
func Rune(r *rand.Rand) rune {
	// One code point in [0, 0x110000) minus the 0x800 surrogates.
	v := r.Int32N(0x110000 - 0x800)
	if v >= 0xD800 {
		v += 0x800
	}
	return rune(v)
}

// String generates a bounded random string: the length is drawn uniformly
// from [0, 32), then that many characters are drawn from the alphanumeric
// alphabet. The bound keeps generated instances small and printable; use a
// custom generator when the full character domain is needed.
//
// Example:
//
//	name := genrand.String(r) // e.g. "a1B2c3"
func String(r *rand.Rand) string {
	n := r.IntN(maxStringLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[r.IntN(len(alphanumeric))]
	}
	return string(b)
}

// Const returns a generator that always produces v and consumes no
// randomness.
func Const[T any](v T) Gen[T] {
	return func(r *rand.Rand) T {
		return v
	}
}

// Map returns a generator that generates a T and transforms it with fn.
// It is the glue for building struct generators out of field generators.
//
// Example:
//
//	cents := genrand.Map(genrand.Int[uint32], func(n uint32) Money {
//		return Money{Cents: n}
//	})
func Map[T, U any](gen Gen[T], fn func(T) U) Gen[U] {
	return func(r *rand.Rand) U {
		return fn(gen(r))
	}
}

// OneOf returns a generator that picks one of the given generators uniformly
// and delegates to it. For biased selection over named alternatives, use
// Enum.
//
// Example:
//
//	status := genrand.OneOf(
//		genrand.Const("active"),
//		genrand.Const("inactive"),
//	)
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("genrand: OneOf requires at least one generator")
	}
	return func(r *rand.Rand) T {
		return gens[r.IntN(len(gens))](r)
	}
}
