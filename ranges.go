package genrand

import "math/rand/v2"

// Range is a half-open interval [Start, End). The bounds are independent
// random values; Start is not guaranteed to be less than End.
type Range[T any] struct {
	Start T
	End   T
}

// RangeFrom is an interval bounded below only: [Start, ...).
type RangeFrom[T any] struct {
	Start T
}

// RangeTo is an interval bounded above only, exclusive: (..., End).
type RangeTo[T any] struct {
	End T
}

// RangeInclusive is a closed interval [Start, End].
type RangeInclusive[T any] struct {
	Start T
	End   T
}

// RangeToInclusive is an interval bounded above only, inclusive: (..., End].
type RangeToInclusive[T any] struct {
	End T
}

// RangeFull is the unbounded interval. It carries no bounds.
type RangeFull struct{}

// RangeOf returns a generator for a half-open range; the start bound is
// generated before the end bound.
func RangeOf[T any](gen Gen[T]) Gen[Range[T]] {
	return func(r *rand.Rand) Range[T] {
		start := gen(r)
		end := gen(r)
		return Range[T]{Start: start, End: end}
	}
}

// RangeFromOf returns a generator for a range bounded below only.
func RangeFromOf[T any](gen Gen[T]) Gen[RangeFrom[T]] {
	return func(r *rand.Rand) RangeFrom[T] {
		return RangeFrom[T]{Start: gen(r)}
	}
}

// RangeToOf returns a generator for a range bounded above only.
func RangeToOf[T any](gen Gen[T]) Gen[RangeTo[T]] {
	return func(r *rand.Rand) RangeTo[T] {
		return RangeTo[T]{End: gen(r)}
	}
}

// RangeInclusiveOf returns a generator for a closed range; the start bound is
// generated before the end bound.
func RangeInclusiveOf[T any](gen Gen[T]) Gen[RangeInclusive[T]] {
	return func(r *rand.Rand) RangeInclusive[T] {
		start := gen(r)
		end := gen(r)
		return RangeInclusive[T]{Start: start, End: end}
	}
}

// RangeToInclusiveOf returns a generator for a range bounded above only,
// inclusive.
func RangeToInclusiveOf[T any](gen Gen[T]) Gen[RangeToInclusive[T]] {
	return func(r *rand.Rand) RangeToInclusive[T] {
		return RangeToInclusive[T]{End: gen(r)}
	}
}

// RangeFullOf returns a generator for the unbounded range. It consumes no
// randomness.
func RangeFullOf() Gen[RangeFull] {
	return func(r *rand.Rand) RangeFull {
		return RangeFull{}
	}
}
