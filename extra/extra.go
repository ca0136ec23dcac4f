// Package extra provides generators for common ecosystem value types that do
// not belong in the core protocol: UUIDs, times, durations, and
// order-preserving maps.
//
// Every generator here draws exclusively from the supplied stream, so the
// core reproducibility guarantee carries over: the same seed produces the
// same UUID, the same timestamp, the same map.
package extra

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/alextanhongpin/genrand"
)

// UUID generates a random version-4 UUID from the stream. Unlike
// uuid.New(), which reads the process-global randomness source, the result
// is fully determined by the stream state.
//
// Example:
//
//	id := extra.UUID(r) // e.g. "9566c74d-1003-4c4d-bbbb-0407d1e2c649"
func UUID(r *rand.Rand) uuid.UUID {
	var id uuid.UUID
	for i := 0; i < len(id); i += 8 {
		v := r.Uint64()
		for j := 0; j < 8; j++ {
			id[i+j] = byte(v >> (8 * j))
		}
	}
	id[6] = (id[6] & 0x0f) | 0x40 // version 4
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
	return id
}

// Duration generates a uniformly distributed duration over the full int64
// range, negative values included.
func Duration(r *rand.Rand) time.Duration {
	return time.Duration(genrand.Int[int64](r))
}

// Time generates a random UTC timestamp with nanosecond precision. Seconds
// are drawn from [0, 2^35) past the Unix epoch, which spans roughly the
// years 1970 to 3058; the bound keeps timestamps within the range most
// calendar code handles.
func Time(r *rand.Rand) time.Time {
	sec := r.Int64N(1 << 35)
	nsec := r.Int64N(int64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// EnumSetOf returns a generator for a bounded set of sum-type values. The
// length is drawn uniformly from [0, 2n) where n is the enum's variant
// count, then that many values are generated by weighted selection and
// inserted. Duplicates collapse silently, so the realized size may be
// smaller than the drawn length.
//
// The bound scales with the enum rather than using the fixed collection
// bound, so small enums stay small and large enums get a chance to show
// several variants at once.
//
// Example:
//
//	states := extra.EnumSetOf(stateEnum)(r)
func EnumSetOf[T comparable](enum *genrand.Enum[T]) genrand.Gen[map[T]struct{}] {
	return func(r *rand.Rand) map[T]struct{} {
		n := r.IntN(2 * enum.NumVariants())
		res := make(map[T]struct{}, n)
		for i := 0; i < n; i++ {
			res[enum.Generate(r)] = struct{}{}
		}
		return res
	}
}

// OrderedMapOf returns a generator for a bounded mapping that preserves
// generation order. The length is drawn uniformly from [0, 8), then that
// many (key, value) pairs are generated, key before value. Duplicate keys
// overwrite the earlier value in place, so the realized size may be smaller
// than the drawn length.
//
// Example:
//
//	headers := extra.OrderedMapOf(genrand.String, genrand.String)(r)
func OrderedMapOf[K comparable, V any](keyGen genrand.Gen[K], valGen genrand.Gen[V]) genrand.Gen[*orderedmap.OrderedMap[K, V]] {
	return func(r *rand.Rand) *orderedmap.OrderedMap[K, V] {
		n := r.IntN(8)
		res := orderedmap.New[K, V](n)
		for i := 0; i < n; i++ {
			k := keyGen(r)
			res.Set(k, valGen(r))
		}
		return res
	}
}
