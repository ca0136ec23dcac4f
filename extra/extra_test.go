package extra_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alextanhongpin/genrand"
	"github.com/alextanhongpin/genrand/extra"
)

func TestUUID(t *testing.T) {
	t.Run("version 4 with RFC 4122 variant", func(t *testing.T) {
		assert := assert.New(t)

		r := genrand.NewSeeded(1)
		for i := 0; i < 100; i++ {
			id := extra.UUID(r)
			assert.Equal(byte(0x40), id[6]&0xf0)
			assert.Equal(byte(0x80), id[8]&0xc0)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		assert := assert.New(t)
		assert.Equal(extra.UUID(genrand.NewSeeded(2)), extra.UUID(genrand.NewSeeded(2)))
	})

	t.Run("distinct across the stream", func(t *testing.T) {
		assert := assert.New(t)

		r := genrand.NewSeeded(3)
		assert.NotEqual(extra.UUID(r), extra.UUID(r))
	})
}

func TestTime(t *testing.T) {
	assert := assert.New(t)

	r := genrand.NewSeeded(4)
	epoch := time.Unix(0, 0).UTC()
	for i := 0; i < 1_000; i++ {
		ts := extra.Time(r)
		assert.False(ts.Before(epoch))
		assert.Less(ts.Unix(), int64(1)<<35)
		assert.Equal(time.UTC, ts.Location())
	}
}

func TestDuration(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		extra.Duration(genrand.NewSeeded(5)),
		extra.Duration(genrand.NewSeeded(5)),
	)
}

func TestEnumSetOf(t *testing.T) {
	newStateEnum := func() *genrand.Enum[string] {
		return genrand.NewEnum(
			genrand.NewVariant("Running", genrand.Const("running")),
			genrand.NewVariant("Stopped", genrand.Const("stopped")),
			genrand.NewVariant("Paused", genrand.Const("paused")),
		)
	}

	t.Run("size is bounded by twice the variant count", func(t *testing.T) {
		assert := assert.New(t)

		gen := extra.EnumSetOf(newStateEnum())
		r := genrand.NewSeeded(9)

		sawEmpty := false
		for i := 0; i < 1_000; i++ {
			set := gen(r)
			assert.Less(len(set), 6)
			// Duplicates collapse: at most one entry per variant.
			assert.LessOrEqual(len(set), 3)
			for v := range set {
				assert.Contains([]string{"running", "stopped", "paused"}, v)
			}
			if len(set) == 0 {
				sawEmpty = true
			}
		}
		assert.True(sawEmpty, "a drawn length of 0 is valid and must occur")
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		assert := assert.New(t)

		gen := extra.EnumSetOf(newStateEnum())
		assert.Equal(gen(genrand.NewSeeded(10)), gen(genrand.NewSeeded(10)))
	})

	t.Run("zero-weight variants never appear", func(t *testing.T) {
		assert := assert.New(t)

		enum := genrand.NewEnum(
			genrand.NewVariant("Running", genrand.Const("running")),
			genrand.NewVariant("Stopped", genrand.Const("stopped")).WithWeight(0),
		)

		gen := extra.EnumSetOf(enum)
		r := genrand.NewSeeded(11)
		for i := 0; i < 1_000; i++ {
			assert.NotContains(gen(r), "stopped")
		}
	})
}

func TestOrderedMapOf(t *testing.T) {
	t.Run("size is bounded", func(t *testing.T) {
		assert := assert.New(t)

		gen := extra.OrderedMapOf(genrand.String, genrand.Int[int])
		r := genrand.NewSeeded(6)
		for i := 0; i < 1_000; i++ {
			assert.Less(gen(r).Len(), 8)
		}
	})

	t.Run("duplicate keys overwrite in place", func(t *testing.T) {
		assert := assert.New(t)

		gen := extra.OrderedMapOf(genrand.Const("k"), genrand.Int[int])
		r := genrand.NewSeeded(7)
		for i := 0; i < 1_000; i++ {
			assert.LessOrEqual(gen(r).Len(), 1)
		}
	})

	t.Run("preserves generation order", func(t *testing.T) {
		assert := assert.New(t)

		om := extra.OrderedMapOf(genrand.Int[uint64], genrand.Bool)(genrand.NewSeeded(8))

		r := genrand.NewSeeded(8)
		n := r.IntN(8)
		assert.Equal(n, om.Len())

		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			assert.Equal(genrand.Int[uint64](r), pair.Key)
			assert.Equal(genrand.Bool(r), pair.Value)
		}
	})
}
