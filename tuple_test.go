package genrand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alextanhongpin/genrand"
)

func TestTuples(t *testing.T) {
	t.Run("components are generated in position order", func(t *testing.T) {
		assert := assert.New(t)

		pair := genrand.TupleOf2(genrand.Int[uint64], genrand.Int[uint64])(genrand.NewSeeded(1))

		r := genrand.NewSeeded(1)
		assert.Equal(genrand.Int[uint64](r), pair.A)
		assert.Equal(genrand.Int[uint64](r), pair.B)
	})

	t.Run("heterogeneous components", func(t *testing.T) {
		assert := assert.New(t)

		gen := genrand.TupleOf3(genrand.Bool, genrand.String, genrand.Int[int8])
		v := gen(genrand.NewSeeded(2))

		assert.Less(len(v.B), 32)
		assert.IsType(int8(0), v.C)
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		assert := assert.New(t)

		gen := genrand.TupleOf4(genrand.String, genrand.Bool, genrand.Float64, genrand.Int[uint32])
		assert.Equal(gen(genrand.NewSeeded(3)), gen(genrand.NewSeeded(3)))
	})

	t.Run("twelve components in position order", func(t *testing.T) {
		assert := assert.New(t)

		u64 := genrand.Int[uint64]
		v := genrand.TupleOf12(u64, u64, u64, u64, u64, u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(4))

		r := genrand.NewSeeded(4)
		for _, got := range []uint64{v.A, v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J, v.K, v.L} {
			assert.Equal(u64(r), got)
		}
	})

	t.Run("intermediate arities", func(t *testing.T) {
		assert := assert.New(t)

		u64 := genrand.Int[uint64]
		seed := uint64(5)

		t5 := genrand.TupleOf5(u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t6 := genrand.TupleOf6(u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t7 := genrand.TupleOf7(u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t8 := genrand.TupleOf8(u64, u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t9 := genrand.TupleOf9(u64, u64, u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t10 := genrand.TupleOf10(u64, u64, u64, u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))
		t11 := genrand.TupleOf11(u64, u64, u64, u64, u64, u64, u64, u64, u64, u64, u64)(genrand.NewSeeded(seed))

		// Identical streams: every arity agrees on its shared prefix.
		assert.Equal(t5.A, t6.A)
		assert.Equal(t6.E, t7.E)
		assert.Equal(t7.G, t8.G)
		assert.Equal(t8.H, t9.H)
		assert.Equal(t9.I, t10.I)
		assert.Equal(t10.J, t11.J)
	})
}
