package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(v uint64) *uint64 { return &v }

func TestGenerate(t *testing.T) {
	base := Options{
		Height: 8,
		Width:  10,
		Entry:  CellPosition{Row: 0, Col: 0},
		Exit:   CellPosition{Row: 7, Col: 9},
	}

	t.Run("Same seed same maze", func(t *testing.T) {
		opts := base
		opts.Seed = seedPtr(77)

		first, err := Generate(opts)
		require.NoError(t, err)
		second, err := Generate(opts)
		require.NoError(t, err)

		assert.Equal(t, first.Grid.HexRows(), second.Grid.HexRows())
		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, uint64(77), first.Seed)
		assert.Nil(t, first.Pattern)
	})

	t.Run("Unseeded run records its seed", func(t *testing.T) {
		m, err := Generate(base)
		require.NoError(t, err)

		opts := base
		opts.Seed = seedPtr(m.Seed)
		replay, err := Generate(opts)
		require.NoError(t, err)
		assert.Equal(t, m.Grid.HexRows(), replay.Grid.HexRows())
	})

	t.Run("Pattern on the smallest grid", func(t *testing.T) {
		m, err := Generate(Options{
			Height: 7, Width: 9,
			Entry: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 6, Col: 8},
			Seed: seedPtr(42), Pattern: true,
		})
		require.NoError(t, err)
		require.NotNil(t, m.Pattern)

		assert.Equal(t, 7*9-1, m.Grid.OpenEdges())
		for _, e := range m.Pattern.ClosedEdges() {
			open, err := m.Grid.IsOpen(e.A, e.B)
			require.NoError(t, err)
			assert.False(t, open)
		}
	})

	t.Run("Pattern does not fit", func(t *testing.T) {
		m, err := Generate(Options{
			Height: 5, Width: 5,
			Entry: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 4, Col: 4},
			Seed: seedPtr(1), Pattern: true,
		})
		assert.ErrorIs(t, err, ErrUnsatisfiableMask)
		assert.Nil(t, m)
	})

	t.Run("Entry outside the grid", func(t *testing.T) {
		opts := base
		opts.Entry = CellPosition{Row: base.Height, Col: 0}

		m, err := Generate(opts)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Nil(t, m)
	})

	t.Run("Exit outside the grid", func(t *testing.T) {
		opts := base
		opts.Exit = CellPosition{Row: 0, Col: -1}

		_, err := Generate(opts)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Same endpoints", func(t *testing.T) {
		opts := base
		opts.Exit = opts.Entry

		_, err := Generate(opts)
		assert.ErrorIs(t, err, ErrSameEndpoints)
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		_, err := Generate(Options{Height: 1, Width: 10, Exit: CellPosition{Row: 0, Col: 9}})
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = Generate(Options{Height: 1 << 32, Width: 1 << 32, Exit: CellPosition{Row: 1, Col: 1}})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestOptionsCacheKey(t *testing.T) {
	opts := Options{
		Height: 5, Width: 6,
		Entry: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 4, Col: 5},
	}
	assert.Empty(t, opts.CacheKey())

	opts.Seed = seedPtr(7)
	assert.Equal(t, "5x6:0,0:4,5:7:0", opts.CacheKey())

	opts.Pattern = true
	assert.Equal(t, "5x6:0,0:4,5:7:1", opts.CacheKey())

	opts.PatternScale = 3
	assert.Equal(t, "5x6:0,0:4,5:7:3", opts.CacheKey())

	opts.PatternScale = -1
	assert.Equal(t, "5x6:0,0:4,5:7:-1", opts.CacheKey())
}
