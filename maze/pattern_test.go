package maze

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// golden42 is the glyph placement on a 7x9 grid at scale 1.
var golden42 = []string{
	".........",
	".#.#.###.",
	".#.#...#.",
	".###.###.",
	"...#.#...",
	"...#.###.",
	".........",
}

func patternPicture(p *PatternMask, height, width int) []string {
	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for col := 0; col < width; col++ {
			if p.Contains(CellPosition{Row: row, Col: col}) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[row] = b.String()
	}
	return rows
}

func TestPatternMask(t *testing.T) {
	t.Run("Golden mask on the smallest grid", func(t *testing.T) {
		p, err := NewPatternMask(7, 9, 0)
		require.NoError(t, err)

		assert.Equal(t, golden42, patternPicture(p, 7, 9))
		assert.Equal(t, CellPosition{Row: 1, Col: 1}, p.Origin())
		assert.Equal(t, 1, p.Scale())
		assert.Len(t, p.Cells(), 20)

		assert.Len(t, p.ClosedEdges(), 42)
		assert.Equal(t, []Edge{
			NewEdge(CellPosition{Row: 5, Col: 3}, CellPosition{Row: 6, Col: 3}),
			NewEdge(CellPosition{Row: 5, Col: 7}, CellPosition{Row: 6, Col: 7}),
		}, p.OpenEdges())
	})

	t.Run("Outline closed, inside free, doors open", func(t *testing.T) {
		p, err := NewPatternMask(7, 9, 1)
		require.NoError(t, err)

		// top of the left stem of the 4
		assert.True(t, p.ForcedClosed(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 0, Col: 1}))
		assert.True(t, p.ForcedClosed(CellPosition{Row: 0, Col: 1}, CellPosition{Row: 1, Col: 1}))
		// inside the stem
		assert.False(t, p.ForcedClosed(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 2, Col: 1}))
		// between two non-glyph cells
		assert.False(t, p.ForcedClosed(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1}))

		door := CellPosition{Row: 5, Col: 3}
		below := CellPosition{Row: 6, Col: 3}
		assert.False(t, p.ForcedClosed(door, below))
		assert.True(t, p.ForcedOpen(door, below))
		assert.True(t, p.ForcedOpen(below, door))
	})

	t.Run("Grid too small for the pattern", func(t *testing.T) {
		_, err := NewPatternMask(6, 9, 1)
		require.ErrorIs(t, err, ErrUnsatisfiableMask)

		var ue *UnsatisfiableMaskError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, 6, ue.Height)
		assert.Equal(t, 9, ue.Width)

		_, err = NewPatternMask(20, 15, 2)
		assert.ErrorIs(t, err, ErrUnsatisfiableMask)
	})

	t.Run("Huge scale does not wrap around", func(t *testing.T) {
		// 7*scale+2 overflows int64 to a small value for this scale
		_, err := NewPatternMask(20, 20, 1844674407370955162)
		assert.ErrorIs(t, err, ErrUnsatisfiableMask)

		_, err = NewPatternMask(20, 20, math.MaxInt)
		assert.ErrorIs(t, err, ErrUnsatisfiableMask)
	})

	t.Run("Scaled pattern", func(t *testing.T) {
		p, err := NewPatternMask(12, 16, 2)
		require.NoError(t, err)

		assert.Len(t, p.Cells(), 80)
		assert.Equal(t, CellPosition{Row: 1, Col: 1}, p.Origin())
		assert.Len(t, p.OpenEdges(), 2)
		assert.True(t, p.ForcedOpen(CellPosition{Row: 10, Col: 6}, CellPosition{Row: 11, Col: 6}))
	})

	t.Run("Negative scale", func(t *testing.T) {
		_, err := NewPatternMask(20, 20, -1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
