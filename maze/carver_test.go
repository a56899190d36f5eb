package maze

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstRand always picks the first candidate.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

// reachable counts the cells connected to start through open walls.
func reachable(t *testing.T, g *Grid, start CellPosition) int {
	t.Helper()

	seen := map[CellPosition]bool{start: true}
	queue := []CellPosition{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		moves, err := g.OpenNeighbors(current)
		require.NoError(t, err)
		for _, m := range moves {
			if !seen[m.To] {
				seen[m.To] = true
				queue = append(queue, m.To)
			}
		}
	}
	return len(seen)
}

func TestCarver(t *testing.T) {
	t.Run("Scripted carve on 2x2", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		require.NoError(t, NewCarver(g, nil, firstRand{}).Carve(CellPosition{Row: 0, Col: 0}))
		assert.Equal(t, []string{"D3", "D6"}, g.HexRows())
	})

	t.Run("Spanning tree on every shape", func(t *testing.T) {
		shapes := []struct{ height, width int }{
			{2, 2}, {5, 5}, {3, 17}, {20, 11}, {2, 40},
		}
		for _, s := range shapes {
			for seed := uint64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%dx%d seed %d", s.height, s.width, seed), func(t *testing.T) {
					g, err := NewGrid(s.height, s.width)
					require.NoError(t, err)

					start := CellPosition{Row: s.height / 2, Col: s.width / 2}
					require.NoError(t, NewCarver(g, nil, NewRand(seed)).Carve(start))

					total := s.height * s.width
					assert.Equal(t, total-1, g.OpenEdges())
					assert.Equal(t, total, reachable(t, g, CellPosition{Row: 0, Col: 0}))
				})
			}
		}
	})

	t.Run("Forced-open wall is carved", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		mask := NewEdgeMask()
		mask.Open(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 0})

		require.NoError(t, NewCarver(g, mask, firstRand{}).Carve(CellPosition{Row: 0, Col: 0}))
		assert.Equal(t, []string{"BB", "C6"}, g.HexRows())
	})

	t.Run("Pattern walls are honored", func(t *testing.T) {
		for seed := uint64(1); seed <= 10; seed++ {
			g, err := NewGrid(11, 15)
			require.NoError(t, err)
			p, err := NewPatternMask(11, 15, 1)
			require.NoError(t, err)

			require.NoError(t, NewCarver(g, p, NewRand(seed)).Carve(CellPosition{Row: 0, Col: 0}))
			assert.Equal(t, 11*15-1, g.OpenEdges())

			for _, e := range p.ClosedEdges() {
				open, err := g.IsOpen(e.A, e.B)
				require.NoError(t, err)
				assert.False(t, open, "edge %v should stay closed", e)
			}
			for _, e := range p.OpenEdges() {
				open, err := g.IsOpen(e.A, e.B)
				require.NoError(t, err)
				assert.True(t, open, "edge %v should be open", e)
			}
		}
	})

	t.Run("Disconnecting mask", func(t *testing.T) {
		g, err := NewGrid(4, 4)
		require.NoError(t, err)

		mask := NewEdgeMask()
		for row := 0; row < 4; row++ {
			mask.Close(CellPosition{Row: row, Col: 1}, CellPosition{Row: row, Col: 2})
		}

		err = NewCarver(g, mask, NewRand(1)).Carve(CellPosition{Row: 0, Col: 0})
		require.ErrorIs(t, err, ErrUnsatisfiableMask)

		var ue *UnsatisfiableMaskError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, 8, ue.Visited)
		assert.Equal(t, 4, ue.Height)
		assert.Equal(t, 4, ue.Width)
	})

	t.Run("Contradicting mask", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)

		a, b := CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 2}
		mask := NewEdgeMask()
		mask.Close(a, b)
		mask.Open(a, b)

		err = NewCarver(g, mask, NewRand(3)).Carve(CellPosition{Row: 0, Col: 0})
		assert.ErrorIs(t, err, ErrUnsatisfiableMask)
	})

	t.Run("Start out of bounds", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		err = NewCarver(g, nil, NewRand(1)).Carve(CellPosition{Row: 2, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Zero(t, g.OpenEdges())
	})

	t.Run("Large grid", func(t *testing.T) {
		if testing.Short() {
			t.Skip("skipping large grid in short mode")
		}
		g, err := NewGrid(300, 300)
		require.NoError(t, err)

		require.NoError(t, NewCarver(g, nil, NewRand(99)).Carve(CellPosition{Row: 0, Col: 0}))
		assert.Equal(t, 300*300-1, g.OpenEdges())
	})
}
