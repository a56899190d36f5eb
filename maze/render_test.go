package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("Entry exit and path", func(t *testing.T) {
		g := scriptedGrid(t)
		entry, exit := CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 0}
		path, err := ShortestPath(g, entry, exit)
		require.NoError(t, err)

		want := strings.Join([]string{
			"+---+---+",
			"| E   . |",
			"+---+   +",
			"| X   . |",
			"+---+---+",
			"",
		}, "\n")
		assert.Equal(t, want, Render(g, RenderOptions{Path: path, Entry: &entry, Exit: &exit}))
	})

	t.Run("Bare grid", func(t *testing.T) {
		g, err := NewGrid(2, 3)
		require.NoError(t, err)

		want := strings.Join([]string{
			"+---+---+---+",
			"|   |   |   |",
			"+---+---+---+",
			"|   |   |   |",
			"+---+---+---+",
			"",
		}, "\n")
		assert.Equal(t, want, g.String())
	})

	t.Run("Pattern cells", func(t *testing.T) {
		seed := uint64(5)
		m, err := Generate(Options{
			Height: 7, Width: 9,
			Entry: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 6, Col: 8},
			Seed: &seed, Pattern: true,
		})
		require.NoError(t, err)

		out := m.String()
		assert.Contains(t, out, " E ")
		assert.Contains(t, out, " X ")
		assert.Contains(t, out, "###")
		assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 2*7+1)
	})
}
