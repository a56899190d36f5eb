package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	seed := uint64(4)
	m, err := maze.Generate(maze.Options{
		Height: 7, Width: 9,
		Entry: maze.CellPosition{Row: 0, Col: 0},
		Exit:  maze.CellPosition{Row: 6, Col: 8},
		Seed:  &seed, Pattern: true,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, writeOutput(path, m))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dump, err := maze.ReadHex(f)
	require.NoError(t, err)
	assert.Equal(t, m.Grid.HexRows(), dump.Grid.HexRows())
	assert.Equal(t, m.Path.Directions(), dump.Directions)
}

func TestWriteOutputBadPath(t *testing.T) {
	seed := uint64(4)
	m, err := maze.Generate(maze.Options{
		Height: 3, Width: 3,
		Entry: maze.CellPosition{Row: 0, Col: 0},
		Exit:  maze.CellPosition{Row: 2, Col: 2},
		Seed:  &seed,
	})
	require.NoError(t, err)

	assert.Error(t, writeOutput(filepath.Join(t.TempDir(), "missing", "maze.txt"), m))
}
