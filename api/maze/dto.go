// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/amazeing/maze"
)

// Point is a cell in x (column), y (row) form.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func pointFrom(pos maze.CellPosition) Point {
	return Point{X: pos.Col, Y: pos.Row}
}

func (p Point) position() maze.CellPosition {
	return maze.CellPosition{Row: p.Y, Col: p.X}
}

// GenerateRequest describes the maze to build.
type GenerateRequest struct {
	Height       int     `json:"height" binding:"required"`
	Width        int     `json:"width" binding:"required"`
	Entry        Point   `json:"entry"`
	Exit         Point   `json:"exit"`
	Seed         *uint64 `json:"seed,omitempty"`
	Pattern      *bool   `json:"pattern,omitempty"` // defaults to true
	PatternScale int     `json:"pattern_scale,omitempty"`
}

// Options converts the request into generation options.
func (r GenerateRequest) Options() maze.Options {
	pattern := true
	if r.Pattern != nil {
		pattern = *r.Pattern
	}
	return maze.Options{
		Height:       r.Height,
		Width:        r.Width,
		Entry:        r.Entry.position(),
		Exit:         r.Exit.position(),
		Seed:         r.Seed,
		Pattern:      pattern,
		PatternScale: r.PatternScale,
	}
}

// MazeResponse represents a generated or stored maze.
type MazeResponse struct {
	ID        string   `json:"id,omitempty"`
	Seed      uint64   `json:"seed"`
	Height    int      `json:"height"`
	Width     int      `json:"width"`
	Entry     Point    `json:"entry"`
	Exit      Point    `json:"exit"`
	Rows      []string `json:"rows"`
	Path      string   `json:"path"`
	PathCells []Point  `json:"path_cells"`
	Steps     int      `json:"steps"`
	ASCII     string   `json:"ascii"`
}

func newMazeResponse(m *maze.Maze) *MazeResponse {
	cells := make([]Point, len(m.Path))
	for idx, pos := range m.Path {
		cells[idx] = pointFrom(pos)
	}
	return &MazeResponse{
		Seed:      m.Seed,
		Height:    m.Grid.Height(),
		Width:     m.Grid.Width(),
		Entry:     pointFrom(m.Entry),
		Exit:      pointFrom(m.Exit),
		Rows:      m.Grid.HexRows(),
		Path:      m.Path.Directions(),
		PathCells: cells,
		Steps:     m.Path.Steps(),
		ASCII:     m.String(),
	}
}

// SavedResponse is returned after persisting a maze.
type SavedResponse struct {
	ID   string        `json:"id"`
	Maze *MazeResponse `json:"maze"`
}
