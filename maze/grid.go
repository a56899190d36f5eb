/*
Package maze generates and solves perfect rectangular mazes.

A Grid starts with every wall closed. The Carver opens walls with an
iterative recursive backtracker until the open walls form a spanning tree,
honoring the forced walls of a Mask such as the "42" PatternMask. ShortestPath
then walks the tree breadth-first from entry to exit.

Generate runs the whole pipeline from a single Options value. WriteHex and
ReadHex handle the hexadecimal output file; Render draws an ASCII view.
*/
package maze

import (
	"fmt"
	"strings"
)

const (
	minDimension = 2
	maxCells     = 1 << 22
)

// Grid is an H×W lattice of cells with symmetric wall state.
type Grid struct {
	height int    // number of rows
	width  int    // number of columns
	cells  []Cell // row-major cells
}

// NewGrid allocates a grid with every wall closed. Grids above maxCells
// cells are rejected.
func NewGrid(height, width int) (*Grid, error) {
	if height < minDimension || width < minDimension {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrInvalidDimensions, height, width, minDimension, minDimension)
	}
	if width > maxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, height, width, maxCells)
	}

	cells := make([]Cell, height*width)
	for i := range cells {
		cells[i] = Cell{Walls: AllWalls}
	}

	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBound reports whether pos lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

func (g *Grid) checkBounds(pos CellPosition) error {
	if !g.InBound(pos) {
		return &OutOfBoundsError{Pos: pos, Height: g.height, Width: g.width}
	}
	return nil
}

func (g *Grid) index(pos CellPosition) int {
	return pos.Row*g.width + pos.Col
}

// Cell returns the cell at pos.
func (g *Grid) Cell(pos CellPosition) (Cell, error) {
	if err := g.checkBounds(pos); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(pos)], nil
}

// Walls returns the closed sides of the cell at pos. Positions outside the
// grid report every side closed.
func (g *Grid) Walls(pos CellPosition) Direction {
	if !g.InBound(pos) {
		return AllWalls
	}
	return g.cells[g.index(pos)].Walls
}

// edge validates a pair of positions and returns the side of a facing b.
func (g *Grid) edge(a, b CellPosition) (Direction, error) {
	if err := g.checkBounds(a); err != nil {
		return 0, err
	}
	if err := g.checkBounds(b); err != nil {
		return 0, err
	}
	dir, ok := directionBetween(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.Row, a.Col, b.Row, b.Col)
	}
	return dir, nil
}

// OpenWall removes the wall between two adjacent cells on both sides.
func (g *Grid) OpenWall(a, b CellPosition) error {
	dir, err := g.edge(a, b)
	if err != nil {
		return err
	}
	g.cells[g.index(a)].Walls &^= dir
	g.cells[g.index(b)].Walls &^= dir.Opposite()
	return nil
}

// IsOpen reports whether the wall between two adjacent cells is open.
func (g *Grid) IsOpen(a, b CellPosition) (bool, error) {
	dir, err := g.edge(a, b)
	if err != nil {
		return false, err
	}
	return !g.cells[g.index(a)].Walls.Has(dir), nil
}

// Neighbors returns the in-grid cells adjacent to pos in N,E,S,W order,
// whether or not the wall between them is open.
func (g *Grid) Neighbors(pos CellPosition) ([]Move, error) {
	if err := g.checkBounds(pos); err != nil {
		return nil, err
	}
	result := make([]Move, 0, len(Directions))
	for _, dir := range Directions {
		to := pos.Step(dir)
		if g.InBound(to) {
			result = append(result, Move{From: pos, To: to, Direction: dir})
		}
	}
	return result, nil
}

// OpenNeighbors returns the neighbors of pos reachable through an open wall.
func (g *Grid) OpenNeighbors(pos CellPosition) ([]Move, error) {
	moves, err := g.Neighbors(pos)
	if err != nil {
		return nil, err
	}
	walls := g.cells[g.index(pos)].Walls
	open := moves[:0]
	for _, m := range moves {
		if !walls.Has(m.Direction) {
			open = append(open, m)
		}
	}
	return open, nil
}

// OpenEdges counts the open walls between cells, each shared wall once.
func (g *Grid) OpenEdges() int {
	count := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			walls := g.cells[row*g.width+col].Walls
			if col+1 < g.width && !walls.Has(East) {
				count++
			}
			if row+1 < g.height && !walls.Has(South) {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return Render(g, RenderOptions{})
}

// rowString renders the walls of one row as hex digits.
func (g *Grid) rowString(row int) string {
	var b strings.Builder
	for col := 0; col < g.width; col++ {
		fmt.Fprintf(&b, "%X", uint8(g.cells[row*g.width+col].Walls))
	}
	return b.String()
}

// HexRows returns the grid as one hex digit per cell, one string per row.
func (g *Grid) HexRows() []string {
	rows := make([]string, g.height)
	for row := range rows {
		rows[row] = g.rowString(row)
	}
	return rows
}
