package maze

import "strings"

// Direction is a bit set over the four sides of a cell.
// The bit values match the hexadecimal output format.
type Direction uint8

const (
	North Direction = 1 << iota // North side of a cell.
	East                        // East side of a cell.
	South                       // South side of a cell.
	West                        // West side of a cell.

	// AllWalls marks every side of a cell as closed.
	AllWalls = North | East | South | West
)

// Directions lists the sides in the order used for every neighbor
// enumeration. Carving and solving determinism depends on it.
var Directions = []Direction{North, East, South, West}

var directionDeltas = map[Direction]CellPosition{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Delta returns the row/col offset of a single direction.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Letter returns the single letter used in path strings.
func (d Direction) Letter() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Has reports whether every bit of o is set in d.
func (d Direction) Has(o Direction) bool {
	return o != 0 && d&o == o
}

// String renders the set as letters in N,E,S,W order.
func (d Direction) String() string {
	var b strings.Builder
	for _, dir := range Directions {
		if d.Has(dir) {
			b.WriteString(dir.Letter())
		}
	}
	return b.String()
}

// directionFromLetter is the inverse of Letter.
func directionFromLetter(r rune) (Direction, bool) {
	switch r {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	}
	return 0, false
}

// Cell represents a single cell in a maze grid.
// It stores which of its sides are closed by a wall.
type Cell struct {
	Walls Direction // Walls holds the closed sides of the cell.
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c Cell) HasNorthWall() bool {
	return c.Walls.Has(North)
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c Cell) HasSouthWall() bool {
	return c.Walls.Has(South)
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c Cell) HasEastWall() bool {
	return c.Walls.Has(East)
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c Cell) HasWestWall() bool {
	return c.Walls.Has(West)
}

// Open returns the sides of the cell without a wall.
func (c Cell) Open() Direction {
	return AllWalls &^ c.Walls
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Step returns the position one cell away in direction d.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// less orders positions row-major.
func (cp CellPosition) less(o CellPosition) bool {
	if cp.Row != o.Row {
		return cp.Row < o.Row
	}
	return cp.Col < o.Col
}

// Move represents a movement from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move
}

// directionBetween returns the side of a shared by a and b.
func directionBetween(a, b CellPosition) (Direction, bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
