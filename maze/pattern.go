package maze

import "fmt"

// glyph42 is the fixed "42" bitmap. '#' pixels belong to a digit.
// Columns 0-2 hold the "4", column 3 is blank, columns 4-6 hold the "2".
var glyph42 = [...]string{
	"#.#.###",
	"#.#...#",
	"###.###",
	"..#.#..",
	"..#.###",
}

const (
	glyphRows = len(glyph42)
	glyphCols = 7

	defaultPatternScale = 1
)

// glyphDigits are the column spans of each digit in glyph42.
var glyphDigits = []struct{ first, last int }{{0, 2}, {4, 6}}

// PatternMask draws the "42" glyph into the wall structure.
//
// Every wall between a glyph cell and a non-glyph cell is forced closed,
// outlining the digits. Each digit gets one forced-open door on the south
// wall of its bottom-right cell so the carver can still reach every cell.
type PatternMask struct {
	EdgeMask
	cells  map[CellPosition]struct{}
	top    int
	left   int
	scale  int
	height int
	width  int
}

var _ Mask = &PatternMask{}

// NewPatternMask places the glyph, scaled by scale (0 means 1), centered on
// a height×width grid.
func NewPatternMask(height, width, scale int) (*PatternMask, error) {
	if scale == 0 {
		scale = defaultPatternScale
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: pattern scale %d", ErrInvalidDimensions, scale)
	}

	// Compared by division so a huge scale cannot overflow.
	if scale > (height-2)/glyphRows || scale > (width-2)/glyphCols {
		return nil, &UnsatisfiableMaskError{
			Height: height,
			Width:  width,
			Reason: fmt.Sprintf("pattern at scale %d does not fit a %dx%d grid", scale, height, width),
		}
	}

	p := &PatternMask{
		EdgeMask: *NewEdgeMask(),
		cells:    make(map[CellPosition]struct{}),
		top:      (height - glyphRows*scale) / 2,
		left:     (width - glyphCols*scale) / 2,
		scale:    scale,
		height:   height,
		width:    width,
	}

	for r, line := range glyph42 {
		for c, px := range line {
			if px != '#' {
				continue
			}
			for dr := 0; dr < scale; dr++ {
				for dc := 0; dc < scale; dc++ {
					p.cells[CellPosition{Row: p.top + r*scale + dr, Col: p.left + c*scale + dc}] = struct{}{}
				}
			}
		}
	}

	for pos := range p.cells {
		for _, dir := range Directions {
			nbr := pos.Step(dir)
			if !p.Contains(nbr) {
				p.Close(pos, nbr)
			}
		}
	}

	for _, digit := range glyphDigits {
		door := CellPosition{
			Row: p.top + glyphRows*scale - 1,
			Col: p.left + digit.last*scale + scale - 1,
		}
		below := door.Step(South)
		delete(p.closed, NewEdge(door, below))
		p.Open(door, below)
	}

	return p, nil
}

// Contains reports whether pos is part of the glyph.
func (p *PatternMask) Contains(pos CellPosition) bool {
	_, ok := p.cells[pos]
	return ok
}

// Cells returns the glyph cells in row-major order.
func (p *PatternMask) Cells() []CellPosition {
	cells := make([]CellPosition, 0, len(p.cells))
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if p.Contains(pos) {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}

// Scale returns the pixel size of the glyph.
func (p *PatternMask) Scale() int {
	return p.scale
}

// Origin returns the top-left corner of the glyph box.
func (p *PatternMask) Origin() CellPosition {
	return CellPosition{Row: p.top, Col: p.left}
}
