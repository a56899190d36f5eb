package maze

import "strings"

// RenderOptions selects what Render draws inside the cells.
type RenderOptions struct {
	Path    Path
	Pattern *PatternMask
	Entry   *CellPosition
	Exit    *CellPosition
}

// Render draws the grid with "+---+" walls. Entry and exit are marked
// "E" and "X", path cells ".", pattern cells "#".
func Render(g *Grid, opts RenderOptions) string {
	var b strings.Builder

	onPath := make(map[CellPosition]struct{}, len(opts.Path))
	for _, pos := range opts.Path {
		onPath[pos] = struct{}{}
	}

	// Top boundary
	b.WriteString("+")
	for col := 0; col < g.width; col++ {
		if g.Walls(CellPosition{Row: 0, Col: col}).Has(North) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := 0; row < g.height; row++ {
		// Cell row
		if g.Walls(CellPosition{Row: row, Col: 0}).Has(West) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			b.WriteString(cellBody(pos, opts, onPath))
			if g.Walls(pos).Has(East) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for col := 0; col < g.width; col++ {
			if g.Walls(CellPosition{Row: row, Col: col}).Has(South) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func cellBody(pos CellPosition, opts RenderOptions, onPath map[CellPosition]struct{}) string {
	_, walked := onPath[pos]
	switch {
	case opts.Entry != nil && *opts.Entry == pos:
		return " E "
	case opts.Exit != nil && *opts.Exit == pos:
		return " X "
	case walked:
		return " . "
	case opts.Pattern != nil && opts.Pattern.Contains(pos):
		return "###"
	default:
		return "   "
	}
}

// String renders the maze with its entry, exit, path and pattern.
func (m *Maze) String() string {
	return Render(m.Grid, RenderOptions{
		Path:    m.Path,
		Pattern: m.Pattern,
		Entry:   &m.Entry,
		Exit:    &m.Exit,
	})
}
