package maze

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HexDump is the content of a maze output file.
type HexDump struct {
	Grid       *Grid
	Entry      CellPosition
	Exit       CellPosition
	Directions string // shortest path as N/E/S/W letters
}

// Path rebuilds the cell path from the recorded directions.
func (d *HexDump) Path() (Path, error) {
	return PathFromDirections(d.Grid, d.Entry, d.Directions)
}

// WriteHex writes the grid as one hex digit per cell and row per line,
// followed by an empty line, the entry and exit as "x,y" and the path
// letters.
func WriteHex(w io.Writer, g *Grid, entry, exit CellPosition, path Path) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.HexRows() {
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "\n%d,%d\n%d,%d\n%s\n",
		entry.Col, entry.Row, exit.Col, exit.Row, path.Directions()); err != nil {
		return err
	}
	return bw.Flush()
}

// FormatHex returns the WriteHex output as a string.
func FormatHex(g *Grid, entry, exit CellPosition, path Path) string {
	var b strings.Builder
	_ = WriteHex(&b, g, entry, exit, path)
	return b.String()
}

// ReadHex parses a maze output file and validates its wall structure.
func ReadHex(r io.Reader) (*HexDump, error) {
	scanner := bufio.NewScanner(r)

	var rows []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		rows = append(rows, line)
	}

	var trailer []string
	for scanner.Scan() {
		trailer = append(trailer, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no grid rows", ErrMalformedHex)
	}
	if len(trailer) < 2 {
		return nil, fmt.Errorf("%w: missing entry or exit line", ErrMalformedHex)
	}

	grid, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHex, err)
	}
	for row, line := range rows {
		if len(line) != grid.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedHex, row, len(line), grid.width)
		}
		for col, ch := range line {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not a hex digit", ErrMalformedHex, row, col, ch)
			}
			grid.cells[row*grid.width+col] = Cell{Walls: Direction(v)}
		}
	}
	if err := grid.validateWalls(); err != nil {
		return nil, err
	}

	entry, err := ParseXY(trailer[0])
	if err != nil {
		return nil, fmt.Errorf("%w: entry: %w", ErrMalformedHex, err)
	}
	exit, err := ParseXY(trailer[1])
	if err != nil {
		return nil, fmt.Errorf("%w: exit: %w", ErrMalformedHex, err)
	}
	if err := grid.checkBounds(entry); err != nil {
		return nil, fmt.Errorf("%w: entry: %w", ErrMalformedHex, err)
	}
	if err := grid.checkBounds(exit); err != nil {
		return nil, fmt.Errorf("%w: exit: %w", ErrMalformedHex, err)
	}

	dump := &HexDump{Grid: grid, Entry: entry, Exit: exit}
	if len(trailer) > 2 {
		dump.Directions = trailer[2]
	}
	return dump, nil
}

// validateWalls checks wall symmetry and the closed outer border.
func (g *Grid) validateWalls() error {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			walls := g.Walls(pos)
			for _, dir := range Directions {
				nbr := pos.Step(dir)
				if !g.InBound(nbr) {
					if !walls.Has(dir) {
						return fmt.Errorf("%w: border wall %s of (%d,%d) is open", ErrMalformedHex, dir.Letter(), row, col)
					}
					continue
				}
				if walls.Has(dir) != g.Walls(nbr).Has(dir.Opposite()) {
					return fmt.Errorf("%w: wall %s of (%d,%d) disagrees with its neighbor", ErrMalformedHex, dir.Letter(), row, col)
				}
			}
		}
	}
	return nil
}

// ParseXY reads "x,y" into a position with x as the column.
func ParseXY(s string) (CellPosition, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return CellPosition{}, fmt.Errorf("%q is not in x,y format", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return CellPosition{}, fmt.Errorf("x of %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return CellPosition{}, fmt.Errorf("y of %q: %w", s, err)
	}
	return CellPosition{Row: y, Col: x}, nil
}

// Restore rebuilds a maze from its hex dump. patternScale 0 means the maze
// was generated without the pattern.
func Restore(r io.Reader, seed uint64, patternScale int) (*Maze, error) {
	dump, err := ReadHex(r)
	if err != nil {
		return nil, err
	}
	path, err := dump.Path()
	if err != nil {
		return nil, fmt.Errorf("%w: path: %w", ErrMalformedHex, err)
	}
	if len(path) == 0 || path[len(path)-1] != dump.Exit {
		return nil, fmt.Errorf("%w: path does not end at the exit", ErrMalformedHex)
	}

	m := &Maze{
		Grid:  dump.Grid,
		Entry: dump.Entry,
		Exit:  dump.Exit,
		Path:  path,
		Seed:  seed,
	}
	if patternScale > 0 {
		if m.Pattern, err = NewPatternMask(dump.Grid.height, dump.Grid.width, patternScale); err != nil {
			return nil, err
		}
	}
	return m, nil
}
