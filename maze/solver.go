package maze

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of cells from entry to exit, both included.
type Path []CellPosition

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Directions returns the path as N/E/S/W letters.
func (p Path) Directions() string {
	var b strings.Builder
	for i := 1; i < len(p); i++ {
		dir, ok := directionBetween(p[i-1], p[i])
		if !ok {
			b.WriteString("?")
			continue
		}
		b.WriteString(dir.Letter())
	}
	return b.String()
}

// Contains reports whether pos is on the path.
func (p Path) Contains(pos CellPosition) bool {
	for _, c := range p {
		if c == pos {
			return true
		}
	}
	return false
}

// ShortestPath runs a breadth-first search over open walls from entry and
// returns the path to exit. On a carved maze the path is unique.
func ShortestPath(g *Grid, entry, exit CellPosition) (Path, error) {
	if err := g.checkBounds(entry); err != nil {
		return nil, err
	}
	if err := g.checkBounds(exit); err != nil {
		return nil, err
	}

	cameFrom := make([]int, g.height*g.width)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	start, goal := g.index(entry), g.index(exit)
	cameFrom[start] = start

	queue := []CellPosition{entry}
	for len(queue) > 0 && cameFrom[goal] < 0 {
		current := queue[0]
		queue = queue[1:]

		walls := g.cells[g.index(current)].Walls
		for _, dir := range Directions {
			if walls.Has(dir) {
				continue
			}
			next := current.Step(dir)
			if !g.InBound(next) {
				continue
			}
			idx := g.index(next)
			if cameFrom[idx] >= 0 {
				continue
			}
			cameFrom[idx] = g.index(current)
			queue = append(queue, next)
		}
	}

	if cameFrom[goal] < 0 {
		return nil, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, entry.Row, entry.Col, exit.Row, exit.Col)
	}

	var reversed Path
	for idx := goal; ; idx = cameFrom[idx] {
		reversed = append(reversed, CellPosition{Row: idx / g.width, Col: idx % g.width})
		if idx == start {
			break
		}
	}

	path := make(Path, len(reversed))
	for i, pos := range reversed {
		path[len(reversed)-1-i] = pos
	}
	return path, nil
}

// PathFromDirections walks letters from entry, checking that every step
// crosses an open wall inside the grid.
func PathFromDirections(g *Grid, entry CellPosition, letters string) (Path, error) {
	if err := g.checkBounds(entry); err != nil {
		return nil, err
	}

	path := Path{entry}
	current := entry
	for i, r := range letters {
		dir, ok := directionFromLetter(r)
		if !ok {
			return nil, fmt.Errorf("invalid direction %q at step %d", r, i)
		}
		next := current.Step(dir)
		open, err := g.IsOpen(current, next)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if !open {
			return nil, fmt.Errorf("step %d: wall %s of (%d,%d) is closed", i, dir.Letter(), current.Row, current.Col)
		}
		path = append(path, next)
		current = next
	}
	return path, nil
}
