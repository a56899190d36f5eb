package maze

import (
	"fmt"
)

// Rand is the source of randomness used to pick the next cell to carve.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Carver turns a fully walled grid into a perfect maze using an iterative
// recursive backtracker.
type Carver struct {
	grid *Grid
	mask Mask
	rng  Rand
}

// frame is one entry of the carving stack.
type frame struct {
	pos CellPosition
}

// NewCarver creates a carver over grid. mask may be nil.
func NewCarver(grid *Grid, mask Mask, rng Rand) *Carver {
	return &Carver{
		grid: grid,
		mask: mask,
		rng:  rng,
	}
}

func (c *Carver) forcedClosed(a, b CellPosition) bool {
	return c.mask != nil && c.mask.ForcedClosed(a, b)
}

func (c *Carver) forcedOpen(a, b CellPosition) bool {
	return c.mask != nil && c.mask.ForcedOpen(a, b)
}

// Carve opens walls starting from start until every reachable cell has been
// visited. It returns an *UnsatisfiableMaskError when the mask keeps some
// cells out of the tree or a forced-open wall could not be carved.
func (c *Carver) Carve(start CellPosition) error {
	if err := c.grid.checkBounds(start); err != nil {
		return err
	}

	total := c.grid.height * c.grid.width
	visited := make([]bool, total)
	stack := make([]frame, 0, total)
	candidates := make([]Move, 0, len(Directions))
	forced := make([]Move, 0, len(Directions))

	visited[c.grid.index(start)] = true
	visitedCount := 1
	stack = append(stack, frame{pos: start})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		candidates = candidates[:0]
		forced = forced[:0]

		for _, dir := range Directions {
			next := top.pos.Step(dir)
			if !c.grid.InBound(next) || visited[c.grid.index(next)] {
				continue
			}
			if c.forcedClosed(top.pos, next) {
				continue
			}
			move := Move{From: top.pos, To: next, Direction: dir}
			candidates = append(candidates, move)
			if c.forcedOpen(top.pos, next) {
				forced = append(forced, move)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// Forced-open walls are taken as soon as one endpoint is on top of
		// the stack; later the other endpoint could already be in the tree.
		choices := candidates
		if len(forced) > 0 {
			choices = forced
		}
		move := choices[c.rng.IntN(len(choices))]

		if err := c.grid.OpenWall(move.From, move.To); err != nil {
			return err
		}
		visited[c.grid.index(move.To)] = true
		visitedCount++
		stack = append(stack, frame{pos: move.To})
	}

	if visitedCount != total {
		return &UnsatisfiableMaskError{
			Height:  c.grid.height,
			Width:   c.grid.width,
			Visited: visitedCount,
			Reason:  "mask disconnects the grid",
		}
	}

	return c.verifyMask()
}

// verifyMask checks every wall against the mask after carving.
func (c *Carver) verifyMask() error {
	if c.mask == nil {
		return nil
	}
	for row := 0; row < c.grid.height; row++ {
		for col := 0; col < c.grid.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			for _, dir := range []Direction{East, South} {
				nbr := pos.Step(dir)
				if !c.grid.InBound(nbr) {
					continue
				}
				open := !c.grid.Walls(pos).Has(dir)
				if open && c.mask.ForcedClosed(pos, nbr) {
					return &UnsatisfiableMaskError{
						Height: c.grid.height,
						Width:  c.grid.width,
						Reason: fmt.Sprintf("forced-closed wall (%d,%d)-(%d,%d) is open", pos.Row, pos.Col, nbr.Row, nbr.Col),
					}
				}
				if !open && c.mask.ForcedOpen(pos, nbr) {
					return &UnsatisfiableMaskError{
						Height: c.grid.height,
						Width:  c.grid.width,
						Reason: fmt.Sprintf("forced-open wall (%d,%d)-(%d,%d) could not be carved", pos.Row, pos.Col, nbr.Row, nbr.Col),
					}
				}
			}
		}
	}
	return nil
}
