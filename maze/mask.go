package maze

import (
	"slices"
)

// Mask fixes the state of some walls before carving.
type Mask interface {
	// ForcedClosed reports whether the wall between a and b must stay closed.
	ForcedClosed(a, b CellPosition) bool
	// ForcedOpen reports whether the wall between a and b must end up open.
	ForcedOpen(a, b CellPosition) bool
}

// Edge is the unordered wall between two adjacent cells, stored with A
// before B in row-major order.
type Edge struct {
	A CellPosition
	B CellPosition
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b CellPosition) Edge {
	if b.less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

func compareEdges(x, y Edge) int {
	switch {
	case x.A != y.A:
		if x.A.less(y.A) {
			return -1
		}
		return 1
	case x.B != y.B:
		if x.B.less(y.B) {
			return -1
		}
		return 1
	}
	return 0
}

// EdgeMask is a Mask backed by explicit edge sets. The zero value is an
// empty mask.
type EdgeMask struct {
	closed map[Edge]struct{}
	open   map[Edge]struct{}
}

var _ Mask = &EdgeMask{}

// NewEdgeMask creates an empty mask.
func NewEdgeMask() *EdgeMask {
	return &EdgeMask{
		closed: make(map[Edge]struct{}),
		open:   make(map[Edge]struct{}),
	}
}

// Close forces the wall between a and b to stay closed.
func (m *EdgeMask) Close(a, b CellPosition) {
	if m.closed == nil {
		m.closed = make(map[Edge]struct{})
	}
	m.closed[NewEdge(a, b)] = struct{}{}
}

// Open forces the wall between a and b to be carved.
func (m *EdgeMask) Open(a, b CellPosition) {
	if m.open == nil {
		m.open = make(map[Edge]struct{})
	}
	m.open[NewEdge(a, b)] = struct{}{}
}

// ForcedClosed implements Mask.
func (m *EdgeMask) ForcedClosed(a, b CellPosition) bool {
	_, ok := m.closed[NewEdge(a, b)]
	return ok
}

// ForcedOpen implements Mask.
func (m *EdgeMask) ForcedOpen(a, b CellPosition) bool {
	_, ok := m.open[NewEdge(a, b)]
	return ok
}

// ClosedEdges returns the forced-closed edges in row-major order.
func (m *EdgeMask) ClosedEdges() []Edge {
	return sortedEdges(m.closed)
}

// OpenEdges returns the forced-open edges in row-major order.
func (m *EdgeMask) OpenEdges() []Edge {
	return sortedEdges(m.open)
}

func sortedEdges(set map[Edge]struct{}) []Edge {
	edges := make([]Edge, 0, len(set))
	for e := range set {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}
