package maze

import (
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// seedStream is the fixed PCG stream selector; the seed picks the state.
const seedStream = 0x2a2a

// ErrSameEndpoints is returned when entry and exit coincide.
var ErrSameEndpoints = errors.New("entry and exit must be different cells")

// Options is the immutable configuration of one maze generation.
type Options struct {
	Height       int          `json:"height"`
	Width        int          `json:"width"`
	Entry        CellPosition `json:"entry"`
	Exit         CellPosition `json:"exit"`
	Seed         *uint64      `json:"seed,omitempty"`
	Pattern      bool         `json:"pattern"`
	PatternScale int          `json:"pattern_scale,omitempty"`
}

// CacheKey identifies the maze produced by seeded options. Unseeded options
// have no stable key and return "".
func (o Options) CacheKey() string {
	if o.Seed == nil {
		return ""
	}
	scale := 0
	if o.Pattern {
		scale = o.PatternScale
		if scale == 0 {
			scale = defaultPatternScale
		}
	}
	return fmt.Sprintf("%dx%d:%d,%d:%d,%d:%d:%d",
		o.Height, o.Width, o.Entry.Row, o.Entry.Col, o.Exit.Row, o.Exit.Col, *o.Seed, scale)
}

// Maze is a carved and solved maze.
type Maze struct {
	Grid    *Grid
	Entry   CellPosition
	Exit    CellPosition
	Path    Path
	Pattern *PatternMask // nil when the pattern is disabled
	Seed    uint64
}

// NewRand returns the deterministic generator used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seedStream))
}

// RandomSeed draws a seed from the runtime's random hash state.
func RandomSeed() uint64 {
	return new(maphash.Hash).Sum64()
}

// Generate builds, carves and solves a maze described by opts.
// It never returns a partially carved maze.
func Generate(opts Options) (*Maze, error) {
	grid, err := NewGrid(opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}
	if err := grid.checkBounds(opts.Entry); err != nil {
		return nil, fmt.Errorf("entry: %w", err)
	}
	if err := grid.checkBounds(opts.Exit); err != nil {
		return nil, fmt.Errorf("exit: %w", err)
	}
	if opts.Entry == opts.Exit {
		return nil, ErrSameEndpoints
	}

	seed := RandomSeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	var (
		mask    Mask
		pattern *PatternMask
	)
	if opts.Pattern {
		pattern, err = NewPatternMask(opts.Height, opts.Width, opts.PatternScale)
		if err != nil {
			return nil, err
		}
		mask = pattern
	}

	if err := NewCarver(grid, mask, NewRand(seed)).Carve(opts.Entry); err != nil {
		return nil, err
	}

	path, err := ShortestPath(grid, opts.Entry, opts.Exit)
	if err != nil {
		return nil, fmt.Errorf("solving carved maze: %w", err)
	}

	return &Maze{
		Grid:    grid,
		Entry:   opts.Entry,
		Exit:    opts.Exit,
		Path:    path,
		Pattern: pattern,
		Seed:    seed,
	}, nil
}
