package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

// ErrNoRepo is returned by Save and ByID when the service has no repository.
var ErrNoRepo = errors.New("maze repository is not configured")

var _ i.MazeService = &Maze{}

// Maze generates mazes, caching seeded results and persisting saved ones.
type Maze struct {
	cache  i.MazeCache // optional
	repo   i.MazeRepo  // optional
	logger i.Logger
}

// NewMazeService creates a maze service. cache and repo may be nil.
func NewMazeService(cache i.MazeCache, repo i.MazeRepo, logger i.Logger) (*Maze, error) {
	if logger == nil {
		return nil, errors.New("maze service needs a logger")
	}
	return &Maze{
		cache:  cache,
		repo:   repo,
		logger: logger,
	}, nil
}

// Generate builds the maze described by opts. Seeded requests are served
// from the cache when possible; cache failures fall back to generation.
func (s *Maze) Generate(ctx context.Context, opts maze.Options) (*maze.Maze, error) {
	key := opts.CacheKey()
	if key == "" || s.cache == nil {
		return s.build(opts)
	}

	if m, ok := s.cached(ctx, key, opts); ok {
		return m, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Locking cache key %s: %v", key, err))
		return s.build(opts)
	}
	defer unlock()

	// Another instance may have filled the key while we waited.
	if m, ok := s.cached(ctx, key, opts); ok {
		return m, nil
	}

	m, err := s.build(opts)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, maze.FormatHex(m.Grid, m.Entry, m.Exit, m.Path)); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching maze %s: %v", key, err))
	}
	return m, nil
}

func (s *Maze) build(opts maze.Options) (*maze.Maze, error) {
	m, err := maze.Generate(opts)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(fmt.Sprintf("Generated %dx%d maze with seed %d, path of %d steps", opts.Height, opts.Width, m.Seed, m.Path.Steps()))
	return m, nil
}

func (s *Maze) cached(ctx context.Context, key string, opts maze.Options) (*maze.Maze, bool) {
	value, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cache key %s: %v", key, err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	scale := 0
	if opts.Pattern {
		scale = opts.PatternScale
		if scale == 0 {
			scale = 1
		}
	}
	m, err := maze.Restore(strings.NewReader(value), *opts.Seed, scale)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Discarding cached maze %s: %v", key, err))
		return nil, false
	}
	s.logger.Debug(fmt.Sprintf("Cache hit for %s", key))
	return m, true
}

// Save persists m under a new ID owned by owner.
func (s *Maze) Save(ctx context.Context, m *maze.Maze, owner string) (uuid.UUID, error) {
	if s.repo == nil {
		return uuid.Nil, ErrNoRepo
	}

	record, err := dmn.NewMazeRecord(uuid.New(), owner, m)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return uuid.Nil, fmt.Errorf("saving maze: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Saved maze %s for %s", record.ID, owner))
	return record.ID, nil
}

// ByID loads a saved maze.
func (s *Maze) ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	if s.repo == nil {
		return nil, ErrNoRepo
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := record.Maze()
	if err != nil {
		return nil, fmt.Errorf("rebuilding maze %s: %w", id, err)
	}
	return m, nil
}
