package i

import (
	"context"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// MazeService generates, saves and loads mazes.
type MazeService interface {
	Generate(ctx context.Context, opts maze.Options) (*maze.Maze, error)
	Save(ctx context.Context, m *maze.Maze, owner string) (uuid.UUID, error)
	ByID(ctx context.Context, id uuid.UUID) (*maze.Maze, error)
}
