// Package domain holds the persisted forms of the app's entities.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by repositories for unknown maze IDs.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord represents the BSON version of a saved maze.
type MazeRecord struct {
	ID           uuid.UUID `bson:"_id"`
	Owner        string    `bson:"owner"`
	Height       int       `bson:"height"`
	Width        int       `bson:"width"`
	Seed         int64     `bson:"seed"` // two's complement of the uint64 seed
	PatternScale int       `bson:"patternScale"`
	Hex          string    `bson:"hex"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// NewMazeRecord captures m for storage.
func NewMazeRecord(id uuid.UUID, owner string, m *maze.Maze) (*MazeRecord, error) {
	if m == nil || m.Grid == nil {
		return nil, errors.New("maze is empty")
	}
	if owner == "" {
		return nil, errors.New("maze owner is empty")
	}

	scale := 0
	if m.Pattern != nil {
		scale = m.Pattern.Scale()
	}

	return &MazeRecord{
		ID:           id,
		Owner:        owner,
		Height:       m.Grid.Height(),
		Width:        m.Grid.Width(),
		Seed:         int64(m.Seed),
		PatternScale: scale,
		Hex:          maze.FormatHex(m.Grid, m.Entry, m.Exit, m.Path),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Maze rebuilds the stored maze.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	return maze.Restore(strings.NewReader(r.Hex), uint64(r.Seed), r.PatternScale)
}
