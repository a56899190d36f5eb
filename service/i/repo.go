package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns dmn.ErrMazeNotFound if no record has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
