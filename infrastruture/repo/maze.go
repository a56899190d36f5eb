package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout = time.Second
	findTimeout = 2 * time.Second
)

var _ i.MazeRepo = &MazeRepo{}

// MazeRepo handles the persistence of saved mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or replaces a maze record.
func (m *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"owner":        record.Owner,
			"height":       record.Height,
			"width":        record.Width,
			"seed":         record.Seed,
			"patternScale": record.PatternScale,
			"hex":          record.Hex,
			"createdAt":    record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a maze record by its ID.
func (m *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &record, nil
}
