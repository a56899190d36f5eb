package repo

import (
	"context"
	"os"
	"testing"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestRepo connects to MONGO_TEST_URI or skips the test.
func newTestRepo(t *testing.T) *MazeRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	collection := "mazes_" + uuid.NewString()
	t.Cleanup(func() {
		_ = client.Database("amazeing_test").Collection(collection).Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return NewMazeRepo(client, "amazeing_test", collection)
}

func TestMazeRepo(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed := uint64(31)
	m, err := maze.Generate(maze.Options{
		Height: 6, Width: 6,
		Entry: maze.CellPosition{Row: 0, Col: 0},
		Exit:  maze.CellPosition{Row: 5, Col: 5},
		Seed:  &seed,
	})
	require.NoError(t, err)

	record, err := dmn.NewMazeRecord(uuid.New(), "operator", m)
	require.NoError(t, err)

	t.Run("Save and find", func(t *testing.T) {
		require.NoError(t, r.Save(ctx, record))

		found, err := r.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Hex, found.Hex)
		assert.Equal(t, record.Seed, found.Seed)
		assert.Equal(t, "operator", found.Owner)
	})

	t.Run("Save twice keeps one record", func(t *testing.T) {
		record.Owner = "someone-else"
		require.NoError(t, r.Save(ctx, record))

		found, err := r.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, "someone-else", found.Owner)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := r.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
	})
}
