package document

import (
	"context"
	"os"
	"testing"

	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"
	"notebook-query-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMongoRepositories(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := database.NewMongoClient(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := client.Database("notebook_query_test_" + uuid.NewString()[:8])
	defer db.Drop(ctx)

	paragraphId := bson.NewObjectID()
	notebookId := bson.NewObjectID()
	_, err = db.Collection(ParagraphCollection).InsertOne(ctx, model.ParagraphDocument{
		Id: paragraphId, Code: "1 + 1", Result: "2",
	})
	require.NoError(t, err)
	_, err = db.Collection(NotebookCollection).InsertOne(ctx, model.NotebookDocument{
		Id: notebookId, Name: "Demo", Paragraphs: []string{paragraphId.Hex()},
	})
	require.NoError(t, err)

	notebooks := NewNotebookRepository(db)
	paragraphs := NewParagraphRepository(db)

	t.Run("find notebook by id", func(t *testing.T) {
		nb, err := notebooks.FindById(ctx, notebookId.Hex())
		require.NoError(t, err)
		assert.Equal(t, notebookId.Hex(), nb.Id)
		assert.Equal(t, "Demo", nb.Name)
		assert.Equal(t, []string{paragraphId.Hex()}, nb.Paragraphs)
	})

	t.Run("missing notebook", func(t *testing.T) {
		_, err := notebooks.FindById(ctx, bson.NewObjectID().Hex())
		assert.ErrorIs(t, err, contract.ErrNotFound)
	})

	t.Run("malformed notebook id", func(t *testing.T) {
		_, err := notebooks.FindById(ctx, "abc123")
		assert.ErrorIs(t, err, contract.ErrMalformedId)
	})

	t.Run("find all notebooks", func(t *testing.T) {
		all, err := notebooks.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, notebookId.Hex(), all[0].Id)
	})

	t.Run("find paragraph by id", func(t *testing.T) {
		p, err := paragraphs.FindById(ctx, paragraphId.Hex())
		require.NoError(t, err)
		assert.Equal(t, "1 + 1", p.Code)
		assert.Equal(t, "2", p.Result)
	})
}
