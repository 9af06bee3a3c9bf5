package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenMemoryStoreWithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notebooks":[{"_id":"abc123","name":"Demo","paragraphs":[]}]}`), 0o600))

	repos, closeFn, err := OpenStore(context.Background(),
		config.DatabaseConfig{Driver: config.DriverMemory, SeedFile: path},
		logger.NewFromZap(zap.NewNop()))
	require.NoError(t, err)
	defer closeFn(context.Background())

	nb, err := repos.Notebooks.FindById(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Demo", nb.Name)
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	_, closeFn, err := OpenStore(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, logger.NewFromZap(zap.NewNop()))
	assert.Error(t, err)
	assert.NoError(t, closeFn(context.Background()))
}

func TestNewContainer(t *testing.T) {
	log := logger.NewFromZap(zap.NewNop())
	repos, _, err := OpenStore(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, log)
	require.NoError(t, err)

	c, err := NewContainer(&config.Config{GraphQL: config.GraphQLConfig{MaxDepth: 5}}, repos, log)
	require.NoError(t, err)

	assert.NotNil(t, c.GraphQLController)
	assert.NotNil(t, c.Metrics)
	assert.Same(t, repos.Notebooks, c.Context.Notebooks())
}
