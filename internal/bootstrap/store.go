package bootstrap

import (
	"context"
	"fmt"

	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/logger"
	"notebook-query-be/internal/repository/document"
	"notebook-query-be/internal/repository/implementation"
	"notebook-query-be/internal/repository/memory"
	"notebook-query-be/pkg/database"
)

// OpenStore connects the configured driver once for the life of the process.
// The returned close function releases the connection pool.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, log logger.ILogger) (Repositories, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Driver {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return Repositories{}, noop, err
		}
		db := client.Database(cfg.Name)
		log.Info("bootstrap", "Connected to MongoDB", map[string]interface{}{"database": cfg.Name})
		return Repositories{
			Notebooks:  document.NewNotebookRepository(db),
			Paragraphs: document.NewParagraphRepository(db),
		}, client.Disconnect, nil

	case config.DriverPostgres:
		db, err := database.NewGormDBFromDSN(cfg.Connection)
		if err != nil {
			return Repositories{}, noop, fmt.Errorf("connect postgres: %w", err)
		}
		log.Info("bootstrap", "Connected to PostgreSQL", nil)
		closeFn := func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return Repositories{
			Notebooks:  implementation.NewNotebookRepository(db),
			Paragraphs: implementation.NewParagraphRepository(db),
		}, closeFn, nil

	case config.DriverMemory:
		store := memory.NewStore()
		if cfg.SeedFile != "" {
			if err := store.LoadSeedFile(cfg.SeedFile); err != nil {
				return Repositories{}, noop, err
			}
		}
		log.Info("bootstrap", "Using in-memory store", map[string]interface{}{"seed_file": cfg.SeedFile})
		return Repositories{
			Notebooks:  store.Notebooks(),
			Paragraphs: store.Paragraphs(),
		}, noop, nil
	}

	return Repositories{}, noop, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
