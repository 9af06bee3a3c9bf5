package main

import (
	"path/filepath"
	"testing"

	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunReturnsStoreErrors(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "false")

	core, logs := observer.New(zap.InfoLevel)
	cfg := &config.Config{
		App: config.AppConfig{Host: "127.0.0.1", Port: "0", LogFilePath: filepath.Join(t.TempDir(), "app.log")},
		Database: config.DatabaseConfig{
			Driver:   config.DriverMemory,
			SeedFile: filepath.Join(t.TempDir(), "missing.json"),
		},
	}

	err := run(cfg, logger.NewFromZap(zap.New(core)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open memory store")
	assert.Equal(t, 0, logs.FilterMessage("Server is running").Len())
}
