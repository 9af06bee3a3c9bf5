package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("graph", "query executed", map[string]interface{}{"errors": 0})
	l.Warn("graph", "field failed", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "query executed", entries[0].Message)
	assert.Equal(t, "graph", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"errors": 0}, entries[0].ContextMap()["details"])
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLoggerErrorAttachesCause(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	l := NewFromZap(zap.New(core))

	l.Error("controller", "encode failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}
