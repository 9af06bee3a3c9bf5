package graph

import (
	"context"
	"fmt"

	"notebook-query-be/internal/pkg/logger"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/trace/otel"
)

type SchemaConfig struct {
	MaxDepth       int
	MaxParallelism int
}

// NewSchema validates the type graph, renders it and binds it to the root
// resolver. Any mismatch between declared fields and resolver methods is
// reported here, at startup.
func NewSchema(g TypeGraph, cfg SchemaConfig, log logger.ILogger) (*graphql.Schema, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.Tracer(otel.DefaultTracer()),
		graphql.Logger(&panicLogger{log: log}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}

	schema, err := graphql.ParseSchema(g.SDL(), &Resolver{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// panicLogger routes resolver panics recovered by the runtime to zap.
type panicLogger struct {
	log logger.ILogger
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("graph", "resolver panic", map[string]interface{}{
		"panic": fmt.Sprintf("%v", value),
	})
}
