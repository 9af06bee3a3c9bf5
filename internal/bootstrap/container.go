package bootstrap

import (
	"notebook-query-be/internal/config"
	"notebook-query-be/internal/controller"
	"notebook-query-be/internal/graph"
	"notebook-query-be/internal/pkg/logger"
	"notebook-query-be/internal/pkg/metrics"
	"notebook-query-be/internal/repository/contract"
	"notebook-query-be/internal/tracer"
)

// Repositories is the store adapter chosen at startup.
type Repositories struct {
	Notebooks  contract.NotebookRepository
	Paragraphs contract.ParagraphRepository
}

type Container struct {
	Logger  logger.ILogger
	Metrics *metrics.Collector

	// Context is shared by every request; it is not modified after NewContainer returns.
	Context *graph.Context

	GraphQLController controller.IGraphQLController
}

func NewContainer(cfg *config.Config, repos Repositories, log logger.ILogger) (*Container, error) {
	appCtx := graph.NewContext(repos.Notebooks, repos.Paragraphs)

	schema, err := graph.NewSchema(graph.DefaultTypeGraph(), graph.SchemaConfig{
		MaxDepth:       cfg.GraphQL.MaxDepth,
		MaxParallelism: cfg.GraphQL.MaxParallelism,
	}, log)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector(tracer.ServiceName)

	return &Container{
		Logger:            log,
		Metrics:           collector,
		Context:           appCtx,
		GraphQLController: controller.NewGraphQLController(schema, appCtx, log, collector),
	}, nil
}
