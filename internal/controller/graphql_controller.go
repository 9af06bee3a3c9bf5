package controller

import (
	_ "embed"
	"time"

	"notebook-query-be/internal/dto"
	"notebook-query-be/internal/graph"
	"notebook-query-be/internal/pkg/logger"
	"notebook-query-be/internal/pkg/metrics"
	"notebook-query-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed console.html
var consolePage []byte

const QueryPath = "/query"

type IGraphQLController interface {
	RegisterRoutes(r fiber.Router)
	Console(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
}

type graphqlController struct {
	schema  *graphql.Schema
	appCtx  *graph.Context
	logger  logger.ILogger
	metrics *metrics.Collector
}

func NewGraphQLController(schema *graphql.Schema, appCtx *graph.Context, log logger.ILogger, m *metrics.Collector) IGraphQLController {
	return &graphqlController{
		schema:  schema,
		appCtx:  appCtx,
		logger:  log,
		metrics: m,
	}
}

func (c *graphqlController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Console)
	r.Post(QueryPath, c.Query)
}

func (c *graphqlController) Console(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")
	return ctx.Send(consolePage)
}

func (c *graphqlController) Query(ctx *fiber.Ctx) error {
	start := time.Now()

	var req dto.GraphQLRequest
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), &req); err != nil {
		return c.badRequest(ctx, start, "request body must be a JSON object with a query field")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return c.badRequest(ctx, start, err.Error())
	}

	reqCtx := graph.WithContext(ctx.UserContext(), c.appCtx)
	resp := c.schema.Exec(reqCtx, req.Query, req.OperationName, req.Variables)
	c.recordErrors(ctx, resp)

	body, err := ctx.App().Config().JSONEncoder(resp)
	if err != nil {
		c.logger.Error("graphql", "Failed to encode query response", map[string]interface{}{
			"request_id": ctx.Locals(requestid.ConfigDefault.ContextKey),
			"error":      err,
		})
		c.metrics.ObserveRequest(metrics.OutcomeEncodeFail, time.Since(start))
		ctx.Status(fiber.StatusInternalServerError)
		return nil
	}

	c.metrics.ObserveRequest(metrics.OutcomeOK, time.Since(start))
	ctx.Set(fiber.HeaderContentType, serverutils.ContentTypeJSON)
	return ctx.Status(fiber.StatusOK).Send(body)
}

func (c *graphqlController) badRequest(ctx *fiber.Ctx, start time.Time, message string) error {
	c.metrics.ObserveRequest(metrics.OutcomeBadRequest, time.Since(start))
	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(message), serverutils.ContentTypeJSON)
}

// recordErrors counts field errors and logs them. Store and internal failures
// are logged with their cause, which never reaches the client.
func (c *graphqlController) recordErrors(ctx *fiber.Ctx, resp *graphql.Response) {
	for _, qe := range resp.Errors {
		code := graph.CodeOf(qe.ResolverError)
		c.metrics.FieldError(code)

		details := map[string]interface{}{
			"request_id": ctx.Locals(requestid.ConfigDefault.ContextKey),
			"code":       code,
			"message":    qe.Message,
			"path":       qe.Path,
		}
		switch code {
		case graph.CodeStoreError, graph.CodeInternal, graph.CodeContextMissing:
			details["error"] = qe.ResolverError
			c.logger.Error("graphql", "Query field failed", details)
		default:
			c.logger.Debug("graphql", "Query field returned an error", details)
		}
	}
}
