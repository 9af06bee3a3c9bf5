package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"notebook-query-be/internal/bootstrap"
	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	metrics   *http.Server
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             1 * 1024 * 1024, // 1MB, queries are small
		ErrorHandler:          serverutils.ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	registerRoutes(app, container)

	s := &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
	if cfg.App.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", container.Metrics.Handler())
		s.metrics = &http.Server{
			Addr:              cfg.App.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return s
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

// Run blocks until the HTTP listener stops.
func (s *Server) Run() error {
	if s.metrics != nil {
		go func() {
			s.container.Logger.Info("server", "Metrics listener started", map[string]interface{}{"addr": s.metrics.Addr})
			if err := s.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.container.Logger.Error("server", "Metrics listener stopped", map[string]interface{}{"error": err})
			}
		}()
	}

	s.container.Logger.Info("server", "Server is running", map[string]interface{}{"addr": "http://" + s.cfg.ListenAddr()})
	return s.app.Listen(s.cfg.ListenAddr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.metrics != nil {
		if err := s.metrics.Shutdown(ctx); err != nil {
			return err
		}
	}
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.GraphQLController.RegisterRoutes(app)
}
