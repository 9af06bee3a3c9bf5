package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notebook-query-be/internal/bootstrap"
	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/logger"
	"notebook-query-be/internal/server"
	"notebook-query-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	err := run(cfg, sysLogger)
	if err != nil {
		sysLogger.Error("main", "Server exited with error", map[string]interface{}{"error": err})
	}
	// os.Exit skips deferred calls, so flush explicitly
	_ = sysLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource opened after the logger. It returns instead of
// exiting so the deferred cleanups always run.
func run(cfg *config.Config, sysLogger logger.ILogger) error {
	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Connect the store once; every request shares this pool
	repos, closeStore, err := bootstrap.OpenStore(context.Background(), cfg.Database, sysLogger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	defer closeStore(context.Background())

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, repos, sysLogger)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			sysLogger.Error("main", "Shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	// 6. Run Server
	return srv.Run()
}
