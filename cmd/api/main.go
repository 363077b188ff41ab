package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/toodoo/backend/internal/config"
	"github.com/toodoo/backend/internal/database"
	"github.com/toodoo/backend/internal/handler"
	"github.com/toodoo/backend/internal/logger"
	"github.com/toodoo/backend/internal/repository"
	"github.com/toodoo/backend/internal/router"
	"github.com/toodoo/backend/internal/server"
	"github.com/toodoo/backend/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.Setup(srv, handlers)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		// The HTTP server never ran to completion; still release the pool.
		if closeErr := srv.DB.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close database connection")
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	log.Info().Msg("shutdown complete")
	return nil
}
