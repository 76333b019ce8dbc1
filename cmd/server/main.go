package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/breakthecode/server/internal/factory"
	"github.com/breakthecode/server/internal/web"
)

func main() {
	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	app := factory.New(factory.Config{Logger: logger})

	router := web.NewRouter(web.RouterConfig{
		Logger:  logger,
		Gateway: app.Gateway,
		Storage: app.Storage,
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Host = cfg.bind
	serverConfig.Port = cfg.port
	server := web.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			logger.Info("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Periodically remove abandoned rooms
	go sweepLoop(ctx, app, cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

func sweepLoop(ctx context.Context, app *factory.App, cfg *config, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := app.RoomController.SweepStale(ctx, cfg.roomMaxAge)
			if err != nil {
				logger.Warn("room sweep failed", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				logger.Info("swept stale rooms", slog.Int("removed", removed))
			}
		}
	}
}
