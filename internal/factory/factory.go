package factory

import (
	"io"
	"log/slog"

	"github.com/breakthecode/server/internal/dependencies/clock"
	"github.com/breakthecode/server/internal/dependencies/random"
	"github.com/breakthecode/server/internal/services/ratelimit"
	"github.com/breakthecode/server/internal/services/room"
	"github.com/breakthecode/server/internal/storage"
	"github.com/breakthecode/server/internal/storage/memory"
	"github.com/breakthecode/server/internal/ws"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RoomController *room.Controller
	RateLimiter    *ratelimit.Limiter
	Hub            *ws.Hub
	Gateway        *ws.Gateway
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store := memory.New()
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	roomController := room.NewController(store, clk, rnd, logger)
	limiter := ratelimit.New(clk)
	hub := ws.NewHub(logger)
	gateway := ws.NewGateway(roomController, limiter, hub, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		RoomController: roomController,
		RateLimiter:    limiter,
		Hub:            hub,
		Gateway:        gateway,
	}
}
