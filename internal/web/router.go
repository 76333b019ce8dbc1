package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/breakthecode/server/internal/middleware"
	"github.com/breakthecode/server/internal/storage"
	"github.com/breakthecode/server/internal/ws"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger  *slog.Logger
	Gateway *ws.Gateway
	Storage storage.Storage
}

// NewRouter creates the HTTP surface: the embedded client page, the
// websocket endpoint, the room share QR, and a health check
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/", indexHandler).Methods(http.MethodGet)
	r.HandleFunc("/ws", cfg.Gateway.HandleWS).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{code}/qr", qrHandler(cfg.Storage)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
