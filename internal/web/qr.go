package web

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/storage"
)

const qrSize = 256

// qrHandler serves a PNG QR code pointing at the join URL for a live room,
// so the second player can be pulled in by scanning the creator's screen
func qrHandler(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := model.ValidateRoomCode(mux.Vars(r)["code"])
		if err != nil {
			http.Error(w, "invalid room code", http.StatusBadRequest)
			return
		}

		exists, err := store.RoomExists(r.Context(), code)
		if err != nil || !exists {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		joinURL := fmt.Sprintf("%s://%s/?room=%s", scheme, r.Host, code)

		png, err := qrcode.Encode(joinURL, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "unable to generate QR code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(png)
	}
}
