package ws

import (
	"encoding/json"

	"github.com/breakthecode/server/internal/model"
)

// Envelope frames every message on the wire in both directions:
// a type tag plus a type-specific data object
type Envelope struct {
	Type model.EventType `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CreateRoomRequest is the payload of a createRoom event
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest is the payload of joinRoom and rejoinRoom events
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// NumberRequest is the payload of setSecretNumber and makeGuess events.
// Secrets and guesses travel as integers 0-9999 and are zero-padded
// server-side.
type NumberRequest struct {
	Number int `json:"number"`
}

// encode frames an outbound event. Payload marshalling of our own types
// cannot fail; an error here indicates a programming bug upstream.
func encode(eventType model.EventType, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Data: data})
}
