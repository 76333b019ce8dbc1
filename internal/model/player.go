package model

import "time"

// PlayerID uniquely identifies a player record within a room. It is stable
// across disconnects; the transient websocket connection is tracked separately
// in ConnectionID.
type PlayerID string

// ConnectionID identifies a single websocket connection. A player gets a new
// one every time they (re)connect.
type ConnectionID string

// Player represents one participant in a room
type Player struct {
	ID          PlayerID
	Conn        ConnectionID // empty while the player is disconnected
	DisplayName string
	Secret      string // zero-padded 4-digit string, empty until committed
	Ready       bool
	Guesses     []Guess
	Score       int // persists across rematches within the room
	JoinedAt    time.Time
}

// Connected reports whether the player currently has a live connection
func (p *Player) Connected() bool {
	return p.Conn != ""
}

// ResetRound clears per-round state while preserving identity and score
func (p *Player) ResetRound() {
	p.Secret = ""
	p.Ready = false
	p.Guesses = nil
}
