package model

import "time"

// RoomCode is the public 6-character identifier for joining rooms
type RoomCode string

// RoomState represents the current phase of a room
type RoomState string

const (
	RoomStateWaiting  RoomState = "waiting"  // One player, waiting for an opponent
	RoomStateSetup    RoomState = "setup"    // Both players present, committing secrets
	RoomStatePlaying  RoomState = "playing"  // Alternating guesses
	RoomStateFinished RoomState = "finished" // Someone broke the code
)

// MaxPlayersPerRoom is fixed by the game: exactly two players face off
const MaxPlayersPerRoom = 2

// Room represents a single game session
type Room struct {
	Code    RoomCode
	State   RoomState
	Players []*Player // ordered by insertion, creator first, at most two

	// Turn management, meaningful only while State is playing/finished
	CurrentTurn PlayerID // empty outside of playing
	TurnCount   int
	Winner      PlayerID // empty until someone wins

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player returns the player record with the given ID, or nil
func (r *Room) Player(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByConnection returns the player bound to the given connection, or nil
func (r *Room) PlayerByConnection(conn ConnectionID) *Player {
	for _, p := range r.Players {
		if p.Conn == conn && conn != "" {
			return p
		}
	}
	return nil
}

// PlayerByName returns the player with the given display name, or nil.
// Used by the reconnection path, where the old connection is already gone.
func (r *Room) PlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.DisplayName == name {
			return p
		}
	}
	return nil
}

// Opponent returns the other player in the room, or nil if there isn't one
func (r *Room) Opponent(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID != id {
			return p
		}
	}
	return nil
}

// Creator returns the first-inserted player. The creator takes the first
// turn of every round, rematches included.
func (r *Room) Creator() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[0]
}

// IsCreator reports whether the given player created the room
func (r *Room) IsCreator(id PlayerID) bool {
	c := r.Creator()
	return c != nil && c.ID == id
}

// ConnectedCount returns the number of players with a live connection
func (r *Room) ConnectedCount() int {
	n := 0
	for _, p := range r.Players {
		if p.Connected() {
			n++
		}
	}
	return n
}

// AllReady reports whether both players have committed a secret
func (r *Room) AllReady() bool {
	if len(r.Players) < MaxPlayersPerRoom {
		return false
	}
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// RemovePlayer deletes the player record with the given ID, preserving order
func (r *Room) RemovePlayer(id PlayerID) {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return
		}
	}
}

// PlayerSummary is the per-player view shared with the whole room.
// Secrets are deliberately absent.
type PlayerSummary struct {
	Name      string `json:"name"`
	Ready     bool   `json:"ready"`
	Connected bool   `json:"connected"`
}

// Summaries returns the opponent-safe view of all players in room order
func (r *Room) Summaries() []PlayerSummary {
	out := make([]PlayerSummary, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, PlayerSummary{
			Name:      p.DisplayName,
			Ready:     p.Ready,
			Connected: p.Connected(),
		})
	}
	return out
}

// PlayerStats is the per-player slice of a room stats snapshot
type PlayerStats struct {
	Name       string `json:"name"`
	Ready      bool   `json:"ready"`
	GuessCount int    `json:"guessCount"`
	Score      int    `json:"score"`
}

// RoomStats is the snapshot returned for a getRoomStats request
type RoomStats struct {
	RoomCode RoomCode      `json:"roomCode"`
	State    RoomState     `json:"gameState"`
	Players  []PlayerStats `json:"players"`
}

// Stats builds a stats snapshot of the room
func (r *Room) Stats() RoomStats {
	stats := RoomStats{
		RoomCode: r.Code,
		State:    r.State,
		Players:  make([]PlayerStats, 0, len(r.Players)),
	}
	for _, p := range r.Players {
		stats.Players = append(stats.Players, PlayerStats{
			Name:       p.DisplayName,
			Ready:      p.Ready,
			GuessCount: len(p.Guesses),
			Score:      p.Score,
		})
	}
	return stats
}
