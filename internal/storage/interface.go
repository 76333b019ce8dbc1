package storage

import (
	"context"

	"github.com/breakthecode/server/internal/model"
)

// Binding is a connection index entry, routing a live connection to its
// room and player record
type Binding struct {
	RoomCode    model.RoomCode
	PlayerID    model.PlayerID
	DisplayName string
}

// Storage defines the interface for live game state. Implementations hold
// only in-process state; the game deliberately does not survive restarts.
type Storage interface {
	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)

	// Connection index operations
	BindConnection(ctx context.Context, conn model.ConnectionID, binding Binding) error
	LookupConnection(ctx context.Context, conn model.ConnectionID) (*Binding, error)
	UnbindConnection(ctx context.Context, conn model.ConnectionID) error
}
