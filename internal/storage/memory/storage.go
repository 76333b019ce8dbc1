package memory

import (
	"context"
	"sync"

	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rooms       map[model.RoomCode]*model.Room
	connections map[model.ConnectionID]storage.Binding
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms:       make(map[model.RoomCode]*model.Room),
		connections: make(map[model.ConnectionID]storage.Binding),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = room
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok, nil
}

func (s *Storage) ListRooms(ctx context.Context) ([]*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]*model.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// Connection index operations

func (s *Storage) BindConnection(ctx context.Context, conn model.ConnectionID, binding storage.Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn] = binding
	return nil
}

func (s *Storage) LookupConnection(ctx context.Context, conn model.ConnectionID) (*storage.Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	binding, ok := s.connections[conn]
	if !ok {
		return nil, model.ErrNotInRoom
	}
	return &binding, nil
}

func (s *Storage) UnbindConnection(ctx context.Context, conn model.ConnectionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.connections, conn)
	return nil
}
