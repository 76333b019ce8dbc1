package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) testRoom(code model.RoomCode) *model.Room {
	return &model.Room{
		Code:  code,
		State: model.RoomStateWaiting,
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.testRoom("ABC123")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(room.Code, retrieved.Code)
}

func (s *StorageSuite) TestGetMissingRoom() {
	_, err := s.storage.GetRoom(s.ctx, "NOPE99")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("ABC123")))

	exists, err = s.storage.RoomExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoom() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("ABC123")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABC123"))

	_, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteMissingRoomIsNoop() {
	s.NoError(s.storage.DeleteRoom(s.ctx, "NOPE99"))
}

func (s *StorageSuite) TestListRooms() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("AAA111")))
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.testRoom("BBB222")))

	rooms, err := s.storage.ListRooms(s.ctx)
	s.Require().NoError(err)
	s.Len(rooms, 2)
}

func (s *StorageSuite) TestBindAndLookupConnection() {
	binding := storage.Binding{
		RoomCode:    "ABC123",
		PlayerID:    "player-1",
		DisplayName: "Alice",
	}
	s.Require().NoError(s.storage.BindConnection(s.ctx, "conn-1", binding))

	got, err := s.storage.LookupConnection(s.ctx, "conn-1")
	s.Require().NoError(err)
	s.Equal(binding, *got)
}

func (s *StorageSuite) TestLookupUnknownConnection() {
	_, err := s.storage.LookupConnection(s.ctx, "conn-x")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *StorageSuite) TestUnbindConnection() {
	binding := storage.Binding{RoomCode: "ABC123", PlayerID: "player-1"}
	s.Require().NoError(s.storage.BindConnection(s.ctx, "conn-1", binding))
	s.Require().NoError(s.storage.UnbindConnection(s.ctx, "conn-1"))

	_, err := s.storage.LookupConnection(s.ctx, "conn-1")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *StorageSuite) TestRebindOverwrites() {
	s.Require().NoError(s.storage.BindConnection(s.ctx, "conn-1", storage.Binding{RoomCode: "AAA111"}))
	s.Require().NoError(s.storage.BindConnection(s.ctx, "conn-1", storage.Binding{RoomCode: "BBB222"}))

	got, err := s.storage.LookupConnection(s.ctx, "conn-1")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("BBB222"), got.RoomCode)
}
