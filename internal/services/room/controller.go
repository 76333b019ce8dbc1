package room

import (
	"context"
	"log/slog"
	"time"

	"github.com/breakthecode/server/internal/dependencies/clock"
	"github.com/breakthecode/server/internal/dependencies/random"
	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the character set used in room codes
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// playerIDBytes sizes the stable player record identifier
	playerIDBytes = 8
)

// Controller owns the room registry and the per-room state machine:
// creation, membership, secret commitment, turn-gated guessing, rematches,
// and reconnection. All mutating operations resolve the requesting
// connection first and validate before touching state.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new room Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "room")),
	}
}

// SecretOutcome reports the effect of a committed secret
type SecretOutcome struct {
	Room    *model.Room
	Player  *model.Player
	Started bool // true when this commit transitioned the room to playing
}

// GuessOutcome reports the effect of an accepted guess
type GuessOutcome struct {
	Room     *model.Room
	Guesser  *model.Player
	Opponent *model.Player
	Guess    model.Guess
	Won      bool
}

// RejoinOutcome is the snapshot handed back to a reconnecting player
type RejoinOutcome struct {
	Room      *model.Room
	Player    *model.Player
	IsCreator bool
}

// DepartureOutcome reports the effect of a leave or disconnect
type DepartureOutcome struct {
	Room        *model.Room // nil when the room was deleted
	PlayerName  string
	RoomCode    model.RoomCode
	RoomDeleted bool
	Latent      bool // record retained for a possible rejoin
}

// CreateRoom generates a unique room code and registers the creator as the
// sole player of a new room in the waiting state
func (c *Controller) CreateRoom(ctx context.Context, conn model.ConnectionID, playerName string) (*model.Room, *model.Player, error) {
	name, err := model.ValidatePlayerName(playerName)
	if err != nil {
		return nil, nil, err
	}

	// Generate a unique room code, regenerating on collision
	var code model.RoomCode
	for {
		code = model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(c.random.Hex(playerIDBytes)),
		Conn:        conn,
		DisplayName: name,
		JoinedAt:    now,
	}
	room := &model.Room{
		Code:      code,
		State:     model.RoomStateWaiting,
		Players:   []*model.Player{player},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	if err := c.bind(ctx, conn, room, player); err != nil {
		return nil, nil, err
	}

	c.logger.Info("room created",
		slog.String("room_code", string(code)),
		slog.String("player", name),
	)

	return room, player, nil
}

// JoinRoom adds a second player to a waiting room. The room transitions to
// setup as soon as the second seat is filled.
func (c *Controller) JoinRoom(ctx context.Context, conn model.ConnectionID, roomCode, playerName string) (*model.Room, *model.Player, error) {
	name, err := model.ValidatePlayerName(playerName)
	if err != nil {
		return nil, nil, err
	}
	code, err := model.ValidateRoomCode(roomCode)
	if err != nil {
		return nil, nil, err
	}

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if len(room.Players) >= model.MaxPlayersPerRoom {
		return nil, nil, model.ErrRoomFull
	}
	if room.State != model.RoomStateWaiting {
		return nil, nil, model.ErrGameInProgress
	}

	now := c.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(c.random.Hex(playerIDBytes)),
		Conn:        conn,
		DisplayName: name,
		JoinedAt:    now,
	}
	room.Players = append(room.Players, player)
	if len(room.Players) == model.MaxPlayersPerRoom {
		room.State = model.RoomStateSetup
	}
	room.UpdatedAt = now

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	if err := c.bind(ctx, conn, room, player); err != nil {
		return nil, nil, err
	}

	c.logger.Info("player joined",
		slog.String("room_code", string(code)),
		slog.String("player", name),
	)

	return room, player, nil
}

// SetSecretNumber commits a player's secret during setup. When both players
// have committed, the room transitions to playing exactly once, with the
// creator taking the first turn.
func (c *Controller) SetSecretNumber(ctx context.Context, conn model.ConnectionID, number int) (*SecretOutcome, error) {
	room, player, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, err
	}
	if room.State != model.RoomStateSetup {
		return nil, model.ErrSecretNotNeeded
	}
	secret, err := model.FormatNumber(number)
	if err != nil {
		return nil, err
	}

	player.Secret = secret
	player.Ready = true
	room.UpdatedAt = c.clock.Now()

	outcome := &SecretOutcome{Room: room, Player: player}
	if room.AllReady() {
		room.State = model.RoomStatePlaying
		room.CurrentTurn = room.Creator().ID
		room.TurnCount = 0
		room.Winner = ""
		outcome.Started = true

		c.logger.Info("game started",
			slog.String("room_code", string(room.Code)),
			slog.String("first_turn", room.Creator().DisplayName),
		)
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return outcome, nil
}

// MakeGuess evaluates a turn-gated guess against the opponent's secret.
// A guess from the player not holding the turn is rejected with no state
// effect.
func (c *Controller) MakeGuess(ctx context.Context, conn model.ConnectionID, number int) (*GuessOutcome, error) {
	room, player, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, err
	}
	if room.State != model.RoomStatePlaying {
		return nil, model.ErrNotPlaying
	}
	if room.CurrentTurn != player.ID {
		return nil, model.ErrNotYourTurn
	}
	digits, err := model.FormatNumber(number)
	if err != nil {
		return nil, err
	}
	opponent := room.Opponent(player.ID)

	guess := model.Guess{
		Digits: digits,
		Result: model.Evaluate(opponent.Secret, digits),
		At:     c.clock.Now(),
	}
	player.Guesses = append(player.Guesses, guess)
	room.TurnCount++
	room.UpdatedAt = guess.At

	outcome := &GuessOutcome{
		Room:     room,
		Guesser:  player,
		Opponent: opponent,
		Guess:    guess,
		Won:      guess.Result.Winning(),
	}

	if outcome.Won {
		room.State = model.RoomStateFinished
		room.Winner = player.ID
		room.CurrentTurn = ""
		player.Score++

		c.logger.Info("game won",
			slog.String("room_code", string(room.Code)),
			slog.String("winner", player.DisplayName),
			slog.Int("total_guesses", len(player.Guesses)),
		)
	} else {
		room.CurrentTurn = opponent.ID
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return outcome, nil
}

// PlayAgain starts a rematch from the finished state: per-round state is
// reset, scores carry over, and the room returns to setup
func (c *Controller) PlayAgain(ctx context.Context, conn model.ConnectionID) (*model.Room, *model.Player, error) {
	room, player, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, nil, err
	}
	if room.State != model.RoomStateFinished {
		return nil, nil, model.ErrNotFinished
	}

	for _, p := range room.Players {
		p.ResetRound()
	}
	room.State = model.RoomStateSetup
	room.CurrentTurn = ""
	room.TurnCount = 0
	room.Winner = ""
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	c.logger.Info("rematch started", slog.String("room_code", string(room.Code)))

	return room, player, nil
}

// RejoinRoom re-associates a new connection with a latent player record,
// matched by display name. Turn, ready state, and score survive untouched.
func (c *Controller) RejoinRoom(ctx context.Context, conn model.ConnectionID, roomCode, playerName string) (*RejoinOutcome, error) {
	name, err := model.ValidatePlayerName(playerName)
	if err != nil {
		return nil, err
	}
	code, err := model.ValidateRoomCode(roomCode)
	if err != nil {
		return nil, err
	}

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	player := room.PlayerByName(name)
	if player == nil {
		return nil, model.ErrNotAMember
	}

	// Drop any stale binding before re-pointing the record
	if player.Conn != "" {
		if err := c.storage.UnbindConnection(ctx, player.Conn); err != nil {
			return nil, err
		}
	}
	player.Conn = conn
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	if err := c.bind(ctx, conn, room, player); err != nil {
		return nil, err
	}

	c.logger.Info("player rejoined",
		slog.String("room_code", string(code)),
		slog.String("player", name),
	)

	return &RejoinOutcome{
		Room:      room,
		Player:    player,
		IsCreator: room.IsCreator(player.ID),
	}, nil
}

// Leave handles an explicit departure: the player record is removed. If a
// round was underway the room resets to waiting so a new opponent can join;
// the last departure deletes the room.
func (c *Controller) Leave(ctx context.Context, conn model.ConnectionID) (*DepartureOutcome, error) {
	room, player, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, err
	}
	if err := c.storage.UnbindConnection(ctx, conn); err != nil {
		return nil, err
	}

	room.RemovePlayer(player.ID)
	outcome := &DepartureOutcome{
		PlayerName: player.DisplayName,
		RoomCode:   room.Code,
	}

	if room.ConnectedCount() == 0 {
		if err := c.storage.DeleteRoom(ctx, room.Code); err != nil {
			return nil, err
		}
		outcome.RoomDeleted = true

		c.logger.Info("empty room deleted", slog.String("room_code", string(room.Code)))

		return outcome, nil
	}

	// A round cannot continue one-sided; put the survivor back in waiting
	for _, p := range room.Players {
		p.ResetRound()
	}
	room.State = model.RoomStateWaiting
	room.CurrentTurn = ""
	room.TurnCount = 0
	room.Winner = ""
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	outcome.Room = room
	return outcome, nil
}

// Disconnect handles a transport-level drop. The player record is retained
// latent for the rejoin path as long as another connected player remains;
// the room is deleted once its last connected player is gone.
func (c *Controller) Disconnect(ctx context.Context, conn model.ConnectionID) (*DepartureOutcome, error) {
	room, player, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, err
	}
	if err := c.storage.UnbindConnection(ctx, conn); err != nil {
		return nil, err
	}

	player.Conn = ""
	outcome := &DepartureOutcome{
		PlayerName: player.DisplayName,
		RoomCode:   room.Code,
	}

	if room.ConnectedCount() == 0 {
		if err := c.storage.DeleteRoom(ctx, room.Code); err != nil {
			return nil, err
		}
		outcome.RoomDeleted = true

		c.logger.Info("empty room deleted", slog.String("room_code", string(room.Code)))

		return outcome, nil
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	outcome.Room = room
	outcome.Latent = true

	c.logger.Info("player disconnected",
		slog.String("room_code", string(room.Code)),
		slog.String("player", player.DisplayName),
	)

	return outcome, nil
}

// Stats returns the room snapshot for the requesting connection
func (c *Controller) Stats(ctx context.Context, conn model.ConnectionID) (*model.RoomStats, error) {
	room, _, err := c.resolve(ctx, conn)
	if err != nil {
		return nil, err
	}
	stats := room.Stats()
	return &stats, nil
}

// SweepStale removes rooms older than maxAge that have no connected players.
// Rooms with active players are never removed regardless of age.
func (c *Controller) SweepStale(ctx context.Context, maxAge time.Duration) (int, error) {
	rooms, err := c.storage.ListRooms(ctx)
	if err != nil {
		return 0, err
	}

	now := c.clock.Now()
	removed := 0
	for _, room := range rooms {
		if room.ConnectedCount() > 0 {
			continue
		}
		if now.Sub(room.CreatedAt) <= maxAge {
			continue
		}
		if err := c.storage.DeleteRoom(ctx, room.Code); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		c.logger.Info("stale rooms swept", slog.Int("removed", removed))
	}
	return removed, nil
}

// resolve maps a connection to its room and player record. Every mutating
// operation goes through here before touching any state.
func (c *Controller) resolve(ctx context.Context, conn model.ConnectionID) (*model.Room, *model.Player, error) {
	binding, err := c.storage.LookupConnection(ctx, conn)
	if err != nil {
		return nil, nil, err
	}
	room, err := c.storage.GetRoom(ctx, binding.RoomCode)
	if err != nil {
		return nil, nil, err
	}
	player := room.Player(binding.PlayerID)
	if player == nil {
		return nil, nil, model.ErrNotInRoom
	}
	return room, player, nil
}

func (c *Controller) bind(ctx context.Context, conn model.ConnectionID, room *model.Room, player *model.Player) error {
	return c.storage.BindConnection(ctx, conn, storage.Binding{
		RoomCode:    room.Code,
		PlayerID:    player.ID,
		DisplayName: player.DisplayName,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, conn model.ConnectionID, playerName string) (*model.Room, *model.Player, error)
	JoinRoom(ctx context.Context, conn model.ConnectionID, roomCode, playerName string) (*model.Room, *model.Player, error)
	SetSecretNumber(ctx context.Context, conn model.ConnectionID, number int) (*SecretOutcome, error)
	MakeGuess(ctx context.Context, conn model.ConnectionID, number int) (*GuessOutcome, error)
	PlayAgain(ctx context.Context, conn model.ConnectionID) (*model.Room, *model.Player, error)
	RejoinRoom(ctx context.Context, conn model.ConnectionID, roomCode, playerName string) (*RejoinOutcome, error)
	Leave(ctx context.Context, conn model.ConnectionID) (*DepartureOutcome, error)
	Disconnect(ctx context.Context, conn model.ConnectionID) (*DepartureOutcome, error)
	Stats(ctx context.Context, conn model.ConnectionID) (*model.RoomStats, error)
	SweepStale(ctx context.Context, maxAge time.Duration) (int, error)
}

var _ ControllerInterface = (*Controller)(nil)
