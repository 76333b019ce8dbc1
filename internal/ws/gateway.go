package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/breakthecode/server/internal/dependencies/random"
	"github.com/breakthecode/server/internal/model"
	"github.com/breakthecode/server/internal/services/ratelimit"
	"github.com/breakthecode/server/internal/services/room"
)

// connIDBytes sizes the per-connection identifier
const connIDBytes = 16

// Gateway terminates websocket connections, dispatches inbound events to the
// room controller, and fans controller outcomes back out as notifications.
//
// A single mutex serializes event handling (disconnects included): each
// inbound event runs to completion before the next one starts, so room
// mutations are never interleaved and no operation observes a half-applied
// update. Handlers are short and never block on the network - outbound
// messages only enter per-client buffered queues.
type Gateway struct {
	rooms    *room.Controller
	limiter  *ratelimit.Limiter
	hub      *Hub
	random   random.Random
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu sync.Mutex
}

// NewGateway creates a Gateway around the given controller and hub
func NewGateway(rooms *room.Controller, limiter *ratelimit.Limiter, hub *Hub, rnd random.Random, logger *slog.Logger) *Gateway {
	return &Gateway{
		rooms:   rooms,
		limiter: limiter,
		hub:     hub,
		random:  rnd,
		logger:  logger.With(slog.String("component", "gateway")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Same-origin enforcement happens at the reverse proxy;
				// the game carries no credentials worth forging
				return true
			},
		},
	}
}

// HandleWS upgrades the HTTP request and runs the connection's read loop
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(model.ConnectionID(g.random.Hex(connIDBytes)), conn)
	g.hub.Register(client)

	go client.writePump()
	client.readPump(g)
}

// dispatch routes one inbound envelope. Called from the client's read pump.
func (g *Gateway) dispatch(c *Client, env Envelope) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx := context.Background()

	switch env.Type {
	case model.EventCreateRoom:
		g.handleCreateRoom(ctx, c, env.Data)
	case model.EventJoinRoom:
		g.handleJoinRoom(ctx, c, env.Data)
	case model.EventSetSecret:
		g.handleSetSecret(ctx, c, env.Data)
	case model.EventMakeGuess:
		g.handleMakeGuess(ctx, c, env.Data)
	case model.EventPlayAgain:
		g.handlePlayAgain(ctx, c)
	case model.EventRejoinRoom:
		g.handleRejoinRoom(ctx, c, env.Data)
	case model.EventLeaveRoom:
		g.handleLeaveRoom(ctx, c)
	case model.EventGetRoomStats:
		g.handleRoomStats(ctx, c)
	default:
		g.sendError(c.id, fmt.Sprintf("unknown event type: %s", env.Type))
	}
}

// connectionClosed runs when a client's read pump exits for any reason
func (g *Gateway) connectionClosed(c *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.hub.Unregister(c.id)
	g.limiter.Forget(string(c.id))

	outcome, err := g.rooms.Disconnect(context.Background(), c.id)
	if err != nil {
		// Connection was never in a room; nothing to clean up
		return
	}
	g.notifyDeparture(outcome, true)
}

func (g *Gateway) handleCreateRoom(ctx context.Context, c *Client, data json.RawMessage) {
	if !g.limiter.Allow(string(c.id), "createRoom", ratelimit.MaxCreatesPerMinute) {
		g.sendError(c.id, "Too many room creation attempts. Please wait.")
		return
	}

	var req CreateRoomRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(c.id, model.ErrInvalidPlayerName.Error())
		return
	}

	rm, player, err := g.rooms.CreateRoom(ctx, c.id, req.PlayerName)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	g.send(c.id, model.EventRoomCreated, model.RoomCreatedPayload{
		RoomCode:   rm.Code,
		PlayerName: player.DisplayName,
	})
}

func (g *Gateway) handleJoinRoom(ctx context.Context, c *Client, data json.RawMessage) {
	if !g.limiter.Allow(string(c.id), "joinRoom", ratelimit.MaxJoinsPerMinute) {
		g.sendError(c.id, "Too many join attempts. Please wait.")
		return
	}

	var req JoinRoomRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(c.id, model.ErrInvalidRoomCode.Error())
		return
	}

	rm, player, err := g.rooms.JoinRoom(ctx, c.id, req.RoomCode, req.PlayerName)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	g.send(c.id, model.EventRoomJoined, model.RoomJoinedPayload{
		RoomCode:   rm.Code,
		PlayerName: player.DisplayName,
	})
	g.sendToOthers(rm, player.ID, model.EventPlayerJoined, model.PlayerJoinedPayload{
		PlayerName: player.DisplayName,
	})
	g.sendToRoom(rm, model.EventRoomUpdate, model.RoomUpdatePayload{
		Players:   rm.Summaries(),
		GameState: rm.State,
	})
}

func (g *Gateway) handleSetSecret(ctx context.Context, c *Client, data json.RawMessage) {
	var req NumberRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(c.id, model.ErrInvalidNumber.Error())
		return
	}

	outcome, err := g.rooms.SetSecretNumber(ctx, c.id, req.Number)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	if !outcome.Started {
		g.send(c.id, model.EventSecretNumberSet, model.SecretNumberSetPayload{
			Message: "Secret number set! Waiting for opponent...",
		})
		g.sendToOthers(outcome.Room, outcome.Player.ID, model.EventOpponentReady, model.OpponentReadyPayload{
			Message: fmt.Sprintf("%s is ready! Set your secret number to begin.", outcome.Player.DisplayName),
		})
		return
	}

	// Game on: each player sees only their own secret
	for _, p := range outcome.Room.Players {
		g.send(p.Conn, model.EventGameStart, model.GameStartPayload{
			Message:    "Both players ready! The guessing battle begins!",
			Players:    outcome.Room.Summaries(),
			YourSecret: p.Secret,
			YourTurn:   outcome.Room.CurrentTurn == p.ID,
		})
	}
}

func (g *Gateway) handleMakeGuess(ctx context.Context, c *Client, data json.RawMessage) {
	if !g.limiter.Allow(string(c.id), "makeGuess", ratelimit.MaxGuessesPerMinute) {
		g.sendError(c.id, "Too many guesses. Please slow down.")
		return
	}

	var req NumberRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(c.id, model.ErrInvalidNumber.Error())
		return
	}

	outcome, err := g.rooms.MakeGuess(ctx, c.id, req.Number)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	if outcome.Won {
		secrets := map[string]string{
			outcome.Guesser.DisplayName:  outcome.Guesser.Secret,
			outcome.Opponent.DisplayName: outcome.Opponent.Secret,
		}
		g.sendToRoom(outcome.Room, model.EventGameWon, model.GameWonPayload{
			Winner:       outcome.Guesser.DisplayName,
			Secrets:      secrets,
			TotalGuesses: len(outcome.Guesser.Guesses),
		})
		return
	}

	g.send(c.id, model.EventGuessResult, model.GuessResultPayload{
		Guess:       outcome.Guess.Digits,
		Result:      outcome.Guess.Result,
		GuessNumber: len(outcome.Guesser.Guesses),
	})
	g.send(outcome.Opponent.Conn, model.EventOpponentGuess, model.OpponentGuessPayload{
		PlayerName:  outcome.Guesser.DisplayName,
		Guess:       outcome.Guess.Digits,
		Result:      outcome.Guess.Result,
		GuessNumber: len(outcome.Guesser.Guesses),
		YourTurn:    true,
	})
}

func (g *Gateway) handlePlayAgain(ctx context.Context, c *Client) {
	rm, player, err := g.rooms.PlayAgain(ctx, c.id)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	g.sendToRoom(rm, model.EventNewRoundStarted, model.NewRoundStartedPayload{
		Message:   fmt.Sprintf("%s wants a rematch! Set your secret numbers.", player.DisplayName),
		GameState: rm.State,
		Players:   rm.Summaries(),
		Scores:    scoresByName(rm),
	})
}

func (g *Gateway) handleRejoinRoom(ctx context.Context, c *Client, data json.RawMessage) {
	if !g.limiter.Allow(string(c.id), "joinRoom", ratelimit.MaxJoinsPerMinute) {
		g.sendError(c.id, "Too many join attempts. Please wait.")
		return
	}

	var req JoinRoomRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(c.id, model.ErrInvalidRoomCode.Error())
		return
	}

	outcome, err := g.rooms.RejoinRoom(ctx, c.id, req.RoomCode, req.PlayerName)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}

	rm := outcome.Room
	g.send(c.id, model.EventRoomRejoined, model.RoomRejoinedPayload{
		RoomCode:   rm.Code,
		GameState:  rm.State,
		Players:    rm.Summaries(),
		Scores:     scoresByName(rm),
		YourSecret: outcome.Player.Secret,
		YourTurn:   rm.CurrentTurn == outcome.Player.ID,
		IsCreator:  outcome.IsCreator,
	})
	g.sendToOthers(rm, outcome.Player.ID, model.EventPlayerReconnected, model.PlayerReconnectedPayload{
		PlayerName: outcome.Player.DisplayName,
	})
}

func (g *Gateway) handleLeaveRoom(ctx context.Context, c *Client) {
	outcome, err := g.rooms.Leave(ctx, c.id)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}
	g.notifyDeparture(outcome, false)
}

func (g *Gateway) handleRoomStats(ctx context.Context, c *Client) {
	stats, err := g.rooms.Stats(ctx, c.id)
	if err != nil {
		g.sendError(c.id, err.Error())
		return
	}
	g.send(c.id, model.EventRoomStats, stats)
}

// notifyDeparture tells whoever is left in the room about a leave or drop
func (g *Gateway) notifyDeparture(outcome *room.DepartureOutcome, canContinue bool) {
	if outcome == nil || outcome.RoomDeleted {
		return
	}

	g.sendToRoom(outcome.Room, model.EventPlayerDisconnected, model.PlayerDisconnectedPayload{
		PlayerName:  outcome.PlayerName,
		Message:     fmt.Sprintf("%s has left the game.", outcome.PlayerName),
		CanContinue: canContinue && outcome.Latent,
	})
	g.sendToRoom(outcome.Room, model.EventRoomUpdate, model.RoomUpdatePayload{
		Players:   outcome.Room.Summaries(),
		GameState: outcome.Room.State,
	})
}

func (g *Gateway) send(conn model.ConnectionID, eventType model.EventType, payload any) {
	if conn == "" {
		return
	}
	msg, err := encode(eventType, payload)
	if err != nil {
		g.logger.Error("encode failed",
			slog.String("event", string(eventType)),
			slog.String("error", err.Error()),
		)
		return
	}
	g.hub.Send(conn, msg)
}

func (g *Gateway) sendToRoom(rm *model.Room, eventType model.EventType, payload any) {
	for _, p := range rm.Players {
		g.send(p.Conn, eventType, payload)
	}
}

func (g *Gateway) sendToOthers(rm *model.Room, except model.PlayerID, eventType model.EventType, payload any) {
	for _, p := range rm.Players {
		if p.ID == except {
			continue
		}
		g.send(p.Conn, eventType, payload)
	}
}

func (g *Gateway) sendError(conn model.ConnectionID, message string) {
	g.send(conn, model.EventError, model.ErrorPayload{Message: message})
}

func scoresByName(rm *model.Room) map[string]int {
	scores := make(map[string]int, len(rm.Players))
	for _, p := range rm.Players {
		scores[p.DisplayName] = p.Score
	}
	return scores
}
