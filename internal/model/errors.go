package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrInvalidPlayerName = errors.New("invalid player name: use 2-20 characters, letters, numbers, spaces, hyphens, underscores only")
	ErrInvalidRoomCode   = errors.New("invalid room code format")
	ErrInvalidNumber     = errors.New("number must be exactly 4 digits")

	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrGameInProgress = errors.New("game is already in progress")
	ErrNotInRoom      = errors.New("connection is not in a room")
	ErrNotAMember     = errors.New("no player with that name in the room")

	// Game errors
	ErrNotYourTurn     = errors.New("not your turn")
	ErrSecretNotNeeded = errors.New("secrets can only be set during setup")
	ErrNotPlaying      = errors.New("no game in progress")
	ErrNotFinished     = errors.New("game is not finished")
)
