package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Display name constraints, matching what the browser client enforces
const (
	MinPlayerNameLength = 2
	MaxPlayerNameLength = 20
)

var (
	playerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)
	roomCodePattern   = regexp.MustCompile(`^[A-Z0-9]{6}$`)
)

// ValidatePlayerName trims and validates a display name, returning the
// normalized form
func ValidatePlayerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < MinPlayerNameLength || len(trimmed) > MaxPlayerNameLength {
		return "", ErrInvalidPlayerName
	}
	if !playerNamePattern.MatchString(trimmed) {
		return "", ErrInvalidPlayerName
	}
	return trimmed, nil
}

// ValidateRoomCode checks that a code is exactly six characters of [A-Z0-9]
func ValidateRoomCode(code string) (RoomCode, error) {
	if !roomCodePattern.MatchString(code) {
		return "", ErrInvalidRoomCode
	}
	return RoomCode(code), nil
}

// FormatNumber converts a wire integer into the canonical zero-padded
// 4-digit string. Secrets and guesses travel as integers 0-9999.
func FormatNumber(n int) (string, error) {
	if n < 0 || n > 9999 {
		return "", ErrInvalidNumber
	}
	return fmt.Sprintf("%04d", n), nil
}
