package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple name", input: "Alice", want: "Alice"},
		{name: "trims whitespace", input: "  Bob  ", want: "Bob"},
		{name: "allows digits and separators", input: "player_1-a b", want: "player_1-a b"},
		{name: "minimum length", input: "ab", want: "ab"},
		{name: "maximum length", input: "abcdefghij0123456789", want: "abcdefghij0123456789"},
		{name: "too short", input: "a", wantErr: true},
		{name: "too short after trim", input: "  a  ", wantErr: true},
		{name: "too long", input: "abcdefghij0123456789x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "rejects punctuation", input: "al!ce", wantErr: true},
		{name: "rejects html", input: "<script>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePlayerName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlayerName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRoomCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "uppercase letters", input: "ABCDEF"},
		{name: "letters and digits", input: "A1B2C3"},
		{name: "all digits", input: "123456"},
		{name: "lowercase rejected", input: "abcdef", wantErr: true},
		{name: "too short", input: "ABC12", wantErr: true},
		{name: "too long", input: "ABC1234", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRoomCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoomCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, RoomCode(tt.input), got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    string
		wantErr bool
	}{
		{name: "zero pads fully", input: 0, want: "0000"},
		{name: "pads short numbers", input: 7, want: "0007"},
		{name: "pads three digits", input: 123, want: "0123"},
		{name: "four digits unchanged", input: 9999, want: "9999"},
		{name: "negative rejected", input: -1, wantErr: true},
		{name: "five digits rejected", input: 10000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatNumber(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
