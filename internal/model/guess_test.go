package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   GuessResult
	}{
		{
			name:   "exact match",
			secret: "1234",
			guess:  "1234",
			want:   GuessResult{CorrectPlace: 4, WrongPlace: 0},
		},
		{
			name:   "no overlap",
			secret: "1234",
			guess:  "5678",
			want:   GuessResult{CorrectPlace: 0, WrongPlace: 0},
		},
		{
			name:   "swapped pair",
			secret: "1234",
			guess:  "1243",
			want:   GuessResult{CorrectPlace: 2, WrongPlace: 2},
		},
		{
			name:   "full anagram",
			secret: "1122",
			guess:  "2211",
			want:   GuessResult{CorrectPlace: 0, WrongPlace: 4},
		},
		{
			name:   "repeated secret digit not inflated",
			secret: "1111",
			guess:  "1112",
			want:   GuessResult{CorrectPlace: 3, WrongPlace: 0},
		},
		{
			name:   "repeated guess digit consumes each secret digit once",
			secret: "1123",
			guess:  "1111",
			want:   GuessResult{CorrectPlace: 2, WrongPlace: 0},
		},
		{
			name:   "exact matches claimed before displaced ones",
			secret: "1213",
			guess:  "1111",
			want:   GuessResult{CorrectPlace: 2, WrongPlace: 0},
		},
		{
			name:   "mixed exact and displaced",
			secret: "1234",
			guess:  "1324",
			want:   GuessResult{CorrectPlace: 2, WrongPlace: 2},
		},
		{
			name:   "leading zero secret",
			secret: "0012",
			guess:  "1200",
			want:   GuessResult{CorrectPlace: 0, WrongPlace: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.secret, tt.guess))
		})
	}
}

func TestEvaluateCountsNeverExceedLength(t *testing.T) {
	// Exhaustive over a digit subset keeps this fast while still covering
	// every repeated-digit shape
	digits := []byte{'1', '2', '3'}
	var all []string
	for _, a := range digits {
		for _, b := range digits {
			for _, c := range digits {
				for _, d := range digits {
					all = append(all, string([]byte{a, b, c, d}))
				}
			}
		}
	}

	for _, secret := range all {
		for _, guess := range all {
			result := Evaluate(secret, guess)
			total := result.CorrectPlace + result.WrongPlace
			assert.LessOrEqual(t, total, SecretLength, "secret=%s guess=%s", secret, guess)
			assert.Equal(t, secret == guess, result.Winning(), "secret=%s guess=%s", secret, guess)
		}
	}
}

func TestEvaluateIsSymmetricInTotalOverlap(t *testing.T) {
	// WrongPlace depends on the digit multisets, so swapping secret and guess
	// must not change the combined overlap
	pairs := [][2]string{
		{"1234", "4321"},
		{"1122", "1212"},
		{"0001", "1000"},
		{"9876", "6789"},
	}
	for _, p := range pairs {
		forward := Evaluate(p[0], p[1])
		backward := Evaluate(p[1], p[0])
		assert.Equal(t,
			forward.CorrectPlace+forward.WrongPlace,
			backward.CorrectPlace+backward.WrongPlace,
			fmt.Sprintf("%s vs %s", p[0], p[1]),
		)
	}
}
