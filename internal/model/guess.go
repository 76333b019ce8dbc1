package model

import "time"

// SecretLength is the fixed length of secrets and guesses
const SecretLength = 4

// GuessResult scores a guess against a secret
type GuessResult struct {
	// CorrectPlace counts digits matching the secret at the same position
	CorrectPlace int `json:"correctPlace"`
	// WrongPlace counts digits present in the secret's remaining multiset
	// but at a different position
	WrongPlace int `json:"wrongPlace"`
}

// Winning reports whether the guess broke the code
func (r GuessResult) Winning() bool {
	return r.CorrectPlace == SecretLength
}

// Guess is one recorded attempt. Immutable once appended to a player's history.
type Guess struct {
	Digits string      `json:"guess"`
	Result GuessResult `json:"result"`
	At     time.Time   `json:"timestamp"`
}

// Evaluate compares a 4-digit secret against a 4-digit guess.
//
// Two passes over fixed-length digit strings: the first counts exact
// positional matches and marks both positions used; the second, for each
// unused guess digit, consumes the first unused matching secret position.
// Consuming secret positions is what keeps repeated digits from inflating
// WrongPlace beyond the true multiset overlap.
func Evaluate(secret, guess string) GuessResult {
	var result GuessResult
	var secretUsed, guessUsed [SecretLength]bool

	for i := 0; i < SecretLength; i++ {
		if secret[i] == guess[i] {
			result.CorrectPlace++
			secretUsed[i] = true
			guessUsed[i] = true
		}
	}

	for i := 0; i < SecretLength; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < SecretLength; j++ {
			if secretUsed[j] || secret[j] != guess[i] {
				continue
			}
			result.WrongPlace++
			secretUsed[j] = true
			break
		}
	}

	return result
}
