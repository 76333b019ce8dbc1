package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// Random provides random generation that can be mocked for testing
type Random interface {
	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string

	// Hex generates a random lowercase hex string of the given byte length
	Hex(bytes int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.intn(len(alphabet))]
	}
	return string(result)
}

// Hex generates a random hex string identifying connections and players
func (r *CryptoRandom) Hex(bytes int) string {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		return ""
	}
	return hex.EncodeToString(buf)
}

func (r *CryptoRandom) intn(n int) int {
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}
