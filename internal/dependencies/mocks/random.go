package mocks

import (
	"fmt"

	"github.com/breakthecode/server/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. Queued results
// are returned in order; once exhausted, a deterministic sequence is
// generated so code that loops until uniqueness still terminates.
type MockRandom struct {
	StringResults []string
	stringIndex   int

	HexResults []string
	hexIndex   int

	fallback int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result, or a deterministic filler
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex < len(r.StringResults) {
		result := r.StringResults[r.stringIndex]
		r.stringIndex++
		return result
	}
	return r.next(length)
}

// Hex returns the next queued result, or a deterministic filler
func (r *MockRandom) Hex(bytes int) string {
	if r.hexIndex < len(r.HexResults) {
		result := r.HexResults[r.hexIndex]
		r.hexIndex++
		return result
	}
	return r.next(bytes * 2)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// QueueHex adds values to the Hex result queue
func (r *MockRandom) QueueHex(values ...string) {
	r.HexResults = append(r.HexResults, values...)
}

func (r *MockRandom) next(length int) string {
	r.fallback++
	s := fmt.Sprintf("%0*d", length, r.fallback)
	if len(s) > length {
		s = s[len(s)-length:]
	}
	return s
}
