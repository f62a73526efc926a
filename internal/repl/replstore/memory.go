package replstore

import (
	"sync"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

// InMemoryStore keeps the hard state in memory for tests/dev usage.
type InMemoryStore struct {
	mu    sync.Mutex
	state HardState
}

// NewInMemoryStore returns an in-memory Store implementation.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		state: HardState{
			Term:     repl.UninitializedTerm,
			LastVote: repl.LastVote{Term: repl.UninitializedTerm, CandidateIndex: -1},
		},
	}
}

// Load returns a copy of the current in-memory state.
func (s *InMemoryStore) Load() (HardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

// SaveTerm stores the latest term.
func (s *InMemoryStore) SaveTerm(term int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Term = term
	return nil
}

// SaveLastVote stores the latest vote record.
func (s *InMemoryStore) SaveLastVote(vote repl.LastVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastVote = vote
	return nil
}

// Close is a no-op.
func (s *InMemoryStore) Close() error { return nil }
