// Package replstore persists the election hard state that must survive a
// restart: the current term and the record of the last vote cast. Losing
// either would let a node vote twice in the same term.
package replstore

import (
	"github.com/i-melnichenko/replset-lab/internal/repl"
)

// Store persists replication hard state. All methods must be safe for
// concurrent use.
type Store interface {
	// Load restores the persisted state on startup. A store that has never
	// been written returns the zero HardState and no error.
	Load() (HardState, error)

	// SaveTerm durably writes the current term. It must complete before the
	// node acts on the new term.
	SaveTerm(term int64) error

	// SaveLastVote durably writes the vote record. It must complete before
	// the vote response is sent.
	SaveLastVote(vote repl.LastVote) error

	// Close releases the underlying database.
	Close() error
}

// HardState is returned by Store.Load.
type HardState struct {
	Term     int64         `json:"term"`
	LastVote repl.LastVote `json:"lastVote"`
}
