package replstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

var (
	stateBucket = []byte("repl_state")

	termKey     = []byte("term")
	lastVoteKey = []byte("last_vote")
)

// BoltStore is a bbolt-backed Store. bbolt gives us single-file durable
// writes with fsync on every update transaction, which is exactly the
// guarantee term and vote persistence needs.
type BoltStore struct {
	db *bbolt.DB
}

// Open opens or creates the store at path.
func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("replstore: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("replstore: init %s: %w", path, err)
	}

	return &BoltStore{db: db}, nil
}

// Load restores the persisted term and vote record.
func (s *BoltStore) Load() (HardState, error) {
	state := HardState{
		Term:     repl.UninitializedTerm,
		LastVote: repl.LastVote{Term: repl.UninitializedTerm, CandidateIndex: -1},
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(stateBucket)

		if data := bucket.Get(termKey); data != nil {
			if len(data) != 8 {
				return fmt.Errorf("replstore: malformed term record of %d bytes", len(data))
			}
			state.Term = int64(binary.BigEndian.Uint64(data))
		}

		if data := bucket.Get(lastVoteKey); data != nil {
			if err := json.Unmarshal(data, &state.LastVote); err != nil {
				return fmt.Errorf("replstore: decode last vote: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return HardState{}, err
	}
	return state, nil
}

// SaveTerm durably writes the current term.
func (s *BoltStore) SaveTerm(term int64) error {
	var value [8]byte
	binary.BigEndian.PutUint64(value[:], uint64(term))

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(stateBucket).Put(termKey, value[:])
	})
}

// SaveLastVote durably writes the vote record.
func (s *BoltStore) SaveLastVote(vote repl.LastVote) error {
	data, err := json.Marshal(vote)
	if err != nil {
		return fmt.Errorf("replstore: encode last vote: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(stateBucket).Put(lastVoteKey, data)
	})
}

// Close releases the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
