package replstore

import (
	"path/filepath"
	"testing"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

func TestBoltStore_PersistsAndLoadsState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "repl.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Term != repl.UninitializedTerm {
		t.Fatalf("expected uninitialized term on a fresh store, got %d", state.Term)
	}
	if state.LastVote.CandidateIndex != -1 {
		t.Fatalf("expected no recorded vote on a fresh store, got %+v", state.LastVote)
	}

	if err := s.SaveTerm(7); err != nil {
		t.Fatalf("SaveTerm() error = %v", err)
	}
	if err := s.SaveLastVote(repl.LastVote{Term: 7, CandidateIndex: 2}); err != nil {
		t.Fatalf("SaveLastVote() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	restored, err := Open(path)
	if err != nil {
		t.Fatalf("reopen Open() error = %v", err)
	}
	defer restored.Close()

	state, err = restored.Load()
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if state.Term != 7 {
		t.Fatalf("expected term=7, got %d", state.Term)
	}
	if state.LastVote.Term != 7 || state.LastVote.CandidateIndex != 2 {
		t.Fatalf("expected vote for candidate 2 in term 7, got %+v", state.LastVote)
	}
}

func TestBoltStore_TermOverwrites(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "repl.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	for _, term := range []int64{1, 5, 6} {
		if err := s.SaveTerm(term); err != nil {
			t.Fatalf("SaveTerm(%d) error = %v", term, err)
		}
	}

	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Term != 6 {
		t.Fatalf("expected latest term=6, got %d", state.Term)
	}
}
