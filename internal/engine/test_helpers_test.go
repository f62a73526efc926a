package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	"github.com/i-melnichenko/replset-lab/internal/repl/replstore"
)

func testMember(id int, host string) repl.MemberConfig {
	return repl.MemberConfig{
		ID:           id,
		Host:         host,
		Priority:     1,
		Votes:        1,
		BuildIndexes: true,
	}
}

func threeNodeConfig(version int64) repl.Config {
	return repl.Config{
		SetName: "rs0",
		Version: version,
		Members: []repl.MemberConfig{
			testMember(0, "h0:27017"),
			testMember(1, "h1:27017"),
			testMember(2, "h2:27017"),
		},
		Settings: repl.DefaultSettings(),
	}
}

// newTestEngine returns an engine for a three node set with self at index 0,
// in secondary mode, backed by an in-memory store.
func newTestEngine(t *testing.T, heartbeats HeartbeatSender, votes VoteRequester) (*Engine, *replstore.InMemoryStore) {
	t.Helper()

	tc, err := repl.NewTopologyCoordinator(repl.DefaultOptions(), slog.Default(), nil)
	if err != nil {
		t.Fatalf("NewTopologyCoordinator() error = %v", err)
	}
	tc.UpdateConfig(threeNodeConfig(1), 0, time.Now())
	tc.SetFollowerMode(repl.MemberStateSecondary)

	store := replstore.NewInMemoryStore()
	e, err := New("h0:27017", tc, store, heartbeats, votes, nil, nil, slog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e, store
}

// seeMajority feeds successful heartbeats from the given hosts directly into
// the coordinator so that electability checks pass.
func seeMajority(e *Engine, hosts ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock()
	for _, host := range hosts {
		e.tc.PrepareHeartbeatRequest(now, host)
		e.tc.ProcessHeartbeatResponse(now, 10*time.Millisecond, host, repl.HeartbeatResult{
			Response: &repl.HeartbeatResponse{
				SetName:       "rs0",
				State:         repl.MemberStateSecondary,
				PrimaryID:     -1,
				Term:          e.tc.Term(),
				ConfigVersion: 1,
			},
		})
	}
}

func engineRole(e *Engine) repl.Role {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tc.Role()
}

func engineTerm(e *Engine) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tc.Term()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
