//revive:disable:var-naming
//revive:disable:exported
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exposes replication metrics and can be injected into the
// coordinator and engine layers. It implements internal/repl.Metrics through
// method set compatibility, without importing that package.
type Prometheus struct {
	nodeID string

	heartbeatTotal          *prometheus.CounterVec
	syncSourceChangesTotal  *prometheus.CounterVec
	term                    *prometheus.GaugeVec
	voteRequestsTotal       *prometheus.CounterVec
	electionStartedTotal    *prometheus.CounterVec
	electionWonTotal        *prometheus.CounterVec
	stepDownTotal           *prometheus.CounterVec
	commitPointAdvanceTotal *prometheus.CounterVec
}

func NewPrometheus(nodeID string, reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Prometheus{
		nodeID: nodeID,
		heartbeatTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "heartbeat_total",
				Help:      "Heartbeat round outcomes per target member.",
			},
			[]string{"node_id", "target", "result"},
		),
		syncSourceChangesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "sync_source_changes_total",
				Help:      "Number of times the node selected a new sync source.",
			},
			[]string{"node_id", "source"},
		),
		term: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "term",
				Help:      "Current election term known to the node.",
			},
			[]string{"node_id"},
		),
		voteRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "vote_requests_total",
				Help:      "Vote requests processed by the node, by decision.",
			},
			[]string{"node_id", "granted"},
		),
		electionStartedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "election_started_total",
				Help:      "Number of times the node started an election, by reason.",
			},
			[]string{"node_id", "reason"},
		),
		electionWonTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "election_won_total",
				Help:      "Number of elections won by the node.",
			},
			[]string{"node_id"},
		),
		stepDownTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "stepdown_total",
				Help:      "Primary step-downs observed on the node, by kind.",
			},
			[]string{"node_id", "kind"},
		),
		commitPointAdvanceTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "replsetlab",
				Subsystem: "repl",
				Name:      "commit_point_advance_total",
				Help:      "Number of times the majority commit point advanced.",
			},
			[]string{"node_id"},
		),
	}

	if err := m.register(reg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Prometheus) register(reg prometheus.Registerer) error {
	if err := registerOrReuseCounterVec(reg, &m.heartbeatTotal); err != nil {
		return fmt.Errorf("register heartbeat counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.syncSourceChangesTotal); err != nil {
		return fmt.Errorf("register sync source counter: %w", err)
	}
	if err := registerOrReuseGaugeVec(reg, &m.term); err != nil {
		return fmt.Errorf("register term gauge: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.voteRequestsTotal); err != nil {
		return fmt.Errorf("register vote counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.electionStartedTotal); err != nil {
		return fmt.Errorf("register election started counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.electionWonTotal); err != nil {
		return fmt.Errorf("register election won counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.stepDownTotal); err != nil {
		return fmt.Errorf("register stepdown counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.commitPointAdvanceTotal); err != nil {
		return fmt.Errorf("register commit point counter: %w", err)
	}
	return nil
}

func registerOrReuseCounterVec(reg prometheus.Registerer, c **prometheus.CounterVec) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return fmt.Errorf("collector type mismatch for %T", *c)
		}
		*c = existing
	}
	return nil
}

func registerOrReuseGaugeVec(reg prometheus.Registerer, c **prometheus.GaugeVec) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return fmt.Errorf("collector type mismatch for %T", *c)
		}
		*c = existing
	}
	return nil
}

func (m *Prometheus) IncHeartbeatSuccess(target string) {
	m.heartbeatTotal.WithLabelValues(m.nodeID, target, "success").Inc()
}

func (m *Prometheus) IncHeartbeatFailure(target string) {
	m.heartbeatTotal.WithLabelValues(m.nodeID, target, "failure").Inc()
}

func (m *Prometheus) IncSyncSourceChange(source string) {
	m.syncSourceChangesTotal.WithLabelValues(m.nodeID, source).Inc()
}

func (m *Prometheus) SetTerm(term int64) {
	m.term.WithLabelValues(m.nodeID).Set(float64(term))
}

func (m *Prometheus) IncVoteRequest(granted bool) {
	m.voteRequestsTotal.WithLabelValues(m.nodeID, boolString(granted)).Inc()
}

func (m *Prometheus) IncElectionStarted(reason string) {
	m.electionStartedTotal.WithLabelValues(m.nodeID, reason).Inc()
}

func (m *Prometheus) IncElectionWon() {
	m.electionWonTotal.WithLabelValues(m.nodeID).Inc()
}

func (m *Prometheus) IncStepDown(kind string) {
	m.stepDownTotal.WithLabelValues(m.nodeID, kind).Inc()
}

func (m *Prometheus) IncCommitPointAdvance() {
	m.commitPointAdvanceTotal.WithLabelValues(m.nodeID).Inc()
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
