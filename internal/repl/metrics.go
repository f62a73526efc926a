package repl

// Metrics captures topology-layer metric sinks used by the coordinator.
type Metrics interface {
	IncHeartbeatSuccess(target string)
	IncHeartbeatFailure(target string)
	IncSyncSourceChange(source string)
	SetTerm(term int64)
	IncVoteRequest(granted bool)
	IncElectionStarted(reason string)
	IncElectionWon()
	IncStepDown(kind string)
	IncCommitPointAdvance()
}

type noopMetrics struct{}

func (noopMetrics) IncHeartbeatSuccess(string) {}
func (noopMetrics) IncHeartbeatFailure(string) {}
func (noopMetrics) IncSyncSourceChange(string) {}
func (noopMetrics) SetTerm(int64) {}
func (noopMetrics) IncVoteRequest(bool) {}
func (noopMetrics) IncElectionStarted(string) {}
func (noopMetrics) IncElectionWon() {}
func (noopMetrics) IncStepDown(string) {}
func (noopMetrics) IncCommitPointAdvance() {}
