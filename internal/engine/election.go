package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

// runElection runs one election attempt: a dry run at term+1 to probe for
// support, then the real round after bumping and persisting the term. Losing
// the dry run costs nothing; a real round burns a term and binds every
// voter's one real vote for it.
func (e *Engine) runElection(ctx context.Context, reason repl.StartElectionReason) {
	e.mu.Lock()
	if e.electionInProgress {
		e.mu.Unlock()
		return
	}
	now := e.clock()
	// A reconfig can leave the node a candidate already (single node set);
	// only transition when it is not.
	if e.tc.Role() != repl.RoleCandidate {
		if err := e.tc.BecomeCandidateIfElectable(now, reason); err != nil {
			e.logger.Info("not standing for election", "reason", reason.String(), "error", err)
			e.mu.Unlock()
			return
		}
	}
	e.electionInProgress = true
	term := e.tc.Term()
	cfg := e.tc.Config()
	selfIndex := e.tc.SelfIndex()
	lastApplied := e.tc.MyLastAppliedOpTime()
	e.logger.Info("starting election", "reason", reason.String(), "term", term)
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.electionInProgress = false
		e.mu.Unlock()
	}()

	dryRun := repl.VoteRequest{
		SetName:           cfg.SetName,
		Term:              term + 1,
		CandidateIndex:    selfIndex,
		ConfigVersion:     cfg.Version,
		LastAppliedOpTime: lastApplied,
		DryRun:            true,
	}
	won, maxTerm := e.gatherVotes(ctx, cfg, selfIndex, dryRun)
	if !won {
		e.logger.Info("lost dry run election", "term", term)
		e.loseElection(maxTerm)
		return
	}

	e.mu.Lock()
	if e.tc.Role() != repl.RoleCandidate || e.tc.Term() != term {
		e.mu.Unlock()
		return
	}
	newTerm := e.tc.IncrementTerm()
	e.tc.VoteForMyself()
	if err := e.store.SaveTerm(newTerm); err != nil {
		e.logger.Error("failed to persist term for election, abandoning", "term", newTerm, "error", err)
		e.tc.ProcessLoseElection()
		e.mu.Unlock()
		return
	}
	if err := e.store.SaveLastVote(e.tc.LastVote()); err != nil {
		e.logger.Error("failed to persist vote for election, abandoning", "term", newTerm, "error", err)
		e.tc.ProcessLoseElection()
		e.mu.Unlock()
		return
	}
	lastApplied = e.tc.MyLastAppliedOpTime()
	e.mu.Unlock()

	realRun := repl.VoteRequest{
		SetName:           cfg.SetName,
		Term:              newTerm,
		CandidateIndex:    selfIndex,
		ConfigVersion:     cfg.Version,
		LastAppliedOpTime: lastApplied,
	}
	won, maxTerm = e.gatherVotes(ctx, cfg, selfIndex, realRun)
	if !won {
		e.logger.Info("lost election", "term", newTerm)
		e.loseElection(maxTerm)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tc.Role() != repl.RoleCandidate || e.tc.Term() != newTerm {
		return
	}
	now = e.clock()
	electionTime := repl.Timestamp{Secs: uint32(now.Unix()), Inc: 1}
	e.tc.ProcessWinElection(uuid.NewString(), electionTime)
	e.tc.ResetAllMemberTimeouts(now)

	// The first operation of the new term doubles as the catch-up target for
	// everyone else.
	first := repl.OpTimeAndWallTime{
		OpTime:   repl.OpTime{Timestamp: electionTime, Term: newTerm},
		WallTime: now,
	}
	e.tc.SetMyLastAppliedOpTimeAndWallTime(first, now, false)
	e.tc.SetMyLastDurableOpTimeAndWallTime(first, now, false)
	e.tc.CompleteTransitionToPrimary(first.OpTime)
	e.resetElectionTimerLocked()
	e.logger.Info("election won, transitioned to primary", "term", newTerm)
}

func (e *Engine) loseElection(maxSeenTerm int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if maxSeenTerm > e.tc.Term() {
		e.noteTermLocked(maxSeenTerm)
	}
	if e.tc.Role() == repl.RoleCandidate {
		e.tc.ProcessLoseElection()
	}
}

// gatherVotes solicits votes from every remote voting member and reports
// whether a majority (counting our own vote) was reached, along with the
// highest term seen in any response.
func (e *Engine) gatherVotes(ctx context.Context, cfg repl.Config, selfIndex int, req repl.VoteRequest) (bool, int64) {
	needed := cfg.MajorityVoteCount()
	votes := 1
	var maxSeen int64

	var targets []string
	for i := range cfg.Members {
		if i == selfIndex || !cfg.Members[i].IsVoter() {
			continue
		}
		targets = append(targets, cfg.Members[i].Host)
	}
	if votes >= needed || len(targets) == 0 {
		return votes >= needed, maxSeen
	}

	timeout := cfg.Settings.ElectionTimeout
	if timeout == 0 {
		timeout = repl.DefaultElectionTimeout
	}
	vctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		target string
		resp   *repl.VoteResponse
		err    error
	}
	ch := make(chan outcome, len(targets))
	for _, target := range targets {
		go func(target string) {
			resp, err := e.votes.RequestVote(vctx, target, req)
			ch <- outcome{target: target, resp: resp, err: err}
		}(target)
	}

	for pending := len(targets); pending > 0; pending-- {
		select {
		case <-vctx.Done():
			return false, maxSeen
		case out := <-ch:
			if out.err != nil {
				e.logger.Debug("vote request failed",
					"target", out.target,
					"term", req.Term,
					"dry_run", req.DryRun,
					"error", out.err,
				)
				continue
			}
			if out.resp.Term > maxSeen {
				maxSeen = out.resp.Term
			}
			if !out.resp.VoteGranted {
				e.logger.Info("vote denied",
					"target", out.target,
					"term", req.Term,
					"dry_run", req.DryRun,
					"vote_reason", out.resp.Reason,
				)
				continue
			}
			votes++
			if votes >= needed {
				return true, maxSeen
			}
		}
	}
	return votes >= needed, maxSeen
}
