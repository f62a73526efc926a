// Package engine drives the replication topology coordinator. The
// coordinator itself is a pure state machine; this package owns everything
// around it: the heartbeat schedule, the election and liveness timers, the
// durable hard state, and the serialization of all coordinator access behind
// one mutex.
//
// Transport wiring is intentionally kept outside this package.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	"github.com/i-melnichenko/replset-lab/internal/repl/replstore"
)

// Logger is the leveled key/value logger the engine reports through.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Errors returned for misuse of the engine API.
var (
	ErrNilCoordinator = errors.New("engine: nil coordinator")
	ErrNilStore       = errors.New("engine: nil store")
	ErrNilSender      = errors.New("engine: nil heartbeat sender or vote requester")
	ErrNilLogger      = errors.New("engine: nil logger")
	ErrNotRunning     = errors.New("engine: not running")
)

const fetchConfigTimeout = 5 * time.Second

// reportPositionTimeout bounds one progress report to the sync source.
const reportPositionTimeout = 5 * time.Second

// syncSourceBlacklistPeriod is how long a rejected sync source is excluded
// from re-selection.
const syncSourceBlacklistPeriod = 10 * time.Second

// Engine runs one replica set member.
type Engine struct {
	mu sync.Mutex

	tc         *repl.TopologyCoordinator
	store      replstore.Store
	heartbeats HeartbeatSender
	votes      VoteRequester
	configs    ConfigFetcher
	positions  PositionReporter
	logger     Logger

	selfHost string

	clock    clockFunc
	newTimer timerFactory
	jitter   jitterFunc

	runCtx  context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool

	hbCancel context.CancelFunc

	electionResetCh    chan struct{}
	electionInProgress bool
	takeoverScheduled  bool

	startedAt time.Time
}

// New creates an engine for the coordinator. The configs fetcher may be nil;
// reconfigs then rely on heartbeat responses carrying the config document.
// The position reporter may be nil; the node then still picks sync sources
// but never reports progress upstream.
func New(
	selfHost string,
	tc *repl.TopologyCoordinator,
	store replstore.Store,
	heartbeats HeartbeatSender,
	votes VoteRequester,
	configs ConfigFetcher,
	positions PositionReporter,
	logger Logger,
) (*Engine, error) {
	if tc == nil {
		return nil, ErrNilCoordinator
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if heartbeats == nil || votes == nil {
		return nil, ErrNilSender
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &Engine{
		tc:              tc,
		store:           store,
		heartbeats:      heartbeats,
		votes:           votes,
		configs:         configs,
		positions:       positions,
		logger:          logger,
		selfHost:        selfHost,
		clock:           time.Now,
		newTimer:        defaultTimerFactory,
		jitter:          randomJitter,
		electionResetCh: make(chan struct{}, 1),
	}, nil
}

// Run restores persisted hard state, installs the initial configuration, and
// starts the background loops. It returns immediately.
func (e *Engine) Run(ctx context.Context, cfg repl.Config) error {
	state, err := e.store.Load()
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.runCtx, e.cancel = context.WithCancel(ctx)
	e.running = true
	e.startedAt = e.clock()

	e.installConfigLocked(cfg)
	// UpdateConfig may have initialized the term; the persisted one wins if
	// it is further along.
	if state.Term > e.tc.Term() {
		e.tc.SetTermForRecovery(state.Term)
	}
	if state.LastVote.Term > repl.UninitializedTerm {
		e.tc.LoadLastVote(state.LastVote)
	}
	e.tc.SetFollowerMode(repl.MemberStateSecondary)
	e.maybePromoteLocked()
	e.mu.Unlock()

	e.wg.Add(3)
	go e.runElectionTimer(e.runCtx)
	go e.runLivenessChecks(e.runCtx)
	go e.runSyncSourceLoop(e.runCtx)
	return nil
}

// Stop cancels the background loops and waits for them to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.cancel()
	e.mu.Unlock()
	e.wg.Wait()
}

// InstallConfig applies a new replica set configuration, for example from an
// operator reconfig command.
func (e *Engine) InstallConfig(cfg repl.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return ErrNotRunning
	}
	current := e.tc.Config()
	if current.IsInitialized() && cfg.Version <= current.Version {
		return fmt.Errorf("engine: config version %d is not newer than installed version %d",
			cfg.Version, current.Version)
	}
	e.installConfigLocked(cfg)
	e.maybePromoteLocked()
	return nil
}

// CurrentConfig returns the installed replica set configuration.
func (e *Engine) CurrentConfig() repl.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tc.Config()
}

// installConfigLocked installs cfg and restarts the heartbeat schedule
// against the new member list. Caller must hold e.mu.
func (e *Engine) installConfigLocked(cfg repl.Config) {
	now := e.clock()
	selfIndex := cfg.FindMemberIndexByHost(e.selfHost)
	e.tc.UpdateConfig(cfg, selfIndex, now)
	e.logger.Info("installed replica set config",
		"set", cfg.SetName,
		"config_version", cfg.Version,
		"members", cfg.NumMembers(),
		"self_index", selfIndex,
	)
	e.restartHeartbeatsLocked()
}

// maybePromoteLocked starts an election when the new config left the node a
// candidate (a single electable node has no heartbeats to promote it).
// Caller must hold e.mu.
func (e *Engine) maybePromoteLocked() {
	if !e.running || e.tc.Role() != repl.RoleCandidate {
		return
	}
	e.wg.Add(1)
	go func(ctx context.Context) {
		defer e.wg.Done()
		e.runElection(ctx, repl.SingleNodePromotion)
	}(e.runCtx)
}

// restartHeartbeatsLocked cancels the current heartbeat loops and starts one
// per remote member of the active config. Caller must hold e.mu.
func (e *Engine) restartHeartbeatsLocked() {
	if e.hbCancel != nil {
		e.hbCancel()
		e.hbCancel = nil
	}
	if !e.running {
		return
	}

	hbCtx, cancel := context.WithCancel(e.runCtx)
	e.hbCancel = cancel

	cfg := e.tc.Config()
	selfIndex := e.tc.SelfIndex()
	for i := range cfg.Members {
		if i == selfIndex {
			continue
		}
		target := cfg.Members[i].Host
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			e.heartbeatLoop(hbCtx, target)
		}()
	}
}

func (e *Engine) heartbeatLoop(ctx context.Context, target string) {
	timer := e.newTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
		}

		e.mu.Lock()
		req, timeout := e.tc.PrepareHeartbeatRequest(e.clock(), target)
		e.mu.Unlock()
		if timeout <= 0 {
			timeout = time.Millisecond
		}

		sendCtx, cancel := context.WithTimeout(ctx, timeout)
		start := e.clock()
		resp, err := e.heartbeats.Heartbeat(sendCtx, target, req)
		cancel()
		rtt := e.clock().Sub(start)
		result := toHeartbeatResult(resp, err)

		e.mu.Lock()
		action := e.tc.ProcessHeartbeatResponse(e.clock(), rtt, target, result)
		if result.OK() {
			e.noteTermLocked(result.Response.Term)
			if result.Response.State == repl.MemberStatePrimary && result.Response.Term >= e.tc.Term() {
				e.resetElectionTimerLocked()
			}
		}
		if action.AdvancedOpTime {
			e.tc.UpdateLastCommittedOpTime()
		}
		next := action.NextHeartbeatAt
		e.mu.Unlock()

		switch action.Kind {
		case repl.ActionReconfig:
			var newCfg *repl.Config
			if result.OK() {
				newCfg = result.Response.Config
			}
			e.applyReconfig(ctx, target, newCfg)
		case repl.ActionPriorityTakeover:
			e.scheduleTakeover(ctx, repl.PriorityTakeover)
		case repl.ActionCatchupTakeover:
			e.scheduleTakeover(ctx, repl.CatchupTakeover)
		case repl.ActionStepDownSelf:
			e.stepDownUnconditionally()
		}

		delay := next.Sub(e.clock())
		if delay < 0 {
			delay = 0
		}
		timer.Reset(delay)
	}
}

// applyReconfig installs a newer config learned from target, fetching the
// document first when the heartbeat response did not carry it.
func (e *Engine) applyReconfig(ctx context.Context, target string, newCfg *repl.Config) {
	if newCfg == nil {
		if e.configs == nil {
			e.logger.Warn("newer config available but no config fetcher wired", "target", target)
			return
		}
		fctx, cancel := context.WithTimeout(ctx, fetchConfigTimeout)
		fetched, err := e.configs.FetchConfig(fctx, target)
		cancel()
		if err != nil {
			e.logger.Warn("failed to fetch newer config", "target", target, "error", err)
			return
		}
		newCfg = fetched
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	current := e.tc.Config()
	if current.IsInitialized() && newCfg.Version <= current.Version {
		return
	}
	e.installConfigLocked(*newCfg)
	e.maybePromoteLocked()
}

// noteTermLocked feeds an externally observed term into the coordinator,
// persisting it when it advances and completing the step-down a primary owes
// before its term may move. Caller must hold e.mu.
func (e *Engine) noteTermLocked(term int64) {
	switch e.tc.UpdateTerm(term, e.clock()) {
	case repl.TermUpdated:
		e.persistTermLocked()
	case repl.TermTriggerStepDown:
		e.logger.Info("stepping down due to higher term", "new_term", term, "term", e.tc.Term())
		e.stepDownUnconditionallyLocked()
		if e.tc.UpdateTerm(term, e.clock()) == repl.TermUpdated {
			e.persistTermLocked()
		}
	}
}

func (e *Engine) persistTermLocked() {
	if err := e.store.SaveTerm(e.tc.Term()); err != nil {
		e.logger.Error("failed to persist term", "term", e.tc.Term(), "error", err)
	}
}

func (e *Engine) stepDownUnconditionally() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepDownUnconditionallyLocked()
}

// stepDownUnconditionallyLocked relinquishes leadership without waiting for
// secondaries to catch up. Caller must hold e.mu.
func (e *Engine) stepDownUnconditionallyLocked() {
	if err := e.tc.PrepareForUnconditionalStepDown(); err != nil {
		e.logger.Debug("unconditional step down not applicable", "error", err)
		return
	}
	e.tc.FinishUnconditionalStepDown()
	e.resetElectionTimerLocked()
}

// runElectionTimer converts silence from any primary into election attempts.
func (e *Engine) runElectionTimer(ctx context.Context) {
	defer e.wg.Done()

	timer := e.newTimer(e.electionDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.electionResetCh:
			if !timer.Stop() {
				select {
				case <-timer.C():
				default:
				}
			}
			timer.Reset(e.electionDelay())
		case <-timer.C():
			e.maybeStandForElection(ctx)
			timer.Reset(e.electionDelay())
		}
	}
}

func (e *Engine) electionDelay() time.Duration {
	e.mu.Lock()
	d := e.tc.Config().Settings.ElectionTimeout
	e.mu.Unlock()
	if d == 0 {
		d = repl.DefaultElectionTimeout
	}
	return d + e.jitter(d/10)
}

func (e *Engine) maybeStandForElection(ctx context.Context) {
	e.mu.Lock()
	skip := e.tc.Role() == repl.RoleLeader || e.electionInProgress
	if !skip {
		if i := e.tc.CurrentPrimaryIndex(); i != -1 && i != e.tc.SelfIndex() {
			snapshot := e.tc.MemberDataSnapshot()
			if snapshot[i].Up() {
				skip = true
			}
		}
	}
	e.mu.Unlock()
	if skip {
		return
	}
	e.runElection(ctx, repl.ElectionTimeout)
}

// runLivenessChecks periodically expires members that have been silent for
// longer than the election timeout.
func (e *Engine) runLivenessChecks(ctx context.Context) {
	defer e.wg.Done()

	timer := e.newTimer(e.livenessInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
		}

		e.mu.Lock()
		action := e.tc.CheckMemberTimeouts(e.clock())
		if action.Kind == repl.ActionStepDownSelf {
			e.logger.Info("stepping down: cannot see a majority of the set")
			e.stepDownUnconditionallyLocked()
		}
		e.mu.Unlock()

		timer.Reset(e.livenessInterval())
	}
}

func (e *Engine) livenessInterval() time.Duration {
	e.mu.Lock()
	d := e.tc.Config().Settings.HeartbeatInterval
	e.mu.Unlock()
	if d == 0 {
		d = repl.DefaultHeartbeatInterval
	}
	return d
}

// runSyncSourceLoop keeps the sync source decision current: it picks a
// source when the node has none, reports our progress to it, and abandons it
// when the metadata it hands back says a better source exists.
func (e *Engine) runSyncSourceLoop(ctx context.Context) {
	defer e.wg.Done()

	timer := e.newTimer(e.livenessInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
		}
		e.evaluateSyncSource(ctx)
		timer.Reset(e.livenessInterval())
	}
}

// evaluateSyncSource runs one round of sync source upkeep.
func (e *Engine) evaluateSyncSource(ctx context.Context) {
	e.mu.Lock()
	now := e.clock()
	selfIndex := e.tc.SelfIndex()
	cfg := e.tc.Config()
	if selfIndex == -1 || e.tc.Role() != repl.RoleFollower || cfg.MemberAt(selfIndex).Arbiter {
		e.mu.Unlock()
		return
	}

	source := e.tc.SyncSourceAddress()
	if source != "" {
		// A source we can no longer reach is not worth keeping.
		if i := cfg.FindMemberIndexByHost(source); i == -1 || !e.tc.MemberDataSnapshot()[i].Up() {
			source = ""
		}
	}
	if source == "" {
		source = e.tc.ChooseNewSyncSource(now, e.tc.MyLastAppliedOpTime(), repl.ChainingUseConfiguration)
	}

	args := repl.UpdatePositionArgs{
		MemberID:      cfg.MemberAt(selfIndex).ID,
		ConfigVersion: cfg.Version,
		AppliedOpTime: e.tc.MyLastAppliedOpTimeAndWallTime(),
		DurableOpTime: e.tc.MyLastDurableOpTimeAndWallTime(),
	}
	e.mu.Unlock()

	if source == "" || e.positions == nil {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, reportPositionTimeout)
	resp, err := e.positions.UpdatePosition(sendCtx, source, args)
	cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	now = e.clock()
	if err != nil {
		e.logger.Warn("progress report to sync source failed", "sync_source", source, "error", err)
		e.tc.BlacklistSyncSource(source, now.Add(syncSourceBlacklistPeriod))
		e.tc.ChooseNewSyncSource(now, e.tc.MyLastAppliedOpTime(), repl.ChainingUseConfiguration)
		return
	}
	e.processReplSetMetadataLocked(resp.Metadata)
	oqMeta := resp.OplogMetadata
	if e.tc.SyncSourceAddress() == source &&
		e.tc.ShouldChangeSyncSource(source, resp.Metadata, &oqMeta, now) {
		e.tc.BlacklistSyncSource(source, now.Add(syncSourceBlacklistPeriod))
		e.tc.ChooseNewSyncSource(now, e.tc.MyLastAppliedOpTime(), repl.ChainingUseConfiguration)
	}
}

// scheduleTakeover arms a delayed election attempt against a primary that a
// fresher or higher-priority node should replace. The delay gives the
// primary room to catch up or for the condition to clear; electability is
// re-checked when the timer fires.
func (e *Engine) scheduleTakeover(ctx context.Context, reason repl.StartElectionReason) {
	e.mu.Lock()
	if e.takeoverScheduled || !e.running {
		e.mu.Unlock()
		return
	}
	e.takeoverScheduled = true

	cfg := e.tc.Config()
	electionTimeout := cfg.Settings.ElectionTimeout
	if electionTimeout == 0 {
		electionTimeout = repl.DefaultElectionTimeout
	}
	var delay time.Duration
	switch reason {
	case repl.PriorityTakeover:
		rank := cfg.PriorityRank(cfg.MemberAt(e.tc.SelfIndex()).Priority)
		delay = time.Duration(rank+1) * electionTimeout
	case repl.CatchupTakeover:
		delay = cfg.Settings.CatchUpTakeoverDelay
		if delay == 0 {
			delay = repl.DefaultCatchUpTakeoverDelay
		}
	}
	e.logger.Info("scheduling takeover", "reason", reason.String(), "delay", delay)
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		timer := e.newTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
		}
		e.mu.Lock()
		e.takeoverScheduled = false
		e.mu.Unlock()
		e.runElection(ctx, reason)
	}()
}

func (e *Engine) resetElectionTimerLocked() {
	select {
	case e.electionResetCh <- struct{}{}:
	default:
	}
}

// toHeartbeatResult folds a transport outcome into the coordinator's typed
// result.
func toHeartbeatResult(resp *repl.HeartbeatResponse, err error) repl.HeartbeatResult {
	if err == nil {
		return repl.HeartbeatResult{Response: resp}
	}
	var failure *repl.HeartbeatFailure
	if errors.As(err, &failure) {
		return repl.HeartbeatResult{Failure: failure}
	}
	kind := repl.HeartbeatFailureError
	if errors.Is(err, context.DeadlineExceeded) {
		kind = repl.HeartbeatFailureTimeout
	}
	return repl.HeartbeatResult{Failure: &repl.HeartbeatFailure{Kind: kind, Message: err.Error()}}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	//nolint:gosec // timer jitter needs pseudo-randomness, not cryptographic randomness.
	return time.Duration(rand.Int63n(int64(max)))
}
