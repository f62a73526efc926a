package repl

import (
	"fmt"
	"time"
)

// SyncSourceAddress returns the host currently chosen to replicate from, ""
// when there is none.
func (tc *TopologyCoordinator) SyncSourceAddress() string { return tc.syncSource }

// ChooseNewSyncSource picks the member to replicate from and records it as
// the current sync source. lastOpTimeFetched is the newest operation already
// pulled; only members ahead of it are eligible. Returns "" when no member
// qualifies.
func (tc *TopologyCoordinator) ChooseNewSyncSource(now time.Time, lastOpTimeFetched OpTime, chaining ChainingPreference) string {
	if tc.selfIndex == -1 {
		return ""
	}

	// An operator-forced source is honored exactly once.
	if tc.forceSyncSourceIndex != -1 {
		tc.syncSource = tc.cfg.MemberAt(tc.forceSyncSourceIndex).Host
		tc.forceSyncSourceIndex = -1
		tc.logger.Info("choosing sync source by request", "sync_source", tc.syncSource)
		tc.metrics.IncSyncSourceChange(tc.syncSource)
		return tc.syncSource
	}

	// Wait for 2N pings before choosing a sync target, so the latency
	// comparison below has data to work with.
	if needMorePings := (len(tc.memberData)-1)*2 - tc.totalPings(); needMorePings > 0 {
		tc.logger.Info("waiting for pings from other members before syncing",
			"pings_needed", needMorePings,
		)
		tc.syncSource = ""
		return ""
	}

	if !tc.cfg.Settings.ChainingAllowed && chaining == ChainingUseConfiguration {
		// Chaining is off, so the only permissible source is the primary.
		tc.syncSource = ""
		if tc.currentPrimaryIndex != -1 && tc.currentPrimaryIndex != tc.selfIndex &&
			tc.memberData[tc.currentPrimaryIndex].Up() {
			tc.syncSource = tc.cfg.MemberAt(tc.currentPrimaryIndex).Host
			tc.logger.Info("chaining not allowed, choosing primary as sync source", "sync_source", tc.syncSource)
			tc.metrics.IncSyncSourceChange(tc.syncSource)
		}
		return tc.syncSource
	}

	// Candidates lagging the primary by more than the configured bound are
	// rejected in the strict pass. With no known primary, pick a floor that
	// excludes nobody.
	var primaryOpTime OpTime
	if tc.currentPrimaryIndex != -1 {
		primaryOpTime = tc.memberData[tc.currentPrimaryIndex].LastAppliedOpTime()
	} else {
		primaryOpTime = OpTime{Timestamp: Timestamp{Secs: uint32(tc.options.MaxSyncSourceLag / time.Second)}}
	}
	lagSecs := uint32(tc.options.MaxSyncSourceLag / time.Second)
	var oldestSyncOpTime OpTime
	if primaryOpTime.Timestamp.Secs >= lagSecs {
		oldestSyncOpTime = OpTime{
			Timestamp: Timestamp{Secs: primaryOpTime.Timestamp.Secs - lagSecs},
			Term:      primaryOpTime.Term,
		}
	}

	// Two passes over the candidates: the first enforces all constraints,
	// the second relaxes the ones a degraded set can live without.
	closestIndex := -1
	for _, strict := range []bool{true, false} {
		for i := range tc.memberData {
			if i == tc.selfIndex {
				continue
			}
			md := &tc.memberData[i]
			mc := tc.cfg.MemberAt(i)

			if !md.Up() || !md.State().Readable() {
				continue
			}
			// A source that does not build indexes is never usable by a
			// member that does.
			if tc.selfConfig().BuildIndexes && !mc.BuildIndexes {
				continue
			}
			// Only consider candidates that are ahead of what we already
			// fetched.
			if md.LastAppliedOpTime().AtMost(lastOpTimeFetched) {
				continue
			}
			if tc.memberIsBlacklisted(mc.Host, now) {
				continue
			}

			if strict {
				if tc.selfConfig().IsVoter() && !mc.IsVoter() {
					continue
				}
				if mc.Hidden {
					continue
				}
				if md.LastAppliedOpTime().Before(oldestSyncOpTime) {
					tc.logger.Debug("member is too far behind to choose as sync source",
						"member", mc.Host,
						"member_applied", md.LastAppliedOpTime().String(),
						"oldest_acceptable", oldestSyncOpTime.String(),
					)
					continue
				}
				if mc.SlaveDelay > tc.selfConfig().SlaveDelay {
					continue
				}
			}

			if closestIndex == -1 ||
				tc.ping(mc.Host).millis() < tc.ping(tc.cfg.MemberAt(closestIndex).Host).millis() {
				closestIndex = i
			}
		}
		if closestIndex != -1 {
			break
		}
	}

	if closestIndex == -1 {
		tc.syncSource = ""
		tc.logger.Info("could not find member to sync from")
		return ""
	}

	tc.syncSource = tc.cfg.MemberAt(closestIndex).Host
	tc.logger.Info("sync source candidate chosen",
		"sync_source", tc.syncSource,
		"candidate_applied", tc.memberData[closestIndex].LastAppliedOpTime().String(),
	)
	tc.metrics.IncSyncSourceChange(tc.syncSource)
	return tc.syncSource
}

// ShouldChangeSyncSource decides whether replication should abandon the
// current source, based on the consensus metadata it handed back with the
// last batch.
func (tc *TopologyCoordinator) ShouldChangeSyncSource(currentSource string, replMetadata ReplSetMetadata, oqMetadata *OplogQueryMetadata, now time.Time) bool {
	if tc.forceSyncSourceIndex != -1 {
		tc.logger.Info("choosing new sync source because the operator requested one",
			"requested_source", tc.cfg.MemberAt(tc.forceSyncSourceIndex).Host,
		)
		return true
	}

	currentSourceIndex := tc.cfg.FindMemberIndexByHost(currentSource)
	if currentSourceIndex == -1 {
		tc.logger.Info("choosing new sync source because current source is not in our config",
			"current_source", currentSource,
		)
		return true
	}

	// With mismatched config versions the metadata's member indexes mean
	// nothing; wait for the configs to converge.
	if replMetadata.ConfigVersion != tc.cfg.Version {
		return false
	}

	var currentSourceOpTime OpTime
	var syncSourceIndex int
	var syncSourceIsPrimary bool
	if oqMetadata != nil {
		currentSourceOpTime = oqMetadata.LastOpApplied
		syncSourceIndex = oqMetadata.SyncSourceIndex
		syncSourceIsPrimary = oqMetadata.PrimaryIndex == currentSourceIndex
	} else {
		currentSourceOpTime = replMetadata.LastOpVisible
		syncSourceIndex = replMetadata.SyncSourceIndex
		syncSourceIsPrimary = replMetadata.PrimaryIndex == currentSourceIndex
	}
	if hbOpTime := tc.memberData[currentSourceIndex].LastAppliedOpTime(); hbOpTime.After(currentSourceOpTime) {
		currentSourceOpTime = hbOpTime
	}
	if currentSourceOpTime.IsNull() {
		// Haven't heard from the source yet; stay put.
		return false
	}

	// A source that is not primary, itself has no source, and has nothing we
	// lack is a dead end.
	if syncSourceIndex == -1 && !syncSourceIsPrimary &&
		currentSourceOpTime.AtMost(tc.MyLastAppliedOpTime()) {
		tc.logger.Info("choosing new sync source: current source has no source itself and is not ahead of us",
			"current_source", currentSource,
			"source_applied", currentSourceOpTime.String(),
			"my_applied", tc.MyLastAppliedOpTime().String(),
		)
		return true
	}

	// Switch when an eligible member is more than the lag bound ahead of the
	// current source.
	goalSecs := currentSourceOpTime.Timestamp.Secs + uint32(tc.options.MaxSyncSourceLag/time.Second)
	for i := range tc.memberData {
		if i == tc.selfIndex || i == currentSourceIndex {
			continue
		}
		md := &tc.memberData[i]
		mc := tc.cfg.MemberAt(i)
		if !md.Up() || !md.State().Readable() {
			continue
		}
		if tc.selfConfig().IsVoter() && !mc.IsVoter() {
			continue
		}
		if tc.selfConfig().BuildIndexes && !mc.BuildIndexes {
			continue
		}
		if tc.memberIsBlacklisted(mc.Host, now) {
			continue
		}
		if md.LastAppliedOpTime().Timestamp.Secs > goalSecs {
			tc.logger.Info("choosing new sync source: a significantly fresher member is available",
				"current_source", currentSource,
				"source_applied", currentSourceOpTime.String(),
				"fresher_member", mc.Host,
				"fresher_applied", md.LastAppliedOpTime().String(),
			)
			return true
		}
	}
	return false
}

// BlacklistSyncSource excludes host from sync source selection until the
// given time.
func (tc *TopologyCoordinator) BlacklistSyncSource(host string, until time.Time) {
	tc.logger.Debug("blacklisting sync source", "host", host, "until", until.Format(time.RFC3339))
	tc.syncSourceBlacklist[host] = until
}

// UnblacklistSyncSource lifts a blacklist entry early if it is still active.
func (tc *TopologyCoordinator) UnblacklistSyncSource(host string, now time.Time) {
	until, ok := tc.syncSourceBlacklist[host]
	if !ok {
		return
	}
	if until.After(now) {
		tc.logger.Debug("unblacklisting sync source", "host", host)
	}
	delete(tc.syncSourceBlacklist, host)
}

// ClearSyncSourceBlacklist drops all blacklist entries.
func (tc *TopologyCoordinator) ClearSyncSourceBlacklist() {
	tc.syncSourceBlacklist = make(map[string]time.Time)
}

func (tc *TopologyCoordinator) memberIsBlacklisted(host string, now time.Time) bool {
	until, ok := tc.syncSourceBlacklist[host]
	return ok && until.After(now)
}

// PrepareSyncFromResponse validates an operator request to sync from target
// and arms the one-shot forced source for the next ChooseNewSyncSource call.
// A non-fatal concern (the target lagging this node) is returned as a
// warning string.
func (tc *TopologyCoordinator) PrepareSyncFromResponse(target string, now time.Time) (string, error) {
	if tc.selfIndex == -1 {
		return "", &SyncFromError{Message: "removed and uninitialized nodes do not sync"}
	}
	if tc.selfConfig().Arbiter {
		return "", &SyncFromError{Message: "arbiters don't sync"}
	}
	if tc.iAmPrimary() {
		return "", &SyncFromError{Message: "primaries don't sync"}
	}
	if target == tc.selfConfig().Host {
		return "", &SyncFromError{Message: "I cannot sync from myself"}
	}

	targetIndex := tc.cfg.FindMemberIndexByHost(target)
	if targetIndex == -1 {
		return "", &SyncFromError{Message: fmt.Sprintf("could not find member %q in replica set config", target)}
	}
	targetConfig := tc.cfg.MemberAt(targetIndex)
	if targetConfig.Arbiter {
		return "", &SyncFromError{Message: fmt.Sprintf("cannot sync from %q because it is an arbiter", target)}
	}
	if !targetConfig.BuildIndexes && tc.selfConfig().BuildIndexes {
		return "", &SyncFromError{Message: fmt.Sprintf("cannot sync from %q because it does not build indexes", target)}
	}
	md := &tc.memberData[targetIndex]
	if !md.Up() {
		return "", &SyncFromError{Message: fmt.Sprintf("I cannot reach the requested member: %s", target)}
	}

	warning := ""
	if md.LastAppliedOpTime().Timestamp.Secs+10 < tc.MyLastAppliedOpTime().Timestamp.Secs {
		warning = fmt.Sprintf("requested member %q is more than 10 seconds behind us", target)
		tc.logger.Warn("attempting to sync from member, but its latest optime is older than ours",
			"sync_source", target,
			"sync_source_applied", md.LastAppliedOpTime().String(),
			"my_applied", tc.MyLastAppliedOpTime().String(),
		)
	}

	tc.forceSyncSourceIndex = targetIndex
	return warning, nil
}
