package repl

import "time"

// Default set-wide timing settings, applied by DefaultSettings.
const (
	DefaultHeartbeatInterval    = 2 * time.Second
	DefaultHeartbeatTimeout     = 10 * time.Second
	DefaultElectionTimeout      = 10 * time.Second
	DefaultCatchUpTimeout       = 30 * time.Second
	DefaultCatchUpTakeoverDelay = 30 * time.Second
)

// Sentinels for disabling primary catch-up and catch-up takeovers.
const (
	CatchUpDisabled         time.Duration = -1
	CatchUpTakeoverDisabled time.Duration = -1
)

// MajorityWriteMode is the reserved name of the built-in majority commit
// quorum mode.
const MajorityWriteMode = "majority"

// ConfigVersionUninitialized is reported in heartbeats before any replica-set
// config has been installed.
const ConfigVersionUninitialized int64 = -2

// MemberConfig describes one member of the replica set, as parsed and
// validated by the configuration layer. It is immutable once installed.
type MemberConfig struct {
	ID           int
	Host         string
	Priority     float64
	Votes        int
	Arbiter      bool
	Hidden       bool
	BuildIndexes bool
	SlaveDelay   time.Duration
	Tags         map[string]string
}

// IsVoter reports whether the member holds a vote in elections.
func (m *MemberConfig) IsVoter() bool { return m.Votes > 0 }

// IsElectable reports whether the member may stand for election at all.
func (m *MemberConfig) IsElectable() bool { return !m.Arbiter && m.Priority > 0 }

// Settings holds set-wide tunables from the replica set configuration.
type Settings struct {
	HeartbeatInterval    time.Duration
	HeartbeatTimeout     time.Duration
	ElectionTimeout      time.Duration
	CatchUpTimeout       time.Duration
	CatchUpTakeoverDelay time.Duration
	ChainingAllowed      bool

	// WriteConcernMajorityJournal selects whether majority commit tracking
	// uses durable or merely applied optimes.
	WriteConcernMajorityJournal bool

	// CustomWriteModes maps a mode name to the tag pattern it requires.
	CustomWriteModes map[string]TagPattern
}

// DefaultSettings returns the settings used when the configuration document
// does not override them.
func DefaultSettings() Settings {
	return Settings{
		HeartbeatInterval:           DefaultHeartbeatInterval,
		HeartbeatTimeout:            DefaultHeartbeatTimeout,
		ElectionTimeout:             DefaultElectionTimeout,
		CatchUpTimeout:              DefaultCatchUpTimeout,
		CatchUpTakeoverDelay:        DefaultCatchUpTakeoverDelay,
		ChainingAllowed:             true,
		WriteConcernMajorityJournal: true,
	}
}

// Config is an immutable snapshot of the replica set configuration. The
// coordinator never mutates an installed Config; a reconfig installs a wholly
// new snapshot.
type Config struct {
	SetName  string
	Version  int64
	Members  []MemberConfig
	Settings Settings
}

// IsInitialized reports whether a real configuration has been installed.
func (c *Config) IsInitialized() bool { return c.Version > 0 }

// NumMembers returns the size of the member list.
func (c *Config) NumMembers() int { return len(c.Members) }

// MemberAt returns the member at the given config index.
func (c *Config) MemberAt(i int) *MemberConfig { return &c.Members[i] }

// FindMemberIndexByHost returns the config index of the member with the given
// host, or -1 if no such member exists.
func (c *Config) FindMemberIndexByHost(host string) int {
	for i := range c.Members {
		if c.Members[i].Host == host {
			return i
		}
	}
	return -1
}

// FindMemberIndexByID returns the config index of the member with the given
// member ID, or -1.
func (c *Config) FindMemberIndexByID(id int) int {
	for i := range c.Members {
		if c.Members[i].ID == id {
			return i
		}
	}
	return -1
}

// TotalVotingMembers counts members holding at least one vote.
func (c *Config) TotalVotingMembers() int {
	n := 0
	for i := range c.Members {
		if c.Members[i].IsVoter() {
			n++
		}
	}
	return n
}

// MajorityVoteCount is the number of votes required to win an election.
func (c *Config) MajorityVoteCount() int {
	return c.TotalVotingMembers()/2 + 1
}

// WriteMajority is the member count required by the "majority" commit
// quorum: the vote majority, capped at the number of voting members that can
// actually hold data.
func (c *Config) WriteMajority() int {
	votingDataBearing := 0
	for i := range c.Members {
		if c.Members[i].IsVoter() && !c.Members[i].Arbiter {
			votingDataBearing++
		}
	}
	if m := c.MajorityVoteCount(); m < votingDataBearing {
		return m
	}
	return votingDataBearing
}

// PriorityRank returns the number of members with a priority strictly greater
// than the given one. Rank 0 means highest priority in the set.
func (c *Config) PriorityRank(priority float64) int {
	rank := 0
	for i := range c.Members {
		if c.Members[i].Priority > priority {
			rank++
		}
	}
	return rank
}

// TagPattern is a commit quorum constraint expressed over tag categories:
// for each named category, the quorum needs members spanning at least the
// given number of distinct tag values.
type TagPattern map[string]int

// TagMatcher incrementally checks a set of members against a TagPattern.
type TagMatcher struct {
	pattern TagPattern
	seen    map[string]map[string]struct{}
}

// NewTagMatcher returns a matcher for the given pattern.
func NewTagMatcher(pattern TagPattern) *TagMatcher {
	return &TagMatcher{
		pattern: pattern,
		seen:    make(map[string]map[string]struct{}, len(pattern)),
	}
}

// Update folds one member's tags into the matcher and reports whether the
// pattern is now satisfied.
func (m *TagMatcher) Update(tags map[string]string) bool {
	for key, value := range tags {
		if _, constrained := m.pattern[key]; !constrained {
			continue
		}
		values := m.seen[key]
		if values == nil {
			values = make(map[string]struct{})
			m.seen[key] = values
		}
		values[value] = struct{}{}
	}
	return m.Satisfied()
}

// Satisfied reports whether every constrained category has enough distinct
// values.
func (m *TagMatcher) Satisfied() bool {
	for key, min := range m.pattern {
		if len(m.seen[key]) < min {
			return false
		}
	}
	return true
}
