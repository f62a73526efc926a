package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/i-melnichenko/replset-lab/internal/repl"
)

// Config contains runtime settings for a node process.
type Config struct {
	NodeID   string
	LogLevel string

	// SelfHost is this node's address exactly as it appears in the replica
	// set member list.
	SelfHost string

	// GRPCAddr is the listen address for the replication gRPC service.
	// Usually the port part of SelfHost.
	GRPCAddr    string
	MetricsAddr string
	PprofAddr   string
	DataDir     string

	ReplSetName string

	// Members holds the seed member list, one "id=host:port" entry per
	// member. The node installs this as configuration version 1 on first
	// start; later reconfigs arrive over the wire.
	Members []string

	HeartbeatIntervalMillis int64
	ElectionTimeoutMillis   int64

	TracingEnabled     bool
	TracingEndpoint    string
	TracingServiceName string
}

// DefaultConfig returns a local-development configuration.
func DefaultConfig() Config {
	return Config{
		NodeID:             "node-1",
		LogLevel:           "info",
		SelfHost:           "localhost:9090",
		GRPCAddr:           ":9090",
		DataDir:            "./var/node-1",
		ReplSetName:        "rs0",
		TracingServiceName: "replset-lab",
	}
}

// LoadConfigFromEnv loads config from environment variables.
//
// Supported vars:
// - APP_NODE_ID
// - APP_LOG_LEVEL (debug|info|warn|error)
// - APP_SELF_HOST
// - APP_GRPC_ADDR
// - APP_METRICS_ADDR (empty = disabled)
// - APP_PPROF_ADDR (empty = disabled)
// - APP_DATA_DIR
// - APP_REPLSET_NAME
// - APP_MEMBERS (comma-separated "id=host:port" entries)
// - APP_HEARTBEAT_INTERVAL_MS (0 = default)
// - APP_ELECTION_TIMEOUT_MS (0 = default)
// - APP_TRACING_ENABLED (true|false)
// - APP_TRACING_ENDPOINT
// - APP_TRACING_SERVICE_NAME
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("APP_NODE_ID")); v != "" {
		cfg.NodeID = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("APP_SELF_HOST")); v != "" {
		cfg.SelfHost = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_GRPC_ADDR")); v != "" {
		cfg.GRPCAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_METRICS_ADDR")); v != "" {
		cfg.MetricsAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_PPROF_ADDR")); v != "" {
		cfg.PprofAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_REPLSET_NAME")); v != "" {
		cfg.ReplSetName = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_MEMBERS")); v != "" {
		cfg.Members = splitCSV(v)
	}
	if v := strings.TrimSpace(os.Getenv("APP_HEARTBEAT_INTERVAL_MS")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("app: invalid APP_HEARTBEAT_INTERVAL_MS %q", v)
		}
		cfg.HeartbeatIntervalMillis = n
	}
	if v := strings.TrimSpace(os.Getenv("APP_ELECTION_TIMEOUT_MS")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("app: invalid APP_ELECTION_TIMEOUT_MS %q", v)
		}
		cfg.ElectionTimeoutMillis = n
	}
	if v := strings.TrimSpace(os.Getenv("APP_TRACING_ENABLED")); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("app: invalid APP_TRACING_ENABLED %q: %w", v, err)
		}
		cfg.TracingEnabled = enabled
	}
	if v := strings.TrimSpace(os.Getenv("APP_TRACING_ENDPOINT")); v != "" {
		cfg.TracingEndpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_TRACING_SERVICE_NAME")); v != "" {
		cfg.TracingServiceName = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and supported.
func (c Config) Validate() error {
	if strings.TrimSpace(c.NodeID) == "" {
		return fmt.Errorf("app: node id is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("app: unsupported log level %q", c.LogLevel)
	}
	if strings.TrimSpace(c.SelfHost) == "" {
		return fmt.Errorf("app: self host is required")
	}
	if strings.TrimSpace(c.GRPCAddr) == "" {
		return fmt.Errorf("app: grpc addr is required")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("app: data dir is required")
	}
	if strings.TrimSpace(c.ReplSetName) == "" {
		return fmt.Errorf("app: replica set name is required")
	}
	if c.TracingEnabled && strings.TrimSpace(c.TracingEndpoint) == "" {
		return fmt.Errorf("app: tracing endpoint is required when tracing is enabled")
	}
	return nil
}

// SeedReplConfig builds the version-1 replica set configuration from the
// member list. The returned config is empty if no members were configured,
// in which case the node waits for one to arrive over the wire.
func (c Config) SeedReplConfig() (repl.Config, error) {
	if len(c.Members) == 0 {
		return repl.Config{}, nil
	}

	settings := repl.DefaultSettings()
	if c.HeartbeatIntervalMillis > 0 {
		settings.HeartbeatInterval = time.Duration(c.HeartbeatIntervalMillis) * time.Millisecond
	}
	if c.ElectionTimeoutMillis > 0 {
		settings.ElectionTimeout = time.Duration(c.ElectionTimeoutMillis) * time.Millisecond
	}

	members := make([]repl.MemberConfig, 0, len(c.Members))
	seen := make(map[int]struct{}, len(c.Members))
	for _, raw := range c.Members {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		left, right, ok := strings.Cut(raw, "=")
		if !ok {
			return repl.Config{}, fmt.Errorf("app: invalid member entry %q, want id=host:port", raw)
		}
		id, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil || id < 0 {
			return repl.Config{}, fmt.Errorf("app: invalid member id in %q", raw)
		}
		host := strings.TrimSpace(right)
		if host == "" {
			return repl.Config{}, fmt.Errorf("app: invalid member entry %q", raw)
		}
		if _, exists := seen[id]; exists {
			return repl.Config{}, fmt.Errorf("app: duplicate member id %d", id)
		}
		seen[id] = struct{}{}
		members = append(members, repl.MemberConfig{
			ID:           id,
			Host:         host,
			Priority:     1,
			Votes:        1,
			BuildIndexes: true,
		})
	}

	cfg := repl.Config{
		SetName:  c.ReplSetName,
		Version:  1,
		Members:  members,
		Settings: settings,
	}
	if cfg.FindMemberIndexByHost(c.SelfHost) == -1 {
		return repl.Config{}, fmt.Errorf("app: self host %q is not in the member list", c.SelfHost)
	}
	return cfg, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
