// Package main implements the operator CLI for a replica set node.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"

	adminpb "github.com/i-melnichenko/replset-lab/pkg/proto/adminv1"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

const usage = `Usage:
  client [--addr host:port[,host:port,...]] status
  client [--addr host:port[,host:port,...]] watch
  client [--addr host:port] step-down [--force] [--wait 10s] [--period 60s]
  client [--addr host:port] sync-from <host:port>
  client [--addr host:port] reconfig [--in <file|->]

Subcommands:
  status     print each node's view of the replica set and exit
  watch      poll every node and render a live table
  step-down  ask the primary at --addr to yield its position
  sync-from  override the sync source choice of the node at --addr
  reconfig   install a new configuration document (JSON) on the node at --addr

Flags:
  --addr     Comma-separated gRPC addresses (status and watch accept several)
  --timeout  Request timeout (default 5s)
`

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "localhost:9090", "comma-separated node gRPC addresses")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Usage = func() { _, _ = fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("subcommand required: status | watch | step-down | sync-from | reconfig")
	}

	addrs := splitAddrs(*addr)
	if len(addrs) == 0 {
		return fmt.Errorf("no addresses provided")
	}

	switch args[0] {
	case "status":
		if len(args) != 1 {
			return fmt.Errorf("usage: status")
		}
		return cmdStatus(addrs, *timeout)

	case "watch":
		if len(args) != 1 {
			return fmt.Errorf("usage: watch")
		}
		return cmdWatch(addrs, *timeout)

	case "step-down":
		fs := flag.NewFlagSet("step-down", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		force := fs.Bool("force", false, "step down without waiting for a caught-up secondary")
		wait := fs.Duration("wait", 10*time.Second, "how long to wait for a caught-up, electable secondary")
		period := fs.Duration("period", 60*time.Second, "how long to refuse standing for election afterwards")
		if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
			return fmt.Errorf("usage: step-down [--force] [--wait 10s] [--period 60s]")
		}
		return cmdStepDown(addrs[0], *timeout, *force, *wait, *period)

	case "sync-from":
		if len(args) != 2 {
			return fmt.Errorf("usage: sync-from <host:port>")
		}
		return cmdSyncFrom(addrs[0], *timeout, args[1])

	case "reconfig":
		fs := flag.NewFlagSet("reconfig", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		inPath := fs.String("in", "-", "configuration document path (JSON), use - for stdin")
		if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
			return fmt.Errorf("usage: reconfig [--in <file|->]")
		}
		return cmdReconfig(addrs[0], *timeout, *inPath)

	default:
		flag.Usage()
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func cmdStatus(addrs []string, timeout time.Duration) error {
	for _, addr := range addrs {
		if err := printNodeStatus(addr, timeout); err != nil {
			fmt.Printf("%s\tunreachable\t%s\n", addr, oneLineErr(err))
		}
	}
	return nil
}

func printNodeStatus(addr string, timeout time.Duration) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := replpb.NewReplServiceClient(conn).Status(ctx, &replpb.StatusRequest{})
	if err != nil {
		return err
	}

	cmt := resp.GetOptimes().GetLastCommittedOpTime()
	fmt.Printf("%s\tset=%s state=%s term=%d committed=%s sync=%s\n",
		addr,
		resp.GetSet(),
		stateName(resp.GetMyState()),
		resp.GetTerm(),
		formatOpTime(cmt),
		dashIfEmpty(resp.GetSyncSource()),
	)
	for _, m := range resp.GetMembers() {
		self := " "
		if m.GetSelf() {
			self = "*"
		}
		ping := "-"
		if m.PingMillis != nil {
			ping = fmt.Sprintf("%dms", m.GetPingMillis())
		}
		fmt.Printf("  %s %-24s %-10s optime=%s ping=%s %s\n",
			self,
			m.GetName(),
			m.GetStateStr(),
			formatOpTime(m.GetOpTime()),
			ping,
			m.GetLastHeartbeatMessage(),
		)
	}
	return nil
}

func cmdStepDown(addr string, timeout time.Duration, force bool, wait, period time.Duration) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// The node may block up to the wait bound before answering.
	ctx, cancel := context.WithTimeout(context.Background(), timeout+wait)
	defer cancel()

	_, err = adminpb.NewAdminServiceClient(conn).StepDown(ctx, &adminpb.StepDownRequest{
		Force:                force,
		WaitMillis:           wait.Milliseconds(),
		StepDownPeriodMillis: period.Milliseconds(),
	})
	if err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func cmdSyncFrom(addr string, timeout time.Duration, target string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := adminpb.NewAdminServiceClient(conn).SyncFrom(ctx, &adminpb.SyncFromRequest{Target: target})
	if err != nil {
		return err
	}
	if w := resp.GetWarning(); w != "" {
		fmt.Printf("ok (warning: %s)\n", w)
		return nil
	}
	fmt.Println("ok")
	return nil
}

func cmdReconfig(addr string, timeout time.Duration, inPath string) error {
	var (
		r io.Reader = os.Stdin
	)
	if inPath != "-" {
		// #nosec G304 -- CLI intentionally reads a user-provided local input file.
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var cfg replpb.Config
	if err := protojson.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse configuration document: %w", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := adminpb.NewAdminServiceClient(conn).Reconfig(ctx, &adminpb.ReconfigRequest{Config: &cfg})
	if err != nil {
		return err
	}
	fmt.Printf("ok (version %d)\n", resp.GetVersion())
	return nil
}

func formatOpTime(ot *replpb.OpTime) string {
	if ot == nil || ot.GetTimestamp() == nil {
		return "-"
	}
	ts := ot.GetTimestamp()
	return fmt.Sprintf("%d:%d/t%d", ts.GetSecs(), ts.GetInc(), ot.GetTerm())
}

func stateName(state int32) string {
	switch state {
	case 0:
		return "STARTUP"
	case 1:
		return "PRIMARY"
	case 2:
		return "SECONDARY"
	case 3:
		return "RECOVERING"
	case 5:
		return "STARTUP2"
	case 6:
		return "UNKNOWN"
	case 7:
		return "ARBITER"
	case 8:
		return "DOWN"
	case 9:
		return "ROLLBACK"
	case 10:
		return "REMOVED"
	}
	return "INVALID"
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func oneLineErr(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(err.Error(), "\n", " ")
}

func splitAddrs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
