package replgrpc

import (
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

func recordSpanError(span oteltrace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
}

func clientTargetAttrs(target string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.peer.target", target),
	}
}

func clientHeartbeatAttrs(target string, req repl.HeartbeatRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.peer.target", target),
		attribute.String("repl.set_name", req.SetName),
		attribute.Int64("repl.term", req.Term),
		attribute.Int64("repl.config_version", req.ConfigVersion),
		attribute.String("repl.sender_host", req.SenderHost),
	}
}

func clientRequestVoteAttrs(target string, req repl.VoteRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.peer.target", target),
		attribute.String("repl.set_name", req.SetName),
		attribute.Int64("repl.term", req.Term),
		attribute.Int("repl.candidate_index", req.CandidateIndex),
		attribute.Bool("repl.dry_run", req.DryRun),
	}
}

func clientUpdatePositionAttrs(target string, args repl.UpdatePositionArgs) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.peer.target", target),
		attribute.Int("repl.member_id", args.MemberID),
		attribute.Int64("repl.config_version", args.ConfigVersion),
		attribute.Int64("repl.applied_term", args.AppliedOpTime.OpTime.Term),
	}
}

func serverHeartbeatAttrs(req *replpb.HeartbeatRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.set_name", req.SetName),
		attribute.Int64("repl.term", req.Term),
		attribute.Int64("repl.config_version", req.ConfigVersion),
		attribute.String("repl.sender_host", req.SenderHost),
	}
}

func serverRequestVoteAttrs(req *replpb.VoteRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("repl.set_name", req.SetName),
		attribute.Int64("repl.term", req.Term),
		attribute.Int64("repl.candidate_index", int64(req.CandidateIndex)),
		attribute.Bool("repl.dry_run", req.DryRun),
	}
}

func serverUpdatePositionAttrs(req *replpb.UpdatePositionRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("repl.member_id", int64(req.MemberId)),
		attribute.Int64("repl.config_version", req.ConfigVersion),
	}
}
