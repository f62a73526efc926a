package replgrpc

import (
	"time"

	"github.com/i-melnichenko/replset-lab/internal/repl"
	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

// --- OpTime ---

func timestampFromPB(pb *replpb.Timestamp) repl.Timestamp {
	if pb == nil {
		return repl.Timestamp{}
	}
	return repl.Timestamp{Secs: pb.Secs, Inc: pb.Inc}
}

func timestampToPB(ts repl.Timestamp) *replpb.Timestamp {
	return &replpb.Timestamp{Secs: ts.Secs, Inc: ts.Inc}
}

func opTimeFromPB(pb *replpb.OpTime) repl.OpTime {
	if pb == nil {
		return repl.OpTime{}
	}
	return repl.OpTime{
		Timestamp: timestampFromPB(pb.Timestamp),
		Term:      pb.Term,
	}
}

func opTimeToPB(ot repl.OpTime) *replpb.OpTime {
	return &replpb.OpTime{
		Timestamp: timestampToPB(ot.Timestamp),
		Term:      ot.Term,
	}
}

func opTimeAndWallTimeFromPB(pb *replpb.OpTimeAndWallTime) repl.OpTimeAndWallTime {
	if pb == nil {
		return repl.OpTimeAndWallTime{}
	}
	out := repl.OpTimeAndWallTime{OpTime: opTimeFromPB(pb.OpTime)}
	if pb.WallTimeUnixMillis != 0 {
		out.WallTime = time.UnixMilli(pb.WallTimeUnixMillis).UTC()
	}
	return out
}

func opTimeAndWallTimeToPB(ow repl.OpTimeAndWallTime) *replpb.OpTimeAndWallTime {
	pb := &replpb.OpTimeAndWallTime{OpTime: opTimeToPB(ow.OpTime)}
	if !ow.WallTime.IsZero() {
		pb.WallTimeUnixMillis = ow.WallTime.UnixMilli()
	}
	return pb
}

// --- Config ---

func memberConfigFromPB(pb *replpb.MemberConfig) repl.MemberConfig {
	var tags map[string]string
	if len(pb.Tags) > 0 {
		tags = make(map[string]string, len(pb.Tags))
		for k, v := range pb.Tags {
			tags[k] = v
		}
	}
	return repl.MemberConfig{
		ID:           int(pb.Id),
		Host:         pb.Host,
		Priority:     pb.Priority,
		Votes:        int(pb.Votes),
		Arbiter:      pb.Arbiter,
		Hidden:       pb.Hidden,
		BuildIndexes: pb.BuildIndexes,
		SlaveDelay:   time.Duration(pb.SlaveDelayMillis) * time.Millisecond,
		Tags:         tags,
	}
}

func memberConfigToPB(m repl.MemberConfig) *replpb.MemberConfig {
	var tags map[string]string
	if len(m.Tags) > 0 {
		tags = make(map[string]string, len(m.Tags))
		for k, v := range m.Tags {
			tags[k] = v
		}
	}
	return &replpb.MemberConfig{
		Id:               int32(m.ID),
		Host:             m.Host,
		Priority:         m.Priority,
		Votes:            int32(m.Votes),
		Arbiter:          m.Arbiter,
		Hidden:           m.Hidden,
		BuildIndexes:     m.BuildIndexes,
		SlaveDelayMillis: m.SlaveDelay.Milliseconds(),
		Tags:             tags,
	}
}

func settingsFromPB(pb *replpb.Settings) repl.Settings {
	if pb == nil {
		return repl.DefaultSettings()
	}
	s := repl.Settings{
		HeartbeatInterval:           time.Duration(pb.HeartbeatIntervalMillis) * time.Millisecond,
		HeartbeatTimeout:            time.Duration(pb.HeartbeatTimeoutMillis) * time.Millisecond,
		ElectionTimeout:             time.Duration(pb.ElectionTimeoutMillis) * time.Millisecond,
		CatchUpTimeout:              time.Duration(pb.CatchUpTimeoutMillis) * time.Millisecond,
		CatchUpTakeoverDelay:        time.Duration(pb.CatchUpTakeoverDelayMillis) * time.Millisecond,
		ChainingAllowed:             pb.ChainingAllowed,
		WriteConcernMajorityJournal: pb.WriteConcernMajorityJournal,
	}
	if len(pb.CustomWriteModes) > 0 {
		s.CustomWriteModes = make(map[string]repl.TagPattern, len(pb.CustomWriteModes))
		for name, pat := range pb.CustomWriteModes {
			tp := make(repl.TagPattern, len(pat.GetConstraints()))
			for key, min := range pat.GetConstraints() {
				tp[key] = int(min)
			}
			s.CustomWriteModes[name] = tp
		}
	}
	return s
}

func settingsToPB(s repl.Settings) *replpb.Settings {
	pb := &replpb.Settings{
		HeartbeatIntervalMillis:     s.HeartbeatInterval.Milliseconds(),
		HeartbeatTimeoutMillis:      s.HeartbeatTimeout.Milliseconds(),
		ElectionTimeoutMillis:       s.ElectionTimeout.Milliseconds(),
		CatchUpTimeoutMillis:        s.CatchUpTimeout.Milliseconds(),
		CatchUpTakeoverDelayMillis:  s.CatchUpTakeoverDelay.Milliseconds(),
		ChainingAllowed:             s.ChainingAllowed,
		WriteConcernMajorityJournal: s.WriteConcernMajorityJournal,
	}
	if len(s.CustomWriteModes) > 0 {
		pb.CustomWriteModes = make(map[string]*replpb.TagPattern, len(s.CustomWriteModes))
		for name, pat := range s.CustomWriteModes {
			constraints := make(map[string]int32, len(pat))
			for key, min := range pat {
				constraints[key] = int32(min)
			}
			pb.CustomWriteModes[name] = &replpb.TagPattern{Constraints: constraints}
		}
	}
	return pb
}

// ConfigFromPB converts a wire configuration document. Exported for the
// admin transport, which carries the same message.
func ConfigFromPB(pb *replpb.Config) repl.Config {
	if pb == nil {
		return repl.Config{}
	}
	members := make([]repl.MemberConfig, len(pb.Members))
	for i, m := range pb.Members {
		members[i] = memberConfigFromPB(m)
	}
	return repl.Config{
		SetName:  pb.SetName,
		Version:  pb.Version,
		Members:  members,
		Settings: settingsFromPB(pb.Settings),
	}
}

// ConfigToPB converts a configuration document to its wire form.
func ConfigToPB(cfg repl.Config) *replpb.Config {
	members := make([]*replpb.MemberConfig, len(cfg.Members))
	for i := range cfg.Members {
		members[i] = memberConfigToPB(cfg.Members[i])
	}
	return &replpb.Config{
		SetName:  cfg.SetName,
		Version:  cfg.Version,
		Members:  members,
		Settings: settingsToPB(cfg.Settings),
	}
}

// --- Heartbeat ---

func heartbeatRequestFromPB(pb *replpb.HeartbeatRequest) repl.HeartbeatRequest {
	return repl.HeartbeatRequest{
		SetName:       pb.SetName,
		ConfigVersion: pb.ConfigVersion,
		SenderID:      int(pb.SenderId),
		SenderHost:    pb.SenderHost,
		Term:          pb.Term,
	}
}

func heartbeatRequestToPB(req repl.HeartbeatRequest) *replpb.HeartbeatRequest {
	return &replpb.HeartbeatRequest{
		SetName:       req.SetName,
		ConfigVersion: req.ConfigVersion,
		SenderId:      int32(req.SenderID),
		SenderHost:    req.SenderHost,
		Term:          req.Term,
	}
}

func heartbeatResponseFromPB(pb *replpb.HeartbeatResponse) *repl.HeartbeatResponse {
	resp := &repl.HeartbeatResponse{
		SetName:          pb.SetName,
		State:            repl.MemberState(pb.State),
		ElectionTime:     timestampFromPB(pb.ElectionTime),
		AppliedOpTime:    opTimeAndWallTimeFromPB(pb.AppliedOpTime),
		DurableOpTime:    opTimeAndWallTimeFromPB(pb.DurableOpTime),
		PrimaryID:        int(pb.PrimaryId),
		Term:             pb.Term,
		SyncSource:       pb.SyncSource,
		ConfigVersion:    pb.ConfigVersion,
		HeartbeatMessage: pb.HeartbeatMessage,
	}
	if pb.Config != nil {
		cfg := ConfigFromPB(pb.Config)
		resp.Config = &cfg
	}
	return resp
}

func heartbeatResponseToPB(resp *repl.HeartbeatResponse) *replpb.HeartbeatResponse {
	pb := &replpb.HeartbeatResponse{
		SetName:          resp.SetName,
		State:            int32(resp.State),
		ElectionTime:     timestampToPB(resp.ElectionTime),
		AppliedOpTime:    opTimeAndWallTimeToPB(resp.AppliedOpTime),
		DurableOpTime:    opTimeAndWallTimeToPB(resp.DurableOpTime),
		PrimaryId:        int32(resp.PrimaryID),
		Term:             resp.Term,
		SyncSource:       resp.SyncSource,
		ConfigVersion:    resp.ConfigVersion,
		HeartbeatMessage: resp.HeartbeatMessage,
	}
	if resp.Config != nil {
		pb.Config = ConfigToPB(*resp.Config)
	}
	return pb
}

// --- RequestVote ---

func voteRequestFromPB(pb *replpb.VoteRequest) repl.VoteRequest {
	return repl.VoteRequest{
		SetName:           pb.SetName,
		Term:              pb.Term,
		CandidateIndex:    int(pb.CandidateIndex),
		ConfigVersion:     pb.ConfigVersion,
		LastAppliedOpTime: opTimeFromPB(pb.LastAppliedOpTime),
		DryRun:            pb.DryRun,
	}
}

func voteRequestToPB(req repl.VoteRequest) *replpb.VoteRequest {
	return &replpb.VoteRequest{
		SetName:           req.SetName,
		Term:              req.Term,
		CandidateIndex:    int32(req.CandidateIndex),
		ConfigVersion:     req.ConfigVersion,
		LastAppliedOpTime: opTimeToPB(req.LastAppliedOpTime),
		DryRun:            req.DryRun,
	}
}

func voteResponseFromPB(pb *replpb.VoteResponse) *repl.VoteResponse {
	return &repl.VoteResponse{
		Term:        pb.Term,
		VoteGranted: pb.VoteGranted,
		Reason:      pb.Reason,
	}
}

func voteResponseToPB(resp repl.VoteResponse) *replpb.VoteResponse {
	return &replpb.VoteResponse{
		Term:        resp.Term,
		VoteGranted: resp.VoteGranted,
		Reason:      resp.Reason,
	}
}

// --- UpdatePosition ---

func updatePositionArgsFromPB(pb *replpb.UpdatePositionRequest) repl.UpdatePositionArgs {
	return repl.UpdatePositionArgs{
		MemberID:      int(pb.MemberId),
		ConfigVersion: pb.ConfigVersion,
		AppliedOpTime: opTimeAndWallTimeFromPB(pb.AppliedOpTime),
		DurableOpTime: opTimeAndWallTimeFromPB(pb.DurableOpTime),
	}
}

func updatePositionArgsToPB(args repl.UpdatePositionArgs) *replpb.UpdatePositionRequest {
	return &replpb.UpdatePositionRequest{
		MemberId:      int32(args.MemberID),
		ConfigVersion: args.ConfigVersion,
		AppliedOpTime: opTimeAndWallTimeToPB(args.AppliedOpTime),
		DurableOpTime: opTimeAndWallTimeToPB(args.DurableOpTime),
	}
}

// --- Replication metadata ---

func replSetMetadataFromPB(pb *replpb.ReplSetMetadata) repl.ReplSetMetadata {
	if pb == nil {
		return repl.ReplSetMetadata{PrimaryIndex: -1, SyncSourceIndex: -1}
	}
	return repl.ReplSetMetadata{
		Term:                pb.Term,
		LastCommittedOpTime: opTimeAndWallTimeFromPB(pb.LastCommittedOpTime),
		LastOpVisible:       opTimeFromPB(pb.LastOpVisible),
		ConfigVersion:       pb.ConfigVersion,
		PrimaryIndex:        int(pb.PrimaryIndex),
		SyncSourceIndex:     int(pb.SyncSourceIndex),
	}
}

func replSetMetadataToPB(meta repl.ReplSetMetadata) *replpb.ReplSetMetadata {
	return &replpb.ReplSetMetadata{
		Term:                meta.Term,
		LastCommittedOpTime: opTimeAndWallTimeToPB(meta.LastCommittedOpTime),
		LastOpVisible:       opTimeToPB(meta.LastOpVisible),
		ConfigVersion:       meta.ConfigVersion,
		PrimaryIndex:        int32(meta.PrimaryIndex),
		SyncSourceIndex:     int32(meta.SyncSourceIndex),
	}
}

func oplogQueryMetadataFromPB(pb *replpb.OplogQueryMetadata) repl.OplogQueryMetadata {
	if pb == nil {
		return repl.OplogQueryMetadata{PrimaryIndex: -1, SyncSourceIndex: -1}
	}
	return repl.OplogQueryMetadata{
		LastCommittedOpTime: opTimeAndWallTimeFromPB(pb.LastCommittedOpTime),
		LastOpApplied:       opTimeFromPB(pb.LastOpApplied),
		PrimaryIndex:        int(pb.PrimaryIndex),
		SyncSourceIndex:     int(pb.SyncSourceIndex),
	}
}

func oplogQueryMetadataToPB(meta repl.OplogQueryMetadata) *replpb.OplogQueryMetadata {
	return &replpb.OplogQueryMetadata{
		LastCommittedOpTime: opTimeAndWallTimeToPB(meta.LastCommittedOpTime),
		LastOpApplied:       opTimeToPB(meta.LastOpApplied),
		PrimaryIndex:        int32(meta.PrimaryIndex),
		SyncSourceIndex:     int32(meta.SyncSourceIndex),
	}
}

// --- Status ---

func memberStatusToPB(m repl.MemberStatus) *replpb.MemberStatus {
	pb := &replpb.MemberStatus{
		Id:                   int32(m.ID),
		Name:                 m.Name,
		Health:               int32(m.Health),
		State:                int32(m.State),
		StateStr:             m.StateStr,
		UptimeSecs:           m.Uptime,
		OpTime:               opTimeToPB(m.OpTime),
		OpTimeDate:           m.OpTimeDate,
		SyncingTo:            m.SyncingTo,
		SyncSource:           m.SyncSource,
		SyncSourceId:         int32(m.SyncSourceID),
		InfoMessage:          m.InfoMessage,
		Self:                 m.Self,
		LastHeartbeatMessage: m.LastHeartbeatMessage,
		ConfigVersion:        m.ConfigVersion,
	}
	if m.LastHeartbeat != nil {
		millis := m.LastHeartbeat.UnixMilli()
		pb.LastHeartbeatUnixMillis = &millis
	}
	if m.LastHeartbeatRecv != nil {
		millis := m.LastHeartbeatRecv.UnixMilli()
		pb.LastHeartbeatRecvUnixMillis = &millis
	}
	if m.PingMillis != nil {
		pb.PingMillis = m.PingMillis
	}
	if m.ElectionTime != nil {
		pb.ElectionTime = timestampToPB(*m.ElectionTime)
	}
	return pb
}

func memberStatusFromPB(pb *replpb.MemberStatus) repl.MemberStatus {
	m := repl.MemberStatus{
		ID:                   int(pb.Id),
		Name:                 pb.Name,
		Health:               int(pb.Health),
		State:                int(pb.State),
		StateStr:             pb.StateStr,
		Uptime:               pb.UptimeSecs,
		OpTime:               opTimeFromPB(pb.OpTime),
		OpTimeDate:           pb.OpTimeDate,
		SyncingTo:            pb.SyncingTo,
		SyncSource:           pb.SyncSource,
		SyncSourceID:         int(pb.SyncSourceId),
		InfoMessage:          pb.InfoMessage,
		Self:                 pb.Self,
		LastHeartbeatMessage: pb.LastHeartbeatMessage,
		ConfigVersion:        pb.ConfigVersion,
	}
	if pb.LastHeartbeatUnixMillis != nil {
		t := time.UnixMilli(*pb.LastHeartbeatUnixMillis).UTC()
		m.LastHeartbeat = &t
	}
	if pb.LastHeartbeatRecvUnixMillis != nil {
		t := time.UnixMilli(*pb.LastHeartbeatRecvUnixMillis).UTC()
		m.LastHeartbeatRecv = &t
	}
	if pb.PingMillis != nil {
		p := *pb.PingMillis
		m.PingMillis = &p
	}
	if pb.ElectionTime != nil {
		et := timestampFromPB(pb.ElectionTime)
		m.ElectionTime = &et
	}
	return m
}

func statusOptimesToPB(o repl.StatusOptimes) *replpb.StatusOptimes {
	pb := &replpb.StatusOptimes{
		LastCommittedOpTime: opTimeToPB(o.LastCommittedOpTime),
		AppliedOpTime:       opTimeToPB(o.AppliedOpTime),
		DurableOpTime:       opTimeToPB(o.DurableOpTime),
	}
	if !o.LastCommittedWallTime.IsZero() {
		pb.LastCommittedWallTimeUnixMillis = o.LastCommittedWallTime.UnixMilli()
	}
	if !o.LastAppliedWallTime.IsZero() {
		pb.LastAppliedWallTimeUnixMillis = o.LastAppliedWallTime.UnixMilli()
	}
	if !o.LastDurableWallTime.IsZero() {
		pb.LastDurableWallTimeUnixMillis = o.LastDurableWallTime.UnixMilli()
	}
	return pb
}

func statusOptimesFromPB(pb *replpb.StatusOptimes) repl.StatusOptimes {
	if pb == nil {
		return repl.StatusOptimes{}
	}
	o := repl.StatusOptimes{
		LastCommittedOpTime: opTimeFromPB(pb.LastCommittedOpTime),
		AppliedOpTime:       opTimeFromPB(pb.AppliedOpTime),
		DurableOpTime:       opTimeFromPB(pb.DurableOpTime),
	}
	if pb.LastCommittedWallTimeUnixMillis != 0 {
		o.LastCommittedWallTime = time.UnixMilli(pb.LastCommittedWallTimeUnixMillis).UTC()
	}
	if pb.LastAppliedWallTimeUnixMillis != 0 {
		o.LastAppliedWallTime = time.UnixMilli(pb.LastAppliedWallTimeUnixMillis).UTC()
	}
	if pb.LastDurableWallTimeUnixMillis != 0 {
		o.LastDurableWallTime = time.UnixMilli(pb.LastDurableWallTimeUnixMillis).UTC()
	}
	return o
}

func statusResponseToPB(resp *repl.StatusResponse) *replpb.StatusResponse {
	pb := &replpb.StatusResponse{
		Set:                     resp.Set,
		DateUnixMillis:          resp.Date.UnixMilli(),
		MyState:                 int32(resp.MyState),
		Term:                    resp.Term,
		HeartbeatIntervalMillis: resp.HeartbeatIntervalMillis,
		SyncingTo:               resp.SyncingTo,
		SyncSource:              resp.SyncSource,
		SyncSourceId:            int32(resp.SyncSourceID),
		MajorityVoteCount:       int32(resp.MajorityVoteCount),
		WriteMajorityCount:      int32(resp.WriteMajorityCount),
		Optimes:                 statusOptimesToPB(resp.Optimes),
	}
	for _, m := range resp.Members {
		pb.Members = append(pb.Members, memberStatusToPB(m))
	}
	return pb
}

func statusResponseFromPB(pb *replpb.StatusResponse) *repl.StatusResponse {
	resp := &repl.StatusResponse{
		Set:                     pb.Set,
		Date:                    time.UnixMilli(pb.DateUnixMillis).UTC(),
		MyState:                 int(pb.MyState),
		Term:                    pb.Term,
		HeartbeatIntervalMillis: pb.HeartbeatIntervalMillis,
		SyncingTo:               pb.SyncingTo,
		SyncSource:              pb.SyncSource,
		SyncSourceID:            int(pb.SyncSourceId),
		MajorityVoteCount:       int(pb.MajorityVoteCount),
		WriteMajorityCount:      int(pb.WriteMajorityCount),
		Optimes:                 statusOptimesFromPB(pb.Optimes),
	}
	for _, m := range pb.Members {
		resp.Members = append(resp.Members, memberStatusFromPB(m))
	}
	return resp
}
