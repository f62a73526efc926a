// Code generated by MockGen. DO NOT EDIT.
// Source: senders.go

// Package engine is a generated GoMock package.
package engine

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	repl "github.com/i-melnichenko/replset-lab/internal/repl"
)

// MockHeartbeatSender is a mock of HeartbeatSender interface.
type MockHeartbeatSender struct {
	ctrl     *gomock.Controller
	recorder *MockHeartbeatSenderMockRecorder
}

// MockHeartbeatSenderMockRecorder is the mock recorder for MockHeartbeatSender.
type MockHeartbeatSenderMockRecorder struct {
	mock *MockHeartbeatSender
}

// NewMockHeartbeatSender creates a new mock instance.
func NewMockHeartbeatSender(ctrl *gomock.Controller) *MockHeartbeatSender {
	mock := &MockHeartbeatSender{ctrl: ctrl}
	mock.recorder = &MockHeartbeatSenderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHeartbeatSender) EXPECT() *MockHeartbeatSenderMockRecorder {
	return m.recorder
}

// Heartbeat mocks base method.
func (m *MockHeartbeatSender) Heartbeat(ctx context.Context, target string, req repl.HeartbeatRequest) (*repl.HeartbeatResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Heartbeat", ctx, target, req)
	ret0, _ := ret[0].(*repl.HeartbeatResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Heartbeat indicates an expected call of Heartbeat.
func (mr *MockHeartbeatSenderMockRecorder) Heartbeat(ctx, target, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Heartbeat", reflect.TypeOf((*MockHeartbeatSender)(nil).Heartbeat), ctx, target, req)
}

// MockVoteRequester is a mock of VoteRequester interface.
type MockVoteRequester struct {
	ctrl     *gomock.Controller
	recorder *MockVoteRequesterMockRecorder
}

// MockVoteRequesterMockRecorder is the mock recorder for MockVoteRequester.
type MockVoteRequesterMockRecorder struct {
	mock *MockVoteRequester
}

// NewMockVoteRequester creates a new mock instance.
func NewMockVoteRequester(ctrl *gomock.Controller) *MockVoteRequester {
	mock := &MockVoteRequester{ctrl: ctrl}
	mock.recorder = &MockVoteRequesterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVoteRequester) EXPECT() *MockVoteRequesterMockRecorder {
	return m.recorder
}

// RequestVote mocks base method.
func (m *MockVoteRequester) RequestVote(ctx context.Context, target string, req repl.VoteRequest) (*repl.VoteResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestVote", ctx, target, req)
	ret0, _ := ret[0].(*repl.VoteResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RequestVote indicates an expected call of RequestVote.
func (mr *MockVoteRequesterMockRecorder) RequestVote(ctx, target, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestVote", reflect.TypeOf((*MockVoteRequester)(nil).RequestVote), ctx, target, req)
}

// MockPositionReporter is a mock of PositionReporter interface.
type MockPositionReporter struct {
	ctrl     *gomock.Controller
	recorder *MockPositionReporterMockRecorder
}

// MockPositionReporterMockRecorder is the mock recorder for MockPositionReporter.
type MockPositionReporterMockRecorder struct {
	mock *MockPositionReporter
}

// NewMockPositionReporter creates a new mock instance.
func NewMockPositionReporter(ctrl *gomock.Controller) *MockPositionReporter {
	mock := &MockPositionReporter{ctrl: ctrl}
	mock.recorder = &MockPositionReporterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPositionReporter) EXPECT() *MockPositionReporterMockRecorder {
	return m.recorder
}

// UpdatePosition mocks base method.
func (m *MockPositionReporter) UpdatePosition(ctx context.Context, target string, args repl.UpdatePositionArgs) (*repl.UpdatePositionResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePosition", ctx, target, args)
	ret0, _ := ret[0].(*repl.UpdatePositionResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePosition indicates an expected call of UpdatePosition.
func (mr *MockPositionReporterMockRecorder) UpdatePosition(ctx, target, args interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePosition", reflect.TypeOf((*MockPositionReporter)(nil).UpdatePosition), ctx, target, args)
}

// MockConfigFetcher is a mock of ConfigFetcher interface.
type MockConfigFetcher struct {
	ctrl     *gomock.Controller
	recorder *MockConfigFetcherMockRecorder
}

// MockConfigFetcherMockRecorder is the mock recorder for MockConfigFetcher.
type MockConfigFetcherMockRecorder struct {
	mock *MockConfigFetcher
}

// NewMockConfigFetcher creates a new mock instance.
func NewMockConfigFetcher(ctrl *gomock.Controller) *MockConfigFetcher {
	mock := &MockConfigFetcher{ctrl: ctrl}
	mock.recorder = &MockConfigFetcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConfigFetcher) EXPECT() *MockConfigFetcherMockRecorder {
	return m.recorder
}

// FetchConfig mocks base method.
func (m *MockConfigFetcher) FetchConfig(ctx context.Context, target string) (*repl.Config, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchConfig", ctx, target)
	ret0, _ := ret[0].(*repl.Config)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchConfig indicates an expected call of FetchConfig.
func (mr *MockConfigFetcherMockRecorder) FetchConfig(ctx, target interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchConfig", reflect.TypeOf((*MockConfigFetcher)(nil).FetchConfig), ctx, target)
}
