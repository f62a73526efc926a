// Package proto anchors code generation for the gRPC bindings. The generated
// packages live in the replv1 and adminv1 subdirectories.
package proto

//go:generate protoc --proto_path=../../proto --go_out=.. --go_opt=module=github.com/i-melnichenko/replset-lab/pkg --go-grpc_out=.. --go-grpc_opt=module=github.com/i-melnichenko/replset-lab/pkg replv1/repl.proto adminv1/admin.proto
