// Package proto holds the wire contract. Generated code lands under
// gen/proto and is not committed.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/kahawa-labs/beanmarket --go-grpc_out=.. --go-grpc_opt=module=github.com/kahawa-labs/beanmarket catalog/v1/catalog.proto
