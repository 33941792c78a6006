package chain

import "fmt"

// rawMessage carries pre-encoded protobuf bytes through a unary call.
// The request and response message shapes are assembled by the cosmos
// package, so the gRPC layer only moves opaque frames.
type rawMessage []byte

// rawCodec passes message bytes through untouched. It names itself
// "proto" so the server sees the regular grpc+proto content type.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(rawMessage)
	if !ok {
		return nil, fmt.Errorf("raw codec cannot marshal %T", v)
	}
	return msg, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(*rawMessage)
	if !ok {
		return fmt.Errorf("raw codec cannot unmarshal into %T", v)
	}
	*msg = data
	return nil
}

func (rawCodec) Name() string { return "proto" }
