// Package cosmos encodes and decodes the small set of Cosmos SDK and
// CosmWasm protobuf messages the dispatcher exchanges with the chain.
// The shapes are fixed by the chain's public API, so the messages are
// assembled directly on the wire format instead of via generated stubs.
package cosmos

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// eachField walks every top-level field of a wire-encoded message.
// Bytes fields are passed through v, varint fields through u; other
// wire types are skipped.
func eachField(b []byte, fn func(num protowire.Number, v []byte, u uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("consume tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return fmt.Errorf("consume bytes field %d: %w", num, protowire.ParseError(m))
			}
			if err := fn(num, v, 0); err != nil {
				return err
			}
			b = b[m:]
		case protowire.VarintType:
			u, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return fmt.Errorf("consume varint field %d: %w", num, protowire.ParseError(m))
			}
			if err := fn(num, nil, u); err != nil {
				return err
			}
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("consume field %d: %w", num, protowire.ParseError(m))
			}
			b = b[m:]
		}
	}
	return nil
}

func appendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}
