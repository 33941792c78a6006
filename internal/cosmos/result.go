package cosmos

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrNoExecuteResponse reports that a transaction result carried no
// contract execution response. Seen when the transaction failed before
// reaching the contract's success path.
var ErrNoExecuteResponse = errors.New("transaction result carries no contract execute response")

const msgExecuteContractResponseSuffix = "MsgExecuteContractResponse"

// UnwrapExecuteResponse extracts the contract's declared return value
// from a transaction's TxMsgData result envelope. Both the modern
// msg_responses Any list and the legacy MsgData list are understood.
func UnwrapExecuteResponse(txData []byte) ([]byte, error) {
	var (
		fromAny    []byte
		fromLegacy []byte
	)
	err := eachField(txData, func(num protowire.Number, v []byte, _ uint64) error {
		switch num {
		case 2: // repeated google.protobuf.Any msg_responses
			if fromAny != nil {
				return nil
			}
			typeURL, value, err := decodeAny(v)
			if err != nil {
				return fmt.Errorf("decode msg response any: %w", err)
			}
			if !strings.HasSuffix(typeURL, msgExecuteContractResponseSuffix) {
				return nil
			}
			data, err := decodeExecuteContractResponse(value)
			if err != nil {
				return err
			}
			fromAny = data
		case 1: // repeated MsgData data (legacy, pre-0.46 chains)
			if fromLegacy != nil {
				return nil
			}
			data, err := decodeLegacyMsgData(v)
			if err != nil {
				return err
			}
			fromLegacy = data
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unwrap tx result envelope: %w", err)
	}

	switch {
	case fromAny != nil:
		return fromAny, nil
	case fromLegacy != nil:
		return fromLegacy, nil
	default:
		return nil, ErrNoExecuteResponse
	}
}

func decodeExecuteContractResponse(b []byte) ([]byte, error) {
	var data []byte
	err := eachField(b, func(num protowire.Number, v []byte, _ uint64) error {
		if num == 1 {
			data = v
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode execute contract response: %w", err)
	}
	return data, nil
}

func decodeLegacyMsgData(b []byte) ([]byte, error) {
	var (
		msgType string
		data    []byte
	)
	err := eachField(b, func(num protowire.Number, v []byte, _ uint64) error {
		switch num {
		case 1:
			msgType = string(v)
		case 2:
			data = v
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode legacy msg data: %w", err)
	}
	if !strings.HasSuffix(msgType, "MsgExecuteContract") {
		return nil, nil
	}
	// Legacy MsgData wraps the proto response the same way the Any value
	// does on modern chains.
	return decodeExecuteContractResponse(data)
}
