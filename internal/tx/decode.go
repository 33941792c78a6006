package tx

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/cosmos"
)

// DecodeExecuteResponse unwraps a transaction result's envelope and
// deserializes the contract's JSON return value into the given
// response type. The two failure modes are independent: a missing or
// malformed envelope means the transaction never reached the contract's
// success path, while a present-but-unexpected payload points at a
// contract/dispatcher version mismatch. Both are recoverable; callers
// treat them as "nothing dispatched".
func DecodeExecuteResponse(txData []byte, into any) error {
	payload, err := cosmos.UnwrapExecuteResponse(txData)
	if err != nil {
		return fmt.Errorf("unwrap execute response envelope: %w", err)
	}
	if err := json.Unmarshal(payload, into); err != nil {
		return fmt.Errorf("deserialize execute response payload: %w", err)
	}
	return nil
}
