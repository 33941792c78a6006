package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/tx"
	"github.com/goodnatureofminers/alarms-dispatcher/pkg/safe"
)

// Contract messages and responses of the alarms-bearing oracle and
// timealarms contracts. Both speak the same dispatch protocol, so a
// single codec covers every alarm type.

type statusQueryMsg struct {
	Status struct{} `json:"status"`
}

type dispatchAlarmsMsg struct {
	DispatchAlarms struct {
		MaxCount uint32 `json:"max_count"`
	} `json:"dispatch_alarms"`
}

// EncodeStatusQuery serializes the query asking whether any alarms
// remain for dispatch.
func EncodeStatusQuery() ([]byte, error) {
	payload, err := json.Marshal(statusQueryMsg{})
	if err != nil {
		return nil, fmt.Errorf("serialize status query: %w", err)
	}
	return payload, nil
}

// EncodeDispatchAlarms serializes the execute message requesting the
// contract dispatch at most maxCount queued alarms.
func EncodeDispatchAlarms(maxCount uint32) ([]byte, error) {
	var msg dispatchAlarmsMsg
	msg.DispatchAlarms.MaxCount = maxCount

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("serialize dispatch_alarms message: %w", err)
	}
	return payload, nil
}

// StatusResponse is the contract's answer to a status query.
type StatusResponse struct {
	RemainingAlarms bool `json:"remaining_alarms"`
}

// RemainingForDispatch reports whether the contract holds alarms due
// for dispatch.
func (r StatusResponse) RemainingForDispatch() bool {
	return r.RemainingAlarms
}

// DispatchedAlarmsResponse is the contract's execution payload after a
// committed dispatch_alarms transaction.
type DispatchedAlarmsResponse struct {
	Dispatched uint64 `json:"dispatched"`
}

type dispatchedCount uint32

func (c dispatchedCount) DispatchedCount() uint32 {
	return uint32(c)
}

// ResponseCodec binds an alarm type to the wire shapes its contract
// declares for the status query and the dispatch execution payload.
type ResponseCodec struct {
	DecodeStatus func(raw []byte) (QueryStatus, error)
	DecodeResult func(txData []byte, requested uint32) (DispatchResult, error)
}

// AlarmsCodec returns the codec shared by the oracle and timealarms
// contracts.
func AlarmsCodec() ResponseCodec {
	return ResponseCodec{
		DecodeStatus: decodeStatus,
		DecodeResult: decodeResult,
	}
}

func decodeStatus(raw []byte) (QueryStatus, error) {
	var status StatusResponse
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("deserialize alarms status: %w", err)
	}
	return status, nil
}

func decodeResult(txData []byte, requested uint32) (DispatchResult, error) {
	var response DispatchedAlarmsResponse
	if err := tx.DecodeExecuteResponse(txData, &response); err != nil {
		return nil, err
	}

	count, err := safe.Uint32(response.Dispatched)
	if err != nil {
		return nil, fmt.Errorf("dispatched alarms count: %w", err)
	}
	if count > requested {
		return nil, fmt.Errorf(
			"contract reported %d dispatched alarms, more than the %d requested",
			count, requested,
		)
	}
	return dispatchedCount(count), nil
}
