package chain

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TransportError is an infrastructure failure: the chain node could not
// be reached or did not answer in time. The RPC never completed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is reported by the chain node itself: the RPC completed
// but the node rejected it. Distinct from an on-chain transaction
// failure, which is a successful RPC outcome (see TxOutcome).
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("chain node rejected %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// classifyGRPCError splits a failed unary call into the transport /
// remote taxonomy. Connectivity and deadline problems are transport;
// anything the node answered with is remote.
func classifyGRPCError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Op: op, Err: err}
	}

	st, ok := status.FromError(err)
	if !ok {
		return &TransportError{Op: op, Err: err}
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return &TransportError{Op: op, Err: err}
	default:
		return &RemoteError{Op: op, Err: err}
	}
}
