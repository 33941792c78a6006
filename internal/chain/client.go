// Package chain provides the dual-channel client to the chain node: a
// gRPC channel for read-only smart-contract queries and a Tendermint
// JSON-RPC channel for signed-transaction broadcast-and-commit.
package chain

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/cosmos"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultBroadcastTimeout = 60 * time.Second

// Config carries the endpoints of the two channels.
type Config struct {
	GRPCEndpoint string
	GRPCTLS      bool
	RPCEndpoint  string
	// BroadcastTimeout bounds one broadcast-and-commit round trip,
	// block inclusion included.
	BroadcastTimeout time.Duration
}

// Client is the dispatcher's only window onto chain state. Queries and
// broadcasts carry no retry policy; that belongs to the caller.
type Client struct {
	conn   *grpc.ClientConn
	commit *commitClient
	logger *zap.Logger
}

// Dial connects both channels. The gRPC channel is instrumented with
// the prometheus and zap client interceptors.
func Dial(cfg Config, logger *zap.Logger, rpcMetrics RPCMetrics) (*Client, error) {
	if cfg.GRPCEndpoint == "" {
		return nil, errors.New("grpc endpoint is required")
	}
	if cfg.RPCEndpoint == "" {
		return nil, errors.New("json-rpc endpoint is required")
	}
	if cfg.BroadcastTimeout <= 0 {
		cfg.BroadcastTimeout = defaultBroadcastTimeout
	}

	transportCreds := insecure.NewCredentials()
	if cfg.GRPCTLS {
		transportCreds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(
		cfg.GRPCEndpoint,
		grpc.WithTransportCredentials(transportCreds),
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(
			grpcPrometheus.UnaryClientInterceptor,
			grpcZap.UnaryClientInterceptor(logger.Named("grpc")),
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial grpc endpoint %s: %w", cfg.GRPCEndpoint, err)
	}

	return &Client{
		conn:   conn,
		commit: newCommitClient(cfg.RPCEndpoint, cfg.BroadcastTimeout, rpcMetrics),
		logger: logger,
	}, nil
}

// QuerySmart executes a read-only smart-contract query and returns the
// contract's raw response bytes.
func (c *Client) QuerySmart(ctx context.Context, contract string, payload []byte) ([]byte, error) {
	const op = "smart contract state query"

	resp, err := c.invoke(ctx, cosmos.SmartContractStateMethod,
		cosmos.EncodeSmartContractStateRequest(contract, payload))
	if err != nil {
		return nil, classifyGRPCError(op, err)
	}

	data, err := cosmos.DecodeSmartContractStateResponse(resp)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}
	return data, nil
}

// Account fetches the account number and current sequence the chain
// expects for an address. Used once at startup.
func (c *Client) Account(ctx context.Context, address string) (cosmos.BaseAccount, error) {
	const op = "account query"

	resp, err := c.invoke(ctx, cosmos.AccountMethod, cosmos.EncodeAccountRequest(address))
	if err != nil {
		return cosmos.BaseAccount{}, classifyGRPCError(op, err)
	}

	account, err := cosmos.DecodeAccountResponse(resp)
	if err != nil {
		return cosmos.BaseAccount{}, &RemoteError{Op: op, Err: err}
	}
	return account, nil
}

// BroadcastCommit submits a signed transaction over the JSON-RPC
// channel and blocks for its commit result.
func (c *Client) BroadcastCommit(ctx context.Context, txBytes []byte) (*TxOutcome, error) {
	return c.commit.BroadcastCommit(ctx, txBytes)
}

// Close tears down the gRPC channel.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, request []byte) ([]byte, error) {
	var response rawMessage
	if err := c.conn.Invoke(ctx, method, rawMessage(request), &response, grpc.ForceCodec(rawCodec{})); err != nil {
		return nil, err
	}
	return response, nil
}
