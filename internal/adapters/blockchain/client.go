package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// RPCClient implements usecase.ChainClient using ethclient. Each call dials
// its own connection since commands touch a network at most a couple of times.
type RPCClient struct {
	timeout time.Duration
}

// NewRPCClient creates a new RPC client
func NewRPCClient(timeout time.Duration) *RPCClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RPCClient{timeout: timeout}
}

// ChainID returns the chain ID reported by the endpoint
func (c *RPCClient) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// PendingNonce returns the next nonce of account including pending transactions
func (c *RPCClient) PendingNonce(ctx context.Context, rpcURL string, account common.Address) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	nonce, err := client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return nonce, nil
}

func (c *RPCClient) dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("network has no RPC URL")
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return client, nil
}

var _ usecase.ChainClient = (*RPCClient)(nil)
