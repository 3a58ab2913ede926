// Package history implements the transaction-history collaborator contract
// on top of EVM JSON-RPC, scanning recent blocks for transfers into a
// wallet. Tron has no history endpoint and is reported as unsupported.
package history

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RPCClient wraps Ethereum RPC clients with multi-URL failover. The client
// is an explicit instance owned by its consumer; there is no process-wide
// singleton.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	mu      sync.RWMutex
	current int
}

// NewRPCClient creates a new RPC client. Unreachable URLs are retried on
// use instead of failing construction, as long as at least one connects.
func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(urls))
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
	}

	if allClientsNil(clients) {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
		current: 0,
	}, nil
}

func allClientsNil(clients []*ethclient.Client) bool {
	for _, client := range clients {
		if client != nil {
			return false
		}
	}
	return true
}

// Close closes all client connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// getClient returns the current healthy client, rotating through the URL
// list and re-dialing failed endpoints.
func (c *RPCClient) getClient(_ context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for attempt := 0; attempt < len(c.clients); attempt++ {
		index := (c.current + attempt) % len(c.clients)

		if c.clients[index] == nil {
			client, err := ethclient.Dial(c.urls[index])
			if err != nil {
				continue
			}
			c.clients[index] = client
		}

		c.current = index
		return c.clients[index], nil
	}

	return nil, errors.New("no healthy RPC client available")
}

// LatestBlockNumber returns the most recent block number.
func (c *RPCClient) LatestBlockNumber(ctx context.Context) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get RPC client")
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}

	return blockNumber, nil
}

// BlockByNumber returns a full block by number.
func (c *RPCClient) BlockByNumber(ctx context.Context, blockNumber *big.Int) (*types.Block, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	block, err := client.BlockByNumber(ctx, blockNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block by number")
	}

	return block, nil
}
