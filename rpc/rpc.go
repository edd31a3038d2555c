// Package rpc reaches an external wallet over Ethereum JSON-RPC.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"jpyc-wallet-tui/wallet"
)

// codeUserRejected is the EIP-1193 "user rejected the request" error code
const codeUserRejected = 4001

// Client is a wallet provider behind a JSON-RPC endpoint
type Client struct {
	rpc *gethrpc.Client
	URL string
}

var _ wallet.Provider = (*Client)(nil)

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect dials the provider endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout dials with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	if url == "" {
		return ConnectResult{Error: errors.New("empty provider URL")}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Error: fmt.Errorf("dial %s: %w", url, err)}
	}
	return ConnectResult{Client: NewClient(c, url)}
}

// NewClient wraps an already dialled client
func NewClient(c *gethrpc.Client, url string) *Client {
	return &Client{rpc: c, URL: url}
}

// Close drops the connection
func (c *Client) Close() {
	if c != nil && c.rpc != nil {
		c.rpc.Close()
	}
}

// RequestAccounts prompts the wallet to authorize accounts
func (c *Client) RequestAccounts(ctx context.Context) ([]string, error) {
	return c.accounts(ctx, "eth_requestAccounts")
}

// Accounts lists already authorized accounts
func (c *Client) Accounts(ctx context.Context) ([]string, error) {
	return c.accounts(ctx, "eth_accounts")
}

func (c *Client) accounts(ctx context.Context, method string) ([]string, error) {
	var addrs []common.Address
	if err := c.rpc.CallContext(ctx, &addrs, method); err != nil {
		return nil, providerError(method, err)
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out, nil
}

// ChainID returns the network the wallet is on
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := c.rpc.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, providerError("eth_chainId", err)
	}
	return uint64(id), nil
}

func providerError(method string, err error) error {
	wrapped := fmt.Errorf("%s: %w", method, err)
	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeUserRejected {
		return wallet.ErrRejected(wrapped)
	}
	return wallet.ErrFailed(wrapped)
}
