package wallet

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks jpyc-wallet-tui/wallet Provider

// Provider is the external wallet capability (EIP-1193 style)
type Provider interface {
	// RequestAccounts asks the user to authorize accounts
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts lists already-authorized accounts without prompting
	Accounts(ctx context.Context) ([]string, error)
	// ChainID returns the current network identifier
	ChainID(ctx context.Context) (uint64, error)
}

// Result is the outcome of a provider round trip
type Result struct {
	Accounts []string
	ChainID  uint64
	Err      *Error
}

// Fallback is what connect yields when no provider is present
type Fallback struct {
	DeepLink string // empty unless a mobile deep link is offered
	Message  string
}

// DefaultTimeout bounds a single provider round trip
const DefaultTimeout = 2 * time.Minute

// Connector binds an optional provider to the environment it runs in
type Connector struct {
	provider Provider
	env      Environment
	timeout  time.Duration
}

// NewConnector creates a connector. A nil provider means none is installed.
func NewConnector(p Provider, env Environment, timeout time.Duration) *Connector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Connector{provider: p, env: env, timeout: timeout}
}

// Available reports whether a provider capability is present
func (c *Connector) Available() bool {
	return c != nil && c.provider != nil
}

// SetProvider installs or removes the provider capability
func (c *Connector) SetProvider(p Provider) {
	c.provider = p
}

// Snapshot returns a copy bound to the current provider. Commands running
// outside the update loop use the copy, so a later SetProvider on c does
// not affect a request already in flight.
func (c *Connector) Snapshot() *Connector {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Environment returns the environment the connector was created for
func (c *Connector) Environment() Environment {
	return c.env
}

// Connect requests account authorization and the current chain id.
// It blocks until the provider answers, fails, or the timeout elapses.
func (c *Connector) Connect(ctx context.Context) Result {
	if !c.Available() {
		return Result{Err: ErrUnavailable()}
	}
	p := c.provider
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	accounts, err := p.RequestAccounts(ctx)
	if err != nil {
		return Result{Err: asError(err)}
	}
	if len(accounts) == 0 {
		return Result{Err: ErrNoAccounts()}
	}

	chainID, err := p.ChainID(ctx)
	if err != nil {
		return Result{Err: asError(err)}
	}

	return Result{Accounts: accounts, ChainID: chainID}
}

// Reconcile silently lists authorized accounts. It never prompts the user.
func (c *Connector) Reconcile(ctx context.Context) Result {
	if !c.Available() {
		return Result{Err: ErrUnavailable()}
	}
	p := c.provider
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	accounts, err := p.Accounts(ctx)
	if err != nil {
		return Result{Err: asError(err)}
	}
	if len(accounts) == 0 {
		return Result{}
	}

	// the account is still adopted when the chain query fails
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return Result{Accounts: accounts}
	}
	return Result{Accounts: accounts, ChainID: chainID}
}
