package wallet

import (
	"math/big"
	"strings"
)

const (
	// DemoBalance is the placeholder balance shown while no account is connected
	DemoBalance = "12500"
	// DemoAddress is the placeholder receiving address used in demo mode
	DemoAddress = "0xDemoWalletAddress123456789"
	// Currency is the token symbol displayed next to every amount
	Currency = "JPYC"
)

// State is the connection state of the current session.
// It is owned by the root model and only mutated from its Update loop.
type State struct {
	Account string // empty while in demo mode
	ChainID uint64 // zero when unknown
	Balance string
	Err     *Error
	Notice  string // informational message, e.g. provider missing
}

// NewState returns a demo-mode state
func NewState() *State {
	return &State{Balance: DemoBalance}
}

// IsDemo reports whether the session runs without a connected account
func (s *State) IsDemo() bool {
	return s.Account == ""
}

// BeginConnect clears messages left over from a previous attempt
func (s *State) BeginConnect() {
	s.Err = nil
	s.Notice = ""
}

// ApplyConnect folds the outcome of Connector.Connect into the state.
// A failed attempt only records the error.
func (s *State) ApplyConnect(r Result) {
	if r.Err != nil {
		s.Err = r.Err
		return
	}
	if len(r.Accounts) == 0 {
		s.Err = ErrNoAccounts()
		return
	}
	s.Account = r.Accounts[0]
	s.ChainID = r.ChainID
	s.Err = nil
}

// ApplyReconcile adopts an already-authorized account found at startup.
// Nothing changes when the provider reports no account or fails.
func (s *State) ApplyReconcile(r Result) {
	if r.Err != nil || len(r.Accounts) == 0 {
		return
	}
	s.Account = r.Accounts[0]
	if r.ChainID != 0 {
		s.ChainID = r.ChainID
	}
}

// Disconnect returns the session to demo mode
func (s *State) Disconnect() {
	s.Account = ""
	s.ChainID = 0
	s.Balance = DemoBalance
}

// NoProvider handles a connect request when no provider capability exists.
// On mobile it offers a deep link into the wallet app; the caller decides
// whether to follow it. Elsewhere it leaves an informational notice.
func (s *State) NoProvider(env Environment) Fallback {
	if env.Mobile {
		return Fallback{
			DeepLink: DeepLink(env.PageURL),
			Message:  "No wallet found. Open this page in the MetaMask app?",
		}
	}
	s.Notice = ErrUnavailable().Message
	return Fallback{Message: s.Notice}
}

// DeclineDeepLink records that the user chose to stay in demo mode
func (s *State) DeclineDeepLink() {
	s.Notice = "Continuing in demo mode."
}

// SetBalance replaces the displayed balance with a non-negative number
func (s *State) SetBalance(v string) error {
	v = strings.TrimSpace(v)
	if _, err := parseBalance(v); err != nil {
		return err
	}
	s.Balance = v
	return nil
}

func parseBalance(v string) (*big.Float, error) {
	f, ok := new(big.Float).SetString(v)
	if !ok {
		return nil, &Error{Kind: KindFailed, Code: "WALLET_005", Message: "Balance must be a number."}
	}
	if f.Sign() < 0 {
		return nil, &Error{Kind: KindFailed, Code: "WALLET_005", Message: "Balance must not be negative."}
	}
	return f, nil
}

// DisplayAddress returns the connected account, or the demo address
func (s *State) DisplayAddress() string {
	if s.Account == "" {
		return DemoAddress
	}
	return s.Account
}

// ShortAccount returns the first characters of the account for badges
func (s *State) ShortAccount(n int) string {
	if len(s.Account) <= n {
		return s.Account
	}
	return s.Account[:n]
}
