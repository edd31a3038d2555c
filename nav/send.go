package nav

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"jpyc-wallet-tui/scan"
	"jpyc-wallet-tui/wallet"
)

// SendStep is the sub state of the send view
type SendStep int

const (
	StepInput SendStep = iota
	StepScanning
)

func (s SendStep) String() string {
	if s == StepScanning {
		return "scanning"
	}
	return "input"
}

// JPYCToken is the JPYC contract on Polygon
const JPYCToken = "0x431D5dfF03120AFA4bDf332c61A6e1766eF37BDB"

var (
	ErrNoDecoder           = errors.New("no QR decoder configured")
	ErrInvalidAddress      = errors.New("invalid recipient address")
	ErrInvalidAmount       = errors.New("amount must be a positive whole number")
	ErrInsufficientBalance = errors.New("amount exceeds balance")
)

// SendFlow is the send view's state: the recipient and amount fields plus
// an optional scan session. At most one session is live at a time and it is
// released exactly once on every path out of the scanning step.
type SendFlow struct {
	Address string
	Amount  string
	Token   string

	decoder scan.Decoder
	cfg     scan.Config

	mu      sync.Mutex
	step    SendStep
	session scan.Session
	cancel  context.CancelFunc
	gen     int
}

// NewSendFlow builds a flow using dec for scanning. dec may be nil, in which
// case StartScan fails with ErrNoDecoder.
func NewSendFlow(dec scan.Decoder) *SendFlow {
	return &SendFlow{decoder: dec, cfg: scan.DefaultConfig(), Token: JPYCToken}
}

// WithConfig overrides the scan configuration
func (f *SendFlow) WithConfig(cfg scan.Config) *SendFlow {
	f.cfg = cfg
	return f
}

func (f *SendFlow) Step() SendStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Generation identifies the current scan session. Decoded payloads tagged
// with another generation are stale.
func (f *SendFlow) Generation() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen
}

// Scanning reports whether a session is live
func (f *SendFlow) Scanning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session != nil
}

// StartScan acquires a session and enters the scanning step. It is a no-op
// returning the current generation while a session is already live.
func (f *SendFlow) StartScan(ctx context.Context, onDecode func(gen int, text string)) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session != nil {
		return f.gen, nil
	}
	if f.decoder == nil {
		return f.gen, ErrNoDecoder
	}

	f.gen++
	gen := f.gen
	sctx, cancel := context.WithCancel(ctx)
	sess, err := f.decoder.Start(sctx, f.cfg, func(text string) {
		if onDecode != nil {
			onDecode(gen, text)
		}
	})
	if err != nil {
		cancel()
		return gen, fmt.Errorf("start scanner: %w", err)
	}
	f.session = sess
	f.cancel = cancel
	f.step = StepScanning
	return gen, nil
}

// AcceptDecoded writes the address found in payload into the recipient
// field and returns to input, releasing the session.
func (f *SendFlow) AcceptDecoded(payload string) (string, error) {
	addr := scan.ExtractAddress(payload)
	f.Address = addr
	return addr, f.StopScan()
}

// StopScan leaves the scanning step
func (f *SendFlow) StopScan() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.releaseLocked()
}

// Close releases any session. Used when navigating away.
func (f *SendFlow) Close() error { return f.StopScan() }

// Reset closes the flow and clears its fields
func (f *SendFlow) Reset() error {
	err := f.Close()
	f.Address, f.Amount = "", ""
	return err
}

func (f *SendFlow) releaseLocked() error {
	f.step = StepInput
	if f.session == nil {
		return nil
	}
	sess, cancel := f.session, f.cancel
	f.session, f.cancel = nil, nil
	cancel()
	return sess.Release()
}

// Intent is a validated transfer ready to hand to an external wallet
type Intent struct {
	To      common.Address
	Amount  int64
	Token   common.Address
	ChainID uint64
}

// URI renders the intent as an EIP-681 ERC-20 transfer request
func (i Intent) URI() string {
	return fmt.Sprintf("ethereum:%s@%d/transfer?address=%s&uint256=%de18",
		i.Token.Hex(), i.ChainID, i.To.Hex(), i.Amount)
}

// Review validates the form against balance and builds the transfer intent.
func (f *SendFlow) Review(balance string) (Intent, error) {
	to := strings.TrimSpace(f.Address)
	if !common.IsHexAddress(to) {
		return Intent{}, ErrInvalidAddress
	}
	amt, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(f.Amount), ",", ""), 10, 64)
	if err != nil || amt <= 0 {
		return Intent{}, ErrInvalidAmount
	}
	bal, ok := new(big.Float).SetString(balance)
	if !ok {
		return Intent{}, fmt.Errorf("parse balance %q", balance)
	}
	if new(big.Float).SetInt64(amt).Cmp(bal) > 0 {
		return Intent{}, ErrInsufficientBalance
	}
	token := f.Token
	if !common.IsHexAddress(token) {
		token = JPYCToken
	}
	return Intent{
		To:      common.HexToAddress(to),
		Amount:  amt,
		Token:   common.HexToAddress(token),
		ChainID: wallet.PolygonChainID,
	}, nil
}
