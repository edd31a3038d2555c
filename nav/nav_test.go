package nav

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpyc-wallet-tui/scan"
)

type fakeDecoder struct {
	mu         sync.Mutex
	acquired   int
	released   int
	failWith   error
	releaseErr error
	onDecode   func(string)
}

type fakeSession struct {
	d    *fakeDecoder
	once sync.Once
}

func (s *fakeSession) Release() error {
	s.once.Do(func() {
		s.d.mu.Lock()
		s.d.released++
		s.d.mu.Unlock()
	})
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	return s.d.releaseErr
}

func (d *fakeDecoder) Start(_ context.Context, _ scan.Config, onDecode func(string)) (scan.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failWith != nil {
		return nil, d.failWith
	}
	d.acquired++
	d.onDecode = onDecode
	return &fakeSession{d: d}, nil
}

func (d *fakeDecoder) live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acquired - d.released
}

func TestRouter_NavigationLeavesNoSession(t *testing.T) {
	for _, target := range []View{ViewSend, ViewReceive, ViewHistory, ViewContacts} {
		t.Run(target.String(), func(t *testing.T) {
			dec := &fakeDecoder{}
			r := NewRouter(NewSendFlow(dec))

			require.NoError(t, r.Go(target))
			assert.Equal(t, target, r.Current())
			if target == ViewSend {
				_, err := r.Send().StartScan(context.Background(), nil)
				require.NoError(t, err)
				assert.Equal(t, 1, dec.live())
			}

			require.NoError(t, r.Home())
			assert.Equal(t, ViewHome, r.Current())
			assert.Equal(t, 0, dec.live())
			assert.Equal(t, StepInput, r.Send().Step())
		})
	}
}

func TestRouter_ProfileDoesNotChangeView(t *testing.T) {
	r := NewRouter(nil)
	require.NoError(t, r.Go(ViewHistory))

	r.OpenProfile()
	assert.True(t, r.ProfileOpen())
	assert.Equal(t, ViewHistory, r.Current())

	r.CloseProfile()
	assert.False(t, r.ProfileOpen())
	assert.Equal(t, ViewHistory, r.Current())
}

func TestRouter_SendTo(t *testing.T) {
	r := NewRouter(nil)
	r.Send().Amount = "stale"

	require.NoError(t, r.Go(ViewContacts))
	require.NoError(t, r.SendTo("0x123...456"))

	assert.Equal(t, ViewSend, r.Current())
	assert.Equal(t, "0x123...456", r.Send().Address)
	assert.Empty(t, r.Send().Amount)
}

func TestParseView(t *testing.T) {
	for _, v := range []View{ViewHome, ViewSend, ViewReceive, ViewHistory, ViewContacts, ViewSettings} {
		got, ok := ParseView(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseView("wallets")
	assert.False(t, ok)
	assert.Equal(t, "Contacts", ViewContacts.Title())
}

func TestSendFlow_ScanIsExclusive(t *testing.T) {
	dec := &fakeDecoder{}
	f := NewSendFlow(dec)

	g1, err := f.StartScan(context.Background(), nil)
	require.NoError(t, err)
	g2, err := f.StartScan(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, g1, g2)
	assert.Equal(t, 1, dec.acquired)
	assert.Equal(t, StepScanning, f.Step())
}

func TestSendFlow_AcceptDecoded(t *testing.T) {
	dec := &fakeDecoder{}
	f := NewSendFlow(dec)

	var gotGen int
	var gotText string
	gen, err := f.StartScan(context.Background(), func(g int, text string) {
		gotGen, gotText = g, text
	})
	require.NoError(t, err)

	dec.onDecode("ethereum:0x1234?amount=5")
	assert.Equal(t, gen, gotGen)

	addr, err := f.AcceptDecoded(gotText)
	require.NoError(t, err)
	assert.Equal(t, "0x1234", addr)
	assert.Equal(t, "0x1234", f.Address)
	assert.Equal(t, StepInput, f.Step())
	assert.Equal(t, 0, dec.live())
	assert.Equal(t, 1, dec.released)
}

func TestSendFlow_ReleaseOnce(t *testing.T) {
	dec := &fakeDecoder{}
	f := NewSendFlow(dec)

	_, err := f.StartScan(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, f.StopScan())
	require.NoError(t, f.StopScan())
	require.NoError(t, f.Close())
	assert.Equal(t, 1, dec.released)

	gen, err := f.StartScan(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, gen)
}

func TestSendFlow_StartFailure(t *testing.T) {
	f := NewSendFlow(&fakeDecoder{failWith: errors.New("no camera")})
	_, err := f.StartScan(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, StepInput, f.Step())
	assert.False(t, f.Scanning())

	_, err = NewSendFlow(nil).StartScan(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoDecoder)
}

func TestSendFlow_Review(t *testing.T) {
	const to = "0x52908400098527886e0f7030069857d2e4169ee7"

	tests := []struct {
		name    string
		address string
		amount  string
		wantErr error
	}{
		{"ok", to, "500", nil},
		{"with separators", to, "1,000", nil},
		{"bad address", "0x123...456", "500", ErrInvalidAddress},
		{"zero", to, "0", ErrInvalidAmount},
		{"fraction", to, "1.5", ErrInvalidAmount},
		{"too much", to, "12501", ErrInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSendFlow(nil)
			f.Address, f.Amount = tt.address, tt.amount
			intent, err := f.Review("12500")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(137), intent.ChainID)
		})
	}
}

func TestIntent_URI(t *testing.T) {
	f := NewSendFlow(nil)
	f.Address = "0x52908400098527886e0f7030069857d2e4169ee7"
	f.Amount = "500"

	intent, err := f.Review("12500")
	require.NoError(t, err)
	want := "ethereum:" + common.HexToAddress(JPYCToken).Hex() +
		"@137/transfer?address=0x52908400098527886E0F7030069857D2E4169EE7&uint256=500e18"
	assert.Equal(t, want, intent.URI())
}

func TestRouter_EnteringSendReportsReleaseError(t *testing.T) {
	boom := errors.New("camera busy")
	dec := &fakeDecoder{releaseErr: boom}
	r := NewRouter(NewSendFlow(dec))

	// a session left behind on the flow is released when send is entered again
	_, err := r.Send().StartScan(context.Background(), nil)
	require.NoError(t, err)

	err = r.Go(ViewSend)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ViewSend, r.Current())
	assert.Equal(t, 0, dec.live())
}
