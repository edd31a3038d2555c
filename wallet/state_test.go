package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_IsDemo(t *testing.T) {
	s := NewState()
	assert.True(t, s.IsDemo())
	assert.Equal(t, DemoBalance, s.Balance)
	assert.Equal(t, DemoAddress, s.DisplayAddress())
}

func TestDisconnect_Idempotent(t *testing.T) {
	s := NewState()
	s.ApplyConnect(Result{Accounts: []string{"0xABC"}, ChainID: 137})
	s.Balance = "500"

	s.Disconnect()
	once := *s
	s.Disconnect()

	assert.Equal(t, once, *s)
	assert.True(t, s.IsDemo())
	assert.Zero(t, s.ChainID)
	assert.Equal(t, DemoBalance, s.Balance)
}

func TestDemoInvariant_HoldsAcrossSequences(t *testing.T) {
	ok := Result{Accounts: []string{"0xABC", "0xDEF"}, ChainID: 137}
	fail := Result{Err: ErrRejected(nil)}

	steps := map[string]func(s *State){
		"connect":    func(s *State) { s.BeginConnect(); s.ApplyConnect(ok) },
		"reject":     func(s *State) { s.BeginConnect(); s.ApplyConnect(fail) },
		"disconnect": func(s *State) { s.Disconnect() },
		"reconcile":  func(s *State) { s.ApplyReconcile(ok) },
		"no-accounts": func(s *State) {
			s.BeginConnect()
			s.ApplyConnect(Result{})
		},
	}

	sequences := [][]string{
		{"connect", "disconnect", "connect"},
		{"reject", "reject", "connect", "reject"},
		{"disconnect", "disconnect"},
		{"reconcile", "disconnect", "no-accounts"},
		{"connect", "no-accounts", "disconnect", "reject"},
	}

	for _, seq := range sequences {
		s := NewState()
		for _, name := range seq {
			steps[name](s)
			assert.Equal(t, s.Account == "", s.IsDemo(), "after %s in %v", name, seq)
			_, err := parseBalance(s.Balance)
			assert.NoError(t, err, "balance after %s in %v", name, seq)
		}
	}
}

func TestNoProvider(t *testing.T) {
	t.Run("desktop informs and stays in demo", func(t *testing.T) {
		s := NewState()
		fb := s.NoProvider(Environment{Mobile: false})

		assert.Empty(t, fb.DeepLink)
		assert.NotEmpty(t, s.Notice)
		assert.True(t, s.IsDemo())
		assert.Nil(t, s.Err)
	})

	t.Run("mobile offers a deep link", func(t *testing.T) {
		s := NewState()
		fb := s.NoProvider(Environment{Mobile: true, PageURL: "https://wallet.example.com/app"})

		assert.Equal(t, "https://metamask.app.link/dapp/wallet.example.com/app", fb.DeepLink)
		assert.True(t, s.IsDemo())

		s.DeclineDeepLink()
		assert.True(t, s.IsDemo())
		assert.NotEmpty(t, s.Notice)
	})
}

func TestSetBalance(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetBalance("500"))
	assert.Equal(t, "500", s.Balance)

	require.NoError(t, s.SetBalance(" 0.25 "))
	assert.Equal(t, "0.25", s.Balance)

	assert.Error(t, s.SetBalance("-1"))
	assert.Error(t, s.SetBalance("lots"))
	assert.Equal(t, "0.25", s.Balance)
}

func TestShortAccount(t *testing.T) {
	s := NewState()
	assert.Empty(t, s.ShortAccount(4))
	s.Account = "0xABCDEF"
	assert.Equal(t, "0xAB", s.ShortAccount(4))
}

func TestDeepLink(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://jpyc.example.com/", "https://metamask.app.link/dapp/jpyc.example.com/"},
		{"https://jpyc.example.com/pay?to=1", "https://metamask.app.link/dapp/jpyc.example.com/pay?to=1"},
		{"jpyc.example.com", "https://metamask.app.link/dapp/jpyc.example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeepLink(tt.in))
	}
}

func TestDetectEnvironment(t *testing.T) {
	t.Setenv("TERMUX_VERSION", "")

	assert.True(t, DetectEnvironment("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "").Mobile)
	assert.True(t, DetectEnvironment("Mozilla/5.0 (Linux; Android 14)", "").Mobile)
	assert.False(t, DetectEnvironment("Mozilla/5.0 (X11; Linux x86_64)", "").Mobile)

	t.Setenv("TERMUX_VERSION", "0.118.0")
	assert.True(t, DetectEnvironment("", "").Mobile)
}

func TestNetworkName(t *testing.T) {
	assert.Equal(t, "Polygon", NetworkName(PolygonChainID))
	assert.Equal(t, "unknown network", NetworkName(0))
	assert.Equal(t, "chain 999", NetworkName(999))
}
