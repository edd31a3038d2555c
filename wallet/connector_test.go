package wallet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jpyc-wallet-tui/wallet"
	"jpyc-wallet-tui/wallet/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConnect_AdoptsFirstAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().RequestAccounts(gomock.Any()).Return([]string{"0xABC...", "0xDEF..."}, nil)
	p.EXPECT().ChainID(gomock.Any()).Return(uint64(137), nil)

	c := wallet.NewConnector(p, wallet.Environment{}, time.Second)
	s := wallet.NewState()
	s.BeginConnect()
	s.ApplyConnect(c.Connect(context.Background()))

	assert.Equal(t, "0xABC...", s.Account)
	assert.Equal(t, uint64(137), s.ChainID)
	assert.False(t, s.IsDemo())
	assert.Nil(t, s.Err)
}

func TestConnect_RejectedLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().RequestAccounts(gomock.Any()).Return(nil, wallet.ErrRejected(errors.New("user denied")))

	c := wallet.NewConnector(p, wallet.Environment{}, time.Second)
	s := wallet.NewState()
	s.Account = "0x1111111111111111111111111111111111111111"
	s.ChainID = 1

	s.BeginConnect()
	s.ApplyConnect(c.Connect(context.Background()))

	require.NotNil(t, s.Err)
	assert.Equal(t, wallet.KindRejected, s.Err.Kind)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", s.Account)
	assert.Equal(t, uint64(1), s.ChainID)
	assert.Equal(t, wallet.DemoBalance, s.Balance)
}

func TestConnect_ProviderFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(p *mocks.MockProvider)
		wantKind wallet.Kind
	}{
		{
			name: "request throws",
			setup: func(p *mocks.MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantKind: wallet.KindFailed,
		},
		{
			name: "empty account list",
			setup: func(p *mocks.MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return([]string{}, nil)
			},
			wantKind: wallet.KindNoAccounts,
		},
		{
			name: "chain id query fails",
			setup: func(p *mocks.MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return([]string{"0xABC"}, nil)
				p.EXPECT().ChainID(gomock.Any()).Return(uint64(0), errors.New("network down"))
			},
			wantKind: wallet.KindFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := mocks.NewMockProvider(ctrl)
			tt.setup(p)

			c := wallet.NewConnector(p, wallet.Environment{}, time.Second)
			s := wallet.NewState()
			s.BeginConnect()
			s.ApplyConnect(c.Connect(context.Background()))

			require.NotNil(t, s.Err)
			assert.Equal(t, tt.wantKind, s.Err.Kind)
			assert.True(t, s.IsDemo())
			assert.Empty(t, s.Account)
		})
	}
}

func TestConnect_ErrorClearedOnNextAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockProvider(ctrl)
	gomock.InOrder(
		p.EXPECT().RequestAccounts(gomock.Any()).Return(nil, wallet.ErrRejected(nil)),
		p.EXPECT().RequestAccounts(gomock.Any()).Return([]string{"0xABC"}, nil),
	)
	p.EXPECT().ChainID(gomock.Any()).Return(uint64(137), nil)

	c := wallet.NewConnector(p, wallet.Environment{}, time.Second)
	s := wallet.NewState()

	s.BeginConnect()
	s.ApplyConnect(c.Connect(context.Background()))
	require.NotNil(t, s.Err)

	s.BeginConnect()
	assert.Nil(t, s.Err, "error must be cleared when a new attempt starts")

	s.ApplyConnect(c.Connect(context.Background()))
	assert.Nil(t, s.Err)
	assert.Equal(t, "0xABC", s.Account)
}

func TestConnect_NoProvider(t *testing.T) {
	c := wallet.NewConnector(nil, wallet.Environment{}, 0)
	assert.False(t, c.Available())

	r := c.Connect(context.Background())
	require.NotNil(t, r.Err)
	assert.True(t, wallet.IsKind(r.Err, wallet.KindUnavailable))
}

func TestReconcile(t *testing.T) {
	t.Run("adopts authorized account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Accounts(gomock.Any()).Return([]string{"0xAAA", "0xBBB"}, nil)
		p.EXPECT().ChainID(gomock.Any()).Return(uint64(137), nil)
		p.EXPECT().RequestAccounts(gomock.Any()).Times(0)

		s := wallet.NewState()
		s.ApplyReconcile(wallet.NewConnector(p, wallet.Environment{}, time.Second).Reconcile(context.Background()))

		assert.Equal(t, "0xAAA", s.Account)
		assert.Equal(t, uint64(137), s.ChainID)
		assert.False(t, s.IsDemo())
	})

	t.Run("keeps demo when nothing is authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Accounts(gomock.Any()).Return(nil, nil)

		s := wallet.NewState()
		s.ApplyReconcile(wallet.NewConnector(p, wallet.Environment{}, time.Second).Reconcile(context.Background()))

		assert.True(t, s.IsDemo())
		assert.Nil(t, s.Err)
	})

	t.Run("silent on provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Accounts(gomock.Any()).Return(nil, errors.New("locked"))

		s := wallet.NewState()
		s.ApplyReconcile(wallet.NewConnector(p, wallet.Environment{}, time.Second).Reconcile(context.Background()))

		assert.True(t, s.IsDemo())
		assert.Nil(t, s.Err)
	})

	t.Run("chain failure still adopts account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := mocks.NewMockProvider(ctrl)
		p.EXPECT().Accounts(gomock.Any()).Return([]string{"0xAAA"}, nil)
		p.EXPECT().ChainID(gomock.Any()).Return(uint64(0), errors.New("nope"))

		s := wallet.NewState()
		s.ApplyReconcile(wallet.NewConnector(p, wallet.Environment{}, time.Second).Reconcile(context.Background()))

		assert.Equal(t, "0xAAA", s.Account)
		assert.Zero(t, s.ChainID)
	})
}

func TestConnect_HonoursTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockProvider(ctrl)
	p.EXPECT().RequestAccounts(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]string, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	c := wallet.NewConnector(p, wallet.Environment{}, 20*time.Millisecond)
	r := c.Connect(context.Background())

	require.NotNil(t, r.Err)
	assert.Equal(t, wallet.KindFailed, r.Err.Kind)
	assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
}

// gatedProvider blocks every account request until release is closed
type gatedProvider struct {
	entered chan struct{}
	release chan struct{}
}

func newGatedProvider() *gatedProvider {
	return &gatedProvider{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (p *gatedProvider) wait(ctx context.Context) ([]string, error) {
	p.entered <- struct{}{}
	select {
	case <-p.release:
		return []string{"0xABC..."}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *gatedProvider) RequestAccounts(ctx context.Context) ([]string, error) { return p.wait(ctx) }
func (p *gatedProvider) Accounts(ctx context.Context) ([]string, error) { return p.wait(ctx) }
func (p *gatedProvider) ChainID(context.Context) (uint64, error) { return 137, nil }

func TestSnapshot_ProviderSwappedDuringRequest(t *testing.T) {
	tests := []struct {
		name string
		call func(*wallet.Connector) wallet.Result
		want []string
	}{
		{"connect", func(c *wallet.Connector) wallet.Result { return c.Connect(context.Background()) }, []string{"0xABC..."}},
		{"reconcile", func(c *wallet.Connector) wallet.Result { return c.Reconcile(context.Background()) }, []string{"0xABC..."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newGatedProvider()
			c := wallet.NewConnector(p, wallet.Environment{}, time.Second)

			snap := c.Snapshot()
			done := make(chan wallet.Result, 1)
			go func() { done <- tt.call(snap) }()

			<-p.entered
			c.SetProvider(nil)
			close(p.release)

			res := <-done
			require.Nil(t, res.Err)
			assert.Equal(t, tt.want, res.Accounts)
			assert.Equal(t, uint64(137), res.ChainID)
			assert.False(t, c.Available())
			assert.True(t, snap.Available())
		})
	}
}

func TestSnapshot_Nil(t *testing.T) {
	var c *wallet.Connector
	assert.Nil(t, c.Snapshot())
	assert.False(t, c.Snapshot().Available())
}
