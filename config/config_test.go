package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpyc-wallet-tui/logger"
)

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	assert.Equal(t, Config{}, Load(path), "missing file yields empty config")

	cfg := Config{Logger: true}
	cfg.Activate("Local", "http://127.0.0.1:8545")
	require.NoError(t, Save(path, cfg))

	got := Load(path)
	assert.True(t, got.Logger)
	assert.Equal(t, "http://127.0.0.1:8545", got.ActiveProvider())

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.Equal(t, Config{}, Load(path))
}

func TestActivate(t *testing.T) {
	var cfg Config
	cfg.Activate("A", "http://a")
	cfg.Activate("B", "http://b")
	require.Len(t, cfg.Providers, 2)
	assert.Equal(t, "http://b", cfg.ActiveProvider())

	cfg.Activate("", "http://a")
	assert.Len(t, cfg.Providers, 2)
	assert.Equal(t, "http://a", cfg.ActiveProvider())
	assert.False(t, cfg.Providers[1].Active)

	cfg.Remove(0)
	cfg.Remove(5)
	assert.Len(t, cfg.Providers, 1)
	assert.Empty(t, cfg.ActiveProvider())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("JPYC_PROVIDER_URL", "ws://127.0.0.1:8546")
	t.Setenv("JPYC_SCAN_FPS", "5")
	t.Setenv("JPYC_SOCIAL_DELAY", "250ms")

	e, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "ws://127.0.0.1:8546", e.ProviderURL)
	assert.Equal(t, 5, e.ScanFPS)
	assert.Equal(t, 250, e.ScanBox)
	assert.Equal(t, ScanClipboard, e.ScanSource)
	assert.Equal(t, 250*time.Millisecond, e.SocialDelay)
	assert.Equal(t, 2*time.Minute, e.ConnectTimeout)
	require.NoError(t, e.Validate())

	sc := e.ScanConfig()
	assert.Equal(t, 5, sc.FPS)
	assert.Equal(t, 250, sc.BoxHeight)
}

func TestEnvValidate(t *testing.T) {
	base, err := LoadEnv()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Env)
	}{
		{"unknown source", func(e *Env) { e.ScanSource = "webcam" }},
		{"frames without dir", func(e *Env) { e.ScanSource = ScanFrames }},
		{"fps zero", func(e *Env) { e.ScanFPS = 0 }},
		{"small box", func(e *Env) { e.ScanBox = 10 }},
		{"bad token", func(e *Env) { e.TokenAddress = "0x123...456" }},
		{"no timeout", func(e *Env) { e.ConnectTimeout = 0 }},
		{"negative balance", func(e *Env) { e.DemoBalance = "-5" }},
		{"non numeric balance", func(e *Env) { e.DemoBalance = "lots" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.mutate(&e)
			assert.Error(t, e.Validate())
		})
	}
}

func TestLoadDotEnv_ReportsLoadedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JPYC_DOTENV_TEST_BALANCE=42\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { os.Unsetenv("JPYC_DOTENV_TEST_BALANCE") })

	loaded := LoadDotEnv()
	assert.Contains(t, loaded, ".env")
	assert.Equal(t, "42", os.Getenv("JPYC_DOTENV_TEST_BALANCE"))

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.Close()
	LogDotEnv(loaded)
	assert.Contains(t, buf.String(), "Loaded .env")
}
