package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"jpyc-wallet-tui/logger"
	"jpyc-wallet-tui/scan"
	"jpyc-wallet-tui/wallet"
)

// EnvPrefix namespaces every variable read by Env
const EnvPrefix = "JPYC"

// Scan sources
const (
	ScanClipboard = "clipboard"
	ScanFrames    = "frames"
)

// Env is the environment driven configuration. Command line flags override it.
type Env struct {
	ProviderURL    string        `envconfig:"PROVIDER_URL"`
	UserAgent      string        `envconfig:"USER_AGENT"`
	Mobile         bool          `envconfig:"MOBILE"`
	DappURL        string        `envconfig:"DAPP_URL" default:"http://localhost:5173/"`
	ScanSource     string        `envconfig:"SCAN_SOURCE" default:"clipboard"`
	ScanDir        string        `envconfig:"SCAN_DIR"`
	ScanFPS        int           `envconfig:"SCAN_FPS" default:"10"`
	ScanBox        int           `envconfig:"SCAN_BOX" default:"250"`
	TokenAddress   string        `envconfig:"TOKEN_ADDRESS" default:"0x431D5dfF03120AFA4bDf332c61A6e1766eF37BDB"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"2m"`
	SocialDelay    time.Duration `envconfig:"SOCIAL_DELAY" default:"1s"`
	LogDir         string        `envconfig:"LOG_DIR"`
	QRDir          string        `envconfig:"QR_DIR" default:"."`
	DemoBalance    string        `envconfig:"DEMO_BALANCE"`
}

// LoadDotEnv loads .env files from the working directory and from the
// directory of the executable. Missing files are not an error. It runs
// before the file logger exists, so the loaded paths are returned for
// LogDotEnv.
func LoadDotEnv() []string {
	var loaded []string
	if err := godotenv.Load(); err == nil {
		loaded = append(loaded, ".env")
	}

	execPath, err := os.Executable()
	if err != nil {
		return loaded
	}
	envPath := filepath.Join(filepath.Dir(execPath), ".env")
	if err := godotenv.Load(envPath); err == nil {
		loaded = append(loaded, envPath)
	}
	return loaded
}

// LogDotEnv records which .env files LoadDotEnv picked up
func LogDotEnv(loaded []string) {
	if len(loaded) == 0 {
		logger.Debug("No .env file loaded")
		return
	}
	for _, p := range loaded {
		logger.Info("Loaded %s", p)
	}
}

// LoadEnv reads Env from the process environment
func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Env{}, fmt.Errorf("failed to process env: %w", err)
	}
	return e, nil
}

// Validate rejects settings the scanner or the send flow cannot work with
func (e Env) Validate() error {
	var errs []error
	switch strings.ToLower(e.ScanSource) {
	case ScanClipboard:
	case ScanFrames:
		if e.ScanDir == "" {
			errs = append(errs, errors.New("scan source frames needs a scan directory"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown scan source %q", e.ScanSource))
	}
	if e.ScanFPS < 1 || e.ScanFPS > 60 {
		errs = append(errs, fmt.Errorf("scan fps %d out of range 1-60", e.ScanFPS))
	}
	if e.ScanBox < 50 {
		errs = append(errs, fmt.Errorf("scan box %d too small", e.ScanBox))
	}
	if !common.IsHexAddress(e.TokenAddress) {
		errs = append(errs, fmt.Errorf("invalid token address %q", e.TokenAddress))
	}
	if e.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("connect timeout must be positive"))
	}
	if e.DemoBalance != "" {
		if err := wallet.NewState().SetBalance(e.DemoBalance); err != nil {
			errs = append(errs, fmt.Errorf("demo balance %q: %w", e.DemoBalance, err))
		}
	}
	return errors.Join(errs...)
}

// ScanConfig is the decoder configuration derived from the environment
func (e Env) ScanConfig() scan.Config {
	return scan.Config{FPS: e.ScanFPS, BoxWidth: e.ScanBox, BoxHeight: e.ScanBox}
}
