package main

import (
	"fmt"
	"os"
	"strings"

	"jpyc-wallet-tui/config"
	"jpyc-wallet-tui/logger"
	"jpyc-wallet-tui/qr"
	"jpyc-wallet-tui/scan"
	"jpyc-wallet-tui/views/profile"
	"jpyc-wallet-tui/wallet"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

func main() {
	dotenv := config.LoadDotEnv()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:          "jpyc-wallet",
		Short:        "A terminal JPYC wallet demo",
		Long:         `jpyc-wallet shows a JPYC balance, sends with QR scanning, receives with a QR code and links a wallet over JSON-RPC.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env, dotenv)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&env.ProviderURL, "provider-url", env.ProviderURL, "wallet JSON-RPC endpoint (http, ws or IPC)")
	flags.BoolVar(&env.Mobile, "mobile", env.Mobile, "treat the session as mobile and offer the MetaMask deep link")
	flags.StringVar(&env.ScanSource, "scan-source", env.ScanSource, "QR scan source: clipboard or frames")
	flags.StringVar(&env.ScanDir, "scan-dir", env.ScanDir, "directory receiving camera frames when --scan-source=frames")
	flags.StringVar(&env.LogDir, "log-dir", env.LogDir, "write diagnostics into this directory")
	flags.StringVar(&env.DemoBalance, "balance", env.DemoBalance, "JPYC balance shown while in demo mode")

	var out string
	qrCmd := &cobra.Command{
		Use:   "qr [address]",
		Short: "Export the receive QR code as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := wallet.DemoAddress
			if len(args) == 1 {
				addr = strings.TrimSpace(args[0])
			}
			if err := qr.WritePNG(out, addr, qr.ReceiveOptions()); err != nil {
				return err
			}
			fmt.Println(qr.Terminal(addr, qr.ReceiveOptions()))
			fmt.Println("saved", out)
			return nil
		},
	}
	qrCmd.Flags().StringVarP(&out, "out", "o", "jpyc-receive.png", "output file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("jpyc-wallet", profile.Version)
		},
	}

	rootCmd.AddCommand(qrCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(env config.Env, dotenv []string) error {
	if err := env.Validate(); err != nil {
		return err
	}

	if env.LogDir != "" {
		if _, err := logger.InitFileOnly(env.LogDir); err != nil {
			return err
		}
		defer logger.Close()
	}
	config.LogDotEnv(dotenv)

	var decoder scan.Decoder
	if strings.EqualFold(env.ScanSource, config.ScanFrames) {
		decoder = scan.NewFrameDecoder(env.ScanDir)
	} else {
		decoder = scan.NewClipboardDecoder()
	}

	m := newModel(env, deps{decoder: decoder})
	defer m.stopScan()

	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
