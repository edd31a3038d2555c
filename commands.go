package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"jpyc-wallet-tui/config"
	"jpyc-wallet-tui/logger"
	"jpyc-wallet-tui/nav"
	"jpyc-wallet-tui/qr"
	"jpyc-wallet-tui/rpc"
	"jpyc-wallet-tui/social"
	"jpyc-wallet-tui/views/home"
	"jpyc-wallet-tui/wallet"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// dialProvider connects to the wallet JSON-RPC endpoint
func dialProvider(gen int, url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return providerDialedMsg{gen: gen, client: result.Client, err: result.Error}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// connectWallet asks the provider for account authorization. The
// connector is copied here, on the update loop, before the request starts.
func connectWallet(c *wallet.Connector, gen int) tea.Cmd {
	c = c.Snapshot()
	return func() tea.Msg {
		return connectResultMsg{gen: gen, res: c.Connect(context.Background())}
	}
}

// reconcileWallet looks for an already authorized account
func reconcileWallet(c *wallet.Connector, gen int) tea.Cmd {
	c = c.Snapshot()
	return func() tea.Msg {
		return reconcileResultMsg{gen: gen, res: c.Reconcile(context.Background())}
	}
}

// linkSocial runs the social account link flow
func linkSocial(p social.AuthProvider) tea.Cmd {
	return func() tea.Msg {
		profile, err := p.Link(context.Background())
		return socialLinkedMsg{profile: profile, err: err}
	}
}

// scanFeed connects a decode session to the update loop. The decoder's
// callback never blocks; one pending payload is enough since the first
// accepted payload ends the session.
type scanFeed struct {
	gen  int
	ch   chan scanDecodedMsg
	done chan struct{}
}

func newScanFeed() *scanFeed {
	return &scanFeed{ch: make(chan scanDecodedMsg, 1), done: make(chan struct{})}
}

func (f *scanFeed) post(gen int, text string) {
	select {
	case f.ch <- scanDecodedMsg{gen: gen, text: text}:
	default:
	}
}

func (f *scanFeed) stop() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

// waitForScan blocks until the session decodes something or is stopped
func waitForScan(f *scanFeed) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-f.ch:
			return msg
		case <-f.done:
			return scanStoppedMsg{gen: f.gen}
		}
	}
}

// startScan acquires a scan session for the send flow
func startScan(flow *nav.SendFlow) (*scanFeed, error) {
	feed := newScanFeed()
	gen, err := flow.StartScan(context.Background(), feed.post)
	if err != nil {
		return nil, err
	}
	feed.gen = gen
	return feed, nil
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text, label string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{label: label}
		}
		return nil
	}
}

// clearClipboard waits 2 seconds then clears the clipboard feedback
func clearClipboard() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearClipboardMsg{}
	})
}

// pasteFromClipboard reads the clipboard for the send form
func pasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return clipboardPastedMsg{text: strings.TrimSpace(text), err: err}
	}
}

// saveReceiveQR writes the receive QR as PNG into dir
func saveReceiveQR(dir, address string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, fmt.Sprintf("jpyc-receive-%s.png", shortForFile(address)))
		err := qr.WritePNG(path, address, qr.ReceiveOptions())
		return qrSavedMsg{path: path, err: err}
	}
}

func shortForFile(addr string) string {
	if len(addr) > 10 {
		return addr[:10]
	}
	return addr
}

// openCommand builds the platform command that opens url in the default
// handler. Replaced in tests.
var openCommand = func(url string) *exec.Cmd {
	switch {
	case os.Getenv("TERMUX_VERSION") != "":
		return exec.Command("termux-open-url", url)
	case runtime.GOOS == "darwin":
		return exec.Command("open", url)
	case runtime.GOOS == "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// openDeepLink hands the wallet deep link to the system
func openDeepLink(url string) tea.Cmd {
	return func() tea.Msg {
		err := openCommand(url).Start()
		return deepLinkOpenedMsg{url: url, err: err}
	}
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog writes a log entry to the in-app panel and the diagnostics file
func (m *model) addLog(logType, message string) {
	fileLog(logType, message)

	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// fileLog mirrors panel entries into the diagnostics file
func fileLog(logType, message string) {
	switch logType {
	case "error":
		logger.Error("%s", message)
	case "warning":
		logger.Warn("%s", message)
	case "debug":
		logger.Debug("%s", message)
	default:
		logger.Info("%s", message)
	}
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// textInputActive returns true if any text input is currently active
func (m model) textInputActive() bool {
	if m.router.Current() == nav.ViewSend && m.intent == nil && m.router.Send().Step() == nav.StepInput {
		return true
	}
	if m.filtering {
		return true
	}
	if m.settingsMode == "add" && m.form != nil {
		return true
	}
	return false
}

// stopScan ends the live scan session, if any
func (m *model) stopScan() {
	if m.scan != nil {
		m.scan.stop()
		m.scan = nil
	}
	if err := m.router.Send().StopScan(); err != nil {
		m.addLog("warning", "Releasing scanner: "+err.Error())
	}
}

// goTo switches views, releasing any scan session on the way out
func (m *model) goTo(v nav.View) tea.Cmd {
	from := m.router.Current()
	if from == nav.ViewSend && m.scan != nil {
		m.scan.stop()
		m.scan = nil
	}
	if err := m.router.Go(v); err != nil {
		m.addLog("warning", "Releasing scanner: "+err.Error())
	}
	if from == v {
		return nil
	}
	m.addLog("debug", fmt.Sprintf("View %s → %s", from, v))
	return m.enterView(v)
}

// enterView prepares per-view state after a switch
func (m *model) enterView(v nav.View) tea.Cmd {
	switch v {
	case nav.ViewHome:
		m.homeForm = home.CreateForm()
	case nav.ViewSend:
		m.intent = nil
		m.sendErr = ""
		m.syncSendInputs()
		m.focusSendInput(0)
		return m.addressInput.Focus()
	case nav.ViewReceive:
		m.receiveSaved = ""
	case nav.ViewHistory:
		m.historyIdx = 0
	}
	return nil
}

// disconnect returns to demo mode with the configured demo balance
func (m *model) disconnect() {
	m.wallet.Disconnect()
	m.applyDemoBalance()
}

func (m *model) applyDemoBalance() {
	if m.env.DemoBalance == "" {
		return
	}
	if err := m.wallet.SetBalance(m.env.DemoBalance); err != nil {
		m.addLog("warning", "Ignoring demo balance: "+err.Error())
	}
}

// persist writes the preferences file
func (m *model) persist() {
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", "Saving preferences failed: "+err.Error())
	}
}
