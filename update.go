package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/history"
	"jpyc-wallet-tui/nav"
	"jpyc-wallet-tui/qr"
	"jpyc-wallet-tui/scan"
	"jpyc-wallet-tui/views/home"
	logview "jpyc-wallet-tui/views/log"
	"jpyc-wallet-tui/views/profile"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempProviderName string
	tempProviderURL  string
	tempOpenDeepLink bool
)

func (m *model) createAddProviderForm() {
	tempProviderName = ""
	tempProviderURL = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("A friendly name for this wallet endpoint").
				Value(&tempProviderName).
				Placeholder("Local wallet"),

			huh.NewInput().
				Title("JSON-RPC URL").
				Description("http(s)://, ws(s):// or an IPC path").
				Value(&tempProviderURL).
				Placeholder("http://127.0.0.1:8545").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("URL is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

func (m *model) createDeepLinkForm(fb wallet.Fallback) {
	tempOpenDeepLink = true
	m.deepLink = fb.DeepLink

	m.deepLinkForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fb.Message).
				Description(fb.DeepLink).
				Affirmative("Open MetaMask").
				Negative("Stay in demo").
				Value(&tempOpenDeepLink),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.deepLinkForm.Init()
}

// startConnect runs the connect operation from the UI
func (m *model) startConnect() tea.Cmd {
	if m.connecting {
		return nil
	}
	m.wallet.BeginConnect()
	if !m.connector.Available() {
		fb := m.wallet.NoProvider(m.connector.Environment())
		if fb.DeepLink != "" {
			m.addLog("info", "No provider, offering deep link "+fb.DeepLink)
			m.createDeepLinkForm(fb)
			return nil
		}
		m.addLog("warning", fb.Message)
		return nil
	}
	m.connecting = true
	m.addLog("info", "Requesting wallet accounts…")
	return tea.Batch(connectWallet(m.connector, m.providerGen), m.spin.Tick)
}

func (m *model) syncSendInputs() {
	flow := m.router.Send()
	m.addressInput.SetValue(flow.Address)
	m.amountInput.SetValue(flow.Amount)
}

func (m *model) focusSendInput(i int) {
	m.focusedInput = i
	if i == 0 {
		m.addressInput.Focus()
		m.amountInput.Blur()
	} else {
		m.amountInput.Focus()
		m.addressInput.Blur()
	}
}

// sendTo opens the send view for a contact
func (m *model) sendTo(address string) tea.Cmd {
	if m.router.Current() == nav.ViewSend && m.scan != nil {
		m.scan.stop()
		m.scan = nil
	}
	if err := m.router.SendTo(address); err != nil {
		m.addLog("warning", "Releasing scanner: "+err.Error())
	}
	cmd := m.enterView(nav.ViewSend)
	if address != "" {
		m.focusSendInput(1)
	}
	return cmd
}

// profileBounds is the screen rectangle of the profile modal box,
// matching lipgloss.Place centering.
func (m *model) profileBounds() (x0, y0, x1, y1 int) {
	box := profile.Render(m.wallet, m.profile, m.connecting, m.linking, m.spin.View())
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	gapX, gapY := helpers.Max(0, m.w-bw), helpers.Max(0, m.h-bh)
	x0 = gapX - int(math.Round(float64(gapX)*0.5))
	y0 = gapY - int(math.Round(float64(gapY)*0.5))
	return x0, y0, x0 + bw, y0 + bh
}

func (m *model) filteredHistory() []history.Record {
	return history.Filter(m.historyRecs, m.historyFilter.Value())
}

func (m *model) initLogger() {
	m.logger = log.NewWithOptions(m.logBuffer, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	m.logger.SetLevel(log.DebugLevel)
	m.logger.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(cMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
		Message:   lipgloss.NewStyle().Foreground(cText),
		Key:       lipgloss.NewStyle().Foreground(cAccent),
		Value:     lipgloss.NewStyle().Foreground(cText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
		},
	})
	m.logReady = true
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, isKey := msg.(tea.KeyMsg)

	// open forms take every key; other messages reach them and the model
	var formCmd tea.Cmd
	promptOpen := m.deepLinkForm != nil || (m.settingsMode == "add" && m.form != nil)
	if m.deepLinkForm != nil {
		done, cmd := m.updateDeepLinkForm(msg)
		if done || isKey {
			return m, cmd
		}
		formCmd = cmd
	}
	if m.router.Current() == nav.ViewSettings && m.settingsMode == "add" && m.form != nil {
		done, cmd := m.updateProviderForm(msg)
		if done || isKey {
			return m, cmd
		}
		formCmd = tea.Batch(formCmd, cmd)
	}

	// a message consumed by a prompt must not also drive the inputs below it
	next, cmd := m.handleMsg(msg, !promptOpen)
	return next, tea.Batch(formCmd, cmd)
}

// updateDeepLinkForm drives the deep link prompt. done reports that the
// prompt was closed.
func (m *model) updateDeepLinkForm(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.deepLinkForm = nil
		m.wallet.DeclineDeepLink()
		return true, nil
	}
	form, cmd := m.deepLinkForm.Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return false, cmd
	}
	m.deepLinkForm = f
	switch f.State {
	case huh.StateCompleted:
		m.deepLinkForm = nil
		if tempOpenDeepLink {
			m.addLog("info", "Opening "+m.deepLink)
			return true, tea.Batch(openDeepLink(m.deepLink), copyToClipboard(m.deepLink, "Link copied"))
		}
		m.wallet.DeclineDeepLink()
		m.addLog("info", "Deep link declined, staying in demo mode")
		return true, nil
	case huh.StateAborted:
		m.deepLinkForm = nil
		m.wallet.DeclineDeepLink()
		return true, nil
	}
	return false, cmd
}

// updateProviderForm drives the add provider form in settings
func (m *model) updateProviderForm(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.settingsMode = "list"
		m.form = nil
		return true, nil
	}
	form, cmd := m.form.Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return false, cmd
	}
	m.form = f
	switch f.State {
	case huh.StateCompleted:
		m.settingsMode = "list"
		m.form = nil
		url := strings.TrimSpace(tempProviderURL)
		m.cfg.Activate(strings.TrimSpace(tempProviderName), url)
		m.selectedProviderIdx = len(m.cfg.Providers) - 1
		m.persist()
		m.addLog("success", fmt.Sprintf("Added provider `%s` (%s)", tempProviderName, url))
		return true, m.switchProvider(url)
	case huh.StateAborted:
		m.settingsMode = "list"
		m.form = nil
		return true, nil
	}
	return false, cmd
}

func (m *model) handleMsg(msg tea.Msg, forwardInputs bool) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.initLogger()
		m.addLog("info", "Logger enabled")
		return m, nil

	case providerDialedMsg:
		if msg.gen != m.providerGen {
			if msg.client != nil {
				msg.client.Close()
			}
			return m, nil
		}
		m.dialing = false
		if msg.err != nil {
			m.client = nil
			m.connector.SetProvider(nil)
			m.addLog("error", fmt.Sprintf("Provider connection failed: `%s`", msg.err.Error()))
			return m, nil
		}
		m.client = msg.client
		m.connector.SetProvider(msg.client)
		m.addLog("success", fmt.Sprintf("Provider reachable at `%s`", msg.client.URL))
		return m, reconcileWallet(m.connector, m.providerGen)

	case reconcileResultMsg:
		if msg.gen != m.providerGen {
			return m, nil
		}
		wasDemo := m.wallet.IsDemo()
		m.wallet.ApplyReconcile(msg.res)
		if wasDemo && !m.wallet.IsDemo() {
			m.addLog("success", "Restored session for "+helpers.ShortenAddr(m.wallet.Account))
		}
		return m, nil

	case connectResultMsg:
		if msg.gen != m.providerGen {
			return m, nil
		}
		m.connecting = false
		m.wallet.ApplyConnect(msg.res)
		if m.wallet.Err != nil && wallet.IsKind(m.wallet.Err, wallet.KindRejected) {
			m.addLog("warning", "Connect request rejected in the wallet")
			return m, nil
		}
		if m.wallet.Err != nil {
			m.addLog("error", fmt.Sprintf("Connect failed [%s]: %s", m.wallet.Err.Code, m.wallet.Err.Error()))
			return m, nil
		}
		m.addLog("success", fmt.Sprintf("Connected %s on %s", helpers.ShortenAddr(m.wallet.Account), wallet.NetworkName(m.wallet.ChainID)))
		return m, nil

	case socialLinkedMsg:
		m.linking = false
		if msg.err != nil {
			m.addLog("error", "X link failed: "+msg.err.Error())
			return m, nil
		}
		p := msg.profile
		m.profile = &p
		m.addLog("success", "Linked X account "+p.Handle)
		return m, nil

	case scanDecodedMsg:
		flow := m.router.Send()
		if m.scan == nil || msg.gen != m.scan.gen || msg.gen != flow.Generation() || !flow.Scanning() {
			m.addLog("debug", fmt.Sprintf("Dropped stale scan result (session %d)", msg.gen))
			return m, nil
		}
		if scan.ExtractAddress(msg.text) == "" {
			return m, waitForScan(m.scan)
		}
		feed := m.scan
		m.scan = nil
		addr, err := flow.AcceptDecoded(msg.text)
		feed.stop()
		if err != nil {
			m.addLog("warning", "Releasing scanner: "+err.Error())
		}
		m.addressInput.SetValue(addr)
		m.focusSendInput(1)
		m.addLog("success", "Scanned address "+helpers.ShortenAddr(addr))
		return m, nil

	case scanStoppedMsg:
		return m, nil

	case clipboardCopiedMsg:
		m.copiedMsg = msg.label
		m.addLog("info", msg.label)
		return m, clearClipboard()

	case clearClipboardMsg:
		m.copiedMsg = ""
		return m, nil

	case clipboardPastedMsg:
		if msg.err != nil {
			m.addLog("error", "Paste failed: "+msg.err.Error())
			return m, nil
		}
		if m.router.Current() == nav.ViewSend && m.focusedInput == 0 {
			m.addressInput.SetValue(scan.ExtractAddress(msg.text))
		} else if m.router.Current() == nav.ViewSend {
			m.amountInput.SetValue(msg.text)
		}
		return m, nil

	case qrSavedMsg:
		if msg.err != nil {
			m.addLog("error", "Saving QR failed: "+msg.err.Error())
			return m, nil
		}
		m.receiveSaved = msg.path
		m.addLog("success", "Saved receive QR to "+msg.path)
		return m, nil

	case deepLinkOpenedMsg:
		if msg.err != nil {
			m.wallet.Notice = "Could not open the wallet app. The link was copied to the clipboard."
			m.addLog("warning", "Opening deep link failed: "+msg.err.Error())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		if m.logEnabled {
			m.logViewport.Width = helpers.Max(0, msg.Width-6)
			m.logViewport.Height = logview.PanelHeight(msg.Height)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.router.ProfileOpen() && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x0, y0, x1, y1 := m.profileBounds()
			if msg.X < x0 || msg.X >= x1 || msg.Y < y0 || msg.Y >= y1 {
				m.router.CloseProfile()
			}
			return m, nil
		}
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !forwardInputs {
		return m, nil
	}
	// forward remaining messages (cursor blink, form steps) to the active inputs
	return m, m.updateInputs(msg)
}

func (m *model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch {
	case m.router.Current() == nav.ViewSend:
		m.addressInput, cmd = m.addressInput.Update(msg)
		cmds = append(cmds, cmd)
		m.amountInput, cmd = m.amountInput.Update(msg)
		cmds = append(cmds, cmd)
	case m.filtering:
		m.historyFilter, cmd = m.historyFilter.Update(msg)
		cmds = append(cmds, cmd)
	case m.router.Current() == nav.ViewHome:
		cmds = append(cmds, m.updateHomeForm(msg))
	}
	return tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.stopScan()
		return m, tea.Quit
	}

	if m.router.ProfileOpen() {
		return m.handleProfileKey(key)
	}
	// reachable while a text input has focus
	if key == "ctrl+p" {
		m.router.OpenProfile()
		return m, nil
	}

	if !m.textInputActive() {
		switch key {
		case "q":
			m.stopScan()
			return m, tea.Quit
		case "p":
			m.router.OpenProfile()
			return m, nil
		case "l":
			m.logEnabled = !m.logEnabled
			m.cfg.Logger = m.logEnabled
			m.persist()
			if m.logEnabled && !m.logReady {
				m.logViewport.Width = helpers.Max(0, m.w-6)
				return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
			}
			return m, nil
		case "1", "2", "3", "4":
			tabs := nav.Tabs()
			return m, m.goTo(tabs[int(key[0]-'1')])
		case "pgup", "pgdown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
		}
	}

	switch m.router.Current() {
	case nav.ViewHome:
		return m.handleHomeKey(msg)
	case nav.ViewSend:
		return m.handleSendKey(msg)
	case nav.ViewReceive:
		switch key {
		case "c":
			return m, copyToClipboard(m.wallet.DisplayAddress(), "✓ Copied!")
		case "s":
			return m, saveReceiveQR(m.env.QRDir, m.wallet.DisplayAddress())
		case "esc", "h":
			return m, m.goTo(nav.ViewHome)
		}
	case nav.ViewHistory:
		return m.handleHistoryKey(msg)
	case nav.ViewContacts:
		switch key {
		case "up", "k":
			if m.contactIdx > 0 {
				m.contactIdx--
			}
		case "down", "j":
			if m.contactIdx < len(m.contacts)-1 {
				m.contactIdx++
			}
		case "enter":
			if m.contactIdx < len(m.contacts) {
				c := m.contacts[m.contactIdx]
				m.addLog("info", "Sending to "+c.Name)
				return m, m.sendTo(c.Address)
			}
		case "esc", "h":
			return m, m.goTo(nav.ViewHome)
		}
	case nav.ViewSettings:
		return m.handleSettingsKey(key)
	}
	return m, nil
}

func (m *model) handleProfileKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "p", "q":
		m.router.CloseProfile()
	case "c":
		if m.wallet.IsDemo() {
			return m, m.startConnect()
		}
	case "d":
		if !m.wallet.IsDemo() {
			m.disconnect()
			m.addLog("info", "Disconnected, back to demo mode")
		}
	case "x":
		if m.profile == nil && !m.linking {
			m.linking = true
			m.addLog("info", "Linking X account…")
			return m, tea.Batch(linkSocial(m.linker), m.spin.Tick)
		}
	}
	return m, nil
}

func (m *model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m, m.updateHomeForm(msg)
}

// updateHomeForm feeds the quick action menu and follows a completed choice
func (m *model) updateHomeForm(msg tea.Msg) tea.Cmd {
	if m.homeForm == nil {
		m.homeForm = home.CreateForm()
	}
	form, cmd := m.homeForm.Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return cmd
	}
	m.homeForm = f
	switch f.State {
	case huh.StateCompleted:
		if v, ok := nav.ParseView(home.TempSelection); ok && v != nav.ViewHome {
			return m.goTo(v)
		}
		m.homeForm = home.CreateForm()
		return nil
	case huh.StateAborted:
		m.homeForm = home.CreateForm()
		return nil
	}
	return cmd
}

func (m *model) handleSendKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := m.router.Send()

	if m.intent != nil {
		switch msg.String() {
		case "c":
			return m, copyToClipboard(m.intent.URI(), "Payment request copied")
		case "esc":
			m.intent = nil
			m.intentQR = ""
			m.focusSendInput(0)
		}
		return m, nil
	}

	if flow.Step() == nav.StepScanning {
		if msg.String() == "esc" {
			m.stopScan()
			m.addLog("info", "Scan cancelled")
			m.focusSendInput(0)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.goTo(nav.ViewHome)
	case "tab", "shift+tab", "up", "down":
		m.focusSendInput(1 - m.focusedInput)
		return m, nil
	case "ctrl+v":
		return m, pasteFromClipboard()
	case "ctrl+s":
		feed, err := startScan(flow)
		if err != nil {
			m.sendErr = err.Error()
			m.addLog("error", "Scanner unavailable: "+err.Error())
			return m, nil
		}
		m.scan = feed
		m.sendErr = ""
		m.addressInput.Blur()
		m.amountInput.Blur()
		m.addLog("info", fmt.Sprintf("Scanning from %s (session %d)", m.scanSource, feed.gen))
		return m, tea.Batch(waitForScan(feed), m.spin.Tick)
	case "enter":
		if m.focusedInput == 0 {
			m.focusSendInput(1)
			return m, nil
		}
		return m, m.review()
	}

	var cmd tea.Cmd
	if m.focusedInput == 0 {
		m.addressInput, cmd = m.addressInput.Update(msg)
	} else {
		m.amountInput, cmd = m.amountInput.Update(msg)
	}
	flow.Address = m.addressInput.Value()
	flow.Amount = m.amountInput.Value()
	return m, cmd
}

// review validates the send form and shows the payment request
func (m *model) review() tea.Cmd {
	flow := m.router.Send()
	flow.Address = strings.TrimSpace(m.addressInput.Value())
	flow.Amount = strings.TrimSpace(m.amountInput.Value())

	intent, err := flow.Review(m.wallet.Balance)
	if err != nil {
		m.sendErr = err.Error()
		return nil
	}
	m.sendErr = ""
	m.intent = &intent
	m.intentQR = qr.Terminal(intent.URI(), qr.Options{Level: qr.LevelM})
	m.addLog("info", fmt.Sprintf("Prepared transfer of %d %s to %s", intent.Amount, wallet.Currency, helpers.ShortenAddr(intent.To.Hex())))
	return nil
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.historyFilter.Blur()
			m.historyIdx = 0
			return m, nil
		case "esc":
			m.filtering = false
			m.historyFilter.SetValue("")
			m.historyFilter.Blur()
			m.historyIdx = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.historyFilter, cmd = m.historyFilter.Update(msg)
		m.historyIdx = 0
		return m, cmd
	}

	recs := m.filteredHistory()
	switch msg.String() {
	case "up", "k":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case "down", "j":
		if m.historyIdx < len(recs)-1 {
			m.historyIdx++
		}
	case "/":
		m.filtering = true
		return m, m.historyFilter.Focus()
	case "esc", "h":
		if m.historyFilter.Value() != "" {
			m.historyFilter.SetValue("")
			return m, nil
		}
		return m, m.goTo(nav.ViewHome)
	}
	return m, nil
}

func (m *model) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	providers := m.cfg.Providers
	switch key {
	case "up", "k":
		if m.selectedProviderIdx > 0 {
			m.selectedProviderIdx--
		}
	case "down", "j":
		if m.selectedProviderIdx < len(providers)-1 {
			m.selectedProviderIdx++
		}
	case "enter":
		if m.selectedProviderIdx < len(providers) {
			p := providers[m.selectedProviderIdx]
			m.cfg.Activate(p.Name, p.URL)
			m.persist()
			m.addLog("info", "Using provider "+p.Name)
			return m, m.switchProvider(p.URL)
		}
	case "a":
		m.settingsMode = "add"
		m.createAddProviderForm()
	case "d":
		if m.selectedProviderIdx < len(providers) {
			name := providers[m.selectedProviderIdx].Name
			m.cfg.Remove(m.selectedProviderIdx)
			m.selectedProviderIdx = helpers.Max(0, helpers.Min(m.selectedProviderIdx, len(m.cfg.Providers)-1))
			m.persist()
			m.addLog("info", "Removed provider "+name)
		}
	case "x":
		if !m.wallet.IsDemo() {
			m.disconnect()
			m.addLog("info", "Disconnected, back to demo mode")
		}
	case "esc", "h":
		return m, m.goTo(nav.ViewHome)
	}
	return m, nil
}

// switchProvider drops the current endpoint and dials url
func (m *model) switchProvider(url string) tea.Cmd {
	if m.client != nil {
		m.client.Close()
		m.client = nil
	}
	m.connector.SetProvider(nil)
	m.providerURL = url
	m.providerGen++
	m.connecting = false
	// the account belonged to the previous endpoint
	if !m.wallet.IsDemo() {
		m.disconnect()
		m.addLog("info", "Provider changed, back to demo mode")
	}
	if url == "" {
		m.dialing = false
		return nil
	}
	m.dialing = true
	return tea.Batch(dialProvider(m.providerGen, url), m.spin.Tick)
}
