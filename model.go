package main

import (
	"strings"

	"jpyc-wallet-tui/config"
	"jpyc-wallet-tui/contacts"
	"jpyc-wallet-tui/history"
	"jpyc-wallet-tui/nav"
	"jpyc-wallet-tui/qr"
	"jpyc-wallet-tui/rpc"
	"jpyc-wallet-tui/scan"
	"jpyc-wallet-tui/social"
	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/views/home"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	env        config.Env
	cfg        config.Config
	configPath string

	// wallet session
	wallet      *wallet.State
	connector   *wallet.Connector
	client      *rpc.Client
	providerURL string
	providerGen int // bumped on every provider switch; older results are dropped
	dialing     bool
	connecting  bool

	// deep link prompt shown on mobile without a provider
	deepLink     string
	deepLinkForm *huh.Form

	// social link
	linker  social.AuthProvider
	profile *social.Profile
	linking bool

	router     *nav.Router
	scan       *scanFeed
	scanSource string

	homeForm *huh.Form

	// send form
	addressInput textinput.Model
	amountInput  textinput.Model
	focusedInput int // 0 = address, 1 = amount
	sendErr      string
	intent       *nav.Intent
	intentQR     string

	// history
	historyRecs   []history.Record
	recentRecs    []history.Record
	historyIdx    int
	historyFilter textinput.Model
	filtering     bool

	contacts   []contacts.Contact
	contactIdx int

	// receive
	receiveQR     string
	receiveQRAddr string
	receiveSaved  string

	// clipboard feedback
	copiedMsg string

	// settings state
	settingsMode        string // "list", "add"
	selectedProviderIdx int
	form                *huh.Form

	spin spinner.Model

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// deps are the capabilities the model is wired with
type deps struct {
	provider   wallet.Provider // already connected provider, if any
	decoder    scan.Decoder
	linker     social.AuthProvider
	configPath string
}

// -------------------- INIT --------------------

// newModel creates a model from the environment and the preferences on disk
func newModel(env config.Env, d deps) model {
	configPath := d.configPath
	if configPath == "" {
		configPath = config.Path()
	}
	cfg := config.Load(configPath)

	providerURL := strings.TrimSpace(env.ProviderURL)
	if providerURL == "" {
		providerURL = cfg.ActiveProvider()
	}

	wenv := wallet.DetectEnvironment(env.UserAgent, env.DappURL)
	if env.Mobile {
		wenv.Mobile = true
	}

	flow := nav.NewSendFlow(d.decoder).WithConfig(env.ScanConfig())
	flow.Token = env.TokenAddress

	linker := d.linker
	if linker == nil {
		linker = social.NewSimulatedProvider(env.SocialDelay)
	}

	addr := newInput("To: ", "0x… or scan a QR code", 42)
	amount := newInput("Amount: ", "0", 18)
	filter := newInput("Filter: ", "name, address or date", 32)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20)
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	m := model{
		env:           env,
		cfg:           cfg,
		configPath:    configPath,
		wallet:        wallet.NewState(),
		connector:     wallet.NewConnector(d.provider, wenv, env.ConnectTimeout),
		providerURL:   providerURL,
		linker:        linker,
		router:        nav.NewRouter(flow),
		scanSource:    describeSource(env),
		homeForm:      home.CreateForm(),
		addressInput:  addr,
		amountInput:   amount,
		historyRecs:   history.Extended(),
		recentRecs:    history.Demo(),
		historyFilter: filter,
		contacts:      contacts.Demo(),
		settingsMode:  "list",
		spin:          sp,
		logEnabled:    cfg.Logger,
		logBuffer:     &strings.Builder{},
		logViewport:   vp,
		logSpinner:    logSpin,
	}
	m.dialing = d.provider == nil && providerURL != ""
	m.applyDemoBalance()
	return m
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = prompt
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = limit
	in.Width = 48
	return in
}

func describeSource(env config.Env) string {
	if strings.EqualFold(env.ScanSource, config.ScanFrames) {
		return "camera frames in " + env.ScanDir
	}
	return "clipboard (share the scan result from your phone)"
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	switch {
	case m.connector.Available():
		cmds = append(cmds, reconcileWallet(m.connector, m.providerGen))
	case m.dialing:
		cmds = append(cmds, dialProvider(m.providerGen, m.providerURL))
	}
	return tea.Batch(cmds...)
}

// receiveCode returns the terminal QR of the receiving address, rendered
// once per address.
func (m *model) receiveCode() string {
	addr := m.wallet.DisplayAddress()
	if m.receiveQRAddr != addr {
		m.receiveQR = qr.Terminal(addr, qr.ReceiveOptions())
		m.receiveQRAddr = addr
	}
	return m.receiveQR
}

// connectedLabel describes the provider link for the settings view
func (m model) connectedLabel() string {
	switch {
	case m.dialing:
		return "connecting to " + m.providerURL
	case m.client != nil:
		return m.client.URL
	case m.connector.Available():
		return "connected"
	case m.providerURL != "":
		return "unreachable (" + m.providerURL + ")"
	default:
		return "none"
	}
}
