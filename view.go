package main

import (
	"strings"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/nav"
	"jpyc-wallet-tui/qr"
	"jpyc-wallet-tui/styles"
	contactsview "jpyc-wallet-tui/views/contacts"
	historyview "jpyc-wallet-tui/views/history"
	"jpyc-wallet-tui/views/home"
	logview "jpyc-wallet-tui/views/log"
	"jpyc-wallet-tui/views/profile"
	"jpyc-wallet-tui/views/receive"
	"jpyc-wallet-tui/views/send"
	"jpyc-wallet-tui/views/settings"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := helpers.Max(0, m.w-8)

	title := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("JPYC Wallet", styles.FadeFrom, styles.FadeTo))

	var status string
	switch {
	case m.connecting:
		status = lipgloss.NewStyle().Foreground(styles.CWarn).Render(m.spin.View() + " Connecting…")
	case m.wallet.IsDemo():
		status = lipgloss.NewStyle().Foreground(styles.CWarn).Bold(true).Render("○ Demo")
	default:
		status = lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● " + m.wallet.ShortAccount(4))
	}
	if m.profile != nil {
		status += "  " + lipgloss.NewStyle().Foreground(cAccent2).Render(m.profile.Handle)
	}

	var provider string
	switch {
	case m.dialing:
		provider = lipgloss.NewStyle().Foreground(styles.CWarn).Render("○ Provider…")
	case m.connector.Available():
		provider = lipgloss.NewStyle().Foreground(cAccent).Render("● Provider")
	default:
		provider = styles.Muted("○ No provider")
	}
	right := provider + "   " + status

	gap := availableWidth - lipgloss.Width(title) - lipgloss.Width(right)
	var headerLine string
	if gap < 2 {
		headerLine = title + "\n" + right
	} else {
		headerLine = title + strings.Repeat(" ", gap) + right
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	lines := []string{headerLine, separator}
	if m.wallet.Err != nil {
		lines = append(lines, styles.ErrorStyle.Render(m.wallet.Err.Message))
	} else if m.wallet.Notice != "" {
		lines = append(lines, styles.NoticeStyle.Render(m.wallet.Notice))
	}
	return strings.Join(lines, "\n")
}

// tabBar renders the bottom navigation
func (m *model) tabBar() string {
	var tabs []string
	for i, v := range nav.Tabs() {
		label := key(string(rune('1'+i))) + " " + v.Title()
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(cMuted)
		if v == m.router.Current() {
			style = style.Foreground(cAccent2).Bold(true).Underline(true)
			label = string(rune('1'+i)) + " " + v.Title()
		}
		tabs = append(tabs, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.PlaceHorizontal(helpers.Max(0, m.w), lipgloss.Center, bar)
}

func (m *model) pageContent() (string, string) {
	width := helpers.Max(0, m.w-2)
	switch m.router.Current() {
	case nav.ViewSend:
		flow := m.router.Send()
		var body string
		switch {
		case m.intent != nil:
			body = send.RenderReview(*m.intent, m.intentQR, m.copiedMsg)
		case flow.Step() == nav.StepScanning:
			cfg := m.env.ScanConfig()
			body = send.RenderScanning(m.scanSource, cfg.BoxWidth, cfg.BoxHeight, m.spin.View())
		default:
			body = send.Render(m.addressInput.View(), m.amountInput.View(), m.wallet.Balance, m.sendErr)
		}
		return body, send.Nav(width, flow.Step(), m.intent != nil)

	case nav.ViewReceive:
		body := receive.Render(m.wallet.DisplayAddress(), m.receiveCode(), m.copiedMsg != "", m.receiveSaved)
		return lipgloss.PlaceHorizontal(helpers.Max(0, m.w-8), lipgloss.Center, body), receive.Nav(width)

	case nav.ViewHistory:
		filter := ""
		if m.filtering || m.historyFilter.Value() != "" {
			filter = m.historyFilter.View()
		}
		return historyview.Render(m.filteredHistory(), m.historyIdx, filter, m.filtering), historyview.Nav(width, m.filtering)

	case nav.ViewContacts:
		return contactsview.Render(m.contacts, m.contactIdx), contactsview.Nav(width)

	case nav.ViewSettings:
		body := settings.Render(m.cfg.Providers, m.selectedProviderIdx, m.wallet, m.connectedLabel(), m.logEnabled)
		if m.settingsMode == "add" && m.form != nil {
			body = styles.TitleStyle.Render("Add Wallet Provider") + "\n\n" + m.form.View()
		}
		return body, settings.Nav(width, m.settingsMode)

	default:
		return home.Render(m.wallet, m.homeForm, m.recentRecs, helpers.Max(0, m.w-8)), home.Nav(width)
	}
}

func (m *model) renderDeepLinkDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.deepLinkForm.View(),
		"",
		qr.Terminal(m.deepLink, qr.Options{Level: qr.LevelL}),
	)
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, styles.DialogStyle.Render(body))
}

func (m *model) renderProfileModal() string {
	box := profile.Render(m.wallet, m.profile, m.connecting, m.linking, m.spin.View())
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(cPanel))
}

func (m *model) View() string {
	if m.w == 0 {
		return "loading…"
	}
	if m.deepLinkForm != nil {
		return appStyle.Render(m.renderDeepLinkDialog())
	}
	if m.router.ProfileOpen() {
		return appStyle.Render(m.renderProfileModal())
	}

	headerPanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(m.globalHeader())
	body, viewNav := m.pageContent()
	page := panelStyle.Width(helpers.Max(0, m.w-2)).Render(body)

	sections := []string{headerPanel, page, viewNav, m.tabBar()}
	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func key(s string) string {
	return hotkeyKeyStyle.Render(s)
}
