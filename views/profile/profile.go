package profile

import (
	"strings"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/social"
	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Version is shown in the modal footer
const Version = "v1.0.1"

// Width of the modal box including border
const Width = 52

// Render renders the profile modal box. It is placed over the current view
// by the caller.
func Render(st *wallet.State, p *social.Profile, connecting, linking bool, spinnerView string) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("Profile & Connections"),
		"",
		styles.TitleStyle.Render("Wallet"),
	}

	switch {
	case connecting:
		sections = append(sections, spinnerView+" Waiting for wallet approval…")
	case st.IsDemo():
		sections = append(sections,
			styles.Muted("Demo mode"),
			styles.Button("Connect wallet (c)", true))
	default:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(styles.CAccent).Render("● Connected"),
			helpers.ShortenAddr(st.Account)+"  "+styles.Muted(wallet.NetworkName(st.ChainID)),
			styles.Button("Disconnect (d)", false))
	}
	if st.Err != nil {
		sections = append(sections, styles.ErrorStyle.Render(st.Err.Message))
	}
	if st.Notice != "" {
		sections = append(sections, styles.NoticeStyle.Render(st.Notice))
	}

	sections = append(sections, "", styles.TitleStyle.Render("X (Twitter)"))
	switch {
	case p != nil:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(p.Name),
			styles.Muted(p.Handle),
			styles.Muted(p.PhotoURL))
	case linking:
		sections = append(sections, spinnerView+" Linking account…")
	default:
		sections = append(sections,
			styles.Muted("Link your X account to show your profile."),
			styles.Button("Link X account (x)", false))
	}

	sections = append(sections, "", styles.Muted("JPYC Wallet "+Version+"   Esc close"))

	return styles.DialogStyle.Width(Width - 2).Render(strings.Join(sections, "\n"))
}
