package send

import (
	"strconv"
	"strings"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/nav"
	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the send form. inputs are the rendered address and amount
// fields; errMsg is the last validation error.
func Render(addressInput, amountInput string, balance string, errMsg string) string {
	lines := []string{
		styles.TitleStyle.Render("Send " + wallet.Currency),
		"",
		addressInput,
		amountInput,
		styles.Muted("Available: " + helpers.FormatJPYC(balance) + " " + wallet.Currency),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Button("Scan QR", false), "  ",
			styles.Button("Review", true)),
	}
	if errMsg != "" {
		lines = append(lines, "", styles.ErrorStyle.Render(errMsg))
	}
	return strings.Join(lines, "\n")
}

// RenderScanning renders the scanner placeholder while a session is live
func RenderScanning(source string, boxW, boxH int, spinnerView string) string {
	// terminal cells are roughly twice as tall as wide
	w := helpers.Max(12, helpers.Min(boxW/8, 40))
	h := helpers.Max(4, helpers.Min(boxH/16, 16))

	inner := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(styles.CAccent2).Render(spinnerView+" scanning"))
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(styles.CAccent).
		Render(inner)

	return strings.Join([]string{
		styles.TitleStyle.Render("Scan QR Code"),
		"",
		box,
		"",
		styles.Muted("Source: " + source),
		styles.Muted("Hold the recipient's QR code in front of the camera."),
	}, "\n")
}

// RenderReview renders a validated transfer and its payment request QR
func RenderReview(intent nav.Intent, qr string, copied string) string {
	rows := []string{
		styles.TitleStyle.Render("Review Transfer"),
		"",
		styles.Muted("To:      ") + intent.To.Hex(),
		styles.Muted("Amount:  ") + helpers.FormatJPYC(strconv.FormatInt(intent.Amount, 10)) + " " + wallet.Currency,
		styles.Muted("Network: ") + wallet.NetworkName(intent.ChainID),
		"",
		qr,
		styles.Muted("Scan with your wallet app to sign and send."),
	}
	if copied != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CAccent).Render(copied))
	}
	return strings.Join(rows, "\n")
}

// Nav returns the navigation bar for send view
func Nav(width int, step nav.SendStep, reviewing bool) string {
	var keys []string
	switch {
	case reviewing:
		keys = []string{
			styles.Key("c") + " copy request",
			styles.Key("Esc") + " edit",
		}
	case step == nav.StepScanning:
		keys = []string{
			styles.Key("Esc") + " cancel scan",
		}
	default:
		keys = []string{
			styles.Key("Tab") + " next field",
			styles.Key("Ctrl+s") + " scan",
			styles.Key("Ctrl+v") + " paste",
			styles.Key("Enter") + " review",
			styles.Key("Ctrl+p") + " profile",
			styles.Key("Esc") + " home",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
