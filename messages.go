package main

import (
	"jpyc-wallet-tui/rpc"
	"jpyc-wallet-tui/social"
	"jpyc-wallet-tui/wallet"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// providerDialedMsg contains result of dialling the wallet endpoint
type providerDialedMsg struct {
	gen    int
	client *rpc.Client
	err    error
}

// connectResultMsg carries the outcome of an explicit connect
type connectResultMsg struct {
	gen int
	res wallet.Result
}

// reconcileResultMsg carries the accounts found without prompting
type reconcileResultMsg struct {
	gen int
	res wallet.Result
}

// socialLinkedMsg carries the linked social profile
type socialLinkedMsg struct {
	profile social.Profile
	err     error
}

// scanDecodedMsg is a payload decoded by the scan session with generation gen
type scanDecodedMsg struct {
	gen  int
	text string
}

// scanStoppedMsg tells the waiting command its session is gone
type scanStoppedMsg struct {
	gen int
}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct {
	label string
}

// clearClipboardMsg clears the copy feedback
type clearClipboardMsg struct{}

// clipboardPastedMsg carries text read from the clipboard into the send form
type clipboardPastedMsg struct {
	text string
	err  error
}

// qrSavedMsg reports a PNG export of the receive QR
type qrSavedMsg struct {
	path string
	err  error
}

// deepLinkOpenedMsg reports handing the deep link to the system opener
type deepLinkOpenedMsg struct {
	url string
	err error
}
