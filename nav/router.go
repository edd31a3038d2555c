// Package nav holds the view state machine of the wallet: which screen is
// shown, the profile overlay and the nested send flow.
package nav

import (
	"errors"
	"strings"
)

// View is a top level screen
type View int

const (
	ViewHome View = iota
	ViewSend
	ViewReceive
	ViewHistory
	ViewContacts
	ViewSettings
)

var viewNames = [...]string{"home", "send", "receive", "history", "contacts", "settings"}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// Title is the heading shown above the view
func (v View) Title() string {
	s := v.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseView maps a view name back to its View
func ParseView(s string) (View, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range viewNames {
		if n == s {
			return View(i), true
		}
	}
	return ViewHome, false
}

// Tabs are the entries of the bottom navigation bar
func Tabs() []View {
	return []View{ViewHome, ViewHistory, ViewContacts, ViewSettings}
}

// Router tracks the active view. The profile overlay is orthogonal to it.
type Router struct {
	current     View
	profileOpen bool
	send        *SendFlow
}

// NewRouter starts on the home view
func NewRouter(send *SendFlow) *Router {
	if send == nil {
		send = NewSendFlow(nil)
	}
	return &Router{current: ViewHome, send: send}
}

func (r *Router) Current() View { return r.current }

// Send exposes the nested send flow
func (r *Router) Send() *SendFlow { return r.send }

// Go switches to v. Leaving the send view closes the send flow and
// releases any scan session; entering it starts a fresh flow. The returned
// error is the release error, if any; the switch happens regardless.
func (r *Router) Go(v View) error {
	if v == r.current {
		return nil
	}
	var err error
	if r.current == ViewSend {
		err = r.send.Close()
	}
	if v == ViewSend {
		err = errors.Join(err, r.send.Reset())
	}
	r.current = v
	return err
}

// Home is a shortcut for Go(ViewHome)
func (r *Router) Home() error { return r.Go(ViewHome) }

// SendTo opens the send view with the recipient prefilled
func (r *Router) SendTo(address string) error {
	err := r.Go(ViewSend)
	r.send.Address = address
	return err
}

func (r *Router) OpenProfile()      { r.profileOpen = true }
func (r *Router) CloseProfile()     { r.profileOpen = false }
func (r *Router) ProfileOpen() bool { return r.profileOpen }
