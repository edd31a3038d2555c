// Package social links an external social account to the wallet session.
package social

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Profile is a linked social account
type Profile struct {
	Name     string
	Handle   string
	PhotoURL string
}

// AuthProvider performs the account link flow
type AuthProvider interface {
	Link(ctx context.Context) (Profile, error)
}

// SimulatedProvider stands in for an OAuth flow: it answers with a fixed
// demo profile after Delay.
type SimulatedProvider struct {
	Delay  time.Duration
	Name   string
	Handle string
}

// NewSimulatedProvider returns the demo X (Twitter) account
func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	return &SimulatedProvider{Delay: delay, Name: "Demo User", Handle: "@demo_user_jp"}
}

// Link waits for the configured delay and returns the demo profile
func (p *SimulatedProvider) Link(ctx context.Context) (Profile, error) {
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Profile{}, ctx.Err()
		case <-t.C:
		}
	}
	return Profile{
		Name:     p.Name,
		Handle:   p.Handle,
		PhotoURL: AvatarURL(p.Name),
	}, nil
}

// AvatarURL builds a placeholder avatar for name
func AvatarURL(name string) string {
	q := url.Values{}
	q.Set("name", strings.TrimSpace(name))
	q.Set("background", "0D8ABC")
	q.Set("color", "fff")
	return "https://ui-avatars.com/api/?" + q.Encode()
}
