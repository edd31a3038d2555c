// Package scan turns camera-like sources into decoded QR payloads.
package scan

import (
	"context"
	"strings"
)

// Config tunes a decode session
type Config struct {
	FPS       int // frames examined per second
	BoxWidth  int // width of the centre region searched for a code
	BoxHeight int
}

// DefaultConfig mirrors the scanner settings of the web wallet
func DefaultConfig() Config {
	return Config{FPS: 10, BoxWidth: 250, BoxHeight: 250}
}

// Decoder acquires decode sessions
type Decoder interface {
	// Start begins decoding. onDecode is called with every successfully
	// decoded payload until the session is released.
	Start(ctx context.Context, cfg Config, onDecode func(text string)) (Session, error)
}

// Session is an active decode session. Release is safe to call more than once.
type Session interface {
	Release() error
}

// ExtractAddress pulls the account address out of a scanned payload.
// It accepts bare addresses as well as EIP-681 style URIs such as
// "ethereum:0x1234@137/transfer?amount=5".
func ExtractAddress(payload string) string {
	s := strings.TrimSpace(payload)
	if i := strings.Index(s, ":"); i >= 0 && isScheme(s[:i]) {
		s = s[i+1:]
	}
	s = strings.TrimPrefix(s, "pay-")
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "@"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
