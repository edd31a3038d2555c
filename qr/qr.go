// Package qr renders scannable codes for the terminal and for PNG export.
package qr

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdp/qrterminal/v3"
	"github.com/skip2/go-qrcode"
	rscqr "rsc.io/qr"
)

// Level is the error-correction level of a generated code
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// Options controls how a payload is rendered
type Options struct {
	Size       int    // PNG edge length in pixels
	Foreground string // hex colour of the modules
	Background string // hex colour of the background
	Level      Level
}

// ReceiveOptions matches the receive screen of the web wallet
func ReceiveOptions() Options {
	return Options{Size: 200, Foreground: "#ffffff", Background: "#0f172a", Level: LevelH}
}

// Terminal renders payload with half-block characters. Light modules are
// drawn with the foreground so the code reads correctly on dark terminals.
func Terminal(payload string, opts Options) string {
	var buf bytes.Buffer
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:          opts.Level.terminal(),
		Writer:         &buf,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return buf.String()
}

// PNG encodes payload as a PNG image
func PNG(payload string, opts Options) ([]byte, error) {
	code, err := qrcode.New(payload, opts.Level.recovery())
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	fg, err := parseColor(opts.Foreground, color.Black)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(opts.Background, color.White)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	size := opts.Size
	if size <= 0 {
		size = 256
	}
	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// WritePNG writes the PNG rendering of payload to path
func WritePNG(path, payload string, opts Options) error {
	png, err := PNG(payload, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}

func parseColor(hex string, fallback color.Color) (color.Color, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c, nil
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	}
	return qrcode.Medium
}

func (l Level) terminal() rscqr.Level {
	switch l {
	case LevelL:
		return rscqr.L
	case LevelQ:
		return rscqr.Q
	case LevelH:
		return rscqr.H
	}
	return rscqr.M
}
