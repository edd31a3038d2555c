package scan

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// ClipboardDecoder treats the system clipboard as the camera: phone scanner
// apps that sync their clipboard deliver the decoded text there.
type ClipboardDecoder struct {
	// Read returns the clipboard text; defaults to clipboard.ReadAll
	Read func() (string, error)
}

// NewClipboardDecoder returns a decoder backed by the system clipboard
func NewClipboardDecoder() *ClipboardDecoder {
	return &ClipboardDecoder{Read: clipboard.ReadAll}
}

// Start polls the clipboard at cfg.FPS. Text already on the clipboard when
// the session starts is ignored.
func (d *ClipboardDecoder) Start(ctx context.Context, cfg Config, onDecode func(string)) (Session, error) {
	read := d.Read
	if read == nil {
		read = clipboard.ReadAll
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &pollSession{cancel: cancel, done: make(chan struct{})}

	last, _ := read()
	last = strings.TrimSpace(last)
	go func() {
		defer close(s.done)
		t := time.NewTicker(frameInterval(cfg))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				text, err := read()
				if err != nil {
					continue
				}
				text = strings.TrimSpace(text)
				if text == "" || text == last {
					continue
				}
				last = text
				if ctx.Err() == nil {
					onDecode(text)
				}
			}
		}
	}()
	return s, nil
}

type pollSession struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *pollSession) Release() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}

func frameInterval(cfg Config) time.Duration {
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultConfig().FPS
	}
	return time.Second / time.Duration(fps)
}
