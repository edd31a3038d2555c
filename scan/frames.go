package scan

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// FrameDecoder decodes QR codes from image frames written into a capture
// directory, e.g. by `fswebcam --loop 1 frames/frame.jpg` or a phone camera
// sync folder.
type FrameDecoder struct {
	Dir string
}

// NewFrameDecoder returns a decoder watching dir
func NewFrameDecoder(dir string) *FrameDecoder {
	return &FrameDecoder{Dir: dir}
}

// Start watches the capture directory and decodes new frames, at most
// cfg.FPS per second. Frames that fail to decode are skipped.
func (d *FrameDecoder) Start(ctx context.Context, cfg Config, onDecode func(string)) (Session, error) {
	if d.Dir == "" {
		return nil, fmt.Errorf("frame decoder: no capture directory configured")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("frame decoder: %w", err)
	}
	if err := w.Add(d.Dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("frame decoder: watch %s: %w", d.Dir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &frameSession{watcher: w, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		t := time.NewTicker(frameInterval(cfg))
		defer t.Stop()
		// latest frame not yet examined; partial writes are retried on the next event
		var pending string
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if (ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)) && isImage(ev.Name) {
					pending = ev.Name
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-t.C:
				if pending == "" {
					continue
				}
				frame := pending
				pending = ""
				text, err := DecodeFile(frame, cfg)
				if err != nil {
					continue
				}
				if ctx.Err() == nil {
					onDecode(text)
				}
			}
		}
	}()
	return s, nil
}

type frameSession struct {
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
	err     error
}

func (s *frameSession) Release() error {
	s.once.Do(func() {
		s.cancel()
		s.err = s.watcher.Close()
		<-s.done
	})
	return s.err
}

// DecodeFile decodes a QR code from a single image file
func DecodeFile(path string, cfg Config) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}
	return DecodeImage(img, cfg)
}

// DecodeImage looks for a QR code inside the centre box of img. When the
// box finds nothing the whole frame is tried.
func DecodeImage(img image.Image, cfg Config) (string, error) {
	reader := qrcode.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	if box := centreBox(img.Bounds(), cfg.BoxWidth, cfg.BoxHeight); box != img.Bounds() {
		if sub, ok := img.(interface {
			SubImage(r image.Rectangle) image.Image
		}); ok {
			if text, err := decodeWith(reader, sub.SubImage(box), hints); err == nil {
				return text, nil
			}
		}
	}
	return decodeWith(reader, img, hints)
}

func decodeWith(reader gozxing.Reader, img image.Image, hints map[gozxing.DecodeHintType]interface{}) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	res, err := reader.Decode(bmp, hints)
	if err != nil {
		return "", err
	}
	return res.GetText(), nil
}

func centreBox(b image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || (w >= b.Dx() && h >= b.Dy()) {
		return b
	}
	w = min(w, b.Dx())
	h = min(h, b.Dy())
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
