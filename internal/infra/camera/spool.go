package camera

import (
	"errors"
	"image"
	_ "image/jpeg" // frame decoders
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"qr-smart-parking/internal/pkg/errs"
)

var (
	ErrNoFrame = errors.New("no frame captured yet")
	ErrClosed  = errors.New("frame source is closed")
)

var frameExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// SpoolSource serves the newest image a capture daemon has written to dir.
type SpoolSource struct {
	dir string

	mu     sync.Mutex
	closed bool
}

// OpenSpool fails when dir does not exist, which callers treat as the
// camera being unavailable.
func OpenSpool(dir string) (*SpoolSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to open spool %s", dir)
	}
	if !info.IsDir() {
		return nil, errs.Newf("spool %s is not a directory", dir)
	}
	return &SpoolSource{dir: dir}, nil
}

func (s *SpoolSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *SpoolSource) Frame() (image.Image, error) {
	if !s.IsOpen() {
		return nil, ErrClosed
	}
	path, err := s.newest()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open frame")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to decode frame %s", filepath.Base(path))
	}
	return img, nil
}

func (s *SpoolSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *SpoolSource) newest() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", errs.Wrap(err, "failed to list spool")
	}
	var (
		best    string
		bestMod time.Time
	)
	for _, e := range entries {
		if e.IsDir() || !frameExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestMod) {
			best = e.Name()
			bestMod = info.ModTime()
		}
	}
	if best == "" {
		return "", ErrNoFrame
	}
	return filepath.Join(s.dir, best), nil
}
