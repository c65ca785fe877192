package scan

import (
	"errors"
	"image"
	"sync"
)

var ErrSourceBusy = errors.New("frame source is owned by another session")

type FrameSource interface {
	IsOpen() bool
	Frame() (image.Image, error)
	Close() error
}

type Opener func() (FrameSource, error)

// Device hands its frame source to one session at a time.
type Device struct {
	open Opener

	mu    sync.Mutex
	owned bool
}

func NewDevice(open Opener) *Device {
	return &Device{open: open}
}

// Acquire opens the source for exclusive use. The returned release closes
// the source and frees the device; it is safe to call more than once.
func (d *Device) Acquire() (FrameSource, func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owned {
		return nil, nil, ErrSourceBusy
	}
	src, err := d.open()
	if err != nil {
		return nil, nil, err
	}
	if !src.IsOpen() {
		_ = src.Close()
		return nil, nil, errors.New("frame source did not open")
	}
	d.owned = true

	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = src.Close()
			d.mu.Lock()
			d.owned = false
			d.mu.Unlock()
		})
	}
	return src, release, nil
}
