package scan

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"sync"
	"time"

	"qr-smart-parking/internal/domain/payload"

	"github.com/google/uuid"
)

var ErrInvalidPayload = errors.New("image holds no booking payload")

const DefaultInterval = 100 * time.Millisecond

type State int

const (
	StateIdle State = iota
	StateScanning
	StateFound
	StateCancelled
	StateSourceUnavailable
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateFound:
		return "found"
	case StateCancelled:
		return "cancelled"
	case StateSourceUnavailable:
		return "source_unavailable"
	default:
		return "unknown"
	}
}

// Event is the single terminal result of a session. Fields is set only for
// StateFound; Err only for StateSourceUnavailable.
type Event struct {
	State  State
	Fields payload.Fields
	Err    error
}

// Reader turns an image into the text of the code it carries.
type Reader interface {
	Read(img image.Image) (string, error)
}

// Session polls a device until a frame decodes to a valid payload or the
// caller cancels. A session runs at most once.
type Session struct {
	id       string
	device   *Device
	reader   Reader
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	state    State
	started  bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewSession(device *Device, reader Reader, interval time.Duration, logger *slog.Logger) *Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		device:   device,
		reader:   reader,
		interval: interval,
		logger:   logger.With(slog.String("scan_session", id)),
		state:    StateIdle,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start acquires the device and launches the polling worker. The returned
// channel yields exactly one terminal event and is then closed. Cancelling
// ctx is the same as calling Cancel.
func (s *Session) Start(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		close(events)
		return events
	}
	s.started = true

	select {
	case <-s.stop:
		s.state = StateCancelled
		s.mu.Unlock()
		close(s.done)
		events <- Event{State: StateCancelled}
		close(events)
		return events
	default:
	}

	src, release, err := s.device.Acquire()
	if err != nil {
		s.state = StateSourceUnavailable
		s.mu.Unlock()
		close(s.done)
		s.logger.Warn("Frame source unavailable", slog.String("error", err.Error()))
		events <- Event{State: StateSourceUnavailable, Err: err}
		close(events)
		return events
	}
	s.state = StateScanning
	s.mu.Unlock()

	go s.run(ctx, src, release, events)
	return events
}

// Cancel stops the worker and returns once the frame source is released.
// It is a no-op after a terminal state.
func (s *Session) Cancel() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

func (s *Session) run(ctx context.Context, src FrameSource, release func(), events chan<- Event) {
	defer close(events)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if fields, ok := s.poll(src); ok {
			s.finish(release, StateFound)
			events <- Event{State: StateFound, Fields: fields}
			return
		}

		select {
		case <-s.stop:
		case <-ctx.Done():
		case <-ticker.C:
			continue
		}
		s.finish(release, StateCancelled)
		events <- Event{State: StateCancelled}
		return
	}
}

// finish releases the source before the terminal state becomes visible.
func (s *Session) finish(release func(), state State) {
	release()
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	close(s.done)
	s.logger.Debug("Scan session finished", slog.String("state", state.String()))
}

// poll never reports errors: blank frames and foreign codes are expected.
func (s *Session) poll(src FrameSource) (payload.Fields, bool) {
	if !src.IsOpen() {
		return nil, false
	}
	img, err := src.Frame()
	if err != nil {
		return nil, false
	}
	fields, err := DecodeImage(s.reader, img)
	if err != nil {
		return nil, false
	}
	return fields, true
}

// DecodeImage reads a single still image, the fallback when no live source
// can be opened.
func DecodeImage(reader Reader, img image.Image) (payload.Fields, error) {
	text, err := reader.Read(img)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	fields := payload.Decode(text)
	if !payload.Validate(fields) {
		return nil, ErrInvalidPayload
	}
	return fields, nil
}
