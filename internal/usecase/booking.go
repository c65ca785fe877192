package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/payload"
	"qr-smart-parking/internal/domain/slot"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/pkg/clock"
	"qr-smart-parking/internal/pkg/errs"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrSlotUnavailable   = errs.New("slot unavailable")
	ErrNoSlotsAvailable  = errs.New("no parking slots available")
	ErrInvalidTransition = errs.New("booking is no longer active")

	// Error markers for categorization
	ErrValidation      = errs.New("booking validation failed")
	ErrTicketRendering = errs.New("ticket rendering failed")
)

type BookingStore interface {
	Insert(ctx context.Context, rec store.Record) error
	FetchAll(ctx context.Context) store.QueryOutcome
	Lookup(ctx context.Context, id string) (store.Record, bool)
	UpdateStatus(ctx context.Context, rec store.Record)
}

type TicketRenderer interface {
	RenderPNG(text string) ([]byte, error)
}

type ReserveRequest struct {
	VehicleNumber string
	VehicleType   string
	OwnerName     string
	Phone         string
	SlotID        string
	DurationHours int
}

type Ticket struct {
	BookingID string
	Payload   string
	PNG       []byte
}

// BookingService owns the slot pool and the set of active bookings.
type BookingService struct {
	pool     *slot.Pool
	store    BookingStore
	factory  *booking.Factory
	renderer TicketRenderer
	clock    clock.Clock
	logger   *slog.Logger

	mu     sync.Mutex
	active map[string]*booking.Booking
}

func NewBookingService(
	pool *slot.Pool,
	store BookingStore,
	factory *booking.Factory,
	renderer TicketRenderer,
	clock clock.Clock,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		pool:     pool,
		store:    store,
		factory:  factory,
		renderer: renderer,
		clock:    clock,
		logger:   logger,
		active:   make(map[string]*booking.Booking),
	}
}

// Reserve allocates the slot before anything is persisted. A failed
// allocation leaves the store untouched.
func (s *BookingService) Reserve(ctx context.Context, req ReserveRequest) (*booking.Booking, error) {
	details := req.details()
	if strings.TrimSpace(details.SlotID) == "" && onlySlotMissing(details) {
		if _, ok := s.pool.Peek(); !ok {
			return nil, ErrNoSlotsAvailable
		}
	}
	if err := details.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	b, err := s.factory.Create(details)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := s.pool.Allocate(b.SlotID(), b.VehicleNumber()); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "slot %s", b.SlotID()), ErrSlotUnavailable)
	}

	if err := s.store.Insert(ctx, store.RecordFromBooking(b)); err != nil {
		s.releaseSlot(b.SlotID())
		return nil, errs.Wrap(err, "failed to persist booking")
	}

	s.mu.Lock()
	s.active[b.ID()] = b
	s.mu.Unlock()

	s.logger.Info("Booking reserved",
		slog.String("booking_id", b.ID()),
		slog.String("slot", b.SlotID()),
		slog.String("amount", b.Amount().String()))
	return b, nil
}

func (s *BookingService) Checkout(ctx context.Context, id string) error {
	return s.finish(ctx, id, (*booking.Booking).CheckOut)
}

func (s *BookingService) Cancel(ctx context.Context, id string) error {
	return s.finish(ctx, id, (*booking.Booking).Cancel)
}

func (s *BookingService) finish(ctx context.Context, id string, transition func(*booking.Booking) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.findLocked(ctx, id)
	if err != nil {
		return err
	}
	if err := transition(b); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	s.releaseHeld(b)
	s.store.UpdateStatus(ctx, store.RecordFromBooking(b))
	delete(s.active, id)

	s.logger.Info("Booking closed",
		slog.String("booking_id", id),
		slog.String("status", b.Status().String()))
	return nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(ctx, id)
}

func (s *BookingService) List(ctx context.Context) store.QueryOutcome {
	return s.store.FetchAll(ctx)
}

func (s *BookingService) AvailableSlots() []string {
	return s.pool.Snapshot()
}

func (s *BookingService) SuggestSlot() (string, bool) {
	return s.pool.Peek()
}

func (s *BookingService) Slots() []slot.Slot {
	return s.pool.Slots()
}

func (s *BookingService) Ticket(ctx context.Context, id string) (*Ticket, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	text := payload.Encode(b)
	png, err := s.renderer.RenderPNG(text)
	if err != nil {
		return nil, errs.Mark(err, ErrTicketRendering)
	}
	return &Ticket{BookingID: b.ID(), Payload: text, PNG: png}, nil
}

// Restore re-occupies the slots of bookings still marked Booked in the store,
// so occupancy survives a restart.
func (s *BookingService) Restore(ctx context.Context) error {
	outcome := s.store.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for _, rec := range outcome.Records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rec.Status != booking.StatusBooked.String() {
			continue
		}
		if err := s.pool.Allocate(rec.SlotNumber, rec.VehicleNumber); err != nil {
			s.logger.Debug("Skipping stored booking",
				slog.String("booking_id", rec.BookingID),
				slog.String("slot", rec.SlotNumber),
				slog.String("reason", err.Error()))
			continue
		}
		if b, err := s.fromRecord(rec); err == nil {
			s.active[b.ID()] = b
		}
		restored++
	}

	s.logger.Info("Slot occupancy restored",
		slog.String("source", string(outcome.Source)),
		slog.Int("restored", restored))
	return nil
}
