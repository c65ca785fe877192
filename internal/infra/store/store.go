package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"qr-smart-parking/internal/infra"
)

var (
	ErrInvalidRecord   = errors.New("record needs a booking id and a vehicle number")
	ErrTierUnavailable = errors.New("store tier is not configured")
)

// PrimaryTier stores the full nine-column record.
type PrimaryTier interface {
	Insert(ctx context.Context, rec Record) error
	FetchAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, bookingID string) (Record, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (bool, error)
}

// LegacyTier only holds vehicle number, status, entry time and amount.
// FetchAll maps its rows into Records with PlaceholderID as booking id.
type LegacyTier interface {
	Insert(ctx context.Context, rec Record) error
	FetchAll(ctx context.Context) ([]Record, error)
	UpdateStatus(ctx context.Context, vehicleNumber, status string) (bool, error)
}

// Store is the three-tier facade: primary, then legacy, then memory. Remote
// failures are logged and never returned. A nil tier is treated as down.
type Store struct {
	mu      sync.Mutex
	primary PrimaryTier
	legacy  LegacyTier
	memory  *memoryTier
	timeout time.Duration
	logger  *slog.Logger
}

func New(primary PrimaryTier, legacy LegacyTier, timeout time.Duration, logger *slog.Logger) *Store {
	return &Store{
		primary: primary,
		legacy:  legacy,
		memory:  newMemoryTier(),
		timeout: timeout,
		logger:  logger,
	}
}

func (s *Store) Insert(ctx context.Context, rec Record) error {
	if rec.BookingID == "" || rec.VehicleNumber == "" {
		return ErrInvalidRecord
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.try(ctx, "primary", "insert", func(ctx context.Context) error {
		if s.primary == nil {
			return ErrTierUnavailable
		}
		return s.primary.Insert(ctx, rec)
	})
	if err == nil {
		return nil
	}

	err = s.try(ctx, "legacy", "insert", func(ctx context.Context) error {
		if s.legacy == nil {
			return ErrTierUnavailable
		}
		return s.legacy.Insert(ctx, rec)
	})
	if err == nil {
		return nil
	}

	s.memory.append(rec)
	s.logger.Warn("Remote stores unreachable, booking kept in memory",
		slog.String("booking_id", rec.BookingID))
	return nil
}

func (s *Store) FetchAll(ctx context.Context) QueryOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []Record
	primaryErr := s.try(ctx, "primary", "fetch", func(ctx context.Context) error {
		if s.primary == nil {
			return ErrTierUnavailable
		}
		var err error
		rows, err = s.primary.FetchAll(ctx)
		return err
	})
	if primaryErr == nil && len(rows) > 0 {
		return QueryOutcome{Source: Tier1Rows, Records: rows}
	}

	var legacyRows []Record
	legacyErr := s.try(ctx, "legacy", "fetch", func(ctx context.Context) error {
		if s.legacy == nil {
			return ErrTierUnavailable
		}
		var err error
		legacyRows, err = s.legacy.FetchAll(ctx)
		return err
	})
	switch {
	case legacyErr == nil:
		return QueryOutcome{Source: Tier2Rows, Records: nonNil(legacyRows)}
	case primaryErr == nil:
		// primary answered, just with nothing in it
		return QueryOutcome{Source: Tier1Rows, Records: []Record{}}
	default:
		return QueryOutcome{Source: Unavailable, Records: s.memory.all()}
	}
}

// FindByID searches the in-memory tier only.
func (s *Store) FindByID(id string) (Record, bool) {
	return s.memory.find(id)
}

// Lookup asks the primary tier and falls back to memory. A status held in
// memory overrides the primary row's.
func (s *Store) Lookup(ctx context.Context, id string) (Record, bool) {
	var rec Record
	err := s.try(ctx, "primary", "lookup", func(ctx context.Context) error {
		if s.primary == nil {
			return ErrTierUnavailable
		}
		var err error
		rec, err = s.primary.FindByID(ctx, id)
		return err
	})
	local, held := s.memory.find(id)
	if err != nil {
		return local, held
	}
	// memory only holds a primary booking once a status write missed the remote tiers
	if held {
		rec.Status = local.Status
	}
	return rec, true
}

// UpdateStatus writes rec.Status to the first tier that holds the booking.
// The legacy tier matches on vehicle number among rows still Booked.
func (s *Store) UpdateStatus(ctx context.Context, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated bool
	err := s.try(ctx, "primary", "update", func(ctx context.Context) error {
		if s.primary == nil {
			return ErrTierUnavailable
		}
		var err error
		updated, err = s.primary.UpdateStatus(ctx, rec.BookingID, rec.Status)
		return err
	})
	if err == nil && updated {
		return
	}

	err = s.try(ctx, "legacy", "update", func(ctx context.Context) error {
		if s.legacy == nil {
			return ErrTierUnavailable
		}
		var err error
		updated, err = s.legacy.UpdateStatus(ctx, rec.VehicleNumber, rec.Status)
		return err
	})
	if err == nil && updated {
		return
	}

	s.memory.setStatus(rec)
}

// try runs one attempt against a tier under the tier timeout. No retries.
func (s *Store) try(ctx context.Context, tier, op string, fn func(context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	err := fn(ctx)
	if err != nil && !errors.Is(err, ErrTierUnavailable) && !infra.IsKind(err, infra.KindNotFound) {
		s.logger.Warn("Store tier failed",
			slog.String("tier", tier),
			slog.String("op", op),
			slog.String("error", err.Error()))
	}
	return err
}

func nonNil(rows []Record) []Record {
	if rows == nil {
		return []Record{}
	}
	return rows
}
