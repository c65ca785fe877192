package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/tariff"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/pkg/errs"
)

func (r ReserveRequest) details() booking.Details {
	return booking.Details{
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
		OwnerName:     r.OwnerName,
		Phone:         r.Phone,
		SlotID:        r.SlotID,
		DurationHours: r.DurationHours,
	}
}

func onlySlotMissing(d booking.Details) bool {
	d.SlotID = "-"
	return d.Validate() == nil
}

// findLocked expects s.mu to be held.
func (s *BookingService) findLocked(ctx context.Context, id string) (*booking.Booking, error) {
	if b, ok := s.active[id]; ok {
		return b, nil
	}
	rec, ok := s.store.Lookup(ctx, id)
	if !ok {
		return nil, errs.Wrapf(ErrBookingNotFound, "booking %s", id)
	}
	b, err := s.fromRecord(rec)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "booking %s is unreadable", id), ErrBookingNotFound)
	}
	if b.IsActive() {
		s.active[b.ID()] = b
	}
	return b, nil
}

func (s *BookingService) fromRecord(rec store.Record) (*booking.Booking, error) {
	if rec.BookingID == "" || rec.BookingID == store.PlaceholderID {
		return nil, errs.New("record has no booking id")
	}
	hours, err := booking.ParseDurationLabel(rec.Duration)
	if err != nil {
		return nil, err
	}
	amount, err := tariff.ParseMoney(rec.Amount)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.ParseInLocation(booking.TimeLayout, rec.InTime, s.clock.Now().Location())
	if err != nil {
		return nil, errs.Wrap(err, "invalid in_time")
	}
	status := booking.Status(strings.TrimSpace(rec.Status))
	if !status.IsValid() {
		return nil, errs.Newf("unknown status %q", rec.Status)
	}
	// vehicle type is not stored
	return booking.Reconstruct(
		rec.BookingID, rec.VehicleNumber, "", rec.Name, rec.Phone, rec.SlotNumber,
		hours, amount, createdAt, status,
	), nil
}

func (s *BookingService) releaseSlot(id string) {
	if err := s.pool.Release(id); err != nil {
		s.logger.Warn("Failed to release slot",
			slog.String("slot", id),
			slog.String("error", err.Error()))
	}
}

// releaseHeld frees the slot only while b's vehicle still occupies it.
func (s *BookingService) releaseHeld(b *booking.Booking) {
	sl, ok := s.pool.Get(b.SlotID())
	if !ok || sl.Available || sl.Occupant != b.VehicleNumber() {
		s.logger.Warn("Slot not held by booking, leaving it as is",
			slog.String("booking_id", b.ID()),
			slog.String("slot", b.SlotID()))
		return
	}
	s.releaseSlot(b.SlotID())
}
