//go:build unit || e2e

package builder

import (
	"time"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/tariff"
	reqdto "qr-smart-parking/internal/handler/dto/request"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/usecase"
)

type BookingBuilder struct {
	ID            string
	VehicleNumber string
	VehicleType   string
	OwnerName     string
	Phone         string
	SlotID        string
	DurationHours int
	AmountCents   int64
	CreatedAt     time.Time
	Status        booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	createdAt := time.Date(2025, 3, 14, 9, 30, 15, 0, time.UTC)
	return &BookingBuilder{
		ID:            booking.NewID(createdAt),
		VehicleNumber: "KA01AB1234",
		VehicleType:   "Car",
		OwnerName:     "Asha Rao",
		Phone:         "9876543210",
		SlotID:        "A6",
		DurationHours: 2,
		AmountCents:   8000,
		CreatedAt:     createdAt,
		Status:        booking.StatusBooked,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID, b.VehicleNumber, b.VehicleType, b.OwnerName, b.Phone, b.SlotID,
		b.DurationHours, tariff.NewMoney(b.AmountCents), b.CreatedAt, b.Status,
	)
}

func (b *BookingBuilder) BuildRecord() store.Record {
	return store.RecordFromBooking(b.BuildDomain())
}

func (b *BookingBuilder) BuildReserveRequest() usecase.ReserveRequest {
	return usecase.ReserveRequest{
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		OwnerName:     b.OwnerName,
		Phone:         b.Phone,
		SlotID:        b.SlotID,
		DurationHours: b.DurationHours,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		OwnerName:     b.OwnerName,
		Phone:         b.Phone,
		SlotID:        b.SlotID,
		DurationHours: b.DurationHours,
	}
}
