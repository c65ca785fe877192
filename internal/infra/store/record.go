package store

import (
	"qr-smart-parking/internal/domain/booking"
)

// PlaceholderID stands in for the booking id on rows read from the legacy
// tier, which has no booking id column.
const PlaceholderID = "N/A"

// Record is the unified nine-column projection of a booking shared by every tier.
type Record struct {
	BookingID     string `db:"booking_id" json:"booking_id"`
	VehicleNumber string `db:"vehicle_number" json:"vehicle_number"`
	SlotNumber    string `db:"spot_number" json:"spot_number"`
	Name          string `db:"name" json:"name"`
	Phone         string `db:"phone" json:"phone"`
	InTime        string `db:"in_time" json:"in_time"`
	Duration      string `db:"duration" json:"duration"`
	Amount        string `db:"amount" json:"amount"`
	Status        string `db:"status" json:"status"`
}

func RecordFromBooking(b *booking.Booking) Record {
	return Record{
		BookingID:     b.ID(),
		VehicleNumber: b.VehicleNumber(),
		SlotNumber:    b.SlotID(),
		Name:          b.OwnerName(),
		Phone:         b.Phone(),
		InTime:        b.BookingTime(),
		Duration:      b.DurationLabel(),
		Amount:        b.Amount().String(),
		Status:        b.Status().String(),
	}
}

type Source string

const (
	Tier1Rows   Source = "tier1"
	Tier2Rows   Source = "tier2"
	Unavailable Source = "unavailable"
)

// QueryOutcome names the single tier that answered a read. Records from
// different tiers are never mixed.
type QueryOutcome struct {
	Source  Source
	Records []Record
}
