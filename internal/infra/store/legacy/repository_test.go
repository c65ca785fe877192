//go:build unit

package legacy

import (
	"testing"

	"qr-smart-parking/internal/infra/store"

	"github.com/stretchr/testify/assert"
)

func TestToRecord(t *testing.T) {
	got := toRecord(spotRow{
		SpotID:        7,
		VehicleNumber: "KA01AB1234",
		Status:        "Booked",
		EntryTime:     "2025-03-14 09:30:15",
		Amount:        "80.00",
	})

	assert.Equal(t, store.Record{
		BookingID:     store.PlaceholderID,
		VehicleNumber: "KA01AB1234",
		SlotNumber:    "7",
		InTime:        "2025-03-14 09:30:15",
		Amount:        "80.00",
		Status:        "Booked",
	}, got)
}
