package booking

import (
	"strings"
	"time"

	"qr-smart-parking/internal/domain/tariff"
	"qr-smart-parking/internal/pkg/clock"
)

type Details struct {
	VehicleNumber string
	VehicleType   string
	OwnerName     string
	Phone         string
	SlotID        string
	DurationHours int
}

func (d Details) Validate() error {
	for _, v := range []string{d.VehicleNumber, d.VehicleType, d.OwnerName, d.Phone, d.SlotID} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingField
		}
	}
	if d.DurationHours < 1 {
		return ErrInvalidDuration
	}
	return nil
}

type Factory struct {
	Clock      clock.Clock
	Calculator tariff.Calculator
}

func NewFactory(clock clock.Clock, calculator tariff.Calculator) *Factory {
	return &Factory{
		Clock:      clock,
		Calculator: calculator,
	}
}

// Create stamps id and time and prices the booking. The amount always comes
// from the calculator.
func (f *Factory) Create(d Details) (*Booking, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	amount, err := f.Calculator.ComputeAmount(d.DurationHours, 0)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Booking{
		id:            NewID(now),
		vehicleNumber: strings.TrimSpace(d.VehicleNumber),
		vehicleType:   strings.TrimSpace(d.VehicleType),
		ownerName:     strings.TrimSpace(d.OwnerName),
		phone:         strings.TrimSpace(d.Phone),
		slotID:        strings.TrimSpace(d.SlotID),
		durationHours: d.DurationHours,
		amount:        amount,
		createdAt:     now.Truncate(time.Second),
		status:        StatusBooked,
	}, nil
}
