package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"qr-smart-parking/internal/domain/tariff"
)

const TimeLayout = "2006-01-02 15:04:05"

var (
	ErrMissingField      = errors.New("required booking field is empty")
	ErrInvalidDuration   = tariff.ErrInvalidDuration
	ErrInvalidTransition = errors.New("booking status cannot change from its current state")
)

// NewID derives a booking id from the creation time; ids created in the same
// millisecond collide.
func NewID(now time.Time) string {
	return "BK" + strconv.FormatInt(now.UnixMilli(), 10)
}

type Booking struct {
	id            string
	vehicleNumber string
	vehicleType   string
	ownerName     string
	phone         string
	slotID        string
	durationHours int
	amount        tariff.Money
	createdAt     time.Time
	status        Status
}

func Reconstruct(
	id, vehicleNumber, vehicleType, ownerName, phone, slotID string,
	durationHours int,
	amount tariff.Money,
	createdAt time.Time,
	status Status,
) *Booking {
	return &Booking{
		id:            id,
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		ownerName:     ownerName,
		phone:         phone,
		slotID:        slotID,
		durationHours: durationHours,
		amount:        amount,
		createdAt:     createdAt,
		status:        status,
	}
}

func (b *Booking) CheckOut() error {
	if b.status != StatusBooked {
		return ErrInvalidTransition
	}
	b.status = StatusCheckedOut
	return nil
}

func (b *Booking) Cancel() error {
	if b.status != StatusBooked {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

func (b *Booking) ID() string            { return b.id }
func (b *Booking) VehicleNumber() string { return b.vehicleNumber }
func (b *Booking) VehicleType() string   { return b.vehicleType }
func (b *Booking) OwnerName() string     { return b.ownerName }
func (b *Booking) Phone() string         { return b.phone }
func (b *Booking) SlotID() string        { return b.slotID }
func (b *Booking) DurationHours() int    { return b.durationHours }
func (b *Booking) Amount() tariff.Money  { return b.amount }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) BookingTime() string   { return b.createdAt.Format(TimeLayout) }
func (b *Booking) DurationLabel() string { return strconv.Itoa(b.durationHours) + " hrs" }

// ParseDurationLabel reads "5 hrs", "5 hours" or "5".
func ParseDurationLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "hours")
	s = strings.TrimSuffix(s, "hrs")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, ErrInvalidDuration
	}
	return n, nil
}
