package payload

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/tariff"
)

const (
	LabelBookingID     = "Booking ID"
	LabelVehicleNumber = "Vehicle Number"
	LabelOwnerName     = "Owner Name"
	LabelPhone         = "Phone"
	LabelParkingSlot   = "Parking Slot"
	LabelVehicleType   = "Vehicle Type"
	LabelDuration      = "Duration"
	LabelTotalCost     = "Total Cost"
	LabelBookingTime   = "Booking Time"
	LabelStatus        = "Status"
)

// StatusVerified is what a decoded payload reports as its status, whatever
// the encoded text said.
const StatusVerified = "Verified"

const (
	header       = "==== QR SMART PARKING ===="
	footerScan   = "Please scan this QR code at entry."
	footerRetain = "Keep this code until check-out."
	currency     = "₹"
)

// labels is the wire order. Decode also uses it as match priority.
var labels = []string{
	LabelBookingID,
	LabelVehicleNumber,
	LabelOwnerName,
	LabelPhone,
	LabelParkingSlot,
	LabelVehicleType,
	LabelDuration,
	LabelTotalCost,
	LabelBookingTime,
	LabelStatus,
}

// Labels returns the field labels in wire order.
func Labels() []string {
	return slices.Clone(labels)
}

// Fields is a decoded payload keyed by label.
type Fields map[string]string

func (f Fields) BookingID() string     { return f[LabelBookingID] }
func (f Fields) VehicleNumber() string { return f[LabelVehicleNumber] }
func (f Fields) SlotID() string        { return f[LabelParkingSlot] }

// DurationHours parses "5 hours".
func (f Fields) DurationHours() (int, error) {
	return booking.ParseDurationLabel(f[LabelDuration])
}

// Amount parses the Total Cost value, which Decode has already stripped of
// its currency symbol.
func (f Fields) Amount() (tariff.Money, error) {
	return tariff.ParseMoney(f[LabelTotalCost])
}

func Encode(b *booking.Booking) string {
	values := []string{
		b.ID(),
		b.VehicleNumber(),
		b.OwnerName(),
		b.Phone(),
		b.SlotID(),
		b.VehicleType(),
		strconv.Itoa(b.DurationHours()) + " hours",
		currency + b.Amount().String(),
		b.BookingTime(),
		b.Status().String(),
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	for i, label := range labels {
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(values[i])
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(footerScan)
	sb.WriteByte('\n')
	sb.WriteString(footerRetain)
	return sb.String()
}

// Decode never fails: unknown lines are skipped and missing labels are simply
// absent from the result.
func Decode(text string) Fields {
	fields := Fields{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		for _, label := range labels {
			_, value, found := strings.Cut(line, label+":")
			if !found {
				continue
			}
			value = strings.TrimSpace(value)
			if label == LabelTotalCost {
				value = strings.TrimSpace(stripCurrency(value))
			}
			fields[label] = value
			break
		}
	}
	fields[LabelStatus] = StatusVerified
	return fields
}

// Validate reports whether the payload identifies a booking.
func Validate(f Fields) bool {
	return f[LabelBookingID] != "" && f[LabelVehicleNumber] != ""
}

func stripCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)
}
