package response

import (
	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/payload"
	"qr-smart-parking/internal/domain/slot"
	"qr-smart-parking/internal/infra/store"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            string `json:"id"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType,omitempty"`
	OwnerName     string `json:"ownerName"`
	Phone         string `json:"phone"`
	SlotID        string `json:"slotId"`
	DurationHours int    `json:"durationHours"`
	Amount        string `json:"amount"`
	BookingTime   string `json:"bookingTime"`
	Status        string `json:"status"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		VehicleNumber: b.VehicleNumber(),
		VehicleType:   b.VehicleType(),
		OwnerName:     b.OwnerName(),
		Phone:         b.Phone(),
		SlotID:        b.SlotID(),
		DurationHours: b.DurationHours(),
		Amount:        b.Amount().String(),
		BookingTime:   b.BookingTime(),
		Status:        b.Status().String(),
	}
}

type RecordResponse struct {
	BookingID     string `json:"bookingId"`
	VehicleNumber string `json:"vehicleNumber"`
	SlotNumber    string `json:"slotNumber"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	InTime        string `json:"inTime"`
	Duration      string `json:"duration"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
}

type BookingListResponse struct {
	Source  string           `json:"source"`
	Records []RecordResponse `json:"records"`
}

func FromQueryOutcome(outcome store.QueryOutcome) (*BookingListResponse, error) {
	records := make([]RecordResponse, 0, len(outcome.Records))
	if err := copier.Copy(&records, &outcome.Records); err != nil {
		return nil, err
	}
	return &BookingListResponse{
		Source:  string(outcome.Source),
		Records: records,
	}, nil
}

type SlotsResponse struct {
	Available []string    `json:"available"`
	Suggested string      `json:"suggested,omitempty"`
	Slots     []slot.Slot `json:"slots"`
}

type ScanResponse struct {
	BookingID     string            `json:"bookingId"`
	VehicleNumber string            `json:"vehicleNumber"`
	SlotID        string            `json:"slotId,omitempty"`
	Status        string            `json:"status"`
	Fields        map[string]string `json:"fields"`
}

func FromFields(f payload.Fields) *ScanResponse {
	return &ScanResponse{
		BookingID:     f.BookingID(),
		VehicleNumber: f.VehicleNumber(),
		SlotID:        f.SlotID(),
		Status:        f[payload.LabelStatus],
		Fields:        f,
	}
}
