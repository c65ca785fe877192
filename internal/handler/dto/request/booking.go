package request

import (
	"strings"

	"qr-smart-parking/internal/usecase"
)

type CreateBookingRequest struct {
	VehicleNumber string `json:"vehicleNumber" binding:"required"`
	VehicleType   string `json:"vehicleType" binding:"required"`
	OwnerName     string `json:"ownerName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	SlotID        string `json:"slotId"`
	DurationHours int    `json:"durationHours" binding:"required,min=1"`
}

// ToParams upper-cases the plate so lookups by vehicle match.
func (r CreateBookingRequest) ToParams() usecase.ReserveRequest {
	return usecase.ReserveRequest{
		VehicleNumber: strings.ToUpper(strings.TrimSpace(r.VehicleNumber)),
		VehicleType:   r.VehicleType,
		OwnerName:     r.OwnerName,
		Phone:         r.Phone,
		SlotID:        strings.ToUpper(strings.TrimSpace(r.SlotID)),
		DurationHours: r.DurationHours,
	}
}
