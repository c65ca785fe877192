package api

import (
	"context"
	"net/http"

	"qr-smart-parking/internal/domain/booking"
	"qr-smart-parking/internal/domain/slot"
	reqdto "qr-smart-parking/internal/handler/dto/request"
	resdto "qr-smart-parking/internal/handler/dto/response"
	"qr-smart-parking/internal/handler/httperr"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/pkg/errs"
	"qr-smart-parking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingUseCase interface {
	Reserve(ctx context.Context, req usecase.ReserveRequest) (*booking.Booking, error)
	Checkout(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*booking.Booking, error)
	List(ctx context.Context) store.QueryOutcome
	AvailableSlots() []string
	SuggestSlot() (string, bool)
	Slots() []slot.Slot
	Ticket(ctx context.Context, id string) (*usecase.Ticket, error)
}

type BookingHandler struct {
	bookings BookingUseCase
}

func NewBookingHandler(bookings BookingUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary List slots
// @Description Free slot ids in allocation order, the suggested slot and the full grid
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.SlotsResponse
// @Router /slots [get]
func (h *BookingHandler) ListSlots(c *gin.Context) {
	suggested, _ := h.bookings.SuggestSlot()
	c.JSON(http.StatusOK, resdto.SlotsResponse{
		Available: h.bookings.AvailableSlots(),
		Suggested: suggested,
		Slots:     h.bookings.Slots(),
	})
}

// @Summary Create booking
// @Description Reserve a slot for a vehicle. An empty slotId is rejected, or answered with 409 when the lot is full.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.bookings.Reserve(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description All bookings from whichever store tier answered
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	res, err := resdto.FromQueryOutcome(h.bookings.List(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Check out
// @Description Close an active booking and free its slot
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	if err := h.bookings.Checkout(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.bookings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Booking QR code
// @Description PNG of the booking payload, to be shown at the gate
// @Tags bookings
// @Produce png
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/qr [get]
func (h *BookingHandler) QRCode(c *gin.Context) {
	ticket, err := h.bookings.Ticket(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", ticket.PNG)
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking", nil)
	case errs.Is(err, usecase.ErrNoSlotsAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "No parking slots available", nil)
	case errs.Is(err, usecase.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
	case errs.Is(err, usecase.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is no longer active", nil)
	case errs.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
