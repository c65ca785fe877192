//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"qr-smart-parking/internal/domain/booking"
	resdto "qr-smart-parking/internal/handler/dto/response"
	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/tests/common/builder"
	"qr-smart-parking/tests/common/dbtest"
	"qr-smart-parking/tests/common/httptest"
	"qr-smart-parking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingE2ETestSuite struct {
	e2e.SharedSuite
}

func TestBookingE2ETestSuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

func (s *BookingE2ETestSuite) reserve(slotID, plate string) resdto.BookingResponse {
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.SlotID = slotID
		b.VehicleNumber = plate
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)

	var got resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
	return got
}

func (s *BookingE2ETestSuite) slots() resdto.SlotsResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/slots", nil)

	var got resdto.SlotsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	return got
}

func (s *BookingE2ETestSuite) TestReserveAndList() {
	s.Equal("A6", s.slots().Suggested)

	created := s.reserve("A6", "KA01AB1234")
	s.Equal("A6", created.SlotID)
	s.Equal("80.00", created.Amount)
	s.Equal(1, dbtest.CountRecords(s.T(), s.DB, booking.StatusBooked.String()))

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil)
	var list resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	s.Equal(string(store.Tier1Rows), list.Source)
	s.Require().Len(list.Records, 1)
	s.Equal(created.ID, list.Records[0].BookingID)
	s.Equal("2 hrs", list.Records[0].Duration)
	s.Equal("80.00", list.Records[0].Amount)
	s.Equal(created.BookingTime, list.Records[0].InTime)

	s.Equal("A7", s.slots().Suggested)
}

func (s *BookingE2ETestSuite) TestSlotConflicts() {
	s.reserve("A6", "KA01AB1234")

	s.Run("taken slot", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Slot is not available")
	})

	s.Run("pre-occupied slot", func() {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SlotID = "A1" }).BuildCreateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Slot is not available")
	})

	s.Equal(1, dbtest.CountRecords(s.T(), s.DB, booking.StatusBooked.String()))
}

func (s *BookingE2ETestSuite) TestCheckoutFreesSlot() {
	created := s.reserve("A6", "KA01AB1234")
	s.NotContains(s.slots().Available, "A6")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID+"/checkout", nil)
	s.Equal(http.StatusNoContent, w.Code)

	s.Contains(s.slots().Available, "A6")
	s.Equal(1, dbtest.CountRecords(s.T(), s.DB, booking.StatusCheckedOut.String()))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID+"/cancel", nil)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "no longer active")
}

func (s *BookingE2ETestSuite) TestOccupancySurvivesRestart() {
	created := s.reserve("A8", "KA01AB1234")

	s.StartApp()

	s.NotContains(s.slots().Available, "A8")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID, nil)
	var got resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("A8", got.SlotID)
	s.Equal("Booked", got.Status)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID+"/cancel", nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Contains(s.slots().Available, "A8")
	s.Equal(1, dbtest.CountRecords(s.T(), s.DB, booking.StatusCancelled.String()))
}

func (s *BookingE2ETestSuite) TestTicketRoundTrip() {
	created := s.reserve("A6", "KA01AB1234")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID+"/qr", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))

	w = httptest.PerformUpload(s.T(), s.Router, "/api/scans", "image", "ticket.png", w.Body.Bytes())
	var scanned resdto.ScanResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &scanned)
	s.Equal(created.ID, scanned.BookingID)
	s.Equal("KA01AB1234", scanned.VehicleNumber)
	s.Equal("Verified", scanned.Status)
}

func (s *BookingE2ETestSuite) TestLotFills() {
	for i := 6; i <= 20; i++ {
		s.reserve(fmt.Sprintf("A%d", i), fmt.Sprintf("KA01AB%04d", i))
		// booking ids are millisecond timestamps
		time.Sleep(2 * time.Millisecond)
	}
	s.Empty(s.slots().Available)

	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SlotID = "" }).BuildCreateRequestDTO()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", req)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "No parking slots available")

	require.Equal(s.T(), 15, dbtest.CountRecords(s.T(), s.DB, booking.StatusBooked.String()))
}
