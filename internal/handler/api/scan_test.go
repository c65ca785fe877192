//go:build unit

package api_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"qr-smart-parking/internal/domain/payload"
	"qr-smart-parking/internal/handler"
	"qr-smart-parking/internal/handler/api"
	resdto "qr-smart-parking/internal/handler/dto/response"
	"qr-smart-parking/internal/infra/qrcode"
	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/logging"
	"qr-smart-parking/tests/common/builder"
	"qr-smart-parking/tests/common/httptest"
	apimock "qr-smart-parking/tests/mock/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScanRouter(t *testing.T, transport *qrcode.Transport) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler.NewRouter(router, config.NewTestConfig(), logging.Discard(),
		api.NewBookingHandler(apimock.NewMockBookingUseCase(gomock.NewController(t))),
		api.NewScanHandler(transport))
	return router
}

func blankPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = uint8(color.White.Y >> 8)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestScanHandler_Decode(t *testing.T) {
	transport := qrcode.NewTransport(qrcode.DefaultSize)
	router := newScanRouter(t, transport)

	t.Run("ticket image decodes to verified fields", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		data, err := transport.RenderPNG(payload.Encode(b))
		require.NoError(t, err)

		w := httptest.PerformUpload(t, router, "/api/scans", "image", "ticket.png", data)

		var got resdto.ScanResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, b.ID(), got.BookingID)
		assert.Equal(t, "KA01AB1234", got.VehicleNumber)
		assert.Equal(t, "A6", got.SlotID)
		assert.Equal(t, payload.StatusVerified, got.Status)
		assert.Equal(t, "80.00", got.Fields[payload.LabelTotalCost])
		assert.Equal(t, "2 hours", got.Fields[payload.LabelDuration])
	})

	t.Run("code without booking markers returns 422", func(t *testing.T) {
		data, err := transport.RenderPNG("https://example.com/not-a-ticket")
		require.NoError(t, err)

		w := httptest.PerformUpload(t, router, "/api/scans", "image", "other.png", data)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "No booking code")
	})

	t.Run("image without a code returns 422", func(t *testing.T) {
		w := httptest.PerformUpload(t, router, "/api/scans", "image", "blank.png", blankPNG(t))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "No booking code")
	})

	t.Run("non-image upload returns 400", func(t *testing.T) {
		w := httptest.PerformUpload(t, router, "/api/scans", "image", "notes.txt", []byte("Booking ID: BK1"))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unsupported image format")
	})

	t.Run("missing file returns 400", func(t *testing.T) {
		w := httptest.PerformUpload(t, router, "/api/scans", "image", "", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Image file is required")
	})
}
