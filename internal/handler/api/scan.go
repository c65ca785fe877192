package api

import (
	"errors"
	"image"
	_ "image/jpeg" // uploaded stills
	_ "image/png"
	"net/http"

	resdto "qr-smart-parking/internal/handler/dto/response"
	"qr-smart-parking/internal/handler/httperr"
	"qr-smart-parking/internal/usecase/scan"

	"github.com/gin-gonic/gin"
)

// MaxUploadBytes bounds a scan upload.
const MaxUploadBytes = 8 << 20

type ScanHandler struct {
	reader scan.Reader
}

func NewScanHandler(reader scan.Reader) *ScanHandler {
	return &ScanHandler{reader: reader}
}

// @Summary Verify a ticket image
// @Description Decode an uploaded still of a booking QR code. Status is always Verified.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo or screenshot of the code"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /scans [post]
func (h *ScanHandler) Decode(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported image format", nil)
		return
	}

	fields, err := scan.DecodeImage(h.reader, img)
	if err != nil {
		if errors.Is(err, scan.ErrInvalidPayload) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No booking code found in image", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFields(fields))
}
