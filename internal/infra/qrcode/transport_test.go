//go:build unit

package qrcode_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"qr-smart-parking/internal/infra/qrcode"
	"qr-smart-parking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Booking ID: BK1700000000000\nVehicle Number: KA01AB1234\nTotal Cost: ₹110.00"

func TestTransport_RoundTrip(t *testing.T) {
	tr := qrcode.NewTransport(0)

	img, err := tr.Render(sample)
	require.NoError(t, err)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())

	got, err := tr.Read(img)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestTransport_RenderPNG(t *testing.T) {
	tr := qrcode.NewTransport(256)

	data, err := tr.RenderPNG(sample)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	got, err := tr.Read(img)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestTransport_ReadBlank(t *testing.T) {
	blank := image.NewGray(image.Rect(0, 0, 200, 200))
	for i := range blank.Pix {
		blank.Pix[i] = uint8(color.White.Y >> 8)
	}

	_, err := qrcode.NewTransport(0).Read(blank)
	require.Error(t, err)
	assert.True(t, errs.Is(err, qrcode.ErrNoCode))
}
