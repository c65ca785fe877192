package qrcode

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"qr-smart-parking/internal/pkg/errs"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var ErrNoCode = errors.New("no readable code in image")

const DefaultSize = 320

// Transport renders payload text to a QR image and reads it back.
type Transport struct {
	size   int
	writer *qrcode.QRCodeWriter
}

func NewTransport(size int) *Transport {
	if size <= 0 {
		size = DefaultSize
	}
	return &Transport{
		size:   size,
		writer: qrcode.NewQRCodeWriter(),
	}
}

func (t *Transport) Render(text string) (image.Image, error) {
	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_CHARACTER_SET: "UTF-8",
	}
	matrix, err := t.writer.Encode(text, gozxing.BarcodeFormat_QR_CODE, t.size, t.size, hints)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode qr code")
	}
	return matrix, nil
}

func (t *Transport) RenderPNG(text string) ([]byte, error) {
	img, err := t.Render(text)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errs.Wrap(err, "failed to write png")
	}
	return buf.Bytes(), nil
}

// Read returns ErrNoCode when the image holds no decodable QR symbol.
func (t *Transport) Read(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to binarize image"), ErrNoCode)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
		gozxing.DecodeHintType_TRY_HARDER:    true,
	}
	// reader keeps per-call state, so one per Read
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to decode qr code"), ErrNoCode)
	}
	return result.GetText(), nil
}
