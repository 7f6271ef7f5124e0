package qr

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// Scanner decodes a QR payload from a rendered image. It is injected so
// environments without a barcode reader can substitute NopScanner; a nil
// error means the image scanned successfully.
type Scanner interface {
	Decode(img image.Image) (string, error)
}

// ZXingScanner decodes through the gozxing port of the ZXing reader.
type ZXingScanner struct{}

func (ZXingScanner) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}
	if result.GetText() == "" {
		return "", fmt.Errorf("decoded empty payload")
	}
	return result.GetText(), nil
}

// NopScanner reports success without decoding, for environments that lack a
// barcode reader. Validation then degrades to unvalidated success.
type NopScanner struct{}

func (NopScanner) Decode(image.Image) (string, error) { return "", nil }
