package qr

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
)

// ComposeOptions configures the logo overlay and its background plate.
type ComposeOptions struct {
	// Ratio is the logo bounding-square side relative to the QR side.
	Ratio float64
	// PaddingPx expands the plate beyond the logo box on each side.
	PaddingPx int
	// Background fills the plate at BackgroundOpacity.
	Background        color.RGBA
	BackgroundOpacity uint8
	// CornerRadiusPx rounds the plate corners; it is clamped to half of
	// the smaller plate dimension.
	CornerRadiusPx int
	// Outline, when non-nil, strokes the plate edge at OutlineWidthPx.
	Outline        *color.RGBA
	OutlineWidthPx int
}

// CompositeResult is one compositing attempt. It is never mutated after
// being produced.
type CompositeResult struct {
	Image          image.Image
	AppliedRatio   float64
	RequestedRatio float64
	Clamped        bool
	QRPixels       int
	LogoWidth      int
	LogoHeight     int
}

// LoadLogo reads and decodes a logo image from disk.
func LoadLogo(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no logo path", errorz.MissingInput)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("logo file not found: %w", err)
	}
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errorz.LogoUnreadable, path, err)
	}
	return img, nil
}

// Compose scales the logo to the given ratio of the QR side, draws a rounded
// background plate behind it and pastes the logo over the code's center.
//
// Order matters: the plate is alpha-composited onto the symbol first, then
// the logo is drawn on top through its own alpha channel, so the plate never
// overwrites logo pixels and modules outside the plate stay untouched. The
// result is flattened to an opaque raster.
func Compose(grid *ModuleGrid, logo image.Image, opts ComposeOptions) (*CompositeResult, error) {
	bounds := grid.Image.Bounds()
	qw, qh := bounds.Dx(), bounds.Dy()

	side := int(float64(minInt(qw, qh)) * opts.Ratio)
	if side < 1 {
		return nil, fmt.Errorf("%w: logo bounding box %dpx", errorz.DegenerateLayout, side)
	}

	lb := logo.Bounds()
	lw, lh := lb.Dx(), lb.Dy()
	if lw < 1 || lh < 1 {
		return nil, fmt.Errorf("%w: empty logo image", errorz.LogoUnreadable)
	}

	// Fit the larger dimension to the bounding square, preserving aspect.
	var newW, newH int
	if lw >= lh {
		newW = side
		newH = int(math.Round(float64(side) * float64(lh) / float64(lw)))
	} else {
		newH = side
		newW = int(math.Round(float64(side) * float64(lw) / float64(lh)))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	scaled := resize.Resize(uint(newW), uint(newH), logo, resize.Lanczos3)

	cx := (qw - newW) / 2
	cy := (qh - newH) / 2

	pad := opts.PaddingPx
	if pad < 0 {
		pad = 0
	}
	// Plate clipped to the image bounds, never negative-sized.
	x0 := maxInt(0, cx-pad)
	y0 := maxInt(0, cy-pad)
	x1 := minInt(qw, cx+newW+pad)
	y1 := minInt(qh, cy+newH+pad)
	pw, ph := x1-x0, y1-y0

	radius := opts.CornerRadiusPx
	if max := minInt(pw, ph) / 2; radius > max {
		radius = max
	}
	if radius < 0 {
		radius = 0
	}

	dc := gg.NewContextForImage(grid.Image)
	dc.DrawRoundedRectangle(float64(x0), float64(y0), float64(pw), float64(ph), float64(radius))
	fill := opts.Background
	if opts.Outline != nil && opts.OutlineWidthPx > 0 {
		dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(opts.BackgroundOpacity))
		dc.FillPreserve()
		dc.SetColor(*opts.Outline)
		dc.SetLineWidth(float64(opts.OutlineWidthPx))
		dc.Stroke()
	} else {
		dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(opts.BackgroundOpacity))
		dc.Fill()
	}

	// The logo's alpha channel acts as its paste mask.
	dc.DrawImage(scaled, cx, cy)

	return &CompositeResult{
		Image:        flatten(dc.Image()),
		AppliedRatio: opts.Ratio,
		QRPixels:     minInt(qw, qh),
		LogoWidth:    newW,
		LogoHeight:   newH,
	}, nil
}

// flatten removes transparency: downstream consumers and printers expect an
// opaque raster.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
