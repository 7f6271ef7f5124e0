package qr

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
)

func testGrid(size int) *ModuleGrid {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &ModuleGrid{Image: dc.Image(), Modules: 21, Pixels: size}
}

func solidLogo(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestComposePreservesAspectRatio(t *testing.T) {
	tests := []struct {
		name         string
		logoW, logoH int
		wantW, wantH int
	}{
		{"wide logo", 100, 40, 60, 24},
		{"tall logo", 40, 100, 24, 60},
		{"square logo", 80, 80, 60, 60},
	}

	grid := testGrid(300)
	blue := color.RGBA{B: 255, A: 255}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compose(grid, solidLogo(tt.logoW, tt.logoH, blue), ComposeOptions{Ratio: 0.2})
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			if res.LogoWidth != tt.wantW || res.LogoHeight != tt.wantH {
				t.Errorf("logo scaled to %dx%d, want %dx%d", res.LogoWidth, res.LogoHeight, tt.wantW, tt.wantH)
			}
			// Aspect must survive within integer rounding.
			origAspect := float64(tt.logoW) / float64(tt.logoH)
			newAspect := float64(res.LogoWidth) / float64(res.LogoHeight)
			if diff := origAspect - newAspect; diff > 0.1 || diff < -0.1 {
				t.Errorf("aspect drifted from %.3f to %.3f", origAspect, newAspect)
			}
		})
	}
}

func TestComposePlateClippedToBounds(t *testing.T) {
	grid := testGrid(200)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	res, err := Compose(grid, solidLogo(50, 50, blue), ComposeOptions{
		Ratio:             0.2,
		PaddingPx:         10000,
		Background:        red,
		BackgroundOpacity: 255,
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("image grew to %dx%d", b.Dx(), b.Dy())
	}
	// With a plate larger than the code the corners must be plate-colored,
	// not out-of-range artifacts.
	r, g, _, _ := res.Image.At(0, 0).RGBA()
	if r != 0xffff || g != 0 {
		t.Errorf("corner pixel = %v, want plate red", res.Image.At(0, 0))
	}
}

func TestComposeLogoDrawsOverPlate(t *testing.T) {
	grid := testGrid(200)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	res, err := Compose(grid, solidLogo(60, 60, blue), ComposeOptions{
		Ratio:             0.2,
		PaddingPx:         8,
		Background:        red,
		BackgroundOpacity: 255,
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	_, _, b, _ := res.Image.At(100, 100).RGBA()
	if b != 0xffff {
		t.Errorf("center pixel = %v, want logo blue over the plate", res.Image.At(100, 100))
	}
}

func TestComposeOutputIsOpaque(t *testing.T) {
	grid := testGrid(120)
	res, err := Compose(grid, solidLogo(30, 30, color.RGBA{B: 255, A: 255}), ComposeOptions{
		Ratio:             0.15,
		BackgroundOpacity: 128,
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for _, pt := range []image.Point{{0, 0}, {60, 60}, {119, 119}} {
		if _, _, _, a := res.Image.At(pt.X, pt.Y).RGBA(); a != 0xffff {
			t.Errorf("pixel %v alpha = %d, want fully opaque", pt, a)
		}
	}
}

func TestComposeDegenerateBoundingBox(t *testing.T) {
	grid := testGrid(10)
	_, err := Compose(grid, solidLogo(10, 10, color.RGBA{A: 255}), ComposeOptions{Ratio: 0.05})
	if !errors.Is(err, errorz.DegenerateLayout) {
		t.Errorf("err = %v, want degenerate layout", err)
	}
}
