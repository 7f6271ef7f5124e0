// Package qr generates QR codes with a centered logo overlay. Logo size is
// clamped to a conservative safe cap derived from the error-correction
// level and code density, and the result can optionally be verified by
// decoding it back.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
	"github.com/af0b9b/qrlogo/pkg/vcard"
)

// Level identifies a QR error-correction level.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

// ParseLevel maps the single-letter spelling (L/M/Q/H) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unknown error correction level %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelM:
		return qrcode.Medium
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	}
	return qrcode.Highest
}

// ModuleGrid is a rendered QR symbol plus its density. The quiet zone is
// included in the raster but not in the module count.
type ModuleGrid struct {
	Image   image.Image
	Modules int // side length in modules, quiet zone excluded
	Pixels  int // side length in pixels, quiet zone included
}

// Encode renders payload into a module grid. The symbol version is the
// minimal one that fits the payload at the requested level; boxSize is the
// pixel size of one module and quietZone the border width in modules.
func Encode(payload string, level Level, boxSize, quietZone int, fg, bg color.RGBA) (*ModuleGrid, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("%w: no data to encode", errorz.MissingInput)
	}
	if boxSize < 1 {
		return nil, fmt.Errorf("%w: box size %d", errorz.DegenerateLayout, boxSize)
	}
	if quietZone < 0 {
		quietZone = 0
	}

	code, err := qrcode.New(payload, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	modules := 17 + 4*code.VersionNumber
	// Negative size renders each module at |size| pixels.
	symbol := code.Image(-boxSize)

	total := (modules + 2*quietZone) * boxSize
	dc := gg.NewContext(total, total)
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(symbol, quietZone*boxSize, quietZone*boxSize)

	return &ModuleGrid{
		Image:   dc.Image(),
		Modules: modules,
		Pixels:  total,
	}, nil
}

// Config describes a full generation request.
type Config struct {
	Content   string
	LogoPath  string
	Level     Level
	BoxSize   int // pixel size per module
	QuietZone int // border width in modules

	Foreground color.RGBA
	Background color.RGBA

	LogoRatio             float64
	LogoPadding           int
	LogoBackground        color.RGBA
	LogoBackgroundOpacity uint8
	LogoCornerRadius      int
	LogoOutline           *color.RGBA // nil disables the plate outline
	LogoOutlineWidth      int

	Policy   Policy
	Validate bool
	AutoTune bool
	Scanner  Scanner
}

// Generate runs the full pipeline: encode, clamp the logo ratio against the
// safe cap, composite the overlay and, when validation is on, decode the
// result back, shrinking the ratio until it scans or the floor is reached.
//
// A nil result is only returned for fatal errors. When validation exhausts
// its retries the last composite is returned together with
// errorz.ValidationFailed so the caller can decide its disposition.
func (c *Config) Generate() (*CompositeResult, error) {
	kind := vcard.DetectKind(c.Content)

	quietZone := c.QuietZone
	if kind != vcard.KindText && quietZone < 4 {
		// Dense contact payloads need the full quiet zone to stay scannable.
		quietZone = 4
	}

	grid, err := Encode(c.Content, c.Level, c.BoxSize, quietZone, c.Foreground, c.Background)
	if err != nil {
		return nil, err
	}

	applied, clamped := c.Policy.Clamp(c.LogoRatio, c.Level, grid.Modules, kind)

	if c.LogoPath == "" {
		// No overlay requested; the bare symbol is the deliverable.
		return &CompositeResult{
			Image:    flatten(grid.Image),
			QRPixels: grid.Pixels,
		}, nil
	}

	logo, err := LoadLogo(c.LogoPath)
	if err != nil {
		return nil, err
	}

	opts := ComposeOptions{
		PaddingPx:         c.LogoPadding,
		Background:        c.LogoBackground,
		BackgroundOpacity: c.LogoBackgroundOpacity,
		CornerRadiusPx:    c.LogoCornerRadius,
		Outline:           c.LogoOutline,
		OutlineWidthPx:    c.LogoOutlineWidth,
	}

	tune := TuneOptions{
		Validate: c.Validate,
		AutoTune: c.AutoTune,
		Step:     defaultTuneStep,
		Floor:    defaultTuneFloor,
	}

	res, err := Tune(applied, tune, c.Scanner, func(ratio float64) (*CompositeResult, error) {
		opts.Ratio = ratio
		return Compose(grid, logo, opts)
	})
	if res != nil {
		res.RequestedRatio = c.LogoRatio
		res.Clamped = clamped
	}
	return res, err
}

// PNG encodes the final image losslessly.
func (r *CompositeResult) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
