package qr

import "image/color"

// Default mirrors the stock generation parameters: high error correction,
// 12px modules, a 4-module quiet zone and a white padded plate with a thin
// black outline under the logo.
var Default = Config{
	Level:                 LevelH,
	BoxSize:               12,
	QuietZone:             4,
	Foreground:            color.RGBA{A: 255},
	Background:            color.RGBA{R: 255, G: 255, B: 255, A: 255},
	LogoRatio:             0.18,
	LogoPadding:           8,
	LogoBackground:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	LogoBackgroundOpacity: 255,
	LogoCornerRadius:      12,
	LogoOutline:           &color.RGBA{A: 255},
	LogoOutlineWidth:      2,
	Policy:                DefaultPolicy(),
}
