package qr

import "github.com/af0b9b/qrlogo/pkg/vcard"

// Policy holds the heuristic caps for how much of a QR code a centered
// overlay may cover. The numbers are conservative rules of thumb, not
// derived values, so they stay configurable.
type Policy struct {
	// BaseCap is the per-error-correction-level cap. Higher levels
	// tolerate more obscured area.
	BaseCap map[Level]float64

	// Codes at or above DenseModules on a side lose DensePenalty from the
	// base cap; codes in [MediumModules, DenseModules) lose MediumPenalty.
	// Denser grids have finer modules, so the same area ratio obscures
	// proportionally more data.
	DenseModules  int
	MediumModules int
	DensePenalty  float64
	MediumPenalty float64

	// Ceiling bounds the cap regardless of level; Floor is the smallest
	// ratio at which an overlay is still visually useful.
	Ceiling float64
	Floor   float64

	// VCardCap and MECARDCap pre-cap structured contact payloads, which
	// are longer and less tolerant of obstruction.
	VCardCap  float64
	MECARDCap float64
}

// DefaultPolicy returns the stock heuristic table.
func DefaultPolicy() Policy {
	return Policy{
		BaseCap: map[Level]float64{
			LevelL: 0.12,
			LevelM: 0.15,
			LevelQ: 0.18,
			LevelH: 0.22,
		},
		DenseModules:  45,
		MediumModules: 33,
		DensePenalty:  0.03,
		MediumPenalty: 0.02,
		Ceiling:       0.20,
		Floor:         0.08,
		VCardCap:      0.16,
		MECARDCap:     0.18,
	}
}

// MaxRatio computes the largest permissible logo-to-code ratio for the
// given error-correction level, module count and payload kind.
func (p Policy) MaxRatio(level Level, modules int, kind vcard.Kind) float64 {
	base, ok := p.BaseCap[level]
	if !ok {
		base = 0.18
	}
	switch {
	case modules >= p.DenseModules:
		base -= p.DensePenalty
	case modules >= p.MediumModules:
		base -= p.MediumPenalty
	}
	if base > p.Ceiling {
		base = p.Ceiling
	}
	switch kind {
	case vcard.KindVCard:
		if base > p.VCardCap {
			base = p.VCardCap
		}
	case vcard.KindMECARD:
		if base > p.MECARDCap {
			base = p.MECARDCap
		}
	}
	if base < p.Floor {
		base = p.Floor
	}
	return base
}

// Clamp bounds a requested ratio into [Floor, MaxRatio]. The second return
// reports whether the request was lowered, which callers surface as a
// warning rather than an error.
func (p Policy) Clamp(requested float64, level Level, modules int, kind vcard.Kind) (float64, bool) {
	max := p.MaxRatio(level, modules, kind)
	applied := requested
	if applied > max {
		applied = max
	}
	if applied < p.Floor {
		applied = p.Floor
	}
	return applied, applied < requested
}
