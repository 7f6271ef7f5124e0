package entity

import "github.com/af0b9b/qrlogo/pkg/vcard"

// PayloadSource selects where the encoded data comes from.
type PayloadSource int

const (
	SourceLiteral PayloadSource = iota // --data text
	SourceFile                         // --from-file path
	SourceContact                      // structured contact fields
)

// Request describes a single QR generation request as collected from the
// CLI or the interactive wizard. Colors are kept as raw specs and resolved
// by the generator service.
type Request struct {
	Source  PayloadSource
	Data    string
	File    string
	Contact vcard.Contact
	MECARD  bool // encode the contact as MECARD instead of vCard

	LogoPath   string
	OutputPath string
	Overwrite  bool

	Fill string
	Back string

	Ratio     float64
	BoxSize   int
	QuietZone int
	Level     string

	Padding        int
	PlateColor     string
	PlateOpacity   int
	PlateRadius    int
	OutlineColor   string
	OutlineWidth   int
	OutlineEnabled bool

	Validate  bool
	AutoTune  bool
	OpenAfter bool
}
