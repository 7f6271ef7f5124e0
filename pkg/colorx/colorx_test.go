package colorx

import (
	"errors"
	"image/color"
	"testing"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"black", color.RGBA{0, 0, 0, 255}, false},
		{"White", color.RGBA{255, 255, 255, 255}, false},
		{" NAVY ", color.RGBA{0, 0, 128, 255}, false},
		{"#1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}, false},
		{"#FFF", color.RGBA{255, 255, 255, 255}, false},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}, false},
		{"10,20,30", color.RGBA{10, 20, 30, 255}, false},
		// Alpha components are dropped.
		{"rgba(10,20,30,128)", color.RGBA{10, 20, 30, 255}, false},
		{"10,20,30,0", color.RGBA{10, 20, 30, 255}, false},
		{"", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
		{"#12", color.RGBA{}, true},
		{"300,0,0", color.RGBA{}, true},
		{"10,20", color.RGBA{}, true},
		{"10,20,x", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errorz.InvalidColor) {
				t.Errorf("Resolve(%q) error = %v, want invalid color", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
