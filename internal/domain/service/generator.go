package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
	"github.com/af0b9b/qrlogo/internal/domain/entity"
	"github.com/af0b9b/qrlogo/internal/domain/utils/validator"
	"github.com/af0b9b/qrlogo/pkg/colorx"
	"github.com/af0b9b/qrlogo/pkg/generator"
	"github.com/af0b9b/qrlogo/pkg/logger"
	"github.com/af0b9b/qrlogo/pkg/openfile"
	qr "github.com/af0b9b/qrlogo/pkg/qrcode"
	"github.com/af0b9b/qrlogo/pkg/vcard"
)

// GeneratorService turns a request into a saved QR image. It owns payload
// resolution, color resolution, the generation pipeline and artifact
// handling (save, auto-open).
type GeneratorService struct {
	log     *logger.Logger
	scanner qr.Scanner
	policy  qr.Policy
}

func NewGeneratorService(log *logger.Logger, scanner qr.Scanner, policy qr.Policy) *GeneratorService {
	return &GeneratorService{
		log:     log,
		scanner: scanner,
		policy:  policy,
	}
}

// Generate resolves the request, runs the pipeline and saves the PNG. When
// decode validation gives up, the last composite is still saved and returned
// together with errorz.ValidationFailed; the caller decides its disposition.
func (s *GeneratorService) Generate(req entity.Request) (*qr.CompositeResult, error) {
	payload, err := s.resolvePayload(req)
	if err != nil {
		return nil, err
	}

	level, err := qr.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	cfg, err := s.buildConfig(req, payload, level)
	if err != nil {
		return nil, err
	}

	res, genErr := cfg.Generate()
	if genErr != nil && !qr.IsValidationFailure(genErr) {
		return nil, genErr
	}

	if res.Clamped {
		s.log.Warnf("Logo ratio %.2f exceeds safe cap; clamped to %.2f", res.RequestedRatio, res.AppliedRatio)
	}

	out := generator.OutputName(req.OutputPath, req.Overwrite)
	data, err := res.PNG()
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if err = os.WriteFile(out, data, 0644); err != nil {
		return nil, fmt.Errorf("save %s: %w", out, err)
	}
	s.log.Infof("Saved: %s | QR %dx%d | Logo %dx%d | Ratio %.2f",
		out, res.QRPixels, res.QRPixels, res.LogoWidth, res.LogoHeight, res.AppliedRatio)

	if genErr != nil {
		s.log.Errorf("Validation failed after auto-tune; try a smaller logo or a larger box/border")
		return res, genErr
	}

	if req.Validate {
		s.log.Info("Validation OK: QR decodes")
	}
	if req.OpenAfter {
		// Fire and forget: a missing viewer must not fail the run.
		if openErr := openfile.Open(out); openErr != nil {
			s.log.Warnf("Auto-open failed: %v", openErr)
		}
	}
	return res, nil
}

func (s *GeneratorService) buildConfig(req entity.Request, payload string, level qr.Level) (*qr.Config, error) {
	fill, err := colorx.Resolve(req.Fill)
	if err != nil {
		return nil, err
	}
	back, err := colorx.Resolve(req.Back)
	if err != nil {
		return nil, err
	}
	plate, err := colorx.Resolve(req.PlateColor)
	if err != nil {
		return nil, err
	}

	cfg := qr.Default
	cfg.Content = payload
	cfg.LogoPath = req.LogoPath
	cfg.Level = level
	cfg.BoxSize = req.BoxSize
	cfg.QuietZone = req.QuietZone
	cfg.Foreground = fill
	cfg.Background = back
	cfg.LogoRatio = req.Ratio
	cfg.LogoPadding = req.Padding
	cfg.LogoBackground = plate
	cfg.LogoBackgroundOpacity = clampOpacity(req.PlateOpacity)
	cfg.LogoCornerRadius = req.PlateRadius
	cfg.LogoOutlineWidth = req.OutlineWidth
	cfg.LogoOutline = nil
	if req.OutlineEnabled {
		outline, resolveErr := colorx.Resolve(req.OutlineColor)
		if resolveErr != nil {
			return nil, resolveErr
		}
		cfg.LogoOutline = &outline
	}
	cfg.Policy = s.policy
	cfg.Validate = req.Validate
	cfg.AutoTune = req.AutoTune
	cfg.Scanner = s.scanner
	return &cfg, nil
}

func (s *GeneratorService) resolvePayload(req entity.Request) (string, error) {
	switch req.Source {
	case entity.SourceFile:
		data, err := os.ReadFile(req.File)
		if err != nil {
			return "", fmt.Errorf("payload file: %w", err)
		}
		return string(data), nil
	case entity.SourceContact:
		if missing := validator.MissingContactFields(req.Contact); len(missing) > 0 {
			return "", fmt.Errorf("%w: contact fields: %s", errorz.MissingInput, strings.Join(missing, ", "))
		}
		if req.MECARD {
			return vcard.BuildMECARD(req.Contact), nil
		}
		return vcard.Build(req.Contact), nil
	default:
		data := req.Data
		// --data pointing at an existing file means "encode that file".
		if data != "" {
			if info, err := os.Stat(data); err == nil && !info.IsDir() {
				raw, readErr := os.ReadFile(data)
				if readErr != nil {
					return "", fmt.Errorf("payload file: %w", readErr)
				}
				return string(raw), nil
			}
		}
		if strings.TrimSpace(data) == "" {
			return "", fmt.Errorf("%w: no data provided for QR code", errorz.MissingInput)
		}
		return data, nil
	}
}

func clampOpacity(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
