package qr

import (
	"errors"
	"fmt"
	"math"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
)

const (
	defaultTuneStep  = 0.02
	defaultTuneFloor = 0.12
)

// TuneOptions control the decode-validation retry loop.
type TuneOptions struct {
	// Validate enables decoding the composite back after each attempt.
	Validate bool
	// AutoTune shrinks the ratio by Step after a failed decode, down to
	// Floor. With AutoTune off, the first failed decode gives up.
	AutoTune bool
	Step     float64
	Floor    float64
}

// Tune runs compose/decode attempts until the composite scans or the ratio
// floor is reached. The floor makes termination structural: each retry
// strictly lowers the ratio, so the loop is bounded.
//
// On give-up the last composite is still returned, wrapped with
// errorz.ValidationFailed; the caller decides whether to keep it.
func Tune(ratio float64, opts TuneOptions, scanner Scanner, compose func(ratio float64) (*CompositeResult, error)) (*CompositeResult, error) {
	if opts.Step <= 0 {
		opts.Step = defaultTuneStep
	}
	if opts.Floor <= 0 {
		opts.Floor = defaultTuneFloor
	}
	if scanner == nil {
		scanner = NopScanner{}
	}

	for {
		res, err := compose(ratio)
		if err != nil {
			return nil, err
		}
		if !opts.Validate {
			return res, nil
		}
		if _, decodeErr := scanner.Decode(res.Image); decodeErr == nil {
			return res, nil
		} else if !opts.AutoTune || ratio <= opts.Floor+1e-9 {
			return res, fmt.Errorf("%w: %v", errorz.ValidationFailed, decodeErr)
		}
		// Round to two decimals so the attempt sequence stays on the
		// 0.02 grid (0.18, 0.16, 0.14, 0.12).
		ratio = math.Max(opts.Floor, math.Round((ratio-opts.Step)*100)/100)
	}
}

// IsValidationFailure reports whether err is the non-fatal give-up outcome.
func IsValidationFailure(err error) bool {
	return errors.Is(err, errorz.ValidationFailed)
}
