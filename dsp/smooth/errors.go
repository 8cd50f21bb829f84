package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pixels/dsp/core"
)

var (
	// ErrInvalidBin is returned for a smoothing exponent above MaxBin.
	ErrInvalidBin = errors.New("smooth: invalid bin")
	// ErrInvalidState is returned when restoring a state holding NaN or Inf.
	ErrInvalidState = errors.New("smooth: state contains NaN or Inf")
	// ErrLengthMismatch is returned when block destination and source differ in length.
	ErrLengthMismatch = errors.New("smooth: dst and src lengths must match")
)

func validateBin(bin uint8, name string) error {
	if bin > MaxBin {
		return fmt.Errorf("%w: %s must be in [0,%d]: %d", ErrInvalidBin, name, MaxBin, bin)
	}
	return nil
}

func validateState(state State) error {
	if !core.IsFinite(state.Value) || !core.IsFinite(state.Delta) {
		return fmt.Errorf("%w: value=%v delta=%v", ErrInvalidState, state.Value, state.Delta)
	}
	return nil
}

func validateBlock(dst []float64, srcLen int) error {
	if len(dst) != srcLen {
		return fmt.Errorf("%w: dst=%d src=%d", ErrLengthMismatch, len(dst), srcLen)
	}
	return nil
}
