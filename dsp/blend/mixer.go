package blend

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pixels/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when block inputs differ in length.
var ErrLengthMismatch = errors.New("blend: block lengths must match")

// Mixer blends float64 blocks by an 8-bit weight.
//
// Mixer keeps a scratch buffer that grows to the largest block seen, so
// repeated calls with the same block size do not allocate. A Mixer is not
// safe for concurrent use.
type Mixer struct {
	scratch []float64
}

// NewMixer returns a Mixer with scratch space preallocated for blockSize
// samples. A non-positive blockSize defers allocation to the first Mix.
func NewMixer(blockSize int) *Mixer {
	m := &Mixer{}
	if blockSize > 0 {
		m.scratch = make([]float64, blockSize)
	}
	return m
}

// Mix writes the weighted mean of a and b into dst.
//
// dst may alias a or b. Each element matches WeightedMeanFloat up to
// floating-point rounding.
func (m *Mixer) Mix(dst, a, b []float64, percentB uint8) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}
	if len(dst) == 0 {
		return nil
	}

	wb := core.WeightFraction(percentB)
	wa := core.WeightFraction(core.MaxWeight - percentB)

	m.scratch = core.EnsureLen(m.scratch, len(b))
	vecmath.ScaleBlock(m.scratch, b, wb)
	vecmath.ScaleBlock(dst, a, wa)
	vecmath.AddBlockInPlace(dst, m.scratch)

	return nil
}

// Crossfade blends a into b over len(dst) samples, ramping the weight from
// fromB to toB. The weight is held constant within runs of equal 8-bit
// steps, which matches how a controller steps a fade once per frame.
func (m *Mixer) Crossfade(dst, a, b []float64, fromB, toB uint8) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}

	n := len(dst)
	for start := 0; start < n; {
		w := rampWeight(fromB, toB, start, n)
		end := start + 1
		for end < n && rampWeight(fromB, toB, end, n) == w {
			end++
		}

		if err := m.Mix(dst[start:end], a[start:end], b[start:end], w); err != nil {
			return err
		}
		start = end
	}

	return nil
}

func rampWeight(fromB, toB uint8, i, n int) uint8 {
	if n <= 1 {
		return toB
	}
	t := float64(i) / float64(n-1)
	return core.FractionToWeight((float64(fromB) + t*(float64(toB)-float64(fromB))) / core.MaxWeight)
}
