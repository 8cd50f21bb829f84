package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// StepInt returns length integer samples that hold low for the first at
// samples and high afterwards, the typical sensor step used to probe a
// smoother.
func StepInt(low, high, at, length int) []int {
	out := make([]int, length)
	for i := range out {
		if i < at {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// RampUint16 returns length samples rising by step from start, saturating at
// the uint16 range.
func RampUint16(start, step, length int) []uint16 {
	out := make([]uint16, length)
	for i := range out {
		v := start + i*step
		switch {
		case v < 0:
			v = 0
		case v > 0xffff:
			v = 0xffff
		}
		out[i] = uint16(v)
	}
	return out
}
