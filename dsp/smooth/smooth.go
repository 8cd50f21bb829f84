package smooth

// MaxBin is the largest accepted smoothing exponent. 1<<MaxBin still fits a
// signed 32-bit accumulator.
const MaxBin = 30

// State holds the running estimates of one smoothed signal. The cells are
// float64, wider than 32-bit float fixtures, so long runs can differ in the
// last digits from a float32 implementation.
type State struct {
	// Value is the smoothed level.
	Value float64
	// Delta is the smoothed per-sample trend. Only double smoothing uses it.
	Delta float64
}

// ExponentialAverage returns ((2^bin - 1)*oldValue + newValue) / 2^bin.
//
// bin = 0 returns newValue. A bin above MaxBin yields ErrInvalidBin.
func ExponentialAverage(newValue int, oldValue float64, bin uint8) (float64, error) {
	if err := validateBin(bin, "bin"); err != nil {
		return 0, err
	}
	return expAverage(newValue, oldValue, bin), nil
}

// TimeConstant returns the approximate time constant, in samples, of an
// exponential average with the given bin.
func TimeConstant(bin uint8) (float64, error) {
	if err := validateBin(bin, "bin"); err != nil {
		return 0, err
	}
	return float64(uint32(1) << bin), nil
}

// Smooth advances a single exponential smoother held in *previousValue.
//
// When started is false the cell is seeded with newValue verbatim. Otherwise
// it is replaced by ExponentialAverage(newValue, *previousValue, binAlpha).
// The new cell value is returned. On error the cell is left untouched.
func Smooth(newValue int, binAlpha uint8, previousValue *float64, started bool) (float64, error) {
	if err := validateBin(binAlpha, "alpha"); err != nil {
		return 0, err
	}
	return smoothLevel(newValue, binAlpha, previousValue, started), nil
}

// Smooth2 advances a double exponential (Holt) smoother.
//
// The trend sample newValue - *previousValue is taken against the level
// before it is updated and truncated toward zero. It is averaged into
// *previousDelta with binBeta on every call, including the first. The level
// is then updated as in Smooth and the sum of level and trend is returned.
// Both bins are validated before either cell is written.
func Smooth2(newValue uint16, binAlpha, binBeta uint8, previousValue, previousDelta *float64, started bool) (float64, error) {
	if err := validateBin(binAlpha, "alpha"); err != nil {
		return 0, err
	}
	if err := validateBin(binBeta, "beta"); err != nil {
		return 0, err
	}
	return smoothTrend(newValue, binAlpha, binBeta, previousValue, previousDelta, started), nil
}

func expAverage(newValue int, oldValue float64, bin uint8) float64 {
	scale := float64(uint32(1) << bin)
	return ((scale-1)*oldValue + float64(newValue)) / scale
}

func smoothLevel(newValue int, binAlpha uint8, previousValue *float64, started bool) float64 {
	if started {
		*previousValue = expAverage(newValue, *previousValue, binAlpha)
	} else {
		*previousValue = float64(newValue)
	}
	return *previousValue
}

func smoothTrend(newValue uint16, binAlpha, binBeta uint8, previousValue, previousDelta *float64, started bool) float64 {
	// Order matters: the trend must see the level from the previous call.
	delta := int(float64(newValue) - *previousValue)
	*previousDelta = expAverage(delta, *previousDelta, binBeta)
	return *previousDelta + smoothLevel(int(newValue), binAlpha, previousValue, started)
}
