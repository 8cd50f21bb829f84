package blend

import "github.com/cwbudde/algo-pixels/dsp/core"

// WeightedMeanInt averages a and b by the 8-bit weight percentB.
//
// The division truncates toward zero. Products are formed in int64 so the
// result is exact for every int32 input and the endpoints return a and b
// unchanged.
func WeightedMeanInt(a, b int32, percentB uint8) int32 {
	wb := int64(percentB)
	wa := core.MaxWeight - wb

	return int32((int64(a)*wa + int64(b)*wb) / core.MaxWeight)
}

// WeightedMeanFloat averages a and b by the 8-bit weight percentB.
func WeightedMeanFloat(a, b float64, percentB uint8) float64 {
	wb := float64(percentB)
	wa := core.MaxWeight - wb

	return (a*wa + b*wb) / core.MaxWeight
}

// FastDivideBy255 approximates value/255 with two shifts and an add.
//
// For value in [0, 65535] the result differs from integer division by at
// most one. The weighted means above use exact division; this is kept for
// callers that want the cheaper form in their own hot loops.
func FastDivideBy255(value int) int {
	return (value + 1 + (value >> 8)) >> 8
}
