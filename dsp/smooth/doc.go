// Package smooth provides exponential smoothing for noisy control signals
// such as sensor readings that drive a lighting or animation controller.
//
// The smoothing coefficient is given as a binary exponent bin: each step
// keeps (2^bin - 1)/2^bin of the previous estimate and adds 1/2^bin of the
// new sample. bin = 0 disables smoothing; each increment doubles the time
// constant, which is roughly 2^bin samples.
//
// Two layers are offered. The free functions [ExponentialAverage], [Smooth]
// and [Smooth2] operate on state cells owned by the caller. The [Single] and
// [Double] processors own their state and cold-start flag and expose the
// usual ProcessSample/ProcessBlock/Reset surface.
//
// [Smooth2] and [Double] implement Holt's linear (double exponential)
// smoothing: the level and the sample-to-sample trend are smoothed
// independently and their sum is returned as a one-step forecast.
//
// Nothing in this package is safe for concurrent use. Keep one state per
// signal.
package smooth
