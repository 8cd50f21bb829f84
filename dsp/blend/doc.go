// Package blend provides 8-bit weighted blending of scalars, sample blocks
// and colors.
//
// A mix weight percentB in [0,255] selects how much of input B ends up in
// the result: 0 returns A, 255 returns B, and values in between return
//
//	(a*(255-percentB) + b*percentB) / 255
//
// Available helpers:
//
//   - [WeightedMeanInt]:   integer blend with truncating division
//   - [WeightedMeanFloat]: floating-point blend
//   - [FastDivideBy255]:   shift-based approximation of value/255
//   - [Mixer]:             block blend of float64 slices, zero-alloc once warm
//   - [RGBA]:              per-channel blend of premultiplied 8-bit colors
//   - [Lab]:               perceptual blend in CIE L*a*b*
package blend
