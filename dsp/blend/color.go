package blend

import (
	"image/color"

	"github.com/cwbudde/algo-pixels/dsp/core"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA blends two colors channel by channel in premultiplied 8-bit space.
func RGBA(a, b color.Color, percentB uint8) color.RGBA {
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)

	return color.RGBA{
		R: mixChannel(ca.R, cb.R, percentB),
		G: mixChannel(ca.G, cb.G, percentB),
		B: mixChannel(ca.B, cb.B, percentB),
		A: mixChannel(ca.A, cb.A, percentB),
	}
}

// Lab blends two colors through CIE L*a*b*, giving perceptually even fades
// between saturated hues. Alpha is blended linearly. The endpoints return
// the inputs converted to color.RGBA without a Lab round trip.
func Lab(a, b color.Color, percentB uint8) color.RGBA {
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)

	switch percentB {
	case 0:
		return ca
	case core.MaxWeight:
		return cb
	}

	// Fully transparent inputs carry no color; MakeColor reports them as black.
	la, _ := colorful.MakeColor(ca)
	lb, _ := colorful.MakeColor(cb)

	r, g, bl := la.BlendLab(lb, core.WeightFraction(percentB)).Clamped().RGB255()
	alpha := mixChannel(ca.A, cb.A, percentB)

	return color.RGBA{
		R: premultiply(r, alpha),
		G: premultiply(g, alpha),
		B: premultiply(bl, alpha),
		A: alpha,
	}
}

func mixChannel(a, b, percentB uint8) uint8 {
	return uint8(WeightedMeanInt(int32(a), int32(b), percentB))
}

func premultiply(c, alpha uint8) uint8 {
	return uint8(uint32(c) * uint32(alpha) / core.MaxWeight)
}
