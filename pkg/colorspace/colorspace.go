// Package colorspace holds the color representations shared across the
// analysis pipeline and the sRGB to CIELAB conversion the season
// classifier operates on.
package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an sRGB triple on the 0-255 scale. Values are kept as floats
// through the pipeline so white balance gains don't lose precision.
type RGB struct {
	R float64
	G float64
	B float64
}

// Clamp8 returns the triple clamped to the displayable [0, 255] range.
func (c RGB) Clamp8() RGB {
	return RGB{
		R: clamp(c.R, 0, 255),
		G: clamp(c.G, 0, 255),
		B: clamp(c.B, 0, 255),
	}
}

// Ints returns the triple rounded to 0-255 integers.
func (c RGB) Ints() [3]int {
	cl := c.Clamp8()
	return [3]int{
		int(math.Round(cl.R)),
		int(math.Round(cl.G)),
		int(math.Round(cl.B)),
	}
}

// Luma returns the Rec. 601 luma of the triple on the 0-255 scale.
func (c RGB) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Lab is a CIELAB triple on the 8-bit convention: L scaled from [0,100]
// to [0,255], a and b offset by +128. Reference white is D65.
type Lab struct {
	L float64
	A float64
	B float64
}

// RGBToLab converts a 0-255 sRGB triple to 8-bit scaled CIELAB.
//
// go-colorful performs the standard conversion chain: the piecewise sRGB
// gamma decoding, the linear-RGB to XYZ matrix, and the XYZ to L*a*b*
// nonlinearity against the D65 white point. Its L* comes back in [0,1]
// and a*/b* divided by 100, so the rescale below lands on the 8-bit
// convention the classification thresholds are expressed in.
func RGBToLab(c RGB) Lab {
	cl := c.Clamp8()
	col := colorful.Color{R: cl.R / 255, G: cl.G / 255, B: cl.B / 255}
	l, a, b := col.Lab()
	return Lab{
		L: l * 255,
		A: a*100 + 128,
		B: b*100 + 128,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
