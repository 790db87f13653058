package analysis

import (
	"image"

	"github.com/dixieflatline76/Tone/config"
)

// qualityStride subsamples the intensity scan; mean brightness is
// stable well below full resolution.
const qualityStride = 4

// CheckQuality rejects images whose mean intensity makes skin sampling
// unreliable. Returns nil when the image is usable.
func CheckQuality(img image.Image, tuning *config.TuningConfig) error {
	bounds := img.Bounds()
	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += qualityStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += qualityStride {
			px := pixelRGB(img, x, y)
			sum += px.R + px.G + px.B
			n += 3
		}
	}
	if n == 0 {
		return errTooDark()
	}
	mean := sum / float64(n)
	if mean < tuning.MinMeanIntensity {
		return errTooDark()
	}
	if mean > tuning.MaxMeanIntensity {
		return errTooBright()
	}
	return nil
}
