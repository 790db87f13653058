package analysis

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/colorspace"
	"github.com/dixieflatline76/Tone/pkg/vision"
)

// BackgroundSample summarizes the pixels outside the subject mask.
// Usable reports whether the background is both large enough and
// near-neutral enough to serve as a lighting reference; an unusable
// sample is not an error, it is the designed trigger for the skin
// locus fallback.
type BackgroundSample struct {
	Mean       colorspace.RGB
	Variance   float64
	Fraction   float64
	PixelCount int
	Usable     bool
}

// BackgroundReferenceEstimator derives a neutral-reference candidate
// from a person-segmentation mask.
type BackgroundReferenceEstimator struct {
	tuning *config.TuningConfig
}

// NewBackgroundReferenceEstimator returns an estimator tuned from cfg.
func NewBackgroundReferenceEstimator(tuning *config.TuningConfig) *BackgroundReferenceEstimator {
	return &BackgroundReferenceEstimator{tuning: tuning}
}

// Estimate computes the background pixel aggregate. mask may be nil
// when segmentation was unavailable; the result is then unusable.
func (e *BackgroundReferenceEstimator) Estimate(img image.Image, mask *vision.Mask) *BackgroundSample {
	if mask == nil {
		return &BackgroundSample{}
	}

	bounds := img.Bounds()
	var rs, gs, bs []float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.Foreground(x, y) {
				continue
			}
			px := pixelRGB(img, x, y)
			rs = append(rs, px.R)
			gs = append(gs, px.G)
			bs = append(bs, px.B)
		}
	}

	total := bounds.Dx() * bounds.Dy()
	sample := &BackgroundSample{PixelCount: len(rs)}
	if total > 0 {
		sample.Fraction = float64(len(rs)) / float64(total)
	}
	if len(rs) == 0 {
		return sample
	}

	sample.Mean = colorspace.RGB{
		R: stat.Mean(rs, nil),
		G: stat.Mean(gs, nil),
		B: stat.Mean(bs, nil),
	}
	sample.Variance = meanChannelStdDev(rs, gs, bs)
	sample.Usable = sample.Fraction >= e.tuning.MinBackgroundFraction &&
		sample.Variance <= e.tuning.MaxBackgroundVariance &&
		sample.Mean.R >= 1 && sample.Mean.G >= 1 && sample.Mean.B >= 1
	return sample
}
