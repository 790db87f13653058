package season

import (
	"math"

	"github.com/dixieflatline76/Tone/pkg/colorspace"
)

// Thresholds are the process-wide classification constants, on the same
// 8-bit scale the converter emits: L above Lightness reads as light
// coloring, b above Warmth reads as a warm undertone.
type Thresholds struct {
	Lightness float64
	Warmth    float64
}

// DefaultThresholds returns the standard classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Lightness: 155, Warmth: 132}
}

// Logistic scales for the probability model. The warmth axis spans a
// narrower useful range than lightness, so it saturates faster.
const (
	lightnessScale = 20.0
	warmthScale    = 10.0
)

// Distribution holds per-season probabilities, indexed by Season, as
// percentages summing to 100.
type Distribution [4]float64

// Sum returns the total of all four probabilities.
func (d Distribution) Sum() float64 {
	return d[Winter] + d[Summer] + d[Autumn] + d[Spring]
}

// ClassificationResult is the full outcome of classifying one skin tone.
type ClassificationResult struct {
	Season            Season
	Temperature       Temperature
	Depth             Depth
	LightnessDistance float64
	WarmthDistance    float64
	Confidence        float64
	Probabilities     Distribution
}

// Classify maps a CIELAB skin tone to a season. Pure function of its
// inputs: identical lab and thresholds always produce an identical
// result.
//
// The category follows the quadrant rule on the signed threshold
// distances, with ties breaking toward cool and deep (strict >). The
// probability distribution is soft: each axis distance is squashed
// through a logistic, the per-season score is the product of its two
// matching axis terms, and the four scores are normalized to 100. Since
// the warm/cool and light/deep terms are complementary the four products
// already sum to 1, and the quadrant season always carries the largest
// share. Confidence is the winning season's percentage.
func Classify(lab colorspace.Lab, t Thresholds) ClassificationResult {
	lightnessDistance := lab.L - t.Lightness
	warmthDistance := lab.B - t.Warmth

	temp := Cool
	if warmthDistance > 0 {
		temp = Warm
	}
	depth := Deep
	if lightnessDistance > 0 {
		depth = Light
	}

	var s Season
	switch {
	case temp == Cool && depth == Deep:
		s = Winter
	case temp == Cool && depth == Light:
		s = Summer
	case temp == Warm && depth == Deep:
		s = Autumn
	default:
		s = Spring
	}

	pWarm := logistic(warmthDistance / warmthScale)
	pLight := logistic(lightnessDistance / lightnessScale)
	pCool := 1 - pWarm
	pDeep := 1 - pLight

	probs := Distribution{
		Winter: pCool * pDeep * 100,
		Summer: pCool * pLight * 100,
		Autumn: pWarm * pDeep * 100,
		Spring: pWarm * pLight * 100,
	}

	return ClassificationResult{
		Season:            s,
		Temperature:       temp,
		Depth:             depth,
		LightnessDistance: lightnessDistance,
		WarmthDistance:    warmthDistance,
		Confidence:        probs[s],
		Probabilities:     probs,
	}
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
