package analysis

import (
	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/colorspace"
)

// Method identifies which white-balance strategy corrected a sample.
type Method int

const (
	MethodNone Method = iota
	MethodBackground
	MethodSkinLocus
)

// String returns the wire name of the method.
func (m Method) String() string {
	switch m {
	case MethodBackground:
		return "background"
	case MethodSkinLocus:
		return "skin_locus"
	default:
		return "none"
	}
}

// BackgroundMeta describes a background-method correction.
type BackgroundMeta struct {
	Percentage float64 // background share of frame, 0-100
	Variance   float64
	MeanRGB    colorspace.RGB
	GrayTarget float64
	Gains      [3]float64
}

// SkinLocusMeta describes a skin-locus-method correction.
type SkinLocusMeta struct {
	RChromaticity    float64
	GChromaticity    float64
	ExpectedG        float64
	GOffset          float64
	CorrectionFactor float64
	Shift            [3]float64
}

// WhiteBalanceResult is the immutable outcome of one correction.
// Exactly one of Background and SkinLocus is set, matching Method.
type WhiteBalanceResult struct {
	Method     Method
	Corrected  colorspace.RGB
	Background *BackgroundMeta
	SkinLocus  *SkinLocusMeta
}

// WhiteBalanceCorrector picks and applies one of two correction
// strategies, or none. Each strategy is attempted at most once per
// request and the fallback is unconditional.
type WhiteBalanceCorrector struct {
	tuning *config.TuningConfig
}

// NewWhiteBalanceCorrector returns a corrector tuned from cfg.
func NewWhiteBalanceCorrector(tuning *config.TuningConfig) *WhiteBalanceCorrector {
	return &WhiteBalanceCorrector{tuning: tuning}
}

// decide is the strategy state machine:
// disabled -> None; usable background -> Background; else SkinLocus.
func (c *WhiteBalanceCorrector) decide(bg *BackgroundSample, enabled bool) Method {
	if !enabled {
		return MethodNone
	}
	if bg != nil && bg.Usable {
		return MethodBackground
	}
	return MethodSkinLocus
}

// Correct applies the decided strategy to the skin sample mean.
func (c *WhiteBalanceCorrector) Correct(skin *SkinSample, bg *BackgroundSample, enabled bool) *WhiteBalanceResult {
	switch c.decide(bg, enabled) {
	case MethodBackground:
		return c.correctBackground(skin, bg)
	case MethodSkinLocus:
		return c.correctSkinLocus(skin)
	default:
		return &WhiteBalanceResult{Method: MethodNone, Corrected: skin.Mean}
	}
}

// correctBackground scales each channel so the background mean lands on
// its own gray average, correcting cast while preserving luminance.
func (c *WhiteBalanceCorrector) correctBackground(skin *SkinSample, bg *BackgroundSample) *WhiteBalanceResult {
	gray := (bg.Mean.R + bg.Mean.G + bg.Mean.B) / 3
	gains := [3]float64{
		c.clampGain(gray / atLeastOne(bg.Mean.R)),
		c.clampGain(gray / atLeastOne(bg.Mean.G)),
		c.clampGain(gray / atLeastOne(bg.Mean.B)),
	}
	corrected := colorspace.RGB{
		R: skin.Mean.R * gains[0],
		G: skin.Mean.G * gains[1],
		B: skin.Mean.B * gains[2],
	}.Clamp8()

	return &WhiteBalanceResult{
		Method:    MethodBackground,
		Corrected: corrected,
		Background: &BackgroundMeta{
			Percentage: bg.Fraction * 100,
			Variance:   bg.Variance,
			MeanRGB:    bg.Mean,
			GrayTarget: gray,
			Gains:      gains,
		},
	}
}

// correctSkinLocus projects the skin mean into rg chromaticity and
// moves it toward the empirical skin locus line g = slope*r + intercept.
// A positive g offset means the sample is too warm and gets cooled
// (less red, more blue), a negative one the reverse.
func (c *WhiteBalanceCorrector) correctSkinLocus(skin *SkinSample) *WhiteBalanceResult {
	sum := atLeastOne(skin.Mean.R + skin.Mean.G + skin.Mean.B)
	rChrom := skin.Mean.R / sum
	gChrom := skin.Mean.G / sum

	expectedG := c.tuning.SkinLocusSlope*rChrom + c.tuning.SkinLocusIntercept
	gOffset := expectedG - gChrom
	factor := clampFloat(1+gOffset*c.tuning.SkinLocusStrength, c.tuning.GainFloor, c.tuning.GainCeil)

	shift := [3]float64{1 / factor, 1, factor}
	corrected := colorspace.RGB{
		R: skin.Mean.R * shift[0],
		G: skin.Mean.G * shift[1],
		B: skin.Mean.B * shift[2],
	}.Clamp8()

	return &WhiteBalanceResult{
		Method:    MethodSkinLocus,
		Corrected: corrected,
		SkinLocus: &SkinLocusMeta{
			RChromaticity:    rChrom,
			GChromaticity:    gChrom,
			ExpectedG:        expectedG,
			GOffset:          gOffset,
			CorrectionFactor: factor,
			Shift:            shift,
		},
	}
}

func (c *WhiteBalanceCorrector) clampGain(g float64) float64 {
	return clampFloat(g, c.tuning.GainFloor, c.tuning.GainCeil)
}

// atLeastOne guards gain and chromaticity division against near-zero
// channel means.
func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
