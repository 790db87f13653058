package season

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Tone/pkg/colorspace"
)

func TestClassify_QuadrantRule(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name        string
		lab         colorspace.Lab
		season      Season
		temperature Temperature
		depth       Depth
	}{
		{"cool and light is summer", colorspace.Lab{L: 180, A: 5, B: 100}, Summer, Cool, Light},
		{"warm and deep is autumn", colorspace.Lab{L: 120, A: 10, B: 150}, Autumn, Warm, Deep},
		{"cool and deep is winter", colorspace.Lab{L: 130, A: 8, B: 120}, Winter, Cool, Deep},
		{"warm and light is spring", colorspace.Lab{L: 190, A: 12, B: 145}, Spring, Warm, Light},
		{"exact thresholds tie toward cool and deep", colorspace.Lab{L: 155, A: 0, B: 132}, Winter, Cool, Deep},
		{"warmth tie with light skews summer", colorspace.Lab{L: 200, A: 0, B: 132}, Summer, Cool, Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.lab, thresholds)
			assert.Equal(t, tt.season, result.Season)
			assert.Equal(t, tt.temperature, result.Temperature)
			assert.Equal(t, tt.depth, result.Depth)
		})
	}
}

func TestClassify_Distances(t *testing.T) {
	result := Classify(colorspace.Lab{L: 180, A: 5, B: 100}, DefaultThresholds())
	assert.InDelta(t, 25.0, result.LightnessDistance, 1e-9)
	assert.InDelta(t, -32.0, result.WarmthDistance, 1e-9)
}

func TestClassify_ProbabilitiesSumToHundred(t *testing.T) {
	thresholds := DefaultThresholds()
	labs := []colorspace.Lab{
		{L: 180, A: 5, B: 100},
		{L: 120, A: 10, B: 150},
		{L: 155, A: 0, B: 132},
		{L: 0, A: 128, B: 0},
		{L: 255, A: 128, B: 255},
	}
	for _, lab := range labs {
		result := Classify(lab, thresholds)
		assert.InDelta(t, 100.0, result.Probabilities.Sum(), 0.01)
	}
}

func TestClassify_WinnerHoldsLargestProbability(t *testing.T) {
	thresholds := DefaultThresholds()
	labs := []colorspace.Lab{
		{L: 180, A: 5, B: 100},
		{L: 120, A: 10, B: 150},
		{L: 140, A: 6, B: 128},
		{L: 170, A: 9, B: 140},
	}
	for _, lab := range labs {
		result := Classify(lab, thresholds)
		for _, s := range All {
			assert.GreaterOrEqual(t, result.Probabilities[result.Season], result.Probabilities[s])
		}
		assert.Equal(t, result.Probabilities[result.Season], result.Confidence)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	lab := colorspace.Lab{L: 163.7, A: 9.1, B: 137.4}
	thresholds := DefaultThresholds()
	first := Classify(lab, thresholds)
	second := Classify(lab, thresholds)
	assert.Equal(t, first, second)
}

func TestSeason_Names(t *testing.T) {
	assert.Equal(t, "Winter", Winter.String())
	assert.Equal(t, "Winter (Cool & Deep)", Winter.FullName())
	assert.Equal(t, "Summer (Cool & Light)", Summer.FullName())
	assert.Equal(t, "Autumn (Warm & Deep)", Autumn.FullName())
	assert.Equal(t, "Spring (Warm & Light)", Spring.FullName())
}
