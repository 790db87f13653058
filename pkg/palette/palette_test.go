package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Tone/pkg/season"
)

func TestNewProvider_DatasetValid(t *testing.T) {
	_, err := NewProvider()
	assert.NoError(t, err)
}

func TestProvider_AssembleEverySeason(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	for _, s := range season.All {
		pal := p.Assemble(s)
		assert.NotEmpty(t, pal.Neutrals, s.String())
		assert.NotEmpty(t, pal.Accents, s.String())
		assert.NotEmpty(t, pal.Avoid, s.String())
		assert.Len(t, pal.Pairs, 6, s.String())
		assert.Len(t, pal.Gradients, 5, s.String())
		assert.Len(t, pal.Swatch, 8, s.String())
		assert.NotEmpty(t, pal.Description.Summary, s.String())
	}
}

func TestProvider_GradientRanges(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	for _, s := range season.All {
		for _, g := range p.Assemble(s).Gradients {
			require.Contains(t, []int{2, 4}, len(g.BestRange), "%s/%s", s, g.Family)
			for _, idx := range g.BestRange {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, len(g.Gradient))
			}
			if len(g.BestRange) == 4 {
				// Two sub-ranges must be ordered and disjoint.
				assert.LessOrEqual(t, g.BestRange[0], g.BestRange[1])
				assert.Less(t, g.BestRange[1], g.BestRange[2])
				assert.LessOrEqual(t, g.BestRange[2], g.BestRange[3])
			}
		}
	}
}

func TestProvider_SplitRangeGradientExists(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	// Winter's neutral gradient is ideal at both ends but not in the
	// washed-out middle, so it carries a split range.
	var found bool
	for _, g := range p.Assemble(season.Winter).Gradients {
		if len(g.BestRange) == 4 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestProvider_Swatches(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	swatches := p.Swatches()
	require.Len(t, swatches, 4)
	for _, s := range season.All {
		assert.Len(t, swatches[s.String()], 8)
	}
}

func TestCheckHex(t *testing.T) {
	assert.NoError(t, checkHex(season.Winter, "#C6062F"))
	assert.Error(t, checkHex(season.Winter, "C6062F"))
	assert.Error(t, checkHex(season.Winter, "#GGGGGG"))
	assert.Error(t, checkHex(season.Winter, ""))
}

func TestCheckBestRange(t *testing.T) {
	gradient := Gradient{
		Family:   "Test",
		Gradient: []string{"#000000", "#111111", "#222222", "#333333"},
	}

	gradient.BestRange = []int{1, 3}
	assert.NoError(t, checkBestRange(season.Winter, gradient))

	gradient.BestRange = []int{0, 1, 2, 3}
	assert.NoError(t, checkBestRange(season.Winter, gradient))

	gradient.BestRange = []int{1}
	assert.Error(t, checkBestRange(season.Winter, gradient))

	gradient.BestRange = []int{0, 4}
	assert.Error(t, checkBestRange(season.Winter, gradient))

	gradient.BestRange = []int{0, 2, 2, 3}
	assert.Error(t, checkBestRange(season.Winter, gradient), "overlapping sub-ranges")
}
