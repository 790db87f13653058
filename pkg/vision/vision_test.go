package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_DefaultsToBackground(t *testing.T) {
	mask := NewMask(image.Rect(0, 0, 10, 10))
	assert.False(t, mask.Foreground(5, 5))
	assert.Equal(t, 1.0, mask.BackgroundFraction())
}

func TestMask_SetForeground(t *testing.T) {
	mask := NewMask(image.Rect(0, 0, 10, 10))
	mask.SetForeground(image.Rect(2, 2, 6, 6))

	assert.True(t, mask.Foreground(2, 2))
	assert.True(t, mask.Foreground(5, 5))
	assert.False(t, mask.Foreground(6, 6))
	assert.False(t, mask.Foreground(0, 0))
	assert.InDelta(t, 1-16.0/100.0, mask.BackgroundFraction(), 1e-9)
}

func TestMask_ClipsToBounds(t *testing.T) {
	mask := NewMask(image.Rect(0, 0, 10, 10))
	mask.SetForeground(image.Rect(-5, -5, 20, 20))
	assert.Equal(t, 0.0, mask.BackgroundFraction())
	// Points outside the mask always read as background.
	assert.False(t, mask.Foreground(-1, -1))
	assert.False(t, mask.Foreground(10, 10))
}

func TestRegionsForBounds(t *testing.T) {
	bounds := image.Rect(100, 100, 200, 200)
	regions := RegionsForBounds(bounds)

	require.Len(t, regions, 5)
	for region, poly := range regions {
		require.Len(t, poly, 4, region.String())
		for _, p := range poly {
			assert.True(t, p.In(bounds.Inset(-1)), "%s point %v outside face box", region, p)
		}
	}

	// Cheeks must be mirrored around the vertical midline and sit below
	// the forehead.
	left := regions[RegionLeftCheek]
	right := regions[RegionRightCheek]
	forehead := regions[RegionForehead]
	assert.Less(t, left[0].X, 150)
	assert.Greater(t, right[0].X, 150)
	assert.Equal(t, left[0].Y, right[0].Y)
	assert.Greater(t, left[0].Y, forehead[2].Y)
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "left_cheek", RegionLeftCheek.String())
	assert.Equal(t, "right_cheek", RegionRightCheek.String())
	assert.Equal(t, "forehead", RegionForehead.String())
	assert.Equal(t, "nose_bridge", RegionNoseBridge.String())
	assert.Equal(t, "chin", RegionChin.String())
}

func TestGrowRect(t *testing.T) {
	grown := growRect(image.Rect(10, 10, 30, 30), 0.1)
	assert.Equal(t, image.Rect(8, 8, 32, 32), grown)
}
