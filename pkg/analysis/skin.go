package analysis

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/colorspace"
	"github.com/dixieflatline76/Tone/pkg/vision"
)

// SkinSample is the aggregate of the pixels sampled from a face's skin
// regions. Variance is the mean per-channel population standard
// deviation, used to grade sample quality.
type SkinSample struct {
	Mean       colorspace.RGB
	PixelCount int
	Variance   float64
}

// SkinRegionExtractor samples skin pixels from cheek polygons,
// rejecting specular-highlight and deep-shadow pixels before
// aggregating.
type SkinRegionExtractor struct {
	tuning *config.TuningConfig
}

// NewSkinRegionExtractor returns an extractor tuned from cfg.
func NewSkinRegionExtractor(tuning *config.TuningConfig) *SkinRegionExtractor {
	return &SkinRegionExtractor{tuning: tuning}
}

// Extract samples both cheek regions of face and returns the aggregate
// skin sample. It fails with InsufficientSkinSample when outlier
// rejection leaves too few pixels to trust the mean.
func (e *SkinRegionExtractor) Extract(img image.Image, face vision.Face) (*SkinSample, error) {
	sample := e.sampleRegions(img, face, vision.RegionLeftCheek, vision.RegionRightCheek)
	if sample.PixelCount < e.tuning.MinSkinPixels {
		return nil, errInsufficientSkin()
	}
	return sample, nil
}

// ExtractRegion samples a single facial region. Used for the
// multi-region agreement diagnostic; unlike Extract it tolerates small
// samples and only fails when the region yields no pixels at all.
func (e *SkinRegionExtractor) ExtractRegion(img image.Image, face vision.Face, region vision.Region) (*SkinSample, error) {
	sample := e.sampleRegions(img, face, region)
	if sample.PixelCount == 0 {
		return nil, errInsufficientSkin()
	}
	return sample, nil
}

func (e *SkinRegionExtractor) sampleRegions(img image.Image, face vision.Face, regions ...vision.Region) *SkinSample {
	var rs, gs, bs []float64
	minLuma := e.tuning.MinSkinLuma
	maxLuma := e.tuning.MaxSkinLuma

	for _, region := range regions {
		poly := face.Regions[region]
		if len(poly) < 3 {
			continue
		}
		polygonPixels(poly, img.Bounds(), func(x, y int) {
			px := pixelRGB(img, x, y)
			luma := px.Luma()
			if luma < minLuma || luma > maxLuma {
				return
			}
			rs = append(rs, px.R)
			gs = append(gs, px.G)
			bs = append(bs, px.B)
		})
	}

	if len(rs) == 0 {
		return &SkinSample{}
	}
	return &SkinSample{
		Mean: colorspace.RGB{
			R: stat.Mean(rs, nil),
			G: stat.Mean(gs, nil),
			B: stat.Mean(bs, nil),
		},
		PixelCount: len(rs),
		Variance:   meanChannelStdDev(rs, gs, bs),
	}
}

// meanChannelStdDev averages the population standard deviation of the
// three channels.
func meanChannelStdDev(rs, gs, bs []float64) float64 {
	return (stat.PopStdDev(rs, nil) + stat.PopStdDev(gs, nil) + stat.PopStdDev(bs, nil)) / 3
}

// pixelRGB reads the pixel at (x, y) as an 8-bit RGB triple.
func pixelRGB(img image.Image, x, y int) colorspace.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return colorspace.RGB{
		R: float64(r >> 8),
		G: float64(g >> 8),
		B: float64(b >> 8),
	}
}

// polygonPixels visits every pixel inside the convex polygon poly,
// clipped to clip, using an even-odd ray-casting test per scanline.
func polygonPixels(poly []image.Point, clip image.Rectangle, visit func(x, y int)) {
	bounds := polygonBounds(poly).Intersect(clip)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if pointInPolygon(x, y, poly) {
				visit(x, y)
			}
		}
	}
}

func polygonBounds(poly []image.Point) image.Rectangle {
	r := image.Rectangle{Min: poly[0], Max: poly[0].Add(image.Pt(1, 1))}
	for _, p := range poly[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

func pointInPolygon(x, y int, poly []image.Point) bool {
	px, py := float64(x)+0.5, float64(y)+0.5
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)
		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
