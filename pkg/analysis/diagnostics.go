package analysis

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/dixieflatline76/Tone/pkg/colorspace"
	"github.com/dixieflatline76/Tone/pkg/vision"
)

// RegionAgreement measures how consistently the facial regions report
// the same skin tone. Low agreement flags uneven lighting, shadows, or
// makeup; it does not change the classification, only the diagnostics.
type RegionAgreement struct {
	RegionsSampled int                       `json:"regions_sampled"`
	RegionColors   map[string][3]int         `json:"region_colors,omitempty"`
	RegionLab      map[string]colorspace.Lab `json:"-"`
	LVariance      float64                   `json:"l_variance"`
	WarmthVariance float64                   `json:"warmth_variance"`
	AgreementScore float64                   `json:"agreement_score"`
	Status         string                    `json:"status"`
}

// SampleGrade rates the pixel spread inside the primary skin sample.
type SampleGrade struct {
	Variance float64 `json:"variance"`
	Status   string  `json:"status"`
}

// ContrastAnalysis compares brow lightness against skin lightness.
// High contrast correlates with Winter/Spring, low with Summer/Autumn.
type ContrastAnalysis struct {
	ContrastLevel   float64  `json:"contrast_level"`
	LevelCategory   string   `json:"level_category"`
	ExpectedSeasons []string `json:"expected_seasons"`
	BrowL           float64  `json:"brow_l"`
	SkinL           float64  `json:"skin_l"`
	Status          string   `json:"status"`
}

// agreementRegions are the areas compared by AnalyzeRegionAgreement.
// Cheeks are represented by both cheek regions combined elsewhere, so
// here each region stands alone.
var agreementRegions = []vision.Region{
	vision.RegionLeftCheek,
	vision.RegionRightCheek,
	vision.RegionForehead,
	vision.RegionNoseBridge,
	vision.RegionChin,
}

// AnalyzeRegionAgreement samples each facial region independently and
// scores how well they agree on lightness and warmth.
func (e *SkinRegionExtractor) AnalyzeRegionAgreement(img image.Image, face vision.Face) *RegionAgreement {
	result := &RegionAgreement{
		RegionColors: map[string][3]int{},
		RegionLab:    map[string]colorspace.Lab{},
	}

	var lValues, warmthValues []float64
	for _, region := range agreementRegions {
		sample, err := e.ExtractRegion(img, face, region)
		if err != nil {
			continue
		}
		lab := colorspace.RGBToLab(sample.Mean)
		result.RegionColors[region.String()] = sample.Mean.Ints()
		result.RegionLab[region.String()] = lab
		lValues = append(lValues, lab.L)
		warmthValues = append(warmthValues, (lab.B-128)-(lab.A-128))
	}
	result.RegionsSampled = len(lValues)

	if result.RegionsSampled < 2 {
		result.Status = "insufficient_regions"
		return result
	}

	result.LVariance = stat.PopStdDev(lValues, nil)
	result.WarmthVariance = stat.PopStdDev(warmthValues, nil)

	// Lower spread means higher agreement; the divisors mark the spread
	// at which a region set is considered fully inconsistent.
	lAgreement := 1 - minFloat(result.LVariance/20, 1)
	warmthAgreement := 1 - minFloat(result.WarmthVariance/10, 1)
	result.AgreementScore = (lAgreement + warmthAgreement) / 2

	switch {
	case result.AgreementScore > 0.7:
		result.Status = "good"
	case result.AgreementScore > 0.5:
		result.Status = "moderate"
	default:
		result.Status = "poor"
	}
	return result
}

// GradeSample rates a skin sample by its pixel variance.
func GradeSample(sample *SkinSample) *SampleGrade {
	grade := &SampleGrade{Variance: sample.Variance}
	switch {
	case sample.Variance < 15:
		grade.Status = "excellent"
	case sample.Variance < 25:
		grade.Status = "good"
	case sample.Variance < 35:
		grade.Status = "acceptable"
	default:
		grade.Status = "poor"
	}
	return grade
}

// AnalyzeContrast compares brow and cheek lightness. Brow polygons are
// synthesized from face geometry like the skin regions are.
func (e *SkinRegionExtractor) AnalyzeContrast(img image.Image, face vision.Face) *ContrastAnalysis {
	brow := e.sampleBrows(img, face)
	skin, err := e.Extract(img, face)
	if brow == nil || err != nil {
		return &ContrastAnalysis{Status: "failed"}
	}

	browLab := colorspace.RGBToLab(brow.Mean)
	skinLab := colorspace.RGBToLab(skin.Mean)
	contrast := browLab.L - skinLab.L
	if contrast < 0 {
		contrast = -contrast
	}

	result := &ContrastAnalysis{
		ContrastLevel: contrast,
		BrowL:         browLab.L,
		SkinL:         skinLab.L,
		Status:        "success",
	}
	switch {
	case contrast > 35:
		result.LevelCategory = "high"
		result.ExpectedSeasons = []string{"Winter", "Spring"}
	case contrast < 20:
		result.LevelCategory = "low"
		result.ExpectedSeasons = []string{"Summer", "Autumn"}
	default:
		result.LevelCategory = "medium"
		result.ExpectedSeasons = []string{"All"}
	}
	return result
}

// brow placement over the face box, mirroring the region fractions used
// for skin sampling.
var browFractions = [2][4]float64{
	{0.18, 0.28, 0.42, 0.36}, // left brow
	{0.58, 0.28, 0.82, 0.36}, // right brow
}

func (e *SkinRegionExtractor) sampleBrows(img image.Image, face vision.Face) *SkinSample {
	b := face.Bounds
	w := float64(b.Dx())
	h := float64(b.Dy())

	var rs, gs, bs []float64
	for _, f := range browFractions {
		poly := []image.Point{
			{X: b.Min.X + int(f[0]*w), Y: b.Min.Y + int(f[1]*h)},
			{X: b.Min.X + int(f[2]*w), Y: b.Min.Y + int(f[1]*h)},
			{X: b.Min.X + int(f[2]*w), Y: b.Min.Y + int(f[3]*h)},
			{X: b.Min.X + int(f[0]*w), Y: b.Min.Y + int(f[3]*h)},
		}
		polygonPixels(poly, img.Bounds(), func(x, y int) {
			px := pixelRGB(img, x, y)
			rs = append(rs, px.R)
			gs = append(gs, px.G)
			bs = append(bs, px.B)
		})
	}
	if len(rs) == 0 {
		return nil
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

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
