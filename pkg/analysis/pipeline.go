package analysis

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/colorspace"
	"github.com/dixieflatline76/Tone/pkg/palette"
	"github.com/dixieflatline76/Tone/pkg/season"
	"github.com/dixieflatline76/Tone/pkg/vision"
	"github.com/dixieflatline76/Tone/util/log"
)

// Options are the per-request preferences passed through from the
// boundary layer.
type Options struct {
	ApplyWhiteBalance bool
	Debug             bool
}

// Report is the complete outcome of one analysis request.
type Report struct {
	Face           vision.Face
	Skin           *SkinSample
	Background     *BackgroundSample
	WhiteBalance   *WhiteBalanceResult
	Lab            colorspace.Lab
	Thresholds     season.Thresholds
	Classification season.ClassificationResult
	Palette        palette.Palette
	Diagnostics    *Diagnostics
}

// Pipeline runs one analysis end to end. All state is immutable after
// construction, so a single Pipeline is safe for concurrent requests.
type Pipeline struct {
	detector   vision.FaceDetector
	segmenter  vision.PersonSegmenter
	extractor  *SkinRegionExtractor
	estimator  *BackgroundReferenceEstimator
	corrector  *WhiteBalanceCorrector
	thresholds season.Thresholds
	palettes   *palette.Provider
	tuning     *config.TuningConfig
}

// NewPipeline wires the analysis stages around the injected detection
// and segmentation capabilities.
func NewPipeline(detector vision.FaceDetector, segmenter vision.PersonSegmenter, palettes *palette.Provider, tuning *config.TuningConfig) *Pipeline {
	return &Pipeline{
		detector:   detector,
		segmenter:  segmenter,
		extractor:  NewSkinRegionExtractor(tuning),
		estimator:  NewBackgroundReferenceEstimator(tuning),
		corrector:  NewWhiteBalanceCorrector(tuning),
		thresholds: season.Thresholds{Lightness: tuning.LightnessThreshold, Warmth: tuning.WarmthThreshold},
		palettes:   palettes,
		tuning:     tuning,
	}
}

// Analyze runs the full pipeline over a decoded image. Face detection
// and person segmentation have no data dependency on each other and run
// in parallel; everything after them is sequential.
func (p *Pipeline) Analyze(ctx context.Context, img image.Image, opts Options) (*Report, error) {
	if err := CheckQuality(img, p.tuning); err != nil {
		return nil, err
	}

	var faces []vision.Face
	var mask *vision.Mask

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		faces, err = p.detector.DetectFaces(gctx, img)
		return err
	})
	g.Go(func() error {
		m, err := p.segmenter.SegmentPerson(gctx, img)
		if err != nil {
			// Segmentation failure only costs us the background
			// reference; the skin locus fallback covers for it.
			log.Debugf("person segmentation unavailable: %v", err)
			return nil
		}
		mask = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("detecting face: %w", err)
	}

	switch {
	case len(faces) == 0:
		return nil, errNoFace()
	case len(faces) > 1:
		return nil, errMultipleFaces()
	}
	face := faces[0]

	skin, err := p.extractor.Extract(img, face)
	if err != nil {
		return nil, err
	}

	background := p.estimator.Estimate(img, mask)
	wb := p.corrector.Correct(skin, background, opts.ApplyWhiteBalance)
	lab := colorspace.RGBToLab(wb.Corrected)
	classification := season.Classify(lab, p.thresholds)

	report := &Report{
		Face:           face,
		Skin:           skin,
		Background:     background,
		WhiteBalance:   wb,
		Lab:            lab,
		Thresholds:     p.thresholds,
		Classification: classification,
		Palette:        p.palettes.Assemble(classification.Season),
	}
	if opts.Debug {
		report.Diagnostics = p.collectDiagnostics(img, report)
	}
	return report, nil
}

// collectDiagnostics assembles the per-stage debug payload. Diagnostic
// failures never fail the request; missing pieces are simply omitted.
func (p *Pipeline) collectDiagnostics(img image.Image, report *Report) *Diagnostics {
	diag := &Diagnostics{
		FaceDetection: map[string]interface{}{
			"bounds":  report.Face.Bounds.String(),
			"quality": report.Face.Quality,
			"regions": len(report.Face.Regions),
		},
		SkinExtraction: map[string]interface{}{
			"pixel_count": report.Skin.PixelCount,
			"variance":    report.Skin.Variance,
			"mean_rgb":    report.Skin.Mean.Ints(),
		},
		WhiteBalance: map[string]interface{}{
			"method": report.WhiteBalance.Method.String(),
		},
		ColorAnalysis: map[string]interface{}{
			"l_value":           report.Lab.L,
			"a_value":           report.Lab.A,
			"b_value":           report.Lab.B,
			"light_threshold":   p.thresholds.Lightness,
			"warm_threshold":    p.thresholds.Warmth,
			"is_light":          report.Classification.Depth == season.Light,
			"is_warm":           report.Classification.Temperature == season.Warm,
			"season_determined": report.Classification.Season.String(),
			"confidence":        report.Classification.Confidence,
		},
		RegionAgreement: p.extractor.AnalyzeRegionAgreement(img, report.Face),
		SampleGrade:     GradeSample(report.Skin),
		Contrast:        p.extractor.AnalyzeContrast(img, report.Face),
	}

	switch report.WhiteBalance.Method {
	case MethodBackground:
		meta := report.WhiteBalance.Background
		diag.WhiteBalance["background_percentage"] = meta.Percentage
		diag.WhiteBalance["background_variance"] = meta.Variance
		diag.WhiteBalance["gains"] = meta.Gains
	case MethodSkinLocus:
		meta := report.WhiteBalance.SkinLocus
		diag.WhiteBalance["g_offset"] = meta.GOffset
		diag.WhiteBalance["correction_factor"] = meta.CorrectionFactor
		diag.WhiteBalance["temperature_shift"] = meta.Shift
	}

	if encoded, err := encodeDebugImage(img, p.tuning); err == nil {
		diag.Images = append(diag.Images, DebugImage{
			Step:        "original",
			Title:       "Original Image",
			Description: fmt.Sprintf("Uploaded image before any processing (%dx%d)", img.Bounds().Dx(), img.Bounds().Dy()),
			ImageBase64: encoded,
		})
	} else {
		log.Debugf("debug image encoding failed: %v", err)
	}
	return diag
}
