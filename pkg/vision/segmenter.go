package vision

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"

	"github.com/dixieflatline76/Tone/config"
)

// SaliencySegmenter approximates person segmentation with saliency
// cropping: the best crop window smartcrop finds is treated as the
// subject, everything outside it as background. Coarse, but it needs
// no model file and errs toward excluding the subject from the
// background sample, which is the safe direction for white balance.
type SaliencySegmenter struct {
	resampler    imaging.ResampleFilter
	cropFraction float64
	margin       float64
}

// NewSaliencySegmenter returns a segmenter tuned from cfg.
func NewSaliencySegmenter(tuning *config.TuningConfig) *SaliencySegmenter {
	return &SaliencySegmenter{
		resampler:    imaging.Lanczos,
		cropFraction: tuning.SubjectCropFraction,
		margin:       tuning.SubjectMargin,
	}
}

// SegmentPerson returns a mask whose foreground is the saliency window
// grown by the configured margin.
func (s *SaliencySegmenter) SegmentPerson(ctx context.Context, img image.Image) (*Mask, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	targetW := int(float64(bounds.Dx()) * s.cropFraction)
	targetH := int(float64(bounds.Dy()) * s.cropFraction)
	if targetW < 1 || targetH < 1 {
		return nil, fmt.Errorf("image too small to segment: %dx%d", bounds.Dx(), bounds.Dy())
	}

	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: s.resampler})

	// FindBestCrop has no context support, so run it on a goroutine
	// and race it against cancellation.
	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		crop, err := analyzer.FindBestCrop(img, targetW, targetH)
		resultChan <- cropResult{crop: crop, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("finding subject window: %w", result.err)
		}
		subject := growRect(result.crop, s.margin).Intersect(bounds)
		mask := NewMask(bounds)
		mask.SetForeground(subject)
		return mask, nil
	}
}

// growRect expands r by margin (a fraction of its own size) on every side.
func growRect(r image.Rectangle, margin float64) image.Rectangle {
	dx := int(float64(r.Dx()) * margin)
	dy := int(float64(r.Dy()) * margin)
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

// resizer adapts imaging to the smartcrop.Resizer interface.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
