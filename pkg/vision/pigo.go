package vision

import (
	"context"
	"fmt"
	"image"

	pigo "github.com/esimov/pigo/core"

	"github.com/dixieflatline76/Tone/config"
)

// PigoDetector detects faces with the pigo pixel-intensity cascade.
// It is pure Go, so it carries no native dependencies, but it only
// yields a bounding box; sampling-region polygons are synthesized from
// face-box geometry.
type PigoDetector struct {
	classifier *pigo.Pigo
	tuning     *config.TuningConfig
}

// NewPigoDetector unpacks a binary cascade model and returns a detector.
func NewPigoDetector(modelData []byte, tuning *config.TuningConfig) (*PigoDetector, error) {
	classifier, err := pigo.NewPigo().Unpack(modelData)
	if err != nil {
		return nil, fmt.Errorf("unpacking face cascade: %w", err)
	}
	return &PigoDetector{classifier: classifier, tuning: tuning}, nil
}

// DetectFaces runs the cascade over the image and returns clustered,
// confidence-filtered faces ordered as pigo emits them.
func (d *PigoDetector) DetectFaces(ctx context.Context, img image.Image) ([]Face, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	rows := src.Bounds().Dy()
	cols := src.Bounds().Dx()

	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	minSize := minDim * d.tuning.FaceDetectMinSizePct / 100
	if minSize < 20 {
		minSize = 20 // below this the cascade output is noise
	}

	cParams := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     minDim,
		ShiftFactor: d.tuning.FaceDetectShift,
		ScaleFactor: d.tuning.FaceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	// RunCascade has no context support, so run it on a goroutine and
	// race it against cancellation.
	type detectResult struct {
		dets []pigo.Detection
	}
	resultChan := make(chan detectResult, 1)

	go func() {
		dets := d.classifier.RunCascade(cParams, 0.0)
		dets = d.classifier.ClusterDetections(dets, d.tuning.FaceIoUThreshold)
		resultChan <- detectResult{dets: dets}
	}()

	var dets []pigo.Detection
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		dets = result.dets
	}

	var faces []Face
	for _, det := range dets {
		if float64(det.Q) < d.tuning.FaceDetectConfidence {
			continue
		}
		half := det.Scale / 2
		bounds := image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half)
		bounds = bounds.Intersect(src.Bounds())
		if bounds.Empty() {
			continue
		}
		faces = append(faces, Face{
			Bounds:  bounds,
			Quality: det.Q,
			Regions: RegionsForBounds(bounds),
		})
	}
	return faces, nil
}

// region placement as fractions of the face box: {x0, y0, x1, y1}.
// The cheek windows sit below the eye line and inside the jaw, where
// skin is rarely occluded by hair or glasses.
var regionFractions = map[Region][4]float64{
	RegionLeftCheek:  {0.18, 0.52, 0.40, 0.72},
	RegionRightCheek: {0.60, 0.52, 0.82, 0.72},
	RegionForehead:   {0.30, 0.10, 0.70, 0.30},
	RegionNoseBridge: {0.44, 0.35, 0.56, 0.55},
	RegionChin:       {0.38, 0.80, 0.62, 0.95},
}

// RegionsForBounds synthesizes sampling-region polygons from a face
// bounding box. Each region is a convex quad in image coordinates.
func RegionsForBounds(b image.Rectangle) map[Region][]image.Point {
	w := float64(b.Dx())
	h := float64(b.Dy())
	regions := make(map[Region][]image.Point, len(regionFractions))
	for region, f := range regionFractions {
		x0 := b.Min.X + int(f[0]*w)
		y0 := b.Min.Y + int(f[1]*h)
		x1 := b.Min.X + int(f[2]*w)
		y1 := b.Min.Y + int(f[3]*h)
		regions[region] = []image.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		}
	}
	return regions
}
