// Package vision provides the image-understanding capabilities the
// analysis pipeline depends on: face detection and person/background
// segmentation. Both are expressed as small interfaces so the pipeline
// can be tested with stubs and so detectors can be swapped without
// touching the color math.
package vision

import (
	"context"
	"image"
)

// Region identifies a sampling area on a detected face.
type Region int

const (
	// RegionLeftCheek and RegionRightCheek are the primary skin
	// sampling areas; they are the least likely to be shadowed or
	// covered by hair.
	RegionLeftCheek Region = iota
	RegionRightCheek
	RegionForehead
	RegionNoseBridge
	RegionChin
)

// String returns the snake_case name used in diagnostic output.
func (r Region) String() string {
	switch r {
	case RegionLeftCheek:
		return "left_cheek"
	case RegionRightCheek:
		return "right_cheek"
	case RegionForehead:
		return "forehead"
	case RegionNoseBridge:
		return "nose_bridge"
	case RegionChin:
		return "chin"
	default:
		return "unknown"
	}
}

// Face is a detected face with sampling-region polygons in image
// coordinates. Quality is the detector's confidence score; its scale
// is detector specific and only meaningful for ranking.
type Face struct {
	Bounds  image.Rectangle
	Quality float32
	Regions map[Region][]image.Point
}

// Mask is a binary foreground/background mask over an image rectangle.
type Mask struct {
	rect image.Rectangle
	fg   []bool
}

// NewMask returns an all-background mask covering r.
func NewMask(r image.Rectangle) *Mask {
	return &Mask{rect: r, fg: make([]bool, r.Dx()*r.Dy())}
}

// Bounds returns the rectangle the mask covers.
func (m *Mask) Bounds() image.Rectangle { return m.rect }

// SetForeground marks the pixels of r (clipped to the mask) as foreground.
func (m *Mask) SetForeground(r image.Rectangle) {
	r = r.Intersect(m.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - m.rect.Min.Y) * m.rect.Dx()
		for x := r.Min.X; x < r.Max.X; x++ {
			m.fg[row+x-m.rect.Min.X] = true
		}
	}
}

// Foreground reports whether (x, y) is part of the subject. Points
// outside the mask count as background.
func (m *Mask) Foreground(x, y int) bool {
	if !image.Pt(x, y).In(m.rect) {
		return false
	}
	return m.fg[(y-m.rect.Min.Y)*m.rect.Dx()+x-m.rect.Min.X]
}

// BackgroundFraction returns the share of pixels not covered by the
// subject, in [0, 1].
func (m *Mask) BackgroundFraction() float64 {
	if len(m.fg) == 0 {
		return 0
	}
	fg := 0
	for _, v := range m.fg {
		if v {
			fg++
		}
	}
	return 1 - float64(fg)/float64(len(m.fg))
}

// FaceDetector finds faces in an image.
type FaceDetector interface {
	DetectFaces(ctx context.Context, img image.Image) ([]Face, error)
}

// PersonSegmenter splits an image into subject and background.
type PersonSegmenter interface {
	SegmentPerson(ctx context.Context, img image.Image) (*Mask, error)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
