package analysis

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/Tone/config"
)

// DebugImage is one annotated processing snapshot returned when the
// caller requests debug output.
type DebugImage struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

// Diagnostics is the per-stage debug payload of one analysis.
type Diagnostics struct {
	Images          []DebugImage           `json:"images"`
	FaceDetection   map[string]interface{} `json:"face_detection"`
	SkinExtraction  map[string]interface{} `json:"skin_extraction"`
	WhiteBalance    map[string]interface{} `json:"white_balance"`
	ColorAnalysis   map[string]interface{} `json:"color_analysis"`
	RegionAgreement *RegionAgreement       `json:"region_agreement,omitempty"`
	SampleGrade     *SampleGrade           `json:"sample_grade,omitempty"`
	Contrast        *ContrastAnalysis      `json:"contrast,omitempty"`
}

// encodeDebugImage downsizes img if needed and returns it as a JPEG
// data URI suitable for direct embedding in a JSON response.
func encodeDebugImage(img image.Image, tuning *config.TuningConfig) (string, error) {
	if img.Bounds().Dx() > tuning.DebugMaxWidth {
		img = imaging.Resize(img, tuning.DebugMaxWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: tuning.DebugJPEGQuality}); err != nil {
		return "", fmt.Errorf("encoding debug image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
