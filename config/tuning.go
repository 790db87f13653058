package config

// TuningConfig holds the internal magic numbers and thresholds for the
// analysis pipeline. These are currently static but centralized here to
// allow for future remote configuration.
type TuningConfig struct {
	// White balance — background reference method
	MinBackgroundFraction float64 `json:"min_background_fraction"` // Default: 0.10 (10% of frame)
	MaxBackgroundVariance float64 `json:"max_background_variance"` // Default: 30.0 (mean per-channel std dev)
	GainFloor             float64 `json:"gain_floor"`              // Default: 0.5
	GainCeil              float64 `json:"gain_ceil"`               // Default: 2.0

	// White balance — skin locus fallback
	SkinLocusSlope     float64 `json:"skin_locus_slope"`     // Default: -1.73 (empirical locus line)
	SkinLocusIntercept float64 `json:"skin_locus_intercept"` // Default: 1.06
	SkinLocusStrength  float64 `json:"skin_locus_strength"`  // Default: 2.0

	// Skin sampling
	MinSkinPixels int     `json:"min_skin_pixels"` // Default: 100
	MinSkinLuma   float64 `json:"min_skin_luma"`   // Default: 40 (deep shadow cutoff)
	MaxSkinLuma   float64 `json:"max_skin_luma"`   // Default: 235 (specular highlight cutoff)

	// Image quality gate
	MinMeanIntensity float64 `json:"min_mean_intensity"` // Default: 30 (too dark)
	MaxMeanIntensity float64 `json:"max_mean_intensity"` // Default: 225 (too bright)

	// Season classification
	LightnessThreshold float64 `json:"lightness_threshold"` // Default: 155 (8-bit L scale)
	WarmthThreshold    float64 `json:"warmth_threshold"`    // Default: 132 (8-bit b scale)

	// Face detection (pigo)
	FaceScaleFactor      float64 `json:"face_scale_factor"`       // Default: 1.1 (pigo internal)
	FaceDetectShift      float64 `json:"face_detect_shift"`       // Default: 0.1 (stride)
	FaceDetectConfidence float64 `json:"face_detect_confidence"`  // Default: 10.0 (Q filter)
	FaceDetectMinSizePct int     `json:"face_detect_min_size_pct"` // Default: 5 (% of min dim)
	FaceIoUThreshold     float64 `json:"face_iou_threshold"`      // Default: 0.2 (clustering)

	// Person segmentation (saliency window)
	SubjectCropFraction float64 `json:"subject_crop_fraction"` // Default: 0.65 (of frame)
	SubjectMargin       float64 `json:"subject_margin"`        // Default: 0.08 (window inflation)

	// Debug encoding
	DebugJPEGQuality int `json:"debug_jpeg_quality"` // Default: 85
	DebugMaxWidth    int `json:"debug_max_width"`    // Default: 1024
}

// DefaultTuningConfig returns the standard values for Tone 1.0.
func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		MinBackgroundFraction: 0.10,
		MaxBackgroundVariance: 30.0,
		GainFloor:             0.5,
		GainCeil:              2.0,
		SkinLocusSlope:        -1.73,
		SkinLocusIntercept:    1.06,
		SkinLocusStrength:     2.0,
		MinSkinPixels:         100,
		MinSkinLuma:           40,
		MaxSkinLuma:           235,
		MinMeanIntensity:      30,
		MaxMeanIntensity:      225,
		LightnessThreshold:    155,
		WarmthThreshold:       132,
		FaceScaleFactor:       1.1,
		FaceDetectShift:       0.1,
		FaceDetectConfidence:  10.0,
		FaceDetectMinSizePct:  5,
		FaceIoUThreshold:      0.2,
		SubjectCropFraction:   0.65,
		SubjectMargin:         0.08,
		DebugJPEGQuality:      85,
		DebugMaxWidth:         1024,
	}
}
