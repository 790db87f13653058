package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTuningConfig(t *testing.T) {
	cfg := DefaultTuningConfig()

	assert.Equal(t, 0.10, cfg.MinBackgroundFraction, "MinBackgroundFraction should be 0.10")
	assert.Equal(t, 30.0, cfg.MaxBackgroundVariance, "MaxBackgroundVariance should be 30.0")
	assert.Equal(t, 0.5, cfg.GainFloor, "GainFloor should be 0.5")
	assert.Equal(t, 2.0, cfg.GainCeil, "GainCeil should be 2.0")
	assert.Equal(t, -1.73, cfg.SkinLocusSlope, "SkinLocusSlope should be -1.73")
	assert.Equal(t, 1.06, cfg.SkinLocusIntercept, "SkinLocusIntercept should be 1.06")
	assert.Equal(t, 2.0, cfg.SkinLocusStrength, "SkinLocusStrength should be 2.0")
	assert.Equal(t, 100, cfg.MinSkinPixels, "MinSkinPixels should be 100")
	assert.Equal(t, 155.0, cfg.LightnessThreshold, "LightnessThreshold should be 155")
	assert.Equal(t, 132.0, cfg.WarmthThreshold, "WarmthThreshold should be 132")
	assert.Equal(t, 10.0, cfg.FaceDetectConfidence, "FaceDetectConfidence should be 10.0")
	assert.Equal(t, 0.1, cfg.FaceDetectShift, "FaceDetectShift should be 0.1")
	assert.Equal(t, 1.1, cfg.FaceScaleFactor, "FaceScaleFactor should be 1.1")
	assert.Equal(t, 0.2, cfg.FaceIoUThreshold, "FaceIoUThreshold should be 0.2")
	assert.Equal(t, 85, cfg.DebugJPEGQuality, "DebugJPEGQuality should be 85")
}
