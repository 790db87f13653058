package api

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/analysis"
	"github.com/dixieflatline76/Tone/pkg/palette"
	"github.com/dixieflatline76/Tone/pkg/season"
	"github.com/dixieflatline76/Tone/util/log"
)

// LabValues mirrors a CIELAB triple in the response payload.
type LabValues struct {
	L float64 `json:"L"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ThresholdValues are the classification constants echoed back so the
// client can contextualize the distances.
type ThresholdValues struct {
	Lightness float64 `json:"lightness"`
	Warmth    float64 `json:"warmth"`
}

// SeasonAnalysis is the classification detail block of a response.
type SeasonAnalysis struct {
	TemperatureCategory string          `json:"temperature_category"`
	LightnessCategory   string          `json:"lightness_category"`
	LabValues           LabValues       `json:"lab_values"`
	Thresholds          ThresholdValues `json:"thresholds"`
	LightnessDistance   float64         `json:"lightness_distance"`
	WarmthDistance      float64         `json:"warmth_distance"`
}

// ColorCategories groups the palette's categorized color lists.
type ColorCategories struct {
	Neutrals []palette.ColorItem `json:"neutrals"`
	Accents  []palette.ColorItem `json:"accents"`
	Avoid    []palette.ColorItem `json:"avoid"`
}

// AnalysisResponse is the full payload for one successful analysis.
type AnalysisResponse struct {
	RequestID            string                `json:"request_id"`
	Season               string                `json:"season"`
	FullSeasonName       string                `json:"full_season_name"`
	Confidence           float64               `json:"confidence"`
	SeasonProbabilities  map[string]float64    `json:"season_probabilities"`
	SkinToneRGB          [3]int                `json:"skin_tone_rgb"`
	WhiteBalanceMethod   string                `json:"white_balance_method"`
	WhiteBalanceMetadata map[string]float64    `json:"white_balance_metadata"`
	Analysis             SeasonAnalysis        `json:"analysis"`
	ColorCategories      ColorCategories       `json:"color_categories"`
	DoDontPairs          []palette.Pair        `json:"do_dont_pairs"`
	ColorGradients       []palette.Gradient    `json:"color_gradients"`
	Description          palette.Description   `json:"description"`
	DebugData            *analysis.Diagnostics `json:"debug_data,omitempty"`
}

// ErrorResponse is the structured error payload.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": config.AppVersion,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSeasons returns the swatch list for every season.
func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"seasons": s.palettes.Swatches(),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleAnalyze accepts a multipart image upload and runs the full
// analysis pipeline over it. Query parameters: white_balance (default
// true) and debug (default false).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		writeError(w, requestID, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}
	if !s.limiter.Allow() {
		writeError(w, requestID, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again shortly.")
		return
	}

	opts := analysis.Options{
		ApplyWhiteBalance: r.URL.Query().Get("white_balance") != "false",
		Debug:             r.URL.Query().Get("debug") == "true",
	}

	img, err := s.decodeUpload(w, r)
	if err != nil {
		log.Printf("[%s] upload rejected: %v", requestID, err)
		writeError(w, requestID, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}

	report, err := s.pipeline.Analyze(r.Context(), img, opts)
	if err != nil {
		if aerr, ok := analysis.AsError(err); ok {
			log.Printf("[%s] analysis rejected: %s", requestID, aerr.Code)
			writeError(w, requestID, http.StatusBadRequest, aerr.Code.String(), aerr.Reason)
			return
		}
		log.Printf("[%s] analysis failed: %v", requestID, err)
		writeError(w, requestID, http.StatusInternalServerError, "internal_error", "Analysis failed. Please try again.")
		return
	}

	resp := buildAnalysisResponse(requestID, report)
	s.analyses.Increment()
	s.BroadcastAnalysis(resp)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[%s] response encoding failed: %v", requestID, err)
	}
}

// decodeUpload extracts and decodes the multipart image, downscaling
// oversized uploads before analysis.
func (s *Server) decodeUpload(w http.ResponseWriter, r *http.Request) (image.Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, fmt.Errorf("upload too large or malformed: maximum size is %.1fMB", float64(s.cfg.MaxUploadBytes)/1024/1024)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unsupported or corrupt image: %w", err)
	}
	log.Debugf("decoded %s upload %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	if img.Bounds().Dx() > s.cfg.ProcessMaxWidth {
		img = imaging.Resize(img, s.cfg.ProcessMaxWidth, 0, imaging.Lanczos)
	}
	return img, nil
}

func buildAnalysisResponse(requestID string, report *analysis.Report) *AnalysisResponse {
	cls := report.Classification

	probabilities := make(map[string]float64, len(season.All))
	for _, s := range season.All {
		probabilities[s.String()] = cls.Probabilities[s]
	}

	metadata := map[string]float64{}
	switch report.WhiteBalance.Method {
	case analysis.MethodBackground:
		meta := report.WhiteBalance.Background
		metadata["background_percentage"] = meta.Percentage
		metadata["background_variance"] = meta.Variance
	case analysis.MethodSkinLocus:
		meta := report.WhiteBalance.SkinLocus
		metadata["g_offset"] = meta.GOffset
		metadata["correction_factor"] = meta.CorrectionFactor
	}

	return &AnalysisResponse{
		RequestID:            requestID,
		Season:               cls.Season.String(),
		FullSeasonName:       cls.Season.FullName(),
		Confidence:           cls.Confidence,
		SeasonProbabilities:  probabilities,
		SkinToneRGB:          report.WhiteBalance.Corrected.Ints(),
		WhiteBalanceMethod:   report.WhiteBalance.Method.String(),
		WhiteBalanceMetadata: metadata,
		Analysis: SeasonAnalysis{
			TemperatureCategory: cls.Temperature.String(),
			LightnessCategory:   cls.Depth.String(),
			LabValues:           LabValues{L: report.Lab.L, A: report.Lab.A, B: report.Lab.B},
			Thresholds: ThresholdValues{
				Lightness: report.Thresholds.Lightness,
				Warmth:    report.Thresholds.Warmth,
			},
			LightnessDistance: cls.LightnessDistance,
			WarmthDistance:    cls.WarmthDistance,
		},
		ColorCategories: ColorCategories{
			Neutrals: report.Palette.Neutrals,
			Accents:  report.Palette.Accents,
			Avoid:    report.Palette.Avoid,
		},
		DoDontPairs:    report.Palette.Pairs,
		ColorGradients: report.Palette.Gradients,
		Description:    report.Palette.Description,
		DebugData:      report.Diagnostics,
	}
}

func writeError(w http.ResponseWriter, requestID string, status int, code, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Error:     reason,
	})
}
