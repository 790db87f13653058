package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/analysis"
	"github.com/dixieflatline76/Tone/pkg/palette"
	"github.com/dixieflatline76/Tone/pkg/vision"
)

// stubDetector returns a fixed face set without running inference.
type stubDetector struct {
	faces []vision.Face
}

func (d *stubDetector) DetectFaces(ctx context.Context, img image.Image) ([]vision.Face, error) {
	return d.faces, nil
}

// stubSegmenter marks a fixed window as the subject.
type stubSegmenter struct {
	subject image.Rectangle
}

func (s *stubSegmenter) SegmentPerson(ctx context.Context, img image.Image) (*vision.Mask, error) {
	mask := vision.NewMask(img.Bounds())
	mask.SetForeground(s.subject)
	return mask, nil
}

func testConfig() *config.Config {
	return &config.Config{
		ListenAddr:         "127.0.0.1:0",
		MaxUploadBytes:     10 << 20,
		ProcessMaxWidth:    1280,
		RateLimitPerSecond: 100,
		RateLimitBurst:     100,
		Tuning:             config.DefaultTuningConfig(),
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	palettes, err := palette.NewProvider()
	require.NoError(t, err)

	detector := &stubDetector{faces: []vision.Face{{
		Bounds:  image.Rect(50, 50, 150, 150),
		Quality: 40,
		Regions: vision.RegionsForBounds(image.Rect(50, 50, 150, 150)),
	}}}
	segmenter := &stubSegmenter{subject: image.Rect(40, 40, 160, 160)}

	pipeline := analysis.NewPipeline(detector, segmenter, palettes, &cfg.Tuning)
	return NewServer(cfg, pipeline, palettes)
}

func uploadBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 180, G: 140, B: 120, A: 255}}, image.Point{}, draw.Src)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(part, img, &jpeg.Options{Quality: 90}))
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, config.AppVersion, resp["version"])
}

func TestHandleSeasons(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/seasons", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Seasons map[string][]string `json:"seasons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Seasons, 4)
	assert.Len(t, resp.Seasons["Winter"], 8)
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := newTestServer(t, testConfig())

	body, contentType := uploadBody(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Contains(t, []string{"Winter", "Summer", "Autumn", "Spring"}, resp.Season)
	assert.Contains(t, resp.FullSeasonName, resp.Season)

	var sum float64
	for _, p := range resp.SeasonProbabilities {
		sum += p
	}
	assert.InDelta(t, 100.0, sum, 0.01)

	assert.Contains(t, []string{"background", "skin_locus", "none"}, resp.WhiteBalanceMethod)
	for _, c := range resp.SkinToneRGB {
		assert.GreaterOrEqual(t, c, 0)
		assert.LessOrEqual(t, c, 255)
	}
	assert.NotEmpty(t, resp.ColorCategories.Neutrals)
	assert.Len(t, resp.DoDontPairs, 6)
	assert.Len(t, resp.ColorGradients, 5)
	assert.Nil(t, resp.DebugData)
	assert.Equal(t, 1, s.AnalysisCount())
}

func TestHandleAnalyze_DebugRequested(t *testing.T) {
	s := newTestServer(t, testConfig())

	body, contentType := uploadBody(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze?debug=true", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.DebugData)
	assert.NotEmpty(t, resp.DebugData.Images)
	assert.True(t, strings.HasPrefix(resp.DebugData.Images[0].ImageBase64, "data:image/jpeg;base64,"))
}

func TestHandleAnalyze_WhiteBalanceDisabled(t *testing.T) {
	s := newTestServer(t, testConfig())

	body, contentType := uploadBody(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze?white_balance=false", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "none", resp.WhiteBalanceMethod)
	assert.Empty(t, resp.WhiteBalanceMetadata)
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	s := newTestServer(t, testConfig())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no image here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_upload", resp.Code)
}

func TestHandleAnalyze_NoFaceMapsToBadRequest(t *testing.T) {
	cfg := testConfig()
	palettes, err := palette.NewProvider()
	require.NoError(t, err)
	pipeline := analysis.NewPipeline(
		&stubDetector{},
		&stubSegmenter{subject: image.Rect(40, 40, 160, 160)},
		palettes, &cfg.Tuning,
	)
	s := NewServer(cfg, pipeline, palettes)

	body, contentType := uploadBody(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no_face_detected", resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleAnalyze_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerSecond = 0.001
	cfg.RateLimitBurst = 1
	s := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		body, contentType := uploadBody(t)
		req := httptest.NewRequest(http.MethodPost, "/analyze", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if i == 0 {
			assert.Equal(t, http.StatusOK, rec.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebSocketBroadcast(t *testing.T) {
	s := newTestServer(t, testConfig())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the server a beat to register the client, then broadcast.
	require.Eventually(t, func() bool {
		s.clientsMu.Lock()
		defer s.clientsMu.Unlock()
		return len(s.clients) == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.BroadcastAnalysis(&AnalysisResponse{Season: "Autumn", Confidence: 72.5})

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "analysis_complete", msg["type"])
	assert.Equal(t, "Autumn", msg["season"])
}
