// Package api exposes the analysis pipeline over a local REST and
// WebSocket boundary.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/analysis"
	"github.com/dixieflatline76/Tone/pkg/palette"
	"github.com/dixieflatline76/Tone/util"
	"github.com/dixieflatline76/Tone/util/log"
)

// Server represents the REST/WebSocket server.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	upgrader   websocket.Upgrader

	// WebSocket management
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex

	pipeline *analysis.Pipeline
	palettes *palette.Provider
	cfg      *config.Config

	// Analyze is the only expensive endpoint, so it gets its own limiter.
	limiter *rate.Limiter

	analyses *util.SafeCounter
	ready    *util.SafeFlag
}

// NewServer creates a new API server around the given pipeline.
func NewServer(cfg *config.Config, pipeline *analysis.Pipeline, palettes *palette.Provider) *Server {
	s := &Server{
		mux: http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:  make(map[*websocket.Conn]bool),
		pipeline: pipeline,
		palettes: palettes,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		analyses: util.NewSafeInt(),
		ready:    util.NewSafeBool(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.enableCORS(s.handleHealth))
	s.mux.HandleFunc("/seasons", s.enableCORS(s.handleSeasons))
	s.mux.HandleFunc("/analyze", s.enableCORS(s.handleAnalyze))
	s.mux.HandleFunc("/ws", s.handleWebSocket)
}

// enableCORS adds CORS headers to the handler.
func (s *Server) enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Ready reports whether Start has been called.
func (s *Server) Ready() bool {
	return s.ready.Value()
}

// AnalysisCount returns the number of completed analyses since start.
func (s *Server) AnalysisCount() int {
	return s.analyses.Value()
}

// Start starts the server. This call blocks until the server stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.mux,
	}
	s.ready.Set(true)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.ready.Set(false)
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// BroadcastAnalysis pushes a completed analysis summary to all
// connected WebSocket clients.
func (s *Server) BroadcastAnalysis(resp *AnalysisResponse) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	msg := map[string]interface{}{
		"type":       "analysis_complete",
		"request_id": resp.RequestID,
		"season":     resp.Season,
		"confidence": resp.Confidence,
	}

	for client := range s.clients {
		if err := client.WriteJSON(msg); err != nil {
			log.Printf("Failed to broadcast to client: %v", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}

// handleWebSocket upgrades the connection to WebSocket.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.clientsMu.Lock()
	s.clients[conn] = true
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	for {
		// Read message (keepalive); clients only listen.
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
