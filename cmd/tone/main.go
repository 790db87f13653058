package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dixieflatline76/Tone/config"
	"github.com/dixieflatline76/Tone/pkg/analysis"
	"github.com/dixieflatline76/Tone/pkg/api"
	"github.com/dixieflatline76/Tone/pkg/palette"
	"github.com/dixieflatline76/Tone/pkg/vision"
	"github.com/dixieflatline76/Tone/util/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	model := flag.String("model", "", "path to the face cascade model file (overrides config)")
	cfgPath := flag.String("config", "", "path to the config file (defaults to the user config dir)")
	flag.Parse()

	if *cfgPath != "" {
		config.SetFilename(*cfgPath)
	}
	cfg := config.GetConfig()
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *model != "" {
		cfg.FaceModelPath = *model
	}
	if cfg.FaceModelPath == "" {
		log.Fatalln("No face cascade model configured. Set face_model_path in the config file or pass -model.")
	}

	modelData, err := os.ReadFile(cfg.FaceModelPath)
	if err != nil {
		log.Fatalf("Failed to read face cascade model: %v", err)
	}

	detector, err := vision.NewPigoDetector(modelData, &cfg.Tuning)
	if err != nil {
		log.Fatalf("Failed to initialize face detector: %v", err)
	}
	segmenter := vision.NewSaliencySegmenter(&cfg.Tuning)

	palettes, err := palette.NewProvider()
	if err != nil {
		log.Fatalf("Palette data invalid: %v", err)
	}

	pipeline := analysis.NewPipeline(detector, segmenter, palettes, &cfg.Tuning)
	server := api.NewServer(cfg, pipeline, palettes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("%s %s listening on %s", config.AppName, config.AppVersion, cfg.ListenAddr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
