// Package main is the entry point for the cubepano converter.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	// Extra face image formats beyond the standard JPEG/PNG decoders.
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/Faultbox/cubepano/internal/config"
	"github.com/Faultbox/cubepano/internal/logger"
	"github.com/Faultbox/cubepano/internal/progress"
	"github.com/Faultbox/cubepano/internal/sink"
	"github.com/Faultbox/cubepano/internal/source"
	"github.com/Faultbox/cubepano/pkg/cubemap"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubepano ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	set, err := source.Load(cfg.Input.Dir, faceNames(cfg))
	if err != nil {
		logger.Error("failed to load cube map", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("cube map loaded",
		zap.Int("side", set.Side()),
		zap.String("dir", cfg.Input.Dir))

	printer := progress.NewPrinter(os.Stdout)
	start := time.Now()

	img, err := cubemap.Convert(set,
		cubemap.WithWorkers(cfg.Convert.Workers),
		cubemap.WithProgress(printer.Report))
	printer.Done()
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("conversion finished",
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Duration("elapsed", time.Since(start)))

	if err := sink.Save(img, cfg.Output.Path, cfg.Output.JPEGQuality); err != nil {
		logger.Error("failed to save panorama", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("panorama saved", zap.String("path", cfg.Output.Path))
}

// faceNames maps the config file naming onto the source loader.
func faceNames(cfg *config.Config) source.FaceNames {
	return source.FaceNames{
		Left:   cfg.Input.Faces.Left,
		Front:  cfg.Input.Faces.Front,
		Right:  cfg.Input.Faces.Right,
		Back:   cfg.Input.Faces.Back,
		Bottom: cfg.Input.Faces.Bottom,
		Top:    cfg.Input.Faces.Top,
	}
}
