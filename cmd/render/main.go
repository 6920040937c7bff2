package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"camview/internal/batch"
	"camview/internal/config"
	"camview/internal/imageio"
	"camview/internal/mesh"
	"camview/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json, .toml or .yaml job file")
	shape := flag.String("mesh", "", "Built-in shape: "+strings.Join(mesh.BuiltinNames(), ", ")+", tentN (default: cube)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")
	width := flag.Int("width", 0, "Output width in pixels (default: 256)")
	height := flag.Int("height", 0, "Output height in pixels (default: width)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	orbit := flag.Int("orbit", 0, "Add N evenly spaced orbit views")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:        *shape,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
		Orbit:       *orbit,
	})

	m, err := mesh.Builtin(cfg.Mesh)
	if err != nil {
		log.Error("loading mesh", "err", err)
		os.Exit(1)
	}
	imgFormat, err := imageio.ParseFormat(cfg.Format)
	if err != nil {
		log.Error("output format", "err", err)
		os.Exit(1)
	}

	views := cfg.AllViews()
	log.Info("rendering",
		"mesh", m.Name, "verts", len(m.Verts), "tris", len(m.Tris),
		"views", len(views), "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"workers", cfg.Workers, "output", cfg.OutputDir)

	opt := raster.DefaultOptions()
	opt.Supersample = cfg.Supersample
	batchCfg := batch.Config{
		Mesh:      m,
		Bounds:    cfg.ContentBounds(m.Bounds()),
		OutputDir: cfg.OutputDir,
		Format:    imgFormat,
		Viewport:  cfg.Viewport(),
		Options:   opt,
		Workers:   cfg.Workers,
		Logger:    log,
	}
	log.Debug("content bounds", "min", batchCfg.Bounds.Min, "max", batchCfg.Bounds.Max)

	results := batch.Run(batchCfg, views)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info("rendered", "ok", len(results)-failed, "total", len(results))

	// Write manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Error("creating output dir", "err", err)
		os.Exit(1)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, results)); err != nil {
		log.Warn("manifest write failed", "err", err)
	} else {
		log.Info("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
