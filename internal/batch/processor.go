package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"camview/internal/camera"
	"camview/internal/config"
	"camview/internal/imageio"
	"camview/internal/mathutil"
	"camview/internal/mesh"
	"camview/internal/raster"
	"camview/internal/viewport"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Mesh      *mesh.Mesh
	Bounds    mathutil.Bounds3
	OutputDir string
	Format    imageio.Format
	Viewport  viewport.Size
	Options   raster.Options
	Workers   int
	Logger    *slog.Logger
}

// Result holds the outcome of rendering one view.
type Result struct {
	Name    string
	Image   string // path relative to OutputDir
	Camera  camera.Camera
	Success bool
	Error   string
}

// Run renders every view using a worker pool. Results are in view order.
func Run(cfg Config, views []config.View) []Result {
	total := len(views)
	results := make([]Result, total)
	var processed atomic.Int64
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	workers := max(cfg.Workers, 1)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "rate", fmt.Sprintf("%.1f/s", rate))
				}
			}
		}
	}()

	viewChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range viewChan {
				results[idx] = processView(cfg, views[idx])
				if !results[idx].Success {
					log.Warn("view failed", "view", results[idx].Name, "err", results[idx].Error)
				}
				processed.Add(1)
			}
		}()
	}

	for i := range views {
		viewChan <- i
	}
	close(viewChan)

	wg.Wait()
	close(done)

	log.Info("batch finished", "views", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

func processView(cfg Config, v config.View) Result {
	p := v.Params(cfg.Bounds)
	img, cam := raster.Render(cfg.Mesh, p, cfg.Viewport, cfg.Options)

	rel := v.Name + cfg.Format.Ext()
	res := Result{Name: v.Name, Image: rel, Camera: cam}
	if err := imageio.Save(filepath.Join(cfg.OutputDir, rel), img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
