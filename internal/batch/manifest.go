package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"camview/internal/mathutil"

	"golang.org/x/image/math/f64"
)

// ManifestEntry represents one rendered view in the output manifest.
type ManifestEntry struct {
	Name    string        `json:"name"`
	Image   string        `json:"image"`
	Frustum [6]float64    `json:"frustum"`
	Eye     mathutil.Vec3 `json:"eye"`
	// PixelTransform is row-major; apply to column vectors and divide by W.
	PixelTransform f64.Mat4 `json:"pixel_transform"`
	// ModelView and ProjectionGL are column-major float32, ready for a GPU uniform.
	ModelView    [16]float32 `json:"model_view"`
	ProjectionGL [16]float32 `json:"projection_gl"`
}

// Manifest lists successful renders for a viewport.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Views  []ManifestEntry `json:"views"`
}

// NewManifest collects the successful results.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Views = append(m.Views, ManifestEntry{
			Name:           r.Name,
			Image:          r.Image,
			Frustum:        r.Camera.Frustum.Tuple(),
			Eye:            r.Camera.EyePosition(),
			PixelTransform: r.Camera.PixelTransform(cfg.Viewport).F64(),
			ModelView:      r.Camera.ModelView.ColumnMajor(),
			ProjectionGL:   r.Camera.ProjectionGL().ColumnMajor(),
		})
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
