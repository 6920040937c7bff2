package batch

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"camview/internal/config"
	"camview/internal/imageio"
	"camview/internal/mathutil"
	"camview/internal/mesh"
	"camview/internal/raster"
	"camview/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	m := mesh.Octahedron()
	opt := raster.DefaultOptions()
	opt.Supersample = 1
	return Config{
		Mesh:      m,
		Bounds:    m.Bounds(),
		OutputDir: t.TempDir(),
		Format:    imageio.PNG,
		Viewport:  viewport.Size{Width: 40, Height: 30},
		Options:   opt,
		Workers:   3,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunRendersAllViews(t *testing.T) {
	cfg := testConfig(t)
	jc := config.Config{Orbit: 6}
	views := jc.AllViews()

	results := Run(cfg, views)
	require.Len(t, results, 6)
	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, views[i].Name, r.Name)
		img, err := imageio.Load(filepath.Join(cfg.OutputDir, r.Image))
		require.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Greater(t, r.Camera.Frustum.Near, 0.0)
	}
}

func TestRunReportsFailures(t *testing.T) {
	cfg := testConfig(t)
	// A file where the output directory should be makes every save fail.
	blocker := filepath.Join(cfg.OutputDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.OutputDir = blocker

	results := Run(cfg, []config.View{{Name: "a"}, {Name: "b"}})
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
	assert.Empty(t, NewManifest(cfg, results).Views)
}

func TestWriteManifest(t *testing.T) {
	cfg := testConfig(t)
	results := Run(cfg, []config.View{{Name: "front"}})
	m := NewManifest(cfg, results)
	path := filepath.Join(cfg.OutputDir, "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Views, 1)
	assert.Equal(t, "front.png", got.Views[0].Image)
	assert.Equal(t, results[0].Camera.Frustum.Tuple(), got.Views[0].Frustum)
	assert.Equal(t, 40, got.Width)

	// Exported matrices survive the JSON round trip; the eye maps to the origin.
	v := got.Views[0]
	c := results[0].Camera
	pt := mathutil.Mat4(v.PixelTransform)
	assert.Equal(t, c.PixelTransform(cfg.Viewport), pt)
	origin := c.ModelView.MulPoint(v.Eye)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, origin[:], 1e-9)
	assert.Equal(t, float32(c.ModelView[11]), v.ModelView[14])
	proj := c.ProjectionGL()
	for i, x := range v.ProjectionGL {
		assert.InDelta(t, proj[(i%4)*4+i/4], float64(x), 1e-5, "projection_gl[%d]", i)
	}
}
