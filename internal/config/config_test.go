package config

import (
	"os"
	"path/filepath"
	"testing"

	"camview/internal/camera"
	"camview/internal/mathutil"
	"camview/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonConfig = `{
  "mesh": "pyramid",
  "width": 320,
  "height": 200,
  "views": [
    {"name": "top", "pose": [90, 0, 0], "pan": [0.1, 0], "log_rel_scale": 0.5, "fov_max_deg": 0}
  ]
}`

const tomlConfig = `
mesh = "pyramid"
width = 320
height = 200

[[views]]
name = "top"
pose = [90.0, 0.0, 0.0]
pan = [0.1, 0.0]
log_rel_scale = 0.5
fov_max_deg = 0.0
`

const yamlConfig = `
mesh: pyramid
width: 320
height: 200
views:
  - name: top
    pose: [90, 0, 0]
    pan: [0.1, 0]
    log_rel_scale: 0.5
    fov_max_deg: 0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"job.json": jsonConfig,
		"job.toml": tomlConfig,
		"job.yaml": yamlConfig,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "pyramid", cfg.Mesh)
			assert.Equal(t, viewport.Size{Width: 320, Height: 200}, cfg.Viewport())
			require.Len(t, cfg.Views, 1)
			v := cfg.Views[0]
			assert.Equal(t, "top", v.Name)
			assert.Equal(t, [3]float64{90, 0, 0}, v.Pose)
			assert.Equal(t, [2]float64{0.1, 0}, v.Pan)
			assert.Equal(t, 0.5, v.LogRelScale)
			require.NotNil(t, v.FovMaxDeg)
			assert.Equal(t, 0.0, *v.FovMaxDeg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "job.ini", "mesh=cube"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "job.json", "{"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaultsAndFlags(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, "cube", cfg.Mesh)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, viewport.Square(256), cfg.Viewport())
	assert.Equal(t, 2, cfg.Supersample)
	assert.Greater(t, cfg.Workers, 0)
	assert.Len(t, cfg.AllViews(), 1)

	cfg = Config{Mesh: "cube", Width: 100, Format: "png"}
	cfg.Resolve(Flags{Mesh: "octahedron", Width: 64, Orbit: 4, Workers: 3})
	assert.Equal(t, "octahedron", cfg.Mesh)
	assert.Equal(t, viewport.Square(64), cfg.Viewport())
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Empty(t, cfg.Views)
}

func TestAllViewsOrbit(t *testing.T) {
	cfg := Config{Views: []View{{}}, Orbit: 4}
	views := cfg.AllViews()
	require.Len(t, views, 5)
	assert.Equal(t, "view00", views[0].Name)
	assert.Equal(t, "orbit000", views[1].Name)
	assert.Equal(t, "orbit003", views[4].Name)
	assert.Equal(t, 90.0, views[2].Pose[1])
	assert.Equal(t, 270.0, views[4].Pose[1])
}

func TestAllViewsNamesUnique(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"dense orbit", Config{Views: []View{{Name: "front"}}, Orbit: 720}},
		{"orbit over 360", Config{Orbit: 400}},
		{"user name clashes with orbit", Config{Views: []View{{Name: "orbit000"}, {Name: "orbit000"}, {Name: "orbit000_2"}}, Orbit: 3}},
		{"explicit name clashes with numbered", Config{Views: []View{{Name: "view01"}, {}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := tt.cfg.AllViews()
			require.Len(t, views, len(tt.cfg.Views)+tt.cfg.Orbit)
			seen := make(map[string]bool, len(views))
			for _, v := range views {
				assert.False(t, seen[v.Name], "duplicate view name %q", v.Name)
				seen[v.Name] = true
			}
		})
	}

	cfg := Config{Views: []View{{Name: "orbit000"}}, Orbit: 2}
	views := cfg.AllViews()
	assert.Equal(t, []string{"orbit000", "orbit000_2", "orbit001"}, []string{views[0].Name, views[1].Name, views[2].Name})
}

func TestViewParams(t *testing.T) {
	b := mathutil.Bounds3{Max: mathutil.Vec3{1, 2, 3}}
	fov := 5.0
	p := View{Pose: [3]float64{0, 90, 0}, Pan: [2]float64{1, -1}, LogRelScale: 2, FovMaxDeg: &fov}.Params(b)
	assert.Equal(t, b, p.ModelBounds)
	assert.Equal(t, mathutil.Vec2{1, -1}, p.RelTrans)
	assert.Equal(t, 2.0, p.LogRelScale)
	assert.Equal(t, 5.0, p.FovMaxDeg)
	assert.True(t, p.Pose.R.ApproxEqual(mathutil.RotY(mathutil.Deg2Rad(90)), 1e-12))

	assert.Equal(t, camera.DefaultFovMaxDeg, View{}.Params(b).FovMaxDeg)
}

func TestContentBounds(t *testing.T) {
	fallback := mathutil.Bounds3{Max: mathutil.Vec3{1, 1, 1}}
	cfg := Config{}
	assert.Equal(t, fallback, cfg.ContentBounds(fallback))
	cfg.Bounds = &[6]float64{-1, -2, -3, 4, 5, 6}
	assert.Equal(t, mathutil.Vec3{-1, -2, -3}, cfg.ContentBounds(fallback).Min)
	assert.Equal(t, mathutil.Vec3{4, 5, 6}, cfg.ContentBounds(fallback).Max)
}
