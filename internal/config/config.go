package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"camview/internal/camera"
	"camview/internal/mathutil"
	"camview/internal/viewport"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the content, output and render settings of a job.
type Config struct {
	// Content
	Mesh   string     `json:"mesh" toml:"mesh" yaml:"mesh"`
	Bounds *[6]float64 `json:"bounds,omitempty" toml:"bounds,omitempty" yaml:"bounds,omitempty"` // min xyz, max xyz; overrides the mesh bounds

	// Output
	OutputDir string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Format    string `json:"format" toml:"format" yaml:"format"`

	// Render settings
	Width       int `json:"width" toml:"width" yaml:"width"`
	Height      int `json:"height" toml:"height" yaml:"height"`
	Supersample int `json:"supersample" toml:"supersample" yaml:"supersample"`
	Workers     int `json:"workers" toml:"workers" yaml:"workers"`

	// Views
	Views []View `json:"views" toml:"views" yaml:"views"`
	Orbit int    `json:"orbit" toml:"orbit" yaml:"orbit"` // adds this many evenly spaced yaw views
}

// View is one camera parameter set. Bounds come from the job content.
type View struct {
	Name        string     `json:"name" toml:"name" yaml:"name"`
	Pose        [3]float64 `json:"pose" toml:"pose" yaml:"pose"` // Euler XYZ degrees
	Pan         [2]float64 `json:"pan" toml:"pan" yaml:"pan"`
	LogRelScale float64    `json:"log_rel_scale" toml:"log_rel_scale" yaml:"log_rel_scale"`
	FovMaxDeg   *float64   `json:"fov_max_deg,omitempty" toml:"fov_max_deg,omitempty" yaml:"fov_max_deg,omitempty"`
}

// Load reads a config file and returns Config. The format follows the
// extension: .json, .toml, .yaml or .yml.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh        string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Orbit       int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Orbit > 0 {
		c.Orbit = flags.Orbit
	}

	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Views) == 0 && c.Orbit <= 0 {
		c.Views = []View{{Name: "front"}}
	}
}

// Viewport returns the configured output size.
func (c *Config) Viewport() viewport.Size {
	return viewport.Size{Width: c.Width, Height: c.Height}
}

// ContentBounds returns the bounds override if set, else fallback.
func (c *Config) ContentBounds(fallback mathutil.Bounds3) mathutil.Bounds3 {
	if c.Bounds == nil {
		return fallback
	}
	b := *c.Bounds
	return mathutil.Bounds3{
		Min: mathutil.Vec3{b[0], b[1], b[2]},
		Max: mathutil.Vec3{b[3], b[4], b[5]},
	}
}

// AllViews returns the configured views followed by the orbit sweep.
// Views without a name are numbered, orbit views are named by their index,
// and repeated names get a numeric suffix so every view writes its own file.
func (c *Config) AllViews() []View {
	views := make([]View, 0, len(c.Views)+max(c.Orbit, 0))
	seen := make(map[string]bool, cap(views))
	for i, v := range c.Views {
		if v.Name == "" {
			v.Name = fmt.Sprintf("view%02d", i)
		}
		v.Name = uniqueName(seen, v.Name)
		views = append(views, v)
	}
	for i := 0; i < c.Orbit; i++ {
		yaw := mathutil.WrapDeg(360 * float64(i) / float64(c.Orbit))
		views = append(views, View{
			Name: uniqueName(seen, fmt.Sprintf("orbit%03d", i)),
			Pose: [3]float64{15, yaw, 0},
		})
	}
	return views
}

func uniqueName(seen map[string]bool, name string) string {
	n := name
	for i := 2; seen[n]; i++ {
		n = fmt.Sprintf("%s_%d", name, i)
	}
	seen[n] = true
	return n
}

// Params converts the view into camera parameters framing bounds.
func (v View) Params(bounds mathutil.Bounds3) camera.Params {
	p := camera.DefaultParams(bounds)
	p.Pose = camera.PoseFromEulerDeg(v.Pose[0], v.Pose[1], v.Pose[2])
	p.RelTrans = mathutil.Vec2{v.Pan[0], v.Pan[1]}
	p.LogRelScale = v.LogRelScale
	if v.FovMaxDeg != nil {
		p.FovMaxDeg = *v.FovMaxDeg
	}
	return p
}
