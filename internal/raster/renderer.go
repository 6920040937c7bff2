package raster

import (
	"image"
	"image/color"

	"camview/internal/camera"
	"camview/internal/mathutil"
	"camview/internal/mesh"
	"camview/internal/postprocess"
	"camview/internal/viewport"
)

// minDepth rejects vertices at or behind the eye.
const minDepth = 1e-9

// Options controls a software render.
type Options struct {
	Supersample int
	Color       color.NRGBA
	Background  color.NRGBA
	Light       LightConfig
}

// DefaultOptions renders a light grey model on a transparent background,
// 2× supersampled.
func DefaultOptions() Options {
	return Options{
		Supersample: 2,
		Color:       color.NRGBA{R: 160, G: 160, B: 170, A: 255},
		Light:       DefaultLightConfig(),
	}
}

// Render draws m through the camera resolved from p and returns an image
// of size vp together with that camera.
func Render(m *mesh.Mesh, p camera.Params, vp viewport.Size, opt Options) (*image.NRGBA, camera.Camera) {
	ss := max(opt.Supersample, 1)
	cam := camera.Resolve(p, vp)
	if vp.IsZero() {
		return image.NewNRGBA(image.Rect(0, 0, max(vp.Width, 0), max(vp.Height, 0))), cam
	}

	rs := vp.Scaled(ss)
	// Aspect only depends on the ratio, so the supersampled camera matches cam.
	xf := camera.Resolve(p, rs).PixelTransform(rs)

	fb := NewFrameBuffer(rs.Width, rs.Height)
	fb.Clear(opt.Background)

	px, py, pz, ok := ProjectVertices(m.Verts, xf)
	lc := opt.Light
	for _, tri := range m.Tris {
		if !ok[tri[0]] || !ok[tri[1]] || !ok[tri[2]] {
			continue
		}
		n := cam.ModelView.MulDir(m.FaceNormal(tri)).Normalize()
		if n.IsZero() {
			continue
		}
		r, g, b := lc.ShadeColor(opt.Color.R, opt.Color.G, opt.Color.B, lc.ComputeShade(n))
		RasterizeTriangle(fb, px, py, pz, tri, r, g, b, opt.Color.A)
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, vp.Width, vp.Height)
	}
	return img, cam
}

// ProjectVertices maps object-space vertices through a pixel transform and
// performs the perspective divide. ok[i] is false for vertices at or
// behind the eye.
func ProjectVertices(verts []mathutil.Vec3, xf mathutil.Mat4) (px, py, pz []float64, ok []bool) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	ok = make([]bool, n)
	for i, v := range verts {
		p, w, valid := xf.Project(v)
		if !valid || w < minDepth {
			continue
		}
		px[i], py[i], pz[i] = p[0], p[1], p[2]
		ok[i] = true
	}
	return px, py, pz, ok
}
