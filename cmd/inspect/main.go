package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"camview/internal/camera"
	"camview/internal/config"
	"camview/internal/mathutil"
	"camview/internal/mesh"
	"camview/internal/viewport"
)

func main() {
	shape := flag.String("mesh", "cube", "Built-in shape framed by the camera")
	width := flag.Int("width", 640, "Viewport width in pixels")
	height := flag.Int("height", 480, "Viewport height in pixels")
	rx := flag.Float64("rx", 0, "Pose rotation about X, degrees")
	ry := flag.Float64("ry", 0, "Pose rotation about Y, degrees")
	rz := flag.Float64("rz", 0, "Pose rotation about Z, degrees")
	panX := flag.Float64("panx", 0, "Pan X in content half-sizes")
	panY := flag.Float64("pany", 0, "Pan Y in content half-sizes")
	zoom := flag.Float64("zoom", 0, "Log relative scale")
	fov := flag.Float64("fov", camera.DefaultFovMaxDeg, "Maximum field of view, degrees")
	flag.Parse()

	m, err := mesh.Builtin(*shape)
	if err != nil {
		slog.Error("loading mesh", "err", err)
		os.Exit(1)
	}

	v := config.View{
		Pose:        [3]float64{*rx, *ry, *rz},
		Pan:         [2]float64{*panX, *panY},
		LogRelScale: *zoom,
		FovMaxDeg:   fov,
	}
	b := m.Bounds()
	vp := viewport.Size{Width: *width, Height: *height}
	c := camera.Resolve(v.Params(b), vp)

	fmt.Printf("Mesh: %s, verts=%d, tris=%d\n", m.Name, len(m.Verts), len(m.Tris))
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
		b.Min[0], b.Max[0], b.Min[1], b.Max[1], b.Min[2], b.Max[2])
	fmt.Printf("Viewport: %dx%d  aspect=(%.4f, %.4f)\n", vp.Width, vp.Height, c.Aspect[0], c.Aspect[1])
	fmt.Printf("halfDim=%.6f  halfFovTan=%.6f\n", c.HalfDim, c.HalfFovTan)
	fmt.Printf("fillDistance=%.6f  centerDistance=%.6f\n", c.FillDistance, c.CenterDistance)
	f := c.Frustum
	fmt.Printf("Frustum: l=%.6f r=%.6f b=%.6f t=%.6f n=%.6f f=%.6f\n", f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far)
	eye := c.EyePosition()
	fmt.Printf("Eye (object space): (%.6f, %.6f, %.6f)\n", eye[0], eye[1], eye[2])
	printMat("ModelView", c.ModelView)
	printMat("ProjectionGL", c.ProjectionGL())
	fmt.Printf("ProjectionGL column-major: %v\n", c.ProjectionGL().ColumnMajor())
	printMat("PixelTransform", c.PixelTransform(vp))

	ctr, w, ok := c.PixelTransform(vp).Project(b.Center())
	if ok {
		fmt.Printf("Centroid -> pixel (%.3f, %.3f), depth %.6f\n", ctr[0], ctr[1], w)
	}
	for _, corner := range boxCorners(b) {
		p, w, ok := c.PixelTransform(vp).Project(corner)
		if !ok {
			fmt.Printf("  corner %v: at eye plane\n", corner)
			continue
		}
		fmt.Printf("  corner %v -> (%.2f, %.2f) depth %.4f\n", corner, p[0], p[1], w)
	}
}

func printMat(name string, m mathutil.Mat4) {
	fmt.Printf("%s:\n", name)
	for r := 0; r < 4; r++ {
		fmt.Printf("  [% .6f % .6f % .6f % .6f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
}

func boxCorners(b mathutil.Bounds3) []mathutil.Vec3 {
	var out []mathutil.Vec3
	for i := 0; i < 8; i++ {
		c := b.Min
		for k := 0; k < 3; k++ {
			if i&(1<<k) != 0 {
				c[k] = b.Max[k]
			}
		}
		out = append(out, c)
	}
	return out
}
