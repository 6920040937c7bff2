package raster

import "math"

// RasterizeTriangle fills one flat-colored triangle in pixel space with a
// z-buffer test. pz holds inverse eye depth, so larger is closer, and it
// interpolates linearly across the screen.
//
// This is the HOT PATH: no allocation inside the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, px, py, pz []float64, vi [3]int, r, g, b, a uint8) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Bounding box over pixel centers
	minX := max(int(math.Floor(math.Min(math.Min(x0, x1), x2))), 0)
	maxX := min(int(math.Ceil(math.Max(math.Max(x0, x1), x2))), fb.Width-1)
	minY := max(int(math.Floor(math.Min(math.Min(y0, y1), y2))), 0)
	maxY := min(int(math.Ceil(math.Max(math.Max(y0, y1), y2))), fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = r
			fb.Color[pxIdx+1] = g
			fb.Color[pxIdx+2] = b
			fb.Color[pxIdx+3] = a
		}
	}
}
