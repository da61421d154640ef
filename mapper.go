package julia

import (
	"github.com/go-gl/mathgl/mgl64"
)

// minZoom replaces non-positive zoom values; see RenderRequest.Zoom.
const minZoom = 1e-12

// viewSpan is the imaginary-axis extent of the view at zoom 1.
const viewSpan = 3.0

// mapper converts pixel coordinates to starting points on the complex
// plane. Pixels sample at their centers, the real span follows the
// aspect ratio, and rotation turns the sampling grid about the view
// center. The imaginary axis increases downward, matching screen Y.
type mapper struct {
	w, h         float64
	minX, minY   float64
	spanX, spanY float64
	cx, cy       float64
	rot          mgl64.Mat2
}

// newMapper expects a normalized request: zoom strictly positive and
// dimensions at least one pixel.
func newMapper(req RenderRequest) mapper {
	aspect := float64(req.Width) / float64(req.Height)
	xRange := viewSpan * aspect / req.Zoom
	yRange := viewSpan / req.Zoom
	minX := req.PanX - xRange/2
	maxX := req.PanX + xRange/2
	minY := req.PanY - yRange/2
	maxY := req.PanY + yRange/2
	return mapper{
		w:     float64(req.Width),
		h:     float64(req.Height),
		minX:  minX,
		minY:  minY,
		spanX: maxX - minX,
		spanY: maxY - minY,
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		rot:   mgl64.Rotate2D(mgl64.DegToRad(req.RotationDeg)),
	}
}

// at returns the complex starting point sampled by pixel (x, y).
func (m *mapper) at(x, y int) (re, im float64) {
	fx := (float64(x) + 0.5) / m.w
	fy := (float64(y) + 0.5) / m.h
	re = m.minX + fx*m.spanX
	im = m.minY + fy*m.spanY
	v := m.rot.Mul2x1(mgl64.Vec2{re - m.cx, im - m.cy})
	return v[0] + m.cx, v[1] + m.cy
}
