package julia

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gogpu/julia/internal/parallel"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: one worker per CPU
//	r := julia.NewRenderer()
//
//	// Pin the worker count
//	r := julia.NewRenderer(julia.WithWorkers(4))
type Option func(*Renderer)

// WithWorkers pins the number of rendering goroutines. n <= 0 restores
// the default of one worker per available CPU at render time.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = n
	}
}

// Renderer renders frames on the CPU. The zero value and NewRenderer()
// are both ready to use. A Renderer holds only configuration, so one
// instance may serve many goroutines, and the worker count never
// changes the produced bytes.
type Renderer struct {
	workers int
}

// NewRenderer returns a Renderer with the given options applied.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render renders one frame with a default Renderer.
func Render(req RenderRequest) (*Pixmap, error) {
	return defaultRenderer.Render(req)
}

// Render renders one frame.
//
// The request is validated, degenerate geometry is clamped, and the
// frame is produced either by a registered accelerator or by the CPU
// path. Identical requests produce identical bytes.
func (r *Renderer) Render(req RenderRequest) (*Pixmap, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	req = req.normalized()

	if pm := r.renderAccelerated(req); pm != nil {
		return pm, nil
	}

	start := time.Now()
	pm := NewPixmap(req.Width, req.Height)
	m := newMapper(req)
	iterate := req.Variant.escaper(req.CRe, req.CIm, req.MaxIterations)
	sh := newShader(req)

	workers := r.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	parallel.Rows(req.Height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := pm.row(y)
			for x := 0; x < req.Width; x++ {
				re, im := m.at(x, y)
				sh.shade(iterate(re, im), row[x*4:x*4+4])
			}
		}
	})

	Logger().Debug("frame rendered",
		"width", req.Width,
		"height", req.Height,
		"variant", req.Variant,
		"iterations", req.MaxIterations,
		"workers", workers,
		"elapsed", time.Since(start))
	return pm, nil
}

// renderAccelerated asks the registered accelerator for the frame.
// Returns nil when no accelerator is registered, the accelerator
// declines, or its output is unusable; the caller then renders on CPU.
func (r *Renderer) renderAccelerated(req RenderRequest) *Pixmap {
	a := Accelerator()
	if a == nil || !a.CanRender(req) {
		return nil
	}
	buf, err := a.Render(req)
	if err != nil {
		if errors.Is(err, ErrFallbackToCPU) {
			Logger().Debug("accelerator declined frame", "name", a.Name())
		} else {
			Logger().Warn("accelerator failed, using CPU", "name", a.Name(), "error", err)
		}
		return nil
	}
	want := req.Width * req.Height * 4
	if len(buf) != want {
		Logger().Warn("accelerator returned wrong frame size, using CPU",
			"name", a.Name(), "got", len(buf), "want", want)
		return nil
	}
	return &Pixmap{width: req.Width, height: req.Height, data: buf}
}

// RenderRaw renders one frame from flat parameters and returns the raw
// RGBA bytes. It is the language-neutral wire form of Render: variant
// is the numeric Variant value and gradient is the 15-byte stop
// encoding accepted by GradientFromBytes.
func RenderRaw(
	width, height int,
	cRe, cIm float64,
	zoom, panX, panY, rotationDeg float64,
	maxIterations, variant int,
	gradient []byte,
	bgR, bgG, bgB uint8,
	fade, gamma float64,
	transparent bool,
) ([]byte, error) {
	g, err := GradientFromBytes(gradient)
	if err != nil {
		return nil, err
	}
	v := Variant(variant)
	if !v.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVariant, variant)
	}
	pm, err := Render(RenderRequest{
		Width:                 width,
		Height:                height,
		CRe:                   cRe,
		CIm:                   cIm,
		Zoom:                  zoom,
		PanX:                  panX,
		PanY:                  panY,
		RotationDeg:           rotationDeg,
		MaxIterations:         maxIterations,
		Variant:               v,
		Gradient:              g,
		Background:            RGB{R: bgR, G: bgG, B: bgB},
		FadeAmount:            fade,
		GammaExponent:         gamma,
		TransparentBackground: transparent,
	})
	if err != nil {
		return nil, err
	}
	return pm.Data(), nil
}
