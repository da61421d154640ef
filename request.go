package julia

import (
	"errors"
	"fmt"
)

// Rendering errors.
var (
	// ErrInvalidDimensions is returned when a frame width or height is
	// less than one pixel.
	ErrInvalidDimensions = errors.New("julia: invalid dimensions")

	// ErrInvalidGradient is returned when raw gradient bytes do not
	// describe exactly five RGB stops.
	ErrInvalidGradient = errors.New("julia: invalid gradient")

	// ErrInvalidVariant is returned when a variant id or name does not
	// match a known iteration formula.
	ErrInvalidVariant = errors.New("julia: invalid variant")

	// ErrFrameTooLarge is returned when width*height exceeds the frame
	// pixel budget.
	ErrFrameTooLarge = errors.New("julia: frame too large")
)

// maxFramePixels bounds width*height for a single frame (64 Mpx, an
// 8192x8192 RGBA frame, 256 MiB of pixel data).
const maxFramePixels = 1 << 26

// RenderRequest describes one frame. The zero value is not renderable;
// start from DefaultRequest and override fields.
//
// The request is plain data. Copying it is cheap and two equal requests
// always render to identical bytes.
type RenderRequest struct {
	// Width and Height are the frame size in pixels. Both must be >= 1.
	Width  int
	Height int

	// CRe and CIm are the components of the Julia constant c.
	CRe float64
	CIm float64

	// Zoom scales the viewed region; 1 shows 3 units of the imaginary
	// axis, larger values magnify. Values <= 0 are clamped to a tiny
	// positive epsilon rather than rejected.
	Zoom float64

	// PanX and PanY offset the view center in fractal-space units.
	PanX float64
	PanY float64

	// RotationDeg rotates the view counter-clockwise about its center,
	// in degrees.
	RotationDeg float64

	// MaxIterations is the escape-time iteration limit. Values < 1 are
	// clamped to 1.
	MaxIterations int

	// Variant selects the iteration formula.
	Variant Variant

	// Gradient colors escaped points by normalized iteration count.
	Gradient Gradient

	// Background colors interior points.
	Background RGB

	// FadeAmount darkens escaped colors, 0 (none) to 255 (black).
	FadeAmount float64

	// GammaExponent applies gamma correction to escaped colors.
	// Values <= 0 and exactly 1 leave colors untouched.
	GammaExponent float64

	// TransparentBackground renders interior points with zero alpha.
	// Their RGB channels still carry the background color.
	TransparentBackground bool

	// Smooth blends gradient samples by fractional escape count
	// instead of the integer count, removing visible banding.
	Smooth bool
}

// DefaultRequest returns a request for the classic c = -0.7 + 0.27015i
// Julia set at zoom 1 with the Classic palette.
func DefaultRequest() RenderRequest {
	return RenderRequest{
		Width:         1024,
		Height:        768,
		CRe:           -0.7,
		CIm:           0.27015,
		Zoom:          1,
		MaxIterations: 250,
		Variant:       Standard,
		Gradient:      PaletteClassic,
		Background:    RGB{},
		GammaExponent: 1,
	}
}

// validate reports the first structural problem with the request.
// Geometry fields are never rejected here; normalized clamps them.
func (r RenderRequest) validate() error {
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if !r.Variant.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidVariant, int(r.Variant))
	}
	// Width is at least 1 here. The division form stays exact even
	// where int is 32 bits, unlike the width*height product.
	if r.Height > maxFramePixels/r.Width {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrFrameTooLarge, r.Width, r.Height, maxFramePixels)
	}
	return nil
}

// normalized clamps degenerate geometry so rendering always has a
// well-defined view: non-positive zoom collapses to minZoom and the
// iteration limit is at least 1.
func (r RenderRequest) normalized() RenderRequest {
	if r.Zoom <= 0 {
		r.Zoom = minZoom
	}
	if r.MaxIterations < 1 {
		r.MaxIterations = 1
	}
	return r
}
