package julia

import (
	"fmt"
	"math"
)

// RGB is an 8-bit color triplet, used for gradient stops and the
// interior background.
type RGB struct {
	R, G, B uint8
}

// String returns the color as a #rrggbb hex literal.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// shader turns escape results into RGBA bytes. It is built once per
// frame and is read-only afterwards, so workers share one instance.
type shader struct {
	gradient   Gradient
	background RGB
	bgAlpha    uint8
	fadeScale  float64
	gammaInv   float64
	applyGamma bool
	smooth     bool
	maxIterF   float64
}

func newShader(req RenderRequest) shader {
	s := shader{
		gradient:   req.Gradient,
		background: req.Background,
		bgAlpha:    255,
		fadeScale:  1 - clamp01(req.FadeAmount/255),
		smooth:     req.Smooth,
		maxIterF:   float64(req.MaxIterations),
	}
	if req.TransparentBackground {
		s.bgAlpha = 0
	}
	// Gamma 1 must be an exact no-op. Running the pow pipeline at
	// exponent 1 is not: the byte -> [0,1] -> byte round trip can move
	// a channel by one, so the neutral exponent skips the stage.
	if req.GammaExponent > 0 && req.GammaExponent != 1 {
		s.applyGamma = true
		s.gammaInv = 1 / req.GammaExponent
	}
	return s
}

// shade writes the RGBA bytes for one escape result into dst[0:4].
func (s *shader) shade(esc escapeResult, dst []byte) {
	if !esc.escaped {
		dst[0] = s.background.R
		dst[1] = s.background.G
		dst[2] = s.background.B
		dst[3] = s.bgAlpha
		return
	}

	var t float64
	if s.smooth {
		t = clamp01(smoothCount(esc) / s.maxIterF)
	} else {
		t = clamp01(float64(esc.n) / s.maxIterF)
	}

	r, g, b := s.gradient.Sample(t)

	r *= s.fadeScale
	g *= s.fadeScale
	b *= s.fadeScale

	if s.applyGamma {
		r = math.Pow(r/255, s.gammaInv) * 255
		g = math.Pow(g/255, s.gammaInv) * 255
		b = math.Pow(b/255, s.gammaInv) * 255
	}

	dst[0] = uint8(clamp255(r))
	dst[1] = uint8(clamp255(g))
	dst[2] = uint8(clamp255(b))
	dst[3] = 255
}

// smoothCount returns the fractional escape count n + 1 - log2(log2 |z|)
// using the |z|^2 recorded at escape. |z|^2 exceeds the escape threshold
// there, so both logarithms are defined.
func smoothCount(esc escapeResult) float64 {
	zn := math.Log(esc.magSq) / 2
	nu := math.Log(zn/math.Ln2) / math.Ln2
	return float64(esc.n) + 1 - nu
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
