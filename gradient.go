package julia

import (
	"fmt"
)

// Gradient stop layout. Stops sit at t = 0, 0.25, 0.5, 0.75 and 1 and
// adjacent stops interpolate linearly, so a sample at a stop position
// returns that stop's color exactly.
const (
	// GradientStops is the number of color stops in a gradient.
	GradientStops = 5

	// GradientByteLen is the wire size of a gradient: five RGB
	// triplets, 15 bytes.
	GradientByteLen = GradientStops * 3

	gradientSegments = GradientStops - 1
)

// Gradient is a five-stop RGB color ramp indexed by a normalized
// iteration count in [0, 1].
type Gradient [GradientStops]RGB

// GradientFromBytes decodes the wire form: five R, G, B triplets in
// stop order, 15 bytes total.
func GradientFromBytes(b []byte) (Gradient, error) {
	var g Gradient
	if len(b) != GradientByteLen {
		return g, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidGradient, len(b), GradientByteLen)
	}
	for i := range g {
		g[i] = RGB{R: b[i*3], G: b[i*3+1], B: b[i*3+2]}
	}
	return g, nil
}

// Bytes encodes the gradient to its 15-byte wire form.
func (g Gradient) Bytes() []byte {
	b := make([]byte, 0, GradientByteLen)
	for _, s := range g {
		b = append(b, s.R, s.G, s.B)
	}
	return b
}

// Sample interpolates the gradient at t. Values outside [0, 1] clamp to
// the first and last stop. Channels are returned in [0, 255] as float64
// so later shading stages can scale before quantizing.
func (gr *Gradient) Sample(t float64) (r, g, b float64) {
	t = clamp01(t)
	seg := t * gradientSegments
	i := int(seg)
	if i > gradientSegments-1 {
		i = gradientSegments - 1
	}
	f := seg - float64(i)
	lo, hi := gr[i], gr[i+1]
	r = lerpChannel(lo.R, hi.R, f)
	g = lerpChannel(lo.G, hi.G, f)
	b = lerpChannel(lo.B, hi.B, f)
	return r, g, b
}

func lerpChannel(a, b uint8, f float64) float64 {
	af := float64(a)
	return af + (float64(b)-af)*f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
