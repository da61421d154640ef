package julia

import (
	"fmt"
	"math"
	"strings"
)

// Variant selects the escape-time iteration formula.
type Variant int

// Iteration formulas. The numeric values are stable and form the wire
// encoding used by RenderRaw.
const (
	// Standard iterates the quadratic Julia map z = z*z + c.
	Standard Variant = iota

	// BurningShip folds both components to their absolute value before
	// squaring: z = (|Re z| + i|Im z|)^2 + c.
	BurningShip

	// Tricorn conjugates before squaring: z = conj(z)*conj(z) + c.
	Tricorn

	// Celtic folds only the real component: both uses of Re z in the
	// quadratic step read |Re z|.
	Celtic

	// Cosine iterates z = cos(z) + c with an escape radius of 10.
	Cosine

	numVariants
)

// Escape thresholds, compared against |z|^2.
const (
	escapeRadiusSq       = 4.0
	cosineEscapeRadiusSq = 100.0
)

// Variants lists every iteration formula in wire order.
func Variants() []Variant {
	return []Variant{Standard, BurningShip, Tricorn, Celtic, Cosine}
}

func (v Variant) valid() bool {
	return v >= Standard && v < numVariants
}

// String returns the canonical lower-case name of the variant.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case BurningShip:
		return "burning-ship"
	case Tricorn:
		return "tricorn"
	case Celtic:
		return "celtic"
	case Cosine:
		return "cosine"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant resolves a variant name as printed by String. Matching is
// case-insensitive and accepts "burningship" for "burning-ship".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "standard":
		return Standard, nil
	case "burning-ship", "burningship":
		return BurningShip, nil
	case "tricorn":
		return Tricorn, nil
	case "celtic":
		return Celtic, nil
	case "cosine":
		return Cosine, nil
	}
	return Standard, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
}

// escapeResult reports the fate of one starting point. For escaped
// points n is the iteration at which |z|^2 first exceeded the threshold
// and magSq is that |z|^2; for interior points n is the iteration limit
// and magSq is |z|^2 after the final step.
type escapeResult struct {
	n       int
	escaped bool
	magSq   float64
}

// escapeFunc iterates one starting point to escape or to the limit.
type escapeFunc func(re, im float64) escapeResult

// escaper binds the variant's formula to a constant c and iteration
// limit. The returned function is safe for concurrent use.
func (v Variant) escaper(cRe, cIm float64, maxIter int) escapeFunc {
	switch v {
	case BurningShip:
		return func(re, im float64) escapeResult {
			return escapeShip(re, im, cRe, cIm, maxIter)
		}
	case Tricorn:
		return func(re, im float64) escapeResult {
			return escapeTricorn(re, im, cRe, cIm, maxIter)
		}
	case Celtic:
		return func(re, im float64) escapeResult {
			return escapeCeltic(re, im, cRe, cIm, maxIter)
		}
	case Cosine:
		return func(re, im float64) escapeResult {
			return escapeCosine(re, im, cRe, cIm, maxIter)
		}
	}
	return func(re, im float64) escapeResult {
		return escapeStandard(re, im, cRe, cIm, maxIter)
	}
}

// The escape loops below share one shape: test |z|^2 against the
// threshold before each step, so a point already outside the radius
// escapes at n=0. NaN never compares greater, so orbits that blow up
// into NaN run to the limit and count as interior, same as an orbit
// that never escapes.

func escapeStandard(re, im, cRe, cIm float64, maxIter int) escapeResult {
	r2 := re*re + im*im
	for n := 0; n < maxIter; n++ {
		if r2 > escapeRadiusSq {
			return escapeResult{n: n, escaped: true, magSq: r2}
		}
		re, im = re*re-im*im+cRe, 2*re*im+cIm
		r2 = re*re + im*im
	}
	return escapeResult{n: maxIter, magSq: r2}
}

func escapeShip(re, im, cRe, cIm float64, maxIter int) escapeResult {
	r2 := re*re + im*im
	for n := 0; n < maxIter; n++ {
		if r2 > escapeRadiusSq {
			return escapeResult{n: n, escaped: true, magSq: r2}
		}
		are, aim := math.Abs(re), math.Abs(im)
		re, im = are*are-aim*aim+cRe, 2*are*aim+cIm
		r2 = re*re + im*im
	}
	return escapeResult{n: maxIter, magSq: r2}
}

func escapeTricorn(re, im, cRe, cIm float64, maxIter int) escapeResult {
	r2 := re*re + im*im
	for n := 0; n < maxIter; n++ {
		if r2 > escapeRadiusSq {
			return escapeResult{n: n, escaped: true, magSq: r2}
		}
		re, im = re*re-im*im+cRe, -2*re*im+cIm
		r2 = re*re + im*im
	}
	return escapeResult{n: maxIter, magSq: r2}
}

func escapeCeltic(re, im, cRe, cIm float64, maxIter int) escapeResult {
	r2 := re*re + im*im
	for n := 0; n < maxIter; n++ {
		if r2 > escapeRadiusSq {
			return escapeResult{n: n, escaped: true, magSq: r2}
		}
		are := math.Abs(re)
		re, im = are*are-im*im+cRe, 2*are*im+cIm
		r2 = re*re + im*im
	}
	return escapeResult{n: maxIter, magSq: r2}
}

func escapeCosine(re, im, cRe, cIm float64, maxIter int) escapeResult {
	r2 := re*re + im*im
	for n := 0; n < maxIter; n++ {
		if r2 > cosineEscapeRadiusSq {
			return escapeResult{n: n, escaped: true, magSq: r2}
		}
		// cos(a+bi) = cos(a)cosh(b) - i sin(a)sinh(b)
		re, im = math.Cos(re)*math.Cosh(im)+cRe, -(math.Sin(re)*math.Sinh(im))+cIm
		r2 = re*re + im*im
	}
	return escapeResult{n: maxIter, magSq: r2}
}
