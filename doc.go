// Package julia renders Julia-set fractals into RGBA pixel buffers.
//
// # Overview
//
// julia is a pure Go escape-time rendering kernel. Each call produces one
// complete frame from an explicit parameter set; the package keeps no state
// between calls, so identical requests always produce identical bytes.
//
// # Quick Start
//
//	import "github.com/gogpu/julia"
//
//	req := julia.DefaultRequest()
//	req.Width, req.Height = 1920, 1080
//	req.CRe, req.CIm = -0.8, 0.156
//
//	pm, err := julia.Render(req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// pm.Data() is w*h*4 bytes of RGBA, rows top to bottom.
//
// # Variants
//
// Five iteration formulas are available: the quadratic Julia map plus the
// Burning Ship, Tricorn, Celtic and Cosine variants. All share the same
// view mapping and coloring pipeline; see Variant.
//
// # Coordinate System
//
//   - Pixel origin (0,0) at top-left, X increases right, Y increases down.
//   - The view spans 3/zoom units of the imaginary axis, centered on the
//     pan offset, with the real span scaled by the aspect ratio.
//   - The imaginary axis increases downward, matching screen Y.
//   - Rotation is in degrees, counter-clockwise about the view center.
//
// # Coloring
//
// Escaped points sample a five-stop gradient by normalized iteration count;
// interior points take the background color, optionally with zero alpha.
// Optional fade and gamma stages adjust escaped colors only.
//
// # Rendering
//
// Frames render on the CPU across a band scheduler by default. A GPU or
// SIMD implementation can be plugged in through RegisterAccelerator; the
// CPU path remains the reference and the fallback.
package julia

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
