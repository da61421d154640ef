package julia

import (
	"math"
	"testing"
)

const colorEpsilon = 1e-9

func testShaderRequest() RenderRequest {
	req := DefaultRequest()
	req.MaxIterations = 50
	return req
}

// --- RGB Tests ---

func TestRGBString(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{}, "#000000"},
		{RGB{R: 255, G: 69}, "#ff4500"},
		{RGB{R: 0x87, G: 0xce, B: 0xeb}, "#87ceeb"},
		{RGB{R: 255, G: 255, B: 255}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("RGB%v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

// --- Shader Tests ---

func TestShadeInterior(t *testing.T) {
	req := testShaderRequest()
	req.Background = RGB{R: 10, G: 20, B: 30}

	interior := escapeResult{n: req.MaxIterations, escaped: false}
	var dst [4]byte

	s := newShader(req)
	s.shade(interior, dst[:])
	if dst != [4]byte{10, 20, 30, 255} {
		t.Errorf("opaque interior = %v, want [10 20 30 255]", dst)
	}

	req.TransparentBackground = true
	s = newShader(req)
	s.shade(interior, dst[:])
	if dst != [4]byte{10, 20, 30, 0} {
		t.Errorf("transparent interior = %v, want [10 20 30 0]", dst)
	}
}

func TestShadeEscapedAlphaOpaque(t *testing.T) {
	// Transparency applies to the interior only. Escaped pixels stay
	// opaque even when the background is transparent.
	req := testShaderRequest()
	req.TransparentBackground = true
	s := newShader(req)

	var dst [4]byte
	s.shade(escapeResult{n: 10, escaped: true, magSq: 9}, dst[:])
	if dst[3] != 255 {
		t.Errorf("escaped alpha = %d, want 255", dst[3])
	}
}

func TestShadeGradientRamp(t *testing.T) {
	// Classic palette, 50 iterations: counts at 0, mid, and the limit
	// land exactly on gradient stops.
	s := newShader(testShaderRequest())

	tests := []struct {
		name string
		n    int
		want [4]byte
	}{
		{"first stop", 0, [4]byte{0, 0, 0, 255}},
		{"middle stop", 25, [4]byte{0, 0, 255, 255}},
		{"last stop", 50, [4]byte{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst [4]byte
			s.shade(escapeResult{n: tt.n, escaped: true, magSq: 9}, dst[:])
			if dst != tt.want {
				t.Errorf("n=%d: shade = %v, want %v", tt.n, dst, tt.want)
			}
		})
	}
}

func TestShadeFade(t *testing.T) {
	t.Run("full fade blacks out", func(t *testing.T) {
		req := testShaderRequest()
		req.FadeAmount = 255
		s := newShader(req)

		var dst [4]byte
		for _, n := range []int{0, 13, 25, 50} {
			s.shade(escapeResult{n: n, escaped: true, magSq: 9}, dst[:])
			if dst != [4]byte{0, 0, 0, 255} {
				t.Errorf("n=%d: faded shade = %v, want opaque black", n, dst)
			}
		}
	})

	t.Run("half fade halves channels", func(t *testing.T) {
		req := testShaderRequest()
		req.FadeAmount = 127.5
		s := newShader(req)

		var dst [4]byte
		s.shade(escapeResult{n: 50, escaped: true, magSq: 9}, dst[:])
		// White stop scaled by 0.5 truncates to 127.
		if dst != [4]byte{127, 127, 127, 255} {
			t.Errorf("half-faded white = %v, want [127 127 127 255]", dst)
		}
	})

	t.Run("fade leaves interior alone", func(t *testing.T) {
		req := testShaderRequest()
		req.FadeAmount = 255
		req.Background = RGB{R: 200, G: 100, B: 50}
		s := newShader(req)

		var dst [4]byte
		s.shade(escapeResult{n: 50, escaped: false}, dst[:])
		if dst != [4]byte{200, 100, 50, 255} {
			t.Errorf("faded interior = %v, want untouched background", dst)
		}
	})
}

func TestShadeGammaNeutral(t *testing.T) {
	// Exponent 1 is the identity, and non-positive exponents disable the
	// stage rather than feeding Pow a bad power.
	base := testShaderRequest()
	newShaderAt := func(gamma float64) shader {
		req := base
		req.GammaExponent = gamma
		return newShader(req)
	}

	esc := escapeResult{n: 13, escaped: true, magSq: 9}
	var want [4]byte
	ref := newShaderAt(1)
	ref.shade(esc, want[:])

	for _, gamma := range []float64{0, -2.5} {
		s := newShaderAt(gamma)
		var got [4]byte
		s.shade(esc, got[:])
		if got != want {
			t.Errorf("gamma %v: shade = %v, want identity %v", gamma, got, want)
		}
	}
}

func TestShadeGammaBrightens(t *testing.T) {
	linear := testShaderRequest()
	curved := testShaderRequest()
	curved.GammaExponent = 2

	sLin := newShader(linear)
	sCur := newShader(curved)

	// A mid-tone channel must move up under exponent 2 while pure black
	// and pure white stay fixed.
	var lin, cur [4]byte
	mid := escapeResult{n: 6, escaped: true, magSq: 9}
	sLin.shade(mid, lin[:])
	sCur.shade(mid, cur[:])
	if cur[2] <= lin[2] {
		t.Errorf("gamma 2 mid-tone blue = %d, want > linear %d", cur[2], lin[2])
	}

	for _, tt := range []struct {
		name string
		n    int
		want [4]byte
	}{
		{"black fixed", 0, [4]byte{0, 0, 0, 255}},
		{"white fixed", 50, [4]byte{255, 255, 255, 255}},
	} {
		var got [4]byte
		sCur.shade(escapeResult{n: tt.n, escaped: true, magSq: 9}, got[:])
		if got != tt.want {
			t.Errorf("%s: shade = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// --- Smooth Coloring Tests ---

func TestSmoothCountExactPowers(t *testing.T) {
	// |z|^2 = 16 means log2 log2 |z| = 1, so the fractional count
	// collapses to n exactly.
	for _, n := range []int{0, 3, 49} {
		got := smoothCount(escapeResult{n: n, escaped: true, magSq: 16})
		if math.Abs(got-float64(n)) > colorEpsilon {
			t.Errorf("smoothCount(n=%d, magSq=16) = %v, want %d", n, got, n)
		}
	}
}

func TestSmoothCountBetweenBands(t *testing.T) {
	// A larger escape magnitude means the orbit overshot further, which
	// lowers the fractional count.
	near := smoothCount(escapeResult{n: 7, escaped: true, magSq: 4.5})
	far := smoothCount(escapeResult{n: 7, escaped: true, magSq: 400})
	if far >= near {
		t.Errorf("smoothCount(magSq=400) = %v, want below smoothCount(magSq=4.5) = %v", far, near)
	}
}

func TestShadeSmoothDiffersFromDiscrete(t *testing.T) {
	discrete := newShader(testShaderRequest())

	req := testShaderRequest()
	req.Smooth = true
	smooth := newShader(req)

	esc := escapeResult{n: 3, escaped: true, magSq: 100}
	var d, s [4]byte
	discrete.shade(esc, d[:])
	smooth.shade(esc, s[:])
	if d == s {
		t.Errorf("smooth and discrete shading agree at %v, want different bytes", esc)
	}
}

// --- Clamp Tests ---

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-10, 0},
		{0, 0},
		{127.5, 127.5},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
