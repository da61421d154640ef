package julia

import (
	"errors"
	"testing"
)

// --- Name Tests ---

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{Standard, "standard"},
		{BurningShip, "burning-ship"},
		{Tricorn, "tricorn"},
		{Celtic, "celtic"},
		{Cosine, "cosine"},
		{Variant(99), "variant(99)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Variant
		wantErr bool
	}{
		{"standard", "standard", Standard, false},
		{"upper case", "TRICORN", Tricorn, false},
		{"hyphenated ship", "burning-ship", BurningShip, false},
		{"ship alias", "burningship", BurningShip, false},
		{"celtic", "celtic", Celtic, false},
		{"cosine", "cosine", Cosine, false},
		{"unknown", "mandelbrot", Standard, true},
		{"empty", "", Standard, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVariant) {
					t.Errorf("error = %v, want ErrInvalidVariant", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVariantsRoundTrip(t *testing.T) {
	vs := Variants()
	if len(vs) != int(numVariants) {
		t.Fatalf("Variants() has %d entries, want %d", len(vs), int(numVariants))
	}
	for i, v := range vs {
		if int(v) != i {
			t.Errorf("Variants()[%d] = %v, want wire id %d", i, v, i)
		}
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v, want %v", v.String(), got, err, v)
		}
	}
}

// --- Escape Loop Tests ---

func TestEscapeImmediate(t *testing.T) {
	// |z0| > escape radius escapes at n=0 in every variant, before any
	// formula step runs.
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			esc := v.escaper(0, 0, 50)(20, 0)
			if !esc.escaped || esc.n != 0 {
				t.Errorf("escape(20, 0) = %+v, want escape at n=0", esc)
			}
			if esc.magSq != 400 {
				t.Errorf("magSq = %v, want 400", esc.magSq)
			}
		})
	}
}

func TestEscapeInterior(t *testing.T) {
	// The fixed point z=0 of z^2 never escapes.
	esc := Standard.escaper(0, 0, 75)(0, 0)
	if esc.escaped || esc.n != 75 {
		t.Errorf("escape(0, 0) = %+v, want interior at n=75", esc)
	}
	if esc.magSq != 0 {
		t.Errorf("magSq = %v, want 0", esc.magSq)
	}
}

func TestEscapeStandardSequence(t *testing.T) {
	// c=0, z0=1.1: the magnitude squares each step, so the checks see
	// 1.21, 1.4641, 2.1435..., then 4.5949... > 4 at n=3.
	esc := Standard.escaper(0, 0, 50)(1.1, 0)
	if !esc.escaped || esc.n != 3 {
		t.Errorf("escape(1.1, 0) = %+v, want escape at n=3", esc)
	}
	if esc.magSq <= escapeRadiusSq {
		t.Errorf("magSq = %v, want > %v", esc.magSq, escapeRadiusSq)
	}
}

func TestVariantFormulasDiffer(t *testing.T) {
	// c = 2i sends each starting point to a different fate per variant:
	// the component folds and the conjugation change the sign of the
	// 2*re*im term, so exactly one formula cancels it against c.
	points := []struct{ re, im float64 }{
		{-1, 1},
		{1, 1},
		{1, -1},
	}
	// escape fate per point, true = escaped at n=1
	want := map[Variant][3]bool{
		Standard:    {false, true, false},
		BurningShip: {true, true, true},
		Tricorn:     {true, false, true},
		Celtic:      {true, true, false},
	}

	for v, fates := range want {
		t.Run(v.String(), func(t *testing.T) {
			iterate := v.escaper(0, 2, 2)
			for i, p := range points {
				esc := iterate(p.re, p.im)
				if esc.escaped != fates[i] {
					t.Errorf("z0=(%v,%v): escaped = %v, want %v", p.re, p.im, esc.escaped, fates[i])
				}
				if fates[i] && esc.n != 1 {
					t.Errorf("z0=(%v,%v): n = %d, want 1", p.re, p.im, esc.n)
				}
				if !fates[i] && esc.n != 2 {
					t.Errorf("z0=(%v,%v): n = %d, want limit 2", p.re, p.im, esc.n)
				}
			}
		})
	}
}

func TestEscapeCosine(t *testing.T) {
	t.Run("real orbit stays interior", func(t *testing.T) {
		// cos of a real value stays in [-1, 1], far inside radius 10.
		esc := Cosine.escaper(0, 0, 30)(0.5, 0)
		if esc.escaped || esc.n != 30 {
			t.Errorf("escape(0.5, 0) = %+v, want interior at n=30", esc)
		}
	})

	t.Run("cosh blowup escapes", func(t *testing.T) {
		// z0=3i: one step gives cos(0)*cosh(3) ~ 10.07, past radius 10.
		esc := Cosine.escaper(0, 0, 10)(0, 3)
		if !esc.escaped || esc.n != 1 {
			t.Errorf("escape(0, 3) = %+v, want escape at n=1", esc)
		}
	})

	t.Run("uses wider escape radius", func(t *testing.T) {
		// |z0|^2 = 36 escapes the quadratic variants immediately but is
		// inside cosine's radius.
		esc := Cosine.escaper(0, 0, 1)(6, 0)
		if esc.escaped {
			t.Errorf("escape(6, 0) = %+v, want no escape at n=0", esc)
		}
	})
}
