package main

import (
	"fmt"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/gogpu/julia"
	"github.com/gogpu/julia/export"
)

func newRenderCmd() *cobra.Command {
	def := julia.DefaultRequest()

	var (
		out         string
		format      string
		quality     int
		workers     int
		variantName string
		paletteName string
		gradientCSV string
		background  string
	)
	req := def

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			v, err := julia.ParseVariant(variantName)
			if err != nil {
				return err
			}
			req.Variant = v

			req.Gradient, err = resolveGradient(paletteName, gradientCSV)
			if err != nil {
				return err
			}

			req.Background, err = parseHexColor(background)
			if err != nil {
				return err
			}

			opts := []export.Option{export.WithJPEGQuality(quality)}
			if format != "" {
				f, err := parseFormat(format)
				if err != nil {
					return err
				}
				opts = append(opts, export.WithFormat(f))
			} else if _, err := export.FormatFromPath(out); err != nil {
				return err
			}

			start := time.Now()
			pm, err := julia.NewRenderer(julia.WithWorkers(workers)).Render(req)
			if err != nil {
				return err
			}
			if err := export.WriteFile(out, pm.NRGBA(), opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s) in %s\n",
				out, req.Width, req.Height, req.Variant,
				time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&out, "out", "o", "julia.png", "output file (.png, .jpg, .bmp, .tif)")
	fl.StringVar(&format, "format", "", "output format, overriding the file extension")
	fl.IntVar(&quality, "quality", 90, "JPEG quality (1-100)")
	fl.IntVar(&workers, "workers", 0, "render workers (0 = one per CPU)")
	fl.IntVar(&req.Width, "width", def.Width, "frame width in pixels")
	fl.IntVar(&req.Height, "height", def.Height, "frame height in pixels")
	fl.Float64Var(&req.CRe, "c-re", def.CRe, "real part of the Julia constant")
	fl.Float64Var(&req.CIm, "c-im", def.CIm, "imaginary part of the Julia constant")
	fl.Float64Var(&req.Zoom, "zoom", def.Zoom, "magnification (1 shows 3 units of axis)")
	fl.Float64Var(&req.PanX, "pan-x", 0, "view center offset, real axis")
	fl.Float64Var(&req.PanY, "pan-y", 0, "view center offset, imaginary axis")
	fl.Float64Var(&req.RotationDeg, "rotation", 0, "view rotation in degrees")
	fl.IntVar(&req.MaxIterations, "iterations", def.MaxIterations, "escape iteration limit")
	fl.StringVar(&variantName, "variant", julia.Standard.String(), "iteration formula: standard, burning-ship, tricorn, celtic, cosine")
	fl.StringVar(&paletteName, "palette", "classic", "preset palette: "+strings.Join(julia.PaletteNames(), ", "))
	fl.StringVar(&gradientCSV, "gradient", "", "five comma-separated #rrggbb stops, overriding --palette")
	fl.StringVar(&background, "background", "#000000", "interior color as #rrggbb")
	fl.Float64Var(&req.FadeAmount, "fade", 0, "darken escaped colors, 0-255")
	fl.Float64Var(&req.GammaExponent, "gamma", def.GammaExponent, "gamma exponent for escaped colors")
	fl.BoolVar(&req.TransparentBackground, "transparent", false, "zero alpha for interior pixels")
	fl.BoolVar(&req.Smooth, "smooth", false, "smooth coloring by fractional escape count")
	return cmd
}

// resolveGradient picks the explicit stop list when given, the named
// preset otherwise.
func resolveGradient(paletteName, gradientCSV string) (julia.Gradient, error) {
	if gradientCSV != "" {
		return parseGradient(gradientCSV)
	}
	g, ok := julia.PaletteByName(paletteName)
	if !ok {
		return julia.Gradient{}, fmt.Errorf("unknown palette %q (have: %s)",
			paletteName, strings.Join(julia.PaletteNames(), ", "))
	}
	return g, nil
}

// parseGradient parses five comma-separated #rrggbb stops.
func parseGradient(s string) (julia.Gradient, error) {
	var g julia.Gradient
	parts := strings.Split(s, ",")
	if len(parts) != julia.GradientStops {
		return g, fmt.Errorf("gradient needs %d stops, got %d", julia.GradientStops, len(parts))
	}
	for i, p := range parts {
		c, err := parseHexColor(strings.TrimSpace(p))
		if err != nil {
			return g, err
		}
		g[i] = c
	}
	return g, nil
}

func parseHexColor(s string) (julia.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return julia.RGB{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return julia.RGB{R: r, G: g, B: b}, nil
}

func parseFormat(s string) (export.Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return export.FormatPNG, nil
	case "jpg", "jpeg":
		return export.FormatJPEG, nil
	case "bmp":
		return export.FormatBMP, nil
	case "tif", "tiff":
		return export.FormatTIFF, nil
	}
	return export.FormatPNG, fmt.Errorf("%w: %q", export.ErrUnsupportedFormat, s)
}
