package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/gogpu/julia"
	"github.com/gogpu/julia/export"
	"github.com/gogpu/julia/internal/cache"
)

const viewControls = "arrows pan, I/O or wheel zoom, Q/E rotate, V variant, P palette, " +
	"M smooth, T transparency, [ ] iterations, S screenshot, R reset, Esc quit"

func newViewCmd() *cobra.Command {
	var (
		variantName string
		paletteName string
		cacheMB     int
		workers     int
	)
	req := julia.DefaultRequest()
	req.Width, req.Height = 800, 600

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore a Julia set interactively",
		Long:  "Explore a Julia set interactively.\n\nControls: " + viewControls + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			v, err := julia.ParseVariant(variantName)
			if err != nil {
				return err
			}
			req.Variant = v

			g, ok := julia.PaletteByName(paletteName)
			if !ok {
				return fmt.Errorf("unknown palette %q (have: %s)",
					paletteName, strings.Join(julia.PaletteNames(), ", "))
			}
			req.Gradient = g

			game := newGame(req, paletteName, workers, cacheMB)
			ebiten.SetWindowSize(req.Width, req.Height)
			ebiten.SetWindowTitle(game.title())
			if err := ebiten.RunGame(game); err != nil {
				return err
			}
			st := game.frames.Stats()
			julia.Logger().Debug("frame cache stats",
				"entries", st.Len,
				"bytes", st.Bytes,
				"hit_rate", st.HitRate,
				"evictions", st.Evictions)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&req.Width, "width", req.Width, "window and render width")
	fl.IntVar(&req.Height, "height", req.Height, "window and render height")
	fl.Float64Var(&req.CRe, "c-re", req.CRe, "real part of the Julia constant")
	fl.Float64Var(&req.CIm, "c-im", req.CIm, "imaginary part of the Julia constant")
	fl.Float64Var(&req.Zoom, "zoom", req.Zoom, "initial magnification")
	fl.IntVar(&req.MaxIterations, "iterations", req.MaxIterations, "escape iteration limit")
	fl.StringVar(&variantName, "variant", julia.Standard.String(), "iteration formula: standard, burning-ship, tricorn, celtic, cosine")
	fl.StringVar(&paletteName, "palette", "classic", "preset palette: "+strings.Join(julia.PaletteNames(), ", "))
	fl.IntVar(&cacheMB, "cache-mb", 64, "frame cache budget in MiB")
	fl.IntVar(&workers, "workers", 0, "render workers (0 = one per CPU)")
	return cmd
}

// Input tuning. Pan and zoom apply per tick while held; the rest
// trigger once per key press.
const (
	panStep   = 0.02
	zoomStep  = 1.04
	wheelZoom = 1.1
	rotStep   = 1.5

	minIter = 1
	maxIter = 1 << 16
)

type game struct {
	renderer *julia.Renderer
	frames   *cache.Cache[string, []byte]

	req     julia.RenderRequest
	initial julia.RenderRequest
	palIdx  int
	initPal int

	offscreen *ebiten.Image
	dirty     bool
}

func newGame(req julia.RenderRequest, palette string, workers, cacheMB int) *game {
	palIdx := 0
	for i, name := range julia.PaletteNames() {
		if name == palette {
			palIdx = i
			break
		}
	}
	return &game{
		renderer: julia.NewRenderer(julia.WithWorkers(workers)),
		frames: cache.New[string, []byte](cacheMB<<20, cache.StringHasher,
			func(b []byte) int { return len(b) }),
		req:       req,
		initial:   req,
		palIdx:    palIdx,
		initPal:   palIdx,
		offscreen: ebiten.NewImage(req.Width, req.Height),
		dirty:     true,
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()
	if g.dirty {
		if pix := g.frame(); pix != nil {
			g.offscreen.WritePixels(pix)
		}
		ebiten.SetWindowTitle(g.title())
		g.dirty = false
	}
	return nil
}

func (g *game) handleInput() {
	// Pan in fractal units so movement tracks the zoom level. PanY
	// grows downward, matching screen Y.
	span := 3.0 / g.req.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.req.PanX -= span * panStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.req.PanX += span * panStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.req.PanY -= span * panStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.req.PanY += span * panStep
		g.dirty = true
	}

	if ebiten.IsKeyPressed(ebiten.KeyI) {
		g.req.Zoom *= zoomStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyO) {
		g.req.Zoom /= zoomStep
		g.dirty = true
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			g.req.Zoom *= wheelZoom
		} else {
			g.req.Zoom /= wheelZoom
		}
		g.dirty = true
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.req.RotationDeg -= rotStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.req.RotationDeg += rotStep
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		vs := julia.Variants()
		g.req.Variant = vs[(int(g.req.Variant)+1)%len(vs)]
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		names := julia.PaletteNames()
		g.palIdx = (g.palIdx + 1) % len(names)
		g.req.Gradient, _ = julia.PaletteByName(names[g.palIdx])
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.req.Smooth = !g.req.Smooth
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.req.TransparentBackground = !g.req.TransparentBackground
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		if g.req.MaxIterations < maxIter {
			g.req.MaxIterations *= 2
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		if g.req.MaxIterations > minIter {
			g.req.MaxIterations /= 2
			if g.req.MaxIterations < minIter {
				g.req.MaxIterations = minIter
			}
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.req = g.initial
		g.palIdx = g.initPal
		g.dirty = true
	}
}

// frame returns the RGBA bytes for the current view, rendering on cache
// miss. Display frames are always opaque; the transparency toggle only
// affects screenshots, where alpha survives the encoding.
func (g *game) frame() []byte {
	req := g.req
	req.TransparentBackground = false
	key := frameKey(req)
	if pix, ok := g.frames.Get(key); ok {
		return pix
	}
	pm, err := g.renderer.Render(req)
	if err != nil {
		julia.Logger().Warn("render failed", "error", err)
		return nil
	}
	g.frames.Set(key, pm.Data())
	return pm.Data()
}

// frameKey folds every parameter that affects a display frame's pixels
// into a string key. Display frames always render opaque (see frame),
// so the transparency flag is not part of the key. %.17g round-trips
// float64 exactly, so distinct views never collide.
func frameKey(req julia.RenderRequest) string {
	return fmt.Sprintf("%dx%d|c%.17g,%.17g|z%.17g|p%.17g,%.17g|r%.17g|i%d|v%d|g%x|b%v|f%.17g|ga%.17g|s%t",
		req.Width, req.Height,
		req.CRe, req.CIm,
		req.Zoom,
		req.PanX, req.PanY,
		req.RotationDeg,
		req.MaxIterations,
		int(req.Variant),
		req.Gradient.Bytes(),
		req.Background,
		req.FadeAmount,
		req.GammaExponent,
		req.Smooth)
}

func (g *game) screenshot() {
	pm, err := g.renderer.Render(g.req)
	if err != nil {
		julia.Logger().Warn("screenshot render failed", "error", err)
		return
	}
	name := "julia-" + time.Now().Format("20060102-150405") + ".png"
	if err := export.WriteFile(name, pm.NRGBA()); err != nil {
		julia.Logger().Warn("screenshot save failed", "path", name, "error", err)
		return
	}
	julia.Logger().Info("screenshot saved", "path", name)
}

func (g *game) title() string {
	names := julia.PaletteNames()
	var flags strings.Builder
	if g.req.Smooth {
		flags.WriteString(" smooth")
	}
	if g.req.TransparentBackground {
		flags.WriteString(" transparent")
	}
	return fmt.Sprintf("juliaset - c=%.4f%+.4fi zoom=%.3g iter=%d %s/%s%s",
		g.req.CRe, g.req.CIm, g.req.Zoom, g.req.MaxIterations,
		g.req.Variant, names[g.palIdx], flags.String())
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)
}

func (g *game) Layout(int, int) (int, int) {
	return g.initial.Width, g.initial.Height
}
