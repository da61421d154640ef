package julia

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this frame.
// The caller should transparently fall back to CPU rendering.
var ErrFallbackToCPU = errors.New("julia: falling back to CPU rendering")

// FrameAccelerator is an optional whole-frame rendering provider, for
// GPU or SIMD implementations of the escape-time kernel.
//
// When registered via RegisterAccelerator, Render tries the accelerator
// first. If it returns ErrFallbackToCPU or any other error, rendering
// transparently falls back to the CPU path.
//
// An accelerator must reproduce the CPU path bit for bit or refuse the
// frame: callers rely on identical requests producing identical bytes
// no matter which path rendered them.
//
// Implementations live in separate backend modules and register
// themselves in init, so users opt in via blank import:
//
//	import _ "github.com/gogpu/julia-wgpu" // enables GPU frames
type FrameAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "avx2").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// CanRender reports whether the accelerator supports the request.
	// This is a fast check used to skip the backend entirely for
	// unsupported parameter combinations.
	CanRender(req RenderRequest) bool

	// Render produces the full frame as straight RGBA bytes, length
	// Width*Height*4, rows top to bottom. Returns ErrFallbackToCPU if
	// the frame cannot be accelerated after all.
	Render(req RenderRequest) ([]byte, error)
}

var (
	accelMu sync.RWMutex
	accel   FrameAccelerator
)

// RegisterAccelerator registers a frame accelerator.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration. If Init() fails, the accelerator is not registered and
// the error is returned.
//
// Typical usage via init in backend packages:
//
//	func init() {
//	    julia.RegisterAccelerator(NewWGPUAccelerator())
//	}
func RegisterAccelerator(a FrameAccelerator) error {
	if a == nil {
		return errors.New("julia: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("accelerator registered", "name", a.Name())
	return nil
}

// Accelerator returns the currently registered frame accelerator, or
// nil if none.
func Accelerator() FrameAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}
