package julia

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

// mockAccelerator scripts a FrameAccelerator for CPU-fallback tests.
type mockAccelerator struct {
	name      string
	initErr   error
	canRender bool
	renderFn  func(req RenderRequest) ([]byte, error)

	initCalls   int
	closeCalls  int
	renderCalls int
	logger      *slog.Logger
}

func (m *mockAccelerator) Name() string { return m.name }

func (m *mockAccelerator) Init() error {
	m.initCalls++
	return m.initErr
}

func (m *mockAccelerator) Close() { m.closeCalls++ }

func (m *mockAccelerator) CanRender(RenderRequest) bool { return m.canRender }

func (m *mockAccelerator) Render(req RenderRequest) ([]byte, error) {
	m.renderCalls++
	if m.renderFn == nil {
		return nil, ErrFallbackToCPU
	}
	return m.renderFn(req)
}

func (m *mockAccelerator) SetLogger(l *slog.Logger) { m.logger = l }

// resetAccelerator drops any registered accelerator without running its
// Close, keeping tests independent.
func resetAccelerator(t *testing.T) {
	t.Cleanup(func() {
		accelMu.Lock()
		accel = nil
		accelMu.Unlock()
	})
}

// --- Registration Tests ---

func TestRegisterAcceleratorNil(t *testing.T) {
	resetAccelerator(t)
	if err := RegisterAccelerator(nil); err == nil {
		t.Fatal("RegisterAccelerator(nil) = nil, want error")
	}
	if Accelerator() != nil {
		t.Error("nil registration installed an accelerator")
	}
}

func TestRegisterAcceleratorInitError(t *testing.T) {
	resetAccelerator(t)
	boom := errors.New("no device")
	m := &mockAccelerator{name: "broken", initErr: boom}

	if err := RegisterAccelerator(m); !errors.Is(err, boom) {
		t.Fatalf("RegisterAccelerator() = %v, want %v", err, boom)
	}
	if m.initCalls != 1 {
		t.Errorf("Init calls = %d, want 1", m.initCalls)
	}
	if Accelerator() != nil {
		t.Error("failed Init still installed the accelerator")
	}
}

func TestRegisterAcceleratorReplaces(t *testing.T) {
	resetAccelerator(t)
	first := &mockAccelerator{name: "first"}
	second := &mockAccelerator{name: "second"}

	if err := RegisterAccelerator(first); err != nil {
		t.Fatalf("RegisterAccelerator(first) = %v", err)
	}
	if err := RegisterAccelerator(second); err != nil {
		t.Fatalf("RegisterAccelerator(second) = %v", err)
	}
	if Accelerator() != second {
		t.Error("replacement did not install the second accelerator")
	}
	if first.closeCalls != 1 {
		t.Errorf("replaced accelerator Close calls = %d, want 1", first.closeCalls)
	}
	if second.closeCalls != 0 {
		t.Errorf("active accelerator Close calls = %d, want 0", second.closeCalls)
	}
}

// --- Accelerated Rendering Tests ---

func TestRenderUsesAccelerator(t *testing.T) {
	resetAccelerator(t)
	frame := bytes.Repeat([]byte{0xab}, 4*4*4)
	m := &mockAccelerator{
		name:      "mock",
		canRender: true,
		renderFn: func(RenderRequest) ([]byte, error) {
			return frame, nil
		},
	}
	if err := RegisterAccelerator(m); err != nil {
		t.Fatalf("RegisterAccelerator() = %v", err)
	}

	pm, err := Render(goldenRequest())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if m.renderCalls != 1 {
		t.Errorf("accelerator Render calls = %d, want 1", m.renderCalls)
	}
	if !bytes.Equal(pm.Data(), frame) {
		t.Error("frame bytes did not come from the accelerator")
	}
}

func TestRenderAcceleratorFallback(t *testing.T) {
	tests := []struct {
		name string
		mock *mockAccelerator
	}{
		{
			"declines via CanRender",
			&mockAccelerator{name: "picky", canRender: false},
		},
		{
			"declines via sentinel",
			&mockAccelerator{name: "sentinel", canRender: true},
		},
		{
			"fails outright",
			&mockAccelerator{name: "flaky", canRender: true,
				renderFn: func(RenderRequest) ([]byte, error) {
					return nil, errors.New("device lost")
				}},
		},
		{
			"returns short buffer",
			&mockAccelerator{name: "truncated", canRender: true,
				renderFn: func(RenderRequest) ([]byte, error) {
					return []byte{1, 2, 3}, nil
				}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAccelerator(t)
			if err := RegisterAccelerator(tt.mock); err != nil {
				t.Fatalf("RegisterAccelerator() = %v", err)
			}

			pm, err := Render(goldenRequest())
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			// The CPU path must take over and produce the usual frame.
			if !bytes.Equal(pm.Data(), goldenStandard) {
				t.Error("fallback frame differs from the CPU golden frame")
			}
			if !tt.mock.canRender && tt.mock.renderCalls != 0 {
				t.Errorf("Render calls = %d after CanRender refusal, want 0", tt.mock.renderCalls)
			}
		})
	}
}

// --- Logger Propagation Tests ---

func TestRegisterAcceleratorPropagatesLogger(t *testing.T) {
	resetAccelerator(t)
	t.Cleanup(func() { SetLogger(nil) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)

	m := &mockAccelerator{name: "logged", canRender: true}
	if err := RegisterAccelerator(m); err != nil {
		t.Fatalf("RegisterAccelerator() = %v", err)
	}
	if m.logger != custom {
		t.Error("registration did not hand the current logger to the accelerator")
	}
}

func TestSetLoggerPropagatesToAccelerator(t *testing.T) {
	resetAccelerator(t)
	t.Cleanup(func() { SetLogger(nil) })

	m := &mockAccelerator{name: "logged", canRender: true}
	if err := RegisterAccelerator(m); err != nil {
		t.Fatalf("RegisterAccelerator() = %v", err)
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if m.logger != custom {
		t.Error("SetLogger did not reach the registered accelerator")
	}
}
