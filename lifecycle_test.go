package shell

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gputypes"
)

// eventLog records callback deliveries in order.
type eventLog []string

func (l *eventLog) add(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

// install hooks every lifecycle callback of d into the log.
func (l *eventLog) install(d *Display) {
	d.SetSurfaceCreatedFunc(func(_ *Display, w, h int) { l.add("created %dx%d", w, h) })
	d.SetSurfaceResizedFunc(func(_ *Display, w, h int) { l.add("resized %dx%d", w, h) })
	d.SetSurfaceRefreshFunc(func(*Display) { l.add("refresh") })
	d.SetSurfaceDestroyedFunc(func(*Display) { l.add("destroyed") })
	d.SetSurfaceErrorFunc(func(_ *Display, err *SurfaceError) { l.add("error %s", err.Message) })
	d.SetRenderFunc(func(d *Display) {
		w, h := d.Size()
		l.add("render %dx%d", w, h)
	})
}

func TestSurfaceLifecycleOrder(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	var log eventLog
	log.install(d)
	dr := d.Driver()

	steps := []func() error{
		func() error { return dr.SurfaceCreated(RenderingAPIGLES2, 1024, 768) },
		func() error { _, err := dr.Frame(); return err },
		func() error { return dr.SurfaceResized(768, 1024) },
		func() error { _, err := dr.Frame(); return err },
		func() error { return dr.SurfaceRefresh() },
		func() error { return dr.SurfaceDestroyed() },
		func() error { return dr.SurfaceCreated(RenderingAPIGLES2, 800, 600) },
		func() error { _, err := dr.Frame(); return err },
		func() error { return dr.SurfaceDestroyed() },
		func() error { return dr.Terminate() },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: error = %v", i, err)
		}
	}

	want := []string{
		"created 1024x768",
		"render 1024x768",
		"resized 768x1024",
		"render 768x1024",
		"refresh",
		"render 768x1024",
		"destroyed",
		"created 800x600",
		"render 800x600",
		"destroyed",
	}
	if len(log) != len(want) {
		t.Fatalf("events = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if d.State() != StateTerminated {
		t.Errorf("State() = %v, want %v", d.State(), StateTerminated)
	}
	if d.Session() != 2 {
		t.Errorf("Session() = %d, want 2", d.Session())
	}
}

// TestNoDeliveryOutsideSession drives every host call from every state and
// checks that render, resize and refresh are only delivered between a
// created and its destroyed.
func TestNoDeliveryOutsideSession(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	dr := d.Driver()

	inSession := false
	violation := ""
	check := func(event string) {
		if !inSession && violation == "" {
			violation = event
		}
	}
	d.SetSurfaceCreatedFunc(func(*Display, int, int) {
		if inSession {
			violation = "created inside session"
		}
		inSession = true
	})
	d.SetSurfaceDestroyedFunc(func(*Display) {
		if !inSession {
			violation = "destroyed outside session"
		}
		inSession = false
	})
	d.SetRenderFunc(func(*Display) { check("render") })
	d.SetSurfaceResizedFunc(func(*Display, int, int) { check("resize") })
	d.SetSurfaceRefreshFunc(func(*Display) { check("refresh") })
	d.SetTouchFunc(func(*Display, TouchEvent) bool { check("touch"); return true })

	ops := []func(int){
		func(i int) { _ = dr.SurfaceCreated(RenderingAPIGLES2, 100+i, 100) },
		func(i int) { _ = dr.SurfaceResized(200+i, 200) },
		func(int) { _ = dr.SurfaceRefresh() },
		func(int) { _ = dr.SurfaceDestroyed() },
		func(int) { _, _ = dr.Frame() },
		func(int) { dr.Touch(TouchEvent{Phase: TouchPhaseBegan}) },
		func(int) { _ = dr.SurfaceStatus(gputypes.SurfaceStatusLost) },
		func(int) { _ = dr.SurfaceStatus(gputypes.SurfaceStatusOutdated) },
	}
	// Deterministic pseudo-random walk over the operations.
	seed := uint32(7)
	for i := 0; i < 500; i++ {
		seed = seed*1664525 + 1013904223
		ops[int(seed>>16)%len(ops)](i)
		if violation != "" {
			t.Fatalf("step %d: %s", i, violation)
		}
		if d.HasSurface() != inSession {
			t.Fatalf("step %d: HasSurface() = %v, callbacks say %v", i, d.HasSurface(), inSession)
		}
	}
}

func TestSurfaceCreatedTwiceIsViolation(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)

	err := d.Driver().SurfaceCreated(RenderingAPIGLES2, 10, 10)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second SurfaceCreated() error = %v, want ErrInvalidTransition", err)
	}
	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error %T is not *TransitionError", err)
	}
	if terr.From != StateCreated {
		t.Errorf("TransitionError.From = %v, want %v", terr.From, StateCreated)
	}
	if d.Session() != 1 {
		t.Errorf("Session() = %d, want 1", d.Session())
	}
}

func TestTransitionsBeforeCreation(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	dr := d.Driver()

	if err := dr.SurfaceResized(10, 10); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SurfaceResized() error = %v, want ErrInvalidTransition", err)
	}
	if err := dr.SurfaceRefresh(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SurfaceRefresh() error = %v, want ErrInvalidTransition", err)
	}
	if _, err := dr.Frame(); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Frame() error = %v, want ErrNoSurface", err)
	}
	if err := dr.SurfaceDestroyed(); err != nil {
		t.Errorf("SurfaceDestroyed() without session error = %v, want nil", err)
	}
	if d.State() != StateUninitialized {
		t.Errorf("State() = %v, want %v", d.State(), StateUninitialized)
	}
}

func TestSurfaceCreatedValidation(t *testing.T) {
	tests := []struct {
		name string
		api  RenderingAPI
		w, h int
		want error
	}{
		{"zero width", RenderingAPIGLES2, 0, 10, ErrInvalidDimensions},
		{"negative height", RenderingAPIGLES2, 10, -1, ErrInvalidDimensions},
		{"unknown api", RenderingAPIUnknown, 10, 10, ErrUnknownRenderingAPI},
		{"out of range api", renderingAPICount, 10, 10, ErrUnknownRenderingAPI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDisplay(t, newRecordingHost())
			err := d.Driver().SurfaceCreated(tt.api, tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Errorf("SurfaceCreated() error = %v, want %v", err, tt.want)
			}
			if d.State() != StateUninitialized {
				t.Errorf("State() = %v, want %v", d.State(), StateUninitialized)
			}
		})
	}
}

func TestSurfaceCreationFailed(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost(), WithRenderingAPI(RenderingAPIMetal))
	var log eventLog
	log.install(d)

	var got *SurfaceError
	d.SetSurfaceErrorFunc(func(_ *Display, err *SurfaceError) { got = err })

	if err := d.Driver().SurfaceCreationFailed(RenderingAPIMetal, "no GPU"); err != nil {
		t.Fatalf("SurfaceCreationFailed() error = %v", err)
	}
	if got == nil {
		t.Fatal("surface-error callback not invoked")
	}
	if got.API != RenderingAPIMetal || got.Message != "no GPU" {
		t.Errorf("SurfaceError = %+v, want API Metal, message %q", got, "no GPU")
	}
	if d.State() != StateUninitialized {
		t.Errorf("State() = %v, want %v", d.State(), StateUninitialized)
	}
	if d.RenderingAPI() != RenderingAPIUnknown {
		t.Errorf("RenderingAPI() = %v, want Unknown", d.RenderingAPI())
	}

	// The application adjusts its configuration and the host retries.
	d.SetSurfaceConfig(DefaultSurfaceConfig())
	mustCreate(t, d, RenderingAPIGLES2, 320, 240)
	if d.Session() != 1 {
		t.Errorf("Session() = %d, want 1", d.Session())
	}
	if len(log) != 1 || log[0] != "created 320x240" {
		t.Errorf("events = %v, want [created 320x240]", log)
	}
}

func TestSurfaceCreationFailedDuringSession(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)
	if err := d.Driver().SurfaceCreationFailed(RenderingAPIGLES3, "x"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SurfaceCreationFailed() error = %v, want ErrInvalidTransition", err)
	}
}

func TestSurfaceErrorMessage(t *testing.T) {
	tests := []struct {
		err  *SurfaceError
		want string
	}{
		{&SurfaceError{Message: "no WebGL"}, "shell: surface creation failed: no WebGL"},
		{&SurfaceError{API: RenderingAPIGLES3, Message: "no context"}, "shell: surface creation failed (GLES3): no context"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	var log eventLog
	log.install(d)
	mustCreate(t, d, RenderingAPIGLES2, 100, 50)

	if err := d.Driver().SurfaceResized(100, 50); err != nil {
		t.Fatalf("SurfaceResized() error = %v", err)
	}
	if d.State() != StateCreated {
		t.Errorf("State() = %v, want %v", d.State(), StateCreated)
	}
	if len(log) != 1 {
		t.Errorf("events = %v, want only the creation", log)
	}
}

func TestRefreshAlwaysRenders(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)

	renders := 0
	d.SetRenderFunc(func(*Display) { renders++ })
	// No refresh callback installed: the render still happens.
	if err := d.Driver().SurfaceRefresh(); err != nil {
		t.Fatalf("SurfaceRefresh() error = %v", err)
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
	if d.State() != StateRefreshing {
		t.Errorf("State() = %v, want %v", d.State(), StateRefreshing)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost(), WithDepthFormat(DepthFormat16))
	dr := d.Driver()

	mustCreate(t, d, RenderingAPIGLES3, 1024, 768)
	d.SetRenderFunc(func(d *Display) { d.SwapBuffers() })
	if _, err := dr.Frame(); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}

	// Configuration changed mid-session applies to the next session only.
	d.SetDisplayConfig(RenderingAPIGLES3, ColorFormatRGB565, DepthFormat24, StencilFormat8, Multisample4X)
	cfg, ok := d.SurfaceConfig()
	if !ok {
		t.Fatal("SurfaceConfig() ok = false during a session")
	}
	if cfg.DepthFormat != DepthFormat16 || cfg.ColorFormat != ColorFormatRGBA8888 {
		t.Errorf("SurfaceConfig() = %+v, want the creation snapshot", cfg)
	}

	if err := dr.SurfaceStatus(gputypes.SurfaceStatusLost); err != nil {
		t.Fatalf("SurfaceStatus(Lost) error = %v", err)
	}
	if d.State() != StateDestroyed {
		t.Fatalf("State() = %v, want %v", d.State(), StateDestroyed)
	}
	if _, ok := d.SurfaceConfig(); ok {
		t.Error("SurfaceConfig() ok = true after destruction")
	}

	mustCreate(t, d, RenderingAPIGLES2, 800, 600)
	cfg, _ = d.SurfaceConfig()
	if cfg.DepthFormat != DepthFormat24 || cfg.StencilFormat != StencilFormat8 || cfg.Multisample != Multisample4X {
		t.Errorf("SurfaceConfig() = %+v, want the updated request", cfg)
	}
	if cfg.RenderingAPI != RenderingAPIGLES2 {
		t.Errorf("SurfaceConfig().RenderingAPI = %v, want resolved GLES2", cfg.RenderingAPI)
	}
	if d.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, want 0 in a fresh session", d.FrameCount())
	}
	if d.Session() != 2 {
		t.Errorf("Session() = %d, want 2", d.Session())
	}
}

func TestSurfaceStatus(t *testing.T) {
	tests := []struct {
		status gputypes.SurfaceStatus
		want   SurfaceState
	}{
		{gputypes.SurfaceStatusGood, StateCreated},
		{gputypes.SurfaceStatusSuboptimal, StateCreated},
		{gputypes.SurfaceStatusTimeout, StateCreated},
		{gputypes.SurfaceStatusOutdated, StateRefreshing},
		{gputypes.SurfaceStatusLost, StateDestroyed},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			d := newTestDisplay(t, newRecordingHost())
			mustCreate(t, d, RenderingAPIGLES2, 10, 10)
			if err := d.Driver().SurfaceStatus(tt.status); err != nil {
				t.Fatalf("SurfaceStatus() error = %v", err)
			}
			if d.State() != tt.want {
				t.Errorf("State() = %v, want %v", d.State(), tt.want)
			}
		})
	}
}

func TestTerminate(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		d := newTestDisplay(t, newRecordingHost())
		mustCreate(t, d, RenderingAPIGLES2, 10, 10)
		if err := d.Driver().Terminate(); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Terminate() error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("before first surface", func(t *testing.T) {
		d := newTestDisplay(t, newRecordingHost())
		if err := d.Driver().Terminate(); err != nil {
			t.Errorf("Terminate() error = %v", err)
		}
	})

	t.Run("after terminate", func(t *testing.T) {
		d := newTestDisplay(t, newRecordingHost())
		dr := d.Driver()
		if err := dr.Terminate(); err != nil {
			t.Fatalf("Terminate() error = %v", err)
		}
		calls := map[string]error{
			"Terminate":         dr.Terminate(),
			"SurfaceCreated":    dr.SurfaceCreated(RenderingAPIGLES2, 1, 1),
			"SurfaceDestroyed":  dr.SurfaceDestroyed(),
			"SurfaceResized":    dr.SurfaceResized(1, 1),
			"MemoryWarning":     dr.MemoryWarning(),
			"AppFocus":          dr.AppFocus(false),
			"OrientationChange": dr.OrientationChanged(OrientationPortrait),
		}
		for name, err := range calls {
			if !errors.Is(err, ErrTerminated) {
				t.Errorf("%s() error = %v, want ErrTerminated", name, err)
			}
		}
	})
}

func TestSingleDisplay(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())

	if _, err := NewDisplay(newRecordingHost()); !errors.Is(err, ErrDisplayExists) {
		t.Fatalf("second NewDisplay() error = %v, want ErrDisplayExists", err)
	}
	if err := d.Driver().Terminate(); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	d2, err := NewDisplay(newRecordingHost())
	if err != nil {
		t.Fatalf("NewDisplay() after Terminate error = %v", err)
	}
	if d2 == d {
		t.Error("NewDisplay() returned the terminated Display")
	}
}

func TestNewDisplayNilHost(t *testing.T) {
	if _, err := NewDisplay(nil); !errors.Is(err, ErrNilHost) {
		t.Errorf("NewDisplay(nil) error = %v, want ErrNilHost", err)
	}
	if live.Load() {
		t.Error("NewDisplay(nil) claimed the display slot")
	}
}

func TestSurfaceStateString(t *testing.T) {
	tests := []struct {
		s    SurfaceState
		want string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateCreated, "Created"},
		{StateResized, "Resized"},
		{StateRefreshing, "Refreshing"},
		{StateDestroyed, "Destroyed"},
		{StateTerminated, "Terminated"},
		{SurfaceState(42), "SurfaceState(42)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("SurfaceState(%d).String() = %q, want %q", uint8(tt.s), got, tt.want)
		}
	}
}
