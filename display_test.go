package shell

import "testing"

func TestNewDisplayDefaults(t *testing.T) {
	d := newTestDisplay(t, &bareHost{})

	if got := d.Config(); got != DefaultSurfaceConfig() {
		t.Errorf("Config() = %+v, want %+v", got, DefaultSurfaceConfig())
	}
	if d.RenderingAPI() != RenderingAPIUnknown {
		t.Errorf("RenderingAPI() = %v, want Unknown before the first surface", d.RenderingAPI())
	}
	if d.SupportedOrientations() != OrientationsAll {
		t.Errorf("SupportedOrientations() = %v, want All", d.SupportedOrientations())
	}
	if d.Chrome() != ChromeNavigationAndStatusBar {
		t.Errorf("Chrome() = %v, want NavigationAndStatusBar", d.Chrome())
	}
	if d.MultitouchEnabled() || d.KeyboardVisible() || d.HasSurface() {
		t.Error("new Display has multitouch, keyboard or surface state set")
	}
	if !d.Focused() {
		t.Error("Focused() = false on a new Display")
	}
	if w, h := d.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %dx%d, want 0x0", w, h)
	}
	if d.State() != StateUninitialized {
		t.Errorf("State() = %v, want Uninitialized", d.State())
	}
}

func TestNewDisplayOptions(t *testing.T) {
	type appState struct{ name string }
	state := &appState{name: "game"}

	d := newTestDisplay(t, &bareHost{},
		WithRenderingAPI(RenderingAPIGLES31),
		WithColorFormat(ColorFormatRGB565),
		WithDepthFormat(DepthFormat24),
		WithStencilFormat(StencilFormat8),
		WithMultisample(Multisample4X),
		WithSwapBehavior(SwapBehaviorBufferPreserved),
		WithSupportedOrientations(OrientationsLandscape),
		WithChrome(ChromeFullscreen),
		WithMultitouch(true),
		WithUserData(state),
	)

	want := SurfaceConfig{
		RenderingAPI:  RenderingAPIGLES31,
		ColorFormat:   ColorFormatRGB565,
		DepthFormat:   DepthFormat24,
		StencilFormat: StencilFormat8,
		Multisample:   Multisample4X,
		SwapBehavior:  SwapBehaviorBufferPreserved,
	}
	if got := d.Config(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if d.SwapBehavior() != SwapBehaviorBufferPreserved {
		t.Errorf("SwapBehavior() = %v, want BufferPreserved", d.SwapBehavior())
	}
	if d.SupportedOrientations() != OrientationsLandscape {
		t.Errorf("SupportedOrientations() = %v, want Landscape", d.SupportedOrientations())
	}
	if d.Chrome() != ChromeFullscreen {
		t.Errorf("Chrome() = %v, want Fullscreen", d.Chrome())
	}
	if !d.MultitouchEnabled() {
		t.Error("MultitouchEnabled() = false")
	}
	if d.UserData() != state {
		t.Errorf("UserData() = %v, want %v", d.UserData(), state)
	}
}

func TestWithSurfaceConfig(t *testing.T) {
	cfg := SurfaceConfig{RenderingAPI: RenderingAPIMetal, DepthFormat: DepthFormat16}
	d := newTestDisplay(t, &bareHost{}, WithSurfaceConfig(cfg))
	if d.Config() != cfg {
		t.Errorf("Config() = %+v, want %+v", d.Config(), cfg)
	}
}

func TestUserDataOpaque(t *testing.T) {
	d := newTestDisplay(t, &bareHost{})
	data := map[string]int{"score": 1}
	d.SetUserData(data)
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)
	if err := d.Driver().SurfaceDestroyed(); err != nil {
		t.Fatalf("SurfaceDestroyed() error = %v", err)
	}
	got, ok := d.UserData().(map[string]int)
	if !ok || got["score"] != 1 || len(got) != 1 {
		t.Errorf("UserData() = %v, want the value set by the application", d.UserData())
	}
}

func TestOrientationResolution(t *testing.T) {
	tests := []struct {
		name      string
		requested Orientations
		device    Orientations
		want      Orientations
	}{
		{"landscape on left-only device", OrientationsLandscape, Orientations(OrientationLandscapeLeft), Orientations(OrientationLandscapeLeft)},
		{"all on phone", OrientationsAll, OrientationsAllButUpsideDown, OrientationsAllButUpsideDown},
		{"portrait on landscape device", OrientationsPortrait, OrientationsLandscape, OrientationsLandscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newRecordingHost()
			host.device = tt.device
			d := newTestDisplay(t, host)

			d.SetSupportedOrientations(tt.requested)
			if got := d.AllowedOrientations(); got != tt.want {
				t.Errorf("AllowedOrientations() = %v, want %v", got, tt.want)
			}
			if len(host.applied) != 1 || host.applied[0] != tt.want {
				t.Errorf("applied = %v, want [%v]", host.applied, tt.want)
			}
			if d.SupportedOrientations() != tt.requested {
				t.Errorf("SupportedOrientations() = %v, want %v", d.SupportedOrientations(), tt.requested)
			}
		})
	}
}

func TestAllowedOrientationsWithoutController(t *testing.T) {
	d := newTestDisplay(t, &bareHost{}, WithSupportedOrientations(OrientationsPortrait))
	if got := d.AllowedOrientations(); got != OrientationsPortrait {
		t.Errorf("AllowedOrientations() = %v, want Portrait", got)
	}
}

func TestCapabilityQueries(t *testing.T) {
	host := newRecordingHost()
	d := newTestDisplay(t, host)

	if !d.HasTouch() {
		t.Error("HasTouch() = false")
	}
	if !d.IsRenderingAPISupported(RenderingAPIGLES3) {
		t.Error("IsRenderingAPISupported(GLES3) = false")
	}
	if d.IsMetalSupported() {
		t.Error("IsMetalSupported() = true")
	}
	if !d.IsHapticFeedbackSupported() {
		t.Error("IsHapticFeedbackSupported() = false")
	}

	d.PerformHapticFeedback(HapticHeavy)
	if len(host.haptics) != 1 || host.haptics[0] != HapticHeavy {
		t.Errorf("haptics = %v, want [Heavy]", host.haptics)
	}

	host.haptic = false
	d.PerformHapticFeedback(HapticLight)
	if len(host.haptics) != 1 {
		t.Errorf("haptics = %v, feedback performed without support", host.haptics)
	}
}

func TestCapabilityQueriesBareHost(t *testing.T) {
	d := newTestDisplay(t, &bareHost{})

	if d.HasTouch() || d.IsRenderingAPISupported(RenderingAPIGLES2) || d.IsHapticFeedbackSupported() {
		t.Error("bare host reports a capability")
	}
	// Requests without the matching controller are silent no-ops.
	d.PerformHapticFeedback(HapticMedium)
	d.SetKeyboardVisible(true)
	d.SetMouseCursor(CursorText)
	d.SetChrome(ChromeFullscreen)
	d.SetSupportedOrientations(OrientationsLandscape)
	if d.Chrome() != ChromeFullscreen {
		t.Errorf("Chrome() = %v, want Fullscreen", d.Chrome())
	}
}

func TestHostRequests(t *testing.T) {
	host := newRecordingHost()
	d := newTestDisplay(t, host)

	d.SetMouseCursor(CursorPointer)
	d.SetChrome(ChromeNavigation)

	if len(host.cursors) != 1 || host.cursors[0] != CursorPointer {
		t.Errorf("cursors = %v, want [Pointer]", host.cursors)
	}
	if len(host.chromes) != 1 || host.chromes[0] != ChromeNavigation {
		t.Errorf("chromes = %v, want [Navigation]", host.chromes)
	}

	if err := d.Driver().Terminate(); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	d.SetMouseCursor(CursorCrosshair)
	d.SetChrome(ChromeFullscreen)
	d.SetKeyboardVisible(true)
	d.PerformHapticFeedback(HapticLight)
	if len(host.cursors) != 1 || len(host.chromes) != 1 || len(host.keyboard) != 0 || len(host.haptics) != 0 {
		t.Error("host received requests after Terminate")
	}
}

func TestConfigAfterCreationAppliesToNextSession(t *testing.T) {
	d := newTestDisplay(t, &bareHost{})
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)

	d.SetSwapBehavior(SwapBehaviorBufferDestroyed)
	if d.Config().SwapBehavior != SwapBehaviorBufferDestroyed {
		t.Errorf("Config().SwapBehavior = %v, want BufferDestroyed", d.Config().SwapBehavior)
	}
	cfg, _ := d.SurfaceConfig()
	if cfg.SwapBehavior != SwapBehaviorPlatformDefault {
		t.Errorf("SurfaceConfig().SwapBehavior = %v, want PlatformDefault for the live session", cfg.SwapBehavior)
	}
}
