package shell

import "sync/atomic"

// live guards the one-Display-per-process rule. It is only touched by
// NewDisplay and Terminate.
var live atomic.Bool

// Display is the application's view of its rendering surface: requested
// configuration, live status reported by the host, and the callback slots.
//
// A Display is confined to the host's event-pump goroutine. No method may
// be called concurrently with another; there is no internal locking. The
// only value that may leave that goroutine is UserData, at the
// application's own risk.
type Display struct {
	host Host

	requested    SurfaceConfig
	active       SurfaceConfig
	orientations Orientations
	chrome       Chrome
	multitouch   bool
	pauseSensors bool
	userData     any

	state   SurfaceState
	session uint64
	api     RenderingAPI
	width   int
	height  int
	scale   float64
	insets  Insets

	orientation     Orientation
	keyboardVisible bool
	keyboardFrame   Rect
	focused         bool
	sensorsOn       [sensorCount]bool

	callbacks callbacks
	frame     frameState
	driver    Driver
}

// NewDisplay creates the process's Display. The host calls it once at
// startup, before handing the Display to the application entry point.
//
// It returns ErrDisplayExists while a previous Display has not reached
// StateTerminated.
func NewDisplay(host Host, opts ...Option) (*Display, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if !live.CompareAndSwap(false, true) {
		return nil, ErrDisplayExists
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Display{
		host:         host,
		requested:    o.surface,
		orientations: o.orientations,
		chrome:       o.chrome,
		multitouch:   o.multitouch,
		pauseSensors: o.pauseSensors,
		userData:     o.userData,
		scale:        1,
		focused:      true,
	}
	d.driver.d = d
	return d, nil
}

// Driver returns the host-facing entry points for this Display.
func (d *Display) Driver() *Driver {
	return &d.driver
}

// UserData returns the value set with SetUserData or WithUserData.
func (d *Display) UserData() any {
	return d.userData
}

// SetUserData stores an opaque value for the application.
func (d *Display) SetUserData(v any) {
	d.userData = v
}

// Config returns the requested surface configuration, which the host reads
// when it creates the next surface.
func (d *Display) Config() SurfaceConfig {
	return d.requested
}

// SurfaceConfig returns the configuration snapshot the current surface
// session was created with. ok is false when no session is active.
func (d *Display) SurfaceConfig() (cfg SurfaceConfig, ok bool) {
	if !d.state.active() {
		return SurfaceConfig{}, false
	}
	return d.active, true
}

// SetDisplayConfig sets the requested rendering API and buffer formats.
//
// Call it from the application entry point, before the first surface
// exists. Called later, it only affects the next surface session; the
// current surface keeps its configuration.
func (d *Display) SetDisplayConfig(api RenderingAPI, color ColorFormat, depth DepthFormat,
	stencil StencilFormat, multisample Multisample) {
	cfg := d.requested
	cfg.RenderingAPI = api
	cfg.ColorFormat = color
	cfg.DepthFormat = depth
	cfg.StencilFormat = stencil
	cfg.Multisample = multisample
	d.SetSurfaceConfig(cfg)
}

// SetSwapBehavior sets the swap behavior hint for the next surface.
func (d *Display) SetSwapBehavior(b SwapBehavior) {
	cfg := d.requested
	cfg.SwapBehavior = b
	d.SetSurfaceConfig(cfg)
}

// SwapBehavior returns the requested swap behavior.
func (d *Display) SwapBehavior() SwapBehavior {
	return d.requested.SwapBehavior
}

// SetSurfaceConfig replaces the requested surface configuration. Like
// SetDisplayConfig, it applies to the next surface session only.
func (d *Display) SetSurfaceConfig(cfg SurfaceConfig) {
	if d.state.active() && cfg != d.requested {
		Logger().Debug("shell: surface config changed, applies to next surface",
			"session", d.session, "api", cfg.RenderingAPI)
	}
	d.requested = cfg
}

// RenderingAPI returns the rendering API the host resolved for the most
// recent surface, or RenderingAPIUnknown before the first surface exists.
func (d *Display) RenderingAPI() RenderingAPI {
	return d.api
}

// IsRenderingAPISupported reports whether the device supports api. It is
// false when the host cannot tell.
func (d *Display) IsRenderingAPISupported(api RenderingAPI) bool {
	det, ok := d.host.(APIDetector)
	return ok && det.SupportedRenderingAPIs().Contains(api)
}

// IsMetalSupported is shorthand for IsRenderingAPISupported(RenderingAPIMetal).
func (d *Display) IsMetalSupported() bool {
	return d.IsRenderingAPISupported(RenderingAPIMetal)
}

// Size returns the surface size in pixels. It is zero before the first
// surface and keeps the last session's size after a surface is destroyed.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Scale returns the display scale: 1.0 for standard density, 2.0 for
// Retina-class displays.
func (d *Display) Scale() float64 {
	return d.scale
}

// ChromeInsets returns the space, in pixels, taken by system UI on each
// edge of the surface.
func (d *Display) ChromeInsets() Insets {
	return d.insets
}

// Chrome returns the requested system UI mode.
func (d *Display) Chrome() Chrome {
	return d.chrome
}

// SetChrome requests a system UI mode. Hosts without a ChromeController
// only record it.
func (d *Display) SetChrome(c Chrome) {
	if d.state == StateTerminated {
		return
	}
	d.chrome = c
	if cc, ok := d.host.(ChromeController); ok {
		cc.SetChrome(c)
	}
}

// SupportedOrientations returns the orientations the application requested.
func (d *Display) SupportedOrientations() Orientations {
	return d.orientations
}

// SetSupportedOrientations sets the orientations the application accepts.
// Unlike surface configuration this applies immediately: the host is given
// the intersection with the device's capability.
func (d *Display) SetSupportedOrientations(s Orientations) {
	if d.state == StateTerminated {
		return
	}
	d.orientations = s & OrientationsAll
	if oc, ok := d.host.(OrientationController); ok {
		oc.ApplyOrientations(d.AllowedOrientations())
	}
}

// AllowedOrientations returns the requested orientations intersected with
// what the device supports. If the intersection is empty the device set is
// returned, since a host cannot display in zero orientations.
func (d *Display) AllowedOrientations() Orientations {
	oc, ok := d.host.(OrientationController)
	if !ok {
		return d.orientations
	}
	device := oc.DeviceOrientations()
	allowed := ResolveOrientations(d.orientations, device)
	if allowed.IsEmpty() {
		Logger().Warn("shell: no requested orientation is supported by the device",
			"requested", d.orientations, "device", device)
		return device
	}
	return allowed
}

// Orientation returns the current interface orientation.
func (d *Display) Orientation() Orientation {
	return d.orientation
}

// MultitouchEnabled reports whether secondary touches are delivered.
func (d *Display) MultitouchEnabled() bool {
	return d.multitouch
}

// SetMultitouchEnabled enables or disables delivery of touch indices above
// zero. When disabled, multi-finger gestures collapse to the primary touch.
func (d *Display) SetMultitouchEnabled(enabled bool) {
	d.multitouch = enabled
}

// HasTouch reports whether the host has a touch screen.
func (d *Display) HasTouch() bool {
	td, ok := d.host.(TouchDetector)
	return ok && td.HasTouch()
}

// SetMouseCursor sets the cursor shape on hosts with a mouse.
func (d *Display) SetMouseCursor(c Cursor) {
	if d.state == StateTerminated {
		return
	}
	if cc, ok := d.host.(CursorController); ok {
		cc.SetMouseCursor(c)
	}
}

// SetKeyboardVisible asks the host to show or hide the onscreen keyboard.
// KeyboardVisible changes only once the host reports the new state.
func (d *Display) SetKeyboardVisible(visible bool) {
	if d.state == StateTerminated {
		return
	}
	if kc, ok := d.host.(KeyboardController); ok {
		kc.RequestKeyboardVisible(visible)
	}
}

// KeyboardVisible reports whether the onscreen keyboard is showing.
func (d *Display) KeyboardVisible() bool {
	return d.keyboardVisible
}

// KeyboardFrame returns the last reported keyboard frame in pixels.
func (d *Display) KeyboardFrame() Rect {
	return d.keyboardFrame
}

// Focused reports whether the app is in the foreground.
func (d *Display) Focused() bool {
	return d.focused
}
