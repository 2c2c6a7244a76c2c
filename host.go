package shell

// Host is the platform glue that owns the native event pump. It is the
// only required collaborator: it must accept present requests even when
// presentation is automatic on its platform, in which case Present is a
// no-op.
//
// Everything else a host can offer is discovered by type assertion on the
// optional interfaces below. A missing interface makes the matching
// Display query return false and the matching request a silent no-op.
type Host interface {
	// Present makes the frame rendered during the current render callback
	// visible (eglSwapBuffers and friends).
	Present()
}

// SensorController is implemented by hosts with motion sensors.
// Enable and Disable bracket the lifetime of a non-nil sensor callback;
// the core never sends two enables or two disables in a row for the same
// sensor.
type SensorController interface {
	SensorAvailable(s Sensor) bool
	EnableSensor(s Sensor)
	DisableSensor(s Sensor)
}

// HapticEngine is implemented by hosts that can vibrate.
type HapticEngine interface {
	// HapticFeedbackSupported may depend on hardware and OS version.
	HapticFeedbackSupported() bool
	PerformHapticFeedback(style HapticStyle)
}

// KeyboardController is implemented by hosts with an onscreen keyboard.
// Visibility changes are reported back through
// Driver.KeyboardVisibilityChanged once they happen.
type KeyboardController interface {
	RequestKeyboardVisible(visible bool)
}

// CursorController is implemented by hosts with a mouse cursor.
type CursorController interface {
	SetMouseCursor(c Cursor)
}

// ChromeController is implemented by hosts that can show or hide system UI.
type ChromeController interface {
	SetChrome(c Chrome)
}

// OrientationController is implemented by hosts that can rotate.
type OrientationController interface {
	// DeviceOrientations is what the device and platform can do.
	DeviceOrientations() Orientations

	// ApplyOrientations restricts autorotation to the resolved set.
	ApplyOrientations(allowed Orientations)
}

// TouchDetector is implemented by hosts that know whether a touch screen is
// present.
type TouchDetector interface {
	HasTouch() bool
}

// APIDetector is implemented by hosts that can list the rendering APIs the
// device supports.
type APIDetector interface {
	SupportedRenderingAPIs() RenderingAPIs
}
