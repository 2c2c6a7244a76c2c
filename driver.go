package shell

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Driver is the host-facing side of a Display. The host's event pump calls
// its methods, on the same goroutine, to report surface lifecycle changes,
// render ticks, input and status changes. Obtain it with Display.Driver.
//
// Lifecycle methods return an error when the host breaks the event
// protocol; the application never observes such errors because the
// offending event is not delivered. Input methods report whether the
// application consumed the event, which tells the host whether to run the
// platform's default handling.
type Driver struct {
	d *Display
}

// Display returns the Display this driver feeds.
func (dr *Driver) Display() *Display {
	return dr.d
}

// drop logs an input event that was not delivered.
func (d *Display) drop(class EventClass, reason string) {
	Logger().Debug("shell: event dropped", "class", class, "reason", reason, "state", d.state)
}

// deliverable reports whether input may reach the application.
func (d *Display) deliverable(class EventClass) bool {
	if !d.state.active() {
		d.drop(class, "no surface")
		return false
	}
	return true
}

// Touch delivers a touch or mouse button event. Events with an index above
// zero are dropped unless multitouch is enabled.
func (dr *Driver) Touch(ev TouchEvent) bool {
	d := dr.d
	if !d.deliverable(EventTouch) {
		return false
	}
	if ev.Index < 0 || ev.Phase > TouchPhaseCancelled {
		d.drop(EventTouch, "malformed")
		return false
	}
	if ev.Index > 0 && !d.multitouch {
		d.drop(EventTouch, "multitouch disabled")
		return false
	}
	fn, ok := d.callbacks.touch.get()
	if !ok {
		return false
	}
	ev.Modifiers &= modAll
	return fn(d, ev)
}

// Key delivers a key event.
//
// For KeyNavigationBack a false result means the host should perform the
// platform's default back navigation, and true means the application
// handled it.
func (dr *Driver) Key(ev KeyEvent) bool {
	d := dr.d
	if !d.deliverable(EventKey) {
		return false
	}
	if ev.Action > KeyActionReleased {
		d.drop(EventKey, "malformed")
		return false
	}
	fn, ok := d.callbacks.key.get()
	if !ok {
		return false
	}
	ev.Modifiers &= modAll
	return fn(d, ev)
}

// Char delivers committed text input. The text is normalized to NFC;
// empty or invalid UTF-8 input is dropped.
func (dr *Driver) Char(text string, mods Modifiers) {
	d := dr.d
	if !d.deliverable(EventChar) {
		return
	}
	if text == "" || !utf8.ValidString(text) {
		d.drop(EventChar, "invalid text")
		return
	}
	if fn, ok := d.callbacks.char.get(); ok {
		fn(d, norm.NFC.String(text), mods&modAll)
	}
}

// MouseWheel delivers a wheel or touchpad scroll event.
func (dr *Driver) MouseWheel(ev WheelEvent) bool {
	d := dr.d
	if !d.deliverable(EventMouseWheel) {
		return false
	}
	if ev.DeltaType > WheelDeltaPage {
		d.drop(EventMouseWheel, "malformed")
		return false
	}
	fn, ok := d.callbacks.mouseWheel.get()
	if !ok {
		return false
	}
	ev.Modifiers &= modAll
	return fn(d, ev)
}

// KeyboardVisibilityChanged reports that the onscreen keyboard was shown,
// hidden or moved. frame is the keyboard rectangle in pixels.
func (dr *Driver) KeyboardVisibilityChanged(visible bool, frame Rect) error {
	d := dr.d
	if d.state == StateTerminated {
		return ErrTerminated
	}
	d.keyboardVisible = visible
	d.keyboardFrame = frame
	if fn, ok := d.callbacks.keyboardVisibility.get(); ok {
		fn(d, visible, frame)
	}
	return nil
}

// OrientationChanged reports the current interface orientation. The
// callback fires only when the value differs from the previous one.
func (dr *Driver) OrientationChanged(o Orientation) error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !o.Valid():
		return fmt.Errorf("%w: %#x", ErrInvalidOrientation, uint8(o))
	case o == d.orientation:
		return nil
	}
	d.orientation = o
	if fn, ok := d.callbacks.orientationChanged.get(); ok {
		fn(d, o)
	}
	return nil
}

// MemoryWarning reports that the system is low on memory.
func (dr *Driver) MemoryWarning() error {
	d := dr.d
	if d.state == StateTerminated {
		return ErrTerminated
	}
	if fn, ok := d.callbacks.memoryWarning.get(); ok {
		fn(d)
	}
	return nil
}

// AppFocus reports that the app moved to the foreground (true) or the
// background (false). Repeated reports of the same value are ignored.
func (dr *Driver) AppFocus(focused bool) error {
	d := dr.d
	if d.state == StateTerminated {
		return ErrTerminated
	}
	if focused == d.focused {
		return nil
	}
	d.focused = focused
	d.syncSensors()
	if fn, ok := d.callbacks.appFocus.get(); ok {
		fn(d, focused)
	}
	return nil
}

// Sensor delivers a sensor sample. Samples for a sensor whose stream is off
// are dropped; a sample whose payload does not match its sensor is an
// error.
func (dr *Driver) Sensor(ev SensorEvent) error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !ev.Valid():
		return fmt.Errorf("%w: %s", ErrSensorPayload, ev.Sensor)
	case !d.sensorsOn[ev.Sensor]:
		d.drop(EventSensor, "sensor disabled")
		return nil
	}
	if fn, ok := d.callbacks.sensors[ev.Sensor].get(); ok {
		fn(d, ev)
	}
	return nil
}

// SetMetrics reports the display scale and the chrome insets in pixels.
// A scale change alone does not resize the surface; the host reports the
// new pixel size separately.
func (dr *Driver) SetMetrics(scale float64, insets Insets) error {
	d := dr.d
	if d.state == StateTerminated {
		return ErrTerminated
	}
	if scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidDimensions, scale)
	}
	d.scale = scale
	d.insets = insets
	return nil
}
