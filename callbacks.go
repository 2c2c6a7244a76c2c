package shell

// RenderFunc draws one frame. Call Display.SwapBuffers before returning if
// anything was drawn; returning without it skips presenting this frame.
type RenderFunc func(d *Display)

// SurfaceErrorFunc receives a surface creation failure.
type SurfaceErrorFunc func(d *Display, err *SurfaceError)

// SurfaceCreatedFunc is called when a surface session begins, with its
// size in pixels. Display.RenderingAPI is valid from this point.
type SurfaceCreatedFunc func(d *Display, width, height int)

// SurfaceResizedFunc is called with the new size in pixels after a
// rotation, window resize or scale change.
type SurfaceResizedFunc func(d *Display, width, height int)

// SurfaceRefreshFunc asks for a full redraw without new dimensions. The
// render callback runs immediately afterwards.
type SurfaceRefreshFunc func(d *Display)

// SurfaceDestroyedFunc ends a surface session. All graphics resources of
// the session must be released before it returns; the context may already
// be gone.
type SurfaceDestroyedFunc func(d *Display)

// OrientationChangedFunc receives the new interface orientation.
type OrientationChangedFunc func(d *Display, o Orientation)

// MemoryWarningFunc is called when the system is low on memory.
type MemoryWarningFunc func(d *Display)

// AppFocusFunc is called when the app moves to or from the background.
type AppFocusFunc func(d *Display, focused bool)

// TouchFunc receives touch and mouse button events. Return true if the
// event was consumed, false to let the platform handle it.
type TouchFunc func(d *Display, ev TouchEvent) bool

// KeyFunc receives key events. Return true if the event was consumed.
//
// For KeyNavigationBack the return value decides whether the platform's
// default back behavior (exit, pop) runs: false allows it, true
// suppresses it.
type KeyFunc func(d *Display, ev KeyEvent) bool

// CharFunc receives committed text input as NFC-normalized UTF-8.
type CharFunc func(d *Display, text string, mods Modifiers)

// MouseWheelFunc receives wheel events. Return true if consumed.
type MouseWheelFunc func(d *Display, ev WheelEvent) bool

// KeyboardVisibilityChangedFunc is called when the onscreen keyboard is
// shown, hidden or changes its frame.
type KeyboardVisibilityChangedFunc func(d *Display, visible bool, frame Rect)

// SensorFunc receives samples for one sensor.
type SensorFunc func(d *Display, ev SensorEvent)

// EventClass names a callback slot.
type EventClass uint8

const (
	EventRender EventClass = iota
	EventSurfaceError
	EventSurfaceCreated
	EventSurfaceResized
	EventSurfaceRefresh
	EventSurfaceDestroyed
	EventOrientationChanged
	EventMemoryWarning
	EventAppFocus
	EventTouch
	EventKey
	EventChar
	EventMouseWheel
	EventKeyboardVisibilityChanged
	EventSensor
)

var eventClassNames = [...]string{
	EventRender:                    "Render",
	EventSurfaceError:              "SurfaceError",
	EventSurfaceCreated:            "SurfaceCreated",
	EventSurfaceResized:            "SurfaceResized",
	EventSurfaceRefresh:            "SurfaceRefresh",
	EventSurfaceDestroyed:          "SurfaceDestroyed",
	EventOrientationChanged:        "OrientationChanged",
	EventMemoryWarning:             "MemoryWarning",
	EventAppFocus:                  "AppFocus",
	EventTouch:                     "Touch",
	EventKey:                       "Key",
	EventChar:                      "Char",
	EventMouseWheel:                "MouseWheel",
	EventKeyboardVisibilityChanged: "KeyboardVisibilityChanged",
	EventSensor:                    "Sensor",
}

// String returns the class name.
func (c EventClass) String() string {
	if int(c) < len(eventClassNames) {
		return eventClassNames[c]
	}
	return "Unknown"
}

// slot holds at most one callback. The active flag is the disabled
// sentinel: dispatch sites ask the slot, never compare functions to nil.
type slot[F any] struct {
	fn     F
	active bool
}

// replace installs fn and returns whatever was installed before. Callers
// pass active=false only together with the zero F, so an inactive slot
// always yields the zero F.
func (s *slot[F]) replace(fn F, active bool) F {
	prev := s.fn
	s.fn, s.active = fn, active
	return prev
}

func (s *slot[F]) get() (F, bool) {
	return s.fn, s.active
}

// callbacks is the per-display registry: one slot per event class and one
// per sensor.
type callbacks struct {
	render             slot[RenderFunc]
	surfaceError       slot[SurfaceErrorFunc]
	surfaceCreated     slot[SurfaceCreatedFunc]
	surfaceResized     slot[SurfaceResizedFunc]
	surfaceRefresh     slot[SurfaceRefreshFunc]
	surfaceDestroyed   slot[SurfaceDestroyedFunc]
	orientationChanged slot[OrientationChangedFunc]
	memoryWarning      slot[MemoryWarningFunc]
	appFocus           slot[AppFocusFunc]
	touch              slot[TouchFunc]
	key                slot[KeyFunc]
	char               slot[CharFunc]
	mouseWheel         slot[MouseWheelFunc]
	keyboardVisibility slot[KeyboardVisibilityChangedFunc]
	sensors            [sensorCount]slot[SensorFunc]
}

// Installed reports whether a callback occupies the slot for class.
// For EventSensor it reports whether any sensor callback is installed.
func (d *Display) Installed(class EventClass) bool {
	c := &d.callbacks
	switch class {
	case EventRender:
		return c.render.active
	case EventSurfaceError:
		return c.surfaceError.active
	case EventSurfaceCreated:
		return c.surfaceCreated.active
	case EventSurfaceResized:
		return c.surfaceResized.active
	case EventSurfaceRefresh:
		return c.surfaceRefresh.active
	case EventSurfaceDestroyed:
		return c.surfaceDestroyed.active
	case EventOrientationChanged:
		return c.orientationChanged.active
	case EventMemoryWarning:
		return c.memoryWarning.active
	case EventAppFocus:
		return c.appFocus.active
	case EventTouch:
		return c.touch.active
	case EventKey:
		return c.key.active
	case EventChar:
		return c.char.active
	case EventMouseWheel:
		return c.mouseWheel.active
	case EventKeyboardVisibilityChanged:
		return c.keyboardVisibility.active
	case EventSensor:
		for i := range c.sensors {
			if c.sensors[i].active {
				return true
			}
		}
	}
	return false
}

// The setters below install a callback and return the previous one, so a
// caller can wrap an existing handler:
//
//	var next shell.TouchFunc
//	next = d.SetTouchFunc(func(d *shell.Display, ev shell.TouchEvent) bool {
//	    trace(ev)
//	    return next != nil && next(d, ev)
//	})
//
// Passing nil disables the event class.

// SetRenderFunc installs the render callback.
func (d *Display) SetRenderFunc(fn RenderFunc) RenderFunc {
	return d.callbacks.render.replace(fn, fn != nil)
}

// SetSurfaceErrorFunc installs the surface-error callback.
func (d *Display) SetSurfaceErrorFunc(fn SurfaceErrorFunc) SurfaceErrorFunc {
	return d.callbacks.surfaceError.replace(fn, fn != nil)
}

// SetSurfaceCreatedFunc installs the surface-created callback.
func (d *Display) SetSurfaceCreatedFunc(fn SurfaceCreatedFunc) SurfaceCreatedFunc {
	return d.callbacks.surfaceCreated.replace(fn, fn != nil)
}

// SetSurfaceResizedFunc installs the surface-resized callback.
func (d *Display) SetSurfaceResizedFunc(fn SurfaceResizedFunc) SurfaceResizedFunc {
	return d.callbacks.surfaceResized.replace(fn, fn != nil)
}

// SetSurfaceRefreshFunc installs the surface-refresh callback.
func (d *Display) SetSurfaceRefreshFunc(fn SurfaceRefreshFunc) SurfaceRefreshFunc {
	return d.callbacks.surfaceRefresh.replace(fn, fn != nil)
}

// SetSurfaceDestroyedFunc installs the surface-destroyed callback.
func (d *Display) SetSurfaceDestroyedFunc(fn SurfaceDestroyedFunc) SurfaceDestroyedFunc {
	return d.callbacks.surfaceDestroyed.replace(fn, fn != nil)
}

// SetOrientationChangedFunc installs the orientation-changed callback.
func (d *Display) SetOrientationChangedFunc(fn OrientationChangedFunc) OrientationChangedFunc {
	return d.callbacks.orientationChanged.replace(fn, fn != nil)
}

// SetMemoryWarningFunc installs the memory-warning callback.
func (d *Display) SetMemoryWarningFunc(fn MemoryWarningFunc) MemoryWarningFunc {
	return d.callbacks.memoryWarning.replace(fn, fn != nil)
}

// SetAppFocusFunc installs the app-focus callback.
func (d *Display) SetAppFocusFunc(fn AppFocusFunc) AppFocusFunc {
	return d.callbacks.appFocus.replace(fn, fn != nil)
}

// SetTouchFunc installs the touch and mouse button callback.
func (d *Display) SetTouchFunc(fn TouchFunc) TouchFunc {
	return d.callbacks.touch.replace(fn, fn != nil)
}

// SetKeyFunc installs the key callback.
func (d *Display) SetKeyFunc(fn KeyFunc) KeyFunc {
	return d.callbacks.key.replace(fn, fn != nil)
}

// SetCharFunc installs the character input callback.
func (d *Display) SetCharFunc(fn CharFunc) CharFunc {
	return d.callbacks.char.replace(fn, fn != nil)
}

// SetMouseWheelFunc installs the mouse wheel callback.
func (d *Display) SetMouseWheelFunc(fn MouseWheelFunc) MouseWheelFunc {
	return d.callbacks.mouseWheel.replace(fn, fn != nil)
}

// SetKeyboardVisibilityChangedFunc installs the keyboard visibility
// callback.
func (d *Display) SetKeyboardVisibilityChangedFunc(fn KeyboardVisibilityChangedFunc) KeyboardVisibilityChangedFunc {
	return d.callbacks.keyboardVisibility.replace(fn, fn != nil)
}
