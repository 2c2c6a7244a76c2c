// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuevents

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shell"
)

// Source adapts a shell.Display to the gpucontext event interfaces.
//
// Each On* method replaces the handler for its event; passing nil removes
// it. Source is NOT safe for concurrent use.
type Source struct {
	gpucontext.NullEventSource      // IME composition is not reported by shell hosts
	gpucontext.NullPlatformProvider // clipboard and accessibility queries

	d *shell.Display

	// Callbacks that were installed before Attach.
	prev struct {
		touch     shell.TouchFunc
		key       shell.KeyFunc
		char      shell.CharFunc
		wheel     shell.MouseWheelFunc
		created   shell.SurfaceCreatedFunc
		resized   shell.SurfaceResizedFunc
		focus     shell.AppFocusFunc
		destroyed shell.SurfaceDestroyedFunc
	}

	keyPress     func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease   func(gpucontext.Key, gpucontext.Modifiers)
	textInput    func(string)
	mouseMove    func(x, y float64)
	mousePress   func(gpucontext.MouseButton, float64, float64)
	mouseRelease func(gpucontext.MouseButton, float64, float64)
	scroll       func(dx, dy float64)
	resize       func(width, height int)
	focus        func(bool)
	pointer      func(gpucontext.PointerEvent)
	scrollEvent  func(gpucontext.ScrollEvent)

	// buttons is the set of mouse buttons currently down.
	buttons  gpucontext.Buttons
	attached bool
}

// Attach creates a Source for d and installs its shell callbacks.
func Attach(d *shell.Display) *Source {
	s := &Source{d: d}
	s.prev.touch = d.SetTouchFunc(s.onTouch)
	s.prev.key = d.SetKeyFunc(s.onKey)
	s.prev.char = d.SetCharFunc(s.onChar)
	s.prev.wheel = d.SetMouseWheelFunc(s.onWheel)
	s.prev.created = d.SetSurfaceCreatedFunc(s.onCreated)
	s.prev.resized = d.SetSurfaceResizedFunc(s.onResized)
	s.prev.focus = d.SetAppFocusFunc(s.onFocus)
	s.prev.destroyed = d.SetSurfaceDestroyedFunc(s.onDestroyed)
	s.attached = true
	return s
}

// Detach restores the callbacks that were installed before Attach. It is
// safe to call more than once.
func (s *Source) Detach() {
	if !s.attached {
		return
	}
	d := s.d
	d.SetTouchFunc(s.prev.touch)
	d.SetKeyFunc(s.prev.key)
	d.SetCharFunc(s.prev.char)
	d.SetMouseWheelFunc(s.prev.wheel)
	d.SetSurfaceCreatedFunc(s.prev.created)
	d.SetSurfaceResizedFunc(s.prev.resized)
	d.SetAppFocusFunc(s.prev.focus)
	d.SetSurfaceDestroyedFunc(s.prev.destroyed)
	s.attached = false
	s.buttons = gpucontext.ButtonsNone
}

// Display returns the adapted Display.
func (s *Source) Display() *shell.Display {
	return s.d
}

// OnKeyPress implements gpucontext.EventSource. Repeats are reported as
// presses.
func (s *Source) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { s.keyPress = fn }

// OnKeyRelease implements gpucontext.EventSource.
func (s *Source) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { s.keyRelease = fn }

// OnTextInput implements gpucontext.EventSource.
func (s *Source) OnTextInput(fn func(string)) { s.textInput = fn }

// OnMouseMove implements gpucontext.EventSource. It fires only for mouse
// pointers, never for touches.
func (s *Source) OnMouseMove(fn func(x, y float64)) { s.mouseMove = fn }

// OnMousePress implements gpucontext.EventSource.
func (s *Source) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) { s.mousePress = fn }

// OnMouseRelease implements gpucontext.EventSource.
func (s *Source) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	s.mouseRelease = fn
}

// OnScroll implements gpucontext.EventSource. Deltas are passed in the
// host's unit; use OnScrollEvent to learn the unit.
func (s *Source) OnScroll(fn func(dx, dy float64)) { s.scroll = fn }

// OnResize implements gpucontext.EventSource. It fires when a surface is
// created and when it changes size, with the logical size.
func (s *Source) OnResize(fn func(width, height int)) { s.resize = fn }

// OnFocus implements gpucontext.EventSource.
func (s *Source) OnFocus(fn func(bool)) { s.focus = fn }

// OnPointer implements gpucontext.PointerEventSource.
func (s *Source) OnPointer(fn func(gpucontext.PointerEvent)) { s.pointer = fn }

// OnScrollEvent implements gpucontext.ScrollEventSource.
func (s *Source) OnScrollEvent(fn func(gpucontext.ScrollEvent)) { s.scrollEvent = fn }

// Size implements gpucontext.WindowProvider. It returns the surface size in
// logical pixels, or zero when no surface exists.
func (s *Source) Size() (width, height int) {
	w, h := s.d.Size()
	return s.logicalSize(w, h)
}

// ScaleFactor implements gpucontext.WindowProvider.
func (s *Source) ScaleFactor() float64 {
	return s.d.Scale()
}

// RequestRedraw implements gpucontext.WindowProvider. shell hosts render
// every frame, so this does nothing.
func (s *Source) RequestRedraw() {}

// SetCursor implements gpucontext.PlatformProvider.
func (s *Source) SetCursor(c gpucontext.CursorShape) {
	s.d.SetMouseCursor(cursorFromShape(c))
}

func (s *Source) logical(v float64) float64 {
	if sc := s.d.Scale(); sc > 0 {
		return v / sc
	}
	return v
}

func (s *Source) logicalSize(w, h int) (int, int) {
	sc := s.d.Scale()
	if sc <= 0 || sc == 1 {
		return w, h
	}
	return int(float64(w) / sc), int(float64(h) / sc)
}

func (s *Source) onTouch(d *shell.Display, ev shell.TouchEvent) bool {
	handled := s.prev.touch != nil && s.prev.touch(d, ev)
	pe := s.pointerEvent(ev)

	if pe.PointerType == gpucontext.PointerTypeMouse {
		handled = s.dispatchMouse(pe) || handled
	}
	if s.pointer != nil {
		s.pointer(pe)
		handled = true
	}
	return handled
}

// pointerEvent converts ev and updates the held mouse button set.
func (s *Source) pointerEvent(ev shell.TouchEvent) gpucontext.PointerEvent {
	pe := gpucontext.PointerEvent{
		Type:      pointerType(ev.Phase),
		PointerID: ev.Index,
		X:         s.logical(ev.X),
		Y:         s.logical(ev.Y),
		IsPrimary: ev.IsPrimary(),
		Button:    gpucontext.ButtonNone,
		Modifiers: modifiers(ev.Modifiers),
		Timestamp: shell.Now(),
	}

	if s.d.HasTouch() {
		// Each contact is its own pointer holding the primary button.
		pe.PointerType = gpucontext.PointerTypeTouch
		pe.Width, pe.Height = 1, 1
		switch ev.Phase {
		case shell.TouchPhaseBegan:
			pe.Button, pe.Buttons, pe.Pressure = gpucontext.ButtonLeft, gpucontext.ButtonsLeft, 0.5
		case shell.TouchPhaseMoved:
			pe.Buttons, pe.Pressure = gpucontext.ButtonsLeft, 0.5
		case shell.TouchPhaseEnded, shell.TouchPhaseCancelled:
			pe.Button = gpucontext.ButtonLeft
		}
		return pe
	}

	// Mouse buttons share one pointer whose held set spans all buttons.
	pe.PointerType = gpucontext.PointerTypeMouse
	pe.PointerID, pe.IsPrimary = 0, true
	b := button(ev.Index)
	switch ev.Phase {
	case shell.TouchPhaseBegan:
		s.buttons |= buttonsOf(b)
		pe.Button = b
	case shell.TouchPhaseEnded, shell.TouchPhaseCancelled:
		s.buttons &^= buttonsOf(b)
		pe.Button = b
	}
	pe.Buttons = s.buttons
	return pe
}

func (s *Source) dispatchMouse(pe gpucontext.PointerEvent) bool {
	switch pe.Type {
	case gpucontext.PointerDown:
		if s.mousePress != nil {
			s.mousePress(mouseButton(pe.Button), pe.X, pe.Y)
			return true
		}
	case gpucontext.PointerUp, gpucontext.PointerCancel:
		if s.mouseRelease != nil {
			s.mouseRelease(mouseButton(pe.Button), pe.X, pe.Y)
			return true
		}
	case gpucontext.PointerMove:
		if s.mouseMove != nil {
			s.mouseMove(pe.X, pe.Y)
			return true
		}
	}
	return false
}

func (s *Source) onKey(d *shell.Display, ev shell.KeyEvent) bool {
	handled := s.prev.key != nil && s.prev.key(d, ev)
	k := key(ev.Key)
	if k == gpucontext.KeyUnknown {
		// Navigation and media keys have no gpucontext code; leaving them
		// unhandled keeps the platform default, such as back navigation.
		return handled
	}
	mods := modifiers(ev.Modifiers)
	switch ev.Action {
	case shell.KeyActionPressed, shell.KeyActionRepeated:
		if s.keyPress != nil {
			s.keyPress(k, mods)
			handled = true
		}
	case shell.KeyActionReleased:
		if s.keyRelease != nil {
			s.keyRelease(k, mods)
			handled = true
		}
	}
	return handled
}

func (s *Source) onChar(d *shell.Display, text string, mods shell.Modifiers) {
	if s.prev.char != nil {
		s.prev.char(d, text, mods)
	}
	if s.textInput != nil {
		s.textInput(text)
	}
}

func (s *Source) onWheel(d *shell.Display, ev shell.WheelEvent) bool {
	handled := s.prev.wheel != nil && s.prev.wheel(d, ev)
	if s.scroll != nil {
		s.scroll(ev.DeltaX, ev.DeltaY)
		handled = true
	}
	if s.scrollEvent != nil {
		s.scrollEvent(gpucontext.ScrollEvent{
			X:         s.logical(ev.X),
			Y:         s.logical(ev.Y),
			DeltaX:    ev.DeltaX,
			DeltaY:    ev.DeltaY,
			DeltaMode: deltaMode(ev.DeltaType),
			Modifiers: modifiers(ev.Modifiers),
			Timestamp: shell.Now(),
		})
		handled = true
	}
	return handled
}

func (s *Source) onCreated(d *shell.Display, width, height int) {
	if s.prev.created != nil {
		s.prev.created(d, width, height)
	}
	s.emitResize(width, height)
}

func (s *Source) onResized(d *shell.Display, width, height int) {
	if s.prev.resized != nil {
		s.prev.resized(d, width, height)
	}
	s.emitResize(width, height)
}

func (s *Source) emitResize(width, height int) {
	if s.resize != nil {
		s.resize(s.logicalSize(width, height))
	}
}

func (s *Source) onFocus(d *shell.Display, focused bool) {
	if s.prev.focus != nil {
		s.prev.focus(d, focused)
	}
	if !focused {
		s.buttons = gpucontext.ButtonsNone
	}
	if s.focus != nil {
		s.focus(focused)
	}
}

// onDestroyed forgets held buttons; contacts do not survive the surface.
func (s *Source) onDestroyed(d *shell.Display) {
	if s.prev.destroyed != nil {
		s.prev.destroyed(d)
	}
	s.buttons = gpucontext.ButtonsNone
}

var (
	_ gpucontext.EventSource        = (*Source)(nil)
	_ gpucontext.PointerEventSource = (*Source)(nil)
	_ gpucontext.ScrollEventSource  = (*Source)(nil)
	_ gpucontext.WindowProvider     = (*Source)(nil)
	_ gpucontext.PlatformProvider   = (*Source)(nil)
)
