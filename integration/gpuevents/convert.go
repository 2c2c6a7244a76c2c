// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuevents

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shell"
)

// keys maps shell key codes to gpucontext keys. Keys gpucontext has no code
// for, such as navigation back and the function keys above F12, are absent.
var keys = func() map[shell.Key]gpucontext.Key {
	m := map[shell.Key]gpucontext.Key{
		shell.KeyF1:  gpucontext.KeyF1,
		shell.KeyF2:  gpucontext.KeyF2,
		shell.KeyF3:  gpucontext.KeyF3,
		shell.KeyF4:  gpucontext.KeyF4,
		shell.KeyF5:  gpucontext.KeyF5,
		shell.KeyF6:  gpucontext.KeyF6,
		shell.KeyF7:  gpucontext.KeyF7,
		shell.KeyF8:  gpucontext.KeyF8,
		shell.KeyF9:  gpucontext.KeyF9,
		shell.KeyF10: gpucontext.KeyF10,
		shell.KeyF11: gpucontext.KeyF11,
		shell.KeyF12: gpucontext.KeyF12,

		shell.KeyEscape:     gpucontext.KeyEscape,
		shell.KeyTab:        gpucontext.KeyTab,
		shell.KeyBackspace:  gpucontext.KeyBackspace,
		shell.KeyEnter:      gpucontext.KeyEnter,
		shell.KeySpace:      gpucontext.KeySpace,
		shell.KeyInsert:     gpucontext.KeyInsert,
		shell.KeyDelete:     gpucontext.KeyDelete,
		shell.KeyHome:       gpucontext.KeyHome,
		shell.KeyEnd:        gpucontext.KeyEnd,
		shell.KeyPageUp:     gpucontext.KeyPageUp,
		shell.KeyPageDown:   gpucontext.KeyPageDown,
		shell.KeyArrowLeft:  gpucontext.KeyLeft,
		shell.KeyArrowRight: gpucontext.KeyRight,
		shell.KeyArrowUp:    gpucontext.KeyUp,
		shell.KeyArrowDown:  gpucontext.KeyDown,

		shell.KeyShiftLeft:    gpucontext.KeyLeftShift,
		shell.KeyShiftRight:   gpucontext.KeyRightShift,
		shell.KeyControlLeft:  gpucontext.KeyLeftControl,
		shell.KeyControlRight: gpucontext.KeyRightControl,
		shell.KeyAltLeft:      gpucontext.KeyLeftAlt,
		shell.KeyAltRight:     gpucontext.KeyRightAlt,
		shell.KeyMetaLeft:     gpucontext.KeyLeftSuper,
		shell.KeyMetaRight:    gpucontext.KeyRightSuper,

		shell.KeyMinus:        gpucontext.KeyMinus,
		shell.KeyEqual:        gpucontext.KeyEqual,
		shell.KeyBracketLeft:  gpucontext.KeyLeftBracket,
		shell.KeyBracketRight: gpucontext.KeyRightBracket,
		shell.KeyBackslash:    gpucontext.KeyBackslash,
		shell.KeySemicolon:    gpucontext.KeySemicolon,
		shell.KeyQuote:        gpucontext.KeyApostrophe,
		shell.KeyBackquote:    gpucontext.KeyGrave,
		shell.KeyComma:        gpucontext.KeyComma,
		shell.KeyPeriod:       gpucontext.KeyPeriod,
		shell.KeySlash:        gpucontext.KeySlash,

		shell.KeyNumpadDecimal:  gpucontext.KeyNumpadDecimal,
		shell.KeyNumpadDivide:   gpucontext.KeyNumpadDivide,
		shell.KeyNumpadMultiply: gpucontext.KeyNumpadMultiply,
		shell.KeyNumpadSubtract: gpucontext.KeyNumpadSubtract,
		shell.KeyNumpadAdd:      gpucontext.KeyNumpadAdd,
		shell.KeyNumpadEnter:    gpucontext.KeyNumpadEnter,

		shell.KeyCapsLock:    gpucontext.KeyCapsLock,
		shell.KeyScrollLock:  gpucontext.KeyScrollLock,
		shell.KeyNumLock:     gpucontext.KeyNumLock,
		shell.KeyPrintScreen: gpucontext.KeyPrintScreen,
		shell.KeyPause:       gpucontext.KeyPause,
	}
	// Letters and digits are contiguous in both code spaces.
	for i := range 26 {
		m[shell.KeyA+shell.Key(i)] = gpucontext.KeyA + gpucontext.Key(i)
	}
	for i := range 10 {
		m[shell.KeyDigit0+shell.Key(i)] = gpucontext.Key0 + gpucontext.Key(i)
		m[shell.KeyNumpad0+shell.Key(i)] = gpucontext.KeyNumpad0 + gpucontext.Key(i)
	}
	return m
}()

func key(k shell.Key) gpucontext.Key {
	return keys[k] // KeyUnknown when absent
}

// modifiers drops ModFunction, which gpucontext does not model.
func modifiers(m shell.Modifiers) gpucontext.Modifiers {
	var out gpucontext.Modifiers
	if m.Contains(shell.ModShift) {
		out |= gpucontext.ModShift
	}
	if m.Contains(shell.ModCtrl) {
		out |= gpucontext.ModControl
	}
	if m.Contains(shell.ModAlt) {
		out |= gpucontext.ModAlt
	}
	if m.Contains(shell.ModMeta) {
		out |= gpucontext.ModSuper
	}
	return out
}

func pointerType(p shell.TouchPhase) gpucontext.PointerEventType {
	switch p {
	case shell.TouchPhaseBegan:
		return gpucontext.PointerDown
	case shell.TouchPhaseEnded:
		return gpucontext.PointerUp
	case shell.TouchPhaseCancelled:
		return gpucontext.PointerCancel
	default:
		return gpucontext.PointerMove
	}
}

// button maps a shell mouse button index, which follows the DOM numbering,
// to a gpucontext button.
func button(index int) gpucontext.Button {
	if index < 0 || index > int(gpucontext.ButtonX2) {
		return gpucontext.ButtonNone
	}
	return gpucontext.Button(index)
}

func buttonsOf(b gpucontext.Button) gpucontext.Buttons {
	switch b {
	case gpucontext.ButtonLeft:
		return gpucontext.ButtonsLeft
	case gpucontext.ButtonMiddle:
		return gpucontext.ButtonsMiddle
	case gpucontext.ButtonRight:
		return gpucontext.ButtonsRight
	case gpucontext.ButtonX1:
		return gpucontext.ButtonsX1
	case gpucontext.ButtonX2:
		return gpucontext.ButtonsX2
	default:
		return gpucontext.ButtonsNone
	}
}

func mouseButton(b gpucontext.Button) gpucontext.MouseButton {
	switch b {
	case gpucontext.ButtonRight:
		return gpucontext.MouseButtonRight
	case gpucontext.ButtonMiddle:
		return gpucontext.MouseButtonMiddle
	case gpucontext.ButtonX1:
		return gpucontext.MouseButton4
	case gpucontext.ButtonX2:
		return gpucontext.MouseButton5
	default:
		return gpucontext.MouseButtonLeft
	}
}

func deltaMode(t shell.WheelDeltaType) gpucontext.ScrollDeltaMode {
	switch t {
	case shell.WheelDeltaLine:
		return gpucontext.ScrollDeltaLine
	case shell.WheelDeltaPage:
		return gpucontext.ScrollDeltaPage
	default:
		return gpucontext.ScrollDeltaPixel
	}
}

// cursorFromShape picks the closest shell cursor; resize and wait shapes
// have no mobile or browser-canvas equivalent here and fall back to the
// arrow.
func cursorFromShape(c gpucontext.CursorShape) shell.Cursor {
	switch c {
	case gpucontext.CursorPointer:
		return shell.CursorPointer
	case gpucontext.CursorText:
		return shell.CursorText
	case gpucontext.CursorCrosshair:
		return shell.CursorCrosshair
	case gpucontext.CursorNone:
		return shell.CursorNone
	default:
		return shell.CursorDefault
	}
}
