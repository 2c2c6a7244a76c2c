package shell

import (
	"strconv"
	"unicode"
)

// Key is a physical key normalized to one enumeration shared by every
// host. Values 0x00-0x7F mirror ASCII (letters use the uppercase code) so
// that character-class checks work directly on the code; non-printable
// keys such as modifiers, navigation, numpad and function keys occupy the
// 0x80-0xFF band.
type Key uint16

// Key codes. The ASCII band is stable; the 0x80+ band may grow.
const (
	KeyUnknown Key = 0x00

	KeyBackspace    Key = 0x08 // Apple: Delete
	KeyTab          Key = 0x09
	KeyEnter        Key = 0x0D // Apple: Return
	KeyEscape       Key = 0x1B
	KeySpace        Key = 0x20
	KeyQuote        Key = 0x27
	KeyComma        Key = 0x2C
	KeyMinus        Key = 0x2D
	KeyPeriod       Key = 0x2E
	KeySlash        Key = 0x2F
	KeyDigit0       Key = 0x30
	KeyDigit1       Key = 0x31
	KeyDigit2       Key = 0x32
	KeyDigit3       Key = 0x33
	KeyDigit4       Key = 0x34
	KeyDigit5       Key = 0x35
	KeyDigit6       Key = 0x36
	KeyDigit7       Key = 0x37
	KeyDigit8       Key = 0x38
	KeyDigit9       Key = 0x39
	KeySemicolon    Key = 0x3B
	KeyEqual        Key = 0x3D
	KeyA            Key = 0x41
	KeyB            Key = 0x42
	KeyC            Key = 0x43
	KeyD            Key = 0x44
	KeyE            Key = 0x45
	KeyF            Key = 0x46
	KeyG            Key = 0x47
	KeyH            Key = 0x48
	KeyI            Key = 0x49
	KeyJ            Key = 0x4A
	KeyK            Key = 0x4B
	KeyL            Key = 0x4C
	KeyM            Key = 0x4D
	KeyN            Key = 0x4E
	KeyO            Key = 0x4F
	KeyP            Key = 0x50
	KeyQ            Key = 0x51
	KeyR            Key = 0x52
	KeyS            Key = 0x53
	KeyT            Key = 0x54
	KeyU            Key = 0x55
	KeyV            Key = 0x56
	KeyW            Key = 0x57
	KeyX            Key = 0x58
	KeyY            Key = 0x59
	KeyZ            Key = 0x5A
	KeyBracketLeft  Key = 0x5B
	KeyBackslash    Key = 0x5C
	KeyBracketRight Key = 0x5D
	KeyBackquote    Key = 0x60 // grave accent
	KeyDelete       Key = 0x7F // Apple: forward delete

	KeyCapsLock     Key = 0x80
	KeyShiftLeft    Key = 0x81
	KeyShiftRight   Key = 0x82
	KeyControlLeft  Key = 0x83
	KeyControlRight Key = 0x84
	KeyAltLeft      Key = 0x85 // Apple: Option
	KeyAltRight     Key = 0x86 // Apple: Option
	KeyMetaLeft     Key = 0x87 // Apple: Command
	KeyMetaRight    Key = 0x88 // Apple: Command
	KeyMenu         Key = 0x89 // context menu key

	KeyInsert     Key = 0x90
	KeyPageUp     Key = 0x91
	KeyPageDown   Key = 0x92
	KeyEnd        Key = 0x93
	KeyHome       Key = 0x94
	KeyArrowLeft  Key = 0x95
	KeyArrowUp    Key = 0x96
	KeyArrowRight Key = 0x97
	KeyArrowDown  Key = 0x98

	KeyPower       Key = 0x99
	KeyFunction    Key = 0x9A // Apple: Fn
	KeyPrintScreen Key = 0x9B // SysRq
	KeyScrollLock  Key = 0x9C
	KeyPause       Key = 0x9D // Break

	KeyNumLock        Key = 0xA0 // Apple: Clear
	KeyNumpadDecimal  Key = 0xA1
	KeyNumpadMultiply Key = 0xA2
	KeyNumpadAdd      Key = 0xA3
	KeyNumpadDivide   Key = 0xA4
	KeyNumpadEnter    Key = 0xA5
	KeyNumpadSubtract Key = 0xA6
	KeyNumpadEqual    Key = 0xA7

	KeyNumpad0 Key = 0xB0
	KeyNumpad1 Key = 0xB1
	KeyNumpad2 Key = 0xB2
	KeyNumpad3 Key = 0xB3
	KeyNumpad4 Key = 0xB4
	KeyNumpad5 Key = 0xB5
	KeyNumpad6 Key = 0xB6
	KeyNumpad7 Key = 0xB7
	KeyNumpad8 Key = 0xB8
	KeyNumpad9 Key = 0xB9

	KeyF1  Key = 0xC1
	KeyF2  Key = 0xC2
	KeyF3  Key = 0xC3
	KeyF4  Key = 0xC4
	KeyF5  Key = 0xC5
	KeyF6  Key = 0xC6
	KeyF7  Key = 0xC7
	KeyF8  Key = 0xC8
	KeyF9  Key = 0xC9
	KeyF10 Key = 0xD0
	KeyF11 Key = 0xD1
	KeyF12 Key = 0xD2
	KeyF13 Key = 0xD3
	KeyF14 Key = 0xD4
	KeyF15 Key = 0xD5
	KeyF16 Key = 0xD6
	KeyF17 Key = 0xD7
	KeyF18 Key = 0xD8
	KeyF19 Key = 0xD9
	KeyF20 Key = 0xDA
	KeyF21 Key = 0xDB
	KeyF22 Key = 0xDC
	KeyF23 Key = 0xDD
	KeyF24 Key = 0xDE

	KeyNavigationBack Key = 0xE0 // Android back, tvOS Menu
	KeyMediaSelect    Key = 0xE1 // tvOS
	KeyMediaPlayPause Key = 0xE2 // tvOS

	keyASCIIMax Key = 0x7F
)

// KeyAction is what happened to a key.
type KeyAction uint8

const (
	// KeyActionPressed is the initial press.
	KeyActionPressed KeyAction = iota
	// KeyActionRepeated is an auto-repeat while held.
	KeyActionRepeated
	// KeyActionReleased is the release.
	KeyActionReleased
)

// String returns the action name.
func (a KeyAction) String() string {
	switch a {
	case KeyActionPressed:
		return "Pressed"
	case KeyActionRepeated:
		return "Repeated"
	case KeyActionReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// KeyEvent is a normalized key event. Some hosts (iOS) only report
// presses and no modifiers.
type KeyEvent struct {
	Key       Key
	Action    KeyAction
	Modifiers Modifiers
}

// String returns the key name, or "Key(0x..)" for codes outside the table.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(0x" + strconv.FormatUint(uint64(k), 16) + ")"
}

// IsASCII reports whether the key lives in the ASCII band.
func (k Key) IsASCII() bool {
	return k != KeyUnknown && k <= keyASCIIMax
}

// IsPrintable reports whether the key produces a printable ASCII
// character when pressed without modifiers.
func (k Key) IsPrintable() bool {
	return k >= KeySpace && k < KeyDelete
}

// IsLetter reports whether the key is A-Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether the key is a top-row digit.
func (k Key) IsDigit() bool {
	return k >= KeyDigit0 && k <= KeyDigit9
}

// IsModifier reports whether the key is itself a modifier key.
func (k Key) IsModifier() bool {
	return (k >= KeyShiftLeft && k <= KeyMetaRight) || k == KeyFunction
}

// Modifier returns the modifier flag a modifier key contributes, or zero.
func (k Key) Modifier() Modifiers {
	switch k {
	case KeyShiftLeft, KeyShiftRight:
		return ModShift
	case KeyControlLeft, KeyControlRight:
		return ModCtrl
	case KeyAltLeft, KeyAltRight:
		return ModAlt
	case KeyMetaLeft, KeyMetaRight:
		return ModMeta
	case KeyFunction:
		return ModFunction
	default:
		return 0
	}
}

// Rune returns the ASCII character for a printable key. Letters map to
// their uppercase form.
func (k Key) Rune() (rune, bool) {
	if !k.IsPrintable() {
		return 0, false
	}
	return rune(k), true
}

// KeyFromRune returns the key whose code matches r. Lowercase letters map
// to the uppercase key. It returns KeyUnknown for runes with no key of
// their own, such as shifted symbols.
func KeyFromRune(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r = unicode.ToUpper(r)
	}
	if r < 0 || r > rune(keyASCIIMax) {
		return KeyUnknown
	}
	k := Key(r)
	if _, ok := keyNames[k]; !ok {
		return KeyUnknown
	}
	return k
}

var keyNames = map[Key]string{
	KeyUnknown:        "Unknown",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeyEnter:          "Enter",
	KeyEscape:         "Escape",
	KeySpace:          "Space",
	KeyQuote:          "Quote",
	KeyComma:          "Comma",
	KeyMinus:          "Minus",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyDigit0:         "Digit0",
	KeyDigit1:         "Digit1",
	KeyDigit2:         "Digit2",
	KeyDigit3:         "Digit3",
	KeyDigit4:         "Digit4",
	KeyDigit5:         "Digit5",
	KeyDigit6:         "Digit6",
	KeyDigit7:         "Digit7",
	KeyDigit8:         "Digit8",
	KeyDigit9:         "Digit9",
	KeySemicolon:      "Semicolon",
	KeyEqual:          "Equal",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyBracketLeft:    "BracketLeft",
	KeyBackslash:      "Backslash",
	KeyBracketRight:   "BracketRight",
	KeyBackquote:      "Backquote",
	KeyDelete:         "Delete",
	KeyCapsLock:       "CapsLock",
	KeyShiftLeft:      "ShiftLeft",
	KeyShiftRight:     "ShiftRight",
	KeyControlLeft:    "ControlLeft",
	KeyControlRight:   "ControlRight",
	KeyAltLeft:        "AltLeft",
	KeyAltRight:       "AltRight",
	KeyMetaLeft:       "MetaLeft",
	KeyMetaRight:      "MetaRight",
	KeyMenu:           "Menu",
	KeyInsert:         "Insert",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyEnd:            "End",
	KeyHome:           "Home",
	KeyArrowLeft:      "ArrowLeft",
	KeyArrowUp:        "ArrowUp",
	KeyArrowRight:     "ArrowRight",
	KeyArrowDown:      "ArrowDown",
	KeyPower:          "Power",
	KeyFunction:       "Function",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyNumLock:        "NumLock",
	KeyNumpadDecimal:  "NumpadDecimal",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadEnter:    "NumpadEnter",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadEqual:    "NumpadEqual",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyF16:            "F16",
	KeyF17:            "F17",
	KeyF18:            "F18",
	KeyF19:            "F19",
	KeyF20:            "F20",
	KeyF21:            "F21",
	KeyF22:            "F22",
	KeyF23:            "F23",
	KeyF24:            "F24",
	KeyNavigationBack: "NavigationBack",
	KeyMediaSelect:    "MediaSelect",
	KeyMediaPlayPause: "MediaPlayPause",
}
