package shell

import "strings"

// domCodes maps browser KeyboardEvent.code values to keys. The code names
// the physical key position, so the mapping is layout independent.
var domCodes = map[string]Key{
	"Backspace":    KeyBackspace,
	"Tab":          KeyTab,
	"Enter":        KeyEnter,
	"Escape":       KeyEscape,
	"Space":        KeySpace,
	"Quote":        KeyQuote,
	"Comma":        KeyComma,
	"Minus":        KeyMinus,
	"Period":       KeyPeriod,
	"Slash":        KeySlash,
	"Semicolon":    KeySemicolon,
	"Equal":        KeyEqual,
	"BracketLeft":  KeyBracketLeft,
	"Backslash":    KeyBackslash,
	"BracketRight": KeyBracketRight,
	"Backquote":    KeyBackquote,
	"Delete":       KeyDelete,

	"CapsLock":     KeyCapsLock,
	"ShiftLeft":    KeyShiftLeft,
	"ShiftRight":   KeyShiftRight,
	"ControlLeft":  KeyControlLeft,
	"ControlRight": KeyControlRight,
	"AltLeft":      KeyAltLeft,
	"AltRight":     KeyAltRight,
	"MetaLeft":     KeyMetaLeft,
	"MetaRight":    KeyMetaRight,
	"OSLeft":       KeyMetaLeft,
	"OSRight":      KeyMetaRight,
	"ContextMenu":  KeyMenu,

	"Insert":     KeyInsert,
	"PageUp":     KeyPageUp,
	"PageDown":   KeyPageDown,
	"End":        KeyEnd,
	"Home":       KeyHome,
	"ArrowLeft":  KeyArrowLeft,
	"ArrowUp":    KeyArrowUp,
	"ArrowRight": KeyArrowRight,
	"ArrowDown":  KeyArrowDown,

	"Power":       KeyPower,
	"Fn":          KeyFunction,
	"PrintScreen": KeyPrintScreen,
	"ScrollLock":  KeyScrollLock,
	"Pause":       KeyPause,

	"NumLock":        KeyNumLock,
	"NumpadDecimal":  KeyNumpadDecimal,
	"NumpadMultiply": KeyNumpadMultiply,
	"NumpadAdd":      KeyNumpadAdd,
	"NumpadDivide":   KeyNumpadDivide,
	"NumpadEnter":    KeyNumpadEnter,
	"NumpadSubtract": KeyNumpadSubtract,
	"NumpadEqual":    KeyNumpadEqual,

	"BrowserBack":       KeyNavigationBack,
	"MediaSelect":       KeyMediaSelect,
	"MediaPlayPause":    KeyMediaPlayPause,
	"LaunchMediaPlayer": KeyMediaSelect,
}

// fKeys are the function keys in order. The codes are not contiguous:
// F10 starts a new block at 0xD0.
var fKeys = [...]Key{
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	KeyF13, KeyF14, KeyF15, KeyF16, KeyF17, KeyF18, KeyF19, KeyF20, KeyF21, KeyF22, KeyF23, KeyF24,
}

// KeyFromDOMCode normalizes a browser KeyboardEvent.code value.
// Unrecognized codes map to KeyUnknown.
func KeyFromDOMCode(code string) Key {
	if k, ok := domCodes[code]; ok {
		return k
	}
	switch {
	case len(code) == 4 && strings.HasPrefix(code, "Key"):
		if c := code[3]; c >= 'A' && c <= 'Z' {
			return Key(c)
		}
	case len(code) == 6 && strings.HasPrefix(code, "Digit"):
		if c := code[5]; c >= '0' && c <= '9' {
			return Key(c)
		}
	case len(code) == 7 && strings.HasPrefix(code, "Numpad"):
		if c := code[6]; c >= '0' && c <= '9' {
			return KeyNumpad0 + Key(c-'0')
		}
	case len(code) >= 2 && code[0] == 'F':
		n := 0
		for _, c := range code[1:] {
			if c < '0' || c > '9' {
				return KeyUnknown
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= len(fKeys) {
			return fKeys[n-1]
		}
	}
	return KeyUnknown
}
