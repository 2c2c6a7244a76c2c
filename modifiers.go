package shell

import "strings"

// Modifiers is the set of modifier keys held during a key, touch or wheel
// event. It is independent of the key code: a Shift+A press reports KeyA
// with ModShift, never a separate shifted key.
type Modifiers uint8

const (
	// ModShift is either Shift key.
	ModShift Modifiers = 1 << iota

	// ModCtrl is either Control key.
	ModCtrl

	// ModAlt is either Alt key (Option on Apple platforms).
	ModAlt

	// ModMeta is either Meta key (Command on Apple platforms).
	ModMeta

	// ModFunction is the Fn key on Apple keyboards.
	ModFunction

	modAll = ModShift | ModCtrl | ModAlt | ModMeta | ModFunction
)

var modifierNames = [...]struct {
	mod  Modifiers
	name string
}{
	{ModShift, "Shift"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModMeta, "Meta"},
	{ModFunction, "Function"},
}

// ModifiersFrom builds a set from individual held-key flags, the shape most
// platform event structs report them in.
func ModifiersFrom(shift, ctrl, alt, meta, function bool) Modifiers {
	var m Modifiers
	if shift {
		m |= ModShift
	}
	if ctrl {
		m |= ModCtrl
	}
	if alt {
		m |= ModAlt
	}
	if meta {
		m |= ModMeta
	}
	if function {
		m |= ModFunction
	}
	return m
}

// Contains reports whether every modifier in o is held in m.
func (m Modifiers) Contains(o Modifiers) bool {
	return m&o == o
}

// Intersects reports whether any modifier in o is held in m.
func (m Modifiers) Intersects(o Modifiers) bool {
	return m&o != 0
}

// String lists the held modifiers separated by "+".
func (m Modifiers) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}
