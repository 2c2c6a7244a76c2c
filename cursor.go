package shell

// Cursor is the mouse cursor shape on hosts that have a mouse.
type Cursor uint8

const (
	// CursorAuto lets the host pick the cursor.
	CursorAuto Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorDefault is the platform arrow.
	CursorDefault
	// CursorPointer is the hand used over links.
	CursorPointer
	// CursorCrosshair is a precise crosshair.
	CursorCrosshair
	// CursorText is the I-beam used over editable text.
	CursorText
)

// String returns the cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorAuto:
		return "Auto"
	case CursorNone:
		return "None"
	case CursorDefault:
		return "Default"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorText:
		return "Text"
	default:
		return "Unknown"
	}
}
