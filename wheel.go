package shell

// WheelDeltaType is the unit of a mouse wheel delta.
type WheelDeltaType uint8

const (
	// WheelDeltaPixel deltas are in pixels (touchpads, smooth wheels).
	WheelDeltaPixel WheelDeltaType = iota

	// WheelDeltaLine deltas are in text lines (notched wheels).
	WheelDeltaLine

	// WheelDeltaPage deltas are in pages.
	WheelDeltaPage
)

// String returns the unit name.
func (t WheelDeltaType) String() string {
	switch t {
	case WheelDeltaPixel:
		return "Pixel"
	case WheelDeltaLine:
		return "Line"
	case WheelDeltaPage:
		return "Page"
	default:
		return "Unknown"
	}
}

// WheelEvent is a mouse wheel or touchpad scroll.
type WheelEvent struct {
	// X and Y are the pointer location in surface pixels.
	X float64
	Y float64

	// DeltaType is the unit of DeltaX, DeltaY and DeltaZ.
	DeltaType WheelDeltaType

	DeltaX float64
	DeltaY float64
	DeltaZ float64

	// Modifiers held during the scroll.
	Modifiers Modifiers
}

// Pixels converts the deltas to pixels. lineHeight and pageHeight are the
// consumer's own metrics; a pixel delta is returned unchanged.
func (e WheelEvent) Pixels(lineHeight, pageHeight float64) (dx, dy, dz float64) {
	scale := 1.0
	switch e.DeltaType {
	case WheelDeltaLine:
		scale = lineHeight
	case WheelDeltaPage:
		scale = pageHeight
	}
	return e.DeltaX * scale, e.DeltaY * scale, e.DeltaZ * scale
}
