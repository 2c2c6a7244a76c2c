package shell

// TouchPhase is the stage of a touch contact or mouse button.
type TouchPhase uint8

const (
	// TouchPhaseHover is pointer movement with no contact or button held.
	TouchPhaseHover TouchPhase = iota
	// TouchPhaseBegan is a finger down or button press.
	TouchPhaseBegan
	// TouchPhaseMoved is movement while in contact or while held.
	TouchPhaseMoved
	// TouchPhaseEnded is a finger lift or button release.
	TouchPhaseEnded
	// TouchPhaseCancelled means the system took over the contact, for
	// example an incoming call or a system gesture.
	TouchPhaseCancelled
)

// String returns the phase name.
func (p TouchPhase) String() string {
	switch p {
	case TouchPhaseHover:
		return "Hover"
	case TouchPhaseBegan:
		return "Began"
	case TouchPhaseMoved:
		return "Moved"
	case TouchPhaseEnded:
		return "Ended"
	case TouchPhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Ends reports whether the phase terminates a contact.
func (p TouchPhase) Ends() bool {
	return p == TouchPhaseEnded || p == TouchPhaseCancelled
}

// TouchEvent is a touch contact or mouse button event. Touch and mouse share
// one channel: Index 0 is the primary touch or primary mouse button, 1..n
// are further touches or mouse buttons.
type TouchEvent struct {
	// Index is the touch number or mouse button number.
	Index int

	// Phase is the contact stage.
	Phase TouchPhase

	// X and Y are the location in surface pixels.
	X float64
	Y float64

	// Modifiers held at the time of the event, when the host knows them.
	Modifiers Modifiers
}

// IsPrimary reports whether the event belongs to the primary touch or the
// primary mouse button.
func (e TouchEvent) IsPrimary() bool {
	return e.Index == 0
}
