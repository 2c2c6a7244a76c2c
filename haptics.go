package shell

// HapticStyle is the strength of a haptic feedback request.
type HapticStyle uint8

const (
	HapticLight HapticStyle = iota
	HapticMedium
	HapticHeavy
)

// String returns the style name.
func (s HapticStyle) String() string {
	switch s {
	case HapticLight:
		return "Light"
	case HapticMedium:
		return "Medium"
	case HapticHeavy:
		return "Heavy"
	default:
		return "Unknown"
	}
}

// IsHapticFeedbackSupported reports whether the host can perform haptic
// feedback. It is false when the host has no HapticEngine.
func (d *Display) IsHapticFeedbackSupported() bool {
	h, ok := d.host.(HapticEngine)
	return ok && h.HapticFeedbackSupported()
}

// PerformHapticFeedback asks the host for a fire-and-forget haptic pulse.
// Without support the call is a silent no-op.
func (d *Display) PerformHapticFeedback(style HapticStyle) {
	if d.state == StateTerminated || !d.IsHapticFeedbackSupported() {
		return
	}
	d.host.(HapticEngine).PerformHapticFeedback(style)
}
