package shell

// Chrome selects how much system UI (status bar, navigation bar, browser
// frame) surrounds the rendering surface.
type Chrome uint8

const (
	// ChromeNavigation shows the navigation bar (home indicator on iOS).
	ChromeNavigation Chrome = iota

	// ChromeNavigationAndStatusBar shows both the navigation and status
	// bars. This is the default.
	ChromeNavigationAndStatusBar

	// ChromeFullscreen hides system UI. In browsers the request must be
	// made from inside a user-generated event handler.
	ChromeFullscreen
)

// String returns the chrome mode name.
func (c Chrome) String() string {
	switch c {
	case ChromeNavigation:
		return "Navigation"
	case ChromeNavigationAndStatusBar:
		return "NavigationAndStatusBar"
	case ChromeFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// Insets are the distances, in pixels, that system chrome occupies on each
// edge of the surface (the "safe area" on iOS).
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
