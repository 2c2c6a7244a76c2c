package shell

import "strings"

// Orientation is a single interface orientation.
// The zero value is OrientationUnknown.
type Orientation uint8

const (
	// OrientationUnknown means the host cannot determine the orientation,
	// for example a desktop window or a device lying flat.
	OrientationUnknown Orientation = 0

	// OrientationPortrait is the upright portrait orientation.
	OrientationPortrait Orientation = 1 << 0

	// OrientationPortraitUpsideDown is the rotated-180 portrait orientation.
	OrientationPortraitUpsideDown Orientation = 1 << 1

	// OrientationLandscapeLeft is landscape with the top edge on the left.
	OrientationLandscapeLeft Orientation = 1 << 2

	// OrientationLandscapeRight is landscape with the top edge on the right.
	OrientationLandscapeRight Orientation = 1 << 3
)

var orientationOrder = [...]Orientation{
	OrientationPortrait,
	OrientationPortraitUpsideDown,
	OrientationLandscapeLeft,
	OrientationLandscapeRight,
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationUnknown:
		return "Unknown"
	case OrientationPortrait:
		return "Portrait"
	case OrientationPortraitUpsideDown:
		return "PortraitUpsideDown"
	case OrientationLandscapeLeft:
		return "LandscapeLeft"
	case OrientationLandscapeRight:
		return "LandscapeRight"
	default:
		return "Invalid"
	}
}

// Valid reports whether o is OrientationUnknown or exactly one concrete
// orientation.
func (o Orientation) Valid() bool {
	return o == OrientationUnknown || (o&(o-1) == 0 && Orientations(o)&OrientationsAll == Orientations(o))
}

// IsPortrait reports whether o is one of the portrait orientations.
func (o Orientation) IsPortrait() bool {
	return o == OrientationPortrait || o == OrientationPortraitUpsideDown
}

// IsLandscape reports whether o is one of the landscape orientations.
func (o Orientation) IsLandscape() bool {
	return o == OrientationLandscapeLeft || o == OrientationLandscapeRight
}

// Orientations is a set of orientations, stored as a bitmask so that
// intersections with device capability are a single AND.
type Orientations uint8

const (
	// OrientationsNone is the empty set.
	OrientationsNone Orientations = 0

	// OrientationsPortrait contains only upright portrait.
	OrientationsPortrait = Orientations(OrientationPortrait)

	// OrientationsLandscape contains both landscape orientations.
	OrientationsLandscape = Orientations(OrientationLandscapeLeft | OrientationLandscapeRight)

	// OrientationsAll contains every orientation.
	OrientationsAll = Orientations(OrientationPortrait | OrientationPortraitUpsideDown |
		OrientationLandscapeLeft | OrientationLandscapeRight)

	// OrientationsAllButUpsideDown excludes PortraitUpsideDown, the usual
	// choice on phones.
	OrientationsAllButUpsideDown = OrientationsAll &^ Orientations(OrientationPortraitUpsideDown)
)

// OrientationsOf builds a set from individual orientations.
// OrientationUnknown contributes nothing.
func OrientationsOf(os ...Orientation) Orientations {
	var s Orientations
	for _, o := range os {
		s |= Orientations(o)
	}
	return s & OrientationsAll
}

// Contains reports whether o is a member of s.
// OrientationUnknown is never a member.
func (s Orientations) Contains(o Orientation) bool {
	return o != OrientationUnknown && s&Orientations(o) == Orientations(o)
}

// Intersects reports whether s and t share at least one orientation.
func (s Orientations) Intersects(t Orientations) bool {
	return s&t != 0
}

// Intersect returns the orientations present in both s and t.
func (s Orientations) Intersect(t Orientations) Orientations {
	return s & t
}

// Union returns the orientations present in either s or t.
func (s Orientations) Union(t Orientations) Orientations {
	return (s | t) & OrientationsAll
}

// IsEmpty reports whether the set has no members.
func (s Orientations) IsEmpty() bool {
	return s&OrientationsAll == 0
}

// Values returns the members of s in declaration order.
func (s Orientations) Values() []Orientation {
	var out []Orientation
	for _, o := range orientationOrder {
		if s.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}

// String lists the members separated by "|".
func (s Orientations) String() string {
	vals := s.Values()
	if len(vals) == 0 {
		return "None"
	}
	parts := make([]string, len(vals))
	for i, o := range vals {
		parts[i] = o.String()
	}
	return strings.Join(parts, "|")
}

// ResolveOrientations returns the orientations the host may actually use:
// the intersection of what the application requested and what the device
// supports.
func ResolveOrientations(requested, device Orientations) Orientations {
	return requested.Intersect(device) & OrientationsAll
}
