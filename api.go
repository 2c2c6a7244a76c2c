package shell

import (
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
)

// RenderingAPI identifies a rendering capability tier.
type RenderingAPI uint8

const (
	// RenderingAPIUnknown is the "not yet determined" value returned by
	// Display.RenderingAPI before the first surface is created.
	RenderingAPIUnknown RenderingAPI = iota

	// RenderingAPIGLES2 is OpenGL ES 2.0 (WebGL 1 in browsers).
	RenderingAPIGLES2

	// RenderingAPIGLES3 is OpenGL ES 3.0 (WebGL 2 in browsers).
	RenderingAPIGLES3

	// RenderingAPIGLES31 is OpenGL ES 3.1.
	RenderingAPIGLES31

	// RenderingAPIGLES32 is OpenGL ES 3.2.
	RenderingAPIGLES32

	// RenderingAPIMetal is Apple Metal. Presentation of the drawable is
	// owned by the application, so SwapBuffers does not reach the host.
	RenderingAPIMetal

	renderingAPICount
)

// String returns the rendering API name.
func (a RenderingAPI) String() string {
	switch a {
	case RenderingAPIUnknown:
		return "Unknown"
	case RenderingAPIGLES2:
		return "GLES2"
	case RenderingAPIGLES3:
		return "GLES3"
	case RenderingAPIGLES31:
		return "GLES31"
	case RenderingAPIGLES32:
		return "GLES32"
	case RenderingAPIMetal:
		return "Metal"
	default:
		return "RenderingAPI(" + strconv.Itoa(int(a)) + ")"
	}
}

// Backend returns the gputypes backend that implements this tier.
func (a RenderingAPI) Backend() gputypes.Backend {
	switch a {
	case RenderingAPIGLES2, RenderingAPIGLES3, RenderingAPIGLES31, RenderingAPIGLES32:
		return gputypes.BackendGL
	case RenderingAPIMetal:
		return gputypes.BackendMetal
	default:
		return gputypes.BackendEmpty
	}
}

// presentsExternally reports whether frames are presented by application
// code rather than by a host buffer swap.
func (a RenderingAPI) presentsExternally() bool {
	return a == RenderingAPIMetal
}

// degradeOrder returns the fixed fallback sequence starting at a.
// Metal degrades to OpenGL ES 3.0 because it is the highest GLES tier
// available on Apple platforms.
func (a RenderingAPI) degradeOrder() []RenderingAPI {
	switch a {
	case RenderingAPIMetal:
		return []RenderingAPI{RenderingAPIMetal, RenderingAPIGLES3, RenderingAPIGLES2}
	case RenderingAPIGLES32:
		return []RenderingAPI{RenderingAPIGLES32, RenderingAPIGLES31, RenderingAPIGLES3, RenderingAPIGLES2}
	case RenderingAPIGLES31:
		return []RenderingAPI{RenderingAPIGLES31, RenderingAPIGLES3, RenderingAPIGLES2}
	case RenderingAPIGLES3:
		return []RenderingAPI{RenderingAPIGLES3, RenderingAPIGLES2}
	case RenderingAPIGLES2:
		return []RenderingAPI{RenderingAPIGLES2}
	default:
		return nil
	}
}

// RenderingAPIs is a set of rendering API tiers.
type RenderingAPIs uint8

// RenderingAPIsOf builds a set from the given tiers.
func RenderingAPIsOf(apis ...RenderingAPI) RenderingAPIs {
	var s RenderingAPIs
	for _, a := range apis {
		if a != RenderingAPIUnknown && a < renderingAPICount {
			s |= 1 << a
		}
	}
	return s
}

// Contains reports whether api is in the set.
func (s RenderingAPIs) Contains(api RenderingAPI) bool {
	if api == RenderingAPIUnknown || api >= renderingAPICount {
		return false
	}
	return s&(1<<api) != 0
}

// String lists the set members separated by "|".
func (s RenderingAPIs) String() string {
	var parts []string
	for a := RenderingAPIGLES2; a < renderingAPICount; a++ {
		if s.Contains(a) {
			parts = append(parts, a.String())
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// ResolveRenderingAPI walks the degrade order starting at preferred and
// returns the first tier in supported. Hosts call it during surface setup;
// the core itself never predicts the result.
func ResolveRenderingAPI(preferred RenderingAPI, supported RenderingAPIs) (RenderingAPI, bool) {
	for _, a := range preferred.degradeOrder() {
		if supported.Contains(a) {
			return a, true
		}
	}
	return RenderingAPIUnknown, false
}
