package shell

import "github.com/gogpu/gputypes"

// ColorFormat is the requested color buffer format.
type ColorFormat uint8

const (
	// ColorFormatRGBA8888 is 8 bits per channel with alpha.
	ColorFormatRGBA8888 ColorFormat = iota

	// ColorFormatRGB565 is 16-bit color without alpha.
	ColorFormatRGB565
)

// String returns the format name.
func (f ColorFormat) String() string {
	switch f {
	case ColorFormatRGBA8888:
		return "RGBA8888"
	case ColorFormatRGB565:
		return "RGB565"
	default:
		return "Unknown"
	}
}

// TextureFormat returns the equivalent gputypes format. RGB565 has no
// WebGPU counterpart, in which case ok is false.
func (f ColorFormat) TextureFormat() (format gputypes.TextureFormat, ok bool) {
	switch f {
	case ColorFormatRGBA8888:
		return gputypes.TextureFormatRGBA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// DepthFormat is the requested depth buffer format.
type DepthFormat uint8

const (
	// DepthFormatNone requests no depth buffer.
	DepthFormatNone DepthFormat = iota

	// DepthFormat16 requests a 16-bit depth buffer.
	DepthFormat16

	// DepthFormat24 requests a 24-bit depth buffer.
	DepthFormat24
)

// String returns the format name.
func (f DepthFormat) String() string {
	switch f {
	case DepthFormatNone:
		return "None"
	case DepthFormat16:
		return "Depth16"
	case DepthFormat24:
		return "Depth24"
	default:
		return "Unknown"
	}
}

// StencilFormat is the requested stencil buffer format.
type StencilFormat uint8

const (
	// StencilFormatNone requests no stencil buffer.
	StencilFormatNone StencilFormat = iota

	// StencilFormat8 requests an 8-bit stencil buffer.
	StencilFormat8
)

// String returns the format name.
func (f StencilFormat) String() string {
	switch f {
	case StencilFormatNone:
		return "None"
	case StencilFormat8:
		return "Stencil8"
	default:
		return "Unknown"
	}
}

// DepthStencilFormat combines a depth and a stencil request into the
// gputypes attachment format. A 16-bit depth buffer paired with stencil is
// promoted to Depth24PlusStencil8 since no packed 16+8 format exists.
func DepthStencilFormat(depth DepthFormat, stencil StencilFormat) gputypes.TextureFormat {
	hasStencil := stencil == StencilFormat8
	switch {
	case depth == DepthFormatNone && !hasStencil:
		return gputypes.TextureFormatUndefined
	case depth == DepthFormatNone:
		return gputypes.TextureFormatStencil8
	case hasStencil:
		return gputypes.TextureFormatDepth24PlusStencil8
	case depth == DepthFormat16:
		return gputypes.TextureFormatDepth16Unorm
	default:
		return gputypes.TextureFormatDepth24Plus
	}
}

// Multisample is the requested multisample anti-aliasing mode.
type Multisample uint8

const (
	// MultisampleNone disables multisampling.
	MultisampleNone Multisample = iota

	// Multisample4X requests 4x multisampling.
	Multisample4X
)

// String returns the mode name.
func (m Multisample) String() string {
	switch m {
	case MultisampleNone:
		return "None"
	case Multisample4X:
		return "4X"
	default:
		return "Unknown"
	}
}

// SampleCount returns the number of samples per pixel.
func (m Multisample) SampleCount() uint32 {
	if m == Multisample4X {
		return 4
	}
	return 1
}

// SwapBehavior is a hint for what happens to the back buffer after a swap.
// Only hosts with configurable EGL surfaces honor it.
type SwapBehavior uint8

const (
	// SwapBehaviorPlatformDefault leaves the choice to the platform.
	SwapBehaviorPlatformDefault SwapBehavior = iota

	// SwapBehaviorBufferDestroyed allows the buffer to be discarded.
	SwapBehaviorBufferDestroyed

	// SwapBehaviorBufferPreserved keeps the buffer contents across swaps.
	SwapBehaviorBufferPreserved
)

// String returns the behavior name.
func (b SwapBehavior) String() string {
	switch b {
	case SwapBehaviorPlatformDefault:
		return "PlatformDefault"
	case SwapBehaviorBufferDestroyed:
		return "BufferDestroyed"
	case SwapBehaviorBufferPreserved:
		return "BufferPreserved"
	default:
		return "Unknown"
	}
}
