package shell

// SurfaceConfig is the requested surface setup. The host reads it once
// while creating a surface; see Display.Config.
type SurfaceConfig struct {
	// RenderingAPI is the preferred tier. If the device lacks it, the host
	// degrades to the next tier (see ResolveRenderingAPI).
	RenderingAPI  RenderingAPI
	ColorFormat   ColorFormat
	DepthFormat   DepthFormat
	StencilFormat StencilFormat
	Multisample   Multisample
	SwapBehavior  SwapBehavior
}

// DefaultSurfaceConfig returns OpenGL ES 2.0 with an RGBA8888 color buffer
// and no depth, stencil or multisampling.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{
		RenderingAPI:  RenderingAPIGLES2,
		ColorFormat:   ColorFormatRGBA8888,
		DepthFormat:   DepthFormatNone,
		StencilFormat: StencilFormatNone,
		Multisample:   MultisampleNone,
		SwapBehavior:  SwapBehaviorPlatformDefault,
	}
}

// Option configures a Display during creation.
//
// Example:
//
//	d, err := shell.NewDisplay(host,
//	    shell.WithRenderingAPI(shell.RenderingAPIGLES3),
//	    shell.WithDepthFormat(shell.DepthFormat24),
//	    shell.WithSupportedOrientations(shell.OrientationsLandscape),
//	)
type Option func(*options)

// options holds the creation-time configuration.
type options struct {
	surface      SurfaceConfig
	orientations Orientations
	chrome       Chrome
	multitouch   bool
	pauseSensors bool
	userData     any
}

// defaultOptions returns the configuration of a Display created without
// options.
func defaultOptions() options {
	return options{
		surface:      DefaultSurfaceConfig(),
		orientations: OrientationsAll,
		chrome:       ChromeNavigationAndStatusBar,
	}
}

// WithSurfaceConfig replaces the whole requested surface configuration.
func WithSurfaceConfig(cfg SurfaceConfig) Option {
	return func(o *options) {
		o.surface = cfg
	}
}

// WithRenderingAPI sets the preferred rendering API tier.
func WithRenderingAPI(api RenderingAPI) Option {
	return func(o *options) {
		o.surface.RenderingAPI = api
	}
}

// WithColorFormat sets the requested color buffer format.
func WithColorFormat(f ColorFormat) Option {
	return func(o *options) {
		o.surface.ColorFormat = f
	}
}

// WithDepthFormat sets the requested depth buffer format.
func WithDepthFormat(f DepthFormat) Option {
	return func(o *options) {
		o.surface.DepthFormat = f
	}
}

// WithStencilFormat sets the requested stencil buffer format.
func WithStencilFormat(f StencilFormat) Option {
	return func(o *options) {
		o.surface.StencilFormat = f
	}
}

// WithMultisample sets the requested multisample mode.
func WithMultisample(m Multisample) Option {
	return func(o *options) {
		o.surface.Multisample = m
	}
}

// WithSwapBehavior sets the swap behavior hint.
func WithSwapBehavior(b SwapBehavior) Option {
	return func(o *options) {
		o.surface.SwapBehavior = b
	}
}

// WithSupportedOrientations sets the orientations the application accepts.
// The default is OrientationsAll.
func WithSupportedOrientations(s Orientations) Option {
	return func(o *options) {
		o.orientations = s
	}
}

// WithChrome sets the initial system UI mode.
func WithChrome(c Chrome) Option {
	return func(o *options) {
		o.chrome = c
	}
}

// WithMultitouch enables delivery of secondary touches and mouse buttons.
// It is disabled by default.
func WithMultitouch(enabled bool) Option {
	return func(o *options) {
		o.multitouch = enabled
	}
}

// WithSensorPauseOnBlur turns sensor streams off while the app is in the
// background and back on when it returns. By default streams follow the
// callbacks alone.
func WithSensorPauseOnBlur(enabled bool) Option {
	return func(o *options) {
		o.pauseSensors = enabled
	}
}

// WithUserData attaches an opaque application value. The core never reads
// or modifies it.
func WithUserData(v any) Option {
	return func(o *options) {
		o.userData = v
	}
}
