package platform

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/shell"
)

// Common platform errors.
var (
	// ErrNotAvailable is returned when a requested platform is not registered.
	ErrNotAvailable = errors.New("platform: not available")

	// ErrNilMain is returned by Run when no entry point is given.
	ErrNilMain = errors.New("platform: nil main")
)

// Well-known platform names.
const (
	Android  = "android"
	IOS      = "ios"
	MacOS    = "macos"
	Web      = "web"
	Headless = "headless"
)

// Main is an application entry point. It runs once, after the Display is
// created and before the first surface exists, so it is the place to set
// display configuration and install callbacks.
type Main func(d *shell.Display)

// Platform is a host environment able to run an application.
type Platform interface {
	// Name returns the registered platform name.
	Name() string

	// Run creates the Display, calls main and drives the event pump until
	// the application exits. It blocks for the life of the application and
	// must be called on the goroutine that will own the Display.
	Run(main Main) error
}

// Factory creates a Platform instance.
type Factory func() Platform

// registry holds registered platforms.
// Native platforms win over headless when several are linked in.
var registry = gpucontext.NewRegistry[Platform](
	gpucontext.WithPriority(Android, IOS, MacOS, Web, Headless),
)

// Register registers a platform factory with the given name.
// This is typically called from init() functions in platform packages.
// If a platform with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, factory)
}

// Unregister removes a platform from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered platform names.
func Available() []string {
	return registry.Available()
}

// IsRegistered reports whether a platform with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a platform instance by name.
// Returns nil if the platform is not registered.
func Get(name string) Platform {
	return registry.Get(name)
}

// Default returns the best registered platform by priority.
// Returns nil if no platforms are registered.
func Default() Platform {
	return registry.Best()
}

// DefaultName returns the name Default would pick, or "" if none.
func DefaultName() string {
	return registry.BestName()
}

// Run runs main on p. A nil p selects Default.
func Run(p Platform, main Main) error {
	if main == nil {
		return ErrNilMain
	}
	if p == nil {
		p = Default()
	}
	if p == nil {
		return ErrNotAvailable
	}
	shell.Logger().Info("platform: starting", "platform", p.Name())
	if err := p.Run(main); err != nil {
		return fmt.Errorf("platform %s: %w", p.Name(), err)
	}
	return nil
}

// RunNamed runs main on the platform registered under name.
func RunNamed(name string, main Main) error {
	p := Get(name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNotAvailable, name)
	}
	return Run(p, main)
}
