package shell

import (
	"errors"
	"fmt"
)

// Common errors returned to the host by Driver methods.
// The application never observes them: an event that fails these checks is
// simply not delivered.
var (
	// ErrNilHost is returned by NewDisplay when no host is supplied.
	ErrNilHost = errors.New("shell: nil host")

	// ErrDisplayExists is returned by NewDisplay while another Display is
	// live in the process.
	ErrDisplayExists = errors.New("shell: display already exists")

	// ErrTerminated is returned for any driver call after Terminate.
	ErrTerminated = errors.New("shell: display terminated")

	// ErrInvalidTransition is the base error for surface lifecycle
	// violations. See TransitionError.
	ErrInvalidTransition = errors.New("shell: invalid surface transition")

	// ErrNoSurface is returned by Frame when no surface session is active.
	ErrNoSurface = errors.New("shell: no active surface")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("shell: invalid dimensions")

	// ErrUnknownRenderingAPI is returned when the host reports a surface
	// without naming the resolved rendering API.
	ErrUnknownRenderingAPI = errors.New("shell: unknown rendering API")

	// ErrInvalidOrientation is returned when a reported orientation is not
	// exactly one concrete orientation or OrientationUnknown.
	ErrInvalidOrientation = errors.New("shell: invalid orientation")

	// ErrSensorPayload is returned when a sensor sample carries the payload
	// variant that does not belong to its sensor type.
	ErrSensorPayload = errors.New("shell: sensor payload does not match sensor type")
)

// TransitionError reports a host event that the surface lifecycle does not
// permit in its current state, for example a resize before the surface was
// created.
type TransitionError struct {
	From  SurfaceState
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("shell: %s not permitted in state %s", e.Event, e.From)
}

// Unwrap allows errors.Is(err, ErrInvalidTransition).
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// SurfaceError is delivered to the surface-error callback when the host
// could not create a surface, for example because the browser has no WebGL
// or the device lacks every acceptable rendering API.
type SurfaceError struct {
	// API is the rendering API that was requested.
	API RenderingAPI

	// Message is the host's description of the failure.
	Message string
}

func (e *SurfaceError) Error() string {
	if e.API == RenderingAPIUnknown {
		return "shell: surface creation failed: " + e.Message
	}
	return fmt.Sprintf("shell: surface creation failed (%s): %s", e.API, e.Message)
}
