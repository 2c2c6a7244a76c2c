package shell

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// SurfaceState is a state of the surface lifecycle.
//
//	Uninitialized -> Created -> {Resized, Refreshing}* -> Destroyed
//	Destroyed -> Created       (context loss and recreation)
//	Destroyed -> Terminated    (process exit)
//
// A surface session spans one Created and its matching Destroyed. Render,
// resize, refresh and input are delivered only inside a session.
type SurfaceState uint8

const (
	// StateUninitialized is the initial state: no surface has existed yet.
	StateUninitialized SurfaceState = iota

	// StateCreated follows a successful surface creation.
	StateCreated

	// StateResized follows a resize within the session.
	StateResized

	// StateRefreshing follows a refresh within the session.
	StateRefreshing

	// StateDestroyed follows the end of a session.
	StateDestroyed

	// StateTerminated is final. Every driver call fails with ErrTerminated.
	StateTerminated
)

// String returns the state name.
func (s SurfaceState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateCreated:
		return "Created"
	case StateResized:
		return "Resized"
	case StateRefreshing:
		return "Refreshing"
	case StateDestroyed:
		return "Destroyed"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("SurfaceState(%d)", uint8(s))
	}
}

// active reports whether a surface session is running.
func (s SurfaceState) active() bool {
	return s == StateCreated || s == StateResized || s == StateRefreshing
}

// canCreate reports whether a new session may start.
func (s SurfaceState) canCreate() bool {
	return s == StateUninitialized || s == StateDestroyed
}

// State returns the current lifecycle state.
func (d *Display) State() SurfaceState {
	return d.state
}

// Session returns the number of the current or most recent surface
// session. It is zero before the first surface and increases by one with
// every successful surface creation.
func (d *Display) Session() uint64 {
	return d.session
}

// HasSurface reports whether a surface session is active, that is whether
// rendering and input may be delivered.
func (d *Display) HasSurface() bool {
	return d.state.active()
}

// violation logs and returns a TransitionError.
func (d *Display) violation(event string) error {
	err := &TransitionError{From: d.state, Event: event}
	Logger().Warn("shell: host protocol violation", "event", event, "state", d.state)
	return err
}

// SurfaceCreated starts a surface session with the rendering API the host
// resolved and the surface size in pixels. The requested configuration is
// snapshotted for the session and the surface-created callback fires.
//
// It fails with a TransitionError if a session is already active.
func (dr *Driver) SurfaceCreated(api RenderingAPI, width, height int) error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !d.state.canCreate():
		return d.violation("surface-created")
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	case api == RenderingAPIUnknown || api >= renderingAPICount:
		return fmt.Errorf("%w: %d", ErrUnknownRenderingAPI, uint8(api))
	}

	d.session++
	d.active = d.requested
	d.active.RenderingAPI = api
	d.api = api
	d.width, d.height = width, height
	d.frame = frameState{}
	d.state = StateCreated

	if api != d.requested.RenderingAPI {
		Logger().Info("shell: rendering API degraded",
			"requested", d.requested.RenderingAPI, "resolved", api)
	}
	Logger().Info("shell: surface created",
		"session", d.session, "api", api, "width", width, "height", height)

	if fn, ok := d.callbacks.surfaceCreated.get(); ok {
		fn(d, width, height)
	}
	return nil
}

// SurfaceCreationFailed reports that the host could not create a surface.
// The surface-error callback receives a *SurfaceError and the state does
// not change, so the host may retry after the application adjusts its
// configuration. The failure is not retried automatically.
func (dr *Driver) SurfaceCreationFailed(api RenderingAPI, message string) error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !d.state.canCreate():
		return d.violation("surface-creation-failed")
	}

	serr := &SurfaceError{API: api, Message: message}
	Logger().Info("shell: surface creation failed", "api", api, "message", message)
	if fn, ok := d.callbacks.surfaceError.get(); ok {
		fn(d, serr)
	}
	return nil
}

// SurfaceResized reports new surface dimensions in pixels. Reporting the
// current dimensions is a no-op.
func (dr *Driver) SurfaceResized(width, height int) error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !d.state.active():
		return d.violation("surface-resized")
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	if width == d.width && height == d.height {
		return nil
	}
	d.width, d.height = width, height
	d.state = StateResized
	Logger().Debug("shell: surface resized", "session", d.session, "width", width, "height", height)

	if fn, ok := d.callbacks.surfaceResized.get(); ok {
		fn(d, width, height)
	}
	return nil
}

// SurfaceRefresh asks for a full redraw. The surface-refresh callback fires
// and is immediately followed by one render, in the same call.
func (dr *Driver) SurfaceRefresh() error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case !d.state.active():
		return d.violation("surface-refresh")
	}

	d.state = StateRefreshing
	if fn, ok := d.callbacks.surfaceRefresh.get(); ok {
		fn(d)
	}
	// The refresh callback may have ended the session through the host.
	if !d.state.active() {
		return nil
	}
	d.render()
	return nil
}

// SurfaceDestroyed ends the active surface session. The surface-destroyed
// callback must release every graphics resource of the session before it
// returns. Without an active session the call is a no-op, so a host may
// report destruction unconditionally on teardown.
func (dr *Driver) SurfaceDestroyed() error {
	d := dr.d
	if d.state == StateTerminated {
		return ErrTerminated
	}
	if !d.state.active() {
		return nil
	}

	d.state = StateDestroyed
	d.frame = frameState{}
	Logger().Info("shell: surface destroyed", "session", d.session)

	if fn, ok := d.callbacks.surfaceDestroyed.get(); ok {
		fn(d)
	}
	return nil
}

// SurfaceStatus maps a presentation status from the GPU layer onto the
// lifecycle. A lost surface ends the session, as context loss does. An
// outdated surface is refreshed. Other statuses need no action.
func (dr *Driver) SurfaceStatus(status gputypes.SurfaceStatus) error {
	switch status {
	case gputypes.SurfaceStatusLost:
		return dr.SurfaceDestroyed()
	case gputypes.SurfaceStatusOutdated:
		if !dr.d.state.active() {
			return nil
		}
		return dr.SurfaceRefresh()
	default:
		if dr.d.state == StateTerminated {
			return ErrTerminated
		}
		return nil
	}
}

// Terminate moves the Display to its final state at process exit. Any
// active session must be destroyed first. Sensor streams are stopped and
// a new Display may be created afterwards.
//
// Terminate is also accepted before the first surface was ever created,
// for hosts that exit during startup.
func (dr *Driver) Terminate() error {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return ErrTerminated
	case d.state.active():
		return d.violation("terminate")
	}

	d.state = StateTerminated
	d.syncSensors()
	live.Store(false)
	Logger().Info("shell: display terminated", "sessions", d.session)
	return nil
}
