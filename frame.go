package shell

// frameState tracks the render tick in progress.
type frameState struct {
	inRender  bool
	presented bool
	count     uint64
}

// Frame runs one render tick: the host calls it at the display's refresh
// cadence. It reports whether the render callback presented the frame.
//
// Not presenting is a valid outcome, for example when nothing changed.
// It returns ErrNoSurface when no surface session is active.
func (dr *Driver) Frame() (presented bool, err error) {
	d := dr.d
	switch {
	case d.state == StateTerminated:
		return false, ErrTerminated
	case !d.state.active():
		return false, ErrNoSurface
	}
	return d.render(), nil
}

// render invokes the render callback with SwapBuffers armed.
func (d *Display) render() bool {
	fn, ok := d.callbacks.render.get()
	if !ok {
		return false
	}
	d.frame.inRender = true
	d.frame.presented = false
	fn(d)
	d.frame.inRender = false
	d.frame.count++
	return d.frame.presented
}

// FrameCount returns the number of render callbacks run in the current
// surface session.
func (d *Display) FrameCount() uint64 {
	return d.frame.count
}

// SwapBuffers presents the frame drawn by the current render callback.
//
// It is meaningful only inside the render callback and at most once per
// tick; other calls are ignored. On APIs whose presentation is managed
// outside the core (Metal) it records the frame as presented without
// asking the host.
func (d *Display) SwapBuffers() {
	if !d.frame.inRender || d.frame.presented {
		Logger().Debug("shell: swap ignored", "session", d.session)
		return
	}
	d.frame.presented = true
	if !d.api.presentsExternally() {
		d.host.Present()
	}
}
