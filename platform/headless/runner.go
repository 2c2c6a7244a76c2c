// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shell"
)

// ErrNoRenderingAPI is returned by Create when the device supports none of
// the tiers the requested API may degrade to.
var ErrNoRenderingAPI = errors.New("headless: no supported rendering API")

// Runner plays the role of a native event pump for one Display. It is not
// safe for concurrent use: like a real host it owns the Display's goroutine.
type Runner struct {
	profile *Profile
	host    *Host
	display *shell.Display
	driver  *shell.Driver

	width, height int
	orientation   shell.Orientation
	exited        bool
}

// NewRunner creates the host and the Display for p. opts are passed to
// shell.NewDisplay.
func NewRunner(p *Profile, opts ...shell.Option) (*Runner, error) {
	host, err := NewHost(p)
	if err != nil {
		return nil, err
	}
	d, err := shell.NewDisplay(host, opts...)
	if err != nil {
		return nil, err
	}
	o, _ := p.initialOrientation()
	r := &Runner{
		profile:     p,
		host:        host,
		display:     d,
		driver:      d.Driver(),
		width:       p.Width,
		height:      p.Height,
		orientation: o,
	}
	host.ApplyOrientations(d.AllowedOrientations())
	if err := r.driver.SetMetrics(p.Scale, p.Insets); err != nil {
		return nil, err
	}
	if err := r.driver.OrientationChanged(o); err != nil {
		return nil, err
	}
	return r, nil
}

// Display returns the Display driven by this runner.
func (r *Runner) Display() *shell.Display { return r.display }

// Host returns the recording host.
func (r *Runner) Host() *Host { return r.host }

// Exited reports whether the application allowed the platform's default
// back navigation, which exits the app on this host.
func (r *Runner) Exited() bool { return r.exited }

// Create resolves the requested rendering API against the device and starts
// a surface session. If no tier is available the surface-error callback
// fires and ErrNoRenderingAPI is returned.
func (r *Runner) Create() error {
	requested := r.display.Config().RenderingAPI
	api, ok := shell.ResolveRenderingAPI(requested, r.host.apis)
	if !ok {
		msg := fmt.Sprintf("%s is not supported; device offers %s", requested, r.host.apis)
		if err := r.driver.SurfaceCreationFailed(requested, msg); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrNoRenderingAPI, msg)
	}
	return r.driver.SurfaceCreated(api, r.width, r.height)
}

// Frames runs n render ticks and returns how many were presented.
func (r *Runner) Frames(n int) (presented int, err error) {
	for range n {
		ok, err := r.driver.Frame()
		if err != nil {
			return presented, err
		}
		if ok {
			presented++
		}
		r.pump()
	}
	return presented, nil
}

// Resize changes the surface size, as a desktop window resize would.
func (r *Runner) Resize(width, height int) error {
	r.width, r.height = width, height
	return r.driver.SurfaceResized(width, height)
}

// Rotate turns the device. Orientations outside the allowed set are
// ignored, as the system would not rotate the interface. Switching between
// portrait and landscape swaps the surface dimensions.
func (r *Runner) Rotate(o shell.Orientation) error {
	if !r.host.Allowed.Contains(o) {
		shell.Logger().Debug("headless: rotation not allowed", "orientation", o, "allowed", r.host.Allowed)
		return nil
	}
	swap := r.orientation != shell.OrientationUnknown && r.orientation.IsPortrait() != o.IsPortrait()
	r.orientation = o
	if err := r.driver.OrientationChanged(o); err != nil {
		return err
	}
	if !swap {
		return nil
	}
	r.width, r.height = r.height, r.width
	if !r.display.HasSurface() {
		return nil
	}
	return r.driver.SurfaceResized(r.width, r.height)
}

// LoseContext simulates a lost graphics context: the session ends and a
// new one is created with the current configuration.
func (r *Runner) LoseContext() error {
	if err := r.driver.SurfaceStatus(gputypes.SurfaceStatusLost); err != nil {
		return err
	}
	return r.Create()
}

// Focus moves the app to the foreground or background. Returning to the
// foreground refreshes the surface.
func (r *Runner) Focus(focused bool) error {
	if err := r.driver.AppFocus(focused); err != nil {
		return err
	}
	if focused && r.display.HasSurface() {
		return r.driver.SurfaceRefresh()
	}
	return nil
}

// Back presses and releases the navigation back key. If the application
// does not consume the press, the runner exits.
func (r *Runner) Back() bool {
	handled := r.driver.Key(shell.KeyEvent{Key: shell.KeyNavigationBack, Action: shell.KeyActionPressed})
	r.driver.Key(shell.KeyEvent{Key: shell.KeyNavigationBack, Action: shell.KeyActionReleased})
	if !handled {
		shell.Logger().Info("headless: back not handled, exiting")
		r.exited = true
	}
	return handled
}

// Play replays steps in order. It stops early when the app exits through
// the back key.
func (r *Runner) Play(steps []Step) error {
	for i := range steps {
		if r.exited {
			return nil
		}
		if err := r.step(&steps[i]); err != nil {
			return fmt.Errorf("headless: step %d (%s): %w", i, steps[i].Op, err)
		}
		r.pump()
	}
	return nil
}

func (r *Runner) step(s *Step) error {
	switch s.Op {
	case "frames":
		_, err := r.Frames(max(s.Count, 1))
		return err
	case "resize":
		return r.Resize(s.Width, s.Height)
	case "rotate":
		o, err := parseName(s.Orientation, orientations)
		if err != nil {
			return err
		}
		return r.Rotate(o)
	case "touch":
		ev, err := s.touch()
		if err != nil {
			return err
		}
		r.driver.Touch(ev)
	case "key":
		ev, err := s.key()
		if err != nil {
			return err
		}
		if ev.Key == shell.KeyNavigationBack && ev.Action == shell.KeyActionPressed {
			r.Back()
			return nil
		}
		r.driver.Key(ev)
	case "back":
		r.Back()
	case "char":
		mods, err := s.mods()
		if err != nil {
			return err
		}
		r.driver.Char(s.Text, mods)
	case "wheel":
		ev, err := s.wheel()
		if err != nil {
			return err
		}
		r.driver.MouseWheel(ev)
	case "sensor":
		ev, err := s.sensorEvent()
		if err != nil {
			return err
		}
		return r.driver.Sensor(ev)
	case "focus":
		return r.Focus(true)
	case "blur":
		return r.Focus(false)
	case "memory":
		return r.driver.MemoryWarning()
	case "loseContext":
		return r.LoseContext()
	case "keyboard":
		r.display.SetKeyboardVisible(s.Visible)
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// pump delivers host-side consequences of application requests, such as
// the keyboard appearing after it was requested.
func (r *Runner) pump() {
	visible, ok := r.host.takeKeyboard()
	if !ok {
		return
	}
	var frame shell.Rect
	if visible {
		h := float64(r.height) * 0.4
		frame = shell.Rect{Y: float64(r.height) - h, Width: float64(r.width), Height: h}
	}
	if err := r.driver.KeyboardVisibilityChanged(visible, frame); err != nil {
		shell.Logger().Debug("headless: keyboard change not delivered", "error", err)
	}
}

// Shutdown ends any active session and terminates the Display.
func (r *Runner) Shutdown() error {
	if err := r.driver.SurfaceDestroyed(); err != nil {
		return err
	}
	return r.driver.Terminate()
}
