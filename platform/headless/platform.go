// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"

	"github.com/gogpu/shell"
	"github.com/gogpu/shell/platform"
)

func init() {
	platform.Register(platform.Headless, func() platform.Platform {
		return New(DefaultProfile())
	})
}

// Platform runs an application against a simulated device. It follows the
// bootstrap order of a native host: create the Display, call the entry
// point, create the surface, replay the profile script, then tear down.
type Platform struct {
	profile *Profile
	opts    []shell.Option
	runner  *Runner
}

// New returns a headless platform for p. opts are passed to
// shell.NewDisplay.
func New(p *Profile, opts ...shell.Option) *Platform {
	return &Platform{profile: p, opts: opts}
}

// Name returns platform.Headless.
func (p *Platform) Name() string {
	return platform.Headless
}

// Runner returns the runner of the last Run, for inspection after it
// returns. It is nil before the first Run.
func (p *Platform) Runner() *Runner {
	return p.runner
}

// Run implements platform.Platform.
//
// A surface creation failure is reported to the application through its
// surface-error callback; Run then tears down and returns nil, as a native
// host would keep showing its error UI rather than crash.
func (p *Platform) Run(main platform.Main) error {
	r, err := NewRunner(p.profile, p.opts...)
	if err != nil {
		return err
	}
	p.runner = r

	main(r.Display())

	err = r.Create()
	switch {
	case errors.Is(err, ErrNoRenderingAPI):
		return r.Shutdown()
	case err != nil:
		_ = r.Shutdown()
		return err
	}

	if err := r.Play(p.profile.Script); err != nil {
		_ = r.Shutdown()
		return err
	}
	return r.Shutdown()
}
