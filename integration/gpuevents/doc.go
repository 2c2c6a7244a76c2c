// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuevents exposes a shell.Display through the gpucontext event and
// window interfaces, so UI toolkits written against gpucontext run on a
// mobile or browser host unchanged.
//
// The data flow is:
//
//	host -> shell.Driver -> shell callbacks -> Source -> gpucontext handlers
//
// # Usage
//
//	func app(d *shell.Display) {
//	    src := gpuevents.Attach(d)
//	    src.OnPointer(func(ev gpucontext.PointerEvent) {
//	        // ev.X, ev.Y are logical pixels
//	    })
//	    ui.Bind(src) // any gpucontext.EventSource consumer
//	}
//
// Attach installs shell callbacks for touch, key, character, wheel, resize
// and focus events. Callbacks installed before Attach keep running: each
// event goes to the previous callback first. Callbacks installed after
// Attach replace the Source's; call Detach to restore the previous ones.
//
// # Coordinates
//
// shell reports positions in surface pixels. Source divides them by the
// display scale, so gpucontext consumers see logical pixels as they do on
// desktop windows. Size and OnResize use the same logical units.
//
// # Thread Safety
//
// Source must be used on the Display's goroutine, like the Display itself.
package gpuevents
