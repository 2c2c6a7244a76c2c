// Package shell is a platform abstraction layer for applications that draw
// into a single native surface on mobile, desktop or browser hosts.
//
// # Overview
//
// The application describes its rendering surface, lifecycle handling and
// input handling once, against a Display. Platform glue (a Host) owns the
// real event loop, window and graphics context, and drives the Display
// through its Driver. shell never starts a goroutine or a loop of its own.
//
// # Quick Start
//
//	func appMain(d *shell.Display) {
//	    d.SetDisplayConfig(shell.RenderingAPIGLES3, shell.ColorFormatRGBA8888,
//	        shell.DepthFormat24, shell.StencilFormatNone, shell.MultisampleNone)
//	    d.SetSurfaceCreatedFunc(func(d *shell.Display, w, h int) {
//	        // allocate GPU resources for this surface session
//	    })
//	    d.SetRenderFunc(func(d *shell.Display) {
//	        // draw
//	        d.SwapBuffers()
//	    })
//	}
//
// # Surface Lifecycle
//
// A surface session spans one surface-created and its matching
// surface-destroyed callback. Render, resize, refresh and input callbacks
// are delivered only inside a session. Context loss ends a session; the
// recreated surface starts a new, independent one:
//
//	Uninitialized -> Created -> {Resized, Refreshing}* -> Destroyed
//	Destroyed -> Created -> ... -> Destroyed -> Terminated
//
// Configuration set after a surface exists applies to the next session.
//
// # Callbacks
//
// Every event class has exactly one callback slot. Set*Func installs a
// callback and returns the previous one; nil disables the class. Input
// callbacks return true when they consumed the event and false to let the
// platform run its default handling. For KeyNavigationBack that default is
// the platform's back navigation.
//
// Installing a sensor callback is what turns the sensor's hardware stream
// on, and clearing it turns the stream off.
//
// # Threading
//
// A Display and everything reachable from it are confined to the host's
// event-pump goroutine. There is no locking. Callbacks run synchronously
// and must not block; long work is split across render ticks.
//
// # Migrating
//
// There is no main-loop callback: per-frame work belongs in the render
// callback. Orientation requests use the Orientations set; there is no
// separate user-interface orientation type.
package shell
