// Package platform connects application entry points to host platforms.
//
// A platform owns process bootstrap: it creates the shell.Display, calls
// the application's Main, then runs the native event pump that drives the
// Display until the process exits.
//
// # Platform Registration
//
// Platforms register themselves from init() functions and are selected at
// runtime. The headless platform registers on import:
//
//	import _ "github.com/gogpu/shell/platform/headless"
//
// # Platform Selection
//
// Use Default to get the best registered platform, or Get to request one
// by name:
//
//	func appMain(d *shell.Display) {
//	    d.SetRenderFunc(draw)
//	}
//
//	func main() {
//	    if err := platform.Run(platform.Default(), appMain); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Native platforms are preferred over headless in the order Android, iOS,
// macOS, Web, Headless.
package platform
