package shell

import "time"

// epoch anchors Now. Go's time.Since uses the monotonic clock reading, so
// Now never jumps with wall-clock adjustments.
var epoch = time.Now()

// Now returns monotonic time since the process started. Sensor timestamps
// and frame timing use this clock; it is unrelated to wall-clock time.
func Now() time.Duration {
	return time.Since(epoch)
}
