// Command shelldemo runs a small drawing app on the headless platform.
//
// The app paints every frame with gg and saves the last frame as a PNG when
// the surface is destroyed. A device profile may be given as YAML; its
// script drives touches, rotations and sensor samples.
//
//	shelldemo -profile tablet.yaml -output demo.png -v
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shell"
	"github.com/gogpu/shell/platform"
	"github.com/gogpu/shell/platform/headless"
)

func main() {
	var (
		profile = flag.String("profile", "", "device profile (YAML); default is a phone")
		output  = flag.String("output", "shelldemo.png", "output file for the last frame")
		frames  = flag.Int("frames", 60, "frames to run when the profile has no script")
		verbose = flag.Bool("v", false, "log lifecycle and dropped events")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	shell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	p := headless.DefaultProfile()
	p.Script = nil
	if *profile != "" {
		var err error
		if p, err = headless.LoadProfile(*profile); err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
	}
	if len(p.Script) == 0 {
		p.Script = defaultScript(p, *frames)
	}

	app := newDemo(*output)
	plat := headless.New(p, shell.WithSupportedOrientations(shell.OrientationsAllButUpsideDown))
	if err := platform.Run(plat, app.main); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if app.err != nil {
		log.Fatalf("Failed to save: %v", app.err)
	}

	log.Printf("Demo saved to %s (%d frames)\n", *output, app.frames)
}

// defaultScript taps across the screen while rendering.
func defaultScript(p *headless.Profile, frames int) []headless.Step {
	steps := make([]headless.Step, 0, 10)
	n := 4
	for i := range n {
		x := float64(p.Width) * float64(i+1) / float64(n+1)
		y := float64(p.Height) / 2
		steps = append(steps,
			headless.Step{Op: "touch", Phase: "began", X: x, Y: y},
			headless.Step{Op: "touch", Phase: "ended", X: x, Y: y},
		)
	}
	steps = append(steps,
		headless.Step{Op: "sensor", Sensor: "accelerometer", Values: []float64{0.3, -0.2, -1}},
		headless.Step{Op: "frames", Count: max(frames, 1)},
	)
	return steps
}
