package main

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shell"
	"github.com/gogpu/shell/integration/gpuevents"
)

type point struct{ x, y float64 }

// demo draws a slowly shifting background with a dot for every tap.
type demo struct {
	output string
	dc     *gg.Context
	src    *gpuevents.Source
	taps   []point
	tilt   point
	frames uint64
	err    error
}

func newDemo(output string) *demo {
	return &demo{output: output}
}

// main is the platform entry point. It only installs callbacks; the
// surface does not exist yet.
func (a *demo) main(d *shell.Display) {
	d.SetDisplayConfig(shell.RenderingAPIGLES3, shell.ColorFormatRGBA8888,
		shell.DepthFormatNone, shell.StencilFormatNone, shell.MultisampleNone)

	d.SetSurfaceCreatedFunc(a.created)
	d.SetSurfaceDestroyedFunc(a.destroyed)
	d.SetRenderFunc(a.render)
	d.SetMemoryWarningFunc(func(*shell.Display) { a.taps = nil })
	d.SetSensorFunc(shell.SensorAccelerometer, func(_ *shell.Display, ev shell.SensorEvent) {
		if v, ok := ev.Vector(); ok {
			a.tilt = point{v[0], v[1]}
		}
	})

	// Resize arrives through the event source, after the created callback.
	a.src = gpuevents.Attach(d)
	a.src.OnResize(func(w, h int) {
		if a.dc == nil {
			return
		}
		sc := a.src.ScaleFactor()
		if err := a.dc.Resize(int(float64(w)*sc), int(float64(h)*sc)); err != nil {
			shell.Logger().Warn("shelldemo: resize failed", "error", err)
		}
	})
	a.src.OnPointer(func(ev gpucontext.PointerEvent) {
		if ev.Type != gpucontext.PointerDown {
			return
		}
		sc := a.src.ScaleFactor()
		a.taps = append(a.taps, point{ev.X * sc, ev.Y * sc})
		d.PerformHapticFeedback(shell.HapticLight)
	})
}

func (a *demo) created(_ *shell.Display, width, height int) {
	if a.dc != nil {
		_ = a.dc.Close()
	}
	a.dc = gg.NewContext(width, height)
}

func (a *demo) render(d *shell.Display) {
	if a.dc == nil {
		return
	}
	dc := a.dc
	w, h := float64(dc.Width()), float64(dc.Height())

	hue := math.Mod(float64(d.FrameCount())*2, 360)
	dc.SetColor(gg.HSL(hue, 0.5, 0.2))
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	insets := d.ChromeInsets()
	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawRectangle(0, 0, w, insets.Top)
	dc.DrawRectangle(0, h-insets.Bottom, w, insets.Bottom)
	_ = dc.Fill()

	ox, oy := a.tilt.x*w*0.05, a.tilt.y*h*0.05
	for i, p := range a.taps {
		dc.SetColor(gg.HSL(math.Mod(hue+float64(i)*40, 360), 0.8, 0.6))
		dc.DrawCircle(p.x+ox, p.y+oy, w*0.05)
		_ = dc.Fill()
	}

	a.frames++
	d.SwapBuffers()
}

func (a *demo) destroyed(*shell.Display) {
	if a.dc == nil {
		return
	}
	if err := a.dc.SavePNG(a.output); err != nil && a.err == nil {
		a.err = err
	}
	_ = a.dc.Close()
	a.dc = nil
}
