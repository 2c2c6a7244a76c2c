package shell

import "testing"

func TestCallbacksDefaultEmpty(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	for c := EventRender; c <= EventSensor; c++ {
		if d.Installed(c) {
			t.Errorf("Installed(%v) = true on a new Display", c)
		}
	}
}

func TestSetFuncReturnsPrevious(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())

	calls := ""
	first := RenderFunc(func(*Display) { calls += "a" })
	second := RenderFunc(func(*Display) { calls += "b" })

	if prev := d.SetRenderFunc(first); prev != nil {
		t.Error("first SetRenderFunc() returned a non-nil previous callback")
	}
	prev := d.SetRenderFunc(second)
	if prev == nil {
		t.Fatal("SetRenderFunc() lost the previous callback")
	}
	prev(d)
	if calls != "a" {
		t.Errorf("previous callback wrote %q, want %q", calls, "a")
	}

	prev = d.SetRenderFunc(nil)
	calls = ""
	prev(d)
	if calls != "b" {
		t.Errorf("previous callback wrote %q, want %q", calls, "b")
	}
	if d.Installed(EventRender) {
		t.Error("Installed(EventRender) = true after SetRenderFunc(nil)")
	}
	if prev := d.SetRenderFunc(nil); prev != nil {
		t.Error("SetRenderFunc(nil) on an empty slot returned non-nil")
	}
}

func TestInstalledTracksEverySlot(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())

	setters := map[EventClass]func(install bool){
		EventRender: func(on bool) {
			if on {
				d.SetRenderFunc(func(*Display) {})
			} else {
				d.SetRenderFunc(nil)
			}
		},
		EventSurfaceError: func(on bool) {
			if on {
				d.SetSurfaceErrorFunc(func(*Display, *SurfaceError) {})
			} else {
				d.SetSurfaceErrorFunc(nil)
			}
		},
		EventSurfaceCreated: func(on bool) {
			if on {
				d.SetSurfaceCreatedFunc(func(*Display, int, int) {})
			} else {
				d.SetSurfaceCreatedFunc(nil)
			}
		},
		EventSurfaceResized: func(on bool) {
			if on {
				d.SetSurfaceResizedFunc(func(*Display, int, int) {})
			} else {
				d.SetSurfaceResizedFunc(nil)
			}
		},
		EventSurfaceRefresh: func(on bool) {
			if on {
				d.SetSurfaceRefreshFunc(func(*Display) {})
			} else {
				d.SetSurfaceRefreshFunc(nil)
			}
		},
		EventSurfaceDestroyed: func(on bool) {
			if on {
				d.SetSurfaceDestroyedFunc(func(*Display) {})
			} else {
				d.SetSurfaceDestroyedFunc(nil)
			}
		},
		EventOrientationChanged: func(on bool) {
			if on {
				d.SetOrientationChangedFunc(func(*Display, Orientation) {})
			} else {
				d.SetOrientationChangedFunc(nil)
			}
		},
		EventMemoryWarning: func(on bool) {
			if on {
				d.SetMemoryWarningFunc(func(*Display) {})
			} else {
				d.SetMemoryWarningFunc(nil)
			}
		},
		EventAppFocus: func(on bool) {
			if on {
				d.SetAppFocusFunc(func(*Display, bool) {})
			} else {
				d.SetAppFocusFunc(nil)
			}
		},
		EventTouch: func(on bool) {
			if on {
				d.SetTouchFunc(func(*Display, TouchEvent) bool { return false })
			} else {
				d.SetTouchFunc(nil)
			}
		},
		EventKey: func(on bool) {
			if on {
				d.SetKeyFunc(func(*Display, KeyEvent) bool { return false })
			} else {
				d.SetKeyFunc(nil)
			}
		},
		EventChar: func(on bool) {
			if on {
				d.SetCharFunc(func(*Display, string, Modifiers) {})
			} else {
				d.SetCharFunc(nil)
			}
		},
		EventMouseWheel: func(on bool) {
			if on {
				d.SetMouseWheelFunc(func(*Display, WheelEvent) bool { return false })
			} else {
				d.SetMouseWheelFunc(nil)
			}
		},
		EventKeyboardVisibilityChanged: func(on bool) {
			if on {
				d.SetKeyboardVisibilityChangedFunc(func(*Display, bool, Rect) {})
			} else {
				d.SetKeyboardVisibilityChangedFunc(nil)
			}
		},
		EventSensor: func(on bool) {
			if on {
				d.SetSensorFunc(SensorGyroscope, func(*Display, SensorEvent) {})
			} else {
				d.SetSensorFunc(SensorGyroscope, nil)
			}
		},
	}

	for class, set := range setters {
		set(true)
		if !d.Installed(class) {
			t.Errorf("Installed(%v) = false after install", class)
		}
		set(false)
		if d.Installed(class) {
			t.Errorf("Installed(%v) = true after clearing", class)
		}
	}
}

func TestCallbackChaining(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	mustCreate(t, d, RenderingAPIGLES2, 100, 100)

	var order []string
	d.SetTouchFunc(func(_ *Display, ev TouchEvent) bool {
		order = append(order, "app")
		return ev.Phase == TouchPhaseBegan
	})

	var next TouchFunc
	next = d.SetTouchFunc(func(d *Display, ev TouchEvent) bool {
		order = append(order, "trace")
		return next != nil && next(d, ev)
	})

	if !d.Driver().Touch(TouchEvent{Phase: TouchPhaseBegan}) {
		t.Error("Touch() = false, want the wrapped callback's true")
	}
	if len(order) != 2 || order[0] != "trace" || order[1] != "app" {
		t.Errorf("call order = %v, want [trace app]", order)
	}
}

func TestMissingCallbackDropsSilently(t *testing.T) {
	d := newTestDisplay(t, newRecordingHost())
	dr := d.Driver()
	mustCreate(t, d, RenderingAPIGLES2, 10, 10)

	if dr.Touch(TouchEvent{Phase: TouchPhaseBegan}) {
		t.Error("Touch() without callback = true")
	}
	if dr.Key(KeyEvent{Key: KeyA}) {
		t.Error("Key() without callback = true")
	}
	if dr.MouseWheel(WheelEvent{DeltaY: 1}) {
		t.Error("MouseWheel() without callback = true")
	}
	dr.Char("x", 0)
	if err := dr.MemoryWarning(); err != nil {
		t.Errorf("MemoryWarning() error = %v", err)
	}
	if err := dr.SurfaceRefresh(); err != nil {
		t.Errorf("SurfaceRefresh() error = %v", err)
	}
}

func TestEventClassString(t *testing.T) {
	if got := EventKeyboardVisibilityChanged.String(); got != "KeyboardVisibilityChanged" {
		t.Errorf("String() = %q, want %q", got, "KeyboardVisibilityChanged")
	}
	if got := EventClass(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want %q", got, "Unknown")
	}
}
