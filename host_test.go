package shell

import "testing"

// recordingHost is a Host implementing every optional interface. It
// records what the core asked of it.
type recordingHost struct {
	presents int

	present  map[Sensor]bool
	signals  []sensorSignal
	haptic   bool
	haptics  []HapticStyle
	keyboard []bool
	cursors  []Cursor
	chromes  []Chrome
	device   Orientations
	applied  []Orientations
	touch    bool
	apis     RenderingAPIs
}

type sensorSignal struct {
	sensor Sensor
	on     bool
}

func newRecordingHost() *recordingHost {
	return &recordingHost{
		present: map[Sensor]bool{
			SensorAccelerometer:  true,
			SensorMagnetometer:   true,
			SensorGyroscope:      true,
			SensorRotationMatrix: true,
		},
		haptic: true,
		device: OrientationsAll,
		touch:  true,
		apis:   RenderingAPIsOf(RenderingAPIGLES2, RenderingAPIGLES3),
	}
}

func (h *recordingHost) Present() { h.presents++ }

func (h *recordingHost) SensorAvailable(s Sensor) bool { return h.present[s] }
func (h *recordingHost) EnableSensor(s Sensor) {
	h.signals = append(h.signals, sensorSignal{s, true})
}
func (h *recordingHost) DisableSensor(s Sensor) {
	h.signals = append(h.signals, sensorSignal{s, false})
}

func (h *recordingHost) HapticFeedbackSupported() bool { return h.haptic }
func (h *recordingHost) PerformHapticFeedback(style HapticStyle) {
	h.haptics = append(h.haptics, style)
}

func (h *recordingHost) RequestKeyboardVisible(v bool) { h.keyboard = append(h.keyboard, v) }
func (h *recordingHost) SetMouseCursor(c Cursor)       { h.cursors = append(h.cursors, c) }
func (h *recordingHost) SetChrome(c Chrome)            { h.chromes = append(h.chromes, c) }

func (h *recordingHost) DeviceOrientations() Orientations { return h.device }
func (h *recordingHost) ApplyOrientations(allowed Orientations) {
	h.applied = append(h.applied, allowed)
}

func (h *recordingHost) HasTouch() bool                        { return h.touch }
func (h *recordingHost) SupportedRenderingAPIs() RenderingAPIs { return h.apis }

// bareHost implements only Host.
type bareHost struct{ presents int }

func (h *bareHost) Present() { h.presents++ }

// newTestDisplay creates a Display and releases the process-wide slot when
// the test ends, whatever state the Display was left in.
func newTestDisplay(t *testing.T, host Host, opts ...Option) *Display {
	t.Helper()
	d, err := NewDisplay(host, opts...)
	if err != nil {
		t.Fatalf("NewDisplay() error = %v", err)
	}
	t.Cleanup(func() { live.Store(false) })
	return d
}

// mustCreate starts a surface session or fails the test.
func mustCreate(t *testing.T, d *Display, api RenderingAPI, w, h int) {
	t.Helper()
	if err := d.Driver().SurfaceCreated(api, w, h); err != nil {
		t.Fatalf("SurfaceCreated(%v, %d, %d) error = %v", api, w, h, err)
	}
}
