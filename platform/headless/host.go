// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"github.com/gogpu/shell"
)

// SensorSignal is one enable or disable request from the core.
type SensorSignal struct {
	Sensor  shell.Sensor
	Enabled bool
}

// Host is a shell.Host backed by a Profile. It implements every optional
// host interface according to the profile's capabilities and records each
// request the core makes, for assertions in tests.
type Host struct {
	apis        shell.RenderingAPIs
	device      shell.Orientations
	sensorSet   map[shell.Sensor]bool
	haptics     bool
	touch       bool
	hasKeyboard bool

	// Presents counts present requests.
	Presents int

	// SensorSignals lists enable and disable requests in order.
	SensorSignals []SensorSignal

	// Haptics lists performed haptic feedback styles.
	Haptics []shell.HapticStyle

	// KeyboardRequests lists keyboard visibility requests.
	KeyboardRequests []bool

	// Cursors lists cursor changes.
	Cursors []shell.Cursor

	// Chromes lists chrome mode changes.
	Chromes []shell.Chrome

	// Allowed is the last orientation set applied by the core. It starts
	// as the device set.
	Allowed shell.Orientations

	pendingKeyboard *bool
}

// NewHost creates a host with the capabilities of p.
func NewHost(p *Profile) (*Host, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// Validate guarantees these parse.
	apis, _ := p.renderingAPIs()
	device, _ := p.deviceOrientations()
	sensorSet, _ := p.sensors()
	return &Host{
		apis:        apis,
		device:      device,
		sensorSet:   sensorSet,
		haptics:     p.Haptics,
		touch:       p.Touch,
		hasKeyboard: p.Keyboard,
		Allowed:     device,
	}, nil
}

// Present records a present request.
func (h *Host) Present() {
	h.Presents++
}

// SupportedRenderingAPIs implements shell.APIDetector.
func (h *Host) SupportedRenderingAPIs() shell.RenderingAPIs {
	return h.apis
}

// SensorAvailable implements shell.SensorController.
func (h *Host) SensorAvailable(s shell.Sensor) bool {
	return h.sensorSet[s]
}

// EnableSensor implements shell.SensorController.
func (h *Host) EnableSensor(s shell.Sensor) {
	h.SensorSignals = append(h.SensorSignals, SensorSignal{Sensor: s, Enabled: true})
}

// DisableSensor implements shell.SensorController.
func (h *Host) DisableSensor(s shell.Sensor) {
	h.SensorSignals = append(h.SensorSignals, SensorSignal{Sensor: s, Enabled: false})
}

// HapticFeedbackSupported implements shell.HapticEngine.
func (h *Host) HapticFeedbackSupported() bool {
	return h.haptics
}

// PerformHapticFeedback implements shell.HapticEngine.
func (h *Host) PerformHapticFeedback(style shell.HapticStyle) {
	h.Haptics = append(h.Haptics, style)
}

// RequestKeyboardVisible implements shell.KeyboardController. The request
// is answered on the runner's next step, as a real keyboard animates in
// asynchronously.
func (h *Host) RequestKeyboardVisible(visible bool) {
	h.KeyboardRequests = append(h.KeyboardRequests, visible)
	if h.hasKeyboard {
		h.pendingKeyboard = &visible
	}
}

// SetMouseCursor implements shell.CursorController.
func (h *Host) SetMouseCursor(c shell.Cursor) {
	h.Cursors = append(h.Cursors, c)
}

// SetChrome implements shell.ChromeController.
func (h *Host) SetChrome(c shell.Chrome) {
	h.Chromes = append(h.Chromes, c)
}

// DeviceOrientations implements shell.OrientationController.
func (h *Host) DeviceOrientations() shell.Orientations {
	return h.device
}

// ApplyOrientations implements shell.OrientationController.
func (h *Host) ApplyOrientations(allowed shell.Orientations) {
	h.Allowed = allowed
}

// HasTouch implements shell.TouchDetector.
func (h *Host) HasTouch() bool {
	return h.touch
}

// takeKeyboard returns and clears a pending keyboard visibility change.
func (h *Host) takeKeyboard() (visible, ok bool) {
	if h.pendingKeyboard == nil {
		return false, false
	}
	visible = *h.pendingKeyboard
	h.pendingKeyboard = nil
	return visible, true
}

var (
	_ shell.Host                  = (*Host)(nil)
	_ shell.APIDetector           = (*Host)(nil)
	_ shell.SensorController      = (*Host)(nil)
	_ shell.HapticEngine          = (*Host)(nil)
	_ shell.KeyboardController    = (*Host)(nil)
	_ shell.CursorController      = (*Host)(nil)
	_ shell.ChromeController      = (*Host)(nil)
	_ shell.OrientationController = (*Host)(nil)
	_ shell.TouchDetector         = (*Host)(nil)
)
