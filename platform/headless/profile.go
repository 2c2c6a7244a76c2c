// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shell"
)

// ErrInvalidProfile is returned when a profile cannot describe a device.
var ErrInvalidProfile = errors.New("headless: invalid profile")

// Profile describes a simulated device and the event script replayed on it.
//
// Example:
//
//	name: phone
//	width: 1080
//	height: 2340
//	scale: 3
//	insets: {top: 88, bottom: 68}
//	apis: [gles2, gles3]
//	orientations: [portrait, landscapeLeft, landscapeRight]
//	orientation: portrait
//	sensors: [accelerometer, gyroscope]
//	haptics: true
//	touch: true
//	keyboard: true
//	script:
//	  - op: frames
//	    count: 3
//	  - op: rotate
//	    orientation: landscapeLeft
type Profile struct {
	Name   string       `yaml:"name"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Scale  float64      `yaml:"scale"`
	Insets shell.Insets `yaml:"insets"`

	// APIs lists the rendering APIs the device supports.
	APIs []string `yaml:"apis"`

	// Orientations lists what the device can rotate to. Empty means the
	// device does not rotate and reports OrientationUnknown.
	Orientations []string `yaml:"orientations"`

	// Orientation is the orientation at startup. Width and Height are the
	// surface size in this orientation.
	Orientation string `yaml:"orientation"`

	Sensors  []string `yaml:"sensors"`
	Haptics  bool     `yaml:"haptics"`
	Touch    bool     `yaml:"touch"`
	Keyboard bool     `yaml:"keyboard"`

	Script []Step `yaml:"script"`
}

// Step is one scripted host event. Op selects the event; the other fields
// are read as the op needs them.
//
//	frames        count
//	resize        width, height
//	rotate        orientation
//	touch         index, phase, x, y, mods
//	key           key, action, mods
//	char          text, mods
//	wheel         x, y, deltaType, deltaX, deltaY
//	sensor        sensor, values (3, or 9 for rotationMatrix)
//	focus, blur
//	memory
//	back
//	loseContext
//	keyboard      visible
type Step struct {
	Op string `yaml:"op"`

	Count  int `yaml:"count"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Orientation string `yaml:"orientation"`

	Index int     `yaml:"index"`
	Phase string  `yaml:"phase"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`

	Key    string   `yaml:"key"`
	Action string   `yaml:"action"`
	Text   string   `yaml:"text"`
	Mods   []string `yaml:"mods"`

	DeltaType string  `yaml:"deltaType"`
	DeltaX    float64 `yaml:"deltaX"`
	DeltaY    float64 `yaml:"deltaY"`

	Sensor string    `yaml:"sensor"`
	Values []float64 `yaml:"values"`

	Visible bool `yaml:"visible"`
}

// DefaultProfile returns a portrait phone with GLES2 and GLES3, touch,
// haptics, every sensor, and a short script of frames.
func DefaultProfile() *Profile {
	return &Profile{
		Name:         "phone",
		Width:        1080,
		Height:       2340,
		Scale:        3,
		Insets:       shell.Insets{Top: 88, Bottom: 68},
		APIs:         []string{"gles2", "gles3"},
		Orientations: []string{"portrait", "landscapeLeft", "landscapeRight"},
		Orientation:  "portrait",
		Sensors:      []string{"accelerometer", "magnetometer", "gyroscope", "rotationMatrix"},
		Haptics:      true,
		Touch:        true,
		Keyboard:     true,
		Script:       []Step{{Op: "frames", Count: 3}},
	}
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("headless: read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile and validates it.
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{Scale: 1}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("headless: parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks sizes and every enum name in the profile and its script.
func (p *Profile) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidProfile, p.Width, p.Height)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidProfile, p.Scale)
	}
	if _, err := p.renderingAPIs(); err != nil {
		return err
	}
	if _, err := p.deviceOrientations(); err != nil {
		return err
	}
	if _, err := p.initialOrientation(); err != nil {
		return err
	}
	if _, err := p.sensors(); err != nil {
		return err
	}
	for i := range p.Script {
		if err := p.Script[i].validate(); err != nil {
			return fmt.Errorf("%w: script step %d: %w", ErrInvalidProfile, i, err)
		}
	}
	return nil
}

func (p *Profile) renderingAPIs() (shell.RenderingAPIs, error) {
	var set shell.RenderingAPIs
	for _, name := range p.APIs {
		api, err := parseName(name, renderingAPIs)
		if err != nil {
			return 0, fmt.Errorf("%w: api: %w", ErrInvalidProfile, err)
		}
		set |= shell.RenderingAPIsOf(api)
	}
	return set, nil
}

func (p *Profile) deviceOrientations() (shell.Orientations, error) {
	var set shell.Orientations
	for _, name := range p.Orientations {
		o, err := parseName(name, orientations)
		if err != nil {
			return 0, fmt.Errorf("%w: orientation: %w", ErrInvalidProfile, err)
		}
		set |= shell.OrientationsOf(o)
	}
	return set, nil
}

func (p *Profile) initialOrientation() (shell.Orientation, error) {
	if p.Orientation == "" {
		return shell.OrientationUnknown, nil
	}
	o, err := parseName(p.Orientation, orientations)
	if err != nil {
		return 0, fmt.Errorf("%w: orientation: %w", ErrInvalidProfile, err)
	}
	return o, nil
}

func (p *Profile) sensors() (map[shell.Sensor]bool, error) {
	set := make(map[shell.Sensor]bool, len(p.Sensors))
	for _, name := range p.Sensors {
		s, err := parseName(name, sensors)
		if err != nil {
			return nil, fmt.Errorf("%w: sensor: %w", ErrInvalidProfile, err)
		}
		set[s] = true
	}
	return set, nil
}

// validate checks that the op exists and its enum fields parse.
func (s *Step) validate() error {
	var err error
	switch s.Op {
	case "frames", "focus", "blur", "memory", "back", "loseContext", "keyboard":
	case "resize":
		if s.Width <= 0 || s.Height <= 0 {
			err = fmt.Errorf("resize to %dx%d", s.Width, s.Height)
		}
	case "rotate":
		_, err = parseName(s.Orientation, orientations)
	case "touch":
		_, err = s.touch()
	case "key":
		_, err = s.key()
	case "char":
		_, err = s.mods()
	case "wheel":
		_, err = s.wheel()
	case "sensor":
		_, err = s.sensorEvent()
	default:
		err = fmt.Errorf("unknown op %q", s.Op)
	}
	return err
}

func (s *Step) mods() (shell.Modifiers, error) {
	var m shell.Modifiers
	for _, name := range s.Mods {
		mod, err := parseName(name, modifiers)
		if err != nil {
			return 0, err
		}
		m |= mod
	}
	return m, nil
}

func (s *Step) touch() (shell.TouchEvent, error) {
	phase, err := parseName(s.Phase, touchPhases)
	if err != nil {
		return shell.TouchEvent{}, err
	}
	mods, err := s.mods()
	if err != nil {
		return shell.TouchEvent{}, err
	}
	return shell.TouchEvent{Index: s.Index, Phase: phase, X: s.X, Y: s.Y, Modifiers: mods}, nil
}

func (s *Step) key() (shell.KeyEvent, error) {
	k, err := parseKey(s.Key)
	if err != nil {
		return shell.KeyEvent{}, err
	}
	action := shell.KeyActionPressed
	if s.Action != "" {
		if action, err = parseName(s.Action, keyActions); err != nil {
			return shell.KeyEvent{}, err
		}
	}
	mods, err := s.mods()
	if err != nil {
		return shell.KeyEvent{}, err
	}
	return shell.KeyEvent{Key: k, Action: action, Modifiers: mods}, nil
}

func (s *Step) wheel() (shell.WheelEvent, error) {
	dt := shell.WheelDeltaPixel
	if s.DeltaType != "" {
		var err error
		if dt, err = parseName(s.DeltaType, wheelDeltaTypes); err != nil {
			return shell.WheelEvent{}, err
		}
	}
	mods, err := s.mods()
	if err != nil {
		return shell.WheelEvent{}, err
	}
	return shell.WheelEvent{X: s.X, Y: s.Y, DeltaType: dt, DeltaX: s.DeltaX, DeltaY: s.DeltaY, Modifiers: mods}, nil
}

func (s *Step) sensorEvent() (shell.SensorEvent, error) {
	sensor, err := parseName(s.Sensor, sensors)
	if err != nil {
		return shell.SensorEvent{}, err
	}
	if sensor.UsesMatrix() {
		if len(s.Values) != 9 {
			return shell.SensorEvent{}, fmt.Errorf("%s needs 9 values, got %d", sensor, len(s.Values))
		}
		var m [9]float64
		copy(m[:], s.Values)
		return shell.NewMatrixEvent(shell.Now(), m), nil
	}
	if len(s.Values) != 3 {
		return shell.SensorEvent{}, fmt.Errorf("%s needs 3 values, got %d", sensor, len(s.Values))
	}
	return shell.NewVectorEvent(sensor, shell.Now(), [3]float64{s.Values[0], s.Values[1], s.Values[2]})
}

// Name tables for the enums a profile may mention.
var (
	renderingAPIs = []shell.RenderingAPI{
		shell.RenderingAPIGLES2, shell.RenderingAPIGLES3, shell.RenderingAPIGLES31,
		shell.RenderingAPIGLES32, shell.RenderingAPIMetal,
	}
	orientations = []shell.Orientation{
		shell.OrientationPortrait, shell.OrientationPortraitUpsideDown,
		shell.OrientationLandscapeLeft, shell.OrientationLandscapeRight,
	}
	sensors = []shell.Sensor{
		shell.SensorAccelerometer, shell.SensorMagnetometer,
		shell.SensorGyroscope, shell.SensorRotationMatrix,
	}
	modifiers = []shell.Modifiers{
		shell.ModShift, shell.ModCtrl, shell.ModAlt, shell.ModMeta, shell.ModFunction,
	}
	touchPhases = []shell.TouchPhase{
		shell.TouchPhaseHover, shell.TouchPhaseBegan, shell.TouchPhaseMoved,
		shell.TouchPhaseEnded, shell.TouchPhaseCancelled,
	}
	keyActions = []shell.KeyAction{
		shell.KeyActionPressed, shell.KeyActionRepeated, shell.KeyActionReleased,
	}
	wheelDeltaTypes = []shell.WheelDeltaType{
		shell.WheelDeltaPixel, shell.WheelDeltaLine, shell.WheelDeltaPage,
	}
)

// parseName finds the value whose String matches name, ignoring case.
func parseName[T fmt.Stringer](name string, values []T) (T, error) {
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown name %q", name)
}

// parseKey accepts a key name ("Enter", "NavigationBack"), a browser code
// ("KeyA", "Digit1") or a single printable character ("a").
func parseKey(name string) (shell.Key, error) {
	if k := shell.KeyFromDOMCode(name); k != shell.KeyUnknown {
		return k, nil
	}
	if r := []rune(name); len(r) == 1 {
		if k := shell.KeyFromRune(r[0]); k != shell.KeyUnknown {
			return k, nil
		}
	}
	for k := shell.Key(1); k <= 0xFF; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return shell.KeyUnknown, fmt.Errorf("unknown key %q", name)
}
