package shell

import (
	"fmt"
	"time"

	"golang.org/x/image/math/f64"
)

// Sensor is a hardware sensor type.
type Sensor uint8

const (
	// SensorAccelerometer reports acceleration in G's as a vector.
	SensorAccelerometer Sensor = iota

	// SensorMagnetometer reports the magnetic field in microteslas as a
	// vector.
	SensorMagnetometer

	// SensorGyroscope reports the rotation rate in radians per second as a
	// vector.
	SensorGyroscope

	// SensorRotationMatrix reports device attitude as a 3x3 rotation matrix
	// whose X axis points North and whose Z axis is vertical.
	SensorRotationMatrix

	sensorCount
)

// String returns the sensor name.
func (s Sensor) String() string {
	switch s {
	case SensorAccelerometer:
		return "Accelerometer"
	case SensorMagnetometer:
		return "Magnetometer"
	case SensorGyroscope:
		return "Gyroscope"
	case SensorRotationMatrix:
		return "RotationMatrix"
	default:
		return "Unknown"
	}
}

func (s Sensor) valid() bool { return s < sensorCount }

// UsesMatrix reports whether samples of this sensor carry a matrix rather
// than a vector.
func (s Sensor) UsesMatrix() bool { return s == SensorRotationMatrix }

// sensorPayload is the closed set of payload variants.
type sensorPayload interface {
	isSensorPayload()
}

type vectorPayload f64.Vec3

type matrixPayload f64.Mat3

func (vectorPayload) isSensorPayload() {}
func (matrixPayload) isSensorPayload() {}

// SensorEvent is one sensor sample. Exactly one payload variant is set and
// the Sensor tag decides which: use Vector for every sensor except
// SensorRotationMatrix, which uses Matrix.
type SensorEvent struct {
	// Sensor is the sensor that produced the sample.
	Sensor Sensor

	// Timestamp is monotonic and unrelated to wall-clock time.
	Timestamp time.Duration

	payload sensorPayload
}

// NewVectorEvent builds a vector sample. It fails for SensorRotationMatrix.
func NewVectorEvent(s Sensor, ts time.Duration, v f64.Vec3) (SensorEvent, error) {
	if !s.valid() || s.UsesMatrix() {
		return SensorEvent{}, fmt.Errorf("%w: %s does not report vectors", ErrSensorPayload, s)
	}
	return SensorEvent{Sensor: s, Timestamp: ts, payload: vectorPayload(v)}, nil
}

// NewMatrixEvent builds a rotation matrix sample. m is row-major.
func NewMatrixEvent(ts time.Duration, m f64.Mat3) SensorEvent {
	return SensorEvent{Sensor: SensorRotationMatrix, Timestamp: ts, payload: matrixPayload(m)}
}

// Vector returns the vector payload. ok is false for matrix samples.
func (e SensorEvent) Vector() (v f64.Vec3, ok bool) {
	p, ok := e.payload.(vectorPayload)
	return f64.Vec3(p), ok
}

// Matrix returns the row-major matrix payload. ok is false for vector
// samples.
func (e SensorEvent) Matrix() (m f64.Mat3, ok bool) {
	p, ok := e.payload.(matrixPayload)
	return f64.Mat3(p), ok
}

// Valid reports whether the payload variant matches the sensor tag.
func (e SensorEvent) Valid() bool {
	switch e.payload.(type) {
	case vectorPayload:
		return e.Sensor.valid() && !e.Sensor.UsesMatrix()
	case matrixPayload:
		return e.Sensor == SensorRotationMatrix
	default:
		return false
	}
}

// IsSensorAvailable reports whether the host has the sensor. It is false
// when the host has no SensorController; it never fails.
func (d *Display) IsSensorAvailable(s Sensor) bool {
	sc, ok := d.host.(SensorController)
	return ok && s.valid() && sc.SensorAvailable(s)
}

// SensorEnabled reports whether the hardware stream for s is currently on.
func (d *Display) SensorEnabled(s Sensor) bool {
	return s.valid() && d.sensorsOn[s]
}

// SetSensorFunc installs the callback for sensor s and returns the previous
// one. Installing a non-nil callback turns the hardware stream on;
// installing nil turns it off. Sensor streams drain battery, so clear the
// callback when samples are not needed.
//
// When the sensor is not available the call does nothing and returns nil.
func (d *Display) SetSensorFunc(s Sensor, fn SensorFunc) SensorFunc {
	if !d.IsSensorAvailable(s) {
		Logger().Debug("shell: sensor unavailable", "sensor", s)
		return nil
	}
	prev := d.callbacks.sensors[s].replace(fn, fn != nil)
	d.syncSensor(s)
	return prev
}

// syncSensor reconciles the hardware stream with the callback slot. A
// signal is sent only when the wanted state differs from the current one,
// so disabling an already disabled sensor sends nothing.
func (d *Display) syncSensor(s Sensor) {
	_, want := d.callbacks.sensors[s].get()
	if d.state == StateTerminated || (d.pauseSensors && !d.focused) {
		want = false
	}
	if want == d.sensorsOn[s] {
		return
	}
	sc, ok := d.host.(SensorController)
	if !ok {
		return
	}
	d.sensorsOn[s] = want
	if want {
		sc.EnableSensor(s)
	} else {
		sc.DisableSensor(s)
	}
}

// syncSensors reconciles every sensor.
func (d *Display) syncSensors() {
	for s := Sensor(0); s < sensorCount; s++ {
		d.syncSensor(s)
	}
}
