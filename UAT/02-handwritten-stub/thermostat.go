// Package thermostat is a small controller whose sensor is stubbed by hand in
// its tests, without the generator.
package thermostat

import "errors"

// Sensor reads temperatures.
type Sensor interface {
	// Read returns the current temperature of zone in the given unit.
	Read(zone string, unit string) (float64, error)
}

// Thermostat turns heating on below its target temperature.
type Thermostat struct {
	sensor Sensor
	target float64
}

// New creates a Thermostat holding zones at target degrees Celsius.
func New(sensor Sensor, target float64) *Thermostat {
	return &Thermostat{sensor: sensor, target: target}
}

// ShouldHeat reports whether any zone is below target. A zone whose sensor fails
// is skipped unless every zone fails.
func (t *Thermostat) ShouldHeat(zones ...string) (bool, error) {
	var failures []error

	for _, zone := range zones {
		temperature, err := t.sensor.Read(zone, "C")
		if err != nil {
			failures = append(failures, err)

			continue
		}

		if temperature < t.target {
			return true, nil
		}
	}

	if len(zones) > 0 && len(failures) == len(zones) {
		return false, errors.Join(failures...)
	}

	return false, nil
}
