package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChristopherRabotin/otv"
	"github.com/spf13/viper"
)

const dateFormat = "2006-01-02 15:04:05"

// AltitudeChange is the coplanar altitude change maneuver.
type AltitudeChange struct {
	initial, final float64
}

func (a AltitudeChange) String() string {
	return fmt.Sprintf("%.1f km -> %.1f km", a.initial, a.final)
}

// InclinationChange is the plane change maneuver.
type InclinationChange struct {
	altitude, change float64
}

func (i InclinationChange) String() string {
	return fmt.Sprintf("Δi=%.3f deg at %.1f km", i.change, i.altitude)
}

// LTANChange is the passive node drift maneuver.
type LTANChange struct {
	altitude, initial, target, duration float64
}

func (l LTANChange) String() string {
	return fmt.Sprintf("%.2fh -> %.2fh in %.1f days from %.1f km", l.initial, l.target, l.duration, l.altitude)
}

// Vehicle defines the payload and optional overrides of the vehicle parameters.
type Vehicle struct {
	payload float64
	engine  otv.Engine
	params  otv.VehicleParams
}

// Scenario is an OTV mission: any subset of the three maneuvers and the vehicle.
type Scenario struct {
	epoch       time.Time // zero if unset
	altitude    *AltitudeChange
	inclination *InclinationChange
	ltan        *LTANChange
	vehicle     Vehicle
}

// readScenario reads the scenario from a loaded viper instance. Vehicle
// parameters which are not set in the scenario use those of defaults.
func readScenario(v *viper.Viper, defaults otv.VehicleParams) (Scenario, error) {
	var s Scenario
	if v.IsSet("general.epoch") {
		epoch, err := time.Parse(dateFormat, v.GetString("general.epoch"))
		if err != nil {
			return s, fmt.Errorf("general.epoch: %w", err)
		}
		s.epoch = epoch
	}
	if v.IsSet("altitude") {
		s.altitude = &AltitudeChange{v.GetFloat64("altitude.initial"), v.GetFloat64("altitude.final")}
	}
	if v.IsSet("inclination") {
		s.inclination = &InclinationChange{v.GetFloat64("inclination.altitude"), v.GetFloat64("inclination.change")}
	}
	if v.IsSet("ltan") {
		s.ltan = &LTANChange{
			altitude: v.GetFloat64("ltan.altitude"),
			initial:  v.GetFloat64("ltan.initial"),
			target:   v.GetFloat64("ltan.target"),
			duration: v.GetFloat64("ltan.duration"),
		}
	}
	if s.altitude == nil && s.inclination == nil && s.ltan == nil {
		return s, errors.New("scenario defines no maneuver")
	}

	if !v.IsSet("vehicle.payload") {
		return s, errors.New("vehicle.payload is required")
	}
	s.vehicle.payload = v.GetFloat64("vehicle.payload")
	s.vehicle.params = defaults
	if v.IsSet("vehicle.engine") {
		engine, err := otv.EngineFromName(v.GetString("vehicle.engine"))
		if err != nil {
			return s, fmt.Errorf("vehicle.engine: %w", err)
		}
		s.vehicle.engine = engine
		s.vehicle.params = s.vehicle.params.WithEngine(engine)
	}
	if v.IsSet("vehicle.isp") {
		s.vehicle.params.Isp = v.GetFloat64("vehicle.isp")
	}
	if v.IsSet("vehicle.structural_fraction") {
		s.vehicle.params.StructuralFraction = v.GetFloat64("vehicle.structural_fraction")
	}
	if v.IsSet("vehicle.thrust_to_weight") {
		s.vehicle.params.ThrustToWeight = v.GetFloat64("vehicle.thrust_to_weight")
	}
	return s, nil
}

// loadScenario reads the scenario file at path.
func loadScenario(path string, defaults otv.VehicleParams) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return readScenario(v, defaults)
}
