package otv

import (
	"fmt"
	"math"
	"strings"
)

// Engine defines a propulsion unit available to the vehicle.
type Engine interface {
	// Returns the name of this engine.
	Name() string
	// Returns the thrust of one unit in Newtons.
	Thrust() float64
	// Returns the specific impulse in seconds.
	Isp() float64
}

/* Available engines */

// PPS1350 is the Snecma Hall thruster used on SMART-1.
type PPS1350 struct{}

// Name implements the Engine interface.
func (e *PPS1350) Name() string { return "PPS1350" }

// Thrust implements the Engine interface.
func (e *PPS1350) Thrust() float64 { return 89e-3 }

// Isp implements the Engine interface.
func (e *PPS1350) Isp() float64 { return 1650 }

// HERMeS is based on the NASA & Rocketdyne 12.5kW demo
type HERMeS struct{}

// Name implements the Engine interface.
func (e *HERMeS) Name() string { return "HERMeS" }

// Thrust implements the Engine interface.
func (e *HERMeS) Thrust() float64 { return 0.680 }

// Isp implements the Engine interface.
func (e *HERMeS) Isp() float64 { return 2960 }

// Monoprop is a 22 N class hydrazine thruster.
type Monoprop struct{}

// Name implements the Engine interface.
func (e *Monoprop) Name() string { return "hydrazine-22N" }

// Thrust implements the Engine interface.
func (e *Monoprop) Thrust() float64 { return 22 }

// Isp implements the Engine interface.
func (e *Monoprop) Isp() float64 { return 230 }

// Biprop is a 490 N class MMH/NTO apogee engine.
type Biprop struct{}

// Name implements the Engine interface.
func (e *Biprop) Name() string { return "mmh-nto-490N" }

// Thrust implements the Engine interface.
func (e *Biprop) Thrust() float64 { return 490 }

// Isp implements the Engine interface.
func (e *Biprop) Isp() float64 { return 320 }

// GenericEngine is an engine defined by its performance only.
type GenericEngine struct {
	name   string
	thrust float64
	isp    float64
}

// Name implements the Engine interface.
func (e *GenericEngine) Name() string { return e.name }

// Thrust implements the Engine interface.
func (e *GenericEngine) Thrust() float64 { return e.thrust }

// Isp implements the Engine interface.
func (e *GenericEngine) Isp() float64 { return e.isp }

// NewGenericEngine returns a generic engine.
func NewGenericEngine(name string, thrust, isp float64) *GenericEngine {
	return &GenericEngine{name, thrust, isp}
}

// EngineFromName returns one of the predefined engines.
func EngineFromName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "pps1350":
		return new(PPS1350), nil
	case "hermes":
		return new(HERMeS), nil
	case "monoprop", "hydrazine-22n":
		return new(Monoprop), nil
	case "biprop", "mmh-nto-490n":
		return new(Biprop), nil
	default:
		return nil, fmt.Errorf("unknown engine '%s'", name)
	}
}

// EngineCount returns how many units of the engine are needed to provide the thrust (N).
func EngineCount(thrust float64, e Engine) int {
	if thrust <= 0 {
		return 0
	}
	return int(math.Ceil(thrust / e.Thrust()))
}
