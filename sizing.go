package otv

import (
	"fmt"
	"math"
)

// g0 is the standard gravity in m/s^2.
const g0 = 9.80665

// VehicleParams are the propulsion and structure assumptions used to size a vehicle.
type VehicleParams struct {
	Isp                float64 `mapstructure:"isp"`                 // seconds
	StructuralFraction float64 `mapstructure:"structural_fraction"` // structure / (structure + payload)
	ThrustToWeight     float64 `mapstructure:"thrust_to_weight"`
}

// DefaultVehicleParams returns a storable biprop stage: 320 s, 10% structure, T/W of 0.3.
func DefaultVehicleParams() VehicleParams {
	return VehicleParams{Isp: 320, StructuralFraction: 0.1, ThrustToWeight: 0.3}
}

// WithEngine returns a copy of these parameters using the Isp of the provided engine.
func (p VehicleParams) WithEngine(e Engine) VehicleParams {
	p.Isp = e.Isp()
	return p
}

// Validate returns an error if these parameters cannot size a vehicle.
func (p VehicleParams) Validate() error {
	if !isFinite(p.Isp) || p.Isp <= 0 {
		return newValidationError("isp", p.Isp, "must be strictly positive")
	}
	if !isFinite(p.StructuralFraction) || p.StructuralFraction < 0 || p.StructuralFraction >= 1 {
		return newValidationError("structural_fraction", p.StructuralFraction, "must be in [0, 1)")
	}
	if !isFinite(p.ThrustToWeight) || p.ThrustToWeight <= 0 {
		return newValidationError("thrust_to_weight", p.ThrustToWeight, "must be strictly positive")
	}
	return nil
}

// VehicleConfiguration is the mass and thrust breakdown of a sized vehicle.
// Masses in kg, thrust in N.
type VehicleConfiguration struct {
	PayloadMass        float64
	StructuralMass     float64
	PropellantMass     float64
	TotalMass          float64
	PayloadFraction    float64
	PropellantFraction float64
	StructuralFraction float64
	Thrust             float64
	ThrustToWeight     float64
	Isp                float64
}

// DryMass returns the mass of the vehicle once all propellant is burnt.
func (c VehicleConfiguration) DryMass() float64 {
	return c.PayloadMass + c.StructuralMass
}

// String implements the Stringer interface.
func (c VehicleConfiguration) String() string {
	return fmt.Sprintf("m0=%.1f kg (payload %.1f, structure %.1f, propellant %.1f) thrust=%.1f N Isp=%.0f s", c.TotalMass, c.PayloadMass, c.StructuralMass, c.PropellantMass, c.Thrust, c.Isp)
}

// SizeVehicle sizes a vehicle carrying the payload (kg) through a total Δv (km/s)
// with the ideal rocket equation. The inputs must be valid (cf. VehicleParams.Validate).
func SizeVehicle(payloadMass, Δv float64, p VehicleParams) VehicleConfiguration {
	dry := payloadMass / (1 - p.StructuralFraction)
	m0 := dry * math.Exp(Δv*1e3/(p.Isp*g0))
	propellant := m0 - dry
	structure := dry - payloadMass
	return VehicleConfiguration{
		PayloadMass:        payloadMass,
		StructuralMass:     structure,
		PropellantMass:     propellant,
		TotalMass:          m0,
		PayloadFraction:    payloadMass / m0,
		PropellantFraction: propellant / m0,
		StructuralFraction: structure / m0,
		Thrust:             m0 * g0 * p.ThrustToWeight,
		ThrustToWeight:     p.ThrustToWeight,
		Isp:                p.Isp,
	}
}

// AvailableΔv returns the Δv (km/s) a vehicle of the given configuration can
// deliver when burning all of its propellant. It inverts SizeVehicle.
func AvailableΔv(c VehicleConfiguration) float64 {
	return c.Isp * g0 * math.Log(c.TotalMass/c.DryMass()) / 1e3
}
