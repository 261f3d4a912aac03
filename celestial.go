package otv

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// CelestialObject defines the central body around which the vehicle maneuvers.
// Only the terms needed by the closed-form maneuver costs and the J2 nodal
// drift model are kept.
type CelestialObject struct {
	Name   string
	Radius float64 // Mean equatorial radius in km
	μ      float64
	J2     float64
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the perturbing J_n factor for the provided n.
// Only J2 is modeled, any other n returns zero.
func (c CelestialObject) J(n uint8) float64 {
	if n == 2 {
		return c.J2
	}
	return 0.0
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && scalar.EqualWithinAbs(c.Radius, b.Radius, 1e-9) &&
		scalar.EqualWithinAbs(c.μ, b.μ, 1e-9) && scalar.EqualWithinAbs(c.J2, b.J2, 1e-12)
}

// NewCelestialObject returns a custom central body.
func NewCelestialObject(name string, radius, μ, j2 float64) CelestialObject {
	return CelestialObject{name, radius, μ, j2}
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Earth is home. The radius is the mean spherical radius used for OTV budgeting.
var Earth = CelestialObject{"Earth", 6371.0, 398600.4418, 1.08263e-3}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 4.28283100e4, 1964e-6}
