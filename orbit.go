package otv

import (
	"math"
	"time"
)

// OrbitRadius returns the radius of a circular orbit at the provided altitude (in km).
func OrbitRadius(altitude float64, body CelestialObject) float64 {
	return body.Radius + altitude
}

// CircularVelocity returns the speed on a circular orbit of radius r.
// The radius must be strictly positive.
func CircularVelocity(r float64, body CelestialObject) float64 {
	return math.Sqrt(body.GM() / r)
}

// transferVelocities returns the speed at both apsides of the transfer ellipse
// whose periapsis and apoapsis are rP and rA (in either order).
func transferVelocities(rP, rA float64, body CelestialObject) (vP, vA float64) {
	μ := body.GM()
	vP = math.Sqrt(2 * μ * rA / (rP * (rP + rA)))
	vA = math.Sqrt(2 * μ * rP / (rA * (rP + rA)))
	return
}

// HohmannΔv returns the total cost of a two impulse transfer between the
// coplanar circular orbits of radii r1 and r2.
// Each burn is an absolute difference, so HohmannΔv(r1, r2) == HohmannΔv(r2, r1)
// and HohmannΔv(r, r) == 0.
func HohmannΔv(r1, r2 float64, body CelestialObject) float64 {
	if r1 == r2 {
		// Avoid returning rounding noise for a null transfer.
		return 0
	}
	vDeparture, vArrival := transferVelocities(r1, r2, body)
	Δv1 := math.Abs(vDeparture - CircularVelocity(r1, body))
	Δv2 := math.Abs(CircularVelocity(r2, body) - vArrival)
	return Δv1 + Δv2
}

// BiEllipticΔv returns the total cost of a three impulse transfer from r1 to r2
// through the intermediate apoapsis rB.
// The result is valid for any rB > 0 but only beats Hohmann for large radii ratios.
func BiEllipticΔv(r1, r2, rB float64, body CelestialObject) float64 {
	// First ellipse: r1 -> rB
	vDeparture, vB1 := transferVelocities(r1, rB, body)
	Δv1 := math.Abs(vDeparture - CircularVelocity(r1, body))
	// Second ellipse: rB -> r2, raise or lower the periapsis at rB.
	vArrival, vB2 := transferVelocities(r2, rB, body)
	Δv2 := math.Abs(vB2 - vB1)
	Δv3 := math.Abs(CircularVelocity(r2, body) - vArrival)
	return Δv1 + Δv2 + Δv3
}

// halfPeriod returns the time to travel half of an ellipse of semi major axis a.
func halfPeriod(a float64, body CelestialObject) time.Duration {
	seconds := math.Pi * math.Sqrt(math.Pow(a, 3)/body.GM())
	return time.Duration(seconds * float64(time.Second))
}

// HohmannTransferTime returns the time of flight of the Hohmann transfer.
// It is zero when both orbits are the same.
func HohmannTransferTime(r1, r2 float64, body CelestialObject) time.Duration {
	if r1 == r2 {
		return 0
	}
	return halfPeriod(0.5*(r1+r2), body)
}

// BiEllipticTransferTime returns the time of flight of the bi-elliptic transfer.
func BiEllipticTransferTime(r1, r2, rB float64, body CelestialObject) time.Duration {
	return halfPeriod(0.5*(r1+rB), body) + halfPeriod(0.5*(r2+rB), body)
}
