package otv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InclinationΔv returns the cost of a single burn plane change of Δi degrees on
// a circular orbit at the provided altitude.
// Δi is expected in [0, 180]; the Planner folds any other value into that range.
func InclinationΔv(altitude, Δi float64, body CelestialObject) float64 {
	v := CircularVelocity(OrbitRadius(altitude, body), body)
	return 2 * v * math.Sin(Δi*deg2rad/2)
}

// PlaneChangeΔvVec returns the plane change burn expressed in the VNC frame of
// the initial orbit (velocity, orbit normal, co-normal) for a circular speed v
// and a rotation of Δi degrees. Its norm is 2·v·sin(Δi/2).
func PlaneChangeΔvVec(v, Δi float64) *mat.VecDense {
	sΔi, cΔi := math.Sincos(Δi * deg2rad)
	// The burn is the difference between the rotated and the initial velocity.
	return mat.NewVecDense(3, []float64{v * (cΔi - 1), v * sΔi, 0})
}
