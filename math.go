package otv

import "math"

const (
	deg2rad = math.Pi / 180
	// secondsPerDay converts drift rates between deg/day and rad/s.
	secondsPerDay = 86400.0
	// hours2deg is the rotation of the mean Sun per hour of local time.
	hours2deg = 15.0
)

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	return wrap(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	return wrap(a/deg2rad, 360)
}

// wrap returns a modulo period, always in [0, period).
func wrap(a, period float64) float64 {
	a = math.Mod(a, period)
	if a < 0 {
		a += period
	}
	return a
}

// shortestRotation normalizes an angle in degrees into (-180, 180] so that a
// node rotation always goes the short way around.
func shortestRotation(deg float64) float64 {
	deg = wrap(deg+180, 360) - 180
	if deg == -180 {
		return 180
	}
	return deg
}

// planeChangeAngle folds any plane change angle in degrees into [0, 180].
// A plane change of -10° or 350° is the same 10° rotation of the orbit normal.
func planeChangeAngle(deg float64) float64 {
	deg = wrap(math.Abs(deg), 360)
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
