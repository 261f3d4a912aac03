package otv

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// tropicalYear is the mean tropical year in days.
	tropicalYear = 365.2421897
	// j2000 is the Julian date of the J2000 epoch.
	j2000 = 2451545.0
)

// NodalDriftFactor returns the secular J2 regression of the ascending node per
// unit of cos(i), in rad/s, for a circular orbit of semi major axis a:
// dΩ/dt = NodalDriftFactor(a) * cos(i).
func NodalDriftFactor(a float64, body CelestialObject) float64 {
	n := math.Sqrt(body.GM() / math.Pow(a, 3))
	return -1.5 * body.J(2) * math.Pow(body.Radius, 2) * n / math.Pow(a, 2)
}

// NodalPrecessionRate returns the J2 nodal precession in degrees per day of a
// circular orbit at the given altitude (km) and inclination (degrees).
func NodalPrecessionRate(altitude, inclination float64, body CelestialObject) float64 {
	drift := NodalDriftFactor(OrbitRadius(altitude, body), body) * math.Cos(inclination*deg2rad)
	return drift / deg2rad * secondsPerDay
}

// SunSynchronousInclination returns the inclination (degrees) for which the
// nodal precession follows the mean motion of the Sun. Returns false if no
// inclination can provide enough precession at this altitude.
func SunSynchronousInclination(altitude float64, body CelestialObject) (float64, bool) {
	rate := (360 / tropicalYear) * deg2rad / secondsPerDay
	cosi := rate / NodalDriftFactor(OrbitRadius(altitude, body), body)
	if math.Abs(cosi) > 1 {
		return 0, false
	}
	return math.Acos(cosi) / deg2rad, true
}

// meanSunRightAscension returns the right ascension (degrees) of the mean Sun at
// the provided epoch, which is the mean longitude of the Sun.
func meanSunRightAscension(epoch time.Time) float64 {
	d := julian.TimeToJD(epoch.UTC()) - j2000
	return wrap(280.460+0.9856474*d, 360)
}

// RAANFromLTAN returns the right ascension of the ascending node (degrees, in
// [0, 360)) of an orbit with the provided local time of ascending node (hours).
func RAANFromLTAN(ltan float64, epoch time.Time) float64 {
	return wrap(meanSunRightAscension(epoch)+(ltan-12)*hours2deg, 360)
}

// LTANFromRAAN returns the local time of ascending node (hours, in [0, 24)) of an
// orbit with the provided right ascension of the ascending node (degrees).
func LTANFromRAAN(raan float64, epoch time.Time) float64 {
	return wrap(12+(raan-meanSunRightAscension(epoch))/hours2deg, 24)
}
