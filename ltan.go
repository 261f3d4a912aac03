package otv

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
)

// LTANConfig defines the altitude grid scanned by the LTAN drift solver and the
// inclination against which plane changes are costed.
type LTANConfig struct {
	MinAltitude          int     `mapstructure:"min_altitude"`          // km, first grid point
	MaxAltitude          int     `mapstructure:"max_altitude"`          // km, last grid point (inclusive)
	AltitudeStep         int     `mapstructure:"altitude_step"`         // km
	ReferenceInclination float64 `mapstructure:"reference_inclination"` // degrees
}

// Altitudes returns every candidate altitude of the grid, in increasing order.
func (c LTANConfig) Altitudes() []int {
	if c.AltitudeStep <= 0 || c.MaxAltitude < c.MinAltitude {
		return nil
	}
	alts := make([]int, 0, (c.MaxAltitude-c.MinAltitude)/c.AltitudeStep+1)
	for h := c.MinAltitude; h <= c.MaxAltitude; h += c.AltitudeStep {
		alts = append(alts, h)
	}
	return alts
}

// LTANSolution is the cheapest altitude and inclination pair whose J2 nodal drift
// moves the LTAN to its target in the requested duration.
type LTANSolution struct {
	Altitude     int     // km
	Inclination  float64 // degrees
	Δv           float64 // km/s, altitude change plus plane change
	DriftRate    float64 // deg/day
	DurationDays float64
	Candidates   int // grid points evaluated
	Feasible     int // grid points where an inclination realizes the drift rate
}

func (s LTANSolution) String() string {
	return fmt.Sprintf("h=%d km i=%.3f deg Δv=%.3f km/s drift=%.4f deg/day over %.1f days", s.Altitude, s.Inclination, s.Δv, s.DriftRate, s.DurationDays)
}

// RequiredDriftRate returns the nodal drift rate (deg/day) which moves the
// ascending node from initialLTAN to targetLTAN (hours) the short way around.
// The duration must be strictly positive.
func RequiredDriftRate(initialLTAN, targetLTAN, durationDays float64) float64 {
	ΔΩ := shortestRotation((targetLTAN - initialLTAN) * hours2deg)
	return ΔΩ / durationDays
}

// SolveLTANDrift scans the whole altitude grid. At each altitude, it derives the
// inclination whose J2 nodal regression equals the required drift rate, and costs
// reaching that orbit from initialAltitude: a Hohmann transfer plus a plane change
// from the reference inclination. It returns the global minimum, or false if no
// grid point can realize the drift rate.
func SolveLTANDrift(initialLTAN, targetLTAN, initialAltitude, durationDays float64, conf LTANConfig, body CelestialObject, logger hclog.Logger) (LTANSolution, bool) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	rate := RequiredDriftRate(initialLTAN, targetLTAN, durationDays)
	rateRad := rate * deg2rad / secondsPerDay
	r0 := OrbitRadius(initialAltitude, body)

	best := LTANSolution{Δv: math.Inf(1), DriftRate: rate, DurationDays: durationDays}
	found := false
	for _, h := range conf.Altitudes() {
		best.Candidates++
		a := OrbitRadius(float64(h), body)
		cosi := rateRad / NodalDriftFactor(a, body)
		if math.Abs(cosi) > 1 {
			logger.Trace("no inclination realizes drift", "altitude", h, "cos_i", cosi)
			continue
		}
		best.Feasible++
		i := math.Acos(cosi) / deg2rad
		Δi := math.Abs(i - conf.ReferenceInclination)
		Δv := HohmannΔv(r0, a, body) + InclinationΔv(float64(h), Δi, body)
		logger.Trace("candidate", "altitude", h, "inclination", i, "delta_v", Δv)
		if Δv < best.Δv {
			best.Altitude = h
			best.Inclination = i
			best.Δv = Δv
			found = true
		}
	}
	if !found {
		logger.Debug("LTAN drift infeasible over grid", "drift_rate", rate, "candidates", best.Candidates)
		return LTANSolution{}, false
	}
	logger.Debug("LTAN drift solved", "solution", best.String(), "feasible", best.Feasible, "candidates", best.Candidates)
	return best, true
}
