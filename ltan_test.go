package otv

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func defaultLTANConfig() LTANConfig {
	return DefaultConfig().LTAN
}

func TestLTANGrid(t *testing.T) {
	alts := defaultLTANConfig().Altitudes()
	if len(alts) != 100 {
		t.Fatalf("expected 100 candidates, got %d", len(alts))
	}
	if alts[0] != 400 || alts[len(alts)-1] != 895 {
		t.Fatalf("incorrect grid bounds [%d, %d]", alts[0], alts[len(alts)-1])
	}
	for i := 1; i < len(alts); i++ {
		if alts[i]-alts[i-1] != 5 {
			t.Fatalf("incorrect step at %d", alts[i])
		}
	}
	if alts := (LTANConfig{MinAltitude: 500, MaxAltitude: 400, AltitudeStep: 5}).Altitudes(); len(alts) != 0 {
		t.Fatalf("inverted grid should be empty, got %v", alts)
	}
	if alts := (LTANConfig{MinAltitude: 400, MaxAltitude: 500}).Altitudes(); len(alts) != 0 {
		t.Fatalf("null step should yield an empty grid, got %v", alts)
	}
}

func TestRequiredDriftRate(t *testing.T) {
	if rate := RequiredDriftRate(9, 6, 90); !scalar.EqualWithinAbs(rate, -0.5, 1e-12) {
		t.Fatalf("incorrect drift rate %f", rate)
	}
	// 23h -> 1h is +2 hours, not -22 hours.
	if rate := RequiredDriftRate(23, 1, 10); !scalar.EqualWithinAbs(rate, 3, 1e-12) {
		t.Fatalf("drift should go the short way around, got %f", rate)
	}
	// A 12 hour shift is a +180 deg rotation.
	if rate := RequiredDriftRate(10, 22, 60); !scalar.EqualWithinAbs(rate, 3, 1e-12) {
		t.Fatalf("incorrect drift rate for a 12 hour shift %f", rate)
	}
	if rate := RequiredDriftRate(9, 9, 90); rate != 0 {
		t.Fatalf("no shift requires no drift, got %f", rate)
	}
}

func TestSolveLTANDrift(t *testing.T) {
	sol, ok := SolveLTANDrift(9, 6, 500, 90, defaultLTANConfig(), Earth, nil)
	if !ok {
		t.Fatal("expected a solution for 9h -> 6h in 90 days")
	}
	if sol.Altitude != 500 {
		t.Fatalf("expected 500 km, got %d km", sol.Altitude)
	}
	if !scalar.EqualWithinAbs(sol.Inclination, 86.258210, 1e-6) {
		t.Fatalf("incorrect inclination %f", sol.Inclination)
	}
	if !scalar.EqualWithinAbs(sol.Δv, 1.637474, 1e-6) {
		t.Fatalf("incorrect Δv %f", sol.Δv)
	}
	if sol.DriftRate != -0.5 || sol.DurationDays != 90 {
		t.Fatalf("incorrect drift rate or duration: %s", sol)
	}
	if sol.Candidates != 100 || sol.Feasible != 100 {
		t.Fatalf("expected 100 feasible candidates, got %d/%d", sol.Feasible, sol.Candidates)
	}
	// The drift realized by the solution is the one requested.
	if rate := NodalPrecessionRate(float64(sol.Altitude), sol.Inclination, Earth); !scalar.EqualWithinAbs(rate, sol.DriftRate, 1e-9) {
		t.Fatalf("solution drifts at %f deg/day instead of %f", rate, sol.DriftRate)
	}
}

func TestSolveLTANDriftGlobalMinimum(t *testing.T) {
	conf := defaultLTANConfig()
	for _, tc := range []struct {
		initLTAN, targetLTAN, alt, days float64
	}{{6, 9, 600, 30}, {10, 22, 500, 60}, {9, 6, 850, 90}, {13, 10.5, 420, 45}} {
		sol, ok := SolveLTANDrift(tc.initLTAN, tc.targetLTAN, tc.alt, tc.days, conf, Earth, nil)
		if !ok {
			t.Fatalf("%+v: no solution", tc)
		}
		rateRad := sol.DriftRate * deg2rad / secondsPerDay
		r0 := OrbitRadius(tc.alt, Earth)
		for _, h := range conf.Altitudes() {
			a := OrbitRadius(float64(h), Earth)
			cosi := rateRad / NodalDriftFactor(a, Earth)
			if math.Abs(cosi) > 1 {
				continue
			}
			Δi := math.Abs(math.Acos(cosi)/deg2rad - conf.ReferenceInclination)
			if Δv := HohmannΔv(r0, a, Earth) + InclinationΔv(float64(h), Δi, Earth); Δv < sol.Δv {
				t.Fatalf("%+v: %d km costs %f < solution %s", tc, h, Δv, sol)
			}
		}
	}
	sol, _ := SolveLTANDrift(6, 9, 600, 30, conf, Earth, nil)
	if sol.Altitude != 400 || !scalar.EqualWithinAbs(sol.Δv, 0.394566, 1e-6) {
		t.Fatalf("incorrect solution for 6h -> 9h in 30 days: %s", sol)
	}
}

func TestSolveLTANDriftNoShift(t *testing.T) {
	sol, ok := SolveLTANDrift(9, 9, 500, 90, defaultLTANConfig(), Earth, nil)
	if !ok {
		t.Fatal("expected a solution without LTAN shift")
	}
	if sol.DriftRate != 0 {
		t.Fatalf("expected no drift, got %f", sol.DriftRate)
	}
	if sol.Altitude != 500 || !scalar.EqualWithinAbs(sol.Inclination, 90, 1e-12) {
		t.Fatalf("expected to stay at 500 km on a polar orbit, got %s", sol)
	}
	if !scalar.EqualWithinAbs(sol.Δv, 1.142160, 1e-6) {
		t.Fatalf("incorrect Δv %f", sol.Δv)
	}
}

func TestSolveLTANDriftInfeasible(t *testing.T) {
	// 180 deg in a single day is way beyond what J2 can do.
	sol, ok := SolveLTANDrift(0, 12, 500, 1, defaultLTANConfig(), Earth, nil)
	if ok {
		t.Fatalf("expected no solution, got %s", sol)
	}
	if sol != (LTANSolution{}) {
		t.Fatalf("expected an empty solution, got %+v", sol)
	}
	// Empty grid
	if _, ok := SolveLTANDrift(9, 6, 500, 90, LTANConfig{MinAltitude: 400, MaxAltitude: 300, AltitudeStep: 5}, Earth, nil); ok {
		t.Fatal("an empty grid cannot have a solution")
	}
}
