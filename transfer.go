package otv

import (
	"fmt"
	"math"
	"time"
)

// TransferMethod defines how an altitude change is performed.
type TransferMethod uint8

const (
	// Hohmann is the two impulse transfer through a single ellipse.
	Hohmann TransferMethod = iota + 1
	// BiElliptic is the three impulse transfer through an intermediate apoapsis.
	BiElliptic
)

func (m TransferMethod) String() string {
	switch m {
	case Hohmann:
		return "hohmann"
	case BiElliptic:
		return "bi-elliptic"
	default:
		panic(fmt.Errorf("unknown transfer method %d", uint8(m)))
	}
}

// Burns returns the number of impulses of this method.
func (m TransferMethod) Burns() int {
	switch m {
	case Hohmann:
		return 2
	case BiElliptic:
		return 3
	default:
		panic(fmt.Errorf("unknown transfer method %d", uint8(m)))
	}
}

// TransferPlan is the cheapest way found to change altitude.
type TransferPlan struct {
	Method             TransferMethod
	Δv                 float64       // km/s
	IntermediateRadius float64       // km, only set for bi-elliptic transfers
	TimeOfFlight       time.Duration // sum of the transfer half periods
}

func (p TransferPlan) String() string {
	if p.Method == BiElliptic {
		return fmt.Sprintf("%s Δv=%.3f km/s rB=%.1f km tof=%s", p.Method, p.Δv, p.IntermediateRadius, p.TimeOfFlight)
	}
	return fmt.Sprintf("%s Δv=%.3f km/s tof=%s", p.Method, p.Δv, p.TimeOfFlight)
}

// SelectTransfer compares the Hohmann transfer between r1 and r2 to the bi-elliptic
// transfers whose intermediate apoapsis is each of the multipliers times max(r1, r2),
// and returns the cheapest. Ties go to Hohmann.
// This is a scan over a fixed candidate set, not an optimization over rB.
func SelectTransfer(r1, r2 float64, multipliers []float64, body CelestialObject) TransferPlan {
	plan := TransferPlan{
		Method:       Hohmann,
		Δv:           HohmannΔv(r1, r2, body),
		TimeOfFlight: HohmannTransferTime(r1, r2, body),
	}
	if r1 == r2 {
		return plan
	}
	bestΔv := math.Inf(1)
	var bestRB float64
	rMax := math.Max(r1, r2)
	for _, k := range multipliers {
		rB := k * rMax
		if Δv := BiEllipticΔv(r1, r2, rB, body); Δv < bestΔv {
			bestΔv = Δv
			bestRB = rB
		}
	}
	if bestΔv < plan.Δv {
		plan = TransferPlan{
			Method:             BiElliptic,
			Δv:                 bestΔv,
			IntermediateRadius: bestRB,
			TimeOfFlight:       BiEllipticTransferTime(r1, r2, bestRB, body),
		}
	}
	return plan
}
