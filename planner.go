package otv

import (
	"github.com/hashicorp/go-hclog"
)

// Planner computes the maneuver costs and sizes the vehicle of an OTV mission.
// It only holds immutable configuration and may be shared between goroutines.
type Planner struct {
	conf   Config
	logger hclog.Logger
}

// PlannerOption customizes a Planner.
type PlannerOption func(*Planner)

// WithLogger sets the logger used to trace the searches.
func WithLogger(logger hclog.Logger) PlannerOption {
	return func(p *Planner) {
		p.logger = logger
	}
}

// NewPlanner returns a new planner after validating the configuration.
func NewPlanner(conf Config, opts ...PlannerOption) (*Planner, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	p := &Planner{conf: conf, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named("planner")
	return p, nil
}

// Config returns the configuration of this planner.
func (p *Planner) Config() Config {
	return p.conf
}

func checkAltitude(field string, altitude float64) error {
	if !isFinite(altitude) || altitude <= 0 {
		return newValidationError(field, altitude, "must be a strictly positive altitude in km")
	}
	return nil
}

// AltitudeTransfer returns the cheapest of the Hohmann and bi-elliptic transfers
// between the two circular orbit altitudes (km).
func (p *Planner) AltitudeTransfer(initialAltitude, finalAltitude float64) (TransferPlan, error) {
	if err := checkAltitude("initial_altitude", initialAltitude); err != nil {
		return TransferPlan{}, err
	}
	if err := checkAltitude("final_altitude", finalAltitude); err != nil {
		return TransferPlan{}, err
	}
	body := p.conf.Body
	plan := SelectTransfer(OrbitRadius(initialAltitude, body), OrbitRadius(finalAltitude, body), p.conf.Transfer.BiEllipticMultipliers, body)
	p.logger.Debug("altitude transfer", "from", initialAltitude, "to", finalAltitude, "plan", plan.String())
	return plan, nil
}

// InclinationChange returns the cost (km/s) of rotating the orbit plane by Δi
// degrees at the given altitude (km). Δi is folded into [0, 180] first, so that
// -10 and 350 both cost a 10 degree plane change.
func (p *Planner) InclinationChange(altitude, Δi float64) (float64, error) {
	if err := checkAltitude("altitude", altitude); err != nil {
		return 0, err
	}
	if !isFinite(Δi) {
		return 0, newValidationError("delta_inclination", Δi, "must be finite")
	}
	Δv := InclinationΔv(altitude, planeChangeAngle(Δi), p.conf.Body)
	p.logger.Debug("inclination change", "altitude", altitude, "delta_inclination", Δi, "delta_v", Δv)
	return Δv, nil
}

// LTANAdjustment searches the altitude grid for the cheapest orbit whose J2 nodal
// drift moves the LTAN from initialLTAN to targetLTAN (hours) in durationDays.
// The boolean is false when no altitude of the grid can realize the drift: this
// is an expected outcome, not an error.
func (p *Planner) LTANAdjustment(initialLTAN, targetLTAN, initialAltitude, durationDays float64) (LTANSolution, bool, error) {
	if !isFinite(initialLTAN) {
		return LTANSolution{}, false, newValidationError("initial_ltan", initialLTAN, "must be finite")
	}
	if !isFinite(targetLTAN) {
		return LTANSolution{}, false, newValidationError("target_ltan", targetLTAN, "must be finite")
	}
	if err := checkAltitude("initial_altitude", initialAltitude); err != nil {
		return LTANSolution{}, false, err
	}
	if !isFinite(durationDays) || durationDays <= 0 {
		return LTANSolution{}, false, newValidationError("duration_days", durationDays, "must be strictly positive")
	}
	sol, ok := SolveLTANDrift(initialLTAN, targetLTAN, initialAltitude, durationDays, p.conf.LTAN, p.conf.Body, p.logger)
	return sol, ok, nil
}

// SizeVehicle sizes the vehicle for the payload (kg) and total Δv (km/s) using the
// configured vehicle parameters.
func (p *Planner) SizeVehicle(payloadMass, Δv float64) (VehicleConfiguration, error) {
	return p.SizeVehicleWith(payloadMass, Δv, p.conf.Vehicle)
}

// SizeVehicleWith sizes the vehicle with specific vehicle parameters.
func (p *Planner) SizeVehicleWith(payloadMass, Δv float64, params VehicleParams) (VehicleConfiguration, error) {
	if !isFinite(payloadMass) || payloadMass <= 0 {
		return VehicleConfiguration{}, newValidationError("payload_mass", payloadMass, "must be strictly positive")
	}
	if !isFinite(Δv) || Δv < 0 {
		return VehicleConfiguration{}, newValidationError("delta_v", Δv, "must be a finite non negative value")
	}
	if err := params.Validate(); err != nil {
		return VehicleConfiguration{}, err
	}
	conf := SizeVehicle(payloadMass, Δv, params)
	p.logger.Debug("vehicle sized", "config", conf.String())
	return conf, nil
}
