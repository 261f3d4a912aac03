package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ChristopherRabotin/otv"
	"github.com/hashicorp/go-hclog"
)

// errLTANInfeasible is returned when the requested LTAN change cannot be realized
// by J2 drift anywhere on the configured altitude grid.
var errLTANInfeasible = errors.New("no altitude of the grid can realize the requested LTAN drift")

// Design is the outcome of a scenario.
type Design struct {
	transfer    *otv.TransferPlan
	inclination *float64
	ltan        *otv.LTANSolution
	budget      otv.DeltaVBudget
	vehicle     otv.VehicleConfiguration
	engines     int // number of engines needed, zero without an engine
}

// design evaluates each maneuver of the scenario independently, accumulates the
// budget and sizes the vehicle.
func design(s Scenario, planner *otv.Planner, logger hclog.Logger) (Design, error) {
	var d Design
	if s.altitude != nil {
		plan, err := planner.AltitudeTransfer(s.altitude.initial, s.altitude.final)
		if err != nil {
			return d, fmt.Errorf("altitude change: %w", err)
		}
		logger.Info("altitude change", "maneuver", s.altitude.String(), "plan", plan.String())
		d.transfer = &plan
		if err := d.budget.Add("altitude", plan.Δv); err != nil {
			return d, err
		}
	}
	if s.inclination != nil {
		Δv, err := planner.InclinationChange(s.inclination.altitude, s.inclination.change)
		if err != nil {
			return d, fmt.Errorf("inclination change: %w", err)
		}
		logger.Info("inclination change", "maneuver", s.inclination.String(), "delta_v", Δv)
		d.inclination = &Δv
		if err := d.budget.Add("inclination", Δv); err != nil {
			return d, err
		}
	}
	if s.ltan != nil {
		sol, ok, err := planner.LTANAdjustment(s.ltan.initial, s.ltan.target, s.ltan.altitude, s.ltan.duration)
		if err != nil {
			return d, fmt.Errorf("LTAN change: %w", err)
		}
		if !ok {
			logger.Warn("LTAN change infeasible", "maneuver", s.ltan.String())
			return d, fmt.Errorf("LTAN change %s: %w", s.ltan, errLTANInfeasible)
		}
		logger.Info("LTAN change", "maneuver", s.ltan.String(), "solution", sol.String())
		d.ltan = &sol
		if err := d.budget.Add("ltan", sol.Δv); err != nil {
			return d, err
		}
	}
	logger.Info("budget", "total", d.budget.Total())

	vehicle, err := planner.SizeVehicleWith(s.vehicle.payload, d.budget.Total(), s.vehicle.params)
	if err != nil {
		return d, fmt.Errorf("vehicle sizing: %w", err)
	}
	d.vehicle = vehicle
	if s.vehicle.engine != nil {
		d.engines = otv.EngineCount(vehicle.Thrust, s.vehicle.engine)
	}
	return d, nil
}

// writeReport prints the design in a human readable table.
func writeReport(w io.Writer, s Scenario, d Design) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MANEUVER\tDETAILS\tΔv (km/s)")
	if d.transfer != nil {
		fmt.Fprintf(tw, "altitude\t%s (%s, %d burns, tof %s)\t%.3f\n", s.altitude, d.transfer.Method, d.transfer.Method.Burns(), d.transfer.TimeOfFlight.Round(time.Second), d.transfer.Δv)
	}
	if d.inclination != nil {
		fmt.Fprintf(tw, "inclination\t%s\t%.3f\n", s.inclination, *d.inclination)
	}
	if d.ltan != nil {
		details := fmt.Sprintf("%s: h=%d km i=%.3f deg drift=%.4f deg/day", s.ltan, d.ltan.Altitude, d.ltan.Inclination, d.ltan.DriftRate)
		if !s.epoch.IsZero() {
			details += fmt.Sprintf(" RAAN %.2f -> %.2f deg", otv.RAANFromLTAN(s.ltan.initial, s.epoch), otv.RAANFromLTAN(s.ltan.target, s.epoch))
		}
		fmt.Fprintf(tw, "ltan\t%s\t%.3f\n", details, d.ltan.Δv)
	}
	fmt.Fprintf(tw, "total\t\t%.3f\n", d.budget.Total())
	fmt.Fprintln(tw)

	v := d.vehicle
	fmt.Fprintln(tw, "VEHICLE\tVALUE\t")
	fmt.Fprintf(tw, "payload mass\t%.3f kg\t\n", v.PayloadMass)
	fmt.Fprintf(tw, "structural mass\t%.3f kg\t\n", v.StructuralMass)
	fmt.Fprintf(tw, "propellant mass\t%.3f kg\t\n", v.PropellantMass)
	fmt.Fprintf(tw, "total mass\t%.3f kg\t\n", v.TotalMass)
	fmt.Fprintf(tw, "payload fraction\t%.3f\t\n", v.PayloadFraction)
	fmt.Fprintf(tw, "propellant fraction\t%.3f\t\n", v.PropellantFraction)
	fmt.Fprintf(tw, "structural fraction\t%.3f\t\n", v.StructuralFraction)
	fmt.Fprintf(tw, "thrust\t%.3f N\t\n", v.Thrust)
	fmt.Fprintf(tw, "thrust to weight\t%.3f\t\n", v.ThrustToWeight)
	fmt.Fprintf(tw, "isp\t%.0f s\t\n", v.Isp)
	if s.vehicle.engine != nil {
		fmt.Fprintf(tw, "engines\t%d x %s\t\n", d.engines, s.vehicle.engine.Name())
	}
	return tw.Flush()
}
