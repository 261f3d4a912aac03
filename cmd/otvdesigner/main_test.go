package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChristopherRabotin/otv"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newPlanner(t *testing.T) *otv.Planner {
	t.Helper()
	planner, err := otv.NewPlanner(otv.DefaultConfig())
	require.NoError(t, err)
	return planner
}

func TestLoadScenarioExample(t *testing.T) {
	s, err := loadScenario("example.toml", otv.DefaultVehicleParams())
	require.NoError(t, err)

	require.NotNil(t, s.altitude)
	assert.Equal(t, AltitudeChange{500, 600}, *s.altitude)
	require.NotNil(t, s.inclination)
	assert.Equal(t, InclinationChange{500, 5}, *s.inclination)
	require.NotNil(t, s.ltan)
	assert.Equal(t, LTANChange{altitude: 500, initial: 9, target: 6, duration: 90}, *s.ltan)
	assert.False(t, s.epoch.IsZero())

	assert.Equal(t, 500.0, s.vehicle.payload)
	assert.Equal(t, 300.0, s.vehicle.params.Isp)
	assert.Equal(t, 0.1, s.vehicle.params.StructuralFraction)
	assert.Equal(t, 0.3, s.vehicle.params.ThrustToWeight)
	assert.Nil(t, s.vehicle.engine)
}

func TestReadScenarioEngine(t *testing.T) {
	v := viper.New()
	v.Set("inclination.altitude", 700)
	v.Set("inclination.change", 2)
	v.Set("vehicle.payload", 150)
	v.Set("vehicle.engine", "hermes")
	v.Set("vehicle.thrust_to_weight", 1e-4)
	s, err := readScenario(v, otv.DefaultVehicleParams())
	require.NoError(t, err)
	assert.Nil(t, s.altitude)
	assert.Nil(t, s.ltan)
	require.NotNil(t, s.vehicle.engine)
	assert.Equal(t, "HERMeS", s.vehicle.engine.Name())
	assert.Equal(t, 2960.0, s.vehicle.params.Isp)
	assert.Equal(t, 1e-4, s.vehicle.params.ThrustToWeight)
}

func TestReadScenarioErrors(t *testing.T) {
	for name, content := range map[string]string{
		"no maneuver":    "[vehicle]\npayload = 500\n",
		"no payload":     "[altitude]\ninitial = 500\nfinal = 600\n",
		"unknown engine": "[altitude]\ninitial = 500\nfinal = 600\n[vehicle]\npayload = 500\nengine = \"warp\"\n",
		"bad epoch":      "[general]\nepoch = \"yesterday\"\n[altitude]\ninitial = 500\nfinal = 600\n[vehicle]\npayload = 500\n",
	} {
		_, err := loadScenario(writeScenario(t, content), otv.DefaultVehicleParams())
		assert.Error(t, err, name)
	}
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.toml"), otv.DefaultVehicleParams())
	assert.Error(t, err)
}

func TestDesignExample(t *testing.T) {
	s, err := loadScenario("example.toml", otv.DefaultVehicleParams())
	require.NoError(t, err)
	d, err := design(s, newPlanner(t), hclog.NewNullLogger())
	require.NoError(t, err)

	require.NotNil(t, d.transfer)
	assert.Equal(t, otv.Hohmann, d.transfer.Method)
	assert.InDelta(t, 0.054827, d.transfer.Δv, 1e-6)
	require.NotNil(t, d.inclination)
	assert.InDelta(t, 0.664459, *d.inclination, 1e-6)
	require.NotNil(t, d.ltan)
	assert.Equal(t, 500, d.ltan.Altitude)
	assert.InDelta(t, 1.637474, d.ltan.Δv, 1e-6)

	assert.Len(t, d.budget.Entries(), 3)
	assert.InDelta(t, 2.356760, d.budget.Total(), 1e-6)
	v := d.vehicle
	assert.InDelta(t, v.TotalMass, v.PayloadMass+v.StructuralMass+v.PropellantMass, 1e-6)
	assert.InDelta(t, d.budget.Total(), otv.AvailableΔv(v), 1e-9)
	assert.Equal(t, 300.0, v.Isp)
	assert.Zero(t, d.engines)
}

func TestDesignInfeasibleLTAN(t *testing.T) {
	s := Scenario{
		ltan:    &LTANChange{altitude: 500, initial: 0, target: 12, duration: 1},
		vehicle: Vehicle{payload: 500, params: otv.DefaultVehicleParams()},
	}
	_, err := design(s, newPlanner(t), hclog.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errLTANInfeasible))
}

func TestDesignInvalidInput(t *testing.T) {
	s := Scenario{
		inclination: &InclinationChange{altitude: -5, change: 5},
		vehicle:     Vehicle{payload: 500, params: otv.DefaultVehicleParams()},
	}
	_, err := design(s, newPlanner(t), hclog.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, otv.ErrInvalidInput))
}

func TestDesignEngineCount(t *testing.T) {
	s := Scenario{
		altitude: &AltitudeChange{500, 1200},
		vehicle:  Vehicle{payload: 500, engine: new(otv.Biprop), params: otv.DefaultVehicleParams()},
	}
	d, err := design(s, newPlanner(t), hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, otv.EngineCount(d.vehicle.Thrust, new(otv.Biprop)), d.engines)
	assert.Greater(t, d.engines, 0)
}

func TestRootCmd(t *testing.T) {
	t.Setenv(otv.ConfigEnv, "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--scenario", "example.toml", "--log-level", "debug"})
	require.NoError(t, cmd.Execute())

	report := out.String()
	for _, want := range []string{"altitude", "inclination", "ltan", "total", "2.357", "hohmann", "RAAN", "propellant mass"} {
		assert.Contains(t, report, want)
	}
	assert.Contains(t, errOut.String(), "LTAN drift solved")
}

func TestRootCmdMissingScenario(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
