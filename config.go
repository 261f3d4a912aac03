package otv

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable pointing to the configuration file.
const ConfigEnv = "OTV_CONFIG"

// TransferConfig defines the bi-elliptic candidates considered for altitude changes.
type TransferConfig struct {
	// Intermediate apoapsis candidates, as multiples of the larger of both radii.
	BiEllipticMultipliers []float64 `mapstructure:"bielliptic_multipliers"`
}

// Config gathers every tunable constant of the planner.
type Config struct {
	Body     CelestialObject
	Transfer TransferConfig
	LTAN     LTANConfig
	Vehicle  VehicleParams
}

// DefaultConfig returns the configuration used for Earth OTV budgeting.
func DefaultConfig() Config {
	return Config{
		Body:     Earth,
		Transfer: TransferConfig{BiEllipticMultipliers: []float64{2, 5, 10}},
		LTAN: LTANConfig{
			MinAltitude:          400,
			MaxAltitude:          895,
			AltitudeStep:         5,
			ReferenceInclination: 98.6,
		},
		Vehicle: DefaultVehicleParams(),
	}
}

// Validate returns an error if this configuration cannot be used by a Planner.
func (c Config) Validate() error {
	if !isFinite(c.Body.Radius) || c.Body.Radius <= 0 {
		return fmt.Errorf("body %s: radius must be strictly positive", c.Body.Name)
	}
	if !isFinite(c.Body.GM()) || c.Body.GM() <= 0 {
		return fmt.Errorf("body %s: μ must be strictly positive", c.Body.Name)
	}
	if len(c.Transfer.BiEllipticMultipliers) == 0 {
		return errors.New("transfer: at least one bi-elliptic multiplier is needed")
	}
	for _, k := range c.Transfer.BiEllipticMultipliers {
		if !isFinite(k) || k <= 0 {
			return fmt.Errorf("transfer: invalid bi-elliptic multiplier %g", k)
		}
	}
	if c.LTAN.AltitudeStep <= 0 {
		return fmt.Errorf("ltan: altitude step must be strictly positive (got %d)", c.LTAN.AltitudeStep)
	}
	if c.LTAN.MinAltitude <= 0 || c.LTAN.MaxAltitude < c.LTAN.MinAltitude {
		return fmt.Errorf("ltan: invalid altitude grid [%d, %d]", c.LTAN.MinAltitude, c.LTAN.MaxAltitude)
	}
	if !isFinite(c.LTAN.ReferenceInclination) || c.LTAN.ReferenceInclination < 0 || c.LTAN.ReferenceInclination > 180 {
		return fmt.Errorf("ltan: reference inclination %g out of [0, 180]", c.LTAN.ReferenceInclination)
	}
	if err := c.Vehicle.Validate(); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	return nil
}

// bodyConfig is the file representation of a CelestialObject. Zero values keep
// those of the named body.
type bodyConfig struct {
	Name   string  `mapstructure:"name"`
	Radius float64 `mapstructure:"radius"`
	Mu     float64 `mapstructure:"mu"`
	J2     float64 `mapstructure:"j2"`
}

type fileConfig struct {
	Body     bodyConfig     `mapstructure:"body"`
	Transfer TransferConfig `mapstructure:"transfer"`
	LTAN     LTANConfig     `mapstructure:"ltan"`
	Vehicle  VehicleParams  `mapstructure:"vehicle"`
}

// LoadConfig reads the configuration file at path (any format supported by viper,
// typically TOML) on top of DefaultConfig. Every key may also be overridden from
// the environment, e.g. OTV_VEHICLE_ISP=300. An empty path only applies the
// environment overrides.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("body.name", def.Body.Name)
	v.SetDefault("transfer.bielliptic_multipliers", def.Transfer.BiEllipticMultipliers)
	v.SetDefault("ltan.min_altitude", def.LTAN.MinAltitude)
	v.SetDefault("ltan.max_altitude", def.LTAN.MaxAltitude)
	v.SetDefault("ltan.altitude_step", def.LTAN.AltitudeStep)
	v.SetDefault("ltan.reference_inclination", def.LTAN.ReferenceInclination)
	v.SetDefault("vehicle.isp", def.Vehicle.Isp)
	v.SetDefault("vehicle.structural_fraction", def.Vehicle.StructuralFraction)
	v.SetDefault("vehicle.thrust_to_weight", def.Vehicle.ThrustToWeight)
	v.SetEnvPrefix("otv")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"body.radius", "body.mu", "body.j2"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	body, err := CelestialObjectFromString(fc.Body.Name)
	if err != nil {
		return Config{}, err
	}
	if fc.Body.Radius != 0 {
		body.Radius = fc.Body.Radius
	}
	if fc.Body.Mu != 0 {
		body.μ = fc.Body.Mu
	}
	if fc.Body.J2 != 0 {
		body.J2 = fc.Body.J2
	}
	conf := Config{Body: body, Transfer: fc.Transfer, LTAN: fc.LTAN, Vehicle: fc.Vehicle}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// ConfigFromEnv loads the configuration file pointed to by OTV_CONFIG, or only
// the defaults and environment overrides if the variable is unset.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv(ConfigEnv))
}
