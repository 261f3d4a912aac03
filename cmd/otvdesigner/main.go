package main

import (
	"fmt"
	"os"

	"github.com/ChristopherRabotin/otv"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		scenario   string
		configPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "otvdesigner",
		Short: "Compute the Δv budget of an OTV scenario and size the vehicle",
		Long: `otvdesigner reads a TOML scenario describing an altitude change, an
inclination change and an LTAN change, computes the cost of each maneuver,
and sizes a vehicle able to perform all of them.

The planner configuration is read from --config, or from the file pointed
to by $` + otv.ConfigEnv + ` when the flag is not set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "otvdesigner",
				Level:  hclog.LevelFromString(logLevel),
				Output: cmd.ErrOrStderr(),
			})
			var (
				conf otv.Config
				err  error
			)
			if configPath != "" {
				conf, err = otv.LoadConfig(configPath)
			} else {
				conf, err = otv.ConfigFromEnv()
			}
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			logger.Debug("configuration loaded", "body", conf.Body.String(), "grid_min", conf.LTAN.MinAltitude, "grid_max", conf.LTAN.MaxAltitude, "grid_step", conf.LTAN.AltitudeStep)

			planner, err := otv.NewPlanner(conf, otv.WithLogger(logger))
			if err != nil {
				return err
			}
			s, err := loadScenario(scenario, conf.Vehicle)
			if err != nil {
				return err
			}
			d, err := design(s, planner, logger)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), s, d)
		},
	}
	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "scenario TOML file")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "planner configuration file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
