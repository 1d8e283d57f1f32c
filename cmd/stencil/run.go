package main

import (
	"fmt"

	"github.com/aretw0/stencil/internal/config"
	"github.com/aretw0/stencil/internal/logging"
	"github.com/aretw0/stencil/internal/presentation/tui"
	"github.com/aretw0/stencil/pkg/domain"
	"github.com/aretw0/stencil/pkg/observability"
	"github.com/aretw0/stencil/pkg/runner"
	"github.com/aretw0/stencil/pkg/variants"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the skeleton for each variant through the same client code",
		Long:  `Runs ConcreteClass1 and ConcreteClass2 (or the variants given with --variant) and prints every step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), level)

			vs, err := variants.Default().Resolve(cfg.Variants...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var handler runner.Handler = runner.NewTextHandler(out)
			if cfg.JSON {
				handler = runner.NewJSONHandler(out)
			}

			if cfg.Banner && !cfg.JSON {
				tui.PrintBanner(out, termenv.NewOutput(out).Profile)
			}

			opts := []runner.Option{
				runner.WithHandler(handler),
				runner.WithLogger(logger),
			}
			var metrics *observability.Metrics
			if cfg.Metrics {
				metrics = observability.NewMetrics()
				opts = append(opts, runner.WithLifecycleHooks(metrics.Hooks()))
			}

			if _, err := runner.NewRunner(opts...).Run(cmd.Context(), vs...); err != nil {
				return err
			}

			if metrics != nil {
				if err := metrics.WriteText(cmd.ErrOrStderr()); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}
			logger.Debug("Run finished", "variants", len(vs), "steps", len(vs)*domain.StepCount)
			return nil
		},
	}

	cmd.Flags().StringSliceP("variant", "v", nil, "Variant to run, by name or alias (repeatable)")
	cmd.Flags().Bool("json", false, "Emit NDJSON instead of text")
	cmd.Flags().Bool("banner", false, "Print the banner before running")
	cmd.Flags().Bool("metrics", false, "Dump Prometheus metrics to stderr after the run")
	return cmd
}

// loadConfig reads the config file and overrides it with explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variants, _ = flags.GetStringSlice("variant")
	}
	if flags.Changed("json") {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("banner") {
		cfg.Banner, _ = flags.GetBool("banner")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if flags.Changed("log-level") || path == "" {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}
