package main

import (
	"fmt"

	"github.com/amp-labs/amp-lookup/catalog"
	"github.com/amp-labs/amp-lookup/cli"
	"github.com/amp-labs/amp-lookup/envutil"
	"github.com/amp-labs/amp-lookup/logger"
	"github.com/amp-labs/amp-lookup/telemetry"
	"github.com/spf13/cobra"
)

const (
	appName        = "lookupdemo"
	defaultWorkers = 4
)

type flags struct {
	catalogPath string
	target      int64
	jsonLogs    bool
	workers     int
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Find a product by id with linear and binary search",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.catalogPath, "catalog", "",
		"YAML catalog to search (default $LOOKUP_CATALOG, else the built-in sample)")
	cmd.Flags().Int64Var(&f.target, "target", 0, "product id to search for (prompted if omitted)")
	cmd.Flags().BoolVar(&f.jsonLogs, "json-logs", false, "log as JSON instead of text")
	cmd.Flags().IntVar(&f.workers, "workers", 0,
		fmt.Sprintf("batch lookup workers (default $LOOKUP_WORKERS, else %d)", defaultWorkers))

	return cmd
}

func runRoot(cmd *cobra.Command, f flags) error {
	ctx := cmd.Context()

	opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if f.jsonLogs {
		opts = append(opts, logger.WithJSON(true))
	}

	if _, err := logger.ConfigureLogging(appName, opts...); err != nil {
		return err
	}

	otelCfg, err := telemetry.LoadConfigFromEnv("local")
	if err != nil {
		return err
	}

	if err := telemetry.Initialize(ctx, otelCfg); err != nil {
		return err
	}

	defer func() {
		if err := telemetry.Shutdown(ctx); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}()

	products, err := loadProducts(f.catalogPath)
	if err != nil {
		return err
	}

	target := f.target
	if !cmd.Flags().Changed("target") {
		target, err = cli.Prompter{}.Int64("Product id to search for")
		if err != nil {
			return fmt.Errorf("reading target id: %w", err)
		}
	}

	workers := f.workers
	if workers <= 0 {
		workers = envutil.Int("LOOKUP_WORKERS", envutil.Default(defaultWorkers)).ValueOrElse(defaultWorkers)
	}

	return runDemo(ctx, cmd.OutOrStdout(), products, target, workers)
}

// loadProducts picks the catalog: the flag, then LOOKUP_CATALOG, then the
// built-in sample.
func loadProducts(path string) ([]catalog.Product, error) {
	if path == "" {
		path = envutil.String("LOOKUP_CATALOG", envutil.Default("")).ValueOrElse("")
	}

	if path == "" {
		return catalog.Sample(), nil
	}

	return catalog.LoadFile(path)
}
