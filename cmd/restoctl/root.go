package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"restoBotClient/internal/config"
	menuapp "restoBotClient/internal/modules/menu/application"
	tablesapp "restoBotClient/internal/modules/tables/application"
	"restoBotClient/internal/platform/rest"
	"restoBotClient/internal/shared/logging"
)

// globalOptions override the loaded configuration when their flag is set.
type globalOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Verbose bool
	Metrics bool
}

// app carries what every subcommand needs once the root pre-run has loaded configuration.
type app struct {
	options globalOptions
	cfg     *config.Config
	menu    *menuapp.MenuService
	tables  *tablesapp.TableService
	metrics *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "restoctl",
		Short: "Command line client for the RestoBot restaurant API.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpMetrics(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.options.BaseURL, "base-url", "", "API base URL (default from rest.base_url)")
	flags.StringVar(&a.options.Token, "token", "", "bearer token for staff endpoints (default from rest.token)")
	flags.DurationVar(&a.options.Timeout, "timeout", 0, "per-request timeout (default from rest.timeout)")
	flags.BoolVarP(&a.options.Verbose, "verbose", "v", false, "log every request to stderr")
	flags.BoolVar(&a.options.Metrics, "metrics", false, "print client request metrics to stderr when done")

	registerMenu(rootCmd, a)
	registerTables(rootCmd, a)
	registerReservations(rootCmd, a)
	registerToken(rootCmd, a)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), ".env load warning: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.REST.BaseURL = a.options.BaseURL
	}
	if flags.Changed("token") {
		cfg.REST.Token = a.options.Token
	}
	if flags.Changed("timeout") {
		cfg.REST.Timeout = a.options.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if a.options.Verbose {
		level = "debug"
	}
	slog.SetDefault(logging.New(cmd.ErrOrStderr(), logging.Config{Level: level, Format: cfg.Logging.Format}))

	opts := []rest.Option{
		rest.WithTimeout(cfg.REST.Timeout),
		rest.WithToken(cfg.REST.Token),
		rest.WithUserAgent(cfg.REST.UserAgent),
	}
	if a.options.Metrics {
		a.metrics = prometheus.NewRegistry()
		opts = append(opts, rest.WithMetrics(rest.NewMetrics(a.metrics)))
	}
	client := rest.NewClient(cfg.REST.BaseURL, opts...)
	a.cfg = cfg
	a.menu = menuapp.NewMenuService(client)
	a.tables = tablesapp.NewTableService(client)
	return nil
}

// dumpMetrics writes the client collectors in the Prometheus text format. It is a no-op
// unless --metrics was given.
func (a *app) dumpMetrics(w io.Writer) error {
	if a.metrics == nil {
		return nil
	}
	families, err := a.metrics.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

// optionalBool returns nil unless the named flag was given on the command line.
func optionalBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
