package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "shortreach",
		Short:         "Shortest reach in a graph with 6-unit edges",
		Long:          "shortreach computes breadth-first distances from a source vertex,\ncharging 6 per edge and reporting -1 for vertices that cannot be reached.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the config, applies persistent flag overrides, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.With(slog.String("cmd", cmd.Name()))

	return nil
}
