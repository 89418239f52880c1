package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/shortreach/batch"
	"github.com/katalvlaran/shortreach/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	format      string
	workers     int
	metricsFile string
	noValidate  bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Answer every query in FILE (or stdin)",
		Long: "solve reads a batch of queries, answers them concurrently, and writes one\n" +
			"line of distances per query (text) or a results document (yaml).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			if fl.Changed("format") {
				a.cfg.Format = f.format
			}
			if fl.Changed("workers") {
				a.cfg.Workers = f.workers
			}
			if fl.Changed("metrics-file") {
				a.cfg.MetricsFile = f.metricsFile
			}
			if f.noValidate {
				a.cfg.ValidateQueries = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			return a.solve(cmd, in, cmd.OutOrStdout())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", formatText, "input and output encoding: text or yaml")
	fl.IntVar(&f.workers, "workers", 0, "concurrent queries (0 = one per CPU)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after solving")
	fl.BoolVar(&f.noValidate, "no-validate", false, "skip query validation")

	return cmd
}

// solve decodes queries from in, runs them, and encodes results to out.
func (a *app) solve(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	queries, err := readQueries(in, a.cfg.Format)
	if err != nil {
		return err
	}
	a.logger.Debug("queries decoded", slog.Int("count", len(queries)), slog.String("format", a.cfg.Format))

	reg := prometheus.NewRegistry()
	runner := batch.NewRunner(
		batch.WithWorkers(a.cfg.Workers),
		batch.WithLogger(a.logger),
		batch.WithRegisterer(reg),
		batch.WithValidation(a.cfg.ValidateQueries),
	)
	results, err := runner.Run(cmd.Context(), queries)
	if err != nil {
		return err
	}

	if err := writeResults(out, results, a.cfg.Format); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if a.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Info("metrics written", slog.String("path", a.cfg.MetricsFile))
	}

	return nil
}

func readQueries(in io.Reader, format string) ([]query.Query, error) {
	switch format {
	case formatYAML:
		return query.ReadYAML(in)
	default:
		return query.ReadText(in)
	}
}

func writeResults(out io.Writer, results []query.Result, format string) error {
	switch format {
	case formatYAML:
		return query.WriteResultsYAML(out, results)
	default:
		return query.WriteText(out, results)
	}
}
