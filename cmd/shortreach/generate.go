package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/shortreach/builder"
	"github.com/katalvlaran/shortreach/core"
	"github.com/katalvlaran/shortreach/query"
	"github.com/spf13/cobra"
)

// Topology names accepted by --kind.
const (
	kindPath     = "path"
	kindCycle    = "cycle"
	kindStar     = "star"
	kindWheel    = "wheel"
	kindComplete = "complete"
	kindGrid     = "grid"
	kindRandom   = "random"
)

type generateFlags struct {
	kind     string
	n        int
	rows     int
	cols     int
	p        float64
	seed     int64
	source   int
	isolated int
	count    int
	format   string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write queries over a generated topology",
		Long: "generate builds a graph with one of the builder topologies, optionally\n" +
			"followed by isolated vertices, and writes it as a query batch that solve reads.\n" +
			"With --count > 1 each query uses seed+i, which only matters for --kind random.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				f.format = a.cfg.Format
			}
			return a.generate(cmd.OutOrStdout(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", kindPath, "topology: path, cycle, star, wheel, complete, grid, random")
	fl.IntVarP(&f.n, "vertices", "n", 6, "vertex count for every kind except grid")
	fl.IntVar(&f.rows, "rows", 2, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.p, "p", 0.3, "edge probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.source, "source", 1, "source vertex of each query")
	fl.IntVar(&f.isolated, "isolated", 0, "isolated vertices appended after the topology")
	fl.IntVar(&f.count, "count", 1, "number of queries")
	fl.StringVar(&f.format, "format", formatText, "output encoding: text or yaml")

	return cmd
}

// constructor maps the topology flags to a builder.Constructor.
func (f generateFlags) constructor() (builder.Constructor, error) {
	switch f.kind {
	case kindPath:
		return builder.Path(f.n), nil
	case kindCycle:
		return builder.Cycle(f.n), nil
	case kindStar:
		return builder.Star(f.n), nil
	case kindWheel:
		return builder.Wheel(f.n), nil
	case kindComplete:
		return builder.Complete(f.n), nil
	case kindGrid:
		return builder.Grid(f.rows, f.cols), nil
	case kindRandom:
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", f.kind)
	}
}

func (a *app) generate(out io.Writer, f generateFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count=%d: want at least 1", f.count)
	}
	ctor, err := f.constructor()
	if err != nil {
		return err
	}
	cons := []builder.Constructor{ctor}
	if f.isolated > 0 {
		cons = append(cons, builder.Isolated(f.isolated))
	}

	gopts := []core.GraphOption{core.Permissive()}
	qs := make([]query.Query, 0, f.count)
	for i := 0; i < f.count; i++ {
		bopts := []builder.BuilderOption{builder.WithSeed(f.seed + int64(i))}
		g, err := builder.BuildGraph(gopts, bopts, cons...)
		if err != nil {
			return err
		}
		edges := g.EdgePairs()
		q := query.Query{Vertices: g.VertexCount(), EdgeCount: len(edges), Edges: edges, Source: f.source}
		if err := q.Validate(); err != nil {
			return err
		}
		qs = append(qs, q)

		st := g.Stats()
		a.logger.Debug("query generated",
			slog.String("kind", f.kind),
			slog.Int("index", i),
			slog.Int("vertices", st.VertexCount),
			slog.Int("edges", st.EdgeCount),
			slog.Int("isolated", st.IsolatedCount),
			slog.Int("max_degree", st.MaxDegree))
	}

	switch f.format {
	case formatYAML:
		return query.WriteYAML(out, qs)
	case formatText:
		return query.WriteQueriesText(out, qs)
	default:
		return fmt.Errorf("format %q: want text or yaml", f.format)
	}
}
