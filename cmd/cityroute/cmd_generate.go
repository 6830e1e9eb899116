package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/builder"
	"github.com/katalvlaran/cityroute/planner"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		cols    int
		prob    float64
		seed    int64
		minDist int
		maxDist int
		show    bool
	)

	cmd := &cobra.Command{
		Use:   "generate KIND N",
		Short: "Build a synthetic network and summarize it",
		Long: `Build a synthetic network of N locations named "City A", "City B", ...
and print its statistics. KIND is one of path, cycle, star, grid (N rows,
--cols columns) or sparse (each pair joined with probability --p).`,
		Example: `  cityroute generate grid 5 --cols 8
  cityroute generate sparse 40 --p 0.1 --seed 7 --show`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"path", "cycle", "star", "grid", "sparse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return a.fail(fmt.Errorf("N %q is not a whole number", args[1]))
			}

			var con builder.Constructor
			switch args[0] {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "star":
				con = builder.Star(n)
			case "grid":
				con = builder.Grid(n, cols)
			case "sparse":
				con = builder.RandomSparse(n, prob)
			default:
				return a.fail(fmt.Errorf("unknown kind %q", args[0]))
			}

			if minDist < 1 {
				return a.fail(fmt.Errorf("--min-km must be positive, got %d", minDist))
			}
			opts := []builder.Option{builder.WithSeed(seed)}
			if maxDist > minDist {
				opts = append(opts, builder.WithDistanceRange(minDist, maxDist))
			} else {
				opts = append(opts, builder.WithDistance(minDist))
			}

			p, err := planner.New(planner.WithLogger(a.logger))
			if err != nil {
				return a.fail(err)
			}
			if err := builder.Build(p, opts, con); err != nil {
				return a.fail(err)
			}
			if show {
				a.render.Connections(p.Connections())
			}
			a.render.Stats(p.Stats())

			return nil
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 1, "Grid columns")
	cmd.Flags().Float64Var(&prob, "p", 0.1, "Road probability for sparse")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&minDist, "min-km", 10, "Road distance, or lower bound with --max-km")
	cmd.Flags().IntVar(&maxDist, "max-km", 0, "Upper bound for random road distances")
	cmd.Flags().BoolVar(&show, "show", false, "Also print every connection")

	return cmd
}
