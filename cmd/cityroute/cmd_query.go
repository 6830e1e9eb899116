package main

import (
	"github.com/spf13/cobra"
)

func (a *app) locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List locations in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.render.Numbered("Locations", a.planner.Locations())
			return nil
		},
	}
}

func (a *app) sortedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sorted",
		Short: "List locations alphabetically (index in-order walk)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.render.Numbered("Locations (sorted)", a.planner.InOrderNames())
			return nil
		},
	}
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Draw the name index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.render.Tree(a.planner.IndexShape())
			return nil
		},
	}
}

func (a *app) connectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connections",
		Short: "Show every location with its roads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.render.Connections(a.planner.Connections())
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.render.Stats(a.planner.Stats())
			return nil
		},
	}
}

func (a *app) bfsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bfs START",
		Short: "Breadth-first visit order from START",
		Example: `  cityroute bfs Colombo
  cityroute bfs "nuwara eliya" --config towns.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.BFS(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			a.render.Numbered("BFS from "+res.Steps[0].Name, res.Names())
			return nil
		},
	}
}

func (a *app) dfsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dfs START",
		Short: "Depth-first visit order from START",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.DFS(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			a.render.Numbered("DFS from "+res.Steps[0].Name, res.Names())
			return nil
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Fewest-hops route from FROM to TO with its total distance",
		Long: `Find the route with the fewest roads between two locations and
report the sum of its road distances. The route minimizes hops, not
kilometres.`,
		Example: "  cityroute path Matara Jaffna",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := a.planner.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return a.fail(err)
			}
			a.render.Route(route)
			return nil
		},
	}
}
