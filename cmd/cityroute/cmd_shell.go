package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var errUsage = errors.New("usage")

const shellHelp = `commands:
  add-location NAME              remove-location NAME
  add-road FROM TO KM            remove-road FROM TO
  bfs START    dfs START         path FROM TO
  locations    sorted    tree    connections    stats
  help         quit
Quote names containing spaces: add-location "Nuwara Eliya"`

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit and query the network interactively",
		Long: `Read commands from standard input, one per line, against a single
in-memory network. Changes are not saved.

` + shellHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

func (a *app) runShell(ctx context.Context) error {
	sc := bufio.NewScanner(a.in)
	prompt := func() {
		if !a.plain {
			fmt.Fprint(a.out, "> ")
		}
	}

	for prompt(); sc.Scan(); prompt() {
		args, err := splitArgs(sc.Text())
		if err != nil {
			a.render.Error(err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := a.exec(ctx, args[0], args[1:]); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintln(a.out, shellHelp)
			}
			a.render.Error(err)
		}
	}

	return sc.Err()
}

// exec runs one shell command.
func (a *app) exec(ctx context.Context, name string, args []string) error {
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, name, n, len(args))
		}
		return nil
	}

	switch name {
	case "add-location":
		if err := need(1); err != nil {
			return err
		}
		if err := a.planner.AddLocation(args[0]); err != nil {
			return err
		}
		a.render.Success("added location " + strings.TrimSpace(args[0]))

	case "remove-location":
		if err := need(1); err != nil {
			return err
		}
		if err := a.planner.RemoveLocation(args[0]); err != nil {
			return err
		}
		a.render.Success("removed location " + args[0] + " and its roads")

	case "add-road":
		if err := need(3); err != nil {
			return err
		}
		km, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("distance %q is not a whole number", args[2])
		}
		if err := a.planner.AddRoad(args[0], args[1], km); err != nil {
			return err
		}
		a.render.Success(fmt.Sprintf("added road %s - %s (%d km)", args[0], args[1], km))

	case "remove-road":
		if err := need(2); err != nil {
			return err
		}
		if err := a.planner.RemoveRoad(args[0], args[1]); err != nil {
			return err
		}
		a.render.Success(fmt.Sprintf("removed road %s - %s", args[0], args[1]))

	case "bfs":
		if err := need(1); err != nil {
			return err
		}
		res, err := a.planner.BFS(ctx, args[0])
		if err != nil {
			return err
		}
		a.render.Numbered("BFS from "+res.Steps[0].Name, res.Names())

	case "dfs":
		if err := need(1); err != nil {
			return err
		}
		res, err := a.planner.DFS(ctx, args[0])
		if err != nil {
			return err
		}
		a.render.Numbered("DFS from "+res.Steps[0].Name, res.Names())

	case "path":
		if err := need(2); err != nil {
			return err
		}
		route, err := a.planner.ShortestPath(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		a.render.Route(route)

	case "locations":
		a.render.Numbered("Locations", a.planner.Locations())
	case "sorted":
		a.render.Numbered("Locations (sorted)", a.planner.InOrderNames())
	case "tree":
		a.render.Tree(a.planner.IndexShape())
	case "connections":
		a.render.Connections(a.planner.Connections())
	case "stats":
		a.render.Stats(a.planner.Stats())
	case "help":
		fmt.Fprintln(a.out, shellHelp)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	return nil
}

// splitArgs splits a line on whitespace; double quotes group words.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if pending {
		args = append(args, cur.String())
	}

	return args, nil
}
