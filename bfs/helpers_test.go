package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// letterID maps 0,1,2… to "Na","Nb",… so ids stay valid location names.
func letterID(i int) string {
	id := ""
	for {
		id = string(rune('a'+i%26)) + id
		i = i/26 - 1
		if i < 0 {
			break
		}
	}

	return "N" + id
}

// chain builds Na–Nb–…, n locations long, distance 1 per road.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddLocation(letterID(i)))
		if i > 0 {
			require.NoError(t, g.AddRoad(letterID(i-1), letterID(i), 1))
		}
	}

	return g
}

// randomGraph builds n locations and up to m random roads.
func randomGraph(t testing.TB, r *rand.Rand, n, m int) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = letterID(i)
		require.NoError(t, g.AddLocation(ids[i]))
	}
	for k := 0; k < m; k++ {
		a, b := ids[r.Intn(n)], ids[r.Intn(n)]
		_ = g.AddRoad(a, b, 1+r.Intn(100)) // loops and repeats are rejected
	}

	return g, ids
}

// hopLevels is an independent BFS over Roads() returning hop counts.
func hopLevels(t testing.TB, g *core.Graph, start string) map[string]int {
	t.Helper()
	levels := map[string]int{start: 0}
	frontier := []string{start}
	for len(frontier) > 0 {
		var next []string
		for _, u := range frontier {
			roads, err := g.Roads(u)
			require.NoError(t, err, fmt.Sprintf("roads of %s", u))
			for _, rd := range roads {
				if _, ok := levels[rd.To]; !ok {
					levels[rd.To] = levels[u] + 1
					next = append(next, rd.To)
				}
			}
		}
		frontier = next
	}

	return levels
}

// brokenRoads wraps a graph whose road list for one location cannot be read.
type brokenRoads struct {
	*core.Graph
	bad string
}

func (b brokenRoads) VisitRoads(name string, fn func(core.Road) bool) error {
	if name == b.bad {
		return fmt.Errorf("%w: %q", core.ErrLocationNotFound, name)
	}

	return b.Graph.VisitRoads(name, fn)
}
