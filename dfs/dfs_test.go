package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dfs"
)

// build adds the named locations and then the roads, distance 1 each.
func build(t testing.TB, locs []string, roads [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range locs {
		require.NoError(t, g.AddLocation(n))
	}
	for _, r := range roads {
		require.NoError(t, g.AddRoad(r[0], r[1], 1))
	}

	return g
}

// TestTraverse_Errors verifies nil graph and unknown start.
func TestTraverse_Errors(t *testing.T) {
	_, err := dfs.Traverse(nil, "Aa")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, []string{"Aa"}, nil)
	_, err = dfs.Traverse(g, "Bb")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

// TestTraverse_FirstListedExploredFirst follows list order depth-first.
func TestTraverse_FirstListedExploredFirst(t *testing.T) {
	g := build(t,
		[]string{"Hub", "Zeta", "Alpha", "Leaf"},
		[][2]string{{"Hub", "Zeta"}, {"Hub", "Alpha"}, {"Zeta", "Leaf"}},
	)
	res, err := dfs.Traverse(g, "hub")
	require.NoError(t, err)
	assert.Equal(t, []dfs.Step{
		{Step: 1, Name: "Hub"},
		{Step: 2, Name: "Zeta"},
		{Step: 3, Name: "Leaf"},
		{Step: 4, Name: "Alpha"},
	}, res.Steps)
	assert.Equal(t, 2, res.Depth["Leaf"])
}

// TestTraverse_MarkOnPop shows a location pushed twice is visited once,
// from the push that was popped first.
func TestTraverse_MarkOnPop(t *testing.T) {
	g := build(t,
		[]string{"Aa", "Bb", "Cc"},
		[][2]string{{"Aa", "Bb"}, {"Aa", "Cc"}, {"Bb", "Cc"}},
	)
	res, err := dfs.Traverse(g, "Aa")
	require.NoError(t, err)
	assert.Equal(t, []string{"Aa", "Bb", "Cc"}, res.Names())
	assert.Equal(t, "Bb", res.Parent["Cc"])
	assert.Equal(t, 2, res.Depth["Cc"])
}

// TestTraverse_Scenario is the seed trio from Colombo.
func TestTraverse_Scenario(t *testing.T) {
	g := build(t,
		[]string{"Colombo", "Kandy", "Galle", "Matara"},
		[][2]string{{"Colombo", "Kandy"}, {"Colombo", "Galle"}, {"Galle", "Matara"}},
	)
	res, err := dfs.Traverse(g, "Colombo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo", "Kandy", "Galle", "Matara"}, res.Names())

	res, err = dfs.Traverse(g, "Matara")
	require.NoError(t, err)
	assert.Equal(t, []string{"Matara", "Galle", "Colombo", "Kandy"}, res.Names())
}

// TestTraverse_MaxDepth stops pushing past the limit.
func TestTraverse_MaxDepth(t *testing.T) {
	g := build(t,
		[]string{"Aa", "Bb", "Cc", "Dd"},
		[][2]string{{"Aa", "Bb"}, {"Bb", "Cc"}, {"Cc", "Dd"}},
	)
	res, err := dfs.Traverse(g, "Aa", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aa"}, res.Names())

	res, err = dfs.Traverse(g, "Aa", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aa", "Bb", "Cc"}, res.Names())
}

// TestTraverse_HookAbort stops at the failing step.
func TestTraverse_HookAbort(t *testing.T) {
	g := build(t, []string{"Aa", "Bb", "Cc"}, [][2]string{{"Aa", "Bb"}, {"Bb", "Cc"}})
	boom := errors.New("boom")
	res, err := dfs.Traverse(g, "Aa", dfs.WithOnVisit(func(s dfs.Step) error {
		if s.Name == "Bb" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"Aa", "Bb"}, res.Names())
}

// TestTraverse_Cancellation halts on a cancelled context.
func TestTraverse_Cancellation(t *testing.T) {
	g := build(t, []string{"Aa", "Bb"}, [][2]string{{"Aa", "Bb"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Traverse(g, "Aa", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTraverse_Completeness checks each reachable location is visited once
// on random graphs, and nothing else is.
func TestTraverse_Completeness(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	ids := []string{"Aa", "Bb", "Cc", "Dd", "Ee", "Ff", "Gg", "Hh", "Ii", "Jj", "Kk", "Ll"}
	for round := 0; round < 50; round++ {
		g := build(t, ids, nil)
		for k := 0; k < 12; k++ {
			_ = g.AddRoad(ids[r.Intn(len(ids))], ids[r.Intn(len(ids))], 1)
		}
		start := ids[r.Intn(len(ids))]

		res, err := dfs.Traverse(g, start)
		require.NoError(t, err)
		reach := reachable(t, g, start)
		seen := map[string]bool{}
		for _, n := range res.Names() {
			require.False(t, seen[n], "%s visited twice", n)
			seen[n] = true
		}
		require.Equal(t, reach, seen)
	}
}

// reachable is a recursive reference search over Roads().
func reachable(t testing.TB, g *core.Graph, start string) map[string]bool {
	t.Helper()
	seen := map[string]bool{}
	var rec func(string)
	rec = func(u string) {
		if seen[u] {
			return
		}
		seen[u] = true
		roads, err := g.Roads(u)
		require.NoError(t, err)
		for _, rd := range roads {
			rec(rd.To)
		}
	}
	rec(start)

	return seen
}

// failingRoads reports every road list as unreadable.
type failingRoads struct{ *core.Graph }

func (f failingRoads) VisitRoads(name string, _ func(core.Road) bool) error {
	return fmt.Errorf("%w: %q", core.ErrLocationNotFound, name)
}

// TestTraverse_NeighborErrorKeepsCause keeps the reader's error in the chain.
func TestTraverse_NeighborErrorKeepsCause(t *testing.T) {
	g := failingRoads{build(t, []string{"Aa", "Bb"}, [][2]string{{"Aa", "Bb"}})}

	_, err := dfs.Traverse(g, "Aa")
	require.Error(t, err)
	assert.ErrorIs(t, err, dfs.ErrNeighbors)
	assert.ErrorIs(t, err, core.ErrLocationNotFound)
}
