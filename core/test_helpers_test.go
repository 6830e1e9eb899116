package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// Common location names used across core tests.
const (
	Colombo = "Colombo"
	Kandy   = "Kandy"
	Galle   = "Galle"
	Matara  = "Matara"
	Jaffna  = "Jaffna"
)

// Common distances (km) used across core tests.
const (
	DistColomboKandy = 115
	DistColomboGalle = 126
	DistGalleMatara  = 46
)

// sampleGraph builds Colombo–Kandy, Colombo–Galle, Galle–Matara plus an
// isolated Jaffna.
func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{Colombo, Kandy, Galle, Matara, Jaffna} {
		require.NoError(t, g.AddLocation(name))
	}
	require.NoError(t, g.AddRoad(Colombo, Kandy, DistColomboKandy))
	require.NoError(t, g.AddRoad(Colombo, Galle, DistColomboGalle))
	require.NoError(t, g.AddRoad(Galle, Matara, DistGalleMatara))
	mustHold(t, g)

	return g
}

// mustHold fails the test if any storage invariant is broken.
func mustHold(t *testing.T, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.CheckInvariants())
}

// destinations lists the To field of each road in order.
func destinations(roads []core.Road) []string {
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.To
	}

	return out
}
