package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/planner"
)

// sriLanka is the ten-city demonstration network.
var sriLanka = planner.Seed{
	Locations: []string{
		"Colombo", "Kandy", "Galle", "Jaffna", "Negombo",
		"Anuradhapura", "Trincomalee", "Batticaloa", "Matara", "Kurunegala",
	},
	Roads: []planner.SeedRoad{
		{From: "Colombo", To: "Kandy", Distance: 115},
		{From: "Colombo", To: "Galle", Distance: 126},
		{From: "Colombo", To: "Negombo", Distance: 37},
		{From: "Colombo", To: "Kurunegala", Distance: 94},
		{From: "Kandy", To: "Kurunegala", Distance: 42},
		{From: "Kandy", To: "Anuradhapura", Distance: 138},
		{From: "Kandy", To: "Trincomalee", Distance: 206},
		{From: "Kandy", To: "Batticaloa", Distance: 230},
		{From: "Galle", To: "Matara", Distance: 46},
		{From: "Jaffna", To: "Anuradhapura", Distance: 200},
		{From: "Anuradhapura", To: "Trincomalee", Distance: 110},
		{From: "Trincomalee", To: "Batticaloa", Distance: 114},
		{From: "Negombo", To: "Kurunegala", Distance: 78},
	},
}

func newPlanner(t testing.TB, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.New(opts...)
	require.NoError(t, err)

	return p
}

// threeCities builds Colombo–Kandy 115 and Colombo–Galle 126.
func threeCities(t testing.TB) *planner.Planner {
	t.Helper()
	p := newPlanner(t)
	for _, n := range []string{"Colombo", "Kandy", "Galle"} {
		require.NoError(t, p.AddLocation(n))
	}
	require.NoError(t, p.AddRoad("Colombo", "Kandy", 115))
	require.NoError(t, p.AddRoad("Colombo", "Galle", 126))

	return p
}

func consistent(t testing.TB, p *planner.Planner) {
	t.Helper()
	require.NoError(t, p.CheckConsistency())
}
