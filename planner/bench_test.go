package planner_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cityroute/planner"
)

func BenchmarkPlanner_ShortestPath(b *testing.B) {
	p := newPlanner(b, planner.WithSeed(sriLanka))
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ShortestPath(ctx, "Matara", "Jaffna"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPlanner_AddRemoveLocation(b *testing.B) {
	p := newPlanner(b, planner.WithSeed(sriLanka))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.AddLocation("Hambantota"); err != nil {
			b.Fatal(err)
		}
		if err := p.RemoveLocation("Hambantota"); err != nil {
			b.Fatal(err)
		}
	}
}
