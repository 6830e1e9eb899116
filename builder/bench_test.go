package builder_test

import (
	"testing"

	"github.com/katalvlaran/cityroute/builder"
	"github.com/katalvlaran/cityroute/core"
)

func BenchmarkBuild_Grid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := builder.Build(core.NewGraph(), nil, builder.Grid(30, 30)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_RandomSparse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		opts := []builder.Option{builder.WithSeed(int64(i))}
		if err := builder.Build(core.NewGraph(), opts, builder.RandomSparse(200, 0.02)); err != nil {
			b.Fatal(err)
		}
	}
}
