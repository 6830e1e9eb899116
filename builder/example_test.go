package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cityroute/builder"
	"github.com/katalvlaran/cityroute/core"
)

func ExampleBuild() {
	g := core.NewGraph()
	_ = builder.Build(g, []builder.Option{builder.WithDistance(25)}, builder.Star(4))
	fmt.Println(g.Locations())
	fmt.Println(g.Roads("City A"))
	// Output:
	// [City A City B City C City D]
	// [{City B 25} {City C 25} {City D 25}] <nil>
}
