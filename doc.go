// Package cityroute is an in-memory city road network: an ordered name
// index and an undirected distance graph kept in lock-step, with
// breadth-first, depth-first and fewest-hops route queries.
//
// What lives where:
//
//	names/     case-insensitive name comparison and the naming rules
//	index/     arena-backed binary search tree over location names
//	core/      insertion-ordered adjacency-list graph of roads
//	bfs/       breadth-first traversal and fewest-hops routes
//	dfs/       depth-first traversal
//	planner/   coordinator: one lock, one error taxonomy, metrics, seeding
//	builder/   synthetic networks (path, cycle, star, grid, random)
//	config/    YAML configuration with the built-in demonstration network
//	cmd/       the cityroute command
//
// Quick start:
//
//	p, _ := planner.New(planner.WithSeed(config.Default().Seed))
//	route, _ := p.ShortestPath(ctx, "Matara", "Jaffna")
//	fmt.Println(route.Stops, route.Distance)
//	// [Matara Galle Colombo Kandy Anuradhapura Jaffna] 625
//
// Routes minimize the number of roads, not kilometres; the distance
// reported is the sum along the route found.
package cityroute
