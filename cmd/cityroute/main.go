// Command cityroute explores a city road network: ordered listings, the
// name index layout, breadth- and depth-first traversals, fewest-hops
// routes, and an interactive shell for editing the network in memory.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
