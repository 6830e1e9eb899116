package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathLocations  = 2
	minCycleLocations = 3
	minStarLocations  = 2
	minGridDim        = 1
	minSparseLocs     = 1
)

// Path joins n locations in a line: 0-1, 1-2, ..., (n-2)-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minPathLocations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathLocations, ErrTooFewLocations)
		}
		if err := checkRand(methodPath, cfg); err != nil {
			return err
		}
		if err := addLocations(methodPath, t, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addRoad(methodPath, t, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by a road (n-1)-0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minCycleLocations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleLocations, ErrTooFewLocations)
		}
		if err := checkRand(methodCycle, cfg); err != nil {
			return err
		}
		if err := addLocations(methodCycle, t, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addRoad(methodCycle, t, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star joins location 0 to each of the other n-1 locations.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minStarLocations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarLocations, ErrTooFewLocations)
		}
		if err := checkRand(methodStar, cfg); err != nil {
			return err
		}
		if err := addLocations(methodStar, t, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addRoad(methodStar, t, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid lays rows×cols locations out row-major (index r*cols+c) and joins
// each to its right and lower neighbour.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(t Target, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewLocations)
		}
		if err := checkRand(methodGrid, cfg); err != nil {
			return err
		}
		if err := addLocations(methodGrid, t, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := addRoad(methodGrid, t, cfg, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(methodGrid, t, cfg, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds n locations and joins each unordered pair {i, j}, i<j,
// with probability p. Pairs are tried in ascending (i, j) order.
// p of exactly 0 or 1 needs no random source.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(t Target, cfg config) error {
		if n < minSparseLocs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseLocs, ErrTooFewLocations)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := checkRand(methodRandomSparse, cfg); err != nil {
			return err
		}
		if err := addLocations(methodRandomSparse, t, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 0 || (p < 1 && cfg.rng.Float64() >= p) {
					continue
				}
				if err := addRoad(methodRandomSparse, t, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
