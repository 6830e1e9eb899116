package builder

import (
	"fmt"
	"math/rand"
	"strings"
)

// IDFn maps a location index to its name. Names must satisfy the
// location naming rules: letters and spaces, at least two characters.
type IDFn func(idx int) string

// Option configures Build.
type Option func(*config)

// config holds the resolved knobs; constructors receive it by value.
type config struct {
	idFn       IDFn
	rng        *rand.Rand
	distance   int
	minDist    int
	maxDist    int
	randomDist bool
}

const (
	defaultDistance = 10
	defaultPrefix   = "City "
)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     PrefixedLetterIDFn(defaultPrefix),
		distance: defaultDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextDistance returns the distance for the next road.
func (c config) nextDistance() int {
	if !c.randomDist {
		return c.distance
	}

	return c.minDist + c.rng.Intn(c.maxDist-c.minDist+1)
}

// WithIDScheme sets the naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithDistance sets a constant road distance. Panics if d < 1.
func WithDistance(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("builder: WithDistance(%d): distance must be positive", d))
	}

	return func(c *config) {
		c.distance = d
		c.randomDist = false
	}
}

// WithDistanceRange draws each distance uniformly from [lo, hi].
// Panics unless 1 ≤ lo ≤ hi.
func WithDistanceRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("builder: WithDistanceRange(%d, %d): need 1 <= lo <= hi", lo, hi))
	}

	return func(c *config) {
		c.minDist, c.maxDist = lo, hi
		c.randomDist = true
	}
}

// LetterIDFn renders idx as spreadsheet-style column letters:
// 0 → "A", 25 → "Z", 26 → "AA". Panics on negative idx.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedLetterIDFn returns prefix + LetterIDFn(idx).
func PrefixedLetterIDFn(prefix string) IDFn {
	return func(idx int) string {
		var b strings.Builder
		b.WriteString(prefix)
		b.WriteString(LetterIDFn(idx))

		return b.String()
	}
}
