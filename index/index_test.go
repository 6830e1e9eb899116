package index_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/index"
	"github.com/katalvlaran/cityroute/names"
)

// seedCities is the insertion order used by several tests.
var seedCities = []string{
	"Colombo", "Kandy", "Galle", "Jaffna", "Negombo",
	"Anuradhapura", "Trincomalee", "Batticaloa", "Matara", "Kurunegala",
}

func build(t *testing.T, items ...string) *index.Index {
	t.Helper()
	ix := index.New()
	for _, s := range items {
		require.True(t, ix.Insert(s), "insert %q", s)
	}

	return ix
}

func isSortedFold(xs []string) bool {
	return sort.SliceIsSorted(xs, func(i, j int) bool { return names.Compare(xs[i], xs[j]) < 0 })
}

// TestIndex_Empty covers the zero-size tree.
func TestIndex_Empty(t *testing.T) {
	ix := index.New()
	assert.True(t, ix.IsEmpty())
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.InOrder())
	assert.Nil(t, ix.Shape())
	assert.Equal(t, 0, ix.Height())
	_, ok := ix.Min()
	assert.False(t, ok)
	assert.False(t, ix.Delete("Kandy"))
	assert.False(t, ix.Contains("Kandy"))
}

// TestIndex_InsertDuplicate rejects a second insert under any casing.
func TestIndex_InsertDuplicate(t *testing.T) {
	ix := build(t, "Kandy")
	assert.False(t, ix.Insert("Kandy"))
	assert.False(t, ix.Insert("KANDY"))
	assert.Equal(t, 1, ix.Len())
}

// TestIndex_InOrderSorted checks the ordering invariant for the seed set.
func TestIndex_InOrderSorted(t *testing.T) {
	ix := build(t, seedCities...)
	got := ix.InOrder()
	want := append([]string(nil), seedCities...)
	sort.Slice(want, func(i, j int) bool { return names.Compare(want[i], want[j]) < 0 })
	assert.Equal(t, want, got)

	lo, _ := ix.Min()
	hi, _ := ix.Max()
	assert.Equal(t, "Anuradhapura", lo)
	assert.Equal(t, "Trincomalee", hi)
}

// TestIndex_MixedCaseOrdering ensures case never affects position.
func TestIndex_MixedCaseOrdering(t *testing.T) {
	ix := build(t, "galle", "Colombo", "ampara", "Batticaloa")
	assert.Equal(t, []string{"ampara", "Batticaloa", "Colombo", "galle"}, ix.InOrder())
	assert.True(t, ix.Contains("GALLE"))
	stored, ok := ix.Lookup("GALLE")
	require.True(t, ok)
	assert.Equal(t, "galle", stored)
}

// TestIndex_UnicodeFolding rejects a name that folds to one already stored
// and finds it under either spelling.
func TestIndex_UnicodeFolding(t *testing.T) {
	ix := build(t, "sa", "Kelvin")
	assert.False(t, ix.Insert("\u017fa"))
	assert.False(t, ix.Insert("\u212aelvin"))
	assert.Equal(t, 2, ix.Len())
	assert.True(t, ix.Contains("\u017fA"))
	assert.True(t, ix.Delete("\u212aELVIN"))
	assert.Equal(t, []string{"sa"}, ix.InOrder())
}

// TestIndex_DeleteCases exercises leaf, single-child and two-child removal.
func TestIndex_DeleteCases(t *testing.T) {
	//        Kandy
	//       /     \
	//   Colombo   Matara
	//      \      /
	//     Galle Kurunegala
	ix := build(t, "Kandy", "Colombo", "Matara", "Galle", "Kurunegala")

	// leaf
	require.True(t, ix.Delete("kurunegala"))
	assert.Equal(t, []string{"Colombo", "Galle", "Kandy", "Matara"}, ix.InOrder())

	// one child (Colombo has only Galle)
	require.True(t, ix.Delete("Colombo"))
	assert.Equal(t, []string{"Galle", "Kandy", "Matara"}, ix.InOrder())
	assert.Equal(t, "Galle", ix.Shape().Left.Name)

	// two children at the root: successor Matara is promoted
	require.True(t, ix.Delete("Kandy"))
	assert.Equal(t, []string{"Galle", "Matara"}, ix.InOrder())
	assert.Equal(t, "Matara", ix.Shape().Name)
	assert.Equal(t, 2, ix.Len())
}

// TestIndex_TwoChildSuccessorWithRightChild covers a successor that
// itself has a right subtree.
func TestIndex_TwoChildSuccessorWithRightChild(t *testing.T) {
	ix := build(t, "Kandy", "Colombo", "Trincomalee", "Matara", "Negombo")
	require.True(t, ix.Delete("Kandy"))

	shape := ix.Shape()
	assert.Equal(t, "Matara", shape.Name)
	require.NotNil(t, shape.Right)
	assert.Equal(t, "Trincomalee", shape.Right.Name)
	require.NotNil(t, shape.Right.Left)
	assert.Equal(t, "Negombo", shape.Right.Left.Name)
	assert.Equal(t, []string{"Colombo", "Matara", "Negombo", "Trincomalee"}, ix.InOrder())
}

// TestIndex_RoundTrip verifies insert(X) then delete(X) restores the index.
func TestIndex_RoundTrip(t *testing.T) {
	ix := build(t, seedCities...)
	before := ix.InOrder()
	require.True(t, ix.Insert("Hambantota"))
	require.True(t, ix.Delete("Hambantota"))
	assert.Equal(t, before, ix.InOrder())
	assert.Equal(t, len(seedCities), ix.Len())
}

// TestIndex_SlotReuse checks that released arena slots are recycled.
func TestIndex_SlotReuse(t *testing.T) {
	ix := build(t, "Kandy", "Galle", "Matara")
	require.Equal(t, 3, ix.ArenaLen())
	require.True(t, ix.Delete("Galle"))
	require.True(t, ix.Insert("Ella"))
	assert.Equal(t, 3, ix.ArenaLen())
	assert.Equal(t, []string{"Ella", "Kandy", "Matara"}, ix.InOrder())
}

// TestIndex_SortedInsertDegenerates documents the unbalanced worst case.
func TestIndex_SortedInsertDegenerates(t *testing.T) {
	ix := index.New()
	for c := 'a'; c <= 'z'; c++ {
		ix.Insert(strings.Repeat(string(c), 2))
	}
	assert.Equal(t, 26, ix.Height())
}

// TestIndex_WalkEarlyStop stops after the first two names.
func TestIndex_WalkEarlyStop(t *testing.T) {
	ix := build(t, seedCities...)
	var seen []string
	ix.Walk(func(name string) bool {
		seen = append(seen, name)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"Anuradhapura", "Batticaloa"}, seen)
}

// TestIndex_RandomOperations drives random inserts and deletes against a
// map model and checks ordering, membership and size after every step.
func TestIndex_RandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	pool := []string{"aa", "Bb", "cc", "DD", "ee", "Ff", "gg", "hH", "ii", "JJ", "kk", "LL"}
	ix := index.New()
	model := map[string]bool{}

	for step := 0; step < 2000; step++ {
		name := pool[r.Intn(len(pool))]
		if r.Intn(2) == 0 {
			assert.Equal(t, !model[names.Fold(name)], ix.Insert(name))
			model[names.Fold(name)] = true
		} else {
			assert.Equal(t, model[names.Fold(name)], ix.Delete(name))
			delete(model, names.Fold(name))
		}

		got := ix.InOrder()
		require.Len(t, got, len(model))
		require.Equal(t, len(model), ix.Len())
		require.True(t, isSortedFold(got), "step %d: %v", step, got)
		for _, g := range got {
			require.True(t, model[names.Fold(g)])
		}
	}
}
