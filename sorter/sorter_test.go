package sorter_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arraylist/sorter"
)

// fixtures returns a set of named int inputs covering the usual edge cases.
func fixtures() map[string][]int {
	rng := rand.New(rand.NewSource(42))
	random := make([]int, 257)
	for i := range random {
		random[i] = rng.Intn(1000)
	}
	dups := make([]int, 64)
	for i := range dups {
		dups[i] = rng.Intn(4)
	}

	return map[string][]int{
		"nil":       nil,
		"empty":     {},
		"single":    {7},
		"pair":      {2, 1},
		"sorted":    {1, 2, 3, 4, 5, 6},
		"reversed":  {6, 5, 4, 3, 2, 1},
		"constant":  {3, 3, 3, 3, 3},
		"negatives": {0, -1, 5, -10, 3, -1},
		"random":    random,
		"dups":      dups,
	}
}

// TestAlgorithms_SortPermutation verifies that every registered algorithm
// yields a non-decreasing permutation of its input.
func TestAlgorithms_SortPermutation(t *testing.T) {
	for _, a := range sorter.Algorithms() {
		for name, in := range fixtures() {
			want := append([]int(nil), in...)
			sort.Ints(want)

			got := append([]int(nil), in...)
			a.Sort(got)

			assert.True(t, sorter.IsSorted(got), "%s/%s: output must be non-decreasing", a.Name, name)
			assert.Equal(t, want, got, "%s/%s: output must be a permutation of the input", a.Name, name)
		}
	}
}

// TestAlgorithms_Strings exercises the generic instantiation over strings.
func TestAlgorithms_Strings(t *testing.T) {
	sorts := map[string]sorter.Func[string]{
		sorter.NameBubble:    sorter.Bubble[string],
		sorter.NameSelection: sorter.Selection[string],
		sorter.NameInsertion: sorter.Insertion[string],
		sorter.NameQuick:     sorter.Quick[string],
	}
	for name, fn := range sorts {
		got := []string{"pear", "apple", "fig", "", "banana", "apple"}
		fn(got)
		assert.Equal(t, []string{"", "apple", "apple", "banana", "fig", "pear"}, got, name)
	}
}

// TestAlgorithms_Floats exercises the generic instantiation over float64.
func TestAlgorithms_Floats(t *testing.T) {
	got := []float64{3.5, -1.25, 0, 2, -1.25}
	sorter.Quick(got)
	assert.Equal(t, []float64{-1.25, -1.25, 0, 2, 3.5}, got)
}

type tagged struct {
	key int
	tag string
}

// TestInsertionFunc_Stable verifies that equal keys keep their input order.
func TestInsertionFunc_Stable(t *testing.T) {
	in := []tagged{
		{3, "a"}, {1, "b"}, {3, "c"}, {2, "d"}, {1, "e"}, {3, "f"}, {2, "g"},
	}
	sorter.InsertionFunc(in, func(a, b tagged) bool { return a.key < b.key })

	want := []tagged{
		{1, "b"}, {1, "e"}, {2, "d"}, {2, "g"}, {3, "a"}, {3, "c"}, {3, "f"},
	}
	assert.Equal(t, want, in, "insertion sort must preserve order of equal keys")
}

// TestInsertionFunc_StableRandom compares against sort.SliceStable on many
// duplicate-heavy inputs.
func TestInsertionFunc_StableRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		in := make([]tagged, 50)
		for i := range in {
			in[i] = tagged{key: rng.Intn(5), tag: string(rune('A' + i%26))}
		}
		want := append([]tagged(nil), in...)
		sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

		sorter.InsertionFunc(in, func(a, b tagged) bool { return a.key < b.key })
		require.Equal(t, want, in, "round %d", round)
	}
}

// TestQuick_LargeSortedInput makes sure the worst-case pivot choice does not
// exhaust the range stack.
func TestQuick_LargeSortedInput(t *testing.T) {
	in := make([]int, 20000)
	for i := range in {
		in[i] = i
	}
	sorter.Quick(in)
	assert.True(t, sorter.IsSorted(in))
}

// TestLookup covers the registry lookup by name.
func TestLookup(t *testing.T) {
	a, ok := sorter.Lookup(sorter.NameInsertion)
	require.True(t, ok)
	assert.Equal(t, sorter.NameInsertion, a.Name)

	_, ok = sorter.Lookup("bogo")
	assert.False(t, ok, "unknown names must not resolve")

	names := make([]string, 0, 4)
	for _, alg := range sorter.Algorithms() {
		names = append(names, alg.Name)
	}
	assert.Equal(t, []string{"bubble", "selection", "insertion", "quick"}, names)
}

// TestAlgorithms_FloatEdgeValues checks NaN sorts first and infinities land at
// the ends, for every registered algorithm.
func TestAlgorithms_FloatEdgeValues(t *testing.T) {
	sorts := map[string]sorter.Func[float64]{
		sorter.NameBubble:    sorter.Bubble[float64],
		sorter.NameSelection: sorter.Selection[float64],
		sorter.NameInsertion: sorter.Insertion[float64],
		sorter.NameQuick:     sorter.Quick[float64],
	}
	nan := math.NaN()
	for name, fn := range sorts {
		got := []float64{3, nan, 1, math.Inf(1), nan, -2, math.Inf(-1), 0, nan, 2}
		fn(got)

		for i := 0; i < 3; i++ {
			assert.True(t, math.IsNaN(got[i]), "%s: index %d must be NaN, got %v", name, i, got)
		}
		assert.Equal(t, []float64{math.Inf(-1), -2, 0, 1, 2, 3, math.Inf(1)}, got[3:], name)
		assert.True(t, sorter.IsSorted(got), name)
	}

	assert.False(t, sorter.IsSorted([]float64{1, nan}), "NaN after a number is out of order")
	assert.True(t, sorter.IsSorted([]float64{nan, nan, -1}))
}

// TestQuick_RandomFloatsWithNaN compares Quick against sort.Float64s, which
// uses the same NaN-first order.
func TestQuick_RandomFloatsWithNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 30; round++ {
		in := make([]float64, 60)
		for i := range in {
			if rng.Intn(6) == 0 {
				in[i] = math.NaN()
			} else {
				in[i] = float64(rng.Intn(20) - 10)
			}
		}
		want := append([]float64(nil), in...)
		sort.Float64s(want)
		sorter.Quick(in)

		for i := range want {
			if math.IsNaN(want[i]) {
				require.True(t, math.IsNaN(in[i]), "round %d index %d", round, i)
				continue
			}
			require.Equal(t, want[i], in[i], "round %d index %d", round, i)
		}
	}
}
