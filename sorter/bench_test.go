package sorter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/arraylist/sorter"
)

// benchmarkSort runs fn over a fresh copy of n random ints per iteration.
// Copying is excluded from the measured time.
func benchmarkSort(b *testing.B, n int, fn sorter.Func[int]) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int, n)
	for i := range src {
		src[i] = rng.Intn(1000)
	}
	work := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(work, src)
		b.StartTimer()
		fn(work)
	}
}

// BenchmarkBubble_1K benchmarks Bubble on 1 000 random ints.
func BenchmarkBubble_1K(b *testing.B) { benchmarkSort(b, 1000, sorter.Bubble[int]) }

// BenchmarkSelection_1K benchmarks Selection on 1 000 random ints.
func BenchmarkSelection_1K(b *testing.B) { benchmarkSort(b, 1000, sorter.Selection[int]) }

// BenchmarkInsertion_1K benchmarks Insertion on 1 000 random ints.
func BenchmarkInsertion_1K(b *testing.B) { benchmarkSort(b, 1000, sorter.Insertion[int]) }

// BenchmarkQuick_1K benchmarks Quick on 1 000 random ints.
func BenchmarkQuick_1K(b *testing.B) { benchmarkSort(b, 1000, sorter.Quick[int]) }

// BenchmarkQuick_100K benchmarks Quick on 100 000 random ints.
func BenchmarkQuick_100K(b *testing.B) { benchmarkSort(b, 100000, sorter.Quick[int]) }
