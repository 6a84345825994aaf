// SPDX-License-Identifier: MIT

package rtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spatialgraph/rtree"
)

// Benchmark sinks prevent accidental dead-code elimination in microbenchmarks.
var (
	benchSinkErr   error
	benchSinkItems []int
	benchSinkN     int
)

func benchPointTree(b *testing.B, n int) (*rtree.Tree[int, float64], [][]float64) {
	b.Helper()
	tr, err := rtree.NewTree[int, float64](2, func(a, bb int) bool { return a == bb }, nil)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{rng.Float64() * 1000, rng.Float64() * 1000}
		if err := tr.Insert(i, rtree.Point[float64](points[i])); err != nil {
			b.Fatal(err)
		}
	}

	return tr, points
}

// BenchmarkInsert_Uniform measures Insert throughput over uniform-random
// points, excluding tree construction and coordinate generation from the
// timed region.
//
// Complexity: per iteration, expected O(log_M n) with an amortized split
// cost on overflow.
func BenchmarkInsert_Uniform(b *testing.B) {
	tr, err := rtree.NewTree[int, float64](2, func(a, bb int) bool { return a == bb }, nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, b.N)
	for i := range points {
		points[i] = []float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkErr = tr.Insert(i, rtree.Point[float64](points[i]))
	}
}

// BenchmarkSearch_SmallROI measures Search on a fixed 100k-point tree with a
// query box selecting a small fraction of the index.
//
// Complexity: O(log_M n + m) where m is the number of matches.
func BenchmarkSearch_SmallROI(b *testing.B) {
	tr, _ := benchPointTree(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		items, err := tr.Search([]float64{490, 490}, []float64{510, 510})
		benchSinkItems, benchSinkErr = items, err
	}
}

// BenchmarkNearest_K10 measures Nearest(point, 10) on a fixed 100k-point
// tree, exercising the best-first priority-queue search.
//
// Complexity: O((m+k) log m) where m is the number of queue entries
// touched.
func BenchmarkNearest_K10(b *testing.B) {
	tr, _ := benchPointTree(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		items, err := tr.Nearest([]float64{500, 500}, 10)
		benchSinkItems, benchSinkErr = items, err
	}
}

// BenchmarkDelete_RoundTrip measures Insert immediately followed by Delete
// of the same entry on a warmed-up 100k-point tree, exercising condense on
// every call.
//
// Complexity: O(log_M n) expected per Insert/Delete pair.
func BenchmarkDelete_RoundTrip(b *testing.B) {
	tr, _ := benchPointTree(b, 100_000)
	r := rtree.Point[float64]([]float64{500, 500})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := tr.Insert(-1, r); err != nil {
			b.Fatal(err)
		}
		if !tr.Delete(-1, r) {
			b.Fatal("expected Delete to find the just-inserted entry")
		}
	}
	benchSinkN = tr.Len()
}
