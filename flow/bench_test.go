package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/maxflow/flow"
)

// randomEdges produces a deterministic directed network with V nodes
// and roughly p probability of an edge between any ordered pair.
// Capacities are uniform in [1, maxCap].
func randomEdges(V int, p float64, maxCap int64, seed int64) []flow.Edge[int, int64] {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	edges := make([]flow.Edge[int, int64], 0)
	for from := 0; from < V; from++ {
		for to := 0; to < V; to++ {
			if from == to {
				continue // skip self-loops
			}
			if r.Float64() < p {
				edges = append(edges, flow.Edge[int, int64]{
					From: from, To: to, Value: r.Int63n(maxCap) + 1,
				})
			}
		}
	}

	return edges
}

// BenchmarkAugment measures a full solve on both backends across
// graph sizes and densities.
func BenchmarkAugment(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small_Dense", 50, 0.30, 10, 42},
		{"Medium_Sparse", 200, 0.05, 20, 4242},
		{"Large_Sparse", 500, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			edges := randomEdges(tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)

			b.Run("DenseCapacity", func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					net := flow.NewDense[int64](tc.vertices, 0, tc.vertices-1)
					for _, e := range edges {
						net.SetCapacity(e.From, e.To, e.Value)
					}
					net.Augment()
				}
			})

			b.Run("SparseCapacity", func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					net := flow.NewSparse[int64](tc.vertices, 0, tc.vertices-1)
					for _, e := range edges {
						net.SetCapacity(e.From, e.To, e.Value)
					}
					net.Augment()
				}
			})
		})
	}
}

// BenchmarkIncrementalEdit measures the cost of one shrink edit plus
// re-augmentation against a full fresh solve.
func BenchmarkIncrementalEdit(b *testing.B) {
	const V = 200
	edges := randomEdges(V, 0.05, 20, 7)

	b.Run("EditAndReaugment", func(b *testing.B) {
		net := flow.NewSparse[int64](V, 0, V-1)
		for _, e := range edges {
			net.SetCapacity(e.From, e.To, e.Value)
		}
		net.Augment()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// Alternate the first edge between closed and original.
			if i%2 == 0 {
				net.SetCapacity(edges[0].From, edges[0].To, 0)
			} else {
				net.SetCapacity(edges[0].From, edges[0].To, edges[0].Value)
			}
			net.Augment()
		}
	})

	b.Run("FreshSolve", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			net := flow.NewSparse[int64](V, 0, V-1)
			for _, e := range edges {
				net.SetCapacity(e.From, e.To, e.Value)
			}
			net.Augment()
		}
	})
}
