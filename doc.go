// Package maxflow is an incremental maximum-flow / minimum-cut toolkit
// for directed, capacitated networks.
//
// 🚀 What is maxflow?
//
//	A focused library built around one hard problem: keeping a max-flow
//	solution alive while capacities keep changing.
//		• Edmonds–Karp core: BFS shortest augmenting paths, O(V·E²)
//		• Incremental edits: raise or lower any capacity after a solve;
//		  excess flow is canceled in place, never recomputed from scratch
//		• Two storage back-ends behind one contract:
//		  DenseCapacity (row-major matrices) and SparseCapacity (pruned maps)
//		• Minimum-cut extraction by max-flow/min-cut duality
//		• Generic over node labels and signed numeric capacity types
//
// ✨ Why choose maxflow?
//
//   - One contract, two backends – trade O(V²) memory for O(deg) scans
//   - Deterministic – both backends walk successors in ascending order
//     and report identical flows, totals, and cuts
//   - Observable – wire a zap logger to watch every augmentation and
//     cancellation pass
//
// Everything is organized under two subpackages:
//
//	bfs/  — generic breadth-first search over a successor function
//	flow/ — the EdmondsKarp contract, both backends, and label façades
//
// Quick ASCII example:
//
//	A──3──▶B──4──▶C──2──▶E
//	│             │      │
//	3             1      1
//	▼             ▼      ▼
//	D──────6─────▶F──9──▶G
//
//	a flow network where edits to any capacity propagate incrementally.
//
// Dive into flow/doc.go for the full contract and usage examples.
//
//	go get github.com/katalvlaran/maxflow
package maxflow
