// Package flow computes maximum flow and minimum cut on directed,
// capacitated networks with the Edmonds–Karp algorithm, and keeps the
// solution alive across incremental capacity edits: capacities can be
// raised or lowered any number of times after a solve, and the
// structure cancels exactly the excess flow instead of recomputing
// from scratch.
//
// # Contract and backends
//
// The EdmondsKarp interface is the single contract every storage
// backend implements. Two interchangeable backends are provided:
//
//   - DenseCapacity — two flat size×size row-major buffers (residual
//     and flow). Memory O(V²), successor scan O(V). Best for dense or
//     small networks.
//
//   - SparseCapacity — nested maps node→neighbor→value with
//     zero-valued entries pruned. Memory O(E), successor scan
//     O(deg·log deg) (neighbors are sorted for determinism). Best for
//     large sparse networks.
//
// Both backends walk successors in ascending node order and therefore
// produce identical flows, totals, and cuts for identical inputs; they
// differ only in performance characteristics.
//
// The augmenting-path loop and the flow-cancellation engine are
// implemented once as package-level functions generic over the
// contract — backends supply primitives (residual successors, atomic
// skew-symmetric AddFlow, residual adjustment) and delegate the rest.
//
// # Incremental edits
//
// SetCapacity is the only mutator of nominal capacity. When the new
// capacity drops below the flow an edge currently carries, the excess
// is retracted on the edge, then rerouted back through source-side and
// sink-side cancellation passes over the positive-flow graph, so flow
// conservation holds at every node afterwards; TotalCapacity drops by
// exactly the canceled amount. A later Augment reuses all surviving
// flow.
//
// # Invariants
//
// At every observable point:
//
//	Flow(a, b) == -Flow(b, a)                          (skew symmetry)
//	ResidualCapacity(a, b) >= 0                        (feasibility)
//	inflow(n) == outflow(n) for n ∉ {source, sink}     (conservation)
//
// # Façade
//
// EdmondsKarpDense and EdmondsKarpSparse accept arbitrary comparable
// vertex labels plus capacity edges, build an order-preserving
// label→index bijection, solve, and translate results back to labels.
//
// # Errors
//
// All failure modes are precondition violations and panic: source or
// sink out of [0, size) at construction, a non-square capacity matrix,
// or a label missing from the façade's vertex list. The cancellation
// engine panics if no retraction path exists in the flow graph — flow
// conservation guarantees one, so reaching that branch means corrupted
// state, not bad input. With floating-point capacities, rounding drift
// could in principle trip it; stick to integer capacity types when
// exactness matters.
//
// # Complexity
//
//	Augment: O(V · E²) — the standard Edmonds–Karp bound.
//	SetCapacity (shrink by Δ): O(Δ · (V + E)) cancellation passes
//	  in the worst case, typically far fewer.
//
// # Concurrency
//
// A network is exclusively owned by one caller; serialize shared use
// externally. All calls are blocking, with no internal parallelism.
package flow
