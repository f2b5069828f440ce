// Package bfs provides a generic breadth-first search over an implicit
// graph described by a successor function, returning a shortest path
// (fewest edges) from a start node to a goal.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from start.
//   - The graph never needs to be materialized: successors(n) yields the
//     nodes reachable from n in one step, computed on demand.
//   - Path returns the first (therefore shortest) path reaching a node
//     for which goal returns true, inclusive of both endpoints.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Traverse derived graphs — residual graphs, flow graphs, level
//     graphs — without copying them into a concrete structure.
//   - Foundation for the flow package's cancellation engine, which
//     walks the positive-flow graph to retract committed flow.
//
// Determinism
//
//	Path enqueues successors exactly in the order the successor function
//	yields them; a deterministic successor function gives a fully
//	reproducible traversal and path.
//
// Complexity (V = nodes reached, E = successor pairs examined)
//
//   - Time:   O(V + E)   (each node expanded at most once)
//   - Memory: O(V)       (queue and parent map)
//
// Usage
//
//	path, found := bfs.Path(start,
//	    func(n int) []int { return adjacency[n] },
//	    func(n int) bool { return n == target },
//	)
//	if !found {
//	    // target unreachable from start
//	}
package bfs
