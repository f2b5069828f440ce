package flow

import "fmt"

// EdmondsKarpDense computes the maximum flow between two labeled
// vertices with a DenseCapacity backend: a convenience façade over the
// EdmondsKarp contract for one-shot solves.
//
// vertices supplies the node set; its order fixes the label→index
// bijection. capacities lists directed edges with their nominal
// capacities (later entries for the same ordered pair overwrite
// earlier ones). Panics when source, sink, or any edge endpoint is
// absent from vertices.
func EdmondsKarpDense[N comparable, C Capacity](vertices []N, source, sink N, capacities []Edge[N, C], opts ...Option) EKFlows[N, C] {
	index, src, dst := indexVertices(vertices, source, sink)

	return solve(vertices, index, NewDense[C](len(vertices), src, dst, opts...), capacities)
}

// EdmondsKarpSparse is EdmondsKarpDense with a SparseCapacity backend;
// identical results, O(E) memory instead of O(V²).
func EdmondsKarpSparse[N comparable, C Capacity](vertices []N, source, sink N, capacities []Edge[N, C], opts ...Option) EKFlows[N, C] {
	index, src, dst := indexVertices(vertices, source, sink)

	return solve(vertices, index, NewSparse[C](len(vertices), src, dst, opts...), capacities)
}

// indexVertices builds the order-preserving label→index bijection and
// resolves the source and sink labels, panicking when either is
// missing from the vertex list.
func indexVertices[N comparable](vertices []N, source, sink N) (map[N]int, int, int) {
	index := make(map[N]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	src, ok := index[source]
	if !ok {
		panic(fmt.Sprintf("flow: source vertex %v not in vertex list", source))
	}
	dst, ok := index[sink]
	if !ok {
		panic(fmt.Sprintf("flow: sink vertex %v not in vertex list", sink))
	}

	return index, src, dst
}

// solve loads capacities through SetCapacity, augments to maximality,
// and translates the index-space result back into caller labels.
func solve[N comparable, C Capacity](vertices []N, index map[N]int, net EdmondsKarp[C], capacities []Edge[N, C]) EKFlows[N, C] {
	for _, e := range capacities {
		from, ok := index[e.From]
		if !ok {
			panic(fmt.Sprintf("flow: edge tail %v not in vertex list", e.From))
		}
		to, ok := index[e.To]
		if !ok {
			panic(fmt.Sprintf("flow: edge head %v not in vertex list", e.To))
		}
		net.SetCapacity(from, to, e.Value)
	}
	res := net.Augment()

	return EKFlows[N, C]{
		Flows: relabel(vertices, res.Flows),
		Max:   res.Max,
		Cut:   relabel(vertices, res.Cut),
	}
}

// relabel maps index-space edges back onto caller-supplied labels.
func relabel[N comparable, C Capacity](vertices []N, edges []Edge[int, C]) []Edge[N, C] {
	out := make([]Edge[N, C], len(edges))
	for i, e := range edges {
		out[i] = Edge[N, C]{From: vertices[e.From], To: vertices[e.To], Value: e.Value}
	}

	return out
}
