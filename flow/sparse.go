package flow

import "sort"

// SparseCapacity stores residual capacities and flows in nested maps
// node→neighbor→value, pruning entries the moment they land on zero,
// so memory stays O(E). Successor enumeration sorts the neighbor set
// (O(deg·log deg)) to keep traversal order ascending and the observable
// behavior identical to DenseCapacity. Best for large sparse networks.
type SparseCapacity[C Capacity] struct {
	common[C]
	residual map[int]map[int]C
	flow     map[int]map[int]C
}

var _ EdmondsKarp[int64] = (*SparseCapacity[int64])(nil)

// NewSparse builds a sparse network of `size` nodes with zero flow and
// zero capacity everywhere. Panics if source or sink fall outside
// [0, size).
func NewSparse[C Capacity](size, source, sink int, opts ...Option) *SparseCapacity[C] {
	return &SparseCapacity[C]{
		common:   newCommon[C](size, source, sink, opts),
		residual: make(map[int]map[int]C),
		flow:     make(map[int]map[int]C),
	}
}

// NewSparseFromMatrix builds a sparse network from a square capacity
// matrix (capacities[from][to]); zero entries allocate nothing. Panics
// if the matrix is not square or if source or sink fall outside its
// dimension.
func NewSparseFromMatrix[C Capacity](source, sink int, capacities [][]C, opts ...Option) *SparseCapacity[C] {
	net := NewSparse[C](len(capacities), source, sink, opts...)
	applyMatrix[C](net, capacities)

	return net
}

// ResidualSuccessors returns every neighbor with strictly positive
// residual capacity, sorted into ascending node order.
func (s *SparseCapacity[C]) ResidualSuccessors(from int) []Successor[C] {
	row := s.residual[from]
	succ := make([]Successor[C], 0, len(row))
	for to, r := range row {
		if r > 0 {
			succ = append(succ, Successor[C]{To: to, Capacity: r})
		}
	}
	sort.Slice(succ, func(i, j int) bool { return succ[i].To < succ[j].To })

	return succ
}

// ResidualCapacity returns capacity(from,to) − flow(from,to); absent
// entries read as zero.
func (s *SparseCapacity[C]) ResidualCapacity(from, to int) C {
	return s.residual[from][to]
}

// Flow returns the flow carried by from→to; absent entries read as
// zero.
func (s *SparseCapacity[C]) Flow(from, to int) C {
	return s.flow[from][to]
}

// Flows enumerates every edge with strictly positive flow in ascending
// (from, to) order.
func (s *SparseCapacity[C]) Flows() []Edge[int, C] {
	tails := make([]int, 0, len(s.flow))
	for from := range s.flow {
		tails = append(tails, from)
	}
	sort.Ints(tails)

	flows := make([]Edge[int, C], 0)
	for _, from := range tails {
		for _, to := range sortedKeys(s.flow[from]) {
			if f := s.flow[from][to]; f > 0 {
				flows = append(flows, Edge[int, C]{From: from, To: to, Value: f})
			}
		}
	}

	return flows
}

// FlowsFrom returns the nodes receiving strictly positive flow from
// `from`, in ascending order.
func (s *SparseCapacity[C]) FlowsFrom(from int) []int {
	heads := make([]int, 0, len(s.flow[from]))
	for to, f := range s.flow[from] {
		if f > 0 {
			heads = append(heads, to)
		}
	}
	sort.Ints(heads)

	return heads
}

// AddFlow pushes amount along from→to, updating flow(from,to),
// flow(to,from) and both residual entries as one atomic operation.
func (s *SparseCapacity[C]) AddFlow(from, to int, amount C) {
	sparseAdd(s.flow, from, to, amount)
	sparseAdd(s.flow, to, from, -amount)
	sparseAdd(s.residual, from, to, -amount)
	sparseAdd(s.residual, to, from, amount)
}

// SetCapacity sets the nominal capacity of from→to, canceling any
// excess flow the edge can no longer carry.
func (s *SparseCapacity[C]) SetCapacity(from, to int, capacity C) {
	setCapacity[C](s, from, to, capacity)
}

// Augment pushes flow along shortest augmenting paths until none
// remains; see the EdmondsKarp contract for the result shape.
func (s *SparseCapacity[C]) Augment() EKFlows[int, C] {
	return augment[C](s)
}

func (s *SparseCapacity[C]) addResidualCapacity(from, to int, delta C) {
	sparseAdd(s.residual, from, to, delta)
}

// sparseAdd accumulates delta into table[from][to], materializing the
// inner map on demand and pruning entries (and emptied rows) that land
// exactly on zero.
func sparseAdd[C Capacity](table map[int]map[int]C, from, to int, delta C) {
	if delta == 0 {
		return
	}
	row := table[from]
	if row == nil {
		row = make(map[int]C)
		table[from] = row
	}
	if v := row[to] + delta; v != 0 {
		row[to] = v
	} else {
		delete(row, to)
		if len(row) == 0 {
			delete(table, from)
		}
	}
}

// sortedKeys returns the keys of row in ascending order.
func sortedKeys[C Capacity](row map[int]C) []int {
	keys := make([]int, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
