package flow

// DenseCapacity stores residual capacities and flows in two flat
// row-major size×size buffers (offset from*size+to), the same storage
// discipline as a dense adjacency matrix. Memory is O(V²) and
// enumerating a node's successors scans one row in O(V), so it wins on
// dense or small networks; prefer SparseCapacity when E ≪ V².
type DenseCapacity[C Capacity] struct {
	common[C]
	residual []C
	flow     []C
}

var _ EdmondsKarp[int64] = (*DenseCapacity[int64])(nil)

// NewDense builds a dense network of `size` nodes with zero flow and
// zero capacity everywhere. Panics if source or sink fall outside
// [0, size).
func NewDense[C Capacity](size, source, sink int, opts ...Option) *DenseCapacity[C] {
	return &DenseCapacity[C]{
		common:   newCommon[C](size, source, sink, opts),
		residual: make([]C, size*size),
		flow:     make([]C, size*size),
	}
}

// NewDenseFromMatrix builds a dense network from a square capacity
// matrix (capacities[from][to]). Panics if the matrix is not square or
// if source or sink fall outside its dimension.
func NewDenseFromMatrix[C Capacity](source, sink int, capacities [][]C, opts ...Option) *DenseCapacity[C] {
	net := NewDense[C](len(capacities), source, sink, opts...)
	applyMatrix[C](net, capacities)

	return net
}

// idx maps an ordered node pair onto the flat row-major buffers.
func (d *DenseCapacity[C]) idx(from, to int) int { return from*d.size + to }

// ResidualSuccessors scans row `from` and returns every neighbor with
// strictly positive residual capacity, in ascending node order.
func (d *DenseCapacity[C]) ResidualSuccessors(from int) []Successor[C] {
	row := d.residual[from*d.size : (from+1)*d.size]
	succ := make([]Successor[C], 0, len(row))
	for to, r := range row {
		if r > 0 {
			succ = append(succ, Successor[C]{To: to, Capacity: r})
		}
	}

	return succ
}

// ResidualCapacity returns capacity(from,to) − flow(from,to).
func (d *DenseCapacity[C]) ResidualCapacity(from, to int) C {
	return d.residual[d.idx(from, to)]
}

// Flow returns the flow carried by from→to.
func (d *DenseCapacity[C]) Flow(from, to int) C {
	return d.flow[d.idx(from, to)]
}

// Flows enumerates every edge with strictly positive flow in ascending
// (from, to) order.
func (d *DenseCapacity[C]) Flows() []Edge[int, C] {
	flows := make([]Edge[int, C], 0)
	for from := 0; from < d.size; from++ {
		for to := 0; to < d.size; to++ {
			if f := d.flow[d.idx(from, to)]; f > 0 {
				flows = append(flows, Edge[int, C]{From: from, To: to, Value: f})
			}
		}
	}

	return flows
}

// FlowsFrom returns the nodes receiving strictly positive flow from
// `from`, in ascending order.
func (d *DenseCapacity[C]) FlowsFrom(from int) []int {
	row := d.flow[from*d.size : (from+1)*d.size]
	heads := make([]int, 0)
	for to, f := range row {
		if f > 0 {
			heads = append(heads, to)
		}
	}

	return heads
}

// AddFlow pushes amount along from→to, updating flow(from,to),
// flow(to,from) and both residual entries as one atomic operation.
func (d *DenseCapacity[C]) AddFlow(from, to int, amount C) {
	fw, bw := d.idx(from, to), d.idx(to, from)
	d.flow[fw] += amount
	d.flow[bw] -= amount
	d.residual[fw] -= amount
	d.residual[bw] += amount
}

// SetCapacity sets the nominal capacity of from→to, canceling any
// excess flow the edge can no longer carry.
func (d *DenseCapacity[C]) SetCapacity(from, to int, capacity C) {
	setCapacity[C](d, from, to, capacity)
}

// Augment pushes flow along shortest augmenting paths until none
// remains; see the EdmondsKarp contract for the result shape.
func (d *DenseCapacity[C]) Augment() EKFlows[int, C] {
	return augment[C](d)
}

func (d *DenseCapacity[C]) addResidualCapacity(from, to int, delta C) {
	d.residual[d.idx(from, to)] += delta
}
