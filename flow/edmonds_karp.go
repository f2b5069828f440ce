package flow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxflow/bfs"
)

// EdmondsKarp is the contract shared by every capacity/flow backend.
//
// Backends own the raw residual-capacity and flow tables and provide
// the low-level edge primitives; the augmenting-path loop, the
// capacity-edit bookkeeping, and the flow-cancellation engine are
// implemented once at package level and reused through this interface,
// so no algorithm is ever duplicated per backend.
//
// A value implementing EdmondsKarp is a live structure: hold it, apply
// repeated SetCapacity edits, and call Augment whenever a max-flow
// answer is needed — later solves reuse all surviving flow instead of
// starting over.
//
// The contract is sealed on two internal methods; external packages
// consume the provided backends rather than implementing their own.
type EdmondsKarp[C Capacity] interface {
	// Size returns the number of nodes in the network.
	Size() int
	// Source returns the source node index.
	Source() int
	// Sink returns the sink node index.
	Sink() int
	// TotalCapacity returns the running maximum-flow value.
	TotalCapacity() C

	// ResidualSuccessors returns every node reachable from `from`
	// through an edge with strictly positive residual capacity, paired
	// with that residual, in ascending node order.
	ResidualSuccessors(from int) []Successor[C]
	// ResidualCapacity returns capacity(from,to) − flow(from,to).
	ResidualCapacity(from, to int) C
	// Flow returns the flow carried by from→to; negative values mirror
	// positive flow on the reverse edge (skew symmetry).
	Flow(from, to int) C
	// Flows enumerates every edge with strictly positive flow, in
	// ascending (from, to) order.
	Flows() []Edge[int, C]
	// FlowsFrom returns the nodes receiving strictly positive flow
	// from `from`, in ascending order. Used by the cancellation engine
	// to traverse the flow graph.
	FlowsFrom(from int) []int

	// AddFlow pushes amount along from→to, updating the
	// skew-symmetric flow pair and both residual entries as one atomic
	// operation. It is a primitive for the engines; callers edit the
	// network through SetCapacity instead.
	AddFlow(from, to int, amount C)
	// SetCapacity sets the nominal capacity of from→to. When the new
	// capacity is below the flow the edge currently carries, the
	// excess is canceled first so every invariant still holds.
	SetCapacity(from, to int, capacity C)

	// Augment pushes flow along shortest augmenting paths until the
	// sink is unreachable, then reports flows, the max-flow value, and
	// a minimum cut (empty lists when details are suspended).
	Augment() EKFlows[int, C]

	// OmitDetails suspends flow/cut enumeration in Augment.
	OmitDetails()
	// HasDetails reports whether Augment enumerates flows and the cut.
	HasDetails() bool

	state() *common[C]
	addResidualCapacity(from, to int, delta C)
}

// augment is the Edmonds-Karp loop shared by both backends: repeated
// breadth-first search of the residual graph from the source, pushing
// each discovered bottleneck, until a search exhausts without reaching
// the sink. The nodes that final search visited form the source side
// of a minimum cut.
//
// Scratch buffers (parent pointers, bottleneck-so-far) are sized once
// per call and cleared, never reallocated, across all augmenting
// iterations within it.
//
// Complexity: O(V · E²).
func augment[C Capacity](net EdmondsKarp[C]) EKFlows[int, C] {
	var (
		st     = net.state()
		source = st.source
		sink   = st.sink
	)
	parents := make([]int, st.size)
	pathCapacity := make([]C, st.size)
	queue := make([]int, 0, st.size)
	resetScratch(parents, pathCapacity, st.maxC)

augmenting:
	for {
		queue = append(queue[:0], source)
		for head := 0; head < len(queue); head++ {
			node := queue[head]
			soFar := pathCapacity[node]
			for _, succ := range net.ResidualSuccessors(node) {
				next := succ.To
				if next == source || parents[next] >= 0 {
					continue
				}
				parents[next] = node
				if succ.Capacity < soFar {
					pathCapacity[next] = succ.Capacity
				} else {
					pathCapacity[next] = soFar
				}
				if next == sink {
					// Push the bottleneck along the whole path, then
					// restart the search in the updated residual graph.
					bottleneck := pathCapacity[sink]
					edges := 0
					for n := sink; n != source; n = parents[n] {
						net.AddFlow(parents[n], n, bottleneck)
						edges++
					}
					st.total += bottleneck
					st.log.Debug("augmenting path pushed",
						zap.Any("bottleneck", bottleneck),
						zap.Int("edges", edges),
						zap.Any("total", st.total))
					resetScratch(parents, pathCapacity, st.maxC)

					continue augmenting
				}
				queue = append(queue, next)
			}
		}

		break
	}

	if !st.details {
		return EKFlows[int, C]{Max: st.total}
	}

	sourceSide := func(n int) bool { return n == source || parents[n] >= 0 }
	flows := net.Flows()
	cut := make([]Edge[int, C], 0)
	for _, e := range flows {
		if sourceSide(e.From) && !sourceSide(e.To) {
			cut = append(cut, e)
		}
	}

	return EKFlows[int, C]{Flows: flows, Max: st.total, Cut: cut}
}

// resetScratch clears parent pointers and bottleneck values in place
// so the buffers can be reused by the next search round.
func resetScratch[C Capacity](parents []int, pathCapacity []C, inf C) {
	for i := range parents {
		parents[i] = -1
		pathCapacity[i] = inf
	}
}

// setCapacity applies a nominal-capacity edit through the backend
// primitives. The residual delta is computed against the pre-edit
// state; when the new capacity undercuts the carried flow, the excess
// is retracted on the edge itself and the retraction is routed back
// through a source→from pass and a to→sink pass over the flow graph,
// restoring conservation at both endpoints before the delta lands.
func setCapacity[C Capacity](net EdmondsKarp[C], from, to int, capacity C) {
	st := net.state()
	carried := net.Flow(from, to)
	delta := capacity - net.ResidualCapacity(from, to) - carried
	if capacity < carried {
		excess := carried - capacity
		st.log.Debug("capacity below carried flow, canceling excess",
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Any("excess", excess))
		net.AddFlow(to, from, excess)
		cancelFlow(net, st.source, from, excess)
		cancelFlow(net, to, st.sink, excess)
		st.total -= excess
	}
	net.addResidualCapacity(from, to, delta)
}

// cancelFlow retracts amount units of flow between from and to by
// repeatedly searching the positive-flow graph for a from→to path and
// subtracting the largest cancelable quantity along it (the minimum
// flow on the path, capped by what remains to cancel).
//
// Flow conservation guarantees such a path exists whenever there is
// flow left to cancel; its absence means the network state is
// corrupted, which panics rather than erroring.
func cancelFlow[C Capacity](net EdmondsKarp[C], from, to int, amount C) {
	if from == to {
		return
	}
	st := net.state()
	for amount > 0 {
		path, found := bfs.Path(from, net.FlowsFrom, func(n int) bool { return n == to })
		if !found {
			panic(fmt.Sprintf("flow: no retraction path %d→%d in the flow graph; network state is corrupted", from, to))
		}
		cancelable := amount
		for i := 0; i+1 < len(path); i++ {
			if f := net.Flow(path[i], path[i+1]); f < cancelable {
				cancelable = f
			}
		}
		for i := 0; i+1 < len(path); i++ {
			net.AddFlow(path[i+1], path[i], cancelable)
		}
		st.log.Debug("retraction pass",
			zap.Int("path_edges", len(path)-1),
			zap.Any("canceled", cancelable))
		amount -= cancelable
	}
}

// applyMatrix validates squareness and loads a capacity matrix through
// SetCapacity, so both backends share one loading path.
func applyMatrix[C Capacity](net EdmondsKarp[C], capacities [][]C) {
	n := len(capacities)
	for from, row := range capacities {
		if len(row) != n {
			panic(fmt.Sprintf("flow: capacity matrix is not square: row %d has %d entries, want %d", from, len(row), n))
		}
		for to, c := range row {
			if c != 0 {
				net.SetCapacity(from, to, c)
			}
		}
	}
}
