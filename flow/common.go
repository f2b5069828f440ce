package flow

import (
	"fmt"

	"go.uber.org/zap"
)

// common holds the state shared by every backend: the network shape,
// the running maximum-flow value, and the detail toggle. Backends
// embed it by value and expose it to the package-level engines through
// the contract's state method.
type common[C Capacity] struct {
	size    int
	source  int
	sink    int
	total   C
	details bool
	maxC    C
	log     *zap.Logger
}

// newCommon validates the network shape and seeds the shared state
// with zero flow and detail computation enabled. It panics when source
// or sink fall outside [0, size).
func newCommon[C Capacity](size, source, sink int, opts []Option) common[C] {
	if source < 0 || source >= size {
		panic(fmt.Sprintf("flow: source index %d out of range [0, %d)", source, size))
	}
	if sink < 0 || sink >= size {
		panic(fmt.Sprintf("flow: sink index %d out of range [0, %d)", sink, size))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return common[C]{
		size:    size,
		source:  source,
		sink:    sink,
		details: true,
		maxC:    maxValue[C](),
		log:     o.Logger,
	}
}

// Size returns the number of nodes in the network.
func (c *common[C]) Size() int { return c.size }

// Source returns the source node index.
func (c *common[C]) Source() int { return c.source }

// Sink returns the sink node index.
func (c *common[C]) Sink() int { return c.sink }

// TotalCapacity returns the running maximum-flow value. It reflects
// every Augment call and every SetCapacity retraction so far, so
// incremental callers can poll it between edits.
func (c *common[C]) TotalCapacity() C { return c.total }

// OmitDetails suspends per-edge flow and cut enumeration in Augment,
// skipping its O(E) extraction pass. Max remains exact.
func (c *common[C]) OmitDetails() { c.details = false }

// HasDetails reports whether Augment enumerates flows and the cut.
func (c *common[C]) HasDetails() bool { return c.details }

func (c *common[C]) state() *common[C] { return c }
