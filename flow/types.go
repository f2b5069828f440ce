package flow

import (
	"math"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Capacity constrains the numeric types usable as edge capacities and
// flows. Signedness is mandatory: the residual capacity of a reverse
// edge is recorded as the negation of the forward flow.
type Capacity interface {
	constraints.Signed | constraints.Float
}

// Edge associates an ordered (From, To) node pair with a value — a
// capacity when supplied as input, a flow or crossing capacity in
// results.
type Edge[N comparable, C Capacity] struct {
	From, To N
	Value    C
}

// Successor pairs a neighbor node with the value of the edge leading
// to it (the residual capacity, in ResidualSuccessors).
type Successor[C Capacity] struct {
	To       int
	Capacity C
}

// EKFlows bundles the outcome of a max-flow computation:
//   - Flows: every edge carrying strictly positive flow.
//   - Max:   the total source→sink flow value.
//   - Cut:   a minimum cut, as the positive-flow edges crossing from
//     the source-reachable side to its complement.
//
// Flows and Cut are empty when detail computation is suspended via
// OmitDetails.
type EKFlows[N comparable, C Capacity] struct {
	Flows []Edge[N, C]
	Max   C
	Cut   []Edge[N, C]
}

// Option configures a backend via functional arguments.
type Option func(*Options)

// Options holds tunables shared by both backends.
type Options struct {
	// Logger receives Debug-level progress: every augmenting path,
	// capacity shrink, and cancellation pass. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultOptions returns production-safe defaults: a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes engine progress to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// maxValue returns the largest finite value of the concrete capacity
// type, used as the "unconstrained bottleneck" sentinel in the
// augmenting-path search. Computed once per network at construction.
func maxValue[C Capacity]() C {
	var zero C
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Int8:
		v := int8(math.MaxInt8)

		return C(v)
	case reflect.Int16:
		v := int16(math.MaxInt16)

		return C(v)
	case reflect.Int32:
		v := int32(math.MaxInt32)

		return C(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)

		return C(v)
	case reflect.Int:
		v := math.MaxInt

		return C(v)
	case reflect.Float32:
		v := float32(math.MaxFloat32)

		return C(v)
	default: // reflect.Float64
		v := math.MaxFloat64

		return C(v)
	}
}
