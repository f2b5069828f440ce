package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/flow"
)

// TestNewDense_PanicsOnBadEndpoints verifies the construction
// preconditions: source and sink must lie inside [0, size).
func TestNewDense_PanicsOnBadEndpoints(t *testing.T) {
	require.Panics(t, func() { flow.NewDense[int64](3, 3, 1) }, "source == size")
	require.Panics(t, func() { flow.NewDense[int64](3, -1, 1) }, "negative source")
	require.Panics(t, func() { flow.NewDense[int64](3, 0, 5) }, "sink beyond size")
	require.NotPanics(t, func() { flow.NewDense[int64](3, 0, 2) })
}

// TestNewDenseFromMatrix_PanicsOnRaggedMatrix rejects non-square input.
func TestNewDenseFromMatrix_PanicsOnRaggedMatrix(t *testing.T) {
	require.Panics(t, func() {
		flow.NewDenseFromMatrix[int64](0, 1, [][]int64{
			{0, 2},
			{0},
		})
	})
}

// TestNewDenseFromMatrix matches the edge-list construction route.
func TestNewDenseFromMatrix(t *testing.T) {
	net := flow.NewDenseFromMatrix[int64](0, 2, [][]int64{
		{0, 4, 0},
		{0, 0, 3},
		{0, 0, 0},
	})
	res := net.Augment()
	require.Equal(t, int64(3), res.Max)
	require.Equal(t, []flow.Edge[int, int64]{
		{From: 0, To: 1, Value: 3},
		{From: 1, To: 2, Value: 3},
	}, res.Flows)
}

// TestDense_AddFlowSkewSymmetry checks the atomic four-way update of
// the primitive.
func TestDense_AddFlowSkewSymmetry(t *testing.T) {
	net := flow.NewDense[int64](3, 0, 2)
	net.SetCapacity(0, 1, 10)
	net.AddFlow(0, 1, 4)

	require.Equal(t, int64(4), net.Flow(0, 1))
	require.Equal(t, int64(-4), net.Flow(1, 0))
	require.Equal(t, int64(6), net.ResidualCapacity(0, 1))
	require.Equal(t, int64(4), net.ResidualCapacity(1, 0), "reverse residual mirrors the flow")
}

// TestDense_ResidualSuccessorsOrder: ascending node order, positive
// residuals only.
func TestDense_ResidualSuccessorsOrder(t *testing.T) {
	net := flow.NewDense[int64](5, 0, 4)
	net.SetCapacity(0, 3, 7)
	net.SetCapacity(0, 1, 2)
	net.SetCapacity(0, 4, 1)

	require.Equal(t, []flow.Successor[int64]{
		{To: 1, Capacity: 2},
		{To: 3, Capacity: 7},
		{To: 4, Capacity: 1},
	}, net.ResidualSuccessors(0))
	require.Empty(t, net.ResidualSuccessors(2))
}

// TestDense_FlowsFrom only reports strictly positive flow targets.
func TestDense_FlowsFrom(t *testing.T) {
	net := flow.NewDense[int64](4, 0, 3)
	net.SetCapacity(0, 1, 5)
	net.SetCapacity(1, 3, 5)
	net.Augment()

	require.Equal(t, []int{1}, net.FlowsFrom(0))
	require.Equal(t, []int{3}, net.FlowsFrom(1))
	require.Empty(t, net.FlowsFrom(3), "sink pushes nothing forward")
	require.Empty(t, net.FlowsFrom(2), "isolated node carries no flow")
}
