package order_test

import (
	"testing"

	"docdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusNew, order.StatusAssigned, order.StatusInProgress,
			order.StatusReady, order.StatusShipped, order.StatusInTransit,
			order.StatusDelivered, order.StatusCompleted, order.StatusCancelled,
		} {
			assert.NoError(t, s.Validate(), "status: %s", s)
		}
	})

	t.Run("unknown and out-of-range values fail validation", func(t *testing.T) {
		assert.Error(t, order.StatusUnknown.Validate())
		assert.Error(t, order.Status(42).Validate())
		assert.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusNew, "new"},
		{order.StatusAssigned, "assigned"},
		{order.StatusInProgress, "in_progress"},
		{order.StatusReady, "ready"},
		{order.StatusShipped, "shipped"},
		{order.StatusInTransit, "in_transit"},
		{order.StatusDelivered, "delivered"},
		{order.StatusCompleted, "completed"},
		{order.StatusCancelled, "cancelled"},
		{order.StatusUnknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		name string
		do   func(order.Status) (order.Status, error)
		from []order.Status
		to   order.Status
	}

	all := []order.Status{
		order.StatusNew, order.StatusAssigned, order.StatusInProgress,
		order.StatusReady, order.StatusShipped, order.StatusInTransit,
		order.StatusDelivered, order.StatusCompleted, order.StatusCancelled,
	}

	transitions := []transition{
		{"Assign", order.Status.Assign, []order.Status{order.StatusNew}, order.StatusAssigned},
		{"Start", order.Status.Start, []order.Status{order.StatusAssigned}, order.StatusInProgress},
		{"Ready", order.Status.Ready, []order.Status{order.StatusInProgress}, order.StatusReady},
		{"Ship", order.Status.Ship, []order.Status{order.StatusReady}, order.StatusShipped},
		{"HandOff", order.Status.HandOff, []order.Status{order.StatusShipped}, order.StatusInTransit},
		{"Deliver", order.Status.Deliver,
			[]order.Status{order.StatusShipped, order.StatusInTransit}, order.StatusDelivered},
		{"Complete", order.Status.Complete,
			[]order.Status{order.StatusDelivered, order.StatusCompleted}, order.StatusCompleted},
		{"Cancel", order.Status.Cancel, []order.Status{order.StatusNew}, order.StatusCancelled},
	}

	allowed := func(tr transition, from order.Status) bool {
		for _, s := range tr.from {
			if s == from {
				return true
			}
		}
		return false
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range all {
				next, err := tr.do(from)
				if allowed(tr, from) {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, tr.to, next, "from %s", from)
				} else {
					require.Error(t, err, "from %s", from)
					require.ErrorIs(t, err, order.ErrInvalidTransition, "from %s", from)
				}
			}
		})
	}
}

func TestStatus_RequiresDelegate(t *testing.T) {
	withDelegate := []order.Status{
		order.StatusAssigned, order.StatusInProgress, order.StatusReady,
		order.StatusShipped, order.StatusInTransit, order.StatusDelivered,
		order.StatusCompleted,
	}
	withoutDelegate := []order.Status{order.StatusNew, order.StatusCancelled, order.StatusUnknown}

	for _, s := range withDelegate {
		assert.True(t, s.RequiresDelegate(), "status: %s", s)
		assert.NoError(t, s.ValidateCanHaveDelegate(true))
		assert.Error(t, s.ValidateCanHaveDelegate(false))
	}

	for _, s := range withoutDelegate {
		assert.False(t, s.RequiresDelegate(), "status: %s", s)
		assert.NoError(t, s.ValidateCanHaveDelegate(false))
		assert.Error(t, s.ValidateCanHaveDelegate(true))
	}
}

func TestStatus_IsForwardOf(t *testing.T) {
	forward := []order.Status{
		order.StatusNew, order.StatusAssigned, order.StatusInProgress,
		order.StatusReady, order.StatusShipped, order.StatusInTransit,
		order.StatusDelivered, order.StatusCompleted,
	}

	for i, from := range forward {
		for j, to := range forward {
			assert.Equal(t, j > i, to.IsForwardOf(from), "%s -> %s", from, to)
		}
	}

	t.Run("cancelled is outside the forward chain", func(t *testing.T) {
		assert.False(t, order.StatusCancelled.IsForwardOf(order.StatusNew))
		assert.False(t, order.StatusCompleted.IsForwardOf(order.StatusCancelled))
	})
}
