package order_test

import (
	"fmt"
	"testing"

	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowedTransitions = map[order.Status][]order.Status{
	order.Created:         {order.Cancelled, order.OrderAccepted},
	order.OrderAccepted:   {order.Cancelled, order.InProgress},
	order.InProgress:      {order.Cancelled, order.WaitingDelivery},
	order.WaitingDelivery: {order.Cancelled, order.Delivering},
	order.Delivering:      {order.Cancelled, order.Completed},
	order.Completed:       {},
	order.Cancelled:       {},
}

func isListed(from, to order.Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func TestStatus_Values(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, []order.Status{
		order.Created, order.OrderAccepted, order.InProgress, order.WaitingDelivery,
		order.Delivering, order.Completed, order.Cancelled,
	}, order.Statuses())
}

func TestIsAllowed_FullGrid(t *testing.T) {
	candidates := append([]order.Status{order.Unknown, order.Status(99)}, order.Statuses()...)

	for _, from := range candidates {
		for _, to := range candidates {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, isListed(from, to), order.IsAllowed(from, to))
				assert.Equal(t, isListed(from, to), from.CanTransitionTo(to))
			})
		}
	}
}

func TestIsAllowed_SelfTransitionsNeverAllowed(t *testing.T) {
	for _, s := range order.Statuses() {
		assert.False(t, order.IsAllowed(s, s), s.String())
	}
}

func TestIsAllowed_UnknownFailsClosed(t *testing.T) {
	for _, to := range order.Statuses() {
		assert.False(t, order.IsAllowed(order.Unknown, to))
		assert.False(t, order.IsAllowed(order.Status(-3), to))
	}
}

func TestStatus_AllowedTransitions(t *testing.T) {
	for from, expected := range allowedTransitions {
		assert.ElementsMatch(t, expected, from.AllowedTransitions(), from.String())
	}

	got := order.Created.AllowedTransitions()
	got[0] = order.Completed
	assert.False(t, order.IsAllowed(order.Created, order.Completed), "returned slice must not alias the table")

	assert.Empty(t, order.Unknown.AllowedTransitions())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	for _, s := range []order.Status{order.Created, order.OrderAccepted, order.InProgress, order.WaitingDelivery, order.Delivering} {
		assert.False(t, s.IsTerminal(), s.String())
	}
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(8), order.Status(-1)} {
		err := s.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "OrderAccepted", order.OrderAccepted.String())
	assert.Equal(t, "WaitingDelivery", order.WaitingDelivery.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := order.ParseStatus(" inprogress ")
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, parsed)

	for _, in := range []string{"", "Unknown", "Shipped"} {
		_, err = order.ParseStatus(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}
