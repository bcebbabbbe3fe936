package commands_test

import (
	"strings"
	"testing"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("6f1c0c3e-8a57-4a77-9e43-0f8f3c7d1a10", "alice", "pad thai")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "6f1c0c3e-8a57-4a77-9e43-0f8f3c7d1a10", cmd.RestaurantID())
	assert.Equal(t, "alice", cmd.Customer())
	assert.Equal(t, "pad thai", cmd.Details())
}

func TestNewCreateOrderCommand_KeepsNonUUIDRestaurantID(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("not-a-uuid", "alice", "pad thai")

	require.NoError(t, err)
	assert.Equal(t, "not-a-uuid", cmd.RestaurantID())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restaurantId")
	assert.Contains(t, err.Error(), "customer")
	assert.Contains(t, err.Error(), "orderDetails length")
}

func TestNewCreateOrderCommand_DetailsTooLong(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("r", "alice", strings.Repeat("x", 2001))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, commands.CreateOrderCommand{}.Validate())
}
