package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("AllowedPaths", func(t *testing.T) {
		assert.NoError(t, CanTransition(StatusPending, StatusCompleted))
		assert.NoError(t, CanTransition(StatusCompleted, StatusPaid))
		assert.NoError(t, CanTransition(StatusPending, StatusDeny))
	})

	t.Run("NoSkippingToPaid", func(t *testing.T) {
		err := CanTransition(StatusPending, StatusPaid)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("NoWayBack", func(t *testing.T) {
		assert.ErrorIs(t, CanTransition(StatusCompleted, StatusPending), ErrInvalidTransition)
		assert.ErrorIs(t, CanTransition(StatusPaid, StatusPending), ErrInvalidTransition)
		assert.ErrorIs(t, CanTransition(StatusPaid, StatusCompleted), ErrInvalidTransition)
	})

	t.Run("TerminalStatuses", func(t *testing.T) {
		assert.Empty(t, NextStatuses(StatusPaid))
		assert.Empty(t, NextStatuses(StatusDeny))

		err := CanTransition(StatusDeny, StatusPending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "terminal")
	})

	t.Run("SelfTransition", func(t *testing.T) {
		assert.ErrorIs(t, CanTransition(StatusPending, StatusPending), ErrInvalidTransition)
	})
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusDeny))
	assert.False(t, ValidStatus(Status("shipped")))
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeDineIn))
	assert.True(t, ValidType(TypeTakeAway))
	assert.True(t, ValidType(TypeDelivery))
	assert.False(t, ValidType(Type("drive-through")))
}
