package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed identifiers are resolved before the collection is touched, so
// these run without a live database.

func TestRepository_GetByID_MalformedID(t *testing.T) {
	r := &repository{}

	o, err := r.GetByID(context.Background(), "not-a-hex-id")

	assert.NoError(t, err)
	assert.Nil(t, o)
}

func TestRepository_UpdateStatus_MalformedID(t *testing.T) {
	r := &repository{}

	_, err := r.UpdateStatus(context.Background(), "not-a-hex-id", StatusCompleted)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRepository_Delete_MalformedID(t *testing.T) {
	r := &repository{}

	_, err := r.Delete(context.Background(), "not-a-hex-id")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
