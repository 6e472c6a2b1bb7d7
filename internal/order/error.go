package order

import "errors"

var (
	ErrValidation        = errors.New("invalid order")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotDeletable = errors.New("cannot delete completed or paid orders")
	ErrInvalidTransition = errors.New("invalid status transition")
)
