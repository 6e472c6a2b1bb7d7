package menu

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
)
