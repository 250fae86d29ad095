package service

import "errors"

// Sentinel errors surfaced to callers on single-item operations.
// Batch operations collect the equivalent condition as a per-row error string
// instead of failing wholesale.
var (
	ErrItemNotFound      = errors.New("Item not found")
	ErrDuplicateItem     = errors.New("An item with this name already exists in the inventory")
	ErrInsufficientStock = errors.New("Not enough stock")
)
