package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")

	// ErrItemNotFound is returned by cart operations when the referenced menu
	// item does not exist in the catalog.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrItemUnavailable is returned when the menu item exists but is switched
	// off.
	ErrItemUnavailable = errors.New("menu item not available")
	// ErrLineNotFound is returned when a cart line id resolves to nothing.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrOwnershipMismatch is returned when a line is addressed by an owner
	// that does not hold it.
	ErrOwnershipMismatch = errors.New("cart line belongs to another owner")
	// ErrStorageUnavailable wraps backend I/O failures so callers can decide
	// whether to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrValidation wraps rejected input.
	ErrValidation = errors.New("invalid input")
)
