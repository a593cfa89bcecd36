package service

import "errors"

// Sentinel errors for the failure taxonomy. Handlers translate these into
// structured error responses; no operation aborts the process.
var (
	// ErrNotFound means a lookup by id matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock means a dispense would exceed current inventory.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnauthorized means a role-gated operation was attempted without the
	// required role.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorageFailure means a persistence write was refused by the store.
	ErrStorageFailure = errors.New("storage failure")
)
