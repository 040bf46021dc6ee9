package tracker

import "errors"

var (
	// ErrStorage wraps every persistence failure.
	ErrStorage = errors.New("storage failure")

	// ErrTransientFetch wraps chain RPC failures. Polling retries them.
	ErrTransientFetch = errors.New("transient chain fetch failure")

	// ErrAddressNotFound is returned when an address was never tracked.
	ErrAddressNotFound = errors.New("address not found")

	// ErrTransactionNotFound is returned by Chain when a signature has no
	// transaction yet.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSupervisorStopped is returned by operations issued after Stop.
	ErrSupervisorStopped = errors.New("supervisor stopped")
)
