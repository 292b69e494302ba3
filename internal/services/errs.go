package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP statuses with errors.Is; no error here is ever fatal to the
// process.
var (
	// ErrValidation covers malformed or missing input and policy
	// violations, including duplicate registration.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers lookups of unknown emails or products.
	ErrNotFound = errors.New("not found")

	// ErrAuth covers wrong passwords, wrong auth keys, and bad or
	// missing tokens.
	ErrAuth = errors.New("authentication failed")

	// ErrInsufficientStock is returned when a sale requests more units
	// than remain. The stock row is left unmodified.
	ErrInsufficientStock = errors.New("insufficient stock")
)
