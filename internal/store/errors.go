package store

import "errors"

// Sentinel errors for store operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrStateNotFound is returned when the device state row is missing.
	// This indicates a corrupted or unmigrated database.
	ErrStateNotFound = errors.New("store: device state not found")

	// ErrCredentialNotFound is returned when no credential matches a tag ID.
	ErrCredentialNotFound = errors.New("store: credential not found")

	// ErrCredentialExists is returned when registering a tag ID that is
	// already present.
	ErrCredentialExists = errors.New("store: credential already exists")

	// ErrInvalidReading is returned when appending a malformed reading.
	ErrInvalidReading = errors.New("store: invalid sensor reading")
)
