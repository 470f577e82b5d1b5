package coordinator

import "errors"

// Sentinel errors for coordinator operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrAccessDenied is returned when a door access request presents an
	// unregistered tag.
	ErrAccessDenied = errors.New("coordinator: access denied")

	// ErrForbidden is returned when a privileged operation is attempted
	// by a principal without the required role.
	ErrForbidden = errors.New("coordinator: forbidden")

	// ErrStorageUnavailable is returned when the state store fails or
	// times out. The operation did not take effect and may be retried.
	ErrStorageUnavailable = errors.New("coordinator: storage unavailable")
)
