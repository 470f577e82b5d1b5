package store

import "context"

// Store defines the persistence interface for gateway state.
//
// Implementations must be safe for concurrent use. Callers pass a context
// with a deadline; an expired deadline surfaces as a wrapped context error
// which the coordinator maps to a transient storage failure.
type Store interface {
	// GetDeviceState returns the current device state.
	// Returns ErrStateNotFound if the state row is missing.
	GetDeviceState(ctx context.Context) (*DeviceState, error)

	// SetDoorStatus updates only the door field of the device state.
	SetDoorStatus(ctx context.Context, status DoorStatus) error

	// SetLightStatus updates only the light field of the device state.
	SetLightStatus(ctx context.Context, status LightStatus) error

	// AppendReading stores a sensor reading and prunes history beyond the
	// configured per-type retention. The reading's ID and RecordedAt are
	// set by the store.
	AppendReading(ctx context.Context, reading *SensorReading) error

	// ListReadings returns up to limit readings of the given type,
	// newest first. An unknown type yields an empty slice, not an error.
	ListReadings(ctx context.Context, sensorType string, limit int) ([]SensorReading, error)

	// GetCredential looks up a credential by tag ID.
	// Returns ErrCredentialNotFound if no credential matches.
	GetCredential(ctx context.Context, tagID string) (*Credential, error)

	// AddCredential registers a new credential.
	// Returns ErrCredentialExists if the tag ID is already registered.
	AddCredential(ctx context.Context, cred *Credential) error

	// ListCredentials returns all registered credentials, oldest first.
	ListCredentials(ctx context.Context) ([]Credential, error)
}
