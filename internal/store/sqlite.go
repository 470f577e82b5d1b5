package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLiteStore implements Store using SQLite.
//
// The zero value is not usable; construct with NewSQLiteStore.
type SQLiteStore struct {
	db        *sql.DB
	retention int
}

// NewSQLiteStore creates a SQLite-backed store.
//
// Parameters:
//   - db: An open database with migrations applied
//   - retention: Maximum readings kept per sensor type (minimum 1)
func NewSQLiteStore(db *sql.DB, retention int) *SQLiteStore {
	if retention < 1 {
		retention = 1
	}
	return &SQLiteStore{db: db, retention: retention}
}

// GetDeviceState returns the current device state.
func (s *SQLiteStore) GetDeviceState(ctx context.Context) (*DeviceState, error) {
	var state DeviceState
	var door, light, updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT door_status, light_status, updated_at FROM device_state WHERE id = 1",
	).Scan(&door, &light, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("reading device state: %w", err)
	}

	state.DoorStatus = DoorStatus(door)
	state.LightStatus = LightStatus(light)
	state.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &state, nil
}

// SetDoorStatus updates only the door field of the device state.
// Per-field updates mean a concurrent light update can never clobber
// the door position, and vice versa.
func (s *SQLiteStore) SetDoorStatus(ctx context.Context, status DoorStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid door status %q", status)
	}
	return s.setStateField(ctx,
		"UPDATE device_state SET door_status = ?, updated_at = ? WHERE id = 1",
		string(status))
}

// SetLightStatus updates only the light field of the device state.
func (s *SQLiteStore) SetLightStatus(ctx context.Context, status LightStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid light status %q", status)
	}
	return s.setStateField(ctx,
		"UPDATE device_state SET light_status = ?, updated_at = ? WHERE id = 1",
		string(status))
}

// setStateField runs a single-field device state update.
func (s *SQLiteStore) setStateField(ctx context.Context, query, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx, query, value, now)
	if err != nil {
		return fmt.Errorf("writing device state: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrStateNotFound
	}
	return nil
}

// AppendReading stores a reading and prunes older history past retention.
// Insert and prune run in one transaction so history never exceeds the
// retention count, even across a crash.
func (s *SQLiteStore) AppendReading(ctx context.Context, reading *SensorReading) error {
	if reading.SensorType == "" {
		return fmt.Errorf("%w: sensor type is empty", ErrInvalidReading)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	reading.RecordedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	result, err := tx.ExecContext(ctx,
		"INSERT INTO sensor_readings (sensor_type, value, recorded_at) VALUES (?, ?, ?)",
		reading.SensorType, reading.Value, now,
	)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}

	reading.ID, _ = result.LastInsertId() //nolint:errcheck // always succeeds on SQLite

	_, err = tx.ExecContext(ctx,
		`DELETE FROM sensor_readings
		 WHERE sensor_type = ?
		   AND id NOT IN (
		     SELECT id FROM sensor_readings
		     WHERE sensor_type = ?
		     ORDER BY id DESC
		     LIMIT ?
		   )`,
		reading.SensorType, reading.SensorType, s.retention,
	)
	if err != nil {
		return fmt.Errorf("pruning readings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reading: %w", err)
	}
	return nil
}

// ListReadings returns up to limit readings of the given type, newest first.
func (s *SQLiteStore) ListReadings(ctx context.Context, sensorType string, limit int) ([]SensorReading, error) {
	if limit < 1 {
		return []SensorReading{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sensor_type, value, recorded_at FROM sensor_readings
		 WHERE sensor_type = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sensorType, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing readings: %w", err)
	}
	defer rows.Close()

	readings := []SensorReading{}
	for rows.Next() {
		var r SensorReading
		var recordedAt string
		if err := rows.Scan(&r.ID, &r.SensorType, &r.Value, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt) //nolint:errcheck // format is controlled
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}

	return readings, nil
}

// GetCredential looks up a credential by tag ID.
func (s *SQLiteStore) GetCredential(ctx context.Context, tagID string) (*Credential, error) {
	var cred Credential
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT tag_id, owner_id, created_at FROM credentials WHERE tag_id = ?",
		tagID,
	).Scan(&cred.TagID, &cred.OwnerID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("reading credential: %w", err)
	}

	cred.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	return &cred, nil
}

// AddCredential registers a new credential.
func (s *SQLiteStore) AddCredential(ctx context.Context, cred *Credential) error {
	now := time.Now().UTC().Format(time.RFC3339)
	cred.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO credentials (tag_id, owner_id, created_at) VALUES (?, ?, ?)",
		cred.TagID, cred.OwnerID, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCredentialExists
		}
		return fmt.Errorf("creating credential: %w", err)
	}
	return nil
}

// ListCredentials returns all registered credentials, oldest first.
func (s *SQLiteStore) ListCredentials(ctx context.Context) ([]Credential, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT tag_id, owner_id, created_at FROM credentials ORDER BY created_at ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}
	defer rows.Close()

	creds := []Credential{}
	for rows.Next() {
		var c Credential
		var createdAt string
		if err := rows.Scan(&c.TagID, &c.OwnerID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credentials: %w", err)
	}

	return creds, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
