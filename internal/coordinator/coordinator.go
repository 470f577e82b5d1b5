package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/havengate/havengate/internal/actuation"
	"github.com/havengate/havengate/internal/auth"
	"github.com/havengate/havengate/internal/store"
)

// Rule thresholds. Fixed by the sensor firmware's calibration, not config.
const (
	// GasAlertThreshold triggers a gas alert for readings strictly above it.
	GasAlertThreshold = 500.0

	// LightOnThreshold turns the light on for readings strictly below it.
	LightOnThreshold = 100.0
)

// Sensor types with attached rules. Other types are stored but carry no rule.
const (
	SensorGas   = "gas"
	SensorLight = "light"
)

// AlertChannel is the websocket channel gas alerts are broadcast on.
const AlertChannel = "alert"

// Alert is the payload broadcast to websocket subscribers.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// gasAlertMessage is the human-readable text for gas alerts.
const gasAlertMessage = "High gas levels detected!"

// Principal identifies the authenticated caller of a privileged operation.
type Principal struct {
	UserID string
	Role   auth.Role
}

// CommandGateway publishes actuator commands. Satisfied by *actuation.Gateway.
type CommandGateway interface {
	Publish(cmd actuation.Command) error
}

// Broadcaster pushes payloads to websocket subscribers. Satisfied by *api.Hub.
type Broadcaster interface {
	Broadcast(channel string, payload any)
}

// Mirror receives a best-effort copy of each accepted reading and each
// delivered actuator command. Satisfied by *influxdb.Client. Optional.
type Mirror interface {
	WriteSensorReading(sensorType string, value float64, recordedAt time.Time)
	WriteActuatorEvent(target string, state string)
}

// Coordinator connects sensor ingest, the state store, actuators, and the
// alert channel. All methods are safe for concurrent use.
type Coordinator struct {
	store   store.Store
	gateway CommandGateway
	hub     Broadcaster
	mirror  Mirror
	logger  *slog.Logger

	storageTimeout time.Duration

	// Per-field mutexes serialise read-modify-write on each actuator.
	// The store updates each field independently, so door and light
	// mutations never contend with each other.
	doorMu  sync.Mutex
	lightMu sync.Mutex
}

// New creates a Coordinator.
//
// Parameters:
//   - st: Persistent state store
//   - gateway: Actuator command publisher
//   - hub: Websocket broadcaster for alerts
//   - logger: Structured logger
//   - storageTimeout: Deadline applied to each store call
func New(st store.Store, gateway CommandGateway, hub Broadcaster, logger *slog.Logger, storageTimeout time.Duration) *Coordinator {
	return &Coordinator{
		store:          st,
		gateway:        gateway,
		hub:            hub,
		logger:         logger,
		storageTimeout: storageTimeout,
	}
}

// SetMirror attaches an optional time-series mirror for readings.
// Must be called before the coordinator starts receiving traffic.
func (c *Coordinator) SetMirror(m Mirror) {
	c.mirror = m
}

// Observe processes one accepted sensor reading: persist, mirror, then
// apply the type's rule.
//
// A storage failure fails the call before any rule runs; the reading is
// dropped rather than acted on unpersisted. Rule side effects (alert
// broadcast, light command) never fail the call.
func (c *Coordinator) Observe(ctx context.Context, sensorType string, value float64) error {
	reading := &store.SensorReading{SensorType: sensorType, Value: value}

	if err := c.appendReading(ctx, reading); err != nil {
		return err
	}

	if c.mirror != nil {
		c.mirror.WriteSensorReading(sensorType, value, reading.RecordedAt)
	}

	switch sensorType {
	case SensorGas:
		c.applyGasRule(value)
	case SensorLight:
		return c.applyLightRule(ctx, value)
	}

	return nil
}

// applyGasRule broadcasts an advisory alert for dangerous gas readings.
func (c *Coordinator) applyGasRule(value float64) {
	if value <= GasAlertThreshold {
		return
	}

	c.logger.Warn("gas level above threshold",
		"value", value,
		"threshold", GasAlertThreshold,
	)
	c.hub.Broadcast(AlertChannel, Alert{Type: SensorGas, Message: gasAlertMessage})
}

// applyLightRule commands the light from the ambient reading: on below
// the threshold, off otherwise. Persists the new status before publishing.
func (c *Coordinator) applyLightRule(ctx context.Context, value float64) error {
	status := store.LightOff
	if value < LightOnThreshold {
		status = store.LightOn
	}

	c.lightMu.Lock()
	defer c.lightMu.Unlock()

	if err := c.setLightStatus(ctx, status); err != nil {
		return err
	}

	c.publish(actuation.LightCommand(status))
	return nil
}

// RequestDoorUnlock checks a tag against the credential registry and, if
// registered, commands the door to unlock.
//
// Returns:
//   - *store.Credential: The matched credential (for audit logging)
//   - error: ErrAccessDenied for unknown tags, ErrStorageUnavailable on
//     lookup failure
func (c *Coordinator) RequestDoorUnlock(ctx context.Context, tagID string) (*store.Credential, error) {
	if tagID == "" {
		return nil, ErrAccessDenied
	}

	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	cred, err := c.store.GetCredential(storeCtx, tagID)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			c.logger.Warn("door access denied", "tag_id", tagID)
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	c.logger.Info("door access granted",
		"tag_id", cred.TagID,
		"owner", cred.OwnerID,
	)
	c.publish(actuation.DoorUnlockCommand())

	return cred, nil
}

// ToggleDoor flips the door between open and closed.
//
// The read-modify-write runs under the door mutex, so two concurrent
// toggles produce two flips, never a lost update.
func (c *Coordinator) ToggleDoor(ctx context.Context) (store.DoorStatus, error) {
	c.doorMu.Lock()
	defer c.doorMu.Unlock()

	state, err := c.deviceState(ctx)
	if err != nil {
		return "", err
	}

	next := store.DoorOpen
	if state.DoorStatus == store.DoorOpen {
		next = store.DoorClosed
	}

	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()
	if err := c.store.SetDoorStatus(storeCtx, next); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	c.publish(actuation.DoorToggleCommand(next))
	return next, nil
}

// ToggleLight flips the light between on and off.
func (c *Coordinator) ToggleLight(ctx context.Context) (store.LightStatus, error) {
	c.lightMu.Lock()
	defer c.lightMu.Unlock()

	state, err := c.deviceState(ctx)
	if err != nil {
		return "", err
	}

	next := store.LightOn
	if state.LightStatus == store.LightOn {
		next = store.LightOff
	}

	if err := c.setLightStatus(ctx, next); err != nil {
		return "", err
	}

	c.publish(actuation.LightCommand(next))
	return next, nil
}

// DeviceState returns the current persisted actuator state.
func (c *Coordinator) DeviceState(ctx context.Context) (*store.DeviceState, error) {
	return c.deviceState(ctx)
}

// Readings returns up to limit readings of the given type, newest first.
func (c *Coordinator) Readings(ctx context.Context, sensorType string, limit int) ([]store.SensorReading, error) {
	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	readings, err := c.store.ListReadings(storeCtx, sensorType, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return readings, nil
}

// RegisterCredential adds a tag to the door credential registry on behalf
// of an owner. Only admin principals may register credentials; anyone else
// gets ErrForbidden and the credential set is unchanged.
//
// Returns store.ErrCredentialExists unchanged for duplicates so the API
// can map it to a conflict response.
func (c *Coordinator) RegisterCredential(ctx context.Context, tagID, ownerID string, requester Principal) (*store.Credential, error) {
	if requester.Role != auth.RoleAdmin {
		c.logger.Warn("credential registration refused",
			"requester", requester.UserID,
			"role", requester.Role,
		)
		return nil, ErrForbidden
	}

	cred := &store.Credential{TagID: tagID, OwnerID: ownerID}

	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	if err := c.store.AddCredential(storeCtx, cred); err != nil {
		if errors.Is(err, store.ErrCredentialExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	c.logger.Info("credential registered",
		"tag_id", cred.TagID,
		"owner", cred.OwnerID,
		"requester", requester.UserID,
	)
	return cred, nil
}

// Credentials returns all registered door credentials.
func (c *Coordinator) Credentials(ctx context.Context) ([]store.Credential, error) {
	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	creds, err := c.store.ListCredentials(storeCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return creds, nil
}

// appendReading persists a reading with the storage deadline applied.
func (c *Coordinator) appendReading(ctx context.Context, reading *store.SensorReading) error {
	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	if err := c.store.AppendReading(storeCtx, reading); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// deviceState reads the current state with the storage deadline applied.
func (c *Coordinator) deviceState(ctx context.Context) (*store.DeviceState, error) {
	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	state, err := c.store.GetDeviceState(storeCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return state, nil
}

// setLightStatus persists the light status with the storage deadline applied.
// Callers must hold lightMu.
func (c *Coordinator) setLightStatus(ctx context.Context, status store.LightStatus) error {
	storeCtx, cancel := c.storageContext(ctx)
	defer cancel()

	if err := c.store.SetLightStatus(storeCtx, status); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// publish sends an actuator command, logging and swallowing transport
// failures. State is already persisted; the actuator catches up on the
// next command. Delivered commands are mirrored for auditing; failed
// ones are not, so the audit trail only holds commands the broker took.
func (c *Coordinator) publish(cmd actuation.Command) {
	if err := c.gateway.Publish(cmd); err != nil {
		c.logger.Warn("actuator publish failed",
			"target", cmd.Target,
			"error", err,
		)
		return
	}

	if c.mirror != nil {
		c.mirror.WriteActuatorEvent(cmd.Target, cmd.State)
	}
}

// storageContext bounds a store call with the configured timeout.
func (c *Coordinator) storageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.storageTimeout)
}
