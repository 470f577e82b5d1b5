package store

import "time"

// DoorStatus represents the door's persisted position.
type DoorStatus string

// Valid door statuses.
const (
	DoorOpen   DoorStatus = "open"
	DoorClosed DoorStatus = "closed"
)

// Valid reports whether the status is a recognised door position.
func (s DoorStatus) Valid() bool {
	return s == DoorOpen || s == DoorClosed
}

// LightStatus represents the light's persisted state.
type LightStatus string

// Valid light statuses.
const (
	LightOn  LightStatus = "on"
	LightOff LightStatus = "off"
)

// Valid reports whether the status is a recognised light state.
func (s LightStatus) Valid() bool {
	return s == LightOn || s == LightOff
}

// DeviceState is the gateway's current actuator state.
// Exactly one row exists in the database; it is seeded by the initial
// migration with the door closed and the light off.
type DeviceState struct {
	DoorStatus  DoorStatus  `json:"doorStatus"`
	LightStatus LightStatus `json:"lightStatus"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SensorReading is a single accepted measurement from a sensor.
type SensorReading struct {
	ID         int64     `json:"id"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Credential authorises a physical tag to unlock the door.
// OwnerID references the user the tag was issued to.
type Credential struct {
	TagID     string    `json:"tagId"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
