package actuation

import (
	"encoding/json"

	"github.com/havengate/havengate/internal/store"
)

// Actuator targets.
const (
	TargetLight = "light"
	TargetDoor  = "door"
)

// Command is a single actuator instruction ready for publishing.
type Command struct {
	// Target selects the actuator topic: actuators/{Target}.
	Target string

	// State is the commanded state, kept alongside the encoded payload
	// for audit records.
	State string

	// Payload is the JSON body published to the actuator.
	Payload []byte
}

// statePayload is the {"state":...} wire shape.
type statePayload struct {
	State string `json:"state"`
}

// positionPayload is the {"command":...} wire shape used for door toggles.
type positionPayload struct {
	Command string `json:"command"`
}

// LightCommand builds a light switch command.
//
// Payload: {"state":"on"} or {"state":"off"}
func LightCommand(status store.LightStatus) Command {
	return Command{
		Target:  TargetLight,
		State:   string(status),
		Payload: mustMarshal(statePayload{State: string(status)}),
	}
}

// DoorUnlockCommand builds the door unlock command sent after a
// successful credential check.
//
// Payload: {"state":"unlock"}
func DoorUnlockCommand() Command {
	return Command{
		Target:  TargetDoor,
		State:   "unlock",
		Payload: mustMarshal(statePayload{State: "unlock"}),
	}
}

// DoorToggleCommand builds a door position command.
//
// Payload: {"command":"open"} or {"command":"closed"}
func DoorToggleCommand(status store.DoorStatus) Command {
	return Command{
		Target:  TargetDoor,
		State:   string(status),
		Payload: mustMarshal(positionPayload{Command: string(status)}),
	}
}

// mustMarshal marshals a payload struct. The payload types contain only
// strings, so marshalling cannot fail.
func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
