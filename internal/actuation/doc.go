// Package actuation builds and dispatches actuator commands.
//
// Commands are small JSON payloads published to actuators/{target}.
// Two wire shapes exist, matching what the firmware expects:
//
//   - State commands: {"state":"on"}, {"state":"off"}, {"state":"unlock"}
//   - Door position commands: {"command":"open"}, {"command":"closed"}
//
// The gateway treats actuator transport as fire-and-forget: the
// coordinator persists the new device state first, then publishes, and a
// failed publish is logged but never rolls back the persisted state.
package actuation
