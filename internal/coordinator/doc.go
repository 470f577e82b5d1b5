// Package coordinator implements the gateway's control logic.
//
// It sits between ingest, storage, actuation, and the alert channel:
// sensor readings come in through Observe, API calls come in through the
// toggle/unlock/register methods, and everything flows out as persisted
// state, actuator commands, and websocket alerts.
//
// # Rules
//
// Two fixed rules run on sensor readings:
//
//   - Gas: a reading above 500 broadcasts a gas alert on the websocket
//     channel. The alert is advisory only; no actuator is commanded.
//   - Light: every light reading commands the light, on when the reading
//     is below 100 and off otherwise. The rule is deliberately stateless,
//     so a sensor hovering around the threshold will toggle repeatedly.
//
// # Ordering and Failure
//
// Every state-changing operation persists first, then publishes, then
// broadcasts. A storage failure fails the whole call before anything is
// published. A publish failure after a successful persist is logged and
// swallowed: the stored state is authoritative and the actuator catches
// up on the next command.
//
// Door and light mutations each serialise behind their own mutex, so
// concurrent toggles can never interleave their read-modify-write.
package coordinator
