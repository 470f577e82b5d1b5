// Package store persists the gateway's durable state in SQLite.
//
// Four concerns live here:
//
//   - Device state: a single row holding the current door and light status.
//     Every actuation persists the new state before any command is published,
//     so a restart always resumes from the last acknowledged state.
//
//   - Sensor history: an append-only log of readings per sensor type, pruned
//     to a configured retention count on each append.
//
//   - Credentials: the registry of tags authorised to unlock the door.
//
//   - Users: API accounts, managed by the auth package against the same
//     database.
//
// All methods take a context.Context; callers bound storage latency with a
// deadline and treat expiry as a transient storage failure.
package store
