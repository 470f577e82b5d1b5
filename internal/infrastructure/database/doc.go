// Package database manages the SQLite connection and schema migrations.
//
// SQLite is used as the single durable store for HavenGate: device state,
// sensor history, access credentials, and API users. The pool is capped at
// one open connection because SQLite allows a single writer; WAL mode keeps
// readers from blocking on writes.
//
// # Migrations
//
// Schema changes live in the top-level migrations/ directory as paired
// YYYYMMDD_HHMMSS_description.up.sql / .down.sql files, embedded into the
// binary via the migrations package. Migrate() is called at startup and is
// idempotent; each migration runs in its own transaction and is recorded
// in the schema_migrations table.
package database
