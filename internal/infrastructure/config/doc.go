// Package config loads and validates HavenGate configuration.
//
// Configuration comes from three layers, each overriding the last:
// hardcoded defaults, a YAML file, and HAVENGATE_* environment variables.
// Secrets (JWT signing key, MQTT password, InfluxDB token) should be
// supplied via environment variables rather than the YAML file.
package config
