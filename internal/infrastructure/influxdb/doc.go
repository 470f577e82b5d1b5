// Package influxdb provides an optional time-series mirror for sensor data.
//
// When enabled, every accepted sensor reading is also written to InfluxDB
// for long-term retention and dashboarding. The mirror is strictly
// best-effort: SQLite is the source of truth, writes are batched and
// asynchronous, and mirror failures never block or fail sensor ingest.
//
// Enable via config.yaml:
//
//	influxdb:
//	  enabled: true
//	  url: "http://localhost:8086"
//	  org: "havengate"
//	  bucket: "telemetry"
//
// The token should be supplied via HAVENGATE_INFLUXDB_TOKEN.
package influxdb
