package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteSensorReading mirrors a single sensor reading to InfluxDB.
//
// The write is non-blocking; data is batched and sent asynchronously.
// If the client is not connected the reading is silently skipped, since
// SQLite already holds the authoritative copy.
//
// Parameters:
//   - sensorType: The sensor type (e.g., "gas", "light")
//   - value: The numeric reading
//   - recordedAt: When the reading was accepted by the gateway
//
// Example:
//
//	client.WriteSensorReading("gas", 512.0, time.Now())
func (c *Client) WriteSensorReading(sensorType string, value float64, recordedAt time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"sensor_readings",
		map[string]string{
			"sensor_type": sensorType,
		},
		map[string]interface{}{
			"value": value,
		},
		recordedAt,
	)

	c.writeAPI.WritePoint(point)
}

// WriteActuatorEvent records an actuator command for auditing.
//
// Parameters:
//   - target: The actuator target (e.g., "door", "light")
//   - state: The commanded state (e.g., "on", "unlock")
func (c *Client) WriteActuatorEvent(target string, state string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"actuator_events",
		map[string]string{
			"target": target,
		},
		map[string]interface{}{
			"state": state,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
