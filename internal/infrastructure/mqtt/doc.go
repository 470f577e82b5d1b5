// Package mqtt wraps the Eclipse Paho client for HavenGate's broker traffic.
//
// The gateway is both a subscriber and a publisher on the same broker:
// it consumes sensor readings from sensors/# and emits actuator commands
// on actuators/{target}. A retained status message on havengate/system/status
// plus an LWT lets other services distinguish a crashed gateway from an
// idle one.
//
// # Connection Lifecycle
//
// Connect() retries the initial connection with exponential backoff, then
// hands reconnection over to paho's auto-reconnect. Subscriptions are
// tracked and restored automatically after a reconnect.
//
// # Topic Naming
//
// Always build topics through the Topics helper rather than formatting
// strings inline:
//
//	topics := mqtt.Topics{}
//	client.Subscribe(topics.AllSensors(), 1, handler)
//	client.Publish(topics.ActuatorCommand("door"), payload, 1, false)
package mqtt
