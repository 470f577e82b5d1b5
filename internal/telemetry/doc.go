// Package telemetry turns raw MQTT sensor traffic into ordered observations.
//
// OnMessage runs on paho's delivery goroutines: it validates the topic and
// payload, then enqueues the reading on a bounded channel and returns
// immediately. A single consumer goroutine (Run) drains the queue and hands
// each reading to the coordinator, so rule evaluation and persistence see
// readings one at a time, in arrival order.
//
// Backpressure is drop-oldest-arriving: when the queue is full the new
// reading is dropped with a warning rather than blocking the MQTT client.
package telemetry
