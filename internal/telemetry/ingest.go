package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/havengate/havengate/internal/infrastructure/mqtt"
)

// Observer receives validated readings in arrival order.
// Satisfied by *coordinator.Coordinator.
type Observer interface {
	Observe(ctx context.Context, sensorType string, value float64) error
}

// reading is a validated sensor observation queued for processing.
type reading struct {
	sensorType string
	value      float64
}

// sensorPayload is the wire shape sensors publish: {"value": 42.5}.
// Extra fields are ignored; a missing value is rejected.
type sensorPayload struct {
	Value *float64 `json:"value"`
}

// Ingestor bridges MQTT delivery goroutines to the single-consumer queue.
type Ingestor struct {
	observer Observer
	queue    chan reading
	logger   *slog.Logger
}

// New creates an Ingestor with a bounded queue.
//
// Parameters:
//   - observer: Destination for validated readings
//   - queueSize: Queue capacity; arrivals beyond it are dropped
//   - logger: Structured logger
func New(observer Observer, queueSize int, logger *slog.Logger) *Ingestor {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Ingestor{
		observer: observer,
		queue:    make(chan reading, queueSize),
		logger:   logger,
	}
}

// OnMessage is the MQTT handler for the sensors/# subscription.
//
// Non-sensor and nested topics are ignored silently (the broker may carry
// other traffic under deeper paths). Malformed payloads return an error,
// which the MQTT client logs. Valid readings are enqueued without blocking.
func (i *Ingestor) OnMessage(topic string, payload []byte) error {
	sensorType, ok := mqtt.SensorTypeFromTopic(topic)
	if !ok {
		return nil
	}

	var p sensorPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("parsing reading on %s: %w", topic, err)
	}
	if p.Value == nil {
		return fmt.Errorf("reading on %s has no value field", topic)
	}

	select {
	case i.queue <- reading{sensorType: sensorType, value: *p.Value}:
	default:
		i.logger.Warn("sensor queue full, dropping reading",
			"sensor_type", sensorType,
			"value", *p.Value,
		)
	}

	return nil
}

// Run consumes the queue until ctx is cancelled.
//
// Each reading is handed to the observer synchronously; a slow store
// slows consumption rather than reordering readings. Observer failures
// are logged and the reading is dropped.
func (i *Ingestor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-i.queue:
			if err := i.observer.Observe(ctx, r.sensorType, r.value); err != nil {
				i.logger.Error("processing sensor reading failed",
					"sensor_type", r.sensorType,
					"value", r.value,
					"error", err,
				)
			}
		}
	}
}

// QueueDepth returns the number of readings waiting to be processed.
func (i *Ingestor) QueueDepth() int {
	return len(i.queue)
}
