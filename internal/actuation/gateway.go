package actuation

import (
	"errors"
	"fmt"

	"github.com/havengate/havengate/internal/infrastructure/mqtt"
)

// ErrInvalidCommand is returned for commands with no target.
var ErrInvalidCommand = errors.New("actuation: command has no target")

// Publisher is the MQTT capability the gateway needs.
// Satisfied by *mqtt.Client.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Gateway publishes actuator commands to the broker.
type Gateway struct {
	pub Publisher
	qos byte
}

// NewGateway creates a command gateway publishing at the given QoS.
func NewGateway(pub Publisher, qos byte) *Gateway {
	return &Gateway{pub: pub, qos: qos}
}

// Publish sends a command to its actuator topic.
//
// Commands are never retained: an actuator coming online should wait for
// the next command rather than replay a stale one.
func (g *Gateway) Publish(cmd Command) error {
	if cmd.Target == "" {
		return ErrInvalidCommand
	}

	topic := mqtt.Topics{}.ActuatorCommand(cmd.Target)
	if err := g.pub.Publish(topic, cmd.Payload, g.qos, false); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}
