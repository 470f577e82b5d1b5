package mqtt

import (
	"errors"
	"testing"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// newDisconnectedClient returns a Client that has never connected.
// Useful for exercising validation and connection-state error paths
// without a running broker.
func newDisconnectedClient() *Client {
	return &Client{
		client:        pahomqtt.NewClient(pahomqtt.NewClientOptions()),
		subscriptions: make(map[string]subscription),
	}
}

// =============================================================================
// Topic Builder Tests
// =============================================================================

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"all sensors", topics.AllSensors(), "sensors/#"},
		{"actuator command", topics.ActuatorCommand("door"), "actuators/door"},
		{"system status", topics.SystemStatus(), "havengate/system/status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSensorTypeFromTopic(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		wantType string
		wantOK   bool
	}{
		{"gas sensor", "sensors/gas", "gas", true},
		{"light sensor", "sensors/light", "light", true},
		{"unknown type is still a sensor topic", "sensors/humidity", "humidity", true},
		{"nested topic", "sensors/room/gas", "", false},
		{"wrong prefix", "actuators/door", "", false},
		{"bare prefix", "sensors/", "", false},
		{"no separator", "sensors", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOK := SensorTypeFromTopic(tt.topic)
			if gotOK != tt.wantOK {
				t.Fatalf("SensorTypeFromTopic(%q) ok = %v, want %v", tt.topic, gotOK, tt.wantOK)
			}
			if gotType != tt.wantType {
				t.Errorf("SensorTypeFromTopic(%q) = %q, want %q", tt.topic, gotType, tt.wantType)
			}
		})
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestPublishValidation(t *testing.T) {
	client := newDisconnectedClient()

	tests := []struct {
		name    string
		topic   string
		payload []byte
		qos     byte
		wantErr error
	}{
		{"empty topic", "", []byte("x"), 1, ErrInvalidTopic},
		{"invalid qos", "actuators/light", []byte("x"), 3, ErrInvalidQoS},
		{"oversized payload", "actuators/light", make([]byte, maxPayloadSize+1), 1, ErrPublishFailed},
		{"not connected", "actuators/light", []byte("x"), 1, ErrNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Publish(tt.topic, tt.payload, tt.qos, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubscribeValidation(t *testing.T) {
	client := newDisconnectedClient()
	handler := func(topic string, payload []byte) error { return nil }

	if err := client.Subscribe("", 1, handler); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Subscribe() with empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := client.Subscribe("sensors/#", 3, handler); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("Subscribe() with invalid QoS error = %v, want ErrInvalidQoS", err)
	}
	if err := client.Subscribe("sensors/#", 1, nil); !errors.Is(err, ErrSubscribeFailed) {
		t.Errorf("Subscribe() with nil handler error = %v, want ErrSubscribeFailed", err)
	}
	if err := client.Subscribe("sensors/#", 1, handler); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe() while disconnected error = %v, want ErrNotConnected", err)
	}

	if client.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d after failed subscribes, want 0", client.SubscriptionCount())
	}
}

func TestUnsubscribeValidation(t *testing.T) {
	client := newDisconnectedClient()

	if err := client.Unsubscribe(""); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Unsubscribe() with empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := client.Unsubscribe("sensors/#"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Unsubscribe() while disconnected error = %v, want ErrNotConnected", err)
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on never-connected client error = %v, want nil", err)
	}
}

func TestHasSubscription(t *testing.T) {
	client := newDisconnectedClient()

	if client.HasSubscription("sensors/#") {
		t.Error("HasSubscription() = true for untracked topic")
	}

	client.subscriptions["sensors/#"] = subscription{topic: "sensors/#", qos: 1}
	if !client.HasSubscription("sensors/#") {
		t.Error("HasSubscription() = false for tracked topic")
	}
	if client.SubscriptionCount() != 1 {
		t.Errorf("SubscriptionCount() = %d, want 1", client.SubscriptionCount())
	}
}
