package mqtt

import (
	"fmt"
	"strings"
)

// Topic prefixes for the HavenGate MQTT namespace.
//
// Sensors publish readings to sensors/{type} and the gateway commands
// actuators on actuators/{target}. The system prefix carries the gateway's
// own online/offline status.
const (
	// TopicPrefixSensors is the base for all inbound sensor topics.
	TopicPrefixSensors = "sensors"

	// TopicPrefixActuators is the base for all outbound actuator topics.
	TopicPrefixActuators = "actuators"

	// TopicPrefixSystem is the base for gateway system topics.
	TopicPrefixSystem = "havengate/system"
)

// Topics provides builders for HavenGate MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	cmdTopic := topics.ActuatorCommand("light")
//	// Returns: "actuators/light"
type Topics struct{}

// AllSensors returns a pattern matching every sensor topic.
//
// Pattern: sensors/#
func (Topics) AllSensors() string {
	return TopicPrefixSensors + "/#"
}

// ActuatorCommand returns the command topic for an actuator target.
//
// Example: actuators/door
func (Topics) ActuatorCommand(target string) string {
	return fmt.Sprintf("%s/%s", TopicPrefixActuators, target)
}

// SystemStatus returns the gateway status topic.
//
// Example: havengate/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// SensorTypeFromTopic extracts the sensor type from a sensors/{type} topic.
//
// Returns the type and true for well-formed sensor topics, or "" and false
// for anything else (including deeper nesting like sensors/a/b).
func SensorTypeFromTopic(topic string) (string, bool) {
	rest, ok := strings.CutPrefix(topic, TopicPrefixSensors+"/")
	if !ok || rest == "" {
		return "", false
	}
	if strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
