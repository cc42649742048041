package hub

// EventType enumerates the closed set of notifications the system emits.
type EventType string

const (
	TurnedOn       EventType = "turned_on"
	TurnedOff      EventType = "turned_off"
	TemperatureSet EventType = "temperature_set"
	Locked         EventType = "locked"
	Unlocked       EventType = "unlocked"
)

// Event records a state change that already happened. Produced exactly once
// per successful command, broadcast to observers, never mutated afterwards.
type Event struct {
	DeviceName string    `json:"device_name"`
	DeviceKind string    `json:"device_kind"`
	Type       EventType `json:"type"`
	Payload    string    `json:"payload,omitempty"`
}
