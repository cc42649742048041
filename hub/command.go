package hub

// CommandType enumerates the closed set of operations a caller may request.
type CommandType string

const (
	TurnOn         CommandType = "turn_on"
	TurnOff        CommandType = "turn_off"
	SetTemperature CommandType = "set_temperature"
	Lock           CommandType = "lock"
	Unlock         CommandType = "unlock"
)

// Command is a request to change a device's state, not yet applied.
// Value carries the target temperature for SetTemperature and is
// ignored by every other command type.
type Command struct {
	Type  CommandType `json:"type"`
	Value int         `json:"value,omitempty"`
}

func NewCommand(t CommandType) Command {
	return Command{Type: t}
}

func NewSetTemperature(value int) Command {
	return Command{Type: SetTemperature, Value: value}
}
