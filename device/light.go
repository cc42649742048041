package device

import (
	"fmt"

	"github.com/pulsehome/pulsehome/hub"
)

const KindLight = "Light"

// Light is an on/off switchable device. New lights start off.
type Light struct {
	name string
	on   bool
}

func NewLight(name string) *Light {
	return &Light{name: name}
}

func (l *Light) Name() string { return l.name }

func (l *Light) Kind() string { return KindLight }

func (l *Light) Apply(cmd hub.Command) (hub.Event, error) {
	var eventType hub.EventType
	switch cmd.Type {
	case hub.TurnOn:
		l.on = true
		eventType = hub.TurnedOn
	case hub.TurnOff:
		l.on = false
		eventType = hub.TurnedOff
	default:
		return hub.Event{}, fmt.Errorf("light %q only supports turn_on and turn_off: %w", l.name, hub.ErrUnsupportedCommand)
	}
	return hub.Event{
		DeviceName: l.name,
		DeviceKind: KindLight,
		Type:       eventType,
		Payload:    l.StateDescription(),
	}, nil
}

func (l *Light) StateDescription() string {
	if l.on {
		return "on"
	}
	return "off"
}
