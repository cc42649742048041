package device

import (
	"fmt"
	"strconv"

	"github.com/pulsehome/pulsehome/hub"
)

const KindThermostat = "Thermostat"

// Thermostat holds an integer temperature setpoint. Any integer is
// accepted; the numeric domain is the only bound.
type Thermostat struct {
	name        string
	temperature int
}

func NewThermostat(name string, initial int) *Thermostat {
	return &Thermostat{name: name, temperature: initial}
}

func (t *Thermostat) Name() string { return t.name }

func (t *Thermostat) Kind() string { return KindThermostat }

func (t *Thermostat) Apply(cmd hub.Command) (hub.Event, error) {
	if cmd.Type != hub.SetTemperature {
		return hub.Event{}, fmt.Errorf("thermostat %q only supports set_temperature: %w", t.name, hub.ErrUnsupportedCommand)
	}
	t.temperature = cmd.Value
	return hub.Event{
		DeviceName: t.name,
		DeviceKind: KindThermostat,
		Type:       hub.TemperatureSet,
		Payload:    t.StateDescription(),
	}, nil
}

func (t *Thermostat) StateDescription() string {
	return strconv.Itoa(t.temperature)
}
