package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pulsehome/pulsehome/device"
	"github.com/pulsehome/pulsehome/hub"
	. "github.com/pulsehome/pulsehome/util"
)

// Model is the configured device inventory, unmarshalled from the "model"
// config key and re-read on every config change.
type Model struct {
	Devices []DeviceSpec `mapstructure:"devices"`
}

type DeviceSpec struct {
	Name         string `mapstructure:"name"`
	Kind         string `mapstructure:"kind"`
	Initial_temp int    `mapstructure:"initial_temp"`
}

func (m *Model) BuildModel() error {
	err := Config.UnmarshalKey("model", m)
	if err != nil {
		Logger.Error().Msgf("error unmarshaling model: %v", err)
		return fmt.Errorf("error")
	}
	return nil
}

// NewDevice builds a device from a config entry.
func NewDevice(spec DeviceSpec) (hub.Device, error) {
	switch strings.ToLower(spec.Kind) {
	case "light":
		return device.NewLight(spec.Name), nil
	case "thermostat":
		return device.NewThermostat(spec.Name, spec.Initial_temp), nil
	case "doorlock":
		return device.NewDoorLock(spec.Name), nil
	default:
		return nil, fmt.Errorf("unknown device kind %q", spec.Kind)
	}
}

// RegisterDevices adds every configured device to the hub. Devices already
// registered are left alone so a config reload never resets live state;
// there is no remove operation.
func (m Model) RegisterDevices(h *hub.Hub) {
	for _, spec := range m.Devices {
		d, err := NewDevice(spec)
		if err != nil {
			Logger.Error().Msgf("skipping configured device %q: %v", spec.Name, err)
			continue
		}
		if err := h.AddDevice(d); err != nil {
			if errors.Is(err, hub.ErrDuplicateName) {
				Logger.Debug().Msgf("device %q already registered", spec.Name)
			} else {
				Logger.Error().Msgf("error registering device %q: %v", spec.Name, err)
			}
		}
	}
}
