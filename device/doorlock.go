package device

import (
	"fmt"

	"github.com/pulsehome/pulsehome/hub"
)

const KindDoorLock = "DoorLock"

// DoorLock is a lockable device. New locks start unlocked.
type DoorLock struct {
	name   string
	locked bool
}

func NewDoorLock(name string) *DoorLock {
	return &DoorLock{name: name}
}

func (d *DoorLock) Name() string { return d.name }

func (d *DoorLock) Kind() string { return KindDoorLock }

func (d *DoorLock) Apply(cmd hub.Command) (hub.Event, error) {
	var eventType hub.EventType
	switch cmd.Type {
	case hub.Lock:
		d.locked = true
		eventType = hub.Locked
	case hub.Unlock:
		d.locked = false
		eventType = hub.Unlocked
	default:
		return hub.Event{}, fmt.Errorf("door lock %q only supports lock and unlock: %w", d.name, hub.ErrUnsupportedCommand)
	}
	return hub.Event{
		DeviceName: d.name,
		DeviceKind: KindDoorLock,
		Type:       eventType,
		Payload:    d.StateDescription(),
	}, nil
}

func (d *DoorLock) StateDescription() string {
	if d.locked {
		return "locked"
	}
	return "unlocked"
}
