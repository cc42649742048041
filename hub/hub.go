package hub

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pulsehome/pulsehome/util"
)

var (
	ErrDuplicateName  = errors.New("duplicate device name")
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceInfo is a read-only snapshot row returned by ListDevices.
type DeviceInfo struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	State string `json:"state"`
}

// Hub mediates between devices and observers. It owns every registered
// device and observer; commands are routed to devices by name and the
// resulting events fanned out to observers in registration order. Devices
// and observers never reference each other.
//
// Commands come from a single caller; the mutex only guards the read-only
// web surface (device snapshots) against that one mutation path.
type Hub struct {
	mu        sync.RWMutex
	devices   map[string]Device
	order     []string
	observers []Observer
}

func New() *Hub {
	return &Hub{devices: make(map[string]Device)}
}

// AddDevice registers a device. Names are compared case-sensitively and
// must be unique for the life of the session.
func (h *Hub) AddDevice(d Device) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.devices[d.Name()]; exists {
		return fmt.Errorf("device %q: %w", d.Name(), ErrDuplicateName)
	}
	h.devices[d.Name()] = d
	h.order = append(h.order, d.Name())
	util.Logger.Debug().Msgf("registered device %q (%s)", d.Name(), d.Kind())
	return nil
}

// RegisterObserver appends an observer to the notification list. Multiple
// observers of the same concrete kind are legal and independent.
func (h *Hub) RegisterObserver(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
	util.Logger.Debug().Msgf("registered observer %T", o)
}

// Execute looks up the device by exact name and applies the command. On
// success every observer is notified synchronously, in registration order,
// before the event is returned to the caller. On failure no observer is
// notified and the device's state is unchanged.
func (h *Hub) Execute(name string, cmd Command) (Event, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.devices[name]
	if !ok {
		return Event{}, fmt.Errorf("device %q: %w", name, ErrDeviceNotFound)
	}
	event, err := d.Apply(cmd)
	if err != nil {
		return Event{}, err
	}
	util.Logger.Debug().Msgf("device %q: %s -> %s", name, cmd.Type, event.Type)
	for _, o := range h.observers {
		o.Update(event)
	}
	return event, nil
}

// ListDevices returns a snapshot of every device in registration order.
// State is read live through each device's own accessor; the hub caches
// nothing.
func (h *Hub) ListDevices() []DeviceInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()
	infos := make([]DeviceInfo, 0, len(h.order))
	for _, name := range h.order {
		d := h.devices[name]
		infos = append(infos, DeviceInfo{Name: d.Name(), Kind: d.Kind(), State: d.StateDescription()})
	}
	return infos
}
