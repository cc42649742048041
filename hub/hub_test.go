package hub

import (
	"errors"
	"fmt"
	"testing"
)

type stubDevice struct {
	name  string
	state string
}

func newStubDevice(name string) *stubDevice {
	return &stubDevice{name: name, state: "off"}
}

func (d *stubDevice) Name() string { return d.name }
func (d *stubDevice) Kind() string { return "Stub" }

func (d *stubDevice) Apply(cmd Command) (Event, error) {
	var eventType EventType
	switch cmd.Type {
	case TurnOn:
		d.state = "on"
		eventType = TurnedOn
	case TurnOff:
		d.state = "off"
		eventType = TurnedOff
	default:
		return Event{}, fmt.Errorf("stub %q: %w", d.name, ErrUnsupportedCommand)
	}
	return Event{DeviceName: d.name, DeviceKind: "Stub", Type: eventType, Payload: d.state}, nil
}

func (d *stubDevice) StateDescription() string { return d.state }

type recordingObserver struct {
	id     string
	record *[]string
}

func (o *recordingObserver) Update(e Event) {
	*o.record = append(*o.record, fmt.Sprintf("%s:%s:%s", o.id, e.DeviceName, e.Type))
}

func TestHub_ExecuteSuccess(t *testing.T) {
	h := New()
	if err := h.AddDevice(newStubDevice("Lamp")); err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	var record []string
	h.RegisterObserver(&recordingObserver{id: "o1", record: &record})

	event, err := h.Execute("Lamp", NewCommand(TurnOn))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if event.DeviceName != "Lamp" || event.DeviceKind != "Stub" {
		t.Errorf("Event identity = %s/%s, expected Lamp/Stub", event.DeviceName, event.DeviceKind)
	}
	if event.Type != TurnedOn || event.Payload != "on" {
		t.Errorf("Event = %s/%s, expected turned_on/on", event.Type, event.Payload)
	}
	if len(record) != 1 || record[0] != "o1:Lamp:turned_on" {
		t.Errorf("observer record = %v, expected one turned_on notification", record)
	}
}

func TestHub_ExecuteDeviceNotFound(t *testing.T) {
	h := New()
	var record []string
	h.RegisterObserver(&recordingObserver{id: "o1", record: &record})

	_, err := h.Execute("NonExistent", NewCommand(TurnOn))
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Execute error = %v, expected ErrDeviceNotFound", err)
	}
	if len(record) != 0 {
		t.Errorf("observers notified on lookup failure: %v", record)
	}
}

func TestHub_ExecuteDeviceFailureNotifiesNobody(t *testing.T) {
	h := New()
	d := newStubDevice("Lamp")
	if err := h.AddDevice(d); err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	var record []string
	h.RegisterObserver(&recordingObserver{id: "o1", record: &record})

	_, err := h.Execute("Lamp", NewCommand(Lock))
	if !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("Execute error = %v, expected ErrUnsupportedCommand", err)
	}
	if d.StateDescription() != "off" {
		t.Errorf("device state = %s, expected unchanged off", d.StateDescription())
	}
	if len(record) != 0 {
		t.Errorf("observers notified on device failure: %v", record)
	}
}

func TestHub_AddDeviceDuplicateName(t *testing.T) {
	h := New()
	original := newStubDevice("Lamp")
	if err := h.AddDevice(original); err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	if _, err := h.Execute("Lamp", NewCommand(TurnOn)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	err := h.AddDevice(newStubDevice("Lamp"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("AddDevice error = %v, expected ErrDuplicateName", err)
	}

	infos := h.ListDevices()
	if len(infos) != 1 {
		t.Fatalf("ListDevices returned %d devices, expected 1", len(infos))
	}
	if infos[0].State != "on" {
		t.Errorf("original device replaced: state = %s, expected on", infos[0].State)
	}
}

func TestHub_ObserverNotificationOrder(t *testing.T) {
	h := New()
	if err := h.AddDevice(newStubDevice("Lamp")); err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	var record []string
	h.RegisterObserver(&recordingObserver{id: "o1", record: &record})
	h.RegisterObserver(&recordingObserver{id: "o2", record: &record})
	h.RegisterObserver(&recordingObserver{id: "o3", record: &record})

	if _, err := h.Execute("Lamp", NewCommand(TurnOn)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	expected := []string{"o1:Lamp:turned_on", "o2:Lamp:turned_on", "o3:Lamp:turned_on"}
	if len(record) != len(expected) {
		t.Fatalf("got %d notifications, expected %d", len(record), len(expected))
	}
	for i := range expected {
		if record[i] != expected[i] {
			t.Errorf("notification %d = %s, expected %s", i, record[i], expected[i])
		}
	}
}

func TestHub_ListDevicesRegistrationOrder(t *testing.T) {
	h := New()
	names := []string{"Lamp", "Porch", "Attic"}
	for _, name := range names {
		if err := h.AddDevice(newStubDevice(name)); err != nil {
			t.Fatalf("AddDevice(%s) failed: %v", name, err)
		}
	}
	if _, err := h.Execute("Porch", NewCommand(TurnOn)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	infos := h.ListDevices()
	if len(infos) != len(names) {
		t.Fatalf("ListDevices returned %d devices, expected %d", len(infos), len(names))
	}
	for i, name := range names {
		if infos[i].Name != name {
			t.Errorf("ListDevices[%d] = %s, expected %s", i, infos[i].Name, name)
		}
	}
	if infos[1].State != "on" {
		t.Errorf("Porch state = %s, expected live read on", infos[1].State)
	}
}

func TestHub_CaseSensitiveNames(t *testing.T) {
	h := New()
	if err := h.AddDevice(newStubDevice("Lamp")); err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	if err := h.AddDevice(newStubDevice("lamp")); err != nil {
		t.Errorf("names differing in case rejected: %v", err)
	}
	if _, err := h.Execute("LAMP", NewCommand(TurnOn)); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Execute error = %v, expected ErrDeviceNotFound for wrong case", err)
	}
}
