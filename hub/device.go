package hub

import "errors"

// ErrUnsupportedCommand is returned by a device handed a command its kind
// does not recognize. The device's state is guaranteed unchanged.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Device is the capability every simulated device kind implements. Apply is
// atomic: either the whole transition happens and an Event is produced, or
// nothing changes and an error is returned.
type Device interface {
	Name() string
	Kind() string
	Apply(cmd Command) (Event, error)
	StateDescription() string
}
