package observer

import (
	"fmt"
	"io"

	"github.com/pulsehome/pulsehome/hub"
	"github.com/pulsehome/pulsehome/util"
)

// Display writes one human-readable line per event to an output sink.
// Stateless; write faults are logged and swallowed.
type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (d *Display) Update(event hub.Event) {
	_, err := fmt.Fprintf(d.out, "device '%s' (%s) state: %s\n",
		event.DeviceName, event.DeviceKind, event.Payload)
	if err != nil {
		util.Logger.Warn().Msgf("display observer write failed: %v", err)
	}
}
