package observer

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pulsehome/pulsehome/hub"
	"github.com/pulsehome/pulsehome/util"
)

// FileLogger appends one formatted line per event to an append-only log
// file. Lines are buffered; the external caller is responsible for calling
// Flush (or Close) at session end. Sink faults never reach the hub.
type FileLogger struct {
	file *os.File
	w    *bufio.Writer
}

func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening event log %q: %w", path, err)
	}
	return &FileLogger{file: f, w: bufio.NewWriter(f)}, nil
}

func (l *FileLogger) Update(event hub.Event) {
	_, err := fmt.Fprintf(l.w, "device '%s' (%s) state: %s\n",
		event.DeviceName, event.DeviceKind, event.Payload)
	if err != nil {
		util.Logger.Warn().Msgf("event log write failed: %v", err)
	}
}

// Flush forces buffered lines out to the file.
func (l *FileLogger) Flush() error {
	return l.w.Flush()
}

func (l *FileLogger) Close() error {
	if err := l.w.Flush(); err != nil {
		util.Logger.Warn().Msgf("event log flush on close failed: %v", err)
	}
	return l.file.Close()
}
