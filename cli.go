package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pulsehome/pulsehome/device"
	"github.com/pulsehome/pulsehome/hub"
)

// CLI is the interactive caller layer: it turns lines of text into
// device-name + command pairs and hands them to the hub. All feedback goes
// to out; errors never end the session.
type CLI struct {
	hub *hub.Hub
	out io.Writer
}

func NewCLI(h *hub.Hub, out io.Writer) *CLI {
	return &CLI{hub: h, out: out}
}

// Run reads commands until "exit" or EOF.
func (c *CLI) Run(in io.Reader) {
	fmt.Fprintln(c.out, "Welcome to the PulseHome CLI. Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(c.out, "Exiting. Goodbye!")
			break
		}
		c.HandleLine(line)
	}
}

func (c *CLI) HandleLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		fmt.Fprintln(c.out, "empty command")
		return
	}
	action := strings.ToLower(fields[0])
	rest := fields[1:]

	switch action {
	case "add":
		c.handleAdd(rest)
	case "turn_on", "turn_off", "lock", "unlock":
		if len(rest) == 0 {
			fmt.Fprintf(c.out, "usage: %s <device_name>\n", action)
			return
		}
		name := strings.Join(rest, " ")
		types := map[string]hub.CommandType{
			"turn_on":  hub.TurnOn,
			"turn_off": hub.TurnOff,
			"lock":     hub.Lock,
			"unlock":   hub.Unlock,
		}
		event, err := c.hub.Execute(name, hub.NewCommand(types[action]))
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "executed %s on '%s', new state: %s\n", action, name, event.Payload)
	case "set_temp":
		if len(rest) < 2 {
			fmt.Fprintln(c.out, "usage: set_temp <device_name> <temperature>")
			return
		}
		value, err := strconv.Atoi(rest[len(rest)-1])
		if err != nil {
			fmt.Fprintf(c.out, "invalid temperature '%s'\n", rest[len(rest)-1])
			return
		}
		name := strings.Join(rest[:len(rest)-1], " ")
		event, err := c.hub.Execute(name, hub.NewSetTemperature(value))
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "set temperature for '%s' to %s\n", name, event.Payload)
	case "list":
		for _, info := range c.hub.ListDevices() {
			fmt.Fprintf(c.out, "%s (%s): %s\n", info.Name, info.Kind, info.State)
		}
	case "help":
		c.printHelp()
	default:
		fmt.Fprintf(c.out, "unknown command '%s', type 'help'\n", action)
	}
}

func (c *CLI) handleAdd(rest []string) {
	if len(rest) < 2 {
		fmt.Fprintln(c.out, "usage: add <device_type> <device_name> [initial_temp]")
		return
	}
	kind := strings.ToLower(rest[0])
	nameFields := rest[1:]

	var d hub.Device
	switch kind {
	case "light":
		d = device.NewLight(strings.Join(nameFields, " "))
	case "doorlock":
		d = device.NewDoorLock(strings.Join(nameFields, " "))
	case "thermostat":
		temp := 22
		// trailing integer is the initial setpoint, not part of the name
		if len(nameFields) > 1 {
			if v, err := strconv.Atoi(nameFields[len(nameFields)-1]); err == nil {
				temp = v
				nameFields = nameFields[:len(nameFields)-1]
			}
		}
		d = device.NewThermostat(strings.Join(nameFields, " "), temp)
	default:
		fmt.Fprintf(c.out, "unknown device type '%s'\n", kind)
		return
	}
	if err := c.hub.AddDevice(d); err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "device '%s' of type '%s' added\n", d.Name(), d.Kind())
}

func (c *CLI) printHelp() {
	fmt.Fprintln(c.out, "Available commands:")
	fmt.Fprintln(c.out, "  add <device_type> <device_name> [initial_temp] - add a device (light | thermostat | doorlock)")
	fmt.Fprintln(c.out, "  turn_on <device_name>          - turn on a light")
	fmt.Fprintln(c.out, "  turn_off <device_name>         - turn off a light")
	fmt.Fprintln(c.out, "  lock <device_name>             - lock a door")
	fmt.Fprintln(c.out, "  unlock <device_name>           - unlock a door")
	fmt.Fprintln(c.out, "  set_temp <device_name> <value> - set thermostat temperature")
	fmt.Fprintln(c.out, "  list                           - list all registered devices")
	fmt.Fprintln(c.out, "  help                           - show this help message")
	fmt.Fprintln(c.out, "  exit                           - exit the CLI")
}
