package main

import (
	"encoding/json"
	"os"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/pulsehome/pulsehome/hub"
	"github.com/pulsehome/pulsehome/observer"
	. "github.com/pulsehome/pulsehome/util"
)

var home = hub.New()

var model Model

// AnnounceDevices publishes the current device snapshot, retained, so late
// MQTT subscribers see the inventory without waiting for an event.
func AnnounceDevices(h *hub.Hub, client MQTT.Client) {
	data, err := json.Marshal(h.ListDevices())
	if err != nil {
		Logger.Error().Msgf("Error marshalling device list: %v", err)
		return
	}
	client.Publish(Config.GetString("topic_prefix")+"/devices", 0, true, data)
}

func main() {
	LogInit("trace")
	SetupConfig()
	RegisterNewConfigListener(func() { LogInit(Config.GetString("log_level")) })
	RegisterNewConfigListener(func() {
		if err := model.BuildModel(); err != nil {
			Logger.Error().Msgf("Error building model: %v", err)
			return
		}
		model.RegisterDevices(home)
	})
	RegisterMQTTConnectHook("announce", func(client MQTT.Client) {
		AnnounceDevices(home, client)
	})
	RegisterNewConfigListener(func() {
		if Config.GetBool("mqtt_enabled") {
			MqttInit()
		}
	})
	OnNewConfig()

	home.RegisterObserver(observer.NewDisplay(os.Stdout))
	eventLog, err := observer.NewFileLogger(Config.GetString("event_log_file"))
	if err != nil {
		Logger.Error().Msgf("Error opening event log: %v", err)
	} else {
		home.RegisterObserver(eventLog)
		defer func() {
			if err := eventLog.Close(); err != nil {
				Logger.Warn().Msgf("Error closing event log: %v", err)
			}
		}()
	}
	home.RegisterObserver(&WSObserver{ws: wsHub})
	home.RegisterObserver(observer.NewMQTTPublisher(nil, Config.GetString("topic_prefix")))

	monitor := NewMonitorServer()
	monitor.AddHandler("/devices", APIDevices)
	monitor.AddHandler("/events/recent", APIRecentEvents)
	monitor.AddHandler("/ws", ServeWebSocket)
	if err := monitor.Start(); err != nil {
		Logger.Error().Msgf("Error starting monitor server: %v", err)
	}
	RegisterNewConfigListener(func() { monitor.Restart() })

	NewCLI(home, os.Stdout).Run(os.Stdin)
}
