package observer

import (
	"encoding/json"
	"fmt"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/pulsehome/pulsehome/hub"
	"github.com/pulsehome/pulsehome/util"
)

// MQTTPublisher publishes each event as JSON to <prefix>/<device name>/event.
// Publishing is fire-and-forget: broker latency and failures are invisible
// to the hub, delivery problems are only logged.
type MQTTPublisher struct {
	client MQTT.Client
	prefix string
}

// NewMQTTPublisher builds a publisher bound to client. A nil client means
// the shared util.Client, resolved at publish time, so the publisher can be
// registered before the first broker connection exists.
func NewMQTTPublisher(client MQTT.Client, prefix string) *MQTTPublisher {
	return &MQTTPublisher{client: client, prefix: prefix}
}

func (p *MQTTPublisher) Update(event hub.Event) {
	client := p.client
	if client == nil {
		client = util.Client
	}
	if client == nil {
		// broker not configured yet, nothing to deliver to
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		util.Logger.Error().Msgf("Error marshalling event: %v", err)
		return
	}
	topic := fmt.Sprintf("%s/%s/event", p.prefix, event.DeviceName)
	token := client.Publish(topic, 0, false, data)
	go func() {
		if token.Wait() && token.Error() != nil {
			util.Logger.Warn().Msgf("Error publishing event to %v: %v", topic, token.Error())
		}
	}()
}
