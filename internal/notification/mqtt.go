package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttConnectTimeout = 10 * time.Second

// MQTTPublisher publishes messages on per-kind MQTT topics
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker
func NewMQTTPublisher(broker, clientID, topic string) (*MQTTPublisher, error) {
	if broker == "" {
		return nil, fmt.Errorf("missing mqtt broker")
	}
	if topic == "" {
		topic = "notifications"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(mqttConnectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect: timed out after %s", mqttConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return &MQTTPublisher{client: client, topic: topic}, nil
}

// Topic returns the topic a message is published on: <base>/<kind>
func (p *MQTTPublisher) Topic(kind Kind) string {
	return p.topic + "/" + string(kind)
}

// Publish sends msg with QoS 1 and waits for the broker ack or ctx expiry
func (p *MQTTPublisher) Publish(ctx context.Context, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	token := p.client.Publish(p.Topic(msg.Kind), 1, false, raw)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Name returns the publisher name
func (p *MQTTPublisher) Name() string { return "mqtt" }

// Close disconnects from the broker
func (p *MQTTPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	p.client.Disconnect(250)
	return nil
}
