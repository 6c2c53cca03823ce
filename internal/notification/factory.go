package notification

import (
	"context"
	"fmt"

	"vehicle-maintenance-backend/internal/config"
)

// NewPublisher builds the publisher selected by NOTIFICATION_DRIVER
func NewPublisher(ctx context.Context, cfg *config.Config) (Publisher, error) {
	switch cfg.NotificationDriver {
	case "", "none":
		return NoopPublisher{}, nil
	case "log":
		return NewLogPublisher(nil), nil
	case "redis":
		return NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisChannel)
	case "mqtt":
		return NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic)
	default:
		return nil, fmt.Errorf("unsupported notification driver %q", cfg.NotificationDriver)
	}
}
