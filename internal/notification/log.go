package notification

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes messages to the application log instead of a push gateway
type LogPublisher struct {
	log *logrus.Logger
}

// NewLogPublisher creates a log publisher; nil uses the standard logger
func NewLogPublisher(log *logrus.Logger) *LogPublisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogPublisher{log: log}
}

// Publish logs the message without its device tokens
func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.log.WithFields(logrus.Fields{
		"notification": msg.Kind,
		"target_user":  msg.UserID.String(),
		"devices":      len(msg.Tokens),
		"title":        msg.Title,
	}).Info(strings.TrimSpace(msg.Body))
	return nil
}

// Name returns the publisher name
func (p *LogPublisher) Name() string { return "log" }

// Close is a no-op
func (p *LogPublisher) Close() error { return nil }

// NoopPublisher drops every message
type NoopPublisher struct{}

// Publish discards msg
func (NoopPublisher) Publish(context.Context, Message) error { return nil }

// Name returns the publisher name
func (NoopPublisher) Name() string { return "none" }

// Close is a no-op
func (NoopPublisher) Close() error { return nil }
