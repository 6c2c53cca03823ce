package notification

import (
	"context"
	"sync"
	"time"

	"vehicle-maintenance-backend/internal/logger"
)

const defaultTimeout = 10 * time.Second

// Dispatcher publishes messages in the background. Failures are logged and
// never reported back to the caller.
type Dispatcher struct {
	publisher Publisher
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given publisher
func NewDispatcher(publisher Publisher, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{publisher: publisher, timeout: timeout}
}

// Dispatch queues msg for delivery and returns immediately.
// ctx is only read for log fields; delivery runs on its own deadline.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	if d == nil || d.publisher == nil {
		return
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"notification": msg.Kind,
		"publisher":    d.publisher.Name(),
		"target_user":  msg.UserID.String(),
	})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("notification publisher panicked: %v", r)
			}
		}()

		pctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.publisher.Publish(pctx, msg); err != nil {
			log.Warnf("failed to publish notification: %v", err)
			return
		}
		log.Debug("notification published")
	}()
}

// Wait blocks until every queued message has been handled
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close drains pending messages and closes the publisher
func (d *Dispatcher) Close() error {
	d.wg.Wait()
	return d.publisher.Close()
}
