package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vehicle-maintenance-backend/internal/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []Message
	err      error
	block    bool
	closed   bool
}

func (p *recordingPublisher) Publish(ctx context.Context, msg Message) error {
	if p.block {
		<-ctx.Done()
		return ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *recordingPublisher) Name() string { return "recording" }

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func TestDispatcher(t *testing.T) {
	userID := uuid.New()

	t.Run("delivers message and stamps send time", func(t *testing.T) {
		pub := &recordingPublisher{}
		d := NewDispatcher(pub, time.Second)

		d.Dispatch(context.Background(), Message{Kind: KindWelcome, UserID: userID, Title: "Bem-vindo"})
		d.Wait()

		require.Len(t, pub.messages, 1)
		assert.Equal(t, KindWelcome, pub.messages[0].Kind)
		assert.False(t, pub.messages[0].SentAt.IsZero())
	})

	t.Run("publisher failure does not reach caller", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("gateway down")}
		d := NewDispatcher(pub, time.Second)

		assert.NotPanics(t, func() {
			d.Dispatch(context.Background(), Message{Kind: KindMaintenanceCreated, UserID: userID})
		})
		d.Wait()
		assert.Len(t, pub.messages, 1)
	})

	t.Run("slow publisher is bounded by timeout", func(t *testing.T) {
		pub := &recordingPublisher{block: true}
		d := NewDispatcher(pub, 50*time.Millisecond)

		start := time.Now()
		d.Dispatch(context.Background(), Message{Kind: KindWelcome, UserID: userID})
		assert.Less(t, time.Since(start), 50*time.Millisecond)

		d.Wait()
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("cancelled caller context does not cancel delivery", func(t *testing.T) {
		pub := &recordingPublisher{}
		d := NewDispatcher(pub, time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d.Dispatch(ctx, Message{Kind: KindWelcome, UserID: userID})
		d.Wait()

		assert.Len(t, pub.messages, 1)
	})

	t.Run("nil dispatcher is a no-op", func(t *testing.T) {
		var d *Dispatcher
		assert.NotPanics(t, func() { d.Dispatch(context.Background(), Message{}) })
	})

	t.Run("close drains and closes publisher", func(t *testing.T) {
		pub := &recordingPublisher{}
		d := NewDispatcher(pub, 0)
		d.Dispatch(context.Background(), Message{Kind: KindWelcome, UserID: userID})

		require.NoError(t, d.Close())
		assert.Len(t, pub.messages, 1)
		assert.True(t, pub.closed)
	})
}

func TestLogPublisher(t *testing.T) {
	log, hook := test.NewNullLogger()
	pub := NewLogPublisher(log)

	err := pub.Publish(context.Background(), Message{
		Kind:   KindMaintenanceCreated,
		UserID: uuid.New(),
		Tokens: []string{"secret-device-token"},
		Title:  "Nova manutenção",
		Body:   "Troca de óleo registrada ",
	})

	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Troca de óleo registrada", entry.Message)
	assert.Equal(t, 1, entry.Data["devices"])
	assert.NotContains(t, entry.Data, "tokens")
}

func TestNewPublisher(t *testing.T) {
	cases := []struct {
		driver string
		name   string
	}{
		{"", "none"},
		{"none", "none"},
		{"log", "log"},
	}
	for _, tc := range cases {
		t.Run("driver "+tc.driver, func(t *testing.T) {
			pub, err := NewPublisher(context.Background(), &config.Config{NotificationDriver: tc.driver})
			require.NoError(t, err)
			assert.Equal(t, tc.name, pub.Name())
		})
	}

	t.Run("redis without address", func(t *testing.T) {
		_, err := NewPublisher(context.Background(), &config.Config{NotificationDriver: "redis"})
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewPublisher(context.Background(), &config.Config{NotificationDriver: "sms"})
		assert.Error(t, err)
	})
}
