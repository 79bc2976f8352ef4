package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/channel"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	received []event.PluginToggledEvent
}

func (s *recordingSubscriber) OnEvent(_ context.Context, ev event.PluginToggledEvent) error {
	s.received = append(s.received, ev)
	return nil
}

func envelope(t *testing.T, ev event.Event) string {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	msg, err := json.Marshal(RedisMessage{Type: ev.Type(), Event: b})
	require.NoError(t, err)
	return string(msg)
}

func TestRedisEventListener_DispatchesToTypedSubscriber(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	listener := NewRedisEventListener(logrus.New(), NewClientFromRedis(rdb), event.Registry)
	sub := &recordingSubscriber{}
	RegisterEventSubscriber[event.PluginToggledEvent](listener, sub)

	l, ok := listener.(*redisEventListener)
	require.True(t, ok)

	l.handleMessage(context.Background(), envelope(t, event.PluginToggledEvent{Origin: "a", Code: "Coupon", Enabled: true}))
	l.handleMessage(context.Background(), envelope(t, event.InvalidateAllCacheEvent{Origin: "a"}))
	l.handleMessage(context.Background(), `{"type":"Unknown","event":{}}`)
	l.handleMessage(context.Background(), `not json`)

	require.Len(t, sub.received, 1)
	assert.Equal(t, "Coupon", sub.received[0].Code)
	assert.True(t, sub.received[0].Enabled)
}

func TestRedisEventPublisher_PublishesEnvelope(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	publisher := NewRedisEventPublisher(NewClientFromRedis(rdb), channel.InstallEventsChannel)

	ev := event.InvalidateAllCacheEvent{Origin: "node-a"}
	mock.ExpectPublish(string(channel.InstallEventsChannel), []byte(envelope(t, ev))).SetVal(1)

	require.NoError(t, publisher.Publish(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}
