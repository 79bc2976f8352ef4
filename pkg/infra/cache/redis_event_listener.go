package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/channel"
	"github.com/sirupsen/logrus"
)

type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	mu       sync.RWMutex
	handlers map[reflect.Type][]eventHandler
	registry map[string]reflect.Type
	backoff  time.Duration
}

func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		handlers: make(map[reflect.Type][]eventHandler),
		registry: registry,
		backoff:  time.Second,
	}
}

func (r *redisEventListener) Register(eventType reflect.Type, handler eventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("redis pubsub listener shutting down")
			return
		default:
		}

		r.listenOnce(ctx, channelNames)

		if ctx.Err() != nil {
			return
		}

		r.logger.WithField("backoff", r.backoff.String()).Warn("redis pubsub disconnected, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.backoff):
		}
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = pubSub.Close()
		case <-stop:
		}
	}()

	for msg := range pubSub.Channel() {
		if ctx.Err() != nil {
			return
		}
		r.handleMessage(ctx, msg.Payload)
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	concreteType, err := r.getEvent(envelope.Type)
	if err != nil {
		r.logger.WithError(err).Error("error getting event type")
		return
	}

	eventPtr := reflect.New(concreteType)
	if err := json.Unmarshal(envelope.Event, eventPtr.Interface()); err != nil {
		r.logger.WithError(err).Error("error unmarshalling event data into concrete type")
		return
	}

	r.mu.RLock()
	handlers := r.handlers[concreteType]
	r.mu.RUnlock()

	concreteEvent := eventPtr.Elem().Interface()
	for _, handler := range handlers {
		if err := handler(ctx, concreteEvent); err != nil {
			r.logger.WithError(err).WithField("event", envelope.Type).Error("error executing subscriber")
		}
	}
}

func (r *redisEventListener) getEvent(eventType string) (reflect.Type, error) {
	concreteType, ok := r.registry[eventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
	return concreteType, nil
}
