package cache

import (
	"context"
	"reflect"

	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/channel"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
)

type EventSubscriber[T any] interface {
	OnEvent(ctx context.Context, ev T) error
}

type eventHandler func(ctx context.Context, ev interface{}) error

type EventListener interface {
	Listen(ctx context.Context, channels ...channel.Channel)
	Register(eventType reflect.Type, handler eventHandler)
}

func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var evt T
	listener.Register(reflect.TypeOf(evt), func(ctx context.Context, ev interface{}) error {
		typed, ok := ev.(T)
		if !ok {
			return nil
		}
		return subscriber.OnEvent(ctx, typed)
	})
}
