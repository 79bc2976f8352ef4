package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type InvalidateAllCacheEventSubscriber struct {
	logger *logrus.Logger
	cache  infraCache.Client
	origin string
}

func NewInvalidateAllCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
	origin string,
) infraCache.EventSubscriber[event.InvalidateAllCacheEvent] {
	return &InvalidateAllCacheEventSubscriber{
		logger: logger,
		cache:  c,
		origin: origin,
	}
}

func (s InvalidateAllCacheEventSubscriber) OnEvent(_ context.Context, evt event.InvalidateAllCacheEvent) error {
	if evt.Origin == s.origin {
		return nil
	}
	s.logger.WithField("origin", evt.Origin).Debug("clearing memory caches on peer request")
	s.cache.ClearAllTTLMaps()
	return nil
}
