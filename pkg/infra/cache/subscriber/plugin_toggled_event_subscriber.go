package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type PluginToggledEventSubscriber struct {
	logger      *logrus.Logger
	memoryCache *infraCache.TTLMap
	origin      string
}

func NewPluginToggledEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
	origin string,
) infraCache.EventSubscriber[event.PluginToggledEvent] {
	return &PluginToggledEventSubscriber{
		logger:      logger,
		memoryCache: c.GetTTLMap(infraCache.PluginTTLName),
		origin:      origin,
	}
}

func (s PluginToggledEventSubscriber) OnEvent(_ context.Context, evt event.PluginToggledEvent) error {
	if evt.Origin == s.origin {
		return nil
	}
	s.logger.WithFields(logrus.Fields{
		"code":    evt.Code,
		"enabled": evt.Enabled,
		"origin":  evt.Origin,
	}).Info("plugin state changed on peer")
	if s.memoryCache != nil {
		s.memoryCache.Clear()
	}
	return nil
}
