package cacheutil

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/infra/breaker"
	infraCache "github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=CacheUtil --dir=. --output=./mocks --filename=cache_util_mock.go --case=underscore --with-expecter
type CacheUtil interface {
	// ClearCache drops the shared Redis keys and this instance's memory
	// caches, then asks peers to drop theirs.
	ClearCache(ctx context.Context) error
}

type cacheUtil struct {
	logger    *logrus.Logger
	cache     infraCache.Client
	publisher infraCache.EventPublisher
	breaker   breaker.CircuitBreaker
	origin    string
}

func NewCacheUtil(
	logger *logrus.Logger,
	c infraCache.Client,
	publisher infraCache.EventPublisher,
	cb breaker.CircuitBreaker,
	origin string,
) CacheUtil {
	return &cacheUtil{
		logger:    logger,
		cache:     c,
		publisher: publisher,
		breaker:   cb,
		origin:    origin,
	}
}

func (u *cacheUtil) ClearCache(ctx context.Context) error {
	u.cache.ClearAllTTLMaps()

	if err := u.breaker.Execute(func() error {
		return u.cache.InvalidateAll(ctx)
	}); err != nil {
		return fmt.Errorf("failed to invalidate redis cache: %w", err)
	}
	prometheus.CacheInvalidationTotal.WithLabelValues("local").Inc()

	if err := u.publisher.Publish(ctx, event.InvalidateAllCacheEvent{Origin: u.origin}); err != nil {
		u.logger.WithError(err).Warn("failed to publish cache invalidation event")
	}
	u.logger.Debug("application cache cleared")
	return nil
}
