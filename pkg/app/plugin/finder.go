package plugin

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/common"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	infraCache "github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

const listKey = "all"

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=plugin_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	FindByCode(ctx context.Context, code string) (*domainPlugin.Plugin, error)
	List(ctx context.Context) ([]domainPlugin.Plugin, error)
}

type finder struct {
	repo        domainPlugin.Repository
	cache       infraCache.Client
	memoryCache *infraCache.TTLMap
	logger      *logrus.Logger
}

func NewFinder(repo domainPlugin.Repository, c infraCache.Client, logger *logrus.Logger) Finder {
	memoryCache := c.GetTTLMap(infraCache.PluginTTLName)
	if memoryCache == nil {
		memoryCache = c.CreateTTLMap(infraCache.PluginTTLName, common.PluginCacheTTL)
	}
	return &finder{
		repo:        repo,
		cache:       c,
		memoryCache: memoryCache,
		logger:      logger,
	}
}

// FindByCode always reads the database: the toggle endpoint must see the
// current enabled state.
func (f *finder) FindByCode(ctx context.Context, code string) (*domainPlugin.Plugin, error) {
	return f.repo.FindByCode(ctx, code)
}

func (f *finder) List(ctx context.Context) ([]domainPlugin.Plugin, error) {
	if cached, ok := f.memoryCache.Get(listKey); ok {
		if plugins, ok := cached.([]domainPlugin.Plugin); ok {
			return plugins, nil
		}
		f.logger.Error("invalid type assertion for cached plugin list")
	}

	plugins, err := f.cache.GetPlugins(ctx)
	if err == nil {
		f.logger.WithFields(logrus.Fields{
			"count":     len(plugins),
			"fromCache": "redis",
		}).Debug("plugin list found in redis cache")
		f.memoryCache.Set(listKey, plugins)
		return plugins, nil
	}
	f.logger.WithError(err).Debug("failed to get plugin list from redis")

	plugins, err = f.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plugins: %w", err)
	}
	if err := f.cache.SavePlugins(ctx, plugins, common.PluginCacheTTL); err != nil {
		f.logger.WithError(err).Warn("failed to cache plugin list in redis")
	}
	f.memoryCache.Set(listKey, plugins)
	return plugins, nil
}
