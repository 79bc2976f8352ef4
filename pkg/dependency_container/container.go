package dependency_container

import (
	"fmt"
	"reflect"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/app/cacheutil"
	"github.com/NeuralTrust/InstallGate/pkg/app/maintenance"
	appPlugin "github.com/NeuralTrust/InstallGate/pkg/app/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/NeuralTrust/InstallGate/pkg/config"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	handlers "github.com/NeuralTrust/InstallGate/pkg/handlers/http"
	"github.com/NeuralTrust/InstallGate/pkg/infra/breaker"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/channel"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/InstallGate/pkg/infra/database"
	"github.com/NeuralTrust/InstallGate/pkg/infra/repository"
	"github.com/NeuralTrust/InstallGate/pkg/middleware"
	"github.com/NeuralTrust/InstallGate/pkg/plugins"
	"github.com/NeuralTrust/InstallGate/pkg/plugins/source"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Container struct {
	Origin              string
	Cache               cache.Client
	RedisListener       cache.EventListener
	RedisPublisher      cache.EventPublisher
	PluginRepository    domainPlugin.Repository
	PluginManager       plugins.Manager
	TransactionChecker  transaction.Checker
	MaintenanceService  maintenance.Service
	CacheUtil           cacheutil.CacheUtil
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
}

type ContainerDI struct {
	Cfg            *config.Config
	Logger         *logrus.Logger
	DB             *database.DB
	Fs             afero.Fs
	EventsRegistry map[string]reflect.Type
	EventsChannel  channel.Channel
}

func NewContainer(di ContainerDI) (*Container, error) {
	if di.Fs == nil {
		di.Fs = afero.NewOsFs()
	}
	if di.EventsRegistry == nil {
		di.EventsRegistry = event.Registry
	}
	if di.EventsChannel == "" {
		di.EventsChannel = channel.InstallEventsChannel
	}
	origin := uuid.New().String()

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     di.Cfg.Redis.Host,
		Port:     di.Cfg.Redis.Port,
		Password: di.Cfg.Redis.Password,
		DB:       di.Cfg.Redis.DB,
		TLS:      di.Cfg.Redis.TLS,
	}, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}
	cacheInstance.CreateTTLMap(cache.PluginTTLName, common.PluginCacheTTL)

	redisPublisher := cache.NewRedisEventPublisher(cacheInstance, di.EventsChannel)
	redisListener := cache.NewRedisEventListener(di.Logger, cacheInstance, di.EventsRegistry)

	// repository
	pluginRepository := repository.NewPluginRepository(di.DB.DB)

	pluginManager := plugins.NewManager(
		di.Logger,
		plugins.WithFactory(source.NewFactory(di.Fs, di.Cfg.Install.ProjectDir)),
	)

	// services
	transactionChecker := transaction.NewChecker(
		di.Logger,
		di.Fs,
		di.Cfg.Install.ProjectDir,
		di.Cfg.Install.TransactionFile,
	)
	maintenanceService := maintenance.NewService(
		di.Logger,
		di.Fs,
		di.Cfg.Install.ProjectDir,
		di.Cfg.Install.MaintenanceFile,
	)
	redisBreaker := breaker.New("redis-invalidation", 30*time.Second, 5)
	cacheUtil := cacheutil.NewCacheUtil(di.Logger, cacheInstance, redisPublisher, redisBreaker, origin)
	pluginFinder := appPlugin.NewFinder(pluginRepository, cacheInstance, di.Logger)
	pluginService := appPlugin.NewService(di.Logger, pluginRepository, pluginManager, redisPublisher, origin)

	// subscribers
	invalidateAllSubscriber := subscriber.NewInvalidateAllCacheEventSubscriber(di.Logger, cacheInstance, origin)
	pluginToggledSubscriber := subscriber.NewPluginToggledEventSubscriber(di.Logger, cacheInstance, origin)
	cache.RegisterEventSubscriber[event.InvalidateAllCacheEvent](redisListener, invalidateAllSubscriber)
	cache.RegisterEventSubscriber[event.PluginToggledEvent](redisListener, pluginToggledSubscriber)

	handlerTransport := handlers.HandlerTransport{
		EnablePluginHandler: handlers.NewEnablePluginHandler(
			di.Logger,
			transactionChecker,
			pluginFinder,
			pluginService,
			maintenanceService,
			cacheUtil,
		),
		RedirectAdminHandler: handlers.NewRedirectAdminHandler(
			di.Logger,
			transactionChecker,
			cacheUtil,
			di.Cfg.Server.AdminRoute,
		),
		ListPluginsHandler: handlers.NewListPluginsHandler(di.Logger, transactionChecker, pluginFinder),
		GetVersionHandler:  handlers.NewGetVersionHandler(di.Logger),
	}

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(di.Logger),
		TerminateMiddleware:    middleware.NewTerminateMiddleware(di.Logger),
		CSRFMiddleware:         middleware.NewCSRFMiddleware(di.Logger, di.Cfg.Security),
	}

	return &Container{
		Origin:              origin,
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		RedisPublisher:      redisPublisher,
		PluginRepository:    pluginRepository,
		PluginManager:       pluginManager,
		TransactionChecker:  transactionChecker,
		MaintenanceService:  maintenanceService,
		CacheUtil:           cacheUtil,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}
