package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	KeyPrefix      = "installgate:"
	PluginsKey     = KeyPrefix + "plugins"
	PluginTTLName  = "plugin"
	invalidateScan = 100
)

type Client interface {
	RedisClient() *redis.Client
	CreateTTLMap(name string, ttl time.Duration) *TTLMap
	GetTTLMap(name string) *TTLMap

	GetPlugins(ctx context.Context) ([]plugin.Plugin, error)
	SavePlugins(ctx context.Context, plugins []plugin.Plugin, expiration time.Duration) error
	// InvalidateAll drops every key owned by this service. Keys outside
	// KeyPrefix are left alone.
	InvalidateAll(ctx context.Context) error
	ClearAllTTLMaps()
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}

type client struct {
	redisClient *redis.Client
	ttlMaps     sync.Map
}

func NewClient(config Config, logger *logrus.Logger) (Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")

	return NewClientFromRedis(redisClient), nil
}

// NewClientFromRedis wraps an already connected redis client.
func NewClientFromRedis(redisClient *redis.Client) Client {
	return &client{
		redisClient: redisClient,
	}
}

// GetPlugins reads Redis directly. In-process copies live in the plugin
// TTL map, which peers clear through pub/sub.
func (c *client) GetPlugins(ctx context.Context) ([]plugin.Plugin, error) {
	res, err := c.redisClient.Get(ctx, PluginsKey).Result()
	if err != nil {
		return nil, err
	}
	var plugins []plugin.Plugin
	if err := json.Unmarshal([]byte(res), &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

func (c *client) SavePlugins(ctx context.Context, plugins []plugin.Plugin, expiration time.Duration) error {
	b, err := json.Marshal(plugins)
	if err != nil {
		return err
	}
	return c.redisClient.Set(ctx, PluginsKey, string(b), expiration).Err()
}

func (c *client) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.redisClient.Scan(ctx, cursor, KeyPrefix+"*", invalidateScan).Result()
		if err != nil {
			return fmt.Errorf("error scanning keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("error deleting keys: %w", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) CreateTTLMap(name string, ttl time.Duration) *TTLMap {
	ttlMap := NewTTLMap(ttl)
	c.ttlMaps.Store(name, ttlMap)
	return ttlMap
}

func (c *client) GetTTLMap(name string) *TTLMap {
	if value, ok := c.ttlMaps.Load(name); ok {
		ttlMap, err := safeTTLMapCast(value)
		if err != nil {
			return nil
		}
		return ttlMap
	}
	return nil
}

func (c *client) ClearAllTTLMaps() {
	c.ttlMaps.Range(func(key, value interface{}) bool {
		if ttlMap, ok := value.(*TTLMap); ok {
			ttlMap.Clear()
		}
		return true
	})
}

func safeTTLMapCast(value interface{}) (*TTLMap, error) {
	ttlMap, ok := value.(*TTLMap)
	if !ok {
		return nil, fmt.Errorf("invalid type assertion to TTLMap")
	}
	return ttlMap, nil
}
