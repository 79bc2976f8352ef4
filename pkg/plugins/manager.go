package plugins

import (
	"fmt"
	"sort"
	"sync"

	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/infra/pluginiface"
	"github.com/sirupsen/logrus"
)

type Manager interface {
	RegisterPlugin(plugin pluginiface.Lifecycle) error
	// GetPlugin returns nil when no lifecycle is registered for code. Plugins
	// without a lifecycle are toggled without running hooks.
	GetPlugin(code string) pluginiface.Lifecycle
	// Resolve prefers a registered lifecycle and falls back to the factory.
	// It returns nil when neither yields one.
	Resolve(p *domainPlugin.Plugin) pluginiface.Lifecycle
	Codes() []string
}

// Factory builds a lifecycle for a stored plugin that has none registered
// in process. It may return nil.
type Factory func(p *domainPlugin.Plugin) pluginiface.Lifecycle

type Option func(*manager)

// WithLifecycle registers a lifecycle at construction time.
func WithLifecycle(plugin pluginiface.Lifecycle) Option {
	return func(m *manager) {
		m.pending = append(m.pending, plugin)
	}
}

// WithFactory sets the fallback used by Resolve.
func WithFactory(factory Factory) Option {
	return func(m *manager) {
		m.factory = factory
	}
}

type manager struct {
	mu      sync.RWMutex
	logger  *logrus.Logger
	plugins map[string]pluginiface.Lifecycle
	pending []pluginiface.Lifecycle
	factory Factory
}

func NewManager(logger *logrus.Logger, opts ...Option) Manager {
	m := &manager{
		logger:  logger,
		plugins: make(map[string]pluginiface.Lifecycle),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range m.pending {
		if err := m.RegisterPlugin(p); err != nil {
			m.logger.WithError(err).Error("failed to register plugin lifecycle")
		}
	}
	m.pending = nil
	return m
}

func (m *manager) RegisterPlugin(plugin pluginiface.Lifecycle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	code := plugin.Code()
	if _, exists := m.plugins[code]; exists {
		return fmt.Errorf("plugin %s already registered", code)
	}
	m.plugins[code] = NewPluginWrapper(plugin, m.logger)
	return nil
}

func (m *manager) GetPlugin(code string) pluginiface.Lifecycle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.plugins[code]
}

func (m *manager) Resolve(p *domainPlugin.Plugin) pluginiface.Lifecycle {
	if registered := m.GetPlugin(p.Code); registered != nil {
		return registered
	}
	if m.factory == nil {
		return nil
	}
	built := m.factory(p)
	if built == nil {
		return nil
	}
	return NewPluginWrapper(built, m.logger)
}

func (m *manager) Codes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	codes := make([]string, 0, len(m.plugins))
	for code := range m.plugins {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
