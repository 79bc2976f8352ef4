package plugin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/domain"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	infraCache "github.com/NeuralTrust/InstallGate/pkg/infra/cache"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/NeuralTrust/InstallGate/pkg/infra/pluginiface"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/InstallGate/pkg/plugins"
	"github.com/sirupsen/logrus"
)

const (
	// ActionLookup labels requests that ended before an action was chosen.
	ActionLookup  = "lookup"
	ActionInstall = "install"
	ActionEnable  = "enable"
	ActionDisable = "disable"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=plugin_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Enable marks the plugin enabled and runs its lifecycle hooks, writing
	// their output to out. On error p is left as it was before the call.
	Enable(ctx context.Context, p *domainPlugin.Plugin, out io.Writer) error
	Disable(ctx context.Context, p *domainPlugin.Plugin, out io.Writer) error
}

type service struct {
	logger    *logrus.Logger
	repo      domainPlugin.Repository
	manager   plugins.Manager
	publisher infraCache.EventPublisher
	origin    string
}

func NewService(
	logger *logrus.Logger,
	repo domainPlugin.Repository,
	manager plugins.Manager,
	publisher infraCache.EventPublisher,
	origin string,
) Service {
	return &service{
		logger:    logger,
		repo:      repo,
		manager:   manager,
		publisher: publisher,
		origin:    origin,
	}
}

func (s *service) Enable(ctx context.Context, p *domainPlugin.Plugin, out io.Writer) error {
	return s.toggle(ctx, p, true, out)
}

func (s *service) Disable(ctx context.Context, p *domainPlugin.Plugin, out io.Writer) error {
	return s.toggle(ctx, p, false, out)
}

func (s *service) toggle(ctx context.Context, p *domainPlugin.Plugin, enable bool, out io.Writer) error {
	action := ActionDisable
	if enable {
		action = ActionEnable
	}
	start := time.Now()
	defer func() {
		prometheus.PluginToggleLatency.WithLabelValues(action).Observe(float64(time.Since(start).Milliseconds()))
	}()

	snapshot := *p
	err := s.repo.Transaction(ctx, func(ctx context.Context, tx domainPlugin.Repository) error {
		firstEnable := enable && !p.Initialized
		p.Initialized = true
		p.Enabled = enable
		if err := tx.Update(ctx, p); err != nil {
			return fmt.Errorf("failed to update plugin %s: %w", p.Code, err)
		}

		lifecycle := s.manager.Resolve(p)
		if lifecycle == nil {
			s.logger.WithField("code", p.Code).Debug("no lifecycle registered, skipping hooks")
			return nil
		}
		if firstEnable {
			if err := lifecycle.Install(ctx, out); err != nil {
				return domain.NewPluginError(p.Code, ActionInstall, err)
			}
		}
		if err := runHook(ctx, lifecycle, enable, out); err != nil {
			return domain.NewPluginError(p.Code, action, err)
		}
		return nil
	})
	if err != nil {
		*p = snapshot
		s.logger.WithError(err).WithFields(logrus.Fields{
			"code":   p.Code,
			"action": action,
		}).Error("plugin toggle failed")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"code":   p.Code,
		"action": action,
	}).Info("plugin toggled")

	ev := event.PluginToggledEvent{Origin: s.origin, Code: p.Code, Enabled: p.Enabled}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.WithError(err).WithField("code", p.Code).Warn("failed to publish plugin toggled event")
	}
	return nil
}

func runHook(ctx context.Context, lifecycle pluginiface.Lifecycle, enable bool, out io.Writer) error {
	if enable {
		return lifecycle.Enable(ctx, out)
	}
	return lifecycle.Disable(ctx, out)
}
