package plugins

import (
	"context"
	"io"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/infra/pluginiface"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	HookInstall = "install"
	HookEnable  = "enable"
	HookDisable = "disable"
)

// PluginWrapper times every lifecycle hook and logs the ones that fail.
type PluginWrapper struct {
	Plugin pluginiface.Lifecycle
	logger *logrus.Logger
}

func NewPluginWrapper(plugin pluginiface.Lifecycle, logger *logrus.Logger) *PluginWrapper {
	return &PluginWrapper{
		Plugin: plugin,
		logger: logger,
	}
}

func (w *PluginWrapper) Code() string {
	return w.Plugin.Code()
}

func (w *PluginWrapper) Install(ctx context.Context, out io.Writer) error {
	return w.run(HookInstall, func() error { return w.Plugin.Install(ctx, out) })
}

func (w *PluginWrapper) Enable(ctx context.Context, out io.Writer) error {
	return w.run(HookEnable, func() error { return w.Plugin.Enable(ctx, out) })
}

func (w *PluginWrapper) Disable(ctx context.Context, out io.Writer) error {
	return w.run(HookDisable, func() error { return w.Plugin.Disable(ctx, out) })
}

func (w *PluginWrapper) run(hook string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	prometheus.PluginHookLatency.WithLabelValues(w.Plugin.Code(), hook).Observe(float64(elapsed.Milliseconds()))
	if err != nil {
		w.logger.WithError(err).WithFields(logrus.Fields{
			"code":       w.Plugin.Code(),
			"hook":       hook,
			"latency_ms": elapsed.Milliseconds(),
		}).Error("plugin hook failed")
	}
	return err
}
