package http

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/app/cacheutil"
	"github.com/NeuralTrust/InstallGate/pkg/app/maintenance"
	appPlugin "github.com/NeuralTrust/InstallGate/pkg/app/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/domain"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/handlers/http/response"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/bytebufferpool"
)

type enablePluginHandler struct {
	logger      *logrus.Logger
	checker     transaction.Checker
	finder      appPlugin.Finder
	service     appPlugin.Service
	maintenance maintenance.Service
	cacheUtil   cacheutil.CacheUtil
}

func NewEnablePluginHandler(
	logger *logrus.Logger,
	checker transaction.Checker,
	finder appPlugin.Finder,
	service appPlugin.Service,
	maintenanceService maintenance.Service,
	cacheUtil cacheutil.CacheUtil,
) Handler {
	return &enablePluginHandler{
		logger:      logger,
		checker:     checker,
		finder:      finder,
		service:     service,
		maintenance: maintenanceService,
		cacheUtil:   cacheUtil,
	}
}

// Handle @Summary Enable or disable a plugin during installation
// @Description Flips the plugin state and returns the output of its lifecycle hooks
// @Tags Install
// @Produce json
// @Param code path string true "Plugin code"
// @Param ECCUBE-CSRF-TOKEN header string false "Anti-forgery token"
// @Success 200 {object} response.PluginToggleResponse "Toggle result"
// @Failure 404 {object} map[string]interface{} "No valid install transaction"
// @Failure 500 {object} map[string]interface{} "Plugin hook failed"
// @Router /install/plugin/{code}/enable [put]
func (h *enablePluginHandler) Handle(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := domainPlugin.ValidateCode(code); err != nil {
		return fiber.ErrNotFound
	}
	ctx := c.UserContext()
	if !h.checker.IsValid(ctx) {
		return fiber.ErrNotFound
	}

	entity, err := h.finder.FindByCode(ctx, code)
	if err != nil {
		if domain.IsNotFoundError(err) {
			prometheus.PluginToggleTotal.WithLabelValues(appPlugin.ActionLookup, prometheus.ResultNotFound).Inc()
			return c.Status(fiber.StatusOK).JSON(response.PluginToggleResponse{Success: false})
		}
		return fmt.Errorf("failed to find plugin %s: %w", code, err)
	}

	if err := h.maintenance.SwitchMaintenance(ctx, true, maintenance.AutoMaintenance); err != nil {
		return fmt.Errorf("failed to enable maintenance: %w", err)
	}
	// Exit is requested right away; with a terminate queue in ctx it only
	// happens once the response is done.
	if err := h.maintenance.DisableMaintenance(ctx, maintenance.AutoMaintenance); err != nil {
		return fmt.Errorf("failed to schedule maintenance exit: %w", err)
	}

	action, log, err := h.toggle(ctx, entity)
	if err != nil {
		prometheus.PluginToggleTotal.WithLabelValues(action, prometheus.ResultError).Inc()
		return err
	}
	prometheus.PluginToggleTotal.WithLabelValues(action, prometheus.ResultSuccess).Inc()

	if err := h.cacheUtil.ClearCache(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	h.logger.WithFields(logrus.Fields{
		"code":    code,
		"action":  action,
		"enabled": entity.Enabled,
	}).Info("plugin state changed by installer")

	return c.Status(fiber.StatusOK).JSON(response.PluginToggleResponse{Success: true, Log: &log})
}

func (h *enablePluginHandler) toggle(ctx context.Context, entity *domainPlugin.Plugin) (string, string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if entity.Enabled {
		err := h.service.Disable(ctx, entity, buf)
		return appPlugin.ActionDisable, buf.String(), err
	}
	err := h.service.Enable(ctx, entity, buf)
	return appPlugin.ActionEnable, buf.String(), err
}
