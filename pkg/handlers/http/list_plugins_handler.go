package http

import (
	appPlugin "github.com/NeuralTrust/InstallGate/pkg/app/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listPluginsHandler struct {
	logger  *logrus.Logger
	checker transaction.Checker
	finder  appPlugin.Finder
}

func NewListPluginsHandler(logger *logrus.Logger, checker transaction.Checker, finder appPlugin.Finder) Handler {
	return &listPluginsHandler{
		logger:  logger,
		checker: checker,
		finder:  finder,
	}
}

// Handle @Summary List plugins known to the installer
// @Tags Install
// @Produce json
// @Success 200 {object} response.ListPluginsResponse "Plugins ordered by code"
// @Failure 404 {object} map[string]interface{} "No valid install transaction"
// @Router /install/plugins [get]
func (h *listPluginsHandler) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if !h.checker.IsValid(ctx) {
		return fiber.ErrNotFound
	}
	plugins, err := h.finder.List(ctx)
	if err != nil {
		h.logger.WithError(err).Error("failed to list plugins")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list plugins"})
	}
	return c.Status(fiber.StatusOK).JSON(response.ListPluginsResponse{Plugins: plugins})
}
