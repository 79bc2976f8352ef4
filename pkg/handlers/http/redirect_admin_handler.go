package http

import (
	"github.com/NeuralTrust/InstallGate/pkg/app/cacheutil"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type redirectAdminHandler struct {
	logger     *logrus.Logger
	checker    transaction.Checker
	cacheUtil  cacheutil.CacheUtil
	adminRoute string
}

func NewRedirectAdminHandler(
	logger *logrus.Logger,
	checker transaction.Checker,
	cacheUtil cacheutil.CacheUtil,
	adminRoute string,
) Handler {
	return &redirectAdminHandler{
		logger:     logger,
		checker:    checker,
		cacheUtil:  cacheUtil,
		adminRoute: adminRoute,
	}
}

// Handle @Summary Finish the install transaction
// @Description Clears caches, removes the install transaction token and redirects to the admin page
// @Tags Install
// @Success 302 "Redirect to the admin landing page"
// @Router /install/plugin/redirect [get]
func (h *redirectAdminHandler) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.cacheUtil.ClearCache(ctx); err != nil {
		h.logger.WithError(err).Error("failed to clear cache after install")
	}
	if err := h.checker.Remove(ctx); err != nil {
		h.logger.WithError(err).WithField("file", h.checker.Path()).Error("failed to remove install transaction")
	}
	return c.Redirect(h.adminRoute, fiber.StatusFound)
}
