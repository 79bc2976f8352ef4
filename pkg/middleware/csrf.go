package middleware

import (
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/sirupsen/logrus"
)

const csrfCookieName = "installgate_csrf"

type csrfMiddleware struct {
	logger  *logrus.Logger
	enabled bool
	handler fiber.Handler
}

// NewCSRFMiddleware checks the anti-forgery token sent in the configured
// header against the token cookie issued on safe requests.
func NewCSRFMiddleware(logger *logrus.Logger, cfg config.SecurityConfig) Middleware {
	m := &csrfMiddleware{
		logger:  logger,
		enabled: cfg.CSRFEnabled,
	}
	if cfg.CSRFEnabled {
		m.handler = csrf.New(csrf.Config{
			KeyLookup:      "header:" + cfg.CSRFHeader,
			CookieName:     csrfCookieName,
			CookieSameSite: "Strict",
			CookieHTTPOnly: false,
			Expiration:     time.Hour,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				logger.WithError(err).WithField("path", c.Path()).Warn("csrf token rejected")
				return fiber.NewError(fiber.StatusForbidden, "invalid csrf token")
			},
		})
	}
	return m
}

func (m *csrfMiddleware) Middleware() fiber.Handler {
	if !m.enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return m.handler
}
