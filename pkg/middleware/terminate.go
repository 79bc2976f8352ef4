package middleware

import (
	"github.com/NeuralTrust/InstallGate/pkg/infra/terminate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type terminateMiddleware struct {
	logger *logrus.Logger
}

// NewTerminateMiddleware gives every request a terminate queue. Work
// deferred on it runs once the rest of the chain has returned, even when
// the handler failed or panicked.
func NewTerminateMiddleware(logger *logrus.Logger) Middleware {
	return &terminateMiddleware{logger: logger}
}

func (m *terminateMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		queue := terminate.NewQueue()
		c.SetUserContext(terminate.WithQueue(c.UserContext(), queue))
		defer func() {
			if n := queue.Len(); n > 0 {
				m.logger.WithField("tasks", n).Debug("running terminate tasks")
			}
			queue.Run()
		}()
		return c.Next()
	}
}
