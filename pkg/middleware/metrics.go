package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const TraceIDHeader = "X-Request-ID"

type metricsMiddleware struct {
	logger *logrus.Logger
}

// NewMetricsMiddleware tags the request with a trace id, counts it and
// writes an access log line.
func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		traceID := c.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Locals(string(common.TraceIdKey), traceID)
		c.Set(TraceIDHeader, traceID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		prometheus.RequestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()

		m.logger.WithFields(logrus.Fields{
			"trace_id":   traceID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		}).Debug("request handled")
		return err
	}
}
