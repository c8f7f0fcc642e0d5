package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/metrics"
)

// CollectMetrics records request count, duration and in-flight gauge.
// The route pattern is used as the path label to keep cardinality bounded.
func CollectMetrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		m.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		m.RequestsInFlight.Dec()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		m.RequestCounter.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
