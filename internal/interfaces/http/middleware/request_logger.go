package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with method, path, status and latency.
// Health and metrics probes are skipped to keep the log readable.
func RequestLogger(log *logrus.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" || c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		fields := logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   status,
			"duration": time.Since(start).String(),
			"ip":       c.IP(),
		}

		switch {
		case status >= 500:
			log.WithFields(fields).Error("request afgehandeld")
		case status >= 400:
			log.WithFields(fields).Warn("request afgehandeld")
		default:
			log.WithFields(fields).Info("request afgehandeld")
		}

		return err
	}
}
