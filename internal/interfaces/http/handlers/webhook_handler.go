package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mantelbuddy/mantelbuddy-api/internal/bot"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/metrics"
)

// WebhookHandler bridges the WhatsApp transport to the bot engine. The
// transport posts form fields From and Body; the reply goes back as plain
// text for the provider to forward.
type WebhookHandler struct {
	engine  *bot.Engine
	metrics *metrics.Metrics
}

func NewWebhookHandler(engine *bot.Engine, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{engine: engine, metrics: m}
}

// WhatsApp handles one inbound message. The From field arrives as
// "whatsapp:+316...", the prefix is stripped before it becomes the session
// key.
func (h *WebhookHandler) WhatsApp(c *fiber.Ctx) error {
	from := strings.TrimPrefix(c.FormValue("From"), "whatsapp:")
	body := c.FormValue("Body")
	if from == "" {
		return c.Status(fiber.StatusBadRequest).SendString("From ontbreekt")
	}

	reply := h.engine.Handle(c.UserContext(), from, body)

	if h.metrics != nil {
		step := "none"
		if sess, ok := h.engine.Store().Get(from); ok {
			step = string(sess.CurrentStep)
		}
		h.metrics.BotMessages.WithLabelValues(step).Inc()
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(reply)
}
