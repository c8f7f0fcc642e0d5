package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define the API route groups with their access levels.
type RouteGroups struct {
	Public   fiber.Router
	Tools    fiber.Router
	Admin    fiber.Router
	Gemeente fiber.Router
	Webhook  fiber.Router
}

// SetupRouteGroups wires the groups and their middlewares. Tools share the
// public group's access model but live under their own prefix so the chat
// front-end has one stable base path.
func SetupRouteGroups(app *fiber.App) RouteGroups {
	public := app.Group("/api")

	tools := app.Group("/api/tools")

	admin := app.Group("/api/admin")
	admin.Use(RequireRole(RoleAdmin))

	gemeente := app.Group("/api/gemeente")
	gemeente.Use(RequireRole(RoleGemeente))

	webhook := app.Group("/webhook")

	return RouteGroups{
		Public:   public,
		Tools:    tools,
		Admin:    admin,
		Gemeente: gemeente,
		Webhook:  webhook,
	}
}
