package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/mantelbuddy/mantelbuddy-api/internal/bot"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/cache"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/database"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/geo"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/logger"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/metrics"
	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/middleware"
	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/routes"
)

const serviceName = "api"

// Sessions idle longer than this are dropped; WhatsApp conversations rarely
// pause more than a few minutes mid-flow.
const sessionTTL = 30 * time.Minute

func main() {
	log := logger.New(serviceName)

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment variables")
	}

	db, err := database.SetupDatabase()
	if err != nil {
		log.WithError(err).Fatal("database setup mislukt")
	}

	m := metrics.New(serviceName)
	catalogCache := cache.New()
	sessionStore := bot.NewStore(sessionTTL)
	geoLookup := geo.NewClient()

	app := fiber.New(fiber.Config{
		Concurrency:  256 * 1024,
		Prefork:      false,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app)
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.CollectMetrics(m))

	engine := routes.SetupRoutes(app, db, catalogCache, sessionStore, geoLookup, m, log)
	metrics.RegisterSessionGauge(serviceName, engine.Store().Len)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server gestart")
	if err := app.Listen(":" + port); err != nil {
		log.WithError(err).Fatal("server gestopt")
	}
}
