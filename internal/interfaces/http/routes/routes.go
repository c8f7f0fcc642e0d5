package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/bot"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/cache"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/geo"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/metrics"
	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/handlers"
	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/middleware"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// SetupRoutes wires repositories, use cases and handlers onto the app and
// returns the bot engine so the caller can register the session gauge.
func SetupRoutes(
	app *fiber.App,
	db *gorm.DB,
	catalogCache *cache.Cache,
	sessionStore *bot.Store,
	geoLookup geo.Lookup,
	m *metrics.Metrics,
	log *logrus.Entry,
) *bot.Engine {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(etag.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Repositories
	questionRepo := repositories.NewQuestionRepository(db)
	taskRepo := repositories.NewCareTaskRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	resultRepo := repositories.NewTestResultRepository(db)
	resourceRepo := repositories.NewHelpResourceRepository(db)
	adviceRepo := repositories.NewAdviceRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	gemeenteRepo := repositories.NewGemeenteRepository(db)
	alarmRepo := repositories.NewAlarmRepository(db)

	// Use cases
	vraagUseCase := usecases.NewVraagUseCase(questionRepo, taskRepo, catalogCache)
	adviesUseCase := usecases.NewAdviesUseCase(adviceRepo)
	hulpbronUseCase := usecases.NewHulpbronUseCase(resourceRepo)
	balansUseCase := usecases.NewBalanstestUseCase(vraagUseCase, resultRepo, caregiverRepo, hulpbronUseCase, adviesUseCase)
	checkinUseCase := usecases.NewCheckinUseCase(vraagUseCase, resultRepo, caregiverRepo)
	artikelUseCase := usecases.NewArtikelUseCase(articleRepo)
	caregiverUseCase := usecases.NewCaregiverUseCase(caregiverRepo)
	rapportUseCase := usecases.NewRapportUseCase(balansUseCase, artikelUseCase, hulpbronUseCase, gemeenteRepo, alarmRepo, caregiverRepo)

	// Bot engine for the WhatsApp channel
	engine := bot.NewEngine(sessionStore, vraagUseCase, balansUseCase, hulpbronUseCase, caregiverUseCase, geoLookup, log)

	// Handlers
	validator := utils.NewCustomValidator()
	vraagHandler := handlers.NewVraagHandler(vraagUseCase, db)
	balansHandler := handlers.NewBalanstestHandler(balansUseCase, checkinUseCase, validator)
	hulpbronHandler := handlers.NewHulpbronHandler(hulpbronUseCase, validator)
	adviesHandler := handlers.NewAdviesHandler(adviesUseCase, validator)
	artikelHandler := handlers.NewArtikelHandler(artikelUseCase, validator)
	caregiverHandler := handlers.NewCaregiverHandler(caregiverUseCase, geoLookup, validator)
	toolsHandler := handlers.NewToolsHandler(balansUseCase, checkinUseCase, hulpbronUseCase, artikelUseCase, rapportUseCase, validator)
	authHandler := handlers.NewAuthHandler(validator)
	webhookHandler := handlers.NewWebhookHandler(engine, m)

	groups := middleware.SetupRouteGroups(app)

	// Catalogs
	groups.Public.Get("/vragen", vraagHandler.GetVragen)
	groups.Public.Get("/zorgtaken", vraagHandler.GetZorgtaken)

	// Balanstest and check-in
	groups.Public.Post("/balanstest", balansHandler.Submit)
	groups.Public.Get("/balanstest/:caregiverID/laatste", balansHandler.Laatste)
	groups.Public.Get("/balanstest/:caregiverID/trend", balansHandler.Trend)
	groups.Public.Post("/checkin", balansHandler.SubmitCheckin)

	// Public resolver query and articles
	groups.Public.Get("/hulpbronnen", hulpbronHandler.Zoek)
	groups.Public.Get("/artikelen", artikelHandler.GetAll)
	groups.Public.Get("/artikelen/:id", artikelHandler.GetByID)

	// Onboarding
	groups.Public.Post("/onboarding", caregiverHandler.Onboarding)
	groups.Public.Get("/caregivers/:id", caregiverHandler.GetByID)

	// Token issuing
	groups.Public.Post("/auth/token", authHandler.Token)

	// Chat tools
	groups.Tools.Get("/balanstest/:caregiverID", toolsHandler.BekijkBalanstest)
	groups.Tools.Get("/trend/:caregiverID", toolsHandler.BekijkTestTrend)
	groups.Tools.Get("/hulpbronnen", toolsHandler.ZoekHulpbronnen)
	groups.Tools.Get("/artikelen", toolsHandler.ZoekArtikelen)
	groups.Tools.Get("/gemeente/:naam", toolsHandler.GemeenteInfo)
	groups.Tools.Get("/rapport/:caregiverID", toolsHandler.GenereerRapportSamenvatting)
	groups.Tools.Post("/alarm", toolsHandler.RegistreerAlarm)
	groups.Tools.Get("/zoeken", toolsHandler.Zoeken)

	// Admin CRUD
	groups.Admin.Get("/hulpbronnen", hulpbronHandler.GetAll)
	groups.Admin.Get("/hulpbronnen/:id", hulpbronHandler.GetByID)
	groups.Admin.Post("/hulpbronnen", hulpbronHandler.Create)
	groups.Admin.Put("/hulpbronnen/:id", hulpbronHandler.Update)
	groups.Admin.Delete("/hulpbronnen/:id", hulpbronHandler.Delete)
	groups.Admin.Get("/adviezen", adviesHandler.GetAll)
	groups.Admin.Post("/adviezen", adviesHandler.Save)
	groups.Admin.Delete("/adviezen/:key", adviesHandler.Delete)
	groups.Admin.Post("/artikelen", artikelHandler.Create)
	groups.Admin.Put("/artikelen/:id", artikelHandler.Update)
	groups.Admin.Delete("/artikelen/:id", artikelHandler.Delete)
	groups.Admin.Post("/seed", vraagHandler.Seed)

	// Gemeente-scoped CRUD; the token's municipality bounds every mutation
	groups.Gemeente.Get("/hulpbronnen", hulpbronHandler.GetAll)
	groups.Gemeente.Get("/hulpbronnen/:id", hulpbronHandler.GetByID)
	groups.Gemeente.Post("/hulpbronnen", hulpbronHandler.Create)
	groups.Gemeente.Put("/hulpbronnen/:id", hulpbronHandler.Update)
	groups.Gemeente.Delete("/hulpbronnen/:id", hulpbronHandler.Delete)

	// WhatsApp webhook
	groups.Webhook.Post("/whatsapp", webhookHandler.WhatsApp)

	return engine
}
