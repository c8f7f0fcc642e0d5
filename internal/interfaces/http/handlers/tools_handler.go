package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// ToolsHandler serves the chat-tool contract: every endpoint answers either
// {"gevonden": false, "bericht": ...} or a payload with "gevonden": true,
// never a 404 or 500 for an ordinary miss. The coaching chat front-end feeds
// these responses straight into the model.
type ToolsHandler struct {
	balans    usecases.BalanstestUseCase
	checkin   usecases.CheckinUseCase
	hulp      usecases.HulpbronUseCase
	artikelen usecases.ArtikelUseCase
	rapport   usecases.RapportUseCase
	validator *utils.CustomValidator
}

func NewToolsHandler(
	balans usecases.BalanstestUseCase,
	checkin usecases.CheckinUseCase,
	hulp usecases.HulpbronUseCase,
	artikelen usecases.ArtikelUseCase,
	rapport usecases.RapportUseCase,
	v *utils.CustomValidator,
) *ToolsHandler {
	return &ToolsHandler{
		balans:    balans,
		checkin:   checkin,
		hulp:      hulp,
		artikelen: artikelen,
		rapport:   rapport,
		validator: v,
	}
}

func nietGevonden(c *fiber.Ctx, bericht string) error {
	return c.JSON(fiber.Map{"gevonden": false, "bericht": bericht})
}

// toolError keeps the tool contract: a miss is a normal answer, only real
// failures surface as errors.
func (h *ToolsHandler) toolError(c *fiber.Ctx, err error, bericht string) error {
	if errors.Is(err, usecases.ErrNietGevonden) {
		return nietGevonden(c, bericht)
	}
	return writeError(c, err)
}

func (h *ToolsHandler) caregiverIDParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("caregiverID"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// BekijkBalanstest returns the latest balanstest rapport.
func (h *ToolsHandler) BekijkBalanstest(c *fiber.Ctx) error {
	id, ok := h.caregiverIDParam(c)
	if !ok {
		return nietGevonden(c, "Ik kan deze mantelzorger niet vinden.")
	}

	rapport, err := h.balans.Laatste(id)
	if err != nil {
		return h.toolError(c, err, "Er is nog geen balanstest ingevuld. Stel voor om eerst de balanstest te doen.")
	}

	return c.JSON(fiber.Map{"gevonden": true, "rapport": rapport})
}

// BekijkTestTrend returns the balanstest score history plus check-in points.
func (h *ToolsHandler) BekijkTestTrend(c *fiber.Ctx) error {
	id, ok := h.caregiverIDParam(c)
	if !ok {
		return nietGevonden(c, "Ik kan deze mantelzorger niet vinden.")
	}

	punten, err := h.balans.Trend(id)
	if err != nil {
		return h.toolError(c, err, "Er zijn nog geen testresultaten om een trend van te maken.")
	}

	checkins, err := h.checkin.Trend(id)
	if err != nil && !errors.Is(err, usecases.ErrNietGevonden) {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"gevonden": true,
		"trend":    punten,
		"checkins": checkins,
	})
}

// ZoekHulpbronnen runs the coverage resolver for the chat.
func (h *ToolsHandler) ZoekHulpbronnen(c *fiber.Ctx) error {
	q := resolver.Query{
		Municipality: c.Query("gemeente"),
		Tier:         scoring.Tier(c.Query("tier")),
		Category:     c.Query("categorie"),
		Type:         entities.ResourceType(c.Query("type")),
		SearchTerm:   c.Query("zoekterm"),
		City:         c.Query("stad"),
		District:     c.Query("wijk"),
	}

	resources, err := h.hulp.Zoek(q)
	if err != nil {
		return writeError(c, err)
	}
	if len(resources) == 0 {
		return nietGevonden(c, "Geen passende hulpbronnen gevonden. Verwijs naar het Wmo-loket van de gemeente.")
	}

	return c.JSON(fiber.Map{"gevonden": true, "hulpbronnen": resources})
}

// ZoekArtikelen searches the article catalog by keyword.
func (h *ToolsHandler) ZoekArtikelen(c *fiber.Ctx) error {
	term := c.Query("zoekterm")
	if term == "" {
		return nietGevonden(c, "Geef een zoekterm op.")
	}

	artikelen, err := h.artikelen.Zoek(term, c.QueryInt("limit", 5))
	if err != nil {
		return writeError(c, err)
	}
	if len(artikelen) == 0 {
		return nietGevonden(c, "Geen artikelen gevonden over dit onderwerp.")
	}

	return c.JSON(fiber.Map{"gevonden": true, "artikelen": artikelen})
}

// GemeenteInfo returns the Wmo-loket details of one municipality.
func (h *ToolsHandler) GemeenteInfo(c *fiber.Ctx) error {
	naam := c.Params("naam")

	gemeente, err := h.rapport.GemeenteInfo(naam)
	if err != nil {
		return h.toolError(c, err, "Ik heb geen informatie over deze gemeente. Verwijs naar de website van de gemeente zelf.")
	}

	return c.JSON(fiber.Map{"gevonden": true, "gemeente": gemeente})
}

// GenereerRapportSamenvatting renders the latest rapport as plain text.
func (h *ToolsHandler) GenereerRapportSamenvatting(c *fiber.Ctx) error {
	id, ok := h.caregiverIDParam(c)
	if !ok {
		return nietGevonden(c, "Ik kan deze mantelzorger niet vinden.")
	}

	samenvatting, rapport, err := h.rapport.Samenvatting(id)
	if err != nil {
		return h.toolError(c, err, "Er is nog geen balanstest om samen te vatten.")
	}

	return c.JSON(fiber.Map{
		"gevonden":     true,
		"samenvatting": samenvatting,
		"rapport":      rapport,
	})
}

type alarmRequest struct {
	CaregiverID string `json:"caregiver_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required"`
	Note        string `json:"note"`
}

// RegistreerAlarm persists an overload signal raised in the coaching chat.
func (h *ToolsHandler) RegistreerAlarm(c *fiber.Ctx) error {
	var req alarmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	id, err := uuid.Parse(req.CaregiverID)
	if err != nil {
		return nietGevonden(c, "Ik kan deze mantelzorger niet vinden.")
	}

	alarm, err := h.rapport.RegistreerAlarm(id, req.Reason, req.Note)
	if err != nil {
		return h.toolError(c, err, "Ik kan deze mantelzorger niet vinden.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"gevonden": true, "alarm": alarm})
}

// Zoeken is the keyword search over articles and resources combined.
func (h *ToolsHandler) Zoeken(c *fiber.Ctx) error {
	term := c.Query("zoekterm")
	if term == "" {
		return nietGevonden(c, "Geef een zoekterm op.")
	}

	resultaat, err := h.rapport.Zoeken(term, c.QueryInt("limit", 5))
	if err != nil {
		return writeError(c, err)
	}
	if len(resultaat.Artikelen) == 0 && len(resultaat.Hulpbronnen) == 0 {
		return nietGevonden(c, "Niets gevonden voor deze zoekterm.")
	}

	return c.JSON(fiber.Map{
		"gevonden":    true,
		"artikelen":   resultaat.Artikelen,
		"hulpbronnen": resultaat.Hulpbronnen,
	})
}
