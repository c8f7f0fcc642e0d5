package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/middleware"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// HulpbronHandler serves the public resolver query plus the admin and
// gemeente CRUD. Gemeente callers are scoped to their token's municipality.
type HulpbronHandler struct {
	hulp      usecases.HulpbronUseCase
	validator *utils.CustomValidator
}

func NewHulpbronHandler(hulp usecases.HulpbronUseCase, v *utils.CustomValidator) *HulpbronHandler {
	return &HulpbronHandler{hulp: hulp, validator: v}
}

// Zoek runs the coverage resolver over the active resources.
func (h *HulpbronHandler) Zoek(c *fiber.Ctx) error {
	q := resolver.Query{
		Municipality: c.Query("gemeente"),
		Category:     c.Query("categorie"),
		Type:         entities.ResourceType(c.Query("type")),
		SearchTerm:   c.Query("zoekterm"),
		City:         c.Query("stad"),
		District:     c.Query("wijk"),
	}
	if tier := c.Query("tier"); tier != "" {
		q.Tier = scoring.Tier(tier)
	}

	resources, err := h.hulp.Zoek(q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": resources, "total": len(resources)})
}

// scopedMunicipality returns the municipality a gemeente token is bound to,
// empty for admins.
func scopedMunicipality(c *fiber.Ctx) string {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Role != middleware.RoleGemeente {
		return ""
	}
	return claims.Municipality
}

// GetAll lists resources paginated. Gemeente callers only see their own rows.
func (h *HulpbronHandler) GetAll(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	scope := scopedMunicipality(c)
	if scope == "" {
		scope = c.Query("gemeente")
	}

	resources, total, err := h.hulp.GetAll(page, limit, scope)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  resources,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetByID returns one resource.
func (h *HulpbronHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resource, err := h.hulp.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(resource)
}

type hulpbronRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Website     string `json:"website" validate:"omitempty,url"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	Postcode    string `json:"postcode" validate:"omitempty,dutch_postcode"`
	City        string `json:"city"`

	CoverageLevel     string   `json:"coverage_level" validate:"omitempty,oneof=landelijk provincie gemeente stad wijk"`
	Province          string   `json:"province"`
	Municipality      string   `json:"municipality"`
	CoverageCities    []string `json:"coverage_cities"`
	CoverageDistricts []string `json:"coverage_districts"`

	Category string `json:"category"`

	VisibleAtTierLow    *bool `json:"visible_at_tier_low"`
	VisibleAtTierMedium *bool `json:"visible_at_tier_medium"`
	VisibleAtTierHigh   *bool `json:"visible_at_tier_high"`

	IsActive *bool `json:"is_active"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (r *hulpbronRequest) toEntity(id uuid.UUID) *entities.HelpResource {
	return &entities.HelpResource{
		ID:                  id,
		Name:                r.Name,
		Description:         r.Description,
		Type:                entities.ResourceType(r.Type),
		Phone:               r.Phone,
		Email:               r.Email,
		Website:             r.Website,
		Street:              r.Street,
		HouseNumber:         r.HouseNumber,
		Postcode:            r.Postcode,
		City:                r.City,
		CoverageLevel:       entities.CoverageLevel(r.CoverageLevel),
		Province:            r.Province,
		Municipality:        r.Municipality,
		CoverageCities:      r.CoverageCities,
		CoverageDistricts:   r.CoverageDistricts,
		Category:            r.Category,
		VisibleAtTierLow:    boolOr(r.VisibleAtTierLow, true),
		VisibleAtTierMedium: boolOr(r.VisibleAtTierMedium, true),
		VisibleAtTierHigh:   boolOr(r.VisibleAtTierHigh, true),
		IsActive:            boolOr(r.IsActive, true),
	}
}

// Create stores a new resource.
func (h *HulpbronHandler) Create(c *fiber.Ctx) error {
	var req hulpbronRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	resource := req.toEntity(uuid.Nil)
	if err := h.hulp.Save(resource, scopedMunicipality(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resource)
}

// Update replaces an existing resource.
func (h *HulpbronHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req hulpbronRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	resource := req.toEntity(id)
	if err := h.hulp.Save(resource, scopedMunicipality(c)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(resource)
}

// Delete removes a resource.
func (h *HulpbronHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.hulp.Delete(id, scopedMunicipality(c)); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
