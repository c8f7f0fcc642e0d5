package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/geo"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// CaregiverHandler serves the web onboarding form.
type CaregiverHandler struct {
	caregivers usecases.CaregiverUseCase
	geo        geo.Lookup
	validator  *utils.CustomValidator
}

func NewCaregiverHandler(caregivers usecases.CaregiverUseCase, geoLookup geo.Lookup, v *utils.CustomValidator) *CaregiverHandler {
	return &CaregiverHandler{caregivers: caregivers, geo: geoLookup, validator: v}
}

type onboardingRequest struct {
	Phone string `json:"phone" validate:"required,dutch_phone"`
	usecases.OnboardingInput
}

// Onboarding upserts the caregiver profile. The address fields are resolved
// from postcode and house number when the lookup service answers; a lookup
// failure is not fatal, the profile is stored without them.
func (h *CaregiverHandler) Onboarding(c *fiber.Ctx) error {
	var req onboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	postcode, ok := utils.NormalizePostcode(req.Postcode)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige postcode"})
	}
	req.Postcode = postcode

	if req.Municipality == "" && h.geo != nil {
		if addr, err := h.geo.Resolve(c.UserContext(), postcode, req.HouseNumber); err == nil {
			req.Street = addr.Street
			req.City = addr.City
			req.Municipality = addr.Municipality
		}
	}

	caregiver, err := h.caregivers.SaveOnboarding(req.Phone, req.OnboardingInput)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(caregiver)
}

// GetByID returns one caregiver profile.
func (h *CaregiverHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	caregiver, err := h.caregivers.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(caregiver)
}
