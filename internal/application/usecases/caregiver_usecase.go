package usecases

import (
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
)

// OnboardingInput is the data collected by the onboarding flow, with the
// resolved address fields from the postcode lookup when that succeeded.
type OnboardingInput struct {
	Name         string `json:"name"`
	Postcode     string `json:"postcode" validate:"required,dutch_postcode"`
	HouseNumber  string `json:"house_number" validate:"required"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`

	CareRecipientName     string `json:"care_recipient_name"`
	CareRecipientRelation string `json:"care_recipient_relation"`
	CareRecipientPostcode string `json:"care_recipient_postcode"`
	CareRecipientCity     string `json:"care_recipient_city"`
}

type CaregiverUseCase interface {
	GetByPhone(phone string) (*entities.Caregiver, error)
	GetByID(id uuid.UUID) (*entities.Caregiver, error)
	// SaveOnboarding upserts the caregiver profile collected by either the
	// web onboarding form or the WhatsApp onboarding flow.
	SaveOnboarding(phone string, input OnboardingInput) (*entities.Caregiver, error)
}

type caregiverUseCase struct {
	repo repositories.CaregiverRepository
}

func NewCaregiverUseCase(repo repositories.CaregiverRepository) CaregiverUseCase {
	return &caregiverUseCase{repo}
}

func (uc *caregiverUseCase) GetByPhone(phone string) (*entities.Caregiver, error) {
	caregiver, err := uc.repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	return caregiver, nil
}

func (uc *caregiverUseCase) GetByID(id uuid.UUID) (*entities.Caregiver, error) {
	caregiver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	return caregiver, nil
}

func (uc *caregiverUseCase) SaveOnboarding(phone string, input OnboardingInput) (*entities.Caregiver, error) {
	caregiver, err := uc.repo.GetOrCreateByPhone(phone)
	if err != nil {
		return nil, err
	}

	caregiver.Name = input.Name
	caregiver.Postcode = input.Postcode
	caregiver.HouseNumber = input.HouseNumber
	caregiver.Street = input.Street
	caregiver.City = input.City
	caregiver.Municipality = input.Municipality
	caregiver.CareRecipientName = input.CareRecipientName
	caregiver.CareRecipientRelation = input.CareRecipientRelation
	caregiver.CareRecipientPostcode = input.CareRecipientPostcode
	caregiver.CareRecipientCity = input.CareRecipientCity

	if err := uc.repo.Upsert(caregiver); err != nil {
		return nil, err
	}

	return caregiver, nil
}
