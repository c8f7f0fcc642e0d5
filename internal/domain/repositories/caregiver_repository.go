package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type CaregiverRepository interface {
	GetByPhone(phone string) (*entities.Caregiver, error)
	GetByID(id uuid.UUID) (*entities.Caregiver, error)
	// GetOrCreateByPhone returns the existing caregiver for phone, creating a
	// bare record when none exists yet (first WhatsApp contact).
	GetOrCreateByPhone(phone string) (*entities.Caregiver, error)
	Upsert(caregiver *entities.Caregiver) error
}

type caregiverRepository struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db}
}

func (r *caregiverRepository) GetByPhone(phone string) (*entities.Caregiver, error) {
	var caregiver entities.Caregiver

	err := r.db.Where("phone = ?", phone).First(&caregiver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("mantelzorger ophalen mislukt: %w", err)
	}

	return &caregiver, nil
}

func (r *caregiverRepository) GetByID(id uuid.UUID) (*entities.Caregiver, error) {
	var caregiver entities.Caregiver

	err := r.db.First(&caregiver, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("mantelzorger ophalen mislukt: %w", err)
	}

	return &caregiver, nil
}

func (r *caregiverRepository) GetOrCreateByPhone(phone string) (*entities.Caregiver, error) {
	existing, err := r.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	caregiver := &entities.Caregiver{
		ID:    uuid.New(),
		Phone: phone,
	}
	if err := r.db.Create(caregiver).Error; err != nil {
		return nil, fmt.Errorf("mantelzorger aanmaken mislukt: %w", err)
	}

	return caregiver, nil
}

// Upsert writes the caregiver keyed by phone number, last writer wins.
func (r *caregiverRepository) Upsert(caregiver *entities.Caregiver) error {
	if caregiver.ID == uuid.Nil {
		caregiver.ID = uuid.New()
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "postcode", "house_number", "street", "city", "municipality",
			"care_recipient_name", "care_recipient_relation",
			"care_recipient_postcode", "care_recipient_city", "updated_at",
		}),
	}).Create(caregiver).Error
	if err != nil {
		return fmt.Errorf("mantelzorger opslaan mislukt: %w", err)
	}

	return nil
}
