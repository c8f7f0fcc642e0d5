package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type HelpResourceRepository interface {
	// GetActive returns all active resources; the resolver applies the
	// coverage and tier rules in memory.
	GetActive() ([]entities.HelpResource, error)
	GetAll(page, limit int, municipality string) ([]entities.HelpResource, int64, error)
	GetByID(id uuid.UUID) (*entities.HelpResource, error)
	Create(resource *entities.HelpResource) error
	Update(resource *entities.HelpResource) error
	Delete(id uuid.UUID) error
}

type helpResourceRepository struct {
	db *gorm.DB
}

func NewHelpResourceRepository(db *gorm.DB) HelpResourceRepository {
	return &helpResourceRepository{db}
}

func (r *helpResourceRepository) GetActive() ([]entities.HelpResource, error) {
	var resources []entities.HelpResource

	err := r.db.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("hulpbronnen ophalen mislukt: %w", err)
	}

	return resources, nil
}

// GetAll lists resources for the CRUD screens, optionally scoped to one
// municipality (the gemeente role only sees its own rows).
func (r *helpResourceRepository) GetAll(page, limit int, municipality string) ([]entities.HelpResource, int64, error) {
	var resources []entities.HelpResource
	var total int64

	query := r.db.Model(&entities.HelpResource{})
	if municipality != "" {
		query = query.Where("municipality = ?", municipality)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("hulpbronnen tellen mislukt: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}
	offset := (page - 1) * limit

	err := query.Order("name asc").Offset(offset).Limit(limit).Find(&resources).Error
	if err != nil {
		return nil, 0, fmt.Errorf("hulpbronnen ophalen mislukt: %w", err)
	}

	return resources, total, nil
}

func (r *helpResourceRepository) GetByID(id uuid.UUID) (*entities.HelpResource, error) {
	var resource entities.HelpResource

	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("hulpbron ophalen mislukt: %w", err)
	}

	return &resource, nil
}

func (r *helpResourceRepository) Create(resource *entities.HelpResource) error {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}

	if err := r.db.Create(resource).Error; err != nil {
		return fmt.Errorf("hulpbron aanmaken mislukt: %w", err)
	}

	return nil
}

func (r *helpResourceRepository) Update(resource *entities.HelpResource) error {
	if err := r.db.Save(resource).Error; err != nil {
		return fmt.Errorf("hulpbron bijwerken mislukt: %w", err)
	}

	return nil
}

func (r *helpResourceRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&entities.HelpResource{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("hulpbron verwijderen mislukt: %w", err)
	}

	return nil
}
