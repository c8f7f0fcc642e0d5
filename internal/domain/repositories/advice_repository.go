package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type AdviceRepository interface {
	GetByKey(key string) (*entities.Advice, error)
	GetAll() ([]entities.Advice, error)
	Upsert(advice *entities.Advice) error
	Delete(key string) error
}

type adviceRepository struct {
	db *gorm.DB
}

func NewAdviceRepository(db *gorm.DB) AdviceRepository {
	return &adviceRepository{db}
}

func (r *adviceRepository) GetByKey(key string) (*entities.Advice, error) {
	var advice entities.Advice

	err := r.db.First(&advice, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("advies ophalen mislukt: %w", err)
	}

	return &advice, nil
}

func (r *adviceRepository) GetAll() ([]entities.Advice, error) {
	var advices []entities.Advice

	if err := r.db.Order("key asc").Find(&advices).Error; err != nil {
		return nil, fmt.Errorf("adviezen ophalen mislukt: %w", err)
	}

	return advices, nil
}

func (r *adviceRepository) Upsert(advice *entities.Advice) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(advice).Error
	if err != nil {
		return fmt.Errorf("advies opslaan mislukt: %w", err)
	}

	return nil
}

func (r *adviceRepository) Delete(key string) error {
	if err := r.db.Delete(&entities.Advice{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("advies verwijderen mislukt: %w", err)
	}

	return nil
}
