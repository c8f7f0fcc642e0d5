package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type GemeenteRepository interface {
	GetByName(name string) (*entities.Gemeente, error)
	GetAll() ([]entities.Gemeente, error)
	Upsert(gemeente *entities.Gemeente) error
}

type gemeenteRepository struct {
	db *gorm.DB
}

func NewGemeenteRepository(db *gorm.DB) GemeenteRepository {
	return &gemeenteRepository{db}
}

func (r *gemeenteRepository) GetByName(name string) (*entities.Gemeente, error) {
	var gemeente entities.Gemeente

	err := r.db.Where("lower(name) = lower(?)", name).First(&gemeente).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("gemeente ophalen mislukt: %w", err)
	}

	return &gemeente, nil
}

func (r *gemeenteRepository) GetAll() ([]entities.Gemeente, error) {
	var gemeenten []entities.Gemeente

	if err := r.db.Order("name asc").Find(&gemeenten).Error; err != nil {
		return nil, fmt.Errorf("gemeenten ophalen mislukt: %w", err)
	}

	return gemeenten, nil
}

func (r *gemeenteRepository) Upsert(gemeente *entities.Gemeente) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"province", "description", "website", "wmo_loket_phone",
			"wmo_loket_email", "mantelzorg_info", "updated_at",
		}),
	}).Create(gemeente).Error
	if err != nil {
		return fmt.Errorf("gemeente opslaan mislukt: %w", err)
	}

	return nil
}
