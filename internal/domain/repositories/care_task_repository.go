package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type CareTaskRepository interface {
	GetTasks() ([]entities.CareTask, error)
	UpsertTasks(tasks []entities.CareTask) error
}

type careTaskRepository struct {
	db *gorm.DB
}

func NewCareTaskRepository(db *gorm.DB) CareTaskRepository {
	return &careTaskRepository{db}
}

func (r *careTaskRepository) GetTasks() ([]entities.CareTask, error) {
	var tasks []entities.CareTask

	if err := r.db.Order("sort_order asc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("zorgtaken ophalen mislukt: %w", err)
	}

	return tasks, nil
}

func (r *careTaskRepository) UpsertTasks(tasks []entities.CareTask) error {
	if len(tasks) == 0 {
		return nil
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "sort_order", "updated_at",
		}),
	}).Create(&tasks).Error
	if err != nil {
		return fmt.Errorf("zorgtakencatalogus bijwerken mislukt: %w", err)
	}

	return nil
}
