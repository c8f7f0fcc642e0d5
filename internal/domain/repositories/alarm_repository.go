package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type AlarmRepository interface {
	Create(alarm *entities.Alarm) error
	GetByCaregiver(caregiverID uuid.UUID) ([]entities.Alarm, error)
}

type alarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) AlarmRepository {
	return &alarmRepository{db}
}

func (r *alarmRepository) Create(alarm *entities.Alarm) error {
	if alarm.ID == uuid.Nil {
		alarm.ID = uuid.New()
	}

	if err := r.db.Create(alarm).Error; err != nil {
		return fmt.Errorf("alarm registreren mislukt: %w", err)
	}

	return nil
}

func (r *alarmRepository) GetByCaregiver(caregiverID uuid.UUID) ([]entities.Alarm, error) {
	var alarms []entities.Alarm

	err := r.db.
		Where("caregiver_id = ?", caregiverID).
		Order("created_at desc").
		Find(&alarms).Error
	if err != nil {
		return nil, fmt.Errorf("alarmen ophalen mislukt: %w", err)
	}

	return alarms, nil
}
