package entities

import (
	"time"

	"github.com/google/uuid"
)

// Alarm is a signal raised through the coaching chat when a caregiver reports
// an acute overload situation. It is persisted for follow-up, never deleted.
type Alarm struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	CaregiverID uuid.UUID `json:"caregiver_id" gorm:"column:caregiver_id;type:uuid;index"`
	Reason      string    `json:"reason" gorm:"column:reason"`
	Note        string    `json:"note" gorm:"column:note;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}
