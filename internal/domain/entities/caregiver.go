package entities

import (
	"time"

	"github.com/google/uuid"
)

// Caregiver is a registered mantelzorger. Phone is the natural key used by the
// WhatsApp channel; the onboarding flow fills the address and care-recipient
// fields.
type Caregiver struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Phone        string    `json:"phone" gorm:"column:phone;uniqueIndex"`
	Name         string    `json:"name" gorm:"column:name"`
	Postcode     string    `json:"postcode" gorm:"column:postcode"`
	HouseNumber  string    `json:"house_number" gorm:"column:house_number"`
	Street       string    `json:"street" gorm:"column:street"`
	City         string    `json:"city" gorm:"column:city"`
	Municipality string    `json:"municipality" gorm:"column:municipality;index"`

	// Degene voor wie gezorgd wordt.
	CareRecipientName     string `json:"care_recipient_name" gorm:"column:care_recipient_name"`
	CareRecipientRelation string `json:"care_recipient_relation" gorm:"column:care_recipient_relation"`
	CareRecipientPostcode string `json:"care_recipient_postcode" gorm:"column:care_recipient_postcode"`
	CareRecipientCity     string `json:"care_recipient_city" gorm:"column:care_recipient_city"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaties
	TestResults []TestResult `json:"test_results,omitempty" gorm:"foreignKey:CaregiverID"`
}
