package entities

import "time"

// Gemeente holds the municipality information served by the gemeente-info
// chat tool: a short description plus the Wmo-loket contact details.
type Gemeente struct {
	Name           string    `json:"name" gorm:"primaryKey;column:name"`
	Province       string    `json:"province" gorm:"column:province"`
	Description    string    `json:"description" gorm:"column:description;type:text"`
	Website        string    `json:"website" gorm:"column:website"`
	WmoLoketPhone  string    `json:"wmo_loket_phone" gorm:"column:wmo_loket_phone"`
	WmoLoketEmail  string    `json:"wmo_loket_email" gorm:"column:wmo_loket_email"`
	MantelzorgInfo string    `json:"mantelzorg_info" gorm:"column:mantelzorg_info;type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}
