package entities

import (
	"time"

	"github.com/google/uuid"
)

// Article is an informational article shown in the app and searchable through
// the chat tools. Managed via the admin CRUD screens.
type Article struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Title       string    `json:"title" gorm:"column:title"`
	Slug        string    `json:"slug" gorm:"column:slug;uniqueIndex"`
	Summary     string    `json:"summary" gorm:"column:summary;type:text"`
	Body        string    `json:"body" gorm:"column:body;type:text"`
	Category    string    `json:"category" gorm:"column:category;index"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	PublishedAt time.Time `json:"published_at" gorm:"column:published_at"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}
