package entities

import "time"

// Advice is an admin-configured advisory text, keyed "{deelgebied}.{tier}"
// (e.g. "energie.hoog") or "taak.{taskId}.advies" (e.g. "taak.vervoer.advies").
// Lookups fall back to static in-code text when no row exists.
type Advice struct {
	Key       string    `json:"key" gorm:"primaryKey;column:key"`
	Text      string    `json:"text" gorm:"column:text;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}
