package database

import (
	"context"

	"gorm.io/gorm"
)

// Context key marking that the timezone has already been set, to avoid the
// callback recursing into itself.
type timezoneKey struct{}

// SetTimezoneMiddleware creates a GORM callback that pins the session
// timezone to Dutch local time, so date bucketing in SQL matches the
// user-facing timestamps.
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		tx := db.WithContext(ctx)
		tx.Exec("SET timezone = 'Europe/Amsterdam'")
	}
}

// RegisterMiddlewares registers all GORM callbacks.
func RegisterMiddlewares(db *gorm.DB) {
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
