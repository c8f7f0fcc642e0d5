package utils

import "time"

// GetNederlandLocation returns the Europe/Amsterdam timezone. All user-facing
// timestamps (reports, trends) are rendered in this zone for consistency.
func GetNederlandLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		// CET fallback when tzdata is unavailable in the container.
		loc = time.FixedZone("CET", 1*60*60)
	}
	return loc
}
