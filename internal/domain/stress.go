package domain

import "time"

// StressEntry is a timestamped record of an inferred or self-reported
// stress level.
type StressEntry struct {
	ID        string
	Level     StressLevel
	Note      string
	CreatedAt time.Time
}
