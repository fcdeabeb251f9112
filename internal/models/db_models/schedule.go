package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Midnight is the synthetic start/end used for default schedule slots.
const Midnight = "00:00"

// AllWeekDays enables every day, Sunday (0) through Saturday (6).
var AllWeekDays = pq.Int64Array{0, 1, 2, 3, 4, 5, 6}

// Schedule is one opening-hours slot of a firm. WeekDays holds the enabled
// days as 0..6; an empty array means the slot is unused.
type Schedule struct {
	BaseModel
	FirmID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Starts   string        `gorm:"not null;default:'00:00'"`
	Ends     string        `gorm:"not null;default:'00:00'"`
	WeekDays pq.Int64Array `gorm:"type:integer[]"`
}
