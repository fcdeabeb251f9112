package db_models

import "github.com/google/uuid"

const (
	PinStatusActive   = "active"
	PinStatusInactive = "inactive"
)

// Pin is a geolocated map marker tied to a firm. IsHome marks the firm's
// "home" pin; at most one is expected per firm but the selection happens at
// query time, not via a constraint.
type Pin struct {
	BaseModel
	FirmID uuid.UUID `gorm:"type:uuid;not null;index"`
	Lat    float64
	Lng    float64
	Status string `gorm:"not null;default:active"`
	IsHome bool   `gorm:"not null;default:false"`

	VisitedLocations []VisitedLocation `gorm:"foreignKey:PinID"`
}

// VisitedLocation records a user having visited a pin.
type VisitedLocation struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	PinID  uuid.UUID `gorm:"type:uuid;not null;index"`
}
