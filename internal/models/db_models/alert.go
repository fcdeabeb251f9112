package db_models

import "github.com/google/uuid"

// Alert delivers a notification to one user.
type Alert struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seen           bool      `gorm:"not null;default:false"`

	Notification Notification `gorm:"foreignKey:NotificationID"`
}

type Notification struct {
	BaseModel
	Title string
	Body  string `gorm:"type:text"`
}

// View records a user viewing a firm's profile.
type View struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	FirmID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// Swipe records a discovery-feed swipe decision.
type Swipe struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FirmID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Direction string    `gorm:"not null"`
}
