package db_models

import "github.com/google/uuid"

// Trustee links a user to a firm they help manage.
type Trustee struct {
	BaseModel
	FirmID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	User User `gorm:"foreignKey:UserID"`
}

// Flag links a firm to one of the platform features it has enabled.
type Flag struct {
	BaseModel
	FirmID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FeatureID uuid.UUID `gorm:"type:uuid;not null;index"`

	Feature Feature `gorm:"foreignKey:FeatureID"`
}

type Feature struct {
	BaseModel
	Name string `gorm:"not null;uniqueIndex"`
}
