package db_models

import "github.com/google/uuid"

type Post struct {
	BaseModel
	FirmID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body   string    `gorm:"type:text"`

	Reports      []Report      `gorm:"foreignKey:PostID"`
	LikeDislikes []LikeDislike `gorm:"foreignKey:PostID"`
}

// Report is a user flagging a post for moderation.
type Report struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	PostID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason string
}

// LikeDislike is a user's reaction to a post; IsLike false means dislike.
type LikeDislike struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	PostID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsLike bool      `gorm:"not null"`
}
