package db_models

// Business is a firm owner. It can also own support tickets, so it carries
// the username/email columns the ticket search walks.
type Business struct {
	BaseModel
	Username     string `gorm:"not null;uniqueIndex"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string

	OwnedFirms []Firm `gorm:"foreignKey:OwnerID"`
}

// Admin is a console operator. Admins authenticate against the admin
// namespace and can own support tickets.
type Admin struct {
	BaseModel
	Username     string `gorm:"not null;uniqueIndex"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
}
