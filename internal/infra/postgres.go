package infra

import (
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pinpoint/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	return db
}

// Migrate keeps the schema in sync with the entity layer.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Business{},
		&db_models.Admin{},
		&db_models.User{},
		&db_models.Firm{},
		&db_models.Trustee{},
		&db_models.Feature{},
		&db_models.Flag{},
		&db_models.Schedule{},
		&db_models.Pin{},
		&db_models.PinBalance{},
		&db_models.Post{},
		&db_models.Report{},
		&db_models.LikeDislike{},
		&db_models.Notification{},
		&db_models.Alert{},
		&db_models.View{},
		&db_models.Swipe{},
		&db_models.VisitedLocation{},
		&db_models.SupportTicket{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
}
