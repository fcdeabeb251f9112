package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pinpoint/internal/repositories"
	"pinpoint/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAuthService)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAuthService(adminRepo repositories.AdminRepository) services.AuthServiceInterface {
	return services.NewAuthService(adminRepo)
}
