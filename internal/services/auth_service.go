package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/repositories"
	"pinpoint/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error)
}

type AuthService struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthServiceInterface {
	return &AuthService{adminRepo: adminRepo}
}

func (s *AuthService) Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("error fetching admin")
		return "", utils.ErrDatabaseError
	}
	if admin == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.ID, "admin")
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}
