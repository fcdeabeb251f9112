package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pinpoint/internal/models/db_models"
	"pinpoint/internal/models/request_models"
	"pinpoint/internal/models/response_models"
	"pinpoint/internal/repositories"
	"pinpoint/pkg/utils"
)

type UserServiceInterface interface {
	ListUsers(ctx context.Context, page, perPage int) (response_models.Document, error)
	GetUser(ctx context.Context, id string) (response_models.Document, error)
	UpdateUser(ctx context.Context, id string, req request_models.UpdateUserRequest) (response_models.Document, error)
	DiscardUser(ctx context.Context, id string) error
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, page, perPage int) (response_models.Document, error) {
	params := repositories.PageParams{Page: page, PerPage: perPage}.Normalized()

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("error listing users")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	meta := response_models.Meta{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		TotalPages:  repositories.TotalPages(total, params.PerPage),
	}
	return response_models.UserListDocument(users, meta), nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (response_models.Document, error) {
	user, err := s.fetchUser(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}
	return response_models.UserDocument(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req request_models.UpdateUserRequest) (response_models.Document, error) {
	user, err := s.fetchUser(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	var errs []db_models.FieldError

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Photo != nil {
		user.Photo = *req.Photo
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Blocked != nil {
		user.Blocked = *req.Blocked
	}

	if req.Birthday != nil {
		birthday, parseErr := time.Parse("2006-01-02", *req.Birthday)
		if parseErr != nil {
			errs = append(errs, db_models.InvalidField("birthday", "must be YYYY-MM-DD"))
		} else if user.Birthday == nil {
			user.Birthday = &birthday
		} else if !user.Birthday.Equal(birthday) {
			// Birthdays may change once; the change itself is recorded and
			// clients lose can_change_birthday from then on.
			user.Birthday = &birthday
			user.UserChangedBirthday = true
		}
	}

	errs = append(errs, user.Validate()...)
	if len(errs) > 0 {
		return response_models.ValidationErrors(errs), nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Error().Err(err).Msg("error updating user")
		return response_models.Document{}, utils.ErrDatabaseError
	}
	return response_models.UserDocument(user), nil
}

func (s *UserService) DiscardUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching user")
		return utils.ErrDatabaseError
	}
	if user == nil {
		exists, err := s.userRepo.Exists(ctx, userID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if exists {
			return nil
		}
		return utils.ErrUserNotFound
	}

	if err := s.userRepo.DiscardUser(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrCascadeFailed, err)
	}
	return nil
}

func (s *UserService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error exporting users")
		return nil, "", utils.ErrDatabaseError
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "email", "username", "phone", "birthday",
		"lat", "lng", "status", "blocked", "created_at", "updated_at"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for i := range users {
		u := &users[i]
		birthday := ""
		if u.Birthday != nil {
			birthday = u.Birthday.Format("2006-01-02")
		}
		row := []string{
			u.ID.String(),
			u.Name(),
			u.Email,
			u.Username,
			u.Phone,
			birthday,
			strconv.FormatFloat(u.Lat, 'f', -1, 64),
			strconv.FormatFloat(u.Lng, 'f', -1, 64),
			u.Status,
			strconv.FormatBool(u.Blocked),
			strconv.FormatInt(u.CreatedAt, 10),
			strconv.FormatInt(u.UpdatedAt, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("users-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *UserService) fetchUser(ctx context.Context, id string) (*db_models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching user")
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
