package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pinpoint/internal/models/db_models"
)

type UserRepository interface {
	Update(ctx context.Context, user *db_models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, page PageParams) ([]db_models.User, int64, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	DiscardUser(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&db_models.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) List(ctx context.Context, page PageParams) ([]db_models.User, int64, error) {
	page = page.Normalized()

	var total int64
	if err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []db_models.User
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListAll returns every kept user in insertion order, for the CSV export.
func (r *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

// DiscardUser soft deletes the user and its owned interaction records in
// one transaction: views, swipes, visited locations, like/dislikes,
// reports, then the user itself. Idempotent on already-discarded rows.
func (r *userRepository) DiscardUser(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&db_models.View{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.Swipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.VisitedLocation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.LikeDislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.User{}, "id = ?", id).Error
	})
}
