package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pinpoint/internal/models/db_models"
)

type FirmCounters struct {
	Pins         int64
	Likes        int64
	Reports      int64
	ReachedUsers int64
}

type FirmRepository interface {
	Create(ctx context.Context, firm *db_models.Firm) error
	Update(ctx context.Context, firm *db_models.Firm) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Firm, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, term string, page PageParams) ([]db_models.Firm, int64, error)
	DiscardFirm(ctx context.Context, id uuid.UUID) error

	CreatePinBalance(ctx context.Context, balance *db_models.PinBalance) error
	AvailableBalance(ctx context.Context, firmID uuid.UUID) (int64, error)
	Counters(ctx context.Context, firmID uuid.UUID) (FirmCounters, error)
}

type firmRepository struct {
	db *gorm.DB
}

func NewFirmRepository(db *gorm.DB) FirmRepository {
	return &firmRepository{db: db}
}

func (r *firmRepository) Create(ctx context.Context, firm *db_models.Firm) error {
	return r.db.WithContext(ctx).Create(firm).Error
}

func (r *firmRepository) Update(ctx context.Context, firm *db_models.Firm) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(firm).Error
}

// GetByID returns the kept firm with its detail associations preloaded, or
// nil when it does not exist (or is discarded).
func (r *firmRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Firm, error) {
	var firm db_models.Firm
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Trustees.User").
		Preload("Schedules").
		Preload("Pins").
		Preload("Posts.Reports").
		First(&firm, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &firm, nil
}

// Exists checks unscoped so callers can tell "never existed" apart from
// "already discarded".
func (r *firmRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&db_models.Firm{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *firmRepository) List(ctx context.Context, term string, page PageParams) ([]db_models.Firm, int64, error) {
	page = page.Normalized()
	group := FirmSearchGroup(term)

	count := r.db.WithContext(ctx).Model(&db_models.Firm{})
	query := r.db.WithContext(ctx).Model(&db_models.Firm{})
	if !group.Empty() {
		expr, args := group.Where()
		for _, j := range group.Joins {
			count = count.Joins(j)
			query = query.Joins(j)
		}
		// Joins can fan one firm out into several rows; count and page over
		// distinct firms only.
		count = count.Where(expr, args...).Distinct("firms.id")
		query = query.Where(expr, args...).Distinct("firms.*")
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var firms []db_models.Firm
	err := query.
		Preload("Owner").
		Preload("Trustees.User").
		Preload("Posts.Reports").
		Order("firms.created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&firms).Error
	if err != nil {
		return nil, 0, err
	}
	return firms, total, nil
}

// DiscardFirm soft deletes the firm and everything reachable only through
// it, in one transaction: trustees, flags, schedules, pin balances, posts
// (with their reports and like/dislikes), pins (with their visited
// locations), then the firm itself. Every statement runs under the kept
// scope, so re-running against discarded rows is a no-op.
func (r *firmRepository) DiscardFirm(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("firm_id = ?", id).Delete(&db_models.Trustee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("firm_id = ?", id).Delete(&db_models.Flag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("firm_id = ?", id).Delete(&db_models.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("firm_id = ?", id).Delete(&db_models.PinBalance{}).Error; err != nil {
			return err
		}

		var postIDs []uuid.UUID
		if err := tx.Model(&db_models.Post{}).Where("firm_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&db_models.Report{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&db_models.LikeDislike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("firm_id = ?", id).Delete(&db_models.Post{}).Error; err != nil {
				return err
			}
		}

		var pinIDs []uuid.UUID
		if err := tx.Model(&db_models.Pin{}).Where("firm_id = ?", id).Pluck("id", &pinIDs).Error; err != nil {
			return err
		}
		if len(pinIDs) > 0 {
			if err := tx.Where("pin_id IN ?", pinIDs).Delete(&db_models.VisitedLocation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("firm_id = ?", id).Delete(&db_models.Pin{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&db_models.Firm{}, "id = ?", id).Error
	})
}

func (r *firmRepository) CreatePinBalance(ctx context.Context, balance *db_models.PinBalance) error {
	return r.db.WithContext(ctx).Create(balance).Error
}

// AvailableBalance sums amount_in_cents over the firm's kept ledger
// entries; discarded entries no longer contribute.
func (r *firmRepository) AvailableBalance(ctx context.Context, firmID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PinBalance{}).
		Where("firm_id = ?", firmID).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Scan(&total).Error
	return total, err
}

func (r *firmRepository) Counters(ctx context.Context, firmID uuid.UUID) (FirmCounters, error) {
	var c FirmCounters

	if err := r.db.WithContext(ctx).Model(&db_models.Pin{}).
		Where("firm_id = ?", firmID).Count(&c.Pins).Error; err != nil {
		return c, err
	}
	if err := r.db.WithContext(ctx).Model(&db_models.LikeDislike{}).
		Where("is_like = ? AND post_id IN (SELECT id FROM posts WHERE firm_id = ? AND discarded_at IS NULL)", true, firmID).
		Count(&c.Likes).Error; err != nil {
		return c, err
	}
	if err := r.db.WithContext(ctx).Model(&db_models.Report{}).
		Where("post_id IN (SELECT id FROM posts WHERE firm_id = ? AND discarded_at IS NULL)", firmID).
		Count(&c.Reports).Error; err != nil {
		return c, err
	}
	err := r.db.WithContext(ctx).Model(&db_models.VisitedLocation{}).
		Where("pin_id IN (SELECT id FROM pins WHERE firm_id = ? AND discarded_at IS NULL)", firmID).
		Distinct("user_id").
		Count(&c.ReachedUsers).Error
	return c, err
}
