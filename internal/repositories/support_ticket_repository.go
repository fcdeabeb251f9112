package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pinpoint/internal/models/db_models"
)

type SupportTicketRepository interface {
	Update(ctx context.Context, ticket *db_models.SupportTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.SupportTicket, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, term string, page PageParams) ([]db_models.SupportTicket, int64, error)
	ListAll(ctx context.Context, term string) ([]db_models.SupportTicket, error)
	Discard(ctx context.Context, id uuid.UUID) error

	// ResolveOwner loads the discriminated ticketable row behind a ticket.
	ResolveOwner(ctx context.Context, typ db_models.TicketableType, id uuid.UUID) (*db_models.TicketOwner, error)
}

type supportTicketRepository struct {
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) SupportTicketRepository {
	return &supportTicketRepository{db: db}
}

func (r *supportTicketRepository) Update(ctx context.Context, ticket *db_models.SupportTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *supportTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.SupportTicket, error) {
	var ticket db_models.SupportTicket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *supportTicketRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&db_models.SupportTicket{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *supportTicketRepository) List(ctx context.Context, term string, page PageParams) ([]db_models.SupportTicket, int64, error) {
	page = page.Normalized()
	group := TicketSearchGroup(term)

	count := r.db.WithContext(ctx).Model(&db_models.SupportTicket{})
	query := r.db.WithContext(ctx).Model(&db_models.SupportTicket{})
	if !group.Empty() {
		expr, args := group.Where()
		count = count.Where(expr, args...)
		query = query.Where(expr, args...)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []db_models.SupportTicket
	err := query.
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// ListAll returns every kept ticket matching the term, unpaged, for the CSV
// export.
func (r *supportTicketRepository) ListAll(ctx context.Context, term string) ([]db_models.SupportTicket, error) {
	group := TicketSearchGroup(term)
	query := r.db.WithContext(ctx).Model(&db_models.SupportTicket{})
	if !group.Empty() {
		expr, args := group.Where()
		query = query.Where(expr, args...)
	}
	var tickets []db_models.SupportTicket
	err := query.Order("created_at ASC").Find(&tickets).Error
	return tickets, err
}

func (r *supportTicketRepository) Discard(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.SupportTicket{}, "id = ?", id).Error
}

func (r *supportTicketRepository) ResolveOwner(ctx context.Context, typ db_models.TicketableType, id uuid.UUID) (*db_models.TicketOwner, error) {
	owner := db_models.TicketOwner{Type: typ, ID: id}

	var err error
	switch typ {
	case db_models.TicketableUser:
		var u db_models.User
		err = r.db.WithContext(ctx).First(&u, "id = ?", id).Error
		owner.Username, owner.Email = u.Username, u.Email
	case db_models.TicketableBusiness:
		var b db_models.Business
		err = r.db.WithContext(ctx).First(&b, "id = ?", id).Error
		owner.Username, owner.Email = b.Username, b.Email
	case db_models.TicketableAdmin:
		var a db_models.Admin
		err = r.db.WithContext(ctx).First(&a, "id = ?", id).Error
		owner.Username, owner.Email = a.Username, a.Email
	default:
		return nil, fmt.Errorf("unknown ticketable type %q", typ)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}
