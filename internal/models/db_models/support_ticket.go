package db_models

import (
	"strings"

	"github.com/google/uuid"
)

const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
)

// SupportTicket is owned polymorphically by a User, Business or Admin
// (the "ticketable"), and optionally references the firm it is about.
type SupportTicket struct {
	BaseModel
	Query   string `gorm:"type:text;not null"`
	Status  string `gorm:"not null;default:open;index"`
	Checked bool   `gorm:"not null;default:false"`

	TicketableType TicketableType `gorm:"not null;index:idx_ticketable"`
	TicketableID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_ticketable"`

	FirmID *uuid.UUID `gorm:"type:uuid"`
	Firm   *Firm      `gorm:"foreignKey:FirmID"`
}

func (t *SupportTicket) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(t.Query) == "" {
		errs = append(errs, InvalidField("query", "can't be blank"))
	}
	if !t.TicketableType.Valid() {
		errs = append(errs, InvalidField("ticketable", "must be a user, business or admin"))
	}
	if t.TicketableID == uuid.Nil {
		errs = append(errs, InvalidField("ticketable", "must exist"))
	}
	return errs
}
