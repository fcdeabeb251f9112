package db_models

import "github.com/google/uuid"

// PinBalance is one signed ledger entry of a firm's pin budget. The firm's
// available balance is the sum of amount_in_cents over its kept entries;
// discarded entries no longer count.
type PinBalance struct {
	BaseModel
	FirmID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountInCents int64     `gorm:"not null"`
	Comment       string
}

func (p *PinBalance) Validate() []FieldError {
	var errs []FieldError
	if p.AmountInCents == 0 {
		errs = append(errs, InvalidField("amount_in_cents", "can't be zero"))
	}
	return errs
}
