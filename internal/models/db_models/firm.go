package db_models

import (
	"strings"

	"github.com/google/uuid"
)

// MaxSchedules is the number of schedule slots every firm converges to.
const MaxSchedules = 2

const (
	FirmStatusActive    = "active"
	FirmStatusInactive  = "inactive"
	FirmStatusSuspended = "suspended"
)

type Firm struct {
	BaseModel
	Name         string `gorm:"not null"`
	PhoneNumber  string `gorm:"not null"`
	About        string
	BusinessType string
	Keywords     string
	Hashtags     string

	Street string
	City   string
	State  string
	Zip    string
	Lat    float64
	Lng    float64

	Status  string `gorm:"not null;default:active;index"`
	Checked bool   `gorm:"not null;default:false"`
	Photo   string

	StripeCustomerToken  string
	StripeCardLastDigits string
	StripeCardBrand      string
	Balance              int64

	OwnerID uuid.UUID `gorm:"type:uuid;not null"`
	Owner   Business  `gorm:"foreignKey:OwnerID"`

	Trustees    []Trustee    `gorm:"foreignKey:FirmID"`
	Flags       []Flag       `gorm:"foreignKey:FirmID"`
	Posts       []Post       `gorm:"foreignKey:FirmID"`
	Schedules   []Schedule   `gorm:"foreignKey:FirmID"`
	Pins        []Pin        `gorm:"foreignKey:FirmID"`
	PinBalances []PinBalance `gorm:"foreignKey:FirmID"`
}

// Address joins the address parts the way the geocoder expects them,
// skipping blanks.
func (f *Firm) Address() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{f.Zip, f.Street, f.City, f.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Geolocated reports whether the firm carries usable coordinates. Zero is
// treated as unset, not as a real position.
func (f *Firm) Geolocated() bool {
	return f.Lat != 0 && f.Lng != 0
}

// HomePin returns the first kept pin flagged as home, or nil. At most one
// home pin is expected but this is a query-time selection, not a constraint.
func (f *Firm) HomePin() *Pin {
	for i := range f.Pins {
		if f.Pins[i].IsHome {
			return &f.Pins[i]
		}
	}
	return nil
}

func (f *Firm) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, InvalidField("name", "can't be blank"))
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		errs = append(errs, InvalidField("phone_number", "can't be blank"))
	}
	if f.Status == "" {
		errs = append(errs, InvalidField("status", "can't be blank"))
	} else if f.Status != FirmStatusActive && f.Status != FirmStatusInactive && f.Status != FirmStatusSuspended {
		errs = append(errs, InvalidField("status", "is not a valid status"))
	}
	if f.OwnerID == uuid.Nil {
		errs = append(errs, InvalidField("owner", "must exist"))
	}
	if f.About != "" && len(f.About) > 160 {
		errs = append(errs, InvalidField("about", "is too long (maximum is 160 characters)"))
	}
	if len(f.BusinessType) > 40 {
		errs = append(errs, InvalidField("business_type", "is too long (maximum is 40 characters)"))
	}
	return errs
}
