package db_models

import (
	"regexp"
	"strings"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.]*$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type User struct {
	BaseModel
	Username  string `gorm:"not null;uniqueIndex"`
	Email     string `gorm:"not null;uniqueIndex"`
	FirstName string
	LastName  string
	Phone     string
	Photo     string

	Birthday *time.Time
	// Set once the birthday has ever been changed after creation; clients
	// use the inverse as can_change_birthday.
	UserChangedBirthday bool `gorm:"not null;default:false"`

	Lat    float64
	Lng    float64
	Status string `gorm:"not null;default:active"`

	Blocked      bool `gorm:"not null;default:false"`
	PasswordHash string
	LastSignInAt *time.Time

	Alerts           []Alert           `gorm:"foreignKey:UserID"`
	Views            []View            `gorm:"foreignKey:UserID"`
	Swipes           []Swipe           `gorm:"foreignKey:UserID"`
	VisitedLocations []VisitedLocation `gorm:"foreignKey:UserID"`
	LikeDislikes     []LikeDislike     `gorm:"foreignKey:UserID"`
	Reports          []Report          `gorm:"foreignKey:UserID"`
}

func (u *User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CanChangeBirthday is true until the first post-creation birthday change.
func (u *User) CanChangeBirthday() bool {
	return !u.UserChangedBirthday
}

func (u *User) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(u.Username) == "" {
		errs = append(errs, InvalidField("username", "can't be blank"))
	} else if !usernameRe.MatchString(u.Username) {
		errs = append(errs, InvalidField("username", "only letters, digits, underscore and dot are allowed"))
	}
	if strings.TrimSpace(u.Email) == "" {
		errs = append(errs, InvalidField("email", "can't be blank"))
	} else if !emailRe.MatchString(u.Email) {
		errs = append(errs, InvalidField("email", "is not a valid email address"))
	}
	if u.Birthday == nil {
		errs = append(errs, InvalidField("birthday", "can't be blank"))
	}
	return errs
}
