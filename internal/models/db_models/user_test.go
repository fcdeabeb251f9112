package db_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	return User{Username: "sam_r.01", Email: "sam@example.com", Birthday: &birthday}
}

func TestUserValidate(t *testing.T) {
	u := validUser()
	assert.Empty(t, u.Validate())
}

func TestUserValidateUsername(t *testing.T) {
	u := validUser()
	u.Username = "sam r!"
	errs := u.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid username", errs[0].Title)

	u.Username = ""
	errs = u.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid username", errs[0].Title)
}

func TestUserValidateEmail(t *testing.T) {
	u := validUser()
	u.Email = "not-an-email"
	errs := u.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid email", errs[0].Title)
}

func TestUserValidateBirthday(t *testing.T) {
	u := validUser()
	u.Birthday = nil
	errs := u.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid birthday", errs[0].Title)
}

func TestUserName(t *testing.T) {
	u := User{FirstName: "Sam", LastName: "Rivera"}
	assert.Equal(t, "Sam Rivera", u.Name())

	u = User{FirstName: "Sam"}
	assert.Equal(t, "Sam", u.Name())

	assert.Empty(t, (&User{}).Name())
}

func TestCanChangeBirthday(t *testing.T) {
	u := validUser()
	assert.True(t, u.CanChangeBirthday())

	u.UserChangedBirthday = true
	assert.False(t, u.CanChangeBirthday())
}
