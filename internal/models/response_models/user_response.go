package response_models

import (
	"pinpoint/internal/models/db_models"
)

// UserResource deliberately omits credentials, provider tokens and the
// discard timestamp; can_change_birthday is derived for clients.
func UserResource(u *db_models.User) Resource {
	var birthday interface{}
	if u.Birthday != nil {
		birthday = u.Birthday.Format("2006-01-02")
	}
	return Resource{
		Type: "users",
		ID:   u.ID.String(),
		Attributes: map[string]interface{}{
			"username":            u.Username,
			"email":               u.Email,
			"first_name":          u.FirstName,
			"last_name":           u.LastName,
			"name":                u.Name(),
			"phone":               u.Phone,
			"photo":               u.Photo,
			"birthday":            birthday,
			"can_change_birthday": u.CanChangeBirthday(),
			"lat":                 u.Lat,
			"lng":                 u.Lng,
			"status":              u.Status,
			"blocked":             u.Blocked,
		},
	}
}

func UserDocument(u *db_models.User) Document {
	return Document{Data: UserResource(u)}
}

func UserListDocument(users []db_models.User, meta Meta) Document {
	data := make([]Resource, 0, len(users))
	for i := range users {
		data = append(data, UserResource(&users[i]))
	}
	return Document{Data: data, Meta: &meta}
}
