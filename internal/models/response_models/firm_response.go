package response_models

import (
	"github.com/google/uuid"

	"pinpoint/internal/models/db_models"
)

func FirmResource(f *db_models.Firm) Resource {
	attrs := map[string]interface{}{
		"name":          f.Name,
		"phone_number":  f.PhoneNumber,
		"about":         f.About,
		"business_type": f.BusinessType,
		"keywords":      f.Keywords,
		"hashtags":      f.Hashtags,
		"street":        f.Street,
		"city":          f.City,
		"state":         f.State,
		"zip":           f.Zip,
		"lat":           f.Lat,
		"lng":           f.Lng,
		"status":        f.Status,
		"checked":       f.Checked,
		"photo":         f.Photo,
		"balance":       f.Balance,
		"geolocated":    f.Geolocated(),
		"created_at":    f.CreatedAt,
		"updated_at":    f.UpdatedAt,
	}

	rels := map[string]Relationship{
		"owner": {Data: ResourceID{Type: "businesses", ID: f.OwnerID.String()}},
	}
	if len(f.Trustees) > 0 {
		users := make([]ResourceID, 0, len(f.Trustees))
		for i := range f.Trustees {
			users = append(users, ResourceID{Type: "users", ID: f.Trustees[i].UserID.String()})
		}
		rels["users"] = Relationship{Data: users}
	}
	if len(f.Pins) > 0 {
		pins := make([]ResourceID, 0, len(f.Pins))
		for i := range f.Pins {
			pins = append(pins, ResourceID{Type: "pins", ID: f.Pins[i].ID.String()})
		}
		rels["pins"] = Relationship{Data: pins}
	}
	if len(f.Posts) > 0 {
		posts := make([]ResourceID, 0, len(f.Posts))
		for i := range f.Posts {
			posts = append(posts, ResourceID{Type: "posts", ID: f.Posts[i].ID.String()})
		}
		rels["posts"] = Relationship{Data: posts}
	}

	return Resource{
		Type:          "firms",
		ID:            f.ID.String(),
		Attributes:    attrs,
		Relationships: rels,
	}
}

func PinResource(p *db_models.Pin) Resource {
	return Resource{
		Type: "pins",
		ID:   p.ID.String(),
		Attributes: map[string]interface{}{
			"lat":     p.Lat,
			"lng":     p.Lng,
			"status":  p.Status,
			"is_home": p.IsHome,
		},
	}
}

func PostResource(p *db_models.Post) Resource {
	return Resource{
		Type: "posts",
		ID:   p.ID.String(),
		Attributes: map[string]interface{}{
			"body":       p.Body,
			"created_at": p.CreatedAt,
		},
	}
}

func ReportResource(r *db_models.Report) Resource {
	return Resource{
		Type: "reports",
		ID:   r.ID.String(),
		Attributes: map[string]interface{}{
			"reason": r.Reason,
		},
	}
}

func BusinessResource(b *db_models.Business) Resource {
	return Resource{
		Type: "businesses",
		ID:   b.ID.String(),
		Attributes: map[string]interface{}{
			"username": b.Username,
			"email":    b.Email,
		},
	}
}

// firmIncluded assembles the included resources for one firm according to
// the requested include set. Associations must already be preloaded; absent
// ones are simply skipped.
func firmIncluded(f *db_models.Firm, inc IncludeSet) []Resource {
	if inc == NoIncludes {
		return nil
	}
	var included []Resource

	if f.Owner.ID != uuid.Nil {
		included = append(included, BusinessResource(&f.Owner))
	}
	for i := range f.Trustees {
		if u := &f.Trustees[i].User; u.ID != uuid.Nil {
			included = append(included, UserResource(u))
		}
	}
	for i := range f.Posts {
		included = append(included, PostResource(&f.Posts[i]))
		for j := range f.Posts[i].Reports {
			included = append(included, ReportResource(&f.Posts[i].Reports[j]))
		}
	}
	if inc == FirmDetailIncludes {
		for i := range f.Pins {
			included = append(included, PinResource(&f.Pins[i]))
		}
	}
	return included
}

func FirmDocument(f *db_models.Firm, inc IncludeSet) Document {
	return Document{
		Data:     FirmResource(f),
		Included: firmIncluded(f, inc),
	}
}

func FirmListDocument(firms []db_models.Firm, meta Meta, inc IncludeSet) Document {
	data := make([]Resource, 0, len(firms))
	var included []Resource
	for i := range firms {
		data = append(data, FirmResource(&firms[i]))
		included = append(included, firmIncluded(&firms[i], inc)...)
	}
	return Document{Data: data, Meta: &meta, Included: included}
}
