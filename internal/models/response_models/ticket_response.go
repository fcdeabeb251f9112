package response_models

import (
	"strings"

	"pinpoint/internal/models/db_models"
)

func TicketResource(t *db_models.SupportTicket) Resource {
	rels := map[string]Relationship{
		"ticketable": {Data: ResourceID{
			Type: ticketableResourceType(t.TicketableType),
			ID:   t.TicketableID.String(),
		}},
	}
	if t.FirmID != nil {
		rels["firm"] = Relationship{Data: ResourceID{Type: "firms", ID: t.FirmID.String()}}
	}
	return Resource{
		Type: "support_tickets",
		ID:   t.ID.String(),
		Attributes: map[string]interface{}{
			"query":      t.Query,
			"status":     t.Status,
			"checked":    t.Checked,
			"created_at": t.CreatedAt,
		},
		Relationships: rels,
	}
}

func TicketOwnerResource(o *db_models.TicketOwner) Resource {
	return Resource{
		Type: ticketableResourceType(o.Type),
		ID:   o.ID.String(),
		Attributes: map[string]interface{}{
			"username": o.Username,
			"email":    o.Email,
		},
	}
}

func ticketableResourceType(t db_models.TicketableType) string {
	switch t {
	case db_models.TicketableBusiness:
		return "businesses"
	case db_models.TicketableAdmin:
		return "admins"
	default:
		return strings.ToLower(string(t)) + "s"
	}
}

func TicketDocument(t *db_models.SupportTicket, owner *db_models.TicketOwner, inc IncludeSet) Document {
	doc := Document{Data: TicketResource(t)}
	if inc == TicketIncludes && owner != nil {
		doc.Included = []Resource{TicketOwnerResource(owner)}
	}
	return doc
}

func TicketListDocument(tickets []db_models.SupportTicket, owners map[string]*db_models.TicketOwner, meta Meta, inc IncludeSet) Document {
	data := make([]Resource, 0, len(tickets))
	var included []Resource
	for i := range tickets {
		t := &tickets[i]
		data = append(data, TicketResource(t))
		if inc == TicketIncludes {
			if o := owners[t.ID.String()]; o != nil {
				included = append(included, TicketOwnerResource(o))
			}
		}
	}
	return Document{Data: data, Meta: &meta, Included: included}
}
