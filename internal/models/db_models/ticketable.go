package db_models

// TicketableType discriminates the polymorphic owner of a support ticket.
type TicketableType string

const (
	TicketableUser     TicketableType = "User"
	TicketableBusiness TicketableType = "Business"
	TicketableAdmin    TicketableType = "Admin"
)

func (t TicketableType) Valid() bool {
	switch t {
	case TicketableUser, TicketableBusiness, TicketableAdmin:
		return true
	}
	return false
}

// TicketableVariant maps one discriminated type to the table holding its
// rows. The search composer walks TicketableVariants instead of building
// column names from strings at run time.
type TicketableVariant struct {
	Type  TicketableType
	Table string
}

var TicketableVariants = []TicketableVariant{
	{Type: TicketableUser, Table: "users"},
	{Type: TicketableBusiness, Table: "businesses"},
	{Type: TicketableAdmin, Table: "admins"},
}
