package repositories

import (
	"strings"

	"pinpoint/internal/models/db_models"
)

// SearchGroup is one disjunctive predicate group built from a free-text
// search term. Joins are applied first, then the OR-joined conditions; an
// empty group means "no filter".
type SearchGroup struct {
	Joins []string
	Exprs []string
	Args  []interface{}
}

func (g *SearchGroup) or(expr string, args ...interface{}) {
	g.Exprs = append(g.Exprs, expr)
	g.Args = append(g.Args, args...)
}

func (g SearchGroup) Empty() bool {
	return len(g.Exprs) == 0
}

// Where renders the group as a single parenthesized OR clause.
func (g SearchGroup) Where() (string, []interface{}) {
	wrapped := make([]string, 0, len(g.Exprs))
	for _, e := range g.Exprs {
		wrapped = append(wrapped, "("+e+")")
	}
	return strings.Join(wrapped, " OR "), g.Args
}

// checkedTerm maps the literal inputs "checked"/"unchecked" to a boolean
// constraint. Any other term contributes no checked predicate at all, so it
// can never empty out the result set on its own.
func checkedTerm(term string) *bool {
	switch term {
	case "checked":
		v := true
		return &v
	case "unchecked":
		v := false
		return &v
	}
	return nil
}

// FirmSearchGroup matches a term against firm id, status, name (substring)
// and, across the trustee-linked users, email and last sign-in timestamp
// (exact), plus the checked/unchecked literal mapping. Joined rows are
// deduplicated by the caller before paging.
func FirmSearchGroup(term string) SearchGroup {
	var g SearchGroup
	if strings.TrimSpace(term) == "" {
		return g
	}

	g.Joins = []string{
		"LEFT JOIN trustees ON trustees.firm_id = firms.id AND trustees.discarded_at IS NULL",
		"LEFT JOIN users ON users.id = trustees.user_id AND users.discarded_at IS NULL",
	}

	g.or("CAST(firms.id AS TEXT) = ?", term)
	g.or("firms.status = ?", term)
	g.or("firms.name ILIKE ?", "%"+term+"%")
	g.or("users.email = ?", term)
	g.or("CAST(users.last_sign_in_at AS TEXT) = ?", term)
	if c := checkedTerm(term); c != nil {
		g.or("firms.checked = ?", *c)
	}
	return g
}

// TicketSearchGroup matches a term against ticket id and status, the
// checked/unchecked literal, the owning firm's name (substring), and the
// username/email of the polymorphic ticketable across every discriminated
// variant. Variant tables come from the typed TicketableVariants map, never
// from request input.
func TicketSearchGroup(term string) SearchGroup {
	var g SearchGroup
	if strings.TrimSpace(term) == "" {
		return g
	}

	pattern := "%" + term + "%"

	g.or("CAST(support_tickets.id AS TEXT) = ?", term)
	g.or("support_tickets.status = ?", term)
	if c := checkedTerm(term); c != nil {
		g.or("support_tickets.checked = ?", *c)
	}

	for _, v := range db_models.TicketableVariants {
		for _, col := range []string{"username", "email"} {
			g.or(
				"support_tickets.ticketable_type = ? AND support_tickets.ticketable_id IN "+
					"(SELECT id FROM "+v.Table+" WHERE "+col+" ILIKE ? AND discarded_at IS NULL)",
				string(v.Type), pattern,
			)
		}
	}

	g.or("support_tickets.firm_id IN (SELECT id FROM firms WHERE name ILIKE ? AND discarded_at IS NULL)", pattern)
	return g
}
