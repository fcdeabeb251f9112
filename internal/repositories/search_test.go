package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedTerm(t *testing.T) {
	c := checkedTerm("checked")
	require.NotNil(t, c)
	assert.True(t, *c)

	c = checkedTerm("unchecked")
	require.NotNil(t, c)
	assert.False(t, *c)

	assert.Nil(t, checkedTerm("coffee"))
	assert.Nil(t, checkedTerm(""))
	assert.Nil(t, checkedTerm("Checked"))
}

func TestFirmSearchGroupBlankTerm(t *testing.T) {
	assert.True(t, FirmSearchGroup("").Empty())
	assert.True(t, FirmSearchGroup("   ").Empty())
}

func TestFirmSearchGroupPlainTerm(t *testing.T) {
	g := FirmSearchGroup("coffee")
	require.False(t, g.Empty())

	expr, args := g.Where()

	assert.Contains(t, expr, "(CAST(firms.id AS TEXT) = ?)")
	assert.Contains(t, expr, "(firms.status = ?)")
	assert.Contains(t, expr, "(firms.name ILIKE ?)")
	assert.Contains(t, expr, "(users.email = ?)")
	assert.Contains(t, expr, "(CAST(users.last_sign_in_at AS TEXT) = ?)")
	assert.NotContains(t, expr, "firms.checked")
	assert.Equal(t, 5, strings.Count(expr, " OR ")+1)

	assert.Equal(t, []interface{}{"coffee", "coffee", "%coffee%", "coffee", "coffee"}, args)

	require.Len(t, g.Joins, 2)
	assert.Contains(t, g.Joins[0], "LEFT JOIN trustees")
	assert.Contains(t, g.Joins[0], "trustees.discarded_at IS NULL")
	assert.Contains(t, g.Joins[1], "LEFT JOIN users")
}

func TestFirmSearchGroupCheckedLiteral(t *testing.T) {
	g := FirmSearchGroup("unchecked")
	expr, args := g.Where()

	assert.Contains(t, expr, "(firms.checked = ?)")
	assert.Equal(t, false, args[len(args)-1])
}

func TestTicketSearchGroupBlankTerm(t *testing.T) {
	assert.True(t, TicketSearchGroup("").Empty())
}

func TestTicketSearchGroupCoversEveryVariant(t *testing.T) {
	g := TicketSearchGroup("sam")
	require.False(t, g.Empty())
	assert.Empty(t, g.Joins)

	expr, _ := g.Where()

	// username and email per discriminated variant
	for _, table := range []string{"users", "businesses", "admins"} {
		assert.Equal(t, 2, strings.Count(expr, "SELECT id FROM "+table+" WHERE"), table)
	}
	assert.Contains(t, expr, "support_tickets.ticketable_type = ?")
	assert.Contains(t, expr, "(support_tickets.firm_id IN (SELECT id FROM firms WHERE name ILIKE ? AND discarded_at IS NULL))")
	assert.Contains(t, expr, "(CAST(support_tickets.id AS TEXT) = ?)")
	assert.Contains(t, expr, "(support_tickets.status = ?)")
	assert.NotContains(t, expr, "support_tickets.checked")
}

func TestTicketSearchGroupVariantArgs(t *testing.T) {
	g := TicketSearchGroup("sam")
	_, args := g.Where()

	// id + status + 3 variants x 2 columns x (type, pattern) + firm name
	require.Len(t, args, 2+12+1)
	assert.Equal(t, "sam", args[0])
	assert.Equal(t, "User", args[2])
	assert.Equal(t, "%sam%", args[3])
	assert.Equal(t, "%sam%", args[len(args)-1])
}

func TestTicketSearchGroupCheckedLiteral(t *testing.T) {
	g := TicketSearchGroup("checked")
	expr, _ := g.Where()
	assert.Contains(t, expr, "(support_tickets.checked = ?)")
}
