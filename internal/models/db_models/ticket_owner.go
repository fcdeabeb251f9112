package db_models

import "github.com/google/uuid"

// TicketOwner is the resolved ticketable of a support ticket: whichever of
// User/Business/Admin the discriminator points at, projected down to the
// columns the console displays and searches.
type TicketOwner struct {
	Type     TicketableType
	ID       uuid.UUID
	Username string
	Email    string
}
