package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pinpoint/internal/models/db_models"
	"pinpoint/internal/models/request_models"
	"pinpoint/internal/models/response_models"
	"pinpoint/internal/repositories"
	"pinpoint/pkg/utils"
)

type SupportTicketServiceInterface interface {
	ListTickets(ctx context.Context, term string, page, perPage int) (response_models.Document, error)
	GetTicket(ctx context.Context, id string) (response_models.Document, error)
	UpdateTicket(ctx context.Context, id string, req request_models.UpdateSupportTicketRequest) (response_models.Document, error)
	DiscardTicket(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, term string) ([]byte, string, error)
}

type SupportTicketService struct {
	ticketRepo repositories.SupportTicketRepository
}

func NewSupportTicketService(ticketRepo repositories.SupportTicketRepository) SupportTicketServiceInterface {
	return &SupportTicketService{ticketRepo: ticketRepo}
}

func (s *SupportTicketService) ListTickets(ctx context.Context, term string, page, perPage int) (response_models.Document, error) {
	params := repositories.PageParams{Page: page, PerPage: perPage}.Normalized()

	tickets, total, err := s.ticketRepo.List(ctx, term, params)
	if err != nil {
		log.Error().Err(err).Msg("error listing support tickets")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	owners := s.resolveOwners(ctx, tickets)
	meta := response_models.Meta{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		TotalPages:  repositories.TotalPages(total, params.PerPage),
	}
	return response_models.TicketListDocument(tickets, owners, meta, response_models.TicketIncludes), nil
}

func (s *SupportTicketService) GetTicket(ctx context.Context, id string) (response_models.Document, error) {
	ticket, err := s.fetchTicket(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	owner, err := s.ticketRepo.ResolveOwner(ctx, ticket.TicketableType, ticket.TicketableID)
	if err != nil {
		log.Warn().Err(err).Msg("error resolving ticketable")
	}
	return response_models.TicketDocument(ticket, owner, response_models.TicketIncludes), nil
}

func (s *SupportTicketService) UpdateTicket(ctx context.Context, id string, req request_models.UpdateSupportTicketRequest) (response_models.Document, error) {
	ticket, err := s.fetchTicket(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	if req.Status != nil {
		ticket.Status = *req.Status
	}
	if req.Checked != nil {
		ticket.Checked = *req.Checked
	}

	if errs := ticket.Validate(); len(errs) > 0 {
		return response_models.ValidationErrors(errs), nil
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		log.Error().Err(err).Msg("error updating support ticket")
		return response_models.Document{}, utils.ErrDatabaseError
	}
	return response_models.TicketDocument(ticket, nil, response_models.NoIncludes), nil
}

func (s *SupportTicketService) DiscardTicket(ctx context.Context, id string) error {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrTicketNotFound
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching support ticket")
		return utils.ErrDatabaseError
	}
	if ticket == nil {
		exists, err := s.ticketRepo.Exists(ctx, ticketID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if exists {
			return nil
		}
		return utils.ErrTicketNotFound
	}

	if err := s.ticketRepo.Discard(ctx, ticketID); err != nil {
		log.Error().Err(err).Msg("error discarding support ticket")
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SupportTicketService) ExportCSV(ctx context.Context, term string) ([]byte, string, error) {
	tickets, err := s.ticketRepo.ListAll(ctx, term)
	if err != nil {
		log.Error().Err(err).Msg("error exporting support tickets")
		return nil, "", utils.ErrDatabaseError
	}

	owners := s.resolveOwners(ctx, tickets)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "query", "status", "checked",
		"ticketable_type", "ticketable_username", "ticketable_email", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for i := range tickets {
		t := &tickets[i]
		username, email := "", ""
		if o := owners[t.ID.String()]; o != nil {
			username, email = o.Username, o.Email
		}
		row := []string{
			t.ID.String(),
			t.Query,
			t.Status,
			strconv.FormatBool(t.Checked),
			string(t.TicketableType),
			username,
			email,
			strconv.FormatInt(t.CreatedAt, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("support_tickets-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// resolveOwners loads each ticket's discriminated owner; unresolvable
// owners are skipped rather than failing the listing.
func (s *SupportTicketService) resolveOwners(ctx context.Context, tickets []db_models.SupportTicket) map[string]*db_models.TicketOwner {
	owners := make(map[string]*db_models.TicketOwner, len(tickets))
	for i := range tickets {
		t := &tickets[i]
		owner, err := s.ticketRepo.ResolveOwner(ctx, t.TicketableType, t.TicketableID)
		if err != nil {
			log.Warn().Err(err).Str("ticket_id", t.ID.String()).Msg("error resolving ticketable")
			continue
		}
		if owner != nil {
			owners[t.ID.String()] = owner
		}
	}
	return owners
}

func (s *SupportTicketService) fetchTicket(ctx context.Context, id string) (*db_models.SupportTicket, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTicketNotFound
	}
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching support ticket")
		return nil, utils.ErrDatabaseError
	}
	if ticket == nil {
		return nil, utils.ErrTicketNotFound
	}
	return ticket, nil
}
