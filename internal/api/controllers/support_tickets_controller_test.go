package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/models/response_models"
	"pinpoint/pkg/utils"
)

type stubTicketService struct {
	doc response_models.Document
	csv []byte
	err error
}

func (s *stubTicketService) ListTickets(context.Context, string, int, int) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubTicketService) GetTicket(context.Context, string) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubTicketService) UpdateTicket(context.Context, string, request_models.UpdateSupportTicketRequest) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubTicketService) DiscardTicket(context.Context, string) error {
	return s.err
}

func (s *stubTicketService) ExportCSV(context.Context, string) ([]byte, string, error) {
	return s.csv, "support_tickets-2026-09-01.csv", s.err
}

func ticketRouter(svc *stubTicketService) *gin.Engine {
	r := gin.New()
	ctrl := NewSupportTicketsController(svc)
	r.GET("/support_tickets", ctrl.List)
	r.GET("/support_tickets.csv", ctrl.CSV)
	r.GET("/support_tickets/:id", ctrl.Show)
	r.PATCH("/support_tickets/:id", ctrl.Update)
	r.DELETE("/support_tickets/:id", ctrl.Destroy)
	return r
}

func TestTicketCSVDownload(t *testing.T) {
	body := "id,query\n1,help\n"
	r := ticketRouter(&stubTicketService{csv: []byte(body)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/support_tickets.csv?search=help", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, `attachment; filename="support_tickets-2026-09-01.csv"`, w.Header().Get("Content-Disposition"))
}

func TestShowTicketNotFound(t *testing.T) {
	r := ticketRouter(&stubTicketService{err: utils.ErrTicketNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/support_tickets/unknown", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTicketRejectsMalformedBody(t *testing.T) {
	r := ticketRouter(&stubTicketService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/support_tickets/some-id", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDestroyTicketNoContent(t *testing.T) {
	r := ticketRouter(&stubTicketService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/support_tickets/some-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
