package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/services"
	"pinpoint/pkg/utils"
)

type SupportTicketsController struct {
	ticketService services.SupportTicketServiceInterface
}

func NewSupportTicketsController(ticketService services.SupportTicketServiceInterface) *SupportTicketsController {
	return &SupportTicketsController{ticketService: ticketService}
}

func (t *SupportTicketsController) List(c *gin.Context) {
	page, perPage, ok := pageParams(c)
	if !ok {
		return
	}

	doc, err := t.ticketService.ListTickets(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

// CSV streams the full (unpaged) filtered listing as a csv attachment.
func (t *SupportTicketsController) CSV(c *gin.Context) {
	body, filename, err := t.ticketService.ExportCSV(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", body)
}

func (t *SupportTicketsController) Show(c *gin.Context) {
	doc, err := t.ticketService.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (t *SupportTicketsController) Update(c *gin.Context) {
	var req request_models.UpdateSupportTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	doc, err := t.ticketService.UpdateTicket(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (t *SupportTicketsController) Destroy(c *gin.Context) {
	if err := t.ticketService.DiscardTicket(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
