package controllers

import (
	"github.com/gin-gonic/gin"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/services"
	"pinpoint/pkg/utils"
)

type FirmsController struct {
	firmService services.FirmServiceInterface
}

func NewFirmsController(firmService services.FirmServiceInterface) *FirmsController {
	return &FirmsController{firmService: firmService}
}

// List godoc
// @Summary List firms
// @Description Paginated firm listing with optional free-text search
// @Tags Firms
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} response_models.Document
// @Router /firms [get]
func (f *FirmsController) List(c *gin.Context) {
	page, perPage, ok := pageParams(c)
	if !ok {
		return
	}

	doc, err := f.firmService.ListFirms(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

// Create renders the created firm, or an errors array with HTTP 200 when
// validation fails.
func (f *FirmsController) Create(c *gin.Context) {
	var req request_models.CreateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	doc, err := f.firmService.CreateFirm(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (f *FirmsController) Show(c *gin.Context) {
	doc, err := f.firmService.GetFirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (f *FirmsController) Update(c *gin.Context) {
	var req request_models.UpdateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	doc, err := f.firmService.UpdateFirm(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (f *FirmsController) Destroy(c *gin.Context) {
	if err := f.firmService.DiscardFirm(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}

// CreatePinBalance appends a signed ledger entry to the firm and renders
// the firm with its recomputed available balance.
func (f *FirmsController) CreatePinBalance(c *gin.Context) {
	var req request_models.CreatePinBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	doc, err := f.firmService.AddPinBalance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}
