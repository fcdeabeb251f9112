package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/services"
	"pinpoint/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{userService: userService}
}

func (u *UsersController) List(c *gin.Context) {
	page, perPage, ok := pageParams(c)
	if !ok {
		return
	}

	doc, err := u.userService.ListUsers(c.Request.Context(), page, perPage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (u *UsersController) CSV(c *gin.Context) {
	body, filename, err := u.userService.ExportCSV(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", body)
}

func (u *UsersController) Show(c *gin.Context) {
	doc, err := u.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (u *UsersController) Update(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	doc, err := u.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondDocument(c, doc)
}

func (u *UsersController) Destroy(c *gin.Context) {
	if err := u.userService.DiscardUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
