package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pinpoint/internal/models/request_models"
	"pinpoint/internal/services"
	"pinpoint/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Login issues the admin bearer token the rest of the namespace requires.
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
