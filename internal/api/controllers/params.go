package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pinpoint/internal/models/response_models"
)

// pageParams parses page/perPage query parameters, rendering a 400 errors
// document and returning ok=false when they are out of range.
func pageParams(c *gin.Context) (page, perPage int, ok bool) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("perPage", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		badRequest(c, "Invalid page number")
		return 0, 0, false
	}

	perPage, err = strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 || perPage > 100 {
		badRequest(c, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, perPage, true
}

func badRequest(c *gin.Context, title string) {
	c.JSON(http.StatusBadRequest, response_models.Document{
		Errors: []response_models.ErrorObject{{Title: title, Status: http.StatusText(http.StatusBadRequest)}},
	})
}
