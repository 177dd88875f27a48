package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locshare/internal/domain"
)

// ListServices handles GET /v1/services
func ListServices(c *gin.Context) {
	services := domain.Services()
	response := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		response = append(response, ServiceResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	c.JSON(http.StatusOK, response)
}
