package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locshare/internal/domain"
	"locshare/internal/service"
)

// UserHandler handles HTTP requests for registration and the user directory.
type UserHandler struct {
	authService      *service.AuthService
	directoryService *service.DirectoryService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *service.AuthService, directoryService *service.DirectoryService) *UserHandler {
	return &UserHandler{
		authService:      authService,
		directoryService: directoryService,
	}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Service     string `json:"service"`
}

// RatingRequest is the HTTP request body for submitting a rating.
type RatingRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Register handles POST /v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterRequest{
		PhoneNumber: req.PhoneNumber,
		Role:        domain.Role(req.Role),
		Service:     req.Service,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserBody(*user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, toUserBodies(h.directoryService.Users(c.Request.Context())))
}

// GetActive handles GET /v1/users/active
func (h *UserHandler) GetActive(c *gin.Context) {
	c.JSON(http.StatusOK, toUserBodies(h.directoryService.ActiveUsers(c.Request.Context())))
}

// AddActive handles POST /v1/users/active
func (h *UserHandler) AddActive(c *gin.Context) {
	var req UserBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.directoryService.AddActiveUser(c.Request.Context(), fromUserBody(req)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveActive handles DELETE /v1/users/active/:id
func (h *UserHandler) RemoveActive(c *gin.Context) {
	if err := h.directoryService.RemoveActiveUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateLocation handles PUT /v1/users/:id/location
func (h *UserHandler) UpdateLocation(c *gin.Context) {
	var req LocationBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.directoryService.UpdateUserLocation(c.Request.Context(), c.Param("id"), req.Latitude, req.Longitude); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitRating handles POST /v1/users/:id/rating
func (h *UserHandler) SubmitRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.directoryService.SubmitRating(c.Request.Context(), c.Param("id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserBody(*user))
}
