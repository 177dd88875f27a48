package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"locshare/internal/geolocation"
	"locshare/internal/service"
)

// LocationHandler handles HTTP requests for the location table and the map list.
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// UpdateLocationRequest is the HTTP request body for pushing the caller's position.
// Coordinates are omitted when the client could not get a fix.
type UpdateLocationRequest struct {
	PhoneNumber string   `json:"phone_number"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Update handles POST /v1/locations
func (h *LocationHandler) Update(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var provider geolocation.Provider = geolocation.Unavailable{}
	if req.Latitude != nil && req.Longitude != nil {
		provider = geolocation.Fixed{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	if err := h.locationService.UpdateLocation(c.Request.Context(), req.PhoneNumber, provider); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAll handles GET /v1/locations
func (h *LocationHandler) GetAll(c *gin.Context) {
	records, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]LocationRecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, toRecordResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

// GetSubscribed handles GET /v1/locations/subscribed?phone_number=&limit=
func (h *LocationHandler) GetSubscribed(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, service.ErrInvalidLimit)
			return
		}
		limit = n
	}

	users, err := h.locationService.SubscribedUsers(c.Request.Context(), c.Query("phone_number"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]SubscribedUserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toSubscribedResponse(u))
	}

	c.JSON(http.StatusOK, response)
}
