package handler

import (
	"context"
	"errors"
	"net/http"

	"territory-api/internal/geo"
	"territory-api/internal/models"
	"territory-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationHandler handles hub location requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	SetHubLocation(ctx context.Context, hubID uuid.UUID, name string, params geo.ConsolidateParams) (*models.LocationRecord, error)
	GetHubLocation(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// SetLocationRequest is the JSON body for PUT /hubs/:id/location. Lat and
// Lng are pointers so that zero coordinates still satisfy the binding.
type SetLocationRequest struct {
	Name              string                `json:"name" binding:"required"`
	Lat               *float64              `json:"lat" binding:"required"`
	Lng               *float64              `json:"lng" binding:"required"`
	FormattedAddress  string                `json:"formatted_address" binding:"required"`
	Administrative    models.Administrative `json:"administrative"`
	PlusCode          string                `json:"plus_code"`
	AccuracyMeters    float64               `json:"accuracy_meters"`
	TerritoryRadiusKm float64               `json:"territory_radius_km"`
	Source            string                `json:"source"`
	ValidationStatus  string                `json:"validation_status"`
}

// SetLocation handles PUT /hubs/:id/location requests
func (h *LocationHandler) SetLocation(c *gin.Context) {
	hubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub id"})
		return
	}

	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.service.SetHubLocation(c.Request.Context(), hubID, req.Name, geo.ConsolidateParams{
		Lat:               *req.Lat,
		Lng:               *req.Lng,
		FormattedAddress:  req.FormattedAddress,
		Administrative:    req.Administrative,
		PlusCode:          req.PlusCode,
		AccuracyMeters:    req.AccuracyMeters,
		TerritoryRadiusKm: req.TerritoryRadiusKm,
		Source:            models.Source(req.Source),
		ValidationStatus:  models.ValidationStatus(req.ValidationStatus),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetLocation handles GET /hubs/:id/location requests
func (h *LocationHandler) GetLocation(c *gin.Context) {
	hubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hub id"})
		return
	}

	hub, err := h.service.GetHubLocation(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if hub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location found for hub"})
		return
	}

	c.JSON(http.StatusOK, hub)
}
