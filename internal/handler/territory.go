package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"territory-api/internal/models"
	"territory-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TerritoryHandler handles territory membership and proximity requests
type TerritoryHandler struct {
	service TerritoryService
}

// Service interface for dependency injection
type TerritoryService interface {
	HubsContaining(ctx context.Context, lat, lng float64) ([]models.BusinessHub, error)
	NearestHub(ctx context.Context, lat, lng float64) (*models.BusinessHub, error)
	Distance(lat1, lng1, lat2, lng2 float64) (float64, error)
}

// NewTerritoryHandler creates a new territory handler
func NewTerritoryHandler(svc TerritoryService) *TerritoryHandler {
	return &TerritoryHandler{service: svc}
}

func parseCoordinate(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter '" + name + "'"})
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " format"})
		return 0, false
	}

	return v, true
}

// HubsContaining handles GET /hubs/containing requests
func (h *TerritoryHandler) HubsContaining(c *gin.Context) {
	lat, ok := parseCoordinate(c, "lat")
	if !ok {
		return
	}
	lng, ok := parseCoordinate(c, "lng")
	if !ok {
		return
	}

	hubs, err := h.service.HubsContaining(c.Request.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, hubs)
}

// NearestHub handles GET /hubs/nearest requests
func (h *TerritoryHandler) NearestHub(c *gin.Context) {
	lat, ok := parseCoordinate(c, "lat")
	if !ok {
		return
	}
	lng, ok := parseCoordinate(c, "lng")
	if !ok {
		return
	}

	hub, err := h.service.NearestHub(c.Request.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if hub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hub found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, hub)
}

// Distance handles GET /distance requests
func (h *TerritoryHandler) Distance(c *gin.Context) {
	lat1, ok := parseCoordinate(c, "lat1")
	if !ok {
		return
	}
	lng1, ok := parseCoordinate(c, "lng1")
	if !ok {
		return
	}
	lat2, ok := parseCoordinate(c, "lat2")
	if !ok {
		return
	}
	lng2, ok := parseCoordinate(c, "lng2")
	if !ok {
		return
	}

	d, err := h.service.Distance(lat1, lng1, lat2, lng2)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"distance_km": d})
}
