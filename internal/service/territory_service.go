package service

import (
	"context"
	"fmt"

	"territory-api/internal/geo"
	"territory-api/internal/models"
	"territory-api/internal/telemetry"
)

// TerritoryService answers territory membership and proximity queries over
// stored hubs.
type TerritoryService struct {
	repo TerritoryRepository
}

// TerritoryRepository interface for dependency injection
type TerritoryRepository interface {
	ListHubs(ctx context.Context) ([]models.BusinessHub, error)
	FindNearestHub(ctx context.Context, lat, lng float64) (*models.BusinessHub, error)
}

// NewTerritoryService creates a new territory service
func NewTerritoryService(repo TerritoryRepository) *TerritoryService {
	return &TerritoryService{repo: repo}
}

// HubsContaining returns the hubs whose configured service radius contains
// the point. Each match has its territory fields recomputed against its own
// center, so distance_from_center reflects the queried point.
func (s *TerritoryService) HubsContaining(ctx context.Context, lat, lng float64) ([]models.BusinessHub, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	hubs, err := s.repo.ListHubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list hubs: %w", err)
	}

	matches := make([]models.BusinessHub, 0)
	for _, hub := range hubs {
		if !geo.IsWithinBounds(lat, lng, &hub.Location) {
			continue
		}
		geo.RecomputeTerritory(&hub.Location, lat, lng)
		matches = append(matches, hub)
	}

	telemetry.ContainmentQueriesTotal.Inc()
	return matches, nil
}

// NearestHub finds the hub closest to the given coordinates. Returns nil
// without error when no hub is within the repository's search window.
func (s *TerritoryService) NearestHub(ctx context.Context, lat, lng float64) (*models.BusinessHub, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	hub, err := s.repo.FindNearestHub(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest hub: %w", err)
	}

	return hub, nil
}

// Distance computes the great-circle distance in kilometers between two
// validated coordinate pairs.
func (s *TerritoryService) Distance(lat1, lng1, lat2, lng2 float64) (float64, error) {
	if err := validateCoordinates(lat1, lng1); err != nil {
		return 0, err
	}
	if err := validateCoordinates(lat2, lng2); err != nil {
		return 0, err
	}

	return geo.DistanceKm(lat1, lng1, lat2, lng2), nil
}
