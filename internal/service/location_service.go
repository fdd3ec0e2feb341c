package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"territory-api/internal/geo"
	"territory-api/internal/models"
	"territory-api/internal/telemetry"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCoordinates marks range or finiteness violations on input
// coordinates so the transport layer can answer with a client error.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// LocationService contains the core business logic for creating and reading
// canonical hub location records.
type LocationService struct {
	repo  LocationRepository
	cache HubCache
}

// LocationRepository interface for dependency injection
type LocationRepository interface {
	SaveHubLocation(ctx context.Context, hubID uuid.UUID, name string, rec models.LocationRecord) error
	GetHubLocation(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error)
}

// HubCache interface for dependency injection. A nil cache disables caching.
type HubCache interface {
	Get(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error)
	Set(ctx context.Context, hub *models.BusinessHub) error
	Invalidate(ctx context.Context, hubID uuid.UUID) error
}

// NewLocationService creates a new location service. cache may be nil.
func NewLocationService(repo LocationRepository, cache HubCache) *LocationService {
	return &LocationService{repo: repo, cache: cache}
}

// SetHubLocation validates the raw coordinates, consolidates them into a
// canonical record and persists it against the hub.
func (s *LocationService) SetHubLocation(ctx context.Context, hubID uuid.UUID, name string, params geo.ConsolidateParams) (*models.LocationRecord, error) {
	if err := validateCoordinates(params.Lat, params.Lng); err != nil {
		return nil, err
	}

	rec := geo.Consolidate(params)

	if err := s.repo.SaveHubLocation(ctx, hubID, name, rec); err != nil {
		return nil, fmt.Errorf("service: failed to save hub location: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, hubID); err != nil {
			log.Warn().Err(err).Str("hub_id", hubID.String()).Msg("cache invalidation failed")
		}
	}

	telemetry.ConsolidationsTotal.Inc()
	return &rec, nil
}

// GetHubLocation reads a hub, from the cache when possible. Returns nil
// without error when the hub does not exist.
func (s *LocationService) GetHubLocation(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error) {
	if s.cache != nil {
		hub, err := s.cache.Get(ctx, hubID)
		if err != nil {
			log.Warn().Err(err).Str("hub_id", hubID.String()).Msg("cache read failed")
		} else if hub != nil {
			telemetry.CacheHitsTotal.Inc()
			return hub, nil
		}
	}

	hub, err := s.repo.GetHubLocation(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get hub location: %w", err)
	}
	if hub == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, hub); err != nil {
			log.Warn().Err(err).Str("hub_id", hubID.String()).Msg("cache write failed")
		}
	}

	return hub, nil
}

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("service: invalid latitude %f: %w", lat, ErrInvalidCoordinates)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("service: invalid longitude %f: %w", lng, ErrInvalidCoordinates)
	}
	return nil
}
