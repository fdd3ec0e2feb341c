package models

import (
	"time"

	"github.com/google/uuid"
)

// Source records where a location's coordinates came from.
type Source string

const (
	SourceUserSelection Source = "user_selection"
	SourceGeocoded      Source = "geocoded"
	SourceGPS           Source = "gps"
)

// ValidationStatus tracks the review state of a location record.
type ValidationStatus string

const (
	ValidationPending     ValidationStatus = "pending"
	ValidationValid       ValidationStatus = "valid"
	ValidationInvalid     ValidationStatus = "invalid"
	ValidationNeedsReview ValidationStatus = "needs_review"
)

// Coordinates is a point in decimal degrees, lat in [-90,90], lng in [-180,180].
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Administrative holds the Philippine addressing hierarchy for a location.
// An empty string means the level is unknown. Struct order is not display
// order; territory labels are built barangay, district, municipality.
type Administrative struct {
	Region       string `json:"region,omitempty"`
	Province     string `json:"province,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Barangay     string `json:"barangay,omitempty"`
	District     string `json:"district,omitempty"`
	Zone         string `json:"zone,omitempty"`
}

// Territory describes the service radius configured around a hub's center.
// A RadiusKm of zero or less means no territory is configured.
// DistanceFromCenter and IsWithinBounds hold placeholder values until
// recomputed against a concrete reference point.
type Territory struct {
	RadiusKm           float64        `json:"radius_km"`
	IsWithinBounds     bool           `json:"is_within_bounds"`
	DistanceFromCenter float64        `json:"distance_from_center"`
	Boundaries         map[string]any `json:"boundaries,omitempty"`
	SelectedAt         time.Time      `json:"selected_at"`
}

// LocationRecord is the canonical location document stored against a hub,
// combining the formatted address, coordinates, administrative hierarchy and
// territory configuration.
type LocationRecord struct {
	Display          string           `json:"display"`
	PlusCode         string           `json:"plus_code,omitempty"`
	Coordinates      Coordinates      `json:"coordinates"`
	AccuracyMeters   float64          `json:"accuracy_meters"`
	Source           Source           `json:"source"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	Administrative   Administrative   `json:"administrative"`
	Territory        Territory        `json:"territory"`
}

// BusinessHub is a municipality-level franchise entity with a service
// territory around its location.
type BusinessHub struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Location LocationRecord `json:"location"`
}
