package geo

import (
	"time"

	"territory-api/internal/models"
)

// Defaults applied by Consolidate when the corresponding parameter is unset.
const (
	DefaultAccuracyMeters    = 10.0
	DefaultTerritoryRadiusKm = 15.0
)

// ConsolidateParams carries raw geocoder or map-picker output used to build a
// canonical LocationRecord. Lat, Lng, FormattedAddress and Administrative are
// required; zero values for the remaining fields select defaults.
type ConsolidateParams struct {
	Lat               float64
	Lng               float64
	FormattedAddress  string
	Administrative    models.Administrative
	PlusCode          string
	AccuracyMeters    float64
	TerritoryRadiusKm float64
	Source            models.Source
	ValidationStatus  models.ValidationStatus
}

// Consolidate builds a fully populated LocationRecord from raw input. A
// supplied plus code is taken verbatim without validation; callers wanting
// the grammar enforced run IsValidPlusCode separately. When absent, one is
// synthesized from the coordinates and municipality.
//
// The territory fields is_within_bounds and distance_from_center start as
// placeholders (true, 0): the consolidator does not know which center the
// record will later be compared against. RecomputeTerritory fills them in.
//
// Pure transformation, safe to call repeatedly; does not mutate its input.
func Consolidate(params ConsolidateParams) models.LocationRecord {
	plusCode := params.PlusCode
	if plusCode == "" {
		plusCode = GeneratePlusCode(params.Lat, params.Lng, params.Administrative.Municipality)
	}

	accuracy := params.AccuracyMeters
	if accuracy <= 0 {
		accuracy = DefaultAccuracyMeters
	}

	source := params.Source
	if source == "" {
		source = models.SourceGeocoded
	}

	status := params.ValidationStatus
	if status == "" {
		status = models.ValidationPending
	}

	radius := params.TerritoryRadiusKm
	if radius == 0 {
		radius = DefaultTerritoryRadiusKm
	}

	return models.LocationRecord{
		Display:  params.FormattedAddress,
		PlusCode: plusCode,
		Coordinates: models.Coordinates{
			Lat: params.Lat,
			Lng: params.Lng,
		},
		AccuracyMeters:   accuracy,
		Source:           source,
		ValidationStatus: status,
		Administrative:   params.Administrative,
		Territory: models.Territory{
			RadiusKm:           radius,
			IsWithinBounds:     true,
			DistanceFromCenter: 0,
			SelectedAt:         time.Now(),
		},
	}
}
