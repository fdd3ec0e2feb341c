package geo

import (
	"testing"
	"time"

	"territory-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestConsolidate_Defaults(t *testing.T) {
	rec := Consolidate(ConsolidateParams{
		Lat:              10,
		Lng:              120,
		FormattedAddress: "X",
		Administrative:   models.Administrative{},
	})

	assert.Equal(t, "X", rec.Display)
	assert.Equal(t, 10.0, rec.Coordinates.Lat)
	assert.Equal(t, 120.0, rec.Coordinates.Lng)
	assert.Equal(t, 10.0, rec.AccuracyMeters)
	assert.Equal(t, models.SourceGeocoded, rec.Source)
	assert.Equal(t, models.ValidationPending, rec.ValidationStatus)
	assert.Equal(t, 15.0, rec.Territory.RadiusKm)

	// Placeholders until the caller recomputes against a real center.
	assert.True(t, rec.Territory.IsWithinBounds)
	assert.Equal(t, 0.0, rec.Territory.DistanceFromCenter)

	assert.WithinDuration(t, time.Now(), rec.Territory.SelectedAt, time.Second)
}

func TestConsolidate_SynthesizesPlusCodeFromMunicipality(t *testing.T) {
	rec := Consolidate(ConsolidateParams{
		Lat:              14.5995,
		Lng:              120.9842,
		FormattedAddress: "Ermita, Manila",
		Administrative:   models.Administrative{Municipality: "Manila"},
	})

	assert.Equal(t, "1459+120 Manila", rec.PlusCode)
}

func TestConsolidate_SuppliedPlusCodeTakenVerbatim(t *testing.T) {
	// No validation at this layer, even for codes the grammar rejects.
	rec := Consolidate(ConsolidateParams{
		Lat:              14.5995,
		Lng:              120.9842,
		FormattedAddress: "Ermita, Manila",
		Administrative:   models.Administrative{Municipality: "Manila"},
		PlusCode:         "not-a-plus-code",
	})

	assert.Equal(t, "not-a-plus-code", rec.PlusCode)
}

func TestConsolidate_ExplicitValuesOverrideDefaults(t *testing.T) {
	rec := Consolidate(ConsolidateParams{
		Lat:               10.3157,
		Lng:               123.8854,
		FormattedAddress:  "Cebu City",
		Administrative:    models.Administrative{Municipality: "Cebu City"},
		AccuracyMeters:    3.5,
		TerritoryRadiusKm: 25,
		Source:            models.SourceGPS,
		ValidationStatus:  models.ValidationValid,
	})

	assert.Equal(t, 3.5, rec.AccuracyMeters)
	assert.Equal(t, 25.0, rec.Territory.RadiusKm)
	assert.Equal(t, models.SourceGPS, rec.Source)
	assert.Equal(t, models.ValidationValid, rec.ValidationStatus)
}

func TestConsolidate_CarriesAdministrativeHierarchy(t *testing.T) {
	admin := models.Administrative{
		Region:       "Region VII",
		Province:     "Cebu",
		Municipality: "Cebu City",
		Barangay:     "Lahug",
	}

	rec := Consolidate(ConsolidateParams{
		Lat:              10.3157,
		Lng:              123.8854,
		FormattedAddress: "Lahug, Cebu City",
		Administrative:   admin,
	})

	assert.Equal(t, admin, rec.Administrative)
	assert.Equal(t, "Lahug, Cebu City", GenerateTerritoryName(rec.Administrative))
}
