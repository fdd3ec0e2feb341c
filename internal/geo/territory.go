package geo

import (
	"strings"

	"territory-api/internal/models"
)

// IsWithinBounds reports whether the point falls inside the record's service
// radius. A radius of zero or less means no territory is configured, so
// nothing is within bounds, not even the record's own center. The boundary
// itself is inclusive: a point at exactly the radius is inside.
func IsWithinBounds(pointLat, pointLng float64, rec *models.LocationRecord) bool {
	if rec == nil || rec.Territory.RadiusKm <= 0 {
		return false
	}
	distance := DistanceKm(pointLat, pointLng, rec.Coordinates.Lat, rec.Coordinates.Lng)
	return distance <= rec.Territory.RadiusKm
}

// RecomputeTerritory rewrites distance_from_center and is_within_bounds
// against a concrete reference center. Consolidate leaves both fields as
// placeholders because no center is known at construction time.
func RecomputeTerritory(rec *models.LocationRecord, centerLat, centerLng float64) {
	distance := DistanceKm(rec.Coordinates.Lat, rec.Coordinates.Lng, centerLat, centerLng)
	rec.Territory.DistanceFromCenter = distance
	rec.Territory.IsWithinBounds = rec.Territory.RadiusKm > 0 && distance <= rec.Territory.RadiusKm
}

// GenerateTerritoryName builds a display label from the administrative
// hierarchy: barangay, district, municipality, in that fixed order, skipping
// empty fields. The order is part of the output contract.
func GenerateTerritoryName(admin models.Administrative) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{admin.Barangay, admin.District, admin.Municipality} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Territory"
	}
	return strings.Join(parts, ", ")
}
