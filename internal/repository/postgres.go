package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"territory-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists business hubs and their location records in PostgreSQL.
// The full location record lives in a JSONB column; the coordinates are
// duplicated into a PostGIS point so spatial queries stay on the index.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SaveHubLocation upserts the hub row with its canonical location record.
func (r *Repository) SaveHubLocation(ctx context.Context, hubID uuid.UUID, name string, rec models.LocationRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("repository: failed to encode location record: %w", err)
	}

	sql := `
		INSERT INTO business_hubs (id, name, location, geom)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			geom = EXCLUDED.geom
	`

	_, err = r.db.Exec(ctx, sql, hubID, name, string(doc), rec.Coordinates.Lng, rec.Coordinates.Lat)
	if err != nil {
		return fmt.Errorf("repository: failed to save hub location: %w", err)
	}

	return nil
}

// GetHubLocation loads a hub with its location record. Returns nil without
// error when the hub does not exist.
func (r *Repository) GetHubLocation(ctx context.Context, hubID uuid.UUID) (*models.BusinessHub, error) {
	sql := `SELECT id, name, location FROM business_hubs WHERE id = $1`

	var hub models.BusinessHub
	var doc []byte
	err := r.db.QueryRow(ctx, sql, hubID).Scan(&hub.ID, &hub.Name, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query hub: %w", err)
	}

	if err := json.Unmarshal(doc, &hub.Location); err != nil {
		return nil, fmt.Errorf("repository: failed to decode location record: %w", err)
	}

	return &hub, nil
}

// ListHubs returns every hub with its location record, ordered by name.
func (r *Repository) ListHubs(ctx context.Context) ([]models.BusinessHub, error) {
	sql := `SELECT id, name, location FROM business_hubs ORDER BY name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list hubs: %w", err)
	}
	defer rows.Close()

	var hubs []models.BusinessHub
	for rows.Next() {
		var hub models.BusinessHub
		var doc []byte
		if err := rows.Scan(&hub.ID, &hub.Name, &doc); err != nil {
			return nil, fmt.Errorf("repository: failed to scan hub: %w", err)
		}
		if err := json.Unmarshal(doc, &hub.Location); err != nil {
			return nil, fmt.Errorf("repository: failed to decode location record: %w", err)
		}
		hubs = append(hubs, hub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return hubs, nil
}

// FindNearestHub performs a spatial query for the hub closest to the given
// coordinates, searching within a 50km window. Returns nil without error
// when no hub is near enough.
func (r *Repository) FindNearestHub(ctx context.Context, lat, lng float64) (*models.BusinessHub, error) {
	sql := `
		SELECT id, name, location
		FROM business_hubs
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326), 50000) -- Within 50km
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)
		LIMIT 1
	`

	var hub models.BusinessHub
	var doc []byte
	err := r.db.QueryRow(ctx, sql, lat, lng).Scan(&hub.ID, &hub.Name, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	if err := json.Unmarshal(doc, &hub.Location); err != nil {
		return nil, fmt.Errorf("repository: failed to decode location record: %w", err)
	}

	return &hub, nil
}
