//go:build integration

package repository

import (
	"context"
	"testing"

	"territory-api/internal/geo"
	"territory-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	_, err = pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE business_hubs (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location JSONB NOT NULL,
			geom GEOGRAPHY(POINT, 4326)
		);

		CREATE INDEX business_hubs_geom_idx ON business_hubs USING GIST (geom);
	`)
	require.NoError(t, err)

	return pool
}

func seedHub(t *testing.T, repo *Repository, name string, lat, lng, radiusKm float64) uuid.UUID {
	t.Helper()

	rec := geo.Consolidate(geo.ConsolidateParams{
		Lat:               lat,
		Lng:               lng,
		FormattedAddress:  name,
		Administrative:    models.Administrative{Municipality: name},
		TerritoryRadiusKm: radiusKm,
	})

	hubID := uuid.New()
	require.NoError(t, repo.SaveHubLocation(context.Background(), hubID, name, rec))
	return hubID
}

func TestRepository_SaveAndGetHubLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	hubID := seedHub(t, repo, "Manila", 14.5995, 120.9842, 15)

	hub, err := repo.GetHubLocation(ctx, hubID)
	require.NoError(t, err)
	require.NotNil(t, hub)

	assert.Equal(t, hubID, hub.ID)
	assert.Equal(t, "Manila", hub.Name)
	assert.Equal(t, 14.5995, hub.Location.Coordinates.Lat)
	assert.Equal(t, 120.9842, hub.Location.Coordinates.Lng)
	assert.Equal(t, 15.0, hub.Location.Territory.RadiusKm)
	assert.Equal(t, models.ValidationPending, hub.Location.ValidationStatus)
}

func TestRepository_GetHubLocation_Unknown(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)

	hub, err := repo.GetHubLocation(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, hub)
}

func TestRepository_SaveHubLocation_Overwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	hubID := seedHub(t, repo, "Manila", 14.5995, 120.9842, 15)

	updated := geo.Consolidate(geo.ConsolidateParams{
		Lat:               14.6760,
		Lng:               121.0437,
		FormattedAddress:  "Quezon City",
		Administrative:    models.Administrative{Municipality: "Quezon City"},
		TerritoryRadiusKm: 20,
	})
	require.NoError(t, repo.SaveHubLocation(ctx, hubID, "Quezon City", updated))

	hub, err := repo.GetHubLocation(ctx, hubID)
	require.NoError(t, err)
	require.NotNil(t, hub)

	assert.Equal(t, "Quezon City", hub.Name)
	assert.Equal(t, 20.0, hub.Location.Territory.RadiusKm)
}

func TestRepository_FindNearestHub(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	manilaID := seedHub(t, repo, "Manila", 14.5995, 120.9842, 15)
	seedHub(t, repo, "Antipolo", 14.5864, 121.1753, 10)

	// Quezon City sits between the two hubs but closer to Manila.
	hub, err := repo.FindNearestHub(ctx, 14.6760, 121.0437)
	require.NoError(t, err)
	require.NotNil(t, hub)
	assert.Equal(t, manilaID, hub.ID)

	// Cebu is far outside the 50km search window.
	hub, err = repo.FindNearestHub(ctx, 10.3157, 123.8854)
	require.NoError(t, err)
	assert.Nil(t, hub)
}

func TestRepository_ListHubs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	seedHub(t, repo, "Manila", 14.5995, 120.9842, 15)
	seedHub(t, repo, "Cebu City", 10.3157, 123.8854, 15)

	hubs, err := repo.ListHubs(ctx)
	require.NoError(t, err)
	require.Len(t, hubs, 2)

	// Ordered by name.
	assert.Equal(t, "Cebu City", hubs[0].Name)
	assert.Equal(t, "Manila", hubs[1].Name)
}
