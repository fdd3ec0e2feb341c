package main

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"territory-api/internal/geo"
	"territory-api/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type hubRow struct {
	Name     string
	Address  string
	Admin    models.Administrative
	Lat      float64
	Lng      float64
	RadiusKm float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	_ = godotenv.Load(".env")

	fmt.Printf("Starting import from file: %s\n", *file)

	rows, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d hubs\n", len(rows))

	db, err := sql.Open("postgres", os.Getenv("DB_SOURCE"))
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := createTableIfNotExists(db); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	if err := insertHubs(db, rows); err != nil {
		fmt.Printf("Error inserting hubs: %v\n", err)
		os.Exit(1)
	}

	if err := verifyImport(db, len(rows)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d hubs\n", len(rows))
}

// parseCSV reads hub seed rows. Expected columns:
// name, address, region, province, municipality, barangay, district, lat, lng, radius_km
func parseCSV(filePath string) ([]hubRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []hubRow
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 10 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 10 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[7], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[7])
		}

		lng, err := strconv.ParseFloat(record[8], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[8])
		}

		radius, err := strconv.ParseFloat(record[9], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid radius: %s", record[9])
		}

		rows = append(rows, hubRow{
			Name:    record[0],
			Address: record[1],
			Admin: models.Administrative{
				Region:       record[2],
				Province:     record[3],
				Municipality: record[4],
				Barangay:     record[5],
				District:     record[6],
			},
			Lat:      lat,
			Lng:      lng,
			RadiusKm: radius,
		})
	}

	return rows, nil
}

func createTableIfNotExists(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS business_hubs (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location JSONB NOT NULL,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS business_hubs_geom_idx ON business_hubs USING GIST (geom);
	`
	_, err := db.Exec(query)
	return err
}

func insertHubs(db *sql.DB, rows []hubRow) error {
	txn, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := txn.Prepare(pq.CopyIn("business_hubs", "id", "name", "location", "geom"))
	if err != nil {
		txn.Rollback()
		return err
	}

	for _, row := range rows {
		rec := geo.Consolidate(geo.ConsolidateParams{
			Lat:               row.Lat,
			Lng:               row.Lng,
			FormattedAddress:  row.Address,
			Administrative:    row.Admin,
			TerritoryRadiusKm: row.RadiusKm,
		})

		doc, err := json.Marshal(rec)
		if err != nil {
			txn.Rollback()
			return fmt.Errorf("failed to encode location record: %w", err)
		}

		geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", row.Lng, row.Lat) // PostGIS format: lng lat
		if _, err := stmt.Exec(uuid.New().String(), row.Name, string(doc), geom); err != nil {
			txn.Rollback()
			return err
		}
	}

	// Flush the copy buffer
	if _, err := stmt.Exec(); err != nil {
		txn.Rollback()
		return err
	}

	if err := stmt.Close(); err != nil {
		txn.Rollback()
		return err
	}

	return txn.Commit()
}

func verifyImport(db *sql.DB, expectedCount int) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM business_hubs").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count hubs: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("hub count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample geom
	var geomText string
	err = db.QueryRow("SELECT ST_AsText(geom) FROM business_hubs LIMIT 1").Scan(&geomText)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	fmt.Printf("Sample geom: %s\n", geomText)
	return nil
}
