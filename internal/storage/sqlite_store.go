package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/planora/planora/internal/models"
	_ "modernc.org/sqlite"
)

const tripsSchema = `
CREATE TABLE IF NOT EXISTS trips (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	data TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips(created_at);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(tripsSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'planora init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// The schema is idempotent, so re-applying it doubles as validation that
	// the file is actually a writable planora database.
	if _, err := s.db.Exec(tripsSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) SaveTrip(trip models.Trip) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to serialize trip: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO trips (id, created_at, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		trip.ID, trip.CreatedAt.UTC().Format(time.RFC3339Nano), string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetTrip(id string) (models.Trip, error) {
	if s.db == nil {
		return models.Trip{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM trips WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Trip{}, fmt.Errorf("trip not found: %s", id)
	}
	if err != nil {
		return models.Trip{}, fmt.Errorf("failed to read trip: %w", err)
	}

	return unmarshalTrip(data)
}

func (s *SQLiteStore) LatestTrip() (models.Trip, error) {
	if s.db == nil {
		return models.Trip{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM trips ORDER BY created_at DESC LIMIT 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Trip{}, fmt.Errorf("no trips saved yet, run 'planora plan' first")
	}
	if err != nil {
		return models.Trip{}, fmt.Errorf("failed to read latest trip: %w", err)
	}

	return unmarshalTrip(data)
}

func (s *SQLiteStore) ListTrips() ([]models.Trip, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT data FROM trips ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trip, err := unmarshalTrip(data)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func (s *SQLiteStore) DeleteTrip(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trip not found: %s", id)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func unmarshalTrip(data string) (models.Trip, error) {
	var trip models.Trip
	if err := json.Unmarshal([]byte(data), &trip); err != nil {
		return models.Trip{}, fmt.Errorf("failed to parse trip record: %w", err)
	}
	return trip, nil
}
