package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/planora/planora/internal/models"
)

type Store struct {
	Version int                    `json:"version"`
	Trips   map[string]models.Trip `json:"trips"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Trips:   make(map[string]models.Trip),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'planora init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Trips == nil {
		s.store.Trips = make(map[string]models.Trip)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveTrip(trip models.Trip) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Trips[trip.ID] = trip
	return s.save()
}

func (s *JSONStore) GetTrip(id string) (models.Trip, error) {
	if s.store == nil {
		return models.Trip{}, fmt.Errorf("storage not loaded")
	}

	trip, ok := s.store.Trips[id]
	if !ok {
		return models.Trip{}, fmt.Errorf("trip not found: %s", id)
	}

	return trip, nil
}

func (s *JSONStore) LatestTrip() (models.Trip, error) {
	trips, err := s.ListTrips()
	if err != nil {
		return models.Trip{}, err
	}
	if len(trips) == 0 {
		return models.Trip{}, fmt.Errorf("no trips saved yet, run 'planora plan' first")
	}
	return trips[len(trips)-1], nil
}

func (s *JSONStore) ListTrips() ([]models.Trip, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	trips := make([]models.Trip, 0, len(s.store.Trips))
	for _, trip := range s.store.Trips {
		trips = append(trips, trip)
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.Before(trips[j].CreatedAt)
	})

	return trips, nil
}

func (s *JSONStore) DeleteTrip(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Trips[id]; !ok {
		return fmt.Errorf("trip not found: %s", id)
	}

	delete(s.store.Trips, id)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple planora processes against the same storage path at the
//     same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
