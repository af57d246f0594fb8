package storage

import "github.com/planora/planora/internal/models"

// Provider persists planning sessions. The engine itself is storage-agnostic;
// the CLI saves the (preferences, itinerary, adjustments) triple here between
// invocations.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Trips
	SaveTrip(models.Trip) error
	GetTrip(id string) (models.Trip, error)
	LatestTrip() (models.Trip, error)
	ListTrips() ([]models.Trip, error)
	DeleteTrip(id string) error

	// Utils
	GetConfigPath() string
}
