// Package remote defines the boundary to the durable store that mirrors the
// in-memory replica. Implementations live in the postgres and sqlite
// sub-packages.
package remote

import (
	"errors"
	"time"

	"daygrid/internal/models"
)

// ErrNotFound is returned by point operations when no matching record exists.
var ErrNotFound = errors.New("record not found")

// Adapter exposes the three resource collections of the durable store.
// Inserts return the stored record so callers can adopt the server-assigned
// id and timestamps. Deleting an activity cascades to its logs.
type Adapter interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Activities
	ListActivities() ([]models.Activity, error) // ordered by order_index
	InsertActivity(models.Activity) (models.Activity, error)
	UpdateActivityName(id, name string) error
	DeleteActivity(id string) error

	// Logs
	ListLogs() ([]models.Log, error)
	InsertLog(models.Log) (models.Log, error)
	DeleteLog(id string) error

	// Notes
	ListNotes() ([]models.Note, error)
	InsertNote(models.Note) (models.Note, error)
	UpdateNote(id, text string, updatedAt time.Time) error
	DeleteNote(id string) error

	// Utils
	Describe() string
}
