package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func (s *Store) ListActivities() ([]models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, name, order_index, created_at
		FROM activities ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var createdAt string

		if err := rows.Scan(&a.ID, &a.Name, &a.OrderIndex, &createdAt); err != nil {
			return nil, err
		}

		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for activity %s: %w", a.ID, err)
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (s *Store) InsertActivity(activity models.Activity) (models.Activity, error) {
	activity.ID = uuid.New().String()
	activity.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO activities (id, name, order_index, created_at)
		VALUES (?, ?, ?, ?)`,
		activity.ID, activity.Name, activity.OrderIndex,
		activity.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}

func (s *Store) UpdateActivityName(id, name string) error {
	result, err := s.db.Exec(`UPDATE activities SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return remote.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteActivity(id string) error {
	// Logs are removed explicitly inside the transaction so the cascade does
	// not depend on the foreign_keys pragma surviving connection pooling.
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM logs WHERE activity_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return remote.ErrNotFound
	}

	return tx.Commit()
}
