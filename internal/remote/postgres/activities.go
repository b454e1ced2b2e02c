package postgres

import (
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
		if err := rows.Scan(&a.ID, &a.Name, &a.OrderIndex, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (s *Store) InsertActivity(activity models.Activity) (models.Activity, error) {
	err := s.db.QueryRow(`
		INSERT INTO activities (name, order_index)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		activity.Name, activity.OrderIndex).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (s *Store) UpdateActivityName(id, name string) error {
	result, err := s.db.Exec(`UPDATE activities SET name = $1 WHERE id = $2`, name, id)
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
	// Logs go with it via ON DELETE CASCADE
	result, err := s.db.Exec(`DELETE FROM activities WHERE id = $1`, id)
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
