package postgres

import (
	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func (s *Store) ListLogs() ([]models.Log, error) {
	// logged_date is a DATE column; read it back in its wire form
	rows, err := s.db.Query(`
		SELECT id, activity_id, logged_date::text, created_at FROM logs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		var l models.Log
		if err := rows.Scan(&l.ID, &l.ActivityID, &l.Day, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (s *Store) InsertLog(log models.Log) (models.Log, error) {
	err := s.db.QueryRow(`
		INSERT INTO logs (activity_id, logged_date)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		log.ActivityID, log.Day).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return models.Log{}, err
	}
	return log, nil
}

func (s *Store) DeleteLog(id string) error {
	result, err := s.db.Exec(`DELETE FROM logs WHERE id = $1`, id)
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
