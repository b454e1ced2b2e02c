package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func (s *Store) ListLogs() ([]models.Log, error) {
	rows, err := s.db.Query(`
		SELECT id, activity_id, logged_date, created_at FROM logs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		var l models.Log
		var createdAt string

		if err := rows.Scan(&l.ID, &l.ActivityID, &l.Day, &createdAt); err != nil {
			return nil, err
		}

		l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for log %s: %w", l.ID, err)
		}

		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (s *Store) InsertLog(log models.Log) (models.Log, error) {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO logs (id, activity_id, logged_date, created_at)
		VALUES (?, ?, ?, ?)`,
		log.ID, log.ActivityID, log.Day, log.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return models.Log{}, err
	}

	return log, nil
}

func (s *Store) DeleteLog(id string) error {
	result, err := s.db.Exec(`DELETE FROM logs WHERE id = ?`, id)
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
