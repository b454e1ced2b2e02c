package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func (s *Store) ListNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, logged_date, text, created_at, updated_at FROM notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var createdAt, updatedAt string

		if err := rows.Scan(&n.ID, &n.Day, &n.Text, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		n.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for note %s: %w", n.ID, err)
		}
		n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for note %s: %w", n.ID, err)
		}

		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *Store) InsertNote(note models.Note) (models.Note, error) {
	note.ID = uuid.New().String()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO notes (id, logged_date, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		note.ID, note.Day, note.Text,
		note.CreatedAt.Format(time.RFC3339), note.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (s *Store) UpdateNote(id, text string, updatedAt time.Time) error {
	result, err := s.db.Exec(`
		UPDATE notes SET text = ?, updated_at = ? WHERE id = ?`,
		text, updatedAt.UTC().Format(time.RFC3339), id)
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

func (s *Store) DeleteNote(id string) error {
	result, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
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
