package postgres

import (
	"time"

	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func (s *Store) ListNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, logged_date::text, text, created_at, updated_at FROM notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Day, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *Store) InsertNote(note models.Note) (models.Note, error) {
	err := s.db.QueryRow(`
		INSERT INTO notes (logged_date, text)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		note.Day, note.Text).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *Store) UpdateNote(id, text string, updatedAt time.Time) error {
	result, err := s.db.Exec(`
		UPDATE notes SET text = $1, updated_at = $2 WHERE id = $3`,
		text, updatedAt, id)
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
	result, err := s.db.Exec(`DELETE FROM notes WHERE id = $1`, id)
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
