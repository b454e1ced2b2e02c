package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"daygrid/internal/models"
	"daygrid/internal/remote"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "daygrid.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestActivityCRUD(t *testing.T) {
	store := setupTestStore(t)

	stored, err := store.InsertActivity(models.Activity{Name: "Exercise", OrderIndex: 0})
	if err != nil {
		t.Fatalf("failed to insert activity: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("expected assigned id")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected assigned created_at")
	}

	second, err := store.InsertActivity(models.Activity{Name: "Read", OrderIndex: 1})
	if err != nil {
		t.Fatalf("failed to insert second activity: %v", err)
	}

	activities, err := store.ListActivities()
	if err != nil {
		t.Fatalf("failed to list activities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].ID != stored.ID || activities[1].ID != second.ID {
		t.Error("activities not ordered by order_index")
	}

	if err := store.UpdateActivityName(stored.ID, "Morning run"); err != nil {
		t.Fatalf("failed to rename: %v", err)
	}
	activities, _ = store.ListActivities()
	if activities[0].Name != "Morning run" {
		t.Errorf("expected renamed activity, got %q", activities[0].Name)
	}

	if err := store.UpdateActivityName("missing", "x"); !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestDeleteActivityCascades(t *testing.T) {
	store := setupTestStore(t)

	victim, _ := store.InsertActivity(models.Activity{Name: "victim", OrderIndex: 0})
	other, _ := store.InsertActivity(models.Activity{Name: "other", OrderIndex: 1})

	for _, day := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		if _, err := store.InsertLog(models.Log{ActivityID: victim.ID, Day: day}); err != nil {
			t.Fatalf("failed to insert log: %v", err)
		}
	}
	kept, err := store.InsertLog(models.Log{ActivityID: other.ID, Day: "2024-03-01"})
	if err != nil {
		t.Fatalf("failed to insert unrelated log: %v", err)
	}

	if err := store.DeleteActivity(victim.ID); err != nil {
		t.Fatalf("failed to delete activity: %v", err)
	}

	logs, err := store.ListLogs()
	if err != nil {
		t.Fatalf("failed to list logs: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != kept.ID {
		t.Errorf("cascade delete left wrong logs: %+v", logs)
	}
}

func TestLogUniquePerActivityAndDay(t *testing.T) {
	store := setupTestStore(t)

	activity, _ := store.InsertActivity(models.Activity{Name: "Exercise", OrderIndex: 0})

	if _, err := store.InsertLog(models.Log{ActivityID: activity.ID, Day: "2024-03-01"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := store.InsertLog(models.Log{ActivityID: activity.ID, Day: "2024-03-01"}); err == nil {
		t.Error("expected unique constraint violation for duplicate pair")
	}
}

func TestNoteCRUD(t *testing.T) {
	store := setupTestStore(t)

	note, err := store.InsertNote(models.Note{Day: "2024-03-01", Text: "slept well"})
	if err != nil {
		t.Fatalf("failed to insert note: %v", err)
	}

	if _, err := store.InsertNote(models.Note{Day: "2024-03-01", Text: "dup"}); err == nil {
		t.Error("expected unique constraint violation for duplicate day")
	}

	later := time.Now().UTC().Add(time.Hour)
	if err := store.UpdateNote(note.ID, "slept badly", later); err != nil {
		t.Fatalf("failed to update note: %v", err)
	}

	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "slept badly" {
		t.Errorf("unexpected notes after update: %+v", notes)
	}
	if !notes[0].UpdatedAt.After(notes[0].CreatedAt) {
		t.Error("updated_at not advanced")
	}

	if err := store.DeleteNote(note.ID); err != nil {
		t.Fatalf("failed to delete note: %v", err)
	}
	if err := store.DeleteNote(note.ID); !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLoadValidatesInitialization(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}
