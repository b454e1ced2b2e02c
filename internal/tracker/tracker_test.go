package tracker

import (
	"testing"
	"time"

	"daygrid/internal/models"
	"daygrid/internal/replica"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

var testNow = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T, fixture *replica.FixtureSeeder) *Tracker {
	t.Helper()
	if fixture == nil {
		fixture = &replica.FixtureSeeder{}
	}
	store := replica.New(replica.Config{
		Seeder: fixture,
		Clock:  fixedClock{now: testNow},
	})
	return New(store, fixedClock{now: testNow}, 7)
}

func TestVisibleWindowEndsOnToday(t *testing.T) {
	tr := newTestTracker(t, nil)

	dates := tr.VisibleDates()
	if len(dates) != 7 {
		t.Fatalf("expected 7 visible dates, got %d", len(dates))
	}
	if dates[0] != "2024-01-04" {
		t.Errorf("expected window to start 2024-01-04, got %s", dates[0])
	}
	if dates[6] != "2024-01-10" {
		t.Errorf("expected window to end on today, got %s", dates[6])
	}
}

func TestAllDatesReverseChronological(t *testing.T) {
	tr := newTestTracker(t, nil)

	dates := tr.AllDates()
	// Fallback history reaches 30 days back, inclusive of both ends
	if len(dates) != 31 {
		t.Fatalf("expected 31 dates, got %d", len(dates))
	}
	if dates[0] != "2024-01-10" {
		t.Errorf("expected today first, got %s", dates[0])
	}
	if dates[len(dates)-1] != "2023-12-11" {
		t.Errorf("expected history start last, got %s", dates[len(dates)-1])
	}
}

func TestNavigationClamps(t *testing.T) {
	tr := newTestTracker(t, nil)

	// Window already ends on today
	if tr.CanGoForward() {
		t.Error("CanGoForward should be false at the initial window")
	}
	tr.Forward()
	if tr.VisibleDates()[0] != "2024-01-04" {
		t.Error("forward from the initial window should not move")
	}

	// Page back until the clamp engages
	steps := 0
	for tr.CanGoBack() {
		tr.Back()
		steps++
		if steps > 20 {
			t.Fatal("backward paging did not terminate")
		}
	}
	if tr.VisibleDates()[0] != "2023-12-11" {
		t.Errorf("expected window clamped at history start, got %s", tr.VisibleDates()[0])
	}

	// Forward again moves in full pages and re-clamps at today
	for tr.CanGoForward() {
		tr.Forward()
	}
	dates := tr.VisibleDates()
	if dates[len(dates)-1] != "2024-01-10" {
		t.Errorf("expected window to end on today after paging forward, got %s", dates[len(dates)-1])
	}
}

func TestIsLoggedReflectsToggles(t *testing.T) {
	tr := newTestTracker(t, nil)
	activity := tr.AddActivity("Exercise")
	day := "2024-01-08"

	if tr.IsLogged(activity.ID, day) {
		t.Fatal("fresh pair should not be logged")
	}

	if logged := tr.ToggleLog(activity.ID, day); !logged {
		t.Fatal("expected toggle-on")
	}
	if !tr.IsLogged(activity.ID, day) {
		t.Error("IsLogged stale after toggle-on")
	}

	if logged := tr.ToggleLog(activity.ID, day); logged {
		t.Fatal("expected toggle-off")
	}
	if tr.IsLogged(activity.ID, day) {
		t.Error("IsLogged stale after toggle-off")
	}
}

func TestMutationsRefreshSnapshots(t *testing.T) {
	tr := newTestTracker(t, &replica.FixtureSeeder{
		Activities: []models.Activity{
			{ID: "a1", Name: "Read", OrderIndex: 0},
		},
	})

	if len(tr.Activities()) != 1 {
		t.Fatalf("expected 1 seeded activity, got %d", len(tr.Activities()))
	}

	tr.RenameActivity("a1", "Read more")
	if tr.Activities()[0].Name != "Read more" {
		t.Error("activity snapshot stale after rename")
	}

	if exists := tr.SaveNote("2024-01-09", "rest day"); !exists {
		t.Fatal("expected note to be saved")
	}
	note, ok := tr.NoteFor("2024-01-09")
	if !ok || note.Text != "rest day" {
		t.Error("note snapshot stale after save")
	}

	if exists := tr.SaveNote("2024-01-09", "  "); exists {
		t.Fatal("whitespace save should remove the note")
	}
	if _, ok := tr.NoteFor("2024-01-09"); ok {
		t.Error("note snapshot stale after delete")
	}

	tr.DeleteActivity("a1")
	if len(tr.Activities()) != 0 {
		t.Error("activity snapshot stale after delete")
	}
}
