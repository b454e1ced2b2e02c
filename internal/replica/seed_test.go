package replica

import (
	"testing"
	"time"

	"daygrid/internal/models"
)

func TestDemoSeederShape(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	seeder := NewDemoSeeder()

	activities, logs, notes := seeder.Seed(today, &seqIDs{})

	if len(activities) != len(demoActivityNames) {
		t.Fatalf("expected %d activities, got %d", len(demoActivityNames), len(activities))
	}
	for i, a := range activities {
		if a.OrderIndex != i {
			t.Errorf("activity %d has order index %d", i, a.OrderIndex)
		}
	}

	if len(notes) != 3 {
		t.Errorf("expected 3 sample notes, got %d", len(notes))
	}

	// Logs land in the past month and respect the one-per-pair invariant
	seen := make(map[string]bool)
	earliest := today.AddDate(0, 0, -30)
	for _, l := range logs {
		key := l.ActivityID + "|" + l.Day
		if seen[key] {
			t.Errorf("duplicate log for %s", key)
		}
		seen[key] = true

		d, err := time.Parse("2006-01-02", l.Day)
		if err != nil {
			t.Fatalf("bad day %q: %v", l.Day, err)
		}
		if d.After(today) || d.Before(earliest) {
			t.Errorf("log day %s outside seeded range", l.Day)
		}
	}
}

func TestFixtureSeederCopies(t *testing.T) {
	fixture := &FixtureSeeder{
		Activities: []models.Activity{{ID: "a1", Name: "Exercise"}},
	}

	activities, _, _ := fixture.Seed(time.Now(), &seqIDs{})
	activities[0].Name = "mutated"

	if fixture.Activities[0].Name != "Exercise" {
		t.Error("seeded slice aliases the fixture")
	}
}
