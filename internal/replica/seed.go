package replica

import (
	"math/rand"
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/models"
	"daygrid/internal/utils"
)

// Seeder produces the initial collections for a session that has no remote
// data to load.
type Seeder interface {
	Seed(today time.Time, ids utils.IDGenerator) ([]models.Activity, []models.Log, []models.Note)
}

var demoActivityNames = []string{
	"Exercise",
	"Read 20 minutes",
	"Meditate",
	"Drink water",
	"Journal",
}

var demoNotes = []struct {
	daysAgo int
	text    string
}{
	{1, "Good day overall. Kept the streak going."},
	{4, "Skipped the workout, long day at work."},
	{9, "Started reading a new book."},
}

// DemoSeeder generates a randomized sample dataset: the fixed activity list
// with completions scattered over the past month at roughly 40% density,
// plus a few canned notes.
type DemoSeeder struct {
	rand *rand.Rand
}

func NewDemoSeeder() *DemoSeeder {
	return &DemoSeeder{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *DemoSeeder) Seed(today time.Time, ids utils.IDGenerator) ([]models.Activity, []models.Log, []models.Note) {
	var activities []models.Activity
	var logs []models.Log
	var notes []models.Note

	for i, name := range demoActivityNames {
		activity := models.Activity{
			ID:         ids.New(),
			Name:       name,
			OrderIndex: i,
			CreatedAt:  today,
		}
		activities = append(activities, activity)

		for back := 0; back < constants.HistoryFallbackDays; back++ {
			if d.rand.Float64() >= 0.4 {
				continue
			}
			day := today.AddDate(0, 0, -back)
			logs = append(logs, models.Log{
				ID:         ids.New(),
				ActivityID: activity.ID,
				Day:        utils.FormatDay(day),
				CreatedAt:  day,
			})
		}
	}

	for _, n := range demoNotes {
		day := today.AddDate(0, 0, -n.daysAgo)
		notes = append(notes, models.Note{
			ID:        ids.New(),
			Day:       utils.FormatDay(day),
			Text:      n.text,
			CreatedAt: day,
			UpdatedAt: day,
		})
	}

	return activities, logs, notes
}

// FixtureSeeder returns exactly the collections it was given. Tests use it
// for deterministic starting state.
type FixtureSeeder struct {
	Activities []models.Activity
	Logs       []models.Log
	Notes      []models.Note
}

func (f *FixtureSeeder) Seed(time.Time, utils.IDGenerator) ([]models.Activity, []models.Log, []models.Note) {
	activities := make([]models.Activity, len(f.Activities))
	copy(activities, f.Activities)
	logs := make([]models.Log, len(f.Logs))
	copy(logs, f.Logs)
	notes := make([]models.Note, len(f.Notes))
	copy(notes, f.Notes)
	return activities, logs, notes
}
