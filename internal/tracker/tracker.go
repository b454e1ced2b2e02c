// Package tracker is the view-model between the presentation layer and the
// replica store: it owns the visible date window, derives lookup predicates
// from cached collections, and re-snapshots those collections after every
// mutation so readers always observe post-mutation state.
package tracker

import (
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/datewindow"
	"daygrid/internal/models"
	"daygrid/internal/replica"
	"daygrid/internal/utils"
)

type Tracker struct {
	store    *replica.Store
	pageSize int

	// today is captured once at construction; a session spanning midnight
	// does not scroll on its own.
	today        time.Time
	historyStart time.Time
	viewStart    time.Time

	activities []models.Activity
	logged     map[string]struct{}
	notesByDay map[string]models.Note
}

func New(store *replica.Store, clock utils.Clock, pageSize int) *Tracker {
	if clock == nil {
		clock = utils.RealClock{}
	}
	if pageSize <= 0 {
		pageSize = constants.PageSize
	}

	store.Initialize()

	t := &Tracker{
		store:    store,
		pageSize: pageSize,
		today:    utils.Day(clock.Now()),
	}
	t.historyStart = store.HistoryStart()
	t.viewStart = datewindow.DefaultStart(t.today, pageSize)
	t.refresh()
	return t
}

func (t *Tracker) refresh() {
	t.activities = t.store.Activities()

	logs := t.store.Logs()
	t.logged = make(map[string]struct{}, len(logs))
	for _, l := range logs {
		t.logged[l.ActivityID+"|"+l.Day] = struct{}{}
	}

	notes := t.store.Notes()
	t.notesByDay = make(map[string]models.Note, len(notes))
	for _, n := range notes {
		t.notesByDay[n.Day] = n
	}
}

// Activities returns the current activity snapshot in display order.
func (t *Tracker) Activities() []models.Activity {
	return t.activities
}

// Today returns the session's fixed current date.
func (t *Tracker) Today() string {
	return utils.FormatDay(t.today)
}

// VisibleDates returns the paged window, oldest first.
func (t *Tracker) VisibleDates() []string {
	days := datewindow.Window(t.viewStart, t.pageSize)
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = utils.FormatDay(d)
	}
	return out
}

// AllDates returns every day from today back through the history start,
// most recent first.
func (t *Tracker) AllDates() []string {
	days := datewindow.History(t.today, t.historyStart)
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = utils.FormatDay(d)
	}
	return out
}

func (t *Tracker) CanGoBack() bool {
	return datewindow.CanGoBack(t.viewStart, t.historyStart)
}

func (t *Tracker) CanGoForward() bool {
	return datewindow.CanGoForward(t.viewStart, t.today, t.pageSize)
}

// Back pages the window toward the history start.
func (t *Tracker) Back() {
	t.viewStart = datewindow.Advance(datewindow.Back, t.viewStart, t.historyStart, t.today, t.pageSize)
}

// Forward pages the window toward today.
func (t *Tracker) Forward() {
	t.viewStart = datewindow.Advance(datewindow.Forward, t.viewStart, t.historyStart, t.today, t.pageSize)
}

// IsLogged reports whether a log exists for the pair, from the local cache
// only; no store round-trip.
func (t *Tracker) IsLogged(activityID, day string) bool {
	_, ok := t.logged[activityID+"|"+day]
	return ok
}

// NoteFor returns the cached note for a day.
func (t *Tracker) NoteFor(day string) (models.Note, bool) {
	n, ok := t.notesByDay[day]
	return n, ok
}

// Degraded reports whether the session has diverged from the remote store.
func (t *Tracker) Degraded() bool {
	return t.store.Degraded()
}

// ToggleLog flips a cell and returns whether the pair is logged afterwards.
func (t *Tracker) ToggleLog(activityID, day string) bool {
	_, logged := t.store.ToggleLog(activityID, day)
	t.refresh()
	return logged
}

// AddActivity appends a new activity row.
func (t *Tracker) AddActivity(name string) models.Activity {
	activity := t.store.AddActivity(name)
	t.refresh()
	return activity
}

// RenameActivity renames an activity row.
func (t *Tracker) RenameActivity(id, name string) {
	t.store.RenameActivity(id, name)
	t.refresh()
}

// DeleteActivity removes an activity row and its logs.
func (t *Tracker) DeleteActivity(id string) {
	t.store.DeleteActivity(id)
	t.refresh()
}

// SaveNote upserts the day's note and returns whether one exists afterwards.
func (t *Tracker) SaveNote(day, text string) bool {
	_, exists := t.store.SaveNote(day, text)
	t.refresh()
	return exists
}
