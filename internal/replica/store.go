// Package replica holds the in-memory working copies of activities, logs,
// and notes. The replica is authoritative for the running session: every
// mutation commits locally first and is then mirrored to the optional remote
// adapter on a best-effort basis. A failed mirror write is logged and
// swallowed; it never rolls back the local mutation and never reaches the
// caller.
package replica

import (
	"sort"
	"strings"
	"sync"
	"time"

	"daygrid/internal/constants"
	"daygrid/internal/logger"
	"daygrid/internal/models"
	"daygrid/internal/remote"
	"daygrid/internal/utils"
)

// Config wires a Store. Nil fields get working defaults; a nil Adapter means
// an in-memory-only session.
type Config struct {
	Adapter remote.Adapter
	Seeder  Seeder
	Clock   utils.Clock
	IDs     utils.IDGenerator
}

type Store struct {
	mu      sync.Mutex
	adapter remote.Adapter
	seeder  Seeder
	clock   utils.Clock
	ids     utils.IDGenerator

	initialized  bool
	degraded     bool
	historyStart time.Time

	activities []models.Activity
	logs       []models.Log
	notes      []models.Note
}

func New(cfg Config) *Store {
	s := &Store{
		adapter: cfg.Adapter,
		seeder:  cfg.Seeder,
		clock:   cfg.Clock,
		ids:     cfg.IDs,
	}
	if s.clock == nil {
		s.clock = utils.RealClock{}
	}
	if s.ids == nil {
		s.ids = utils.UUIDGenerator{}
	}
	if s.seeder == nil {
		s.seeder = NewDemoSeeder()
	}
	return s
}

// Initialize loads the three collections from the remote adapter, or falls
// back to seeded sample data when no adapter is configured or any table
// fails to load. The remote path is abandoned for the rest of the session on
// load failure (all-or-nothing, not per-table). Safe to call more than once;
// later calls are no-ops.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true

	today := utils.Day(s.clock.Now())

	remoteLoaded := false
	if s.adapter != nil {
		activities, errA := s.adapter.ListActivities()
		logs, errL := s.adapter.ListLogs()
		notes, errN := s.adapter.ListNotes()

		if errA != nil || errL != nil || errN != nil {
			logger.Warn("Remote load failed, continuing with local sample data",
				"activities", errA, "logs", errL, "notes", errN)
			s.adapter = nil
			s.degraded = true
		} else {
			s.activities = activities
			s.logs = logs
			s.notes = notes
			remoteLoaded = true
		}
	}

	if !remoteLoaded {
		s.activities, s.logs, s.notes = s.seeder.Seed(today, s.ids)
	}

	// The history range is anchored at the earliest remote log when one
	// exists; otherwise it reaches a fixed distance into the past. Fixed for
	// the whole session.
	s.historyStart = today.AddDate(0, 0, -constants.HistoryFallbackDays)
	if remoteLoaded && len(s.logs) > 0 {
		earliest := time.Time{}
		for _, l := range s.logs {
			d, err := utils.ParseDay(l.Day)
			if err != nil {
				continue
			}
			if earliest.IsZero() || d.Before(earliest) {
				earliest = d
			}
		}
		if !earliest.IsZero() {
			s.historyStart = earliest
		}
	}
}

// HistoryStart returns the earliest date the session will ever display.
func (s *Store) HistoryStart() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyStart
}

// Degraded reports whether the session abandoned the remote store or failed
// any mirror write.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Activities returns a copy of all activities sorted by order index.
func (s *Store) Activities() []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

// Logs returns a copy of the full log collection.
func (s *Store) Logs() []models.Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Log, len(s.logs))
	copy(out, s.logs)
	return out
}

// Notes returns a copy of the full note collection.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// LogFor looks up the log for an (activity, day) pair.
func (s *Store) LogFor(activityID, day string) (models.Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLog(activityID, day)
}

// NoteFor looks up the note for a day.
func (s *Store) NoteFor(day string) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findNote(day)
}

// AddActivity creates an activity at the next order index. When the remote
// insert succeeds its server-assigned identity replaces the provisional
// local one.
func (s *Store) AddActivity(name string) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, a := range s.activities {
		if a.OrderIndex >= next {
			next = a.OrderIndex + 1
		}
	}

	activity := models.Activity{
		ID:         s.ids.New(),
		Name:       name,
		OrderIndex: next,
		CreatedAt:  s.clock.Now().UTC(),
	}

	if s.adapter != nil {
		stored, err := s.adapter.InsertActivity(activity)
		if err != nil {
			s.degraded = true
			logger.Warn("Remote insert failed, keeping provisional activity",
				"name", name, "error", err)
		} else {
			activity = stored
		}
	}

	s.activities = append(s.activities, activity)
	return activity
}

// RenameActivity renames an activity in place. Unknown ids are a no-op.
func (s *Store) RenameActivity(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].Name = name
			s.mirror("rename activity", func() error {
				return s.adapter.UpdateActivityName(id, name)
			})
			return
		}
	}
}

// DeleteActivity removes an activity and every log that references it.
func (s *Store) DeleteActivity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.activities[:0]
	found := false
	for _, a := range s.activities {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	s.activities = kept
	if !found {
		return
	}

	logs := s.logs[:0]
	for _, l := range s.logs {
		if l.ActivityID != id {
			logs = append(logs, l)
		}
	}
	s.logs = logs

	s.mirror("delete activity", func() error {
		return s.adapter.DeleteActivity(id)
	})
}

// ToggleLog flips the completion record for an (activity, day) pair: an
// existing log is deleted outright, a missing one is created. The returned
// bool reports whether the pair is logged after the call. Not idempotent;
// callers wanting "set to done" must check LogFor first.
func (s *Store) ToggleLog(activityID, day string) (models.Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.findLog(activityID, day); ok {
		kept := s.logs[:0]
		for _, l := range s.logs {
			if l.ID != existing.ID {
				kept = append(kept, l)
			}
		}
		s.logs = kept

		s.mirror("delete log", func() error {
			return s.adapter.DeleteLog(existing.ID)
		})
		return models.Log{}, false
	}

	log := models.Log{
		ID:         s.ids.New(),
		ActivityID: activityID,
		Day:        day,
		CreatedAt:  s.clock.Now().UTC(),
	}

	if s.adapter != nil {
		stored, err := s.adapter.InsertLog(log)
		if err != nil {
			s.degraded = true
			logger.Warn("Remote insert failed, keeping provisional log",
				"activity_id", activityID, "day", day, "error", err)
		} else {
			log = stored
		}
	}

	s.logs = append(s.logs, log)
	return log, true
}

// SaveNote upserts the note for a day. Text that is empty after trimming
// deletes the note instead; there is never an empty note row. The returned
// bool reports whether a note exists for the day after the call.
func (s *Store) SaveNote(day, text string) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		s.deleteNote(day)
		return models.Note{}, false
	}

	if existing, ok := s.findNote(day); ok {
		updatedAt := s.clock.Now().UTC()
		for i := range s.notes {
			if s.notes[i].ID == existing.ID {
				s.notes[i].Text = text
				s.notes[i].UpdatedAt = updatedAt
				existing = s.notes[i]
				break
			}
		}

		s.mirror("update note", func() error {
			return s.adapter.UpdateNote(existing.ID, text, updatedAt)
		})
		return existing, true
	}

	now := s.clock.Now().UTC()
	note := models.Note{
		ID:        s.ids.New(),
		Day:       day,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.adapter != nil {
		stored, err := s.adapter.InsertNote(note)
		if err != nil {
			s.degraded = true
			logger.Warn("Remote insert failed, keeping provisional note",
				"day", day, "error", err)
		} else {
			note = stored
		}
	}

	s.notes = append(s.notes, note)
	return note, true
}

// DeleteNote removes the note for a day. Missing notes are a no-op.
func (s *Store) DeleteNote(day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteNote(day)
}

func (s *Store) deleteNote(day string) {
	existing, ok := s.findNote(day)
	if !ok {
		return
	}

	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != existing.ID {
			kept = append(kept, n)
		}
	}
	s.notes = kept

	s.mirror("delete note", func() error {
		return s.adapter.DeleteNote(existing.ID)
	})
}

func (s *Store) findLog(activityID, day string) (models.Log, bool) {
	for _, l := range s.logs {
		if l.ActivityID == activityID && l.Day == day {
			return l, true
		}
	}
	return models.Log{}, false
}

func (s *Store) findNote(day string) (models.Note, bool) {
	for _, n := range s.notes {
		if n.Day == day {
			return n, true
		}
	}
	return models.Note{}, false
}

// mirror runs a remote write after a local commit. Failures mark the session
// degraded and are logged, nothing more.
func (s *Store) mirror(op string, fn func() error) {
	if s.adapter == nil {
		return
	}
	if err := fn(); err != nil {
		s.degraded = true
		logger.Warn("Remote mirror failed, local copy kept", "op", op, "error", err)
	}
}
