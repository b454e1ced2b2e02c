package models

import "time"

// Activity is a trackable habit or behavior the user defined.
type Activity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Log records that an activity was done on a specific day. Existence of a
// row is the "done" marker; there is no boolean column and at most one log
// exists per (activity, day) pair.
type Log struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activity_id"`
	Day        string    `json:"logged_date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
}

// Note is a free-text journal entry, at most one per day.
type Note struct {
	ID        string    `json:"id"`
	Day       string    `json:"logged_date"` // YYYY-MM-DD
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
