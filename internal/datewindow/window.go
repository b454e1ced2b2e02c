// Package datewindow computes the visible date range of the paged grid view:
// which n consecutive days are shown, how far navigation may move in either
// direction, and the full reverse-chronological history range. All functions
// are pure; dates are expected normalized to midnight (see utils.Day).
package datewindow

import "time"

// Direction indicates which way the window moves.
type Direction int

const (
	Back Direction = iota
	Forward
)

// DefaultStart returns the window start that places today in the last column.
func DefaultStart(today time.Time, n int) time.Time {
	return today.AddDate(0, 0, -(n - 1))
}

// Window returns the n consecutive days beginning at start, oldest first.
// Days before the history start are still produced; they render as columns
// with no data.
func Window(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// History returns every day from today back through historyStart inclusive,
// most recent first.
func History(today, historyStart time.Time) []time.Time {
	var days []time.Time
	for d := today; !d.Before(historyStart); d = d.AddDate(0, 0, -1) {
		days = append(days, d)
	}
	return days
}

// CanGoBack reports whether the window can move toward the history start.
func CanGoBack(start, historyStart time.Time) bool {
	return start.After(historyStart)
}

// CanGoForward reports whether the window's last day is still before today.
func CanGoForward(start, today time.Time, n int) bool {
	return start.AddDate(0, 0, n-1).Before(today)
}

// Advance moves the window by n days in the given direction, clamped so a
// backward move never starts before historyStart and a forward move never
// shows a day after today.
func Advance(dir Direction, start, historyStart, today time.Time, n int) time.Time {
	switch dir {
	case Back:
		next := start.AddDate(0, 0, -n)
		if next.Before(historyStart) {
			return historyStart
		}
		return next
	case Forward:
		next := start.AddDate(0, 0, n)
		latest := today.AddDate(0, 0, -(n - 1))
		if next.After(latest) {
			return latest
		}
		return next
	}
	return start
}
