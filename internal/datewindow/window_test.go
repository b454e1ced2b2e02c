package datewindow

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDefaultStart(t *testing.T) {
	got := DefaultStart(day("2024-01-10"), 7)
	if !got.Equal(day("2024-01-04")) {
		t.Errorf("expected 2024-01-04, got %s", got.Format("2006-01-02"))
	}
}

func TestWindowAlwaysRendersNColumns(t *testing.T) {
	// History shorter than the page size still yields a full window
	days := Window(day("2024-01-01"), 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if !days[0].Equal(day("2024-01-01")) || !days[6].Equal(day("2024-01-07")) {
		t.Errorf("unexpected window bounds: %s..%s",
			days[0].Format("2006-01-02"), days[6].Format("2006-01-02"))
	}
}

func TestHistoryReverseChronological(t *testing.T) {
	days := History(day("2024-01-05"), day("2024-01-01"))
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if !days[0].Equal(day("2024-01-05")) {
		t.Errorf("expected most recent day first, got %s", days[0].Format("2006-01-02"))
	}
	if !days[4].Equal(day("2024-01-01")) {
		t.Errorf("expected history start last, got %s", days[4].Format("2006-01-02"))
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Before(days[i-1]) {
			t.Errorf("days not in reverse order at index %d", i)
		}
	}
}

func TestAdvanceBackClampsAtHistoryStart(t *testing.T) {
	historyStart := day("2024-01-01")
	today := historyStart.AddDate(0, 0, 40)
	start := historyStart.AddDate(0, 0, 34)

	steps := 0
	for CanGoBack(start, historyStart) {
		start = Advance(Back, start, historyStart, today, 7)
		steps++
		if steps > 20 {
			t.Fatal("backward navigation did not terminate")
		}
	}

	if !start.Equal(historyStart) {
		t.Errorf("expected start clamped to history start, got %s", start.Format("2006-01-02"))
	}
	if start.Before(historyStart) {
		t.Error("window start moved before history start")
	}
	if CanGoBack(start, historyStart) {
		t.Error("CanGoBack should be false at history start")
	}
}

func TestAdvanceForwardClampsAtToday(t *testing.T) {
	historyStart := day("2024-01-01")
	today := historyStart.AddDate(0, 0, 40)
	start := historyStart

	steps := 0
	for CanGoForward(start, today, 7) {
		start = Advance(Forward, start, historyStart, today, 7)
		steps++
		if steps > 20 {
			t.Fatal("forward navigation did not terminate")
		}
	}

	last := start.AddDate(0, 0, 6)
	if !last.Equal(today) {
		t.Errorf("expected window to end on today, got %s", last.Format("2006-01-02"))
	}
	if CanGoForward(start, today, 7) {
		t.Error("CanGoForward should be false when window ends on today")
	}
}

func TestAdvanceEndToEnd(t *testing.T) {
	historyStart := day("2024-01-01")
	today := day("2024-01-10")
	n := 7

	start := DefaultStart(today, n)
	if !start.Equal(day("2024-01-04")) {
		t.Fatalf("expected initial start 2024-01-04, got %s", start.Format("2006-01-02"))
	}

	// Forward is already clamped: the last visible day is today
	start = Advance(Forward, start, historyStart, today, n)
	if !start.Equal(day("2024-01-04")) {
		t.Errorf("forward from default should stay at 2024-01-04, got %s", start.Format("2006-01-02"))
	}

	// Two backward moves land on the history start, not before it
	start = Advance(Back, start, historyStart, today, n)
	start = Advance(Back, start, historyStart, today, n)
	if !start.Equal(historyStart) {
		t.Errorf("expected start clamped to 2024-01-01, got %s", start.Format("2006-01-02"))
	}

	window := Window(start, n)
	if !window[0].Equal(day("2024-01-01")) || !window[6].Equal(day("2024-01-07")) {
		t.Errorf("unexpected window: %s..%s",
			window[0].Format("2006-01-02"), window[6].Format("2006-01-02"))
	}
}
