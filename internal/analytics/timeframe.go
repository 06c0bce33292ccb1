package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Timeframe selects the reporting window.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "WEEK"
	TimeframeMonth Timeframe = "MONTH"
	TimeframeYear  Timeframe = "YEAR"
	TimeframeAll   Timeframe = "ALL"
)

// Timeframes lists every supported timeframe.
var Timeframes = []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeYear, TimeframeAll}

// epochFloor is where the ALL window starts.
var epochFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// UnknownTimeframeError signals a timeframe value outside Timeframes.
// Callers should treat it as a defect, not as user input to report back.
type UnknownTimeframeError struct {
	Value string
}

func (e *UnknownTimeframeError) Error() string {
	return fmt.Sprintf("unknown timeframe %q", e.Value)
}

// ParseTimeframe accepts a timeframe name in any case.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Timeframes {
		if tf == known {
			return tf, nil
		}
	}
	return "", &UnknownTimeframeError{Value: s}
}

// Label is the human-readable name used in reports and exports.
func (tf Timeframe) Label() string {
	switch tf {
	case TimeframeWeek:
		return "Last 7 Days"
	case TimeframeMonth:
		return "Last 30 Days"
	case TimeframeYear:
		return "Last Year"
	case TimeframeAll:
		return "All Time"
	}
	return string(tf)
}

// Window holds the current and previous intervals for a timeframe. Both
// intervals are closed: a record exactly on a boundary belongs to it, so a
// record at Start is counted in both the current and previous window.
type Window struct {
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
	// Degenerate is set for ALL, whose previous window has no length;
	// previous counts are then zero by definition.
	Degenerate bool
}

// NewWindow computes the window for tf ending at now. Months and years use
// calendar arithmetic (time.AddDate), so "one month before March 31" is
// normalized the same way the calendar does it.
func NewWindow(tf Timeframe, now time.Time) (Window, error) {
	switch tf {
	case TimeframeWeek:
		return calendarWindow(now, 0, 0, 7), nil
	case TimeframeMonth:
		return calendarWindow(now, 0, 1, 0), nil
	case TimeframeYear:
		return calendarWindow(now, 1, 0, 0), nil
	case TimeframeAll:
		return Window{
			Start:         epochFloor,
			End:           now,
			PreviousStart: epochFloor,
			PreviousEnd:   epochFloor,
			Degenerate:    true,
		}, nil
	}
	return Window{}, &UnknownTimeframeError{Value: string(tf)}
}

func calendarWindow(now time.Time, years, months, days int) Window {
	start := now.AddDate(-years, -months, -days)
	return Window{
		Start:         start,
		End:           now,
		PreviousStart: now.AddDate(-2*years, -2*months, -2*days),
		PreviousEnd:   start,
	}
}

// Contains reports whether t lies in the current window.
func (w Window) Contains(t time.Time) bool {
	return within(t, w.Start, w.End)
}

// ContainsPrevious reports whether t lies in the previous window.
func (w Window) ContainsPrevious(t time.Time) bool {
	if w.Degenerate {
		return false
	}
	return within(t, w.PreviousStart, w.PreviousEnd)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
