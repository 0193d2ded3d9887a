// internal/schedule/recurrence.go
package schedule

import (
	"fmt"
	"time"
)

// Status is a campaign's lifecycle state derived from its date range.
type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusEnded    Status = "ended"
)

// weekdays indexed by their numeric value, Sunday=0 through Saturday=6.
// Matches time.Weekday numbering.
var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Number maps a weekday to 0..6, Sunday first. Unknown names map to
// Monday's number since Normalize defaults unknown weekdays to Monday.
func (w Weekday) Number() int {
	for i, d := range weekdays {
		if d == w {
			return i
		}
	}
	return Monday.Number()
}

// WeekdayFromNumber wraps any integer modulo 7, so negative and
// out-of-range inputs are well-defined.
func WeekdayFromNumber(n int) Weekday {
	return weekdays[((n%7)+7)%7]
}

// ParseClock splits an "HH:MM" string into hours and minutes. Inputs
// come from ClockOptions, so malformed strings are not validated here.
func ParseClock(clock string) (hours, minutes int) {
	fmt.Sscanf(clock, "%d:%d", &hours, &minutes)
	return hours, minutes
}

// SetClock puts an "HH:MM" wall-clock time onto the given calendar date.
func SetClock(date time.Time, clock string) time.Time {
	h, m := ParseClock(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// ClockAfter reports whether clock a is strictly later in the day than
// clock b. Zero-padded "HH:MM" strings compare correctly as strings.
// This is the single source of the end-after-start rule: Validate and
// EndOptionsAfter both go through it.
func ClockAfter(a, b string) bool {
	return a > b
}

// FormatClock renders "HH:MM" as a 12-hour label, e.g. "9:00 AM".
func FormatClock(clock string) string {
	h, m := ParseClock(clock)
	t := time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// FormatClockRange renders a slot as "9:00 AM - 5:00 PM".
func FormatClockRange(start, end string) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// ClockOptions returns the 48 half-hour values a slot may use, from
// "00:00" to "23:30".
func ClockOptions() []string {
	options := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}

// EndOptionsAfter returns the clock options a slot's end time may take
// given its start time.
func EndOptionsAfter(start string) []string {
	var options []string
	for _, opt := range ClockOptions() {
		if ClockAfter(opt, start) {
			options = append(options, opt)
		}
	}
	return options
}

// DaysUntil returns how many days from now until the next occurrence of
// the target weekday, 0 when today already is the target.
func DaysUntil(now time.Time, target Weekday) int {
	return (target.Number() + 7 - int(now.Weekday())) % 7
}

// NextOccurrence returns the calendar date of the next occurrence of the
// target weekday, at midnight. Same-day targets return today.
func NextOccurrence(now time.Time, target Weekday) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, DaysUntil(now, target))
}

// StatusAt derives a campaign's lifecycle state from its date range.
// Both boundaries count as active.
func StatusAt(now, start, end time.Time) Status {
	switch {
	case now.After(end):
		return StatusEnded
	case now.Before(start):
		return StatusUpcoming
	default:
		return StatusActive
	}
}

// NextActivation computes the soonest present-or-future instant at which
// the schedule switches a campaign on, within its [start, end] range.
// The second return is false when no activation remains (campaign ended,
// or every remaining slot falls after end).
//
// A slot on today's weekday whose start time has already passed rolls
// over to the same weekday next week.
func NextActivation(now, start, end time.Time, s Schedule) (time.Time, bool) {
	if now.After(end) {
		return time.Time{}, false
	}

	// Before the campaign starts, activations are measured from start.
	base := now
	if base.Before(start) {
		base = start
	}

	var best time.Time
	found := false
	for _, item := range s {
		for _, slot := range item.TimeSlots {
			candidate := SetClock(NextOccurrence(base, item.Weekday), slot.StartTime)
			if candidate.Before(base) {
				candidate = candidate.AddDate(0, 0, 7)
			}
			if candidate.After(end) {
				continue
			}
			if !found || candidate.Before(best) {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}

// FormatNextActivation renders a next-activation instant for display.
func FormatNextActivation(now, at time.Time, ok bool) string {
	if !ok {
		return "None scheduled"
	}
	if sameDay(now, at) {
		return "Today at " + at.Format("3:04 PM")
	}
	return at.Format("Mon, Jan 2, 2006 3:04 PM")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
