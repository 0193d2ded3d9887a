// internal/schedule/builder.go
package schedule

// Builder operations back the interactive schedule editor. Every
// operation takes a schedule by value, returns a new one plus a flag
// saying whether the edit applied; blocked edits return the input
// unchanged. The schedule invariants (at least one item, at least one
// slot per item, no duplicate weekdays) hold after every call.

// UnusedWeekdays lists the weekdays not yet present in the schedule, in
// numeric order.
func UnusedWeekdays(s Schedule) []Weekday {
	used := make(map[Weekday]bool, len(s))
	for _, item := range s {
		used[item.Weekday] = true
	}

	var unused []Weekday
	for _, d := range weekdays {
		if !used[d] {
			unused = append(unused, d)
		}
	}
	return unused
}

// AllWeekdaysUsed reports whether every weekday is already configured,
// which is when the UI disables its add button.
func AllWeekdaysUsed(s Schedule) bool {
	return len(UnusedWeekdays(s)) == 0
}

// AddWeekday appends a fresh item for the numerically smallest unused
// weekday. No-op when all 7 weekdays are in use.
func AddWeekday(s Schedule) (Schedule, bool) {
	unused := UnusedWeekdays(s)
	if len(unused) == 0 {
		return s, false
	}
	out := clone(s)
	return append(out, NewScheduleItem(unused[0])), true
}

// RemoveWeekday drops the item at index i. Blocked when only one item
// remains: a schedule must keep at least one weekday.
func RemoveWeekday(s Schedule, i int) (Schedule, bool) {
	if i < 0 || i >= len(s) || len(s) <= 1 {
		return s, false
	}
	out := clone(s)
	return append(out[:i], out[i+1:]...), true
}

// AddTimeSlot appends a fresh default slot to the item at index i.
func AddTimeSlot(s Schedule, i int) (Schedule, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	out := clone(s)
	out[i].TimeSlots = append(out[i].TimeSlots, NewTimeSlot())
	return out, true
}

// RemoveTimeSlot drops slot j from item i. Blocked when the item has
// only one slot left.
func RemoveTimeSlot(s Schedule, i, j int) (Schedule, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	slots := s[i].TimeSlots
	if j < 0 || j >= len(slots) || len(slots) <= 1 {
		return s, false
	}
	out := clone(s)
	out[i].TimeSlots = append(out[i].TimeSlots[:j], out[i].TimeSlots[j+1:]...)
	return out, true
}

// SetSlotStart replaces the start time of slot (i, j). Ordering against
// the end time is not enforced here; the editor constrains offered end
// values and Validate reports violations before submission.
func SetSlotStart(s Schedule, i, j int, clock string) (Schedule, bool) {
	return setSlotField(s, i, j, clock, true)
}

// SetSlotEnd replaces the end time of slot (i, j).
func SetSlotEnd(s Schedule, i, j int, clock string) (Schedule, bool) {
	return setSlotField(s, i, j, clock, false)
}

func setSlotField(s Schedule, i, j int, clock string, start bool) (Schedule, bool) {
	if i < 0 || i >= len(s) || j < 0 || j >= len(s[i].TimeSlots) {
		return s, false
	}
	out := clone(s)
	if start {
		out[i].TimeSlots[j].StartTime = clock
	} else {
		out[i].TimeSlots[j].EndTime = clock
	}
	return out, true
}
