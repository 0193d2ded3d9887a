// internal/schedule/validate.go
package schedule

import "fmt"

// FieldError points at one invalid schedule field. Item and Slot are
// indexes into the schedule; Slot is -1 for item-level problems and both
// are -1 for schedule-level problems.
type FieldError struct {
	Item    int    `json:"item"`
	Slot    int    `json:"slot"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("schedule[%d].slot[%d] %s: %s", e.Item, e.Slot, e.Field, e.Message)
}

// Validate reports every invalid field in the schedule. Invalid input is
// a validation signal for the caller to display, never a fault: the
// schedule itself is left untouched.
func Validate(s Schedule) []FieldError {
	var errs []FieldError

	if len(s) == 0 {
		return []FieldError{{Item: -1, Slot: -1, Field: "schedule", Message: "at least one weekday is required"}}
	}

	seen := make(map[Weekday]bool, len(s))
	for i, item := range s {
		if seen[item.Weekday] {
			errs = append(errs, FieldError{Item: i, Slot: -1, Field: "weekday", Message: "weekday is configured more than once"})
		}
		seen[item.Weekday] = true

		if len(item.TimeSlots) == 0 {
			errs = append(errs, FieldError{Item: i, Slot: -1, Field: "timeSlots", Message: "at least one time slot is required"})
			continue
		}
		for j, slot := range item.TimeSlots {
			if !ClockAfter(slot.EndTime, slot.StartTime) {
				errs = append(errs, FieldError{Item: i, Slot: j, Field: "endTime", Message: "end time must be after start time"})
			}
		}
	}
	return errs
}

// Valid reports whether the schedule passes Validate cleanly.
func Valid(s Schedule) bool {
	return len(Validate(s)) == 0
}
