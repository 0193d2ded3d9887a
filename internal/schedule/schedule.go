// internal/schedule/schedule.go
package schedule

import "github.com/google/uuid"

// Weekday names match what the dashboard sends over the wire.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// TimeSlot is one daily activation window. Start and end are 24-hour
// "HH:MM" wall-clock strings; the ID only exists so list UIs can track
// rows across edits.
type TimeSlot struct {
	ID        string `json:"id,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleItem is one weekday plus its time slots. A valid item always
// has at least one slot.
type ScheduleItem struct {
	ID        string     `json:"id,omitempty"`
	Weekday   Weekday    `json:"weekday"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Schedule is the full weekly recurrence pattern of a campaign: at most
// one item per weekday, at least one item overall.
type Schedule []ScheduleItem

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
)

func newID() string {
	return uuid.NewString()
}

// NewTimeSlot returns a fresh 09:00-17:00 slot.
func NewTimeSlot() TimeSlot {
	return TimeSlot{
		ID:        newID(),
		StartTime: defaultStartTime,
		EndTime:   defaultEndTime,
	}
}

// NewScheduleItem returns a fresh item for the given weekday with one
// default slot. An empty weekday defaults to Monday.
func NewScheduleItem(weekday Weekday) ScheduleItem {
	if weekday == "" {
		weekday = Monday
	}
	return ScheduleItem{
		ID:        newID(),
		Weekday:   weekday,
		TimeSlots: []TimeSlot{NewTimeSlot()},
	}
}

// DefaultSchedule is what new campaigns start with.
func DefaultSchedule() Schedule {
	return Schedule{NewScheduleItem(Monday)}
}

// Normalize repairs a schedule coming from any external source so the
// rest of the code can rely on its shape: nil or empty input becomes the
// default schedule, items without slots get a default slot, and missing
// identities are filled in. Supplied times are never touched and the
// input is never mutated.
func Normalize(s Schedule) Schedule {
	if len(s) == 0 {
		return DefaultSchedule()
	}

	out := make(Schedule, len(s))
	for i, item := range s {
		fixed := ScheduleItem{
			ID:      item.ID,
			Weekday: item.Weekday,
		}
		if fixed.ID == "" {
			fixed.ID = newID()
		}
		if fixed.Weekday == "" {
			fixed.Weekday = Monday
		}

		if len(item.TimeSlots) == 0 {
			fixed.TimeSlots = []TimeSlot{NewTimeSlot()}
		} else {
			fixed.TimeSlots = make([]TimeSlot, len(item.TimeSlots))
			for j, slot := range item.TimeSlots {
				if slot.ID == "" {
					slot.ID = newID()
				}
				fixed.TimeSlots[j] = slot
			}
		}
		out[i] = fixed
	}
	return out
}

// clone deep-copies a schedule so builder operations never alias the
// caller's slices.
func clone(s Schedule) Schedule {
	out := make(Schedule, len(s))
	for i, item := range s {
		slots := make([]TimeSlot, len(item.TimeSlots))
		copy(slots, item.TimeSlots)
		item.TimeSlots = slots
		out[i] = item
	}
	return out
}
