package schedule_test

import (
	"testing"

	"github.com/pramou/campaign-backend/internal/schedule"
)

func TestAddWeekdayPicksSmallestUnused(t *testing.T) {
	s := schedule.Schedule{
		schedule.NewScheduleItem(schedule.Monday),
		schedule.NewScheduleItem(schedule.Tuesday),
	}

	got, ok := schedule.AddWeekday(s)
	if !ok {
		t.Fatal("expected add to apply")
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	// Sunday (0) is the smallest weekday not in use.
	if got[2].Weekday != schedule.Sunday {
		t.Errorf("expected Sunday appended, got %s", got[2].Weekday)
	}
	if len(got[2].TimeSlots) != 1 {
		t.Errorf("new item should carry one default slot")
	}
	if len(s) != 2 {
		t.Errorf("input schedule was mutated")
	}
}

func TestAddWeekdayNoOpWhenAllUsed(t *testing.T) {
	var s schedule.Schedule
	for i := 0; i < 7; i++ {
		s = append(s, schedule.NewScheduleItem(schedule.WeekdayFromNumber(i)))
	}
	if !schedule.AllWeekdaysUsed(s) {
		t.Fatal("expected all weekdays used")
	}

	got, ok := schedule.AddWeekday(s)
	if ok || len(got) != 7 {
		t.Errorf("adding to a full schedule should be a no-op, got %d items (applied=%v)", len(got), ok)
	}
}

func TestRemoveWeekdayKeepsAtLeastOne(t *testing.T) {
	s := schedule.Schedule{schedule.NewScheduleItem(schedule.Monday)}

	got, ok := schedule.RemoveWeekday(s, 0)
	if ok || len(got) != 1 {
		t.Errorf("removing the last item should be blocked, got %d items (applied=%v)", len(got), ok)
	}

	s = append(s, schedule.NewScheduleItem(schedule.Friday))
	got, ok = schedule.RemoveWeekday(s, 0)
	if !ok || len(got) != 1 {
		t.Fatalf("expected removal to apply, got %d items (applied=%v)", len(got), ok)
	}
	if got[0].Weekday != schedule.Friday {
		t.Errorf("wrong item removed, remaining weekday %s", got[0].Weekday)
	}
}

func TestRemoveTimeSlotKeepsAtLeastOne(t *testing.T) {
	s := schedule.Schedule{schedule.NewScheduleItem(schedule.Monday)}

	got, ok := schedule.RemoveTimeSlot(s, 0, 0)
	if ok || len(got[0].TimeSlots) != 1 {
		t.Errorf("removing the last slot should be blocked (applied=%v)", ok)
	}

	s, ok = schedule.AddTimeSlot(s, 0)
	if !ok || len(s[0].TimeSlots) != 2 {
		t.Fatalf("expected 2 slots after add, got %d (applied=%v)", len(s[0].TimeSlots), ok)
	}

	got, ok = schedule.RemoveTimeSlot(s, 0, 1)
	if !ok || len(got[0].TimeSlots) != 1 {
		t.Errorf("expected removal to apply, got %d slots (applied=%v)", len(got[0].TimeSlots), ok)
	}
}

func TestSetSlotFieldsAreAdvisory(t *testing.T) {
	s := schedule.Schedule{schedule.NewScheduleItem(schedule.Monday)}

	s, ok := schedule.SetSlotStart(s, 0, 0, "10:00")
	if !ok || s[0].TimeSlots[0].StartTime != "10:00" {
		t.Fatalf("start time not set (applied=%v)", ok)
	}

	// Out-of-order assignment is accepted here; Validate flags it.
	s, ok = schedule.SetSlotEnd(s, 0, 0, "08:00")
	if !ok || s[0].TimeSlots[0].EndTime != "08:00" {
		t.Fatalf("end time not set (applied=%v)", ok)
	}

	errs := schedule.Validate(s)
	if len(errs) != 1 {
		t.Fatalf("expected one validation error, got %v", errs)
	}
	if errs[0].Item != 0 || errs[0].Slot != 0 || errs[0].Field != "endTime" {
		t.Errorf("error does not point at the slot: %+v", errs[0])
	}
}

func TestSetSlotFieldOutOfRange(t *testing.T) {
	s := schedule.Schedule{schedule.NewScheduleItem(schedule.Monday)}
	if _, ok := schedule.SetSlotStart(s, 3, 0, "10:00"); ok {
		t.Error("out-of-range item index should not apply")
	}
	if _, ok := schedule.SetSlotEnd(s, 0, 5, "10:00"); ok {
		t.Error("out-of-range slot index should not apply")
	}
}

func TestValidateEmptyAndValidSchedules(t *testing.T) {
	if errs := schedule.Validate(nil); len(errs) != 1 {
		t.Errorf("empty schedule should produce one schedule-level error, got %v", errs)
	}
	if !schedule.Valid(schedule.DefaultSchedule()) {
		t.Error("default schedule should be valid")
	}
}
