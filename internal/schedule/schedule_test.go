package schedule_test

import (
	"testing"

	"github.com/pramou/campaign-backend/internal/schedule"
)

func TestNormalizeEmptyInputs(t *testing.T) {
	for _, input := range []schedule.Schedule{nil, {}} {
		got := schedule.Normalize(input)

		if len(got) != 1 {
			t.Fatalf("expected 1 default item, got %d", len(got))
		}
		item := got[0]
		if item.Weekday != schedule.Monday {
			t.Errorf("expected default weekday Monday, got %s", item.Weekday)
		}
		if item.ID == "" {
			t.Errorf("expected a generated item ID")
		}
		if len(item.TimeSlots) != 1 {
			t.Fatalf("expected 1 default slot, got %d", len(item.TimeSlots))
		}
		slot := item.TimeSlots[0]
		if slot.StartTime != "09:00" || slot.EndTime != "17:00" {
			t.Errorf("expected default 09:00-17:00 slot, got %s-%s", slot.StartTime, slot.EndTime)
		}
		if slot.ID == "" {
			t.Errorf("expected a generated slot ID")
		}
	}
}

func TestNormalizeRepairsItems(t *testing.T) {
	input := schedule.Schedule{
		{Weekday: schedule.Friday}, // no ID, no slots
		{ID: "item-2", Weekday: schedule.Tuesday, TimeSlots: []schedule.TimeSlot{
			{StartTime: "08:30", EndTime: "12:00"}, // no ID
		}},
	}

	got := schedule.Normalize(input)

	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Errorf("missing item ID was not generated")
	}
	if len(got[0].TimeSlots) != 1 {
		t.Fatalf("empty slot list was not replaced with a default slot")
	}
	if got[1].ID != "item-2" {
		t.Errorf("supplied item ID was not preserved, got %q", got[1].ID)
	}
	if got[1].TimeSlots[0].ID == "" {
		t.Errorf("missing slot ID was not generated")
	}
	if got[1].TimeSlots[0].StartTime != "08:30" || got[1].TimeSlots[0].EndTime != "12:00" {
		t.Errorf("supplied times were changed: %+v", got[1].TimeSlots[0])
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := schedule.Schedule{
		{Weekday: schedule.Wednesday, TimeSlots: []schedule.TimeSlot{
			{StartTime: "10:00", EndTime: "11:00"},
		}},
	}

	schedule.Normalize(input)

	if input[0].ID != "" {
		t.Errorf("input item ID was mutated to %q", input[0].ID)
	}
	if input[0].TimeSlots[0].ID != "" {
		t.Errorf("input slot ID was mutated to %q", input[0].TimeSlots[0].ID)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := schedule.Normalize(schedule.Schedule{
		{Weekday: schedule.Saturday},
		{Weekday: schedule.Sunday, TimeSlots: []schedule.TimeSlot{
			{StartTime: "06:00", EndTime: "07:30"},
			{StartTime: "20:00", EndTime: "21:00"},
		}},
	})
	twice := schedule.Normalize(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed item count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID || once[i].Weekday != twice[i].Weekday {
			t.Errorf("item %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
		if len(once[i].TimeSlots) != len(twice[i].TimeSlots) {
			t.Fatalf("item %d slot count changed on second pass", i)
		}
		for j := range once[i].TimeSlots {
			if once[i].TimeSlots[j] != twice[i].TimeSlots[j] {
				t.Errorf("slot (%d,%d) changed on second pass", i, j)
			}
		}
	}
}

func TestFactoriesGenerateFreshIdentities(t *testing.T) {
	a := schedule.NewTimeSlot()
	b := schedule.NewTimeSlot()
	if a.ID == b.ID {
		t.Errorf("two fresh slots share ID %q", a.ID)
	}

	item := schedule.NewScheduleItem("")
	if item.Weekday != schedule.Monday {
		t.Errorf("unspecified weekday should default to Monday, got %s", item.Weekday)
	}
	if len(item.TimeSlots) != 1 {
		t.Errorf("fresh item should carry one default slot, got %d", len(item.TimeSlots))
	}
}
