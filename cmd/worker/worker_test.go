package main

import (
	"testing"
	"time"

	"github.com/pramou/campaign-backend/internal/model"
	"github.com/pramou/campaign-backend/internal/schedule"
)

func weeklyCampaign(id string, weekday schedule.Weekday, start string, from time.Time) *model.Campaign {
	return &model.Campaign{
		ID:        id,
		Title:     "Campaign " + id,
		StartDate: from.AddDate(0, 0, -30),
		EndDate:   from.AddDate(0, 0, 30),
		Schedule: schedule.Schedule{{
			Weekday:   weekday,
			TimeSlots: []schedule.TimeSlot{{StartTime: start, EndTime: "23:30"}},
		}},
	}
}

func TestDueActivationsWindow(t *testing.T) {
	// Wednesday 2024-06-05 13:59, one-minute window.
	from := time.Date(2024, 6, 5, 13, 59, 0, 0, time.UTC)
	until := from.Add(time.Minute)

	campaigns := []*model.Campaign{
		weeklyCampaign("in-window", schedule.Wednesday, "14:00", from),
		weeklyCampaign("later-today", schedule.Wednesday, "15:00", from),
		weeklyCampaign("other-day", schedule.Friday, "14:00", from),
	}

	// The 14:00 activation is outside [13:59, 14:00).
	if due := dueActivations(campaigns, from, until); len(due) != 0 {
		t.Fatalf("expected nothing due before 14:00, got %d events", len(due))
	}

	// Slide the window to [14:00, 14:01).
	from = from.Add(time.Minute)
	until = until.Add(time.Minute)

	due := dueActivations(campaigns, from, until)
	if len(due) != 1 {
		t.Fatalf("expected exactly one due activation, got %d", len(due))
	}
	if due[0].CampaignID != "in-window" {
		t.Errorf("wrong campaign due: %s", due[0].CampaignID)
	}
	want := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	if !due[0].ActivatesAt.Equal(want) {
		t.Errorf("activation time = %v, want %v", due[0].ActivatesAt, want)
	}
}

func TestDueActivationsSkipsEndedCampaigns(t *testing.T) {
	from := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	ended := weeklyCampaign("ended", schedule.Wednesday, "14:00", from)
	ended.EndDate = from.AddDate(0, 0, -1)

	if due := dueActivations([]*model.Campaign{ended}, from, from.Add(time.Minute)); len(due) != 0 {
		t.Errorf("ended campaign should never be due, got %d events", len(due))
	}
}
