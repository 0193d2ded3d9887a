package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pramou/campaign-backend/internal/model"
)

func seedCampaigns(t *testing.T, repo *MockCampaignRepo, count int) {
	t.Helper()
	svc := newService(repo, nil)
	for i := 0; i < count; i++ {
		in := validInput()
		in.Title = fmt.Sprintf("Campaign %02d", i+1)
		if _, err := svc.CreateCampaign(context.Background(), in); err != nil {
			t.Fatalf("seed campaign %d: %v", i+1, err)
		}
	}
}

func TestListCampaignsPagination(t *testing.T) {
	repo := NewMockCampaignRepo()
	seedCampaigns(t, repo, 25)
	svc := newService(repo, nil)

	campaigns, meta, err := svc.ListCampaigns(context.Background(), 1, 10, model.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 10 {
		t.Errorf("expected 10 campaigns on page 1, got %d", len(campaigns))
	}
	if meta["total"] != 25 || meta["totalPages"] != 3 || meta["page"] != 1 || meta["limit"] != 10 {
		t.Errorf("unexpected meta: %v", meta)
	}

	campaigns, meta, err = svc.ListCampaigns(context.Background(), 3, 10, model.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 5 {
		t.Errorf("expected 5 campaigns on the last page, got %d", len(campaigns))
	}
	if meta["page"] != 3 {
		t.Errorf("unexpected meta: %v", meta)
	}
}

func TestListCampaignsClampsBadInputs(t *testing.T) {
	repo := NewMockCampaignRepo()
	seedCampaigns(t, repo, 3)
	svc := newService(repo, nil)

	campaigns, meta, err := svc.ListCampaigns(context.Background(), -4, 0, model.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["page"] != 1 || meta["limit"] != 10 {
		t.Errorf("page/limit not clamped: %v", meta)
	}
	if len(campaigns) != 3 {
		t.Errorf("expected all 3 campaigns, got %d", len(campaigns))
	}

	_, meta, err = svc.ListCampaigns(context.Background(), 1, 5000, model.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["limit"] != 100 {
		t.Errorf("limit not capped at 100: %v", meta)
	}
}

func TestListCampaignsDecoratesStatus(t *testing.T) {
	repo := NewMockCampaignRepo()
	svc := newService(repo, nil)

	in := validInput()
	in.Title = "Future Campaign"
	in.StartDate = testNow.AddDate(0, 0, 7)
	in.EndDate = testNow.AddDate(0, 0, 30)
	if _, err := svc.CreateCampaign(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	campaigns, _, err := svc.ListCampaigns(context.Background(), 1, 10, model.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(campaigns))
	}
	if campaigns[0].Status != "upcoming" {
		t.Errorf("expected upcoming status, got %q", campaigns[0].Status)
	}
	if campaigns[0].NextActivation == nil {
		t.Errorf("upcoming campaign should still report its first activation")
	}
}
