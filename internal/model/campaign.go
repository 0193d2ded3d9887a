// internal/model/campaign.go
package model

import (
	"time"

	"github.com/pramou/campaign-backend/internal/schedule"
)

type CampaignType string

const (
	TypeCostPerOrder CampaignType = "Cost per Order"
	TypeCostPerClick CampaignType = "Cost per Click"
	TypeBuyOneGetOne CampaignType = "Buy One Get One"
)

// CampaignTypes lists the valid campaign types the dashboard offers.
var CampaignTypes = []CampaignType{TypeCostPerOrder, TypeCostPerClick, TypeBuyOneGetOne}

// Campaign is the persisted campaign record. Status and NextActivation
// are derived from the date range and schedule at read time, never
// stored. JSON names follow the dashboard's wire contract.
type Campaign struct {
	ID             string            `db:"id" json:"id"`
	Title          string            `db:"title" json:"title"`
	Purpose        string            `db:"purpose" json:"purpose"`
	Type           CampaignType      `db:"type" json:"type"`
	StartDate      time.Time         `db:"start_date" json:"startDate"`
	EndDate        time.Time         `db:"end_date" json:"endDate"`
	Schedule       schedule.Schedule `db:"schedule" json:"schedule"`
	Status         schedule.Status   `db:"-" json:"status,omitempty"`
	NextActivation *time.Time        `db:"-" json:"nextActivation,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updatedAt"`
}

// CreateCampaignInput is the payload for creating a campaign.
type CreateCampaignInput struct {
	Title     string            `json:"title"`
	Purpose   string            `json:"purpose"`
	Type      CampaignType      `json:"type"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
	Schedule  schedule.Schedule `json:"schedule"`
}

// UpdateCampaignInput is the payload for updating a campaign. The ID
// comes from the URL, not the body.
type UpdateCampaignInput = CreateCampaignInput

// Filter narrows campaign listings. Status filters on the derived
// lifecycle state.
type Filter struct {
	Title  string
	Type   CampaignType
	Status schedule.Status
}
