// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pramou/campaign-backend/internal/cache"
	appErrors "github.com/pramou/campaign-backend/internal/errors"
	"github.com/pramou/campaign-backend/internal/model"
	"github.com/pramou/campaign-backend/internal/repository"
	"github.com/pramou/campaign-backend/internal/schedule"
)

const (
	maxTitleLen   = 100
	maxPurposeLen = 500
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Cache        cache.Store // optional, nil disables caching
	Logger       *zap.Logger
	Now          func() time.Time // defaults to time.Now, overridable in tests
}

func (s *CampaignService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *CampaignService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// decorate fills in the derived status and next activation fields.
func (s *CampaignService) decorate(c *model.Campaign) {
	now := s.now()
	c.Status = schedule.StatusAt(now, c.StartDate, c.EndDate)
	if at, ok := schedule.NextActivation(now, c.StartDate, c.EndDate, c.Schedule); ok {
		c.NextActivation = &at
	} else {
		c.NextActivation = nil
	}
}

// validate checks a create/update payload. Schedule shape problems have
// already been repaired by Normalize before this runs; what remains are
// genuine user errors reported back field by field.
func validate(in model.CreateCampaignInput) error {
	fields := map[string]string{}

	if in.Title == "" {
		fields["title"] = "campaign title is required"
	} else if len(in.Title) > maxTitleLen {
		fields["title"] = fmt.Sprintf("title must be %d characters or less", maxTitleLen)
	}
	if in.Purpose == "" {
		fields["purpose"] = "campaign purpose is required"
	} else if len(in.Purpose) > maxPurposeLen {
		fields["purpose"] = fmt.Sprintf("purpose must be %d characters or less", maxPurposeLen)
	}

	validType := false
	for _, t := range model.CampaignTypes {
		if in.Type == t {
			validType = true
			break
		}
	}
	if !validType {
		fields["type"] = "invalid campaign type"
	}

	if in.StartDate.IsZero() {
		fields["startDate"] = "start date is required"
	}
	if in.EndDate.IsZero() {
		fields["endDate"] = "end date is required"
	} else if in.EndDate.Before(in.StartDate) {
		fields["endDate"] = "end date must be after start date"
	}

	for _, fe := range schedule.Validate(in.Schedule) {
		key := "schedule"
		if fe.Item >= 0 {
			key = fmt.Sprintf("schedule[%d]", fe.Item)
			if fe.Slot >= 0 {
				key = fmt.Sprintf("schedule[%d].timeSlots[%d].%s", fe.Item, fe.Slot, fe.Field)
			}
		}
		fields[key] = fe.Message
	}

	if len(fields) > 0 {
		return appErrors.NewValidation(fields)
	}
	return nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, in model.CreateCampaignInput) (*model.Campaign, error) {
	in.Schedule = schedule.Normalize(in.Schedule)
	if err := validate(in); err != nil {
		return nil, err
	}

	c := &model.Campaign{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Purpose:   in.Purpose,
		Type:      in.Type,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Schedule:  in.Schedule,
	}

	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.saveToCache(ctx, c)
	s.decorate(c)

	s.log().Info("campaign created", zap.String("id", c.ID), zap.String("title", c.Title))
	return c, nil
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, id string, in model.UpdateCampaignInput) (*model.Campaign, error) {
	in.Schedule = schedule.Normalize(in.Schedule)
	if err := validate(in); err != nil {
		return nil, err
	}

	existing, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c := &model.Campaign{
		ID:        id,
		Title:     in.Title,
		Purpose:   in.Purpose,
		Type:      in.Type,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Schedule:  in.Schedule,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.CampaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.saveToCache(ctx, c)
	s.decorate(c)

	s.log().Info("campaign updated", zap.String("id", c.ID))
	return c, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.CampaignRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, id); err != nil {
			s.log().Warn("cache invalidate failed", zap.String("id", id), zap.Error(err))
		}
	}
	s.log().Info("campaign deleted", zap.String("id", id))
	return nil
}

// GetCampaign reads through the cache when one is configured.
func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.log().Warn("cache read failed", zap.String("id", id), zap.Error(err))
		}
		if cached != nil {
			s.decorate(cached)
			return cached, nil
		}
	}

	c, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.saveToCache(ctx, c)
	s.decorate(c)
	return c, nil
}

// ListCampaigns fetches campaigns with pagination and filters, and
// decorates each with its derived fields.
func (s *CampaignService) ListCampaigns(ctx context.Context, page, limit int, filter model.Filter) ([]model.Campaign, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	ptrs, total, err := s.CampaignRepo.List(ctx, offset, limit, filter)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		s.decorate(c)
		campaigns[i] = *c
	}

	totalPages := (total + limit - 1) / limit
	meta := map[string]int{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": totalPages,
	}

	return campaigns, meta, nil
}

// cache failures only cost a later read, so they are logged, not returned.
func (s *CampaignService) saveToCache(ctx context.Context, c *model.Campaign) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Save(ctx, c); err != nil {
		s.log().Warn("cache save failed", zap.String("id", c.ID), zap.Error(err))
	}
}
