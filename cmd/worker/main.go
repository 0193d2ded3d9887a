// cmd/worker/main.go
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pramou/campaign-backend/internal/app"
	"github.com/pramou/campaign-backend/internal/config"
	"github.com/pramou/campaign-backend/internal/db"
	"github.com/pramou/campaign-backend/internal/model"
	"github.com/pramou/campaign-backend/internal/queue"
	"github.com/pramou/campaign-backend/internal/repository"
	"github.com/pramou/campaign-backend/internal/schedule"
)

// The worker ticks on a fixed interval, computes each campaign's next
// activation, and publishes an event for every activation that falls
// inside the upcoming tick window. Consumers (notification senders,
// audit trails) hang off the queue.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.AMQPURL == "" {
		logger.Fatal("AMQP_URL is required for the worker")
	}

	conn, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer conn.Close()

	q, err := queue.NewAMQPQueue(cfg.AMQPURL)
	if err != nil {
		logger.Fatal("queue connection failed", zap.Error(err))
	}
	defer q.Close()

	repo := &repository.CampaignRepository{DB: conn}

	logger.Info("worker running", zap.Duration("interval", cfg.WorkerInterval))
	ticker := time.NewTicker(cfg.WorkerInterval)
	defer ticker.Stop()

	for {
		tick(context.Background(), repo, q, logger, cfg.WorkerInterval)
		<-ticker.C
	}
}

func tick(ctx context.Context, repo repository.CampaignRepositoryInterface, q queue.Queue, logger *zap.Logger, window time.Duration) {
	campaigns, err := loadAll(ctx, repo)
	if err != nil {
		logger.Error("failed to load campaigns", zap.Error(err))
		return
	}

	now := time.Now()
	for _, event := range dueActivations(campaigns, now, now.Add(window)) {
		if err := q.Publish(queue.ActivationsQueue, event); err != nil {
			logger.Error("failed to publish activation",
				zap.String("campaignId", event.CampaignID), zap.Error(err))
			continue
		}
		logger.Info("activation published",
			zap.String("campaignId", event.CampaignID),
			zap.Time("activatesAt", event.ActivatesAt))
	}
}

func loadAll(ctx context.Context, repo repository.CampaignRepositoryInterface) ([]*model.Campaign, error) {
	const pageSize = 100

	var all []*model.Campaign
	for offset := 0; ; offset += pageSize {
		page, total, err := repo.List(ctx, offset, pageSize, model.Filter{})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			return all, nil
		}
	}
}

// dueActivations returns an event for every campaign whose next
// activation falls inside [from, until).
func dueActivations(campaigns []*model.Campaign, from, until time.Time) []queue.ActivationEvent {
	var due []queue.ActivationEvent
	for _, c := range campaigns {
		at, ok := schedule.NextActivation(from, c.StartDate, c.EndDate, c.Schedule)
		if !ok || at.Before(from) || !at.Before(until) {
			continue
		}
		due = append(due, queue.ActivationEvent{
			CampaignID:  c.ID,
			Title:       c.Title,
			ActivatesAt: at,
		})
	}
	return due
}
