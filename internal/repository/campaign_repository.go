// internal/repository/campaign_repository.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	appErrors "github.com/pramou/campaign-backend/internal/errors"
	"github.com/pramou/campaign-backend/internal/model"
	"github.com/pramou/campaign-backend/internal/schedule"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
	Update(ctx context.Context, c *model.Campaign) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	List(ctx context.Context, offset, limit int, filter model.Filter) ([]*model.Campaign, int, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, title, purpose, type, start_date, end_date, schedule, created_at, updated_at`

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	sched, err := json.Marshal(c.Schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	query := `
        INSERT INTO campaigns (id, title, purpose, type, start_date, end_date, schedule, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err = r.DB.ExecContext(ctx, query,
		c.ID, c.Title, c.Purpose, c.Type, c.StartDate, c.EndDate, sched, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *model.Campaign) error {
	sched, err := json.Marshal(c.Schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	c.UpdatedAt = time.Now()
	query := `
        UPDATE campaigns
        SET title=$1, purpose=$2, type=$3, start_date=$4, end_date=$5, schedule=$6, updated_at=$7
        WHERE id=$8
    `
	res, err := r.DB.ExecContext(ctx, query,
		c.Title, c.Purpose, c.Type, c.StartDate, c.EndDate, sched, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) List(ctx context.Context, offset, limit int, filter model.Filter) ([]*model.Campaign, int, error) {
	where, args := buildFilter(filter)

	query := `SELECT ` + campaignColumns + ` FROM campaigns` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM campaigns` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count campaigns: %w", err)
	}

	return campaigns, total, nil
}

// buildFilter turns a Filter into a WHERE clause and its arguments. The
// status filter is expressed against the database clock since status is
// derived, not stored.
func buildFilter(filter model.Filter) (string, []interface{}) {
	where := ` WHERE 1=1`
	args := []interface{}{}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		where += fmt.Sprintf(` AND title ILIKE $%d`, len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(` AND type=$%d`, len(args))
	}
	switch filter.Status {
	case schedule.StatusActive:
		where += ` AND start_date <= NOW() AND end_date >= NOW()`
	case schedule.StatusUpcoming:
		where += ` AND start_date > NOW()`
	case schedule.StatusEnded:
		where += ` AND end_date < NOW()`
	}

	return where, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	var sched []byte
	err := row.Scan(&c.ID, &c.Title, &c.Purpose, &c.Type,
		&c.StartDate, &c.EndDate, &sched, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(sched) > 0 {
		if err := json.Unmarshal(sched, &c.Schedule); err != nil {
			return nil, fmt.Errorf("unmarshal schedule: %w", err)
		}
	}
	// Rows written before schedules were mandatory may hold nothing.
	c.Schedule = schedule.Normalize(c.Schedule)
	return &c, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
