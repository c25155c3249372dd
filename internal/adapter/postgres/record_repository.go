package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

// RecordRepository implements port.RecordSource over a campaign_records
// table populated from campaign exports. The schema is fixed by migrations,
// so unlike the CSV source there is no header normalization to do here.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository returns a new repository instance.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// Load reads the whole table. Cost is selected as text and parsed into a
// decimal to keep NUMERIC values at full precision.
func (r *RecordRepository) Load(ctx context.Context) ([]domain.CampaignRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT status, platform, campaign_type, cost::text, impressions
        FROM campaign_records`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var (
			rec     domain.CampaignRecord
			costStr string
		)
		if err := row.Scan(&rec.Status, &rec.Platform, &rec.CampaignType, &costStr, &rec.Impressions); err != nil {
			return rec, err
		}
		cost, err := decimal.NewFromString(costStr)
		if err != nil {
			return rec, err
		}
		rec.Cost = cost
		return rec, nil
	})
}
