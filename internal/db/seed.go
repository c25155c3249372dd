package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adbudget/internal/core/domain"
)

// Seed replaces the contents of campaign_records with the given records,
// typically parsed from a CSV export. It runs in a single transaction so a
// failed import leaves the previous dataset intact. Records are stored
// as-is; validity filtering stays a query-time concern.
func Seed(ctx context.Context, pool *pgxpool.Pool, records []domain.CampaignRecord) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `TRUNCATE campaign_records`); err != nil {
		return err
	}
	for _, r := range records {
		_, err = tx.Exec(ctx, `INSERT INTO campaign_records
    (status, platform, campaign_type, cost, impressions)
VALUES ($1,$2,$3,$4,$5)`,
			r.Status, r.Platform, r.CampaignType, r.Cost.String(), r.Impressions)
		if err != nil {
			return err
		}
	}
	return nil
}
