package port

import (
	"context"

	"adbudget/internal/core/domain"
)

// RecordSource supplies the historical campaign dataset. It is an outbound
// port: implementations read a CSV export or a database table and return
// every parseable row. Validity filtering happens in the usecase so that
// all sources share one enforcement point.
type RecordSource interface {
	// Load materializes the full dataset. It is called once at startup;
	// the returned slice is treated as immutable afterwards. A
	// *SchemaError is returned when required columns are absent.
	Load(ctx context.Context) ([]domain.CampaignRecord, error)
}
