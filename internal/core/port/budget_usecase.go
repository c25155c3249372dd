package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// BudgetUseCase defines the operations exposed by the estimator core. This
// is the primary port consumed by the presentation layer: it offers the
// option lists a UI needs to populate its selectors and the estimate
// computation itself.
type BudgetUseCase interface {
	// Estimate derives the effective CPM for the requested segment and
	// scales it to the target impression volume. It returns
	// ErrInvalidInput when the target is not a positive finite number and
	// ErrNoData when the segment has no valid rows or zero total
	// impressions. Both leave the dataset usable for further queries.
	Estimate(ctx context.Context, req EstimateReq) (*EstimateResp, error)

	// Platforms returns the distinct platform values present in the
	// filtered dataset, sorted ascending.
	Platforms(ctx context.Context) ([]string, error)

	// CampaignTypes returns the distinct campaign types co-occurring with
	// the given platform in the filtered dataset, sorted ascending.
	CampaignTypes(ctx context.Context, platform string) ([]string, error)
}

// EstimateReq carries the three query inputs supplied by the presentation
// layer. Platform and CampaignType must be values occurring in the dataset;
// TargetImpressions is the impression volume being priced.
type EstimateReq struct {
	Platform          string  `json:"platform"`
	CampaignType      string  `json:"campaign_type"`
	TargetImpressions float64 `json:"target_impressions"`
}

// EstimateResp is the estimate returned to the caller. Besides the budget
// it exposes the segment totals the rate was derived from, so a UI can show
// its working. Amounts are EUR at full precision.
type EstimateResp struct {
	ID                string          `json:"id"`
	Platform          string          `json:"platform"`
	CampaignType      string          `json:"campaign_type"`
	Records           int             `json:"records"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalImpressions  int64           `json:"total_impressions"`
	EffectiveCPM      decimal.Decimal `json:"effective_cpm"`
	TargetImpressions decimal.Decimal `json:"target_impressions"`
	EstimatedBudget   decimal.Decimal `json:"estimated_budget"`
	Currency          string          `json:"currency"`
}
