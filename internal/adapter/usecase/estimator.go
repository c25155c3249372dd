package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// BudgetEstimator implements port.BudgetUseCase over an in-memory dataset.
// The record slice is filtered once at construction and never mutated, so
// concurrent queries need no locking. Each query recomputes its segment
// aggregate; the datasets this serves are export-sized, not log-scale.
type BudgetEstimator struct {
	records []domain.CampaignRecord
}

// NewBudgetEstimator loads the dataset from src and keeps only the valid
// rows (enabled status, positive cost, positive impressions). Load errors,
// including *port.SchemaError, are returned as-is so main can abort
// startup.
func NewBudgetEstimator(ctx context.Context, src port.RecordSource) (*BudgetEstimator, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &BudgetEstimator{records: domain.FilterValid(records)}, nil
}

// Estimate computes the effective CPM of the requested segment and scales
// it to the target impression volume.
func (u *BudgetEstimator) Estimate(_ context.Context, req port.EstimateReq) (*port.EstimateResp, error) {
	if req.TargetImpressions <= 0 || math.IsNaN(req.TargetImpressions) || math.IsInf(req.TargetImpressions, 0) {
		return nil, fmt.Errorf("%w: target impressions must be a positive finite number", port.ErrInvalidInput)
	}
	target := decimal.NewFromFloat(req.TargetImpressions)

	seg := domain.AggregateSegment(u.records, req.Platform, req.CampaignType)
	cpm, ok := seg.EffectiveCPM()
	if !ok {
		return nil, fmt.Errorf("%w: platform %q, campaign type %q", port.ErrNoData, req.Platform, req.CampaignType)
	}

	return &port.EstimateResp{
		ID:                uuid.NewString(),
		Platform:          seg.Platform,
		CampaignType:      seg.CampaignType,
		Records:           seg.Records,
		TotalCost:         seg.TotalCost,
		TotalImpressions:  seg.TotalImpressions,
		EffectiveCPM:      cpm,
		TargetImpressions: target,
		EstimatedBudget:   domain.EstimateBudget(cpm, target),
		Currency:          "EUR",
	}, nil
}

// Platforms returns the sorted distinct platforms of the filtered dataset.
func (u *BudgetEstimator) Platforms(_ context.Context) ([]string, error) {
	return u.distinct(func(r domain.CampaignRecord) (string, bool) {
		return r.Platform, true
	}), nil
}

// CampaignTypes returns the sorted distinct campaign types co-occurring
// with the given platform.
func (u *BudgetEstimator) CampaignTypes(_ context.Context, platform string) ([]string, error) {
	return u.distinct(func(r domain.CampaignRecord) (string, bool) {
		return r.CampaignType, r.Platform == platform
	}), nil
}

func (u *BudgetEstimator) distinct(pick func(domain.CampaignRecord) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range u.records {
		v, ok := pick(r)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
