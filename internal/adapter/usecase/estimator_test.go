package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// stubSource is an in-memory port.RecordSource for tests.
type stubSource struct {
	records []domain.CampaignRecord
	err     error
}

func (s *stubSource) Load(context.Context) ([]domain.CampaignRecord, error) {
	return s.records, s.err
}

func rec(status, platform, ctype string, cost string, impressions int64) domain.CampaignRecord {
	return domain.CampaignRecord{
		Status:       status,
		Platform:     platform,
		CampaignType: ctype,
		Cost:         decimal.RequireFromString(cost),
		Impressions:  impressions,
	}
}

func newEstimator(t *testing.T, records ...domain.CampaignRecord) *BudgetEstimator {
	t.Helper()
	est, err := NewBudgetEstimator(context.Background(), &stubSource{records: records})
	require.NoError(t, err)
	return est
}

func TestEstimateSegment(t *testing.T) {
	est := newEstimator(t,
		rec("Enabled", "Meta", "Awareness", "100", 50000),
		rec("Enabled", "Meta", "Awareness", "50", 25000),
	)

	resp, err := est.Estimate(context.Background(), port.EstimateReq{
		Platform:          "Meta",
		CampaignType:      "Awareness",
		TargetImpressions: 100000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 2, resp.Records)
	assert.Equal(t, int64(75000), resp.TotalImpressions)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("150")), "total cost %s", resp.TotalCost)
	assert.True(t, resp.EffectiveCPM.Equal(decimal.RequireFromString("2")), "cpm %s", resp.EffectiveCPM)
	assert.True(t, resp.EstimatedBudget.Equal(decimal.RequireFromString("200")), "budget %s", resp.EstimatedBudget)
	assert.Equal(t, "EUR", resp.Currency)
}

func TestEstimateUnknownSegment(t *testing.T) {
	est := newEstimator(t,
		rec("Enabled", "Meta", "Awareness", "100", 50000),
		rec("Enabled", "Meta", "Awareness", "50", 25000),
	)

	_, err := est.Estimate(context.Background(), port.EstimateReq{
		Platform:          "Meta",
		CampaignType:      "Conversion",
		TargetImpressions: 10000,
	})
	assert.ErrorIs(t, err, port.ErrNoData)
}

func TestEstimateFiltersDisabledRecords(t *testing.T) {
	est := newEstimator(t, rec("Paused", "Meta", "Awareness", "100", 1000))

	_, err := est.Estimate(context.Background(), port.EstimateReq{
		Platform:          "Meta",
		CampaignType:      "Awareness",
		TargetImpressions: 1000,
	})
	assert.ErrorIs(t, err, port.ErrNoData)
}

func TestEstimateInvalidTarget(t *testing.T) {
	est := newEstimator(t, rec("Enabled", "Meta", "Awareness", "100", 50000))

	for name, target := range map[string]float64{
		"negative": -5,
		"zero":     0,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	} {
		_, err := est.Estimate(context.Background(), port.EstimateReq{
			Platform:          "Meta",
			CampaignType:      "Awareness",
			TargetImpressions: target,
		})
		assert.ErrorIs(t, err, port.ErrInvalidInput, "case %s", name)
	}
}

// Query errors must not disturb the loaded dataset: a failed query is
// followed by a successful one against the same estimator.
func TestEstimateQueryErrorsAreIsolated(t *testing.T) {
	est := newEstimator(t, rec("Enabled", "Meta", "Awareness", "100", 50000))

	_, err := est.Estimate(context.Background(), port.EstimateReq{
		Platform: "Meta", CampaignType: "Awareness", TargetImpressions: -1,
	})
	require.Error(t, err)

	resp, err := est.Estimate(context.Background(), port.EstimateReq{
		Platform: "Meta", CampaignType: "Awareness", TargetImpressions: 1000,
	})
	require.NoError(t, err)
	assert.True(t, resp.EstimatedBudget.Equal(decimal.RequireFromString("2")), "budget %s", resp.EstimatedBudget)
}

func TestEstimateScalesLinearly(t *testing.T) {
	est := newEstimator(t,
		rec("Enabled", "Meta", "Awareness", "123.45", 67890),
		rec("Enabled", "Meta", "Awareness", "9.99", 1234),
	)
	ctx := context.Background()

	base, err := est.Estimate(ctx, port.EstimateReq{
		Platform: "Meta", CampaignType: "Awareness", TargetImpressions: 50000,
	})
	require.NoError(t, err)

	double, err := est.Estimate(ctx, port.EstimateReq{
		Platform: "Meta", CampaignType: "Awareness", TargetImpressions: 100000,
	})
	require.NoError(t, err)

	want, _ := base.EstimatedBudget.Mul(decimal.NewFromInt(2)).Float64()
	got, _ := double.EstimatedBudget.Float64()
	assert.InEpsilon(t, want, got, 1e-9)
}

func TestEstimateMonotonicInTarget(t *testing.T) {
	est := newEstimator(t, rec("Enabled", "Meta", "Awareness", "100", 50000))
	ctx := context.Background()

	prev := decimal.Zero
	for _, target := range []float64{1, 500, 1000, 250000, 5000000} {
		resp, err := est.Estimate(ctx, port.EstimateReq{
			Platform: "Meta", CampaignType: "Awareness", TargetImpressions: target,
		})
		require.NoError(t, err)
		assert.True(t, resp.EstimatedBudget.GreaterThanOrEqual(prev),
			"budget %s for target %v below previous %s", resp.EstimatedBudget, target, prev)
		prev = resp.EstimatedBudget
	}
}

func TestPlatformsAndCampaignTypes(t *testing.T) {
	est := newEstimator(t,
		rec("Enabled", "Meta", "Awareness", "100", 50000),
		rec("Enabled", "Meta", "Conversion", "20", 4000),
		rec("Enabled", "Google", "Search", "30", 6000),
		rec("Enabled", "Meta", "Awareness", "10", 2000),
		rec("Paused", "TikTok", "Awareness", "10", 2000),
	)
	ctx := context.Background()

	platforms, err := est.Platforms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Google", "Meta"}, platforms)

	types, err := est.CampaignTypes(ctx, "Meta")
	require.NoError(t, err)
	assert.Equal(t, []string{"Awareness", "Conversion"}, types)

	types, err = est.CampaignTypes(ctx, "TikTok")
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestNewBudgetEstimatorPropagatesLoadError(t *testing.T) {
	wantErr := &port.SchemaError{Missing: []string{"cost"}}
	_, err := NewBudgetEstimator(context.Background(), &stubSource{err: wantErr})

	var schemaErr *port.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"cost"}, schemaErr.Missing)
}
