package domain

import "github.com/shopspring/decimal"

// SegmentStats aggregates the valid records of one (platform, campaign type)
// pair. TotalCost and TotalImpressions are plain sums over the matching
// records; Records counts them.
type SegmentStats struct {
	Platform         string
	CampaignType     string
	Records          int
	TotalCost        decimal.Decimal
	TotalImpressions int64
}

// AggregateSegment sums cost and impressions over the records whose platform
// and campaign type exactly equal the requested pair. Matching is
// case-sensitive: callers are expected to pass values that occur in the
// dataset, as returned by the option-listing operations.
func AggregateSegment(records []CampaignRecord, platform, campaignType string) SegmentStats {
	s := SegmentStats{Platform: platform, CampaignType: campaignType}
	for _, r := range records {
		if r.Platform != platform || r.CampaignType != campaignType {
			continue
		}
		s.Records++
		s.TotalCost = s.TotalCost.Add(r.Cost)
		s.TotalImpressions += r.Impressions
	}
	return s
}

// EffectiveCPM derives the empirical cost per thousand impressions from the
// segment totals. The second return value is false when the CPM is
// undefined, i.e. the segment is empty or its impressions sum to zero.
func (s SegmentStats) EffectiveCPM() (decimal.Decimal, bool) {
	if s.Records == 0 || s.TotalImpressions == 0 {
		return decimal.Decimal{}, false
	}
	return s.TotalCost.Div(decimal.NewFromInt(s.TotalImpressions)).Mul(thousand), true
}

// EstimateBudget scales an effective CPM to the requested impression volume:
// (targetImpressions / 1000) * cpm. No rounding is applied; presentation
// layers round for display.
func EstimateBudget(cpm, targetImpressions decimal.Decimal) decimal.Decimal {
	return targetImpressions.Div(thousand).Mul(cpm)
}
