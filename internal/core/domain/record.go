package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// CampaignRecord is one row of historical campaign data. Cost is the total
// spend of the row in EUR; Impressions is the number of ad-display events
// bought for that spend. Records are loaded once at startup and never
// mutated afterwards.
type CampaignRecord struct {
	Status       string
	Platform     string
	CampaignType string
	Cost         decimal.Decimal
	Impressions  int64
}

// Enabled reports whether the record's status is "enabled", ignoring case
// and surrounding whitespace.
func (r CampaignRecord) Enabled() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), "enabled")
}

// Valid reports whether the record may contribute to segment aggregates:
// enabled status, positive cost and positive impressions.
func (r CampaignRecord) Valid() bool {
	return r.Enabled() && r.Cost.IsPositive() && r.Impressions > 0
}

// CPM returns the record's own cost per thousand impressions. It is a
// per-row reference value; segment pricing always derives from totals, not
// from averaging row CPMs. Returns zero when impressions are not positive.
func (r CampaignRecord) CPM() decimal.Decimal {
	if r.Impressions <= 0 {
		return decimal.Zero
	}
	return r.Cost.Div(decimal.NewFromInt(r.Impressions)).Mul(thousand)
}

// FilterValid returns the subset of records that satisfy Valid. The input
// slice is not modified.
func FilterValid(records []CampaignRecord) []CampaignRecord {
	out := make([]CampaignRecord, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out
}
