package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// Loader reads campaign records from a CSV export at a fixed path. It
// implements port.RecordSource. Header names are matched case- and
// space-insensitively; rows whose cost or impressions cannot be parsed are
// dropped rather than failing the whole load.
type Loader struct {
	path string
}

// NewLoader returns a Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the whole file eagerly. It returns a
// *port.SchemaError when a required column is missing after normalization.
// Rows shorter than the header or with unparseable numeric fields are
// skipped.
func (l *Loader) Load(ctx context.Context) ([]domain.CampaignRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Exports sometimes carry trailing junk columns; field counts are
	// checked per row against the header instead.
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &port.SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := indexColumns(header)
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, &port.SchemaError{Missing: missing}
	}

	var records []domain.CampaignRecord
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec, ok := parseRow(row, idx)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseRow converts one CSV row into a CampaignRecord. It reports false
// when the row is too short or a numeric field does not parse; such rows
// are excluded from the dataset.
func parseRow(row []string, idx map[string]int) (domain.CampaignRecord, bool) {
	field := func(col string) (string, bool) {
		i := idx[col]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var rec domain.CampaignRecord
	var ok bool
	if rec.Status, ok = field(colStatus); !ok {
		return rec, false
	}
	if rec.Platform, ok = field(colPlatform); !ok {
		return rec, false
	}
	if rec.CampaignType, ok = field(colType); !ok {
		return rec, false
	}

	costStr, ok := field(colCost)
	if !ok {
		return rec, false
	}
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return rec, false
	}
	rec.Cost = cost

	imprStr, ok := field(colImpressions)
	if !ok {
		return rec, false
	}
	rec.Impressions, ok = parseImpressions(imprStr)
	if !ok {
		return rec, false
	}
	return rec, true
}

// parseImpressions accepts integer counts, also in float spelling
// ("50000.0") as produced by spreadsheet exports. Fractional values do not
// count impressions and are rejected.
func parseImpressions(s string) (int64, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
