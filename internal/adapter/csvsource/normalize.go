package csvsource

import "strings"

// Canonical column names required after header normalization.
const (
	colStatus      = "campaign status"
	colPlatform    = "platform"
	colType        = "campaign type"
	colCost        = "cost"
	colImpressions = "impressions"
)

var requiredColumns = []string{colStatus, colPlatform, colType, colCost, colImpressions}

// normalizeHeader lowercases a raw header and collapses surrounding and
// internal whitespace to single spaces, so "Campaign  Type" and
// " campaign type " both become "campaign type".
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// canonicalColumn maps a raw header to its canonical column name. Exports
// name the impression column inconsistently ("Impression", " impressions "),
// so any header that spells impression(s) once all spaces are removed maps
// to the canonical impressions column. Other headers are just normalized.
func canonicalColumn(h string) string {
	n := normalizeHeader(h)
	switch strings.ReplaceAll(n, " ", "") {
	case "impression", "impressions":
		return colImpressions
	}
	return n
}

// indexColumns maps each canonical column to its position in the header
// row. The first occurrence wins; columns outside the required set are kept
// in the map but simply never read.
func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := canonicalColumn(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

// missingColumns returns the required canonical columns absent from idx,
// in the canonical declaration order.
func missingColumns(idx map[string]int) []string {
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
