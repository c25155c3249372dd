package configs

import "strings"

// Dataset source names accepted by Dataset.Source.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Dataset configures the historical campaign data source. Path is the
// location of the CSV export; it is read directly when Source is "csv" and
// used as seed input when Source is "postgres" and seeding is enabled.
type Dataset struct {
	// Source selects the record source: "csv" (default) or "postgres".
	Source string `env:"SOURCE" envDefault:"csv"`
	// Path is the CSV file location.
	Path string `env:"PATH" envDefault:"data/campaigns.csv"`
}

// Normalized returns the source name lowercased and trimmed. Unknown values
// are returned as-is; main rejects them.
func (d Dataset) Normalized() string {
	return strings.ToLower(strings.TrimSpace(d.Source))
}
