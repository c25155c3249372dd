package port

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData signals that the selected segment has no valid rows or zero
// total impressions, so the effective CPM is undefined. It is a per-query
// failure; the loaded dataset stays usable.
var ErrNoData = errors.New("no data for segment")

// ErrInvalidInput signals that the target impression count is not a
// positive finite number. Per-query failure.
var ErrInvalidInput = errors.New("invalid input")

// SchemaError reports required columns that are absent from the dataset
// after header normalization. It is fatal at load time: without the
// canonical columns no computation is possible.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}
