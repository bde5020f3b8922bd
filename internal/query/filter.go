package query

import (
	"strings"

	"github.com/gpulens/gpulens/internal/dataset"
)

// Constraints maps a column header to an accepted value. A nil value, empty
// string or empty slice leaves the column unconstrained; a slice accepts any
// of its elements (OR); anything else must match exactly. Matching is always
// trimmed-string equality, never numeric: callers pre-format values to the
// cell formatting of the sheet.
type Constraints map[string]interface{}

// Filter returns the rows satisfying every column constraint.
func Filter(rows []dataset.Record, constraints Constraints) []dataset.Record {
	if len(constraints) == 0 {
		return rows
	}
	filtered := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, constraints) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func matchesAll(row dataset.Record, constraints Constraints) bool {
	for col, want := range constraints {
		if !matchesColumn(row, col, want) {
			return false
		}
	}
	return true
}

func matchesColumn(row dataset.Record, col string, want interface{}) bool {
	accepted, unconstrained := acceptedValues(want)
	if unconstrained {
		return true
	}

	cell, ok := row.Text(col)
	if !ok {
		// an absent or null cell never satisfies a specified constraint
		return false
	}
	for _, v := range accepted {
		if cell == v {
			return true
		}
	}
	return false
}

// acceptedValues flattens a constraint into its trimmed string forms. The
// second return is true when the constraint does not constrain at all.
func acceptedValues(want interface{}) ([]string, bool) {
	switch v := want.(type) {
	case nil:
		return nil, true
	case string:
		if v == "" {
			return nil, true
		}
		return []string{strings.TrimSpace(v)}, false
	case []string:
		if len(v) == 0 {
			return nil, true
		}
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, strings.TrimSpace(e))
		}
		return out, false
	case []interface{}:
		if len(v) == 0 {
			return nil, true
		}
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, strings.TrimSpace(dataset.ValueString(e)))
		}
		return out, false
	default:
		return []string{strings.TrimSpace(dataset.ValueString(want))}, false
	}
}
