package query

import (
	"github.com/gpulens/gpulens/internal/dataset"
)

// Group is one category bucket with its member rows in input order.
type Group struct {
	Key  string
	Rows []dataset.Record
}

// GroupBy partitions rows by the trimmed string form of categoryColumn.
// Groups appear in first-seen order of a single left-to-right scan; rows with
// an absent or null category land in the "Unknown" group. A key only exists
// when at least one row produced it.
func GroupBy(rows []dataset.Record, categoryColumn string) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, row := range rows {
		key, ok := row.Text(categoryColumn)
		if !ok {
			key = UnknownGroup
		}
		i, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, Group{Key: key})
			i = len(groups) - 1
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}
