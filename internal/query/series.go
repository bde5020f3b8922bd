package query

import (
	"fmt"
	"sort"

	"github.com/gpulens/gpulens/internal/dataset"
)

// Series is one chart dataset handed to the rendering front end.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// BuildSeries filters rows, partitions them by categoryColumn and projects
// each group into a labeled series. Series follow group discovery order and
// points follow row order; groups that project to zero points are dropped.
// Every call returns a fresh result, no state is carried between calls.
func BuildSeries(rows []dataset.Record, constraints Constraints, categoryColumn string) []Series {
	filtered := Filter(rows, constraints)
	groups := GroupBy(filtered, categoryColumn)

	series := make([]Series, 0, len(groups))
	for _, group := range groups {
		points := Project(group.Rows)
		if len(points) == 0 {
			continue
		}
		series = append(series, Series{
			Label:  fmt.Sprintf("%s=%s", categoryColumn, group.Key),
			Points: points,
		})
	}
	return series
}

// BuildCombinedSeries projects all filtered rows into a single series sorted
// by x ascending. Used for the non-categorized view.
func BuildCombinedSeries(rows []dataset.Record, constraints Constraints, label string) Series {
	points := Project(Filter(rows, constraints))
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})
	return Series{Label: label, Points: points}
}
