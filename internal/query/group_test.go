package query

import (
	"testing"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestGroupByFirstSeenOrder(t *testing.T) {
	rows := []dataset.Record{
		{"Batch": 4.0, "id": "a"},
		{"Batch": 8.0, "id": "b"},
		{"Batch": 4.0, "id": "c"},
	}

	groups := GroupBy(rows, "Batch")

	assert.Len(t, groups, 2)
	assert.Equal(t, "4", groups[0].Key)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "a", groups[0].Rows[0]["id"])
	assert.Equal(t, "c", groups[0].Rows[1]["id"])
	assert.Equal(t, "8", groups[1].Key)
	assert.Len(t, groups[1].Rows, 1)
}

func TestGroupByUnknownBucket(t *testing.T) {
	rows := []dataset.Record{
		{"GPU": "H20"},
		{"GPU": nil},
		{"Batch": 4.0},
	}

	groups := GroupBy(rows, "GPU")

	assert.Len(t, groups, 2)
	assert.Equal(t, "H20", groups[0].Key)
	assert.Equal(t, UnknownGroup, groups[1].Key)
	assert.Len(t, groups[1].Rows, 2)
}

func TestGroupByPartitionsRows(t *testing.T) {
	rows := []dataset.Record{
		{"GPU": "H20"}, {"GPU": "H800"}, {"GPU": "H20"}, {}, {"GPU": "MI300X"},
	}

	groups := GroupBy(rows, "GPU")

	total := 0
	for _, group := range groups {
		assert.NotEmpty(t, group.Rows)
		total += len(group.Rows)
	}
	assert.Equal(t, len(rows), total)
}

func TestGroupByEmptyInput(t *testing.T) {
	groups := GroupBy(nil, "GPU")
	assert.Empty(t, groups)
}
