package query

import (
	"testing"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func sampleRows() []dataset.Record {
	return []dataset.Record{
		{"GPU": "H20", "Batch": 4.0, "model": "deepseek-v3"},
		{"GPU": "H20", "Batch": 8.0, "model": "deepseek-v3"},
		{"GPU": "H800", "Batch": 4.0, "model": "deepseek-r1"},
		{"GPU": "MI300X", "Batch": 16.0},
	}
}

func TestFilterIdentity(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name        string
		constraints Constraints
	}{
		{"Nil constraints", nil},
		{"Empty constraints", Constraints{}},
		{"Nil value", Constraints{"GPU": nil}},
		{"Empty string value", Constraints{"GPU": ""}},
		{"Empty slice value", Constraints{"GPU": []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Filter(rows, tt.constraints), len(rows))
		})
	}
}

func TestFilterScalar(t *testing.T) {
	rows := sampleRows()

	filtered := Filter(rows, Constraints{"GPU": "H20"})
	assert.Len(t, filtered, 2)
	for _, row := range filtered {
		assert.Equal(t, "H20", row["GPU"])
	}

	// numeric cells match their spreadsheet string form
	filtered = Filter(rows, Constraints{"Batch": "4"})
	assert.Len(t, filtered, 2)

	// surrounding whitespace in the wanted value is ignored
	filtered = Filter(rows, Constraints{"GPU": " H800 "})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "deepseek-r1", filtered[0]["model"])
}

func TestFilterSliceIsUnion(t *testing.T) {
	rows := sampleRows()

	filtered := Filter(rows, Constraints{"GPU": []string{"H20", "H800"}})
	assert.Len(t, filtered, 3)

	// mixed-type slices compare through the same string rendering
	filtered = Filter(rows, Constraints{"Batch": []interface{}{4.0, "16"}})
	assert.Len(t, filtered, 3)
}

func TestFilterColumnsAreConjunctive(t *testing.T) {
	rows := sampleRows()

	filtered := Filter(rows, Constraints{"GPU": "H20", "Batch": "8"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, 8.0, filtered[0]["Batch"])

	// sequential single-column filters agree with the combined filter
	sequential := Filter(Filter(rows, Constraints{"GPU": "H20"}), Constraints{"Batch": "8"})
	assert.Equal(t, filtered, sequential)
}

func TestFilterAbsentCellNeverMatches(t *testing.T) {
	rows := sampleRows()

	// the MI300X row has no model column
	filtered := Filter(rows, Constraints{"model": []string{"deepseek-v3", "deepseek-r1"}})
	assert.Len(t, filtered, 3)

	filtered = Filter(rows, Constraints{"no such column": "x"})
	assert.Empty(t, filtered)
}
