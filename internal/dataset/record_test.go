package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	rows := []Record{
		{"GPU": "H20", "TPS per gpu": "123.5", "Batch": " 8 ", "note": "fast-run"},
		{"GPU": "H800", "TPS per gpu": 99.0, "empty": "", "null": nil},
	}

	normalized := Normalize(rows)

	assert.Equal(t, float64(123.5), normalized[0]["TPS per gpu"])
	assert.Equal(t, float64(8), normalized[0]["Batch"])
	assert.Equal(t, "H20", normalized[0]["GPU"])
	assert.Equal(t, "fast-run", normalized[0]["note"])
	assert.Equal(t, float64(99), normalized[1]["TPS per gpu"])
	assert.Equal(t, "", normalized[1]["empty"])
	assert.Nil(t, normalized[1]["null"])

	// input rows are never mutated
	assert.Equal(t, "123.5", rows[0]["TPS per gpu"])
}

func TestNormalizeIdempotent(t *testing.T) {
	rows := []Record{
		{"GPU": "H20", "TPS per gpu": "250", "Config_Name": "I4096-pp4"},
	}

	once := Normalize(rows)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestRecordNumeric(t *testing.T) {
	row := Record{
		"float":  42.5,
		"int":    7,
		"int64":  int64(9),
		"string": "12",
		"null":   nil,
	}

	tests := []struct {
		name     string
		col      string
		expected float64
		ok       bool
	}{
		{"Float cell", "float", 42.5, true},
		{"Int cell", "int", 7, true},
		{"Int64 cell", "int64", 9, true},
		{"Unnormalized string cell", "string", 0, false},
		{"Null cell", "null", 0, false},
		{"Absent column", "missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := row.Numeric(tt.col)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRecordText(t *testing.T) {
	row := Record{
		"name":    "  H20  ",
		"batch":   4.0,
		"decimal": 2.5,
		"null":    nil,
	}

	text, ok := row.Text("name")
	assert.True(t, ok)
	assert.Equal(t, "H20", text)

	// integral floats render without a decimal part
	text, ok = row.Text("batch")
	assert.True(t, ok)
	assert.Equal(t, "4", text)

	text, ok = row.Text("decimal")
	assert.True(t, ok)
	assert.Equal(t, "2.5", text)

	_, ok = row.Text("null")
	assert.False(t, ok)

	_, ok = row.Text("missing")
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"Nil", nil, ""},
		{"String", "H800", "H800"},
		{"Integral float", 16.0, "16"},
		{"Fractional float", 0.125, "0.125"},
		{"Int", 3, "3"},
		{"Int64", int64(-5), "-5"},
		{"Bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueString(tt.value))
		})
	}
}
