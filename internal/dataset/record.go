package dataset

import (
	"strconv"
	"strings"
)

// Record is a single benchmark row: spreadsheet column header -> cell value.
// Headers are case- and spacing-sensitive. Cells hold float64, string or nil;
// a column missing from the sheet is simply absent from the map.
type Record map[string]interface{}

// Normalize coerces numeric-looking string cells to float64 and leaves every
// other value untouched. Rows are copied, never mutated. Normalizing an
// already normalized row is a no-op.
func Normalize(rows []Record) []Record {
	normalized := make([]Record, 0, len(rows))
	for _, row := range rows {
		out := make(Record, len(row))
		for col, val := range row {
			out[col] = normalizeValue(val)
		}
		normalized = append(normalized, out)
	}
	return normalized
}

func normalizeValue(val interface{}) interface{} {
	s, ok := val.(string)
	if !ok {
		return val
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return val
	}
	num, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return val
	}
	return num
}

// Numeric returns the cell as float64. The second return is false when the
// column is absent, nil or non-numeric.
func (r Record) Numeric(col string) (float64, bool) {
	switch v := r[col].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Text returns the trimmed string form of the cell. The second return is
// false when the column is absent or nil.
func (r Record) Text(col string) (string, bool) {
	val, ok := r[col]
	if !ok || val == nil {
		return "", false
	}
	return strings.TrimSpace(ValueString(val)), true
}

// ValueString renders a cell or constraint value the way the spreadsheet
// formats it: integral floats print without a decimal part, so 4.0 compares
// equal to the header value "4".
func ValueString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
