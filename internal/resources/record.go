package resources

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IDField is the key of the server-assigned identifier in every record.
const IDField = "id"

// Record is one resource row as exchanged with the API: field name to a
// primitive value (string, number or date string).
type Record map[string]any

// ID returns the server-assigned identifier, or "" when absent.
func (r Record) ID() string {
	s, _ := r.Text(IDField)
	return s
}

// Text returns the string form of field. ok is false when the field is
// absent or null.
func (r Record) Text(field string) (string, bool) {
	v, present := r[field]
	if !present {
		return "", false
	}
	return FormatValue(v)
}

// FormatValue renders a primitive JSON value as text. Numbers drop trailing
// zeros ("100", "12.5"). ok is false for nil.
func FormatValue(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", false
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return fmt.Sprint(value), true
	}
}
