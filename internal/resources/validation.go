package resources

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports the first field that blocked a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks raw form input against the definition and returns the typed
// record to submit. Validation stops at the first failing field. Blank
// optional fields are left out of the record; keys the definition does not
// know are dropped.
func (d Definition) Validate(values map[string]string) (Record, error) {
	rec := make(Record, len(d.Fields))

	for _, f := range d.Fields {
		raw := strings.TrimSpace(values[f.Name])
		if raw == "" {
			if f.Required {
				return nil, invalid(f.Name, "is required")
			}
			continue
		}

		v, err := parseField(f, raw)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = v
	}

	for _, o := range d.Orderings {
		if err := checkOrdering(rec, o); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// ValidateRecord validates a decoded JSON record, e.g. a create request body.
// Known fields must hold a string, a number or null; objects, arrays and
// booleans are rejected.
func (d Definition) ValidateRecord(rec Record) (Record, error) {
	values := make(map[string]string, len(rec))
	for _, f := range d.Fields {
		v, present := rec[f.Name]
		if !present {
			continue
		}
		switch v.(type) {
		case nil, string, float64, float32, int, int64, json.Number:
		default:
			return nil, invalid(f.Name, "must be a string, number or date")
		}
		if s, ok := FormatValue(v); ok {
			values[f.Name] = s
		}
	}
	return d.Validate(values)
}

func parseField(f Field, raw string) (any, error) {
	switch f.Kind {
	case FieldNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, invalid(f.Name, "must be a number")
		}
		if f.NonNegative && n < 0 {
			return nil, invalid(f.Name, "must not be negative")
		}
		return n, nil

	case FieldDate:
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, invalid(f.Name, "must be a date in YYYY-MM-DD format")
		}
		return t.Format(DateLayout), nil

	case FieldChoice:
		for _, opt := range f.Options {
			if strings.EqualFold(opt, raw) {
				return opt, nil
			}
		}
		return nil, invalid(f.Name, "must be one of "+strings.Join(f.Options, ", "))

	default:
		return raw, nil
	}
}

// checkOrdering compares typed values; numbers are float64 and dates are
// DateLayout strings, which sort lexically.
func checkOrdering(rec Record, o Ordering) error {
	before, okB := rec[o.Before]
	after, okA := rec[o.After]
	if !okB || !okA {
		return nil
	}

	less := false
	switch b := before.(type) {
	case float64:
		a, _ := after.(float64)
		less = a < b
	case string:
		a, _ := after.(string)
		less = a < b
	}
	if less {
		return invalid(o.After, "must not be less than "+o.Before)
	}
	return nil
}
