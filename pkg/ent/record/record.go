// Package record defines raw and normalized trait records and the
// canonical key vocabulary every data source is mapped onto.
package record

import (
	"fmt"
	"strconv"
)

// Key is a canonical key of a normalized record.
type Key string

// Canonical keys.
const (
	PageID         Key = "page_id"
	Predicate      Key = "predicate"
	ValueURI       Key = "value_uri"
	Literal        Key = "literal"
	NormalMeasure  Key = "normal_measurement"
	NormalUnitsURI Key = "units_uri"
	SourceURL      Key = "source"
	Citation       Key = "citation"
	RecordID       Key = "eol_pk"
)

// Raw is a record as it comes from a data source. Field names depend on
// the source. Values are nil, string, int64, float64 or bool.
type Raw map[string]any

// Normalized is a record with fields renamed to canonical keys. Fields
// unknown to the mapping keep their original names.
type Normalized map[string]any

// Get returns the value of a canonical key.
func (n Normalized) Get(k Key) any {
	return n[string(k)]
}

// Has returns true if the canonical key holds a non-nil value.
func (n Normalized) Has(k Key) bool {
	return n[string(k)] != nil
}

// String returns the value of a canonical key as a string. Absent values
// give an empty string.
func (n Normalized) String(k Key) string {
	return ToString(n[string(k)])
}

// ToString converts a record value to its canonical string form.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Equal compares two record values. Numbers are compared by value
// regardless of their Go type, so int64(9) equals float64(9).
func Equal(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	if aNum != bNum {
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
