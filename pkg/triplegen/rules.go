package triplegen

import (
	"math"
	"regexp"

	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/gnlib"
	"github.com/shopspring/decimal"
)

// Rule extracts triples from a normalized record. A rule that finds
// nothing to extract returns nil.
type Rule func(record.Normalized) ([]triple.Triple, error)

// DefaultRules returns URI, literal and measurement rules in the order
// they are applied.
func DefaultRules() []Rule {
	return []Rule{URIRule, LiteralRule, MeasurementRule}
}

var numberRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// URIRule creates a triple with the value URI as the object.
func URIRule(n record.Normalized) ([]triple.Triple, error) {
	if !n.Has(record.ValueURI) {
		return nil, nil
	}
	t, err := newTriple(n, object(n.Get(record.ValueURI)))
	if err != nil {
		return nil, err
	}
	return []triple.Triple{t}, nil
}

// LiteralRule creates a triple with the literal value as the object.
func LiteralRule(n record.Normalized) ([]triple.Triple, error) {
	if !n.Has(record.Literal) {
		return nil, nil
	}
	obj := object(n.Get(record.Literal))
	if !obj.IsNumber() {
		obj = triple.StringObject(gnlib.FixUtf8(obj.String()))
	}
	t, err := newTriple(n, obj)
	if err != nil {
		return nil, err
	}
	return []triple.Triple{t}, nil
}

// MeasurementRule creates a triple with the normalized measurement as the
// object and normalized units as the unit. Both fields have to be present.
// Numeric strings are converted to numbers.
func MeasurementRule(n record.Normalized) ([]triple.Triple, error) {
	if !n.Has(record.NormalMeasure) || !n.Has(record.NormalUnitsURI) {
		return nil, nil
	}
	t, err := newTriple(n, Measurement(n.Get(record.NormalMeasure)))
	if err != nil {
		return nil, err
	}
	t.Unit = n.String(record.NormalUnitsURI)
	return []triple.Triple{t}, nil
}

// Measurement converts a measurement value to an object. Numbers and
// strings that look like integers or decimals become numeric objects,
// everything else stays a string.
func Measurement(v any) triple.Object {
	if s, ok := v.(string); ok && numberRe.MatchString(s) {
		if d, err := decimal.NewFromString(s); err == nil {
			return triple.NumberObject(d)
		}
	}
	return object(v)
}

func object(v any) triple.Object {
	switch t := v.(type) {
	case int64:
		return triple.NumberObject(decimal.NewFromInt(t))
	case int:
		return triple.NumberObject(decimal.NewFromInt(int64(t)))
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return triple.StringObject(record.ToString(t))
		}
		return triple.NumberObject(decimal.NewFromFloat(t))
	default:
		return triple.StringObject(record.ToString(v))
	}
}

func newTriple(n record.Normalized, obj triple.Object) (triple.Triple, error) {
	var res triple.Triple
	for _, k := range []record.Key{record.PageID, record.Predicate, record.RecordID} {
		if !n.Has(k) {
			return res, IncompleteRecordError(k, n)
		}
	}
	res = triple.Triple{
		Subject:   n.String(record.PageID),
		Predicate: n.String(record.Predicate),
		Object:    obj,
		RecordID:  n.String(record.RecordID),
	}
	return res, nil
}
