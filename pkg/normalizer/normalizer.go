// Package normalizer renames fields of raw trait records to canonical
// keys according to a mapping of a data source.
package normalizer

import (
	"maps"

	"github.com/gnames/eoltraits/pkg/ent/record"
)

// Normalizer converts raw records to normalized ones.
type Normalizer interface {
	// Normalize returns a copy of the record with canonical keys. The
	// input record is not modified. If two fields map to the same key
	// and have different non-nil values, it returns an error.
	Normalize(record.Raw) (record.Normalized, error)

	// Mapping returns the mapping used by the normalizer.
	Mapping() Mapping
}

type normalizer struct {
	m Mapping
}

// New creates a Normalizer for the given mapping.
func New(m Mapping) Normalizer {
	return &normalizer{m: m}
}

func (n *normalizer) Mapping() Mapping {
	return n.m
}

func (n *normalizer) Normalize(raw record.Raw) (record.Normalized, error) {
	res := make(record.Normalized, len(raw))
	maps.Copy(res, raw)

	for _, km := range n.m.Keys {
		if err := rename(res, km.From, km.To); err != nil {
			return nil, err
		}
	}

	for _, k := range n.m.Delete {
		delete(res, k)
	}
	return res, nil
}

func rename(data record.Normalized, from, to string) error {
	if from == to {
		return nil
	}
	val, ok := data[from]
	if !ok {
		return nil
	}

	existing := data[to]
	if existing == nil {
		data[to] = val
	} else if val != nil && !record.Equal(val, existing) {
		return ValueCollisionError(from, to, existing, val)
	}

	delete(data, from)
	return nil
}
