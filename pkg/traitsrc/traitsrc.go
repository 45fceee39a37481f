// Package traitsrc describes sources of raw EOL trait records.
package traitsrc

import (
	"context"
	"iter"

	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/normalizer"
)

// Handler gives access to raw trait records of a data source. Sequences
// are lazy and finite. Every call starts a new sequence from the
// beginning. An error ends the sequence.
type Handler interface {
	// Iterate returns all records of the source.
	Iterate(ctx context.Context) iter.Seq2[record.Raw, error]

	// IterateByKey returns records where the field mapped to the
	// canonical key has the given value.
	IterateByKey(
		ctx context.Context,
		key record.Key,
		value string,
	) iter.Seq2[record.Raw, error]

	// Mapping returns the key mapping of the source records.
	Mapping() normalizer.Mapping

	// Close releases resources of the source.
	Close() error
}

// Type is a kind of a trait data source.
type Type string

// Supported data sources.
const (
	CSV Type = "csv"
	API Type = "api"
	PG  Type = "pg"
)
