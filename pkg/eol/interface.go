// Package eol is the main entry point for getting trait data and
// identifier conversions from the Encyclopedia of Life.
package eol

import (
	"context"

	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/eoltraits/pkg/ent/triple"
)

// EOL retrieves traits of taxa as triples and converts identifiers.
type EOL interface {
	// TraitsForPageID returns deduplicated and sorted triples of a taxon.
	// If predicates are given, only triples with these predicates are
	// returned. Unknown page IDs give an empty result.
	TraitsForPageID(
		ctx context.Context,
		pageID string,
		predicates []string,
	) ([]triple.Triple, error)

	// TraitsForPageIDs runs TraitsForPageID for several page IDs
	// concurrently. The result is keyed by page ID.
	TraitsForPageIDs(
		ctx context.Context,
		pageIDs []string,
		predicates []string,
	) (map[string][]triple.Triple, error)

	// GBIFIDForPageID returns GBIF identifiers of an EOL page.
	GBIFIDForPageID(ctx context.Context, pageID string) ([]string, error)

	// PageIDForGBIFID returns EOL page IDs of a GBIF identifier.
	PageIDForGBIFID(ctx context.Context, gbifID string) ([]string, error)

	// ForeignIDs returns identifiers of a provider for an EOL page.
	ForeignIDs(
		ctx context.Context,
		pageID string,
		p provider.DataProvider,
	) ([]string, error)

	// PageIDs returns EOL page IDs for an identifier of a provider.
	PageIDs(
		ctx context.Context,
		id string,
		p provider.DataProvider,
	) ([]string, error)

	// BatchForeignIDs converts several EOL page IDs to identifiers of a
	// provider. The result has one element per input: empty for unknown
	// pages, the first match for ambiguous ones.
	BatchForeignIDs(
		ctx context.Context,
		pageIDs []string,
		p provider.DataProvider,
	) ([]string, error)

	// BatchPageIDs converts several identifiers of a provider to EOL page
	// IDs, one element per input.
	BatchPageIDs(
		ctx context.Context,
		ids []string,
		p provider.DataProvider,
	) ([]string, error)
}
