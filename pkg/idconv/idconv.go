// Package idconv converts identifiers of external data providers to EOL
// page IDs and back, using the EOL identifier map
// (https://opendata.eol.org/dataset/identifier-map).
//
// Lookups never fail because an identifier is unknown: nil means "not
// found", one element means an unambiguous match and several elements mean
// the identifier exists in more than one provider namespace and no
// provider was given to choose between them.
package idconv

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/eoltraits/pkg/lookup"
)

// Column names of the identifier map.
const (
	CorrespondingIDColumn = "resource_pk"
	PageIDColumn          = "page_id"
	ProviderIDColumn      = "resource_id"
)

// providerColumn is the position of the provider ID in the identifier map.
const providerColumn = 2

// Row is one line of the identifier map.
type Row struct {
	CorrespondingID string
	PageID          int
	ProviderID      int
}

type index struct {
	byID   map[string][]Row
	byPage map[int][]Row
}

// Resolver converts identifiers. The identifier map is loaded on first
// use and only rows of relevant providers are kept. Resolver is safe for
// concurrent use.
type Resolver struct {
	path string
	rdr  lookup.Reader

	mu        sync.Mutex
	providers []provider.DataProvider
	idx       *index
}

// New creates a Resolver for the identifier map at path.
func New(
	path string,
	rdr lookup.Reader,
	providers ...provider.DataProvider,
) *Resolver {
	return &Resolver{
		path:      path,
		rdr:       rdr,
		providers: slices.Clone(providers),
	}
}

// RelevantProviders returns providers whose rows are loaded.
func (r *Resolver) RelevantProviders() []provider.DataProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.providers)
}

// SetRelevantProviders replaces relevant providers. The identifier map is
// reloaded on the next lookup.
func (r *Resolver) SetRelevantProviders(ps ...provider.DataProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = slices.Clone(ps)
	r.idx = nil
}

// AddRelevantProvider adds a provider to relevant ones. The identifier map
// is reloaded on the next lookup.
func (r *Resolver) AddRelevantProvider(p provider.DataProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.providers, p) {
		return
	}
	r.providers = append(r.providers, p)
	r.idx = nil
}

// ToCanonicalID returns EOL page IDs for an identifier of a provider.
// If several rows match and p is not provider.Unknown, only rows of that
// provider are kept.
func (r *Resolver) ToCanonicalID(
	ctx context.Context,
	id string,
	p provider.DataProvider,
) ([]string, error) {
	idx, err := r.index(ctx)
	if err != nil {
		return nil, err
	}
	rows := disambiguate(idx.byID[id], p)
	return pageIDs(rows), nil
}

// ToCanonicalIDs converts a batch of identifiers. The result has one
// element per identifier in the same order. Unknown identifiers give an
// empty string. If an identifier stays ambiguous, the first matching row
// of the identifier map is used.
func (r *Resolver) ToCanonicalIDs(
	ctx context.Context,
	ids []string,
	p provider.DataProvider,
) ([]string, error) {
	idx, err := r.index(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(ids))
	for i, id := range ids {
		if ps := pageIDs(disambiguate(idx.byID[id], p)); len(ps) > 0 {
			res[i] = ps[0]
		}
	}
	return res, nil
}

// FromCanonicalID returns identifiers of providers for an EOL page ID.
// If several rows match and p is not provider.Unknown, only rows of that
// provider are kept.
func (r *Resolver) FromCanonicalID(
	ctx context.Context,
	pageID string,
	p provider.DataProvider,
) ([]string, error) {
	id, err := strconv.Atoi(pageID)
	if err != nil {
		return nil, InvalidPageIDError(pageID, err)
	}
	idx, err := r.index(ctx)
	if err != nil {
		return nil, err
	}
	rows := disambiguate(idx.byPage[id], p)
	return correspondingIDs(rows), nil
}

// FromCanonicalIDs converts a batch of EOL page IDs, following the rules
// of ToCanonicalIDs.
func (r *Resolver) FromCanonicalIDs(
	ctx context.Context,
	pageIDs []string,
	p provider.DataProvider,
) ([]string, error) {
	ids := make([]int, len(pageIDs))
	for i, v := range pageIDs {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, InvalidPageIDError(v, err)
		}
		ids[i] = id
	}

	idx, err := r.index(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(ids))
	for i, id := range ids {
		if cs := correspondingIDs(disambiguate(idx.byPage[id], p)); len(cs) > 0 {
			res[i] = cs[0]
		}
	}
	return res, nil
}

// index returns the identifier map, loading it if necessary. The returned
// index is never modified, so it can be read without the lock.
func (r *Resolver) index(ctx context.Context) (*index, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.idx != nil {
		return r.idx, nil
	}

	ids := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		if id := p.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	filters, err := lookup.FiltersFromPairs([][]string{ids}, []int{providerColumn})
	if err != nil {
		return nil, err
	}

	slog.Info("Reading EOL identifier map", "path", r.path, "providers", ids)
	tbl, err := r.rdr.Read(ctx, r.path, filters)
	if err != nil {
		return nil, err
	}

	r.idx = newIndex(tbl)
	slog.Info("EOL identifier map is ready", "ids", len(r.idx.byID))
	return r.idx, nil
}

func newIndex(tbl *lookup.Table) *index {
	res := &index{
		byID:   make(map[string][]Row),
		byPage: make(map[int][]Row),
	}
	corrCol := tbl.ColumnIndex(CorrespondingIDColumn)
	pageCol := tbl.ColumnIndex(PageIDColumn)
	provCol := tbl.ColumnIndex(ProviderIDColumn)
	if corrCol < 0 || pageCol < 0 || provCol < 0 {
		slog.Warn("Identifier map misses required columns", "header", tbl.Header)
		return res
	}
	maxCol := max(corrCol, pageCol, provCol)

	var skipped int
	for _, v := range tbl.Rows {
		if len(v) <= maxCol {
			skipped++
			continue
		}
		pageID, err := strconv.Atoi(v[pageCol])
		if err != nil {
			skipped++
			continue
		}
		provID, err := strconv.Atoi(v[provCol])
		if err != nil {
			skipped++
			continue
		}
		row := Row{
			CorrespondingID: v[corrCol],
			PageID:          pageID,
			ProviderID:      provID,
		}
		res.byID[row.CorrespondingID] = append(res.byID[row.CorrespondingID], row)
		res.byPage[row.PageID] = append(res.byPage[row.PageID], row)
	}
	if skipped > 0 {
		slog.Warn("Skipped malformed identifier map rows", "rows", skipped)
	}
	return res
}

func disambiguate(rows []Row, p provider.DataProvider) []Row {
	if len(rows) < 2 || p == provider.Unknown {
		return rows
	}
	var res []Row
	for _, v := range rows {
		if v.ProviderID == p.IntID() {
			res = append(res, v)
		}
	}
	return res
}

func pageIDs(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	res := make([]string, len(rows))
	for i, v := range rows {
		res[i] = strconv.Itoa(v.PageID)
	}
	return res
}

func correspondingIDs(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	res := make([]string, len(rows))
	for i, v := range rows {
		res[i] = v.CorrespondingID
	}
	return res
}
