package eol

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/eoltraits/pkg/idconv"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/gnames/eoltraits/pkg/traitsrc"
	"github.com/gnames/eoltraits/pkg/triplegen"
	"golang.org/x/sync/errgroup"
)

// RelevantProviders are loaded from the identifier map by default.
var RelevantProviders = []provider.DataProvider{provider.GBIF}

type eol struct {
	h    traitsrc.Handler
	norm normalizer.Normalizer
	gen  triplegen.Generator
	res  *idconv.Resolver
	jobs int
}

// New creates an EOL processor for a trait data source. The handler can
// be nil if only identifier conversion is needed.
func New(h traitsrc.Handler, opts ...Option) EOL {
	res := &eol{
		h:    h,
		jobs: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(res)
	}
	if res.norm == nil && h != nil {
		res.norm = normalizer.New(h.Mapping())
	}
	if res.gen == nil {
		res.gen = triplegen.New()
	}
	return res
}

func (e *eol) TraitsForPageID(
	ctx context.Context,
	pageID string,
	predicates []string,
) ([]triple.Triple, error) {
	if e.h == nil {
		return nil, SourceNotSetError()
	}
	var ts []triple.Triple
	var count int
	for raw, err := range e.h.IterateByKey(ctx, record.PageID, pageID) {
		if err != nil {
			return nil, err
		}
		count++
		n, err := e.norm.Normalize(raw)
		if err != nil {
			return nil, err
		}
		res, err := e.gen.CreateTriples(n)
		if err != nil {
			return nil, err
		}
		ts = append(ts, res...)
	}
	slog.Debug("Processed trait records", "page_id", pageID, "records", count)

	ts = triple.FilterPredicates(ts, predicates)
	return triple.Deduplicate(ts), nil
}

func (e *eol) TraitsForPageIDs(
	ctx context.Context,
	pageIDs []string,
	predicates []string,
) (map[string][]triple.Triple, error) {
	var mu sync.Mutex
	res := make(map[string][]triple.Triple, len(pageIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for _, id := range pageIDs {
		g.Go(func() error {
			ts, err := e.TraitsForPageID(ctx, id, predicates)
			if err != nil {
				return err
			}
			mu.Lock()
			res[id] = ts
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *eol) GBIFIDForPageID(
	ctx context.Context,
	pageID string,
) ([]string, error) {
	return e.ForeignIDs(ctx, pageID, provider.GBIF)
}

func (e *eol) PageIDForGBIFID(
	ctx context.Context,
	gbifID string,
) ([]string, error) {
	return e.PageIDs(ctx, gbifID, provider.GBIF)
}

func (e *eol) ForeignIDs(
	ctx context.Context,
	pageID string,
	p provider.DataProvider,
) ([]string, error) {
	if e.res == nil {
		return nil, ConverterNotSetError()
	}
	slog.Debug("Converting EOL page ID", "page_id", pageID, "provider", p)
	return e.res.FromCanonicalID(ctx, pageID, p)
}

func (e *eol) PageIDs(
	ctx context.Context,
	id string,
	p provider.DataProvider,
) ([]string, error) {
	if e.res == nil {
		return nil, ConverterNotSetError()
	}
	slog.Debug("Converting to EOL page ID", "id", id, "provider", p)
	return e.res.ToCanonicalID(ctx, id, p)
}

func (e *eol) BatchForeignIDs(
	ctx context.Context,
	pageIDs []string,
	p provider.DataProvider,
) ([]string, error) {
	if e.res == nil {
		return nil, ConverterNotSetError()
	}
	slog.Debug("Converting EOL page IDs", "ids", len(pageIDs), "provider", p)
	return e.res.FromCanonicalIDs(ctx, pageIDs, p)
}

func (e *eol) BatchPageIDs(
	ctx context.Context,
	ids []string,
	p provider.DataProvider,
) ([]string, error) {
	if e.res == nil {
		return nil, ConverterNotSetError()
	}
	slog.Debug("Converting to EOL page IDs", "ids", len(ids), "provider", p)
	return e.res.ToCanonicalIDs(ctx, ids, p)
}
