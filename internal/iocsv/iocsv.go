// Package iocsv reads trait records from the traits.csv file of the EOL
// trait bank export.
package iocsv

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gnames/eoltraits/internal/iofs"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/gnames/eoltraits/pkg/traitsrc"
)

// Columns that every traits file has to provide.
var Columns = []string{
	"eol_pk", "page_id", "resource_pk", "resource_id", "source",
	"scientific_name", "predicate", "object_page_id", "value_uri",
	"normal_measurement", "normal_units_uri", "normal_units",
	"measurement", "units_uri", "units", "literal",
}

// integer columns are converted to int64 when possible.
var intColumns = map[string]struct{}{
	"page_id":        {},
	"resource_id":    {},
	"object_page_id": {},
}

type csvHandler struct {
	path         string
	showProgress bool
	m            normalizer.Mapping

	mu     sync.Mutex
	loaded bool
	recs   []record.Raw
	byPage map[string][]int
}

// New creates a handler for a traits file. The file is read on the first
// iteration and kept in memory.
func New(path string, showProgress bool) traitsrc.Handler {
	return &csvHandler{
		path:         path,
		showProgress: showProgress,
		m:            normalizer.CSVMapping(),
	}
}

func (h *csvHandler) Mapping() normalizer.Mapping {
	return h.m
}

func (h *csvHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recs = nil
	h.byPage = nil
	h.loaded = false
	return nil
}

func (h *csvHandler) Iterate(ctx context.Context) iter.Seq2[record.Raw, error] {
	return func(yield func(record.Raw, error) bool) {
		recs, _, err := h.load(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, v := range recs {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			if !yield(maps.Clone(v), nil) {
				return
			}
		}
	}
}

func (h *csvHandler) IterateByKey(
	ctx context.Context,
	key record.Key,
	value string,
) iter.Seq2[record.Raw, error] {
	field := h.m.SourceKey(key)
	return func(yield func(record.Raw, error) bool) {
		recs, byPage, err := h.load(ctx)
		if err != nil {
			yield(nil, err)
			return
		}

		if field == "page_id" {
			for _, i := range byPage[value] {
				if !yield(maps.Clone(recs[i]), nil) {
					return
				}
			}
			return
		}

		for _, v := range recs {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			if record.ToString(v[field]) != value {
				continue
			}
			if !yield(maps.Clone(v), nil) {
				return
			}
		}
	}
}

func (h *csvHandler) load(
	ctx context.Context,
) ([]record.Raw, map[string][]int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loaded {
		return h.recs, h.byPage, nil
	}

	slog.Info("Loading traits file", "path", h.path)
	recs, err := h.read(ctx)
	if err != nil {
		return nil, nil, err
	}

	byPage := make(map[string][]int)
	for i, v := range recs {
		id := record.ToString(v["page_id"])
		byPage[id] = append(byPage[id], i)
	}

	h.recs, h.byPage, h.loaded = recs, byPage, true
	slog.Info("Traits file is loaded",
		"records", humanize.Comma(int64(len(recs))),
		"pages", humanize.Comma(int64(len(byPage))),
	)
	return recs, byPage, nil
}

func (h *csvHandler) read(ctx context.Context) ([]record.Raw, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, ReadFileError(h.path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if h.showProgress {
		var finish func()
		r, finish = iofs.ProgressReader(f, "Reading traits: ")
		defer finish()
	}

	rdr := csv.NewReader(r)
	rdr.ReuseRecord = true
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err != nil {
		return nil, ReadFileError(h.path, err)
	}
	header = append([]string(nil), header...)
	if err = checkColumns(h.path, header); err != nil {
		return nil, err
	}

	var res []record.Raw
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadFileError(h.path, err)
		}
		res = append(res, toRaw(header, row))
	}
	return res, nil
}

func checkColumns(path string, header []string) error {
	have := make(map[string]struct{}, len(header))
	for _, v := range header {
		have[v] = struct{}{}
	}
	var missing []string
	for _, v := range Columns {
		if _, ok := have[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return ColumnsError(path, missing)
	}
	return nil
}

func toRaw(header, row []string) record.Raw {
	res := make(record.Raw, len(header))
	for i, k := range header {
		if i >= len(row) {
			res[k] = nil
			continue
		}
		res[k] = Value(k, row[i])
	}
	return res
}

// Value converts a cell of the export column to a raw record value.
// Empty cells become nil, integer columns become int64.
func Value(column, v string) any {
	if v == "" {
		return nil
	}
	if _, ok := intColumns[column]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return v
}
