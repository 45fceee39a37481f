// Package iolookup reads lookup tables from CSV files and keeps filtered
// tables in a SQLite cache.
package iolookup

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/eoltraits/internal/iofs"
	"github.com/gnames/eoltraits/pkg/lookup"
	"github.com/gnames/gnfmt"
)

type csvReader struct {
	showProgress bool
}

// NewCSVReader creates a reader of comma-separated lookup files. The
// first line of a file is its header.
func NewCSVReader(showProgress bool) lookup.Reader {
	return &csvReader{showProgress: showProgress}
}

func (r *csvReader) Read(
	ctx context.Context,
	path string,
	filters []lookup.Filter,
) (*lookup.Table, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if r.showProgress {
		var finish func()
		src, finish = iofs.ProgressReader(f, "Reading "+filepath.Base(path)+": ")
		defer finish()
	}

	rdr := csv.NewReader(src)
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err != nil {
		return nil, ReadError(path, err)
	}

	res := &lookup.Table{Header: header}
	var total int64
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		total++
		if lookup.MatchAll(row, filters) {
			res.Rows = append(res.Rows, row)
		}
	}

	slog.Info("Lookup file is read",
		"path", path,
		"rows", humanize.Comma(total),
		"matched", humanize.Comma(int64(len(res.Rows))),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}
