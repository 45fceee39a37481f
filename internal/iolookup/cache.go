package iolookup

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/eoltraits/pkg/lookup"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
	_ "modernc.org/sqlite"
)

// CacheFile is the name of the SQLite database of filtered tables.
const CacheFile = "lookup.sqlite"

const schema = `CREATE TABLE IF NOT EXISTS tables (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	created TEXT NOT NULL,
	data BLOB NOT NULL
)`

// CachedReader keeps tables read by another reader in a SQLite database.
// An entry is found again only if the file has the same path, size and
// modification time and the filters are the same.
type CachedReader struct {
	inner lookup.Reader
	path  string
	db    *sql.DB
	enc   gnfmt.Encoder
}

// NewCachedReader opens or creates the cache in cacheDir.
func NewCachedReader(cacheDir string, inner lookup.Reader) (*CachedReader, error) {
	err := gnsys.MakeDir(cacheDir)
	if err != nil {
		return nil, CacheError(cacheDir, err)
	}
	path := filepath.Join(cacheDir, CacheFile)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, CacheError(path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, CacheError(path, err)
	}

	res := &CachedReader{
		inner: inner,
		path:  path,
		db:    db,
		enc:   gnfmt.GNjson{},
	}
	return res, nil
}

// Read returns the cached table or reads it with the inner reader and
// stores the result.
func (c *CachedReader) Read(
	ctx context.Context,
	path string,
	filters []lookup.Filter,
) (*lookup.Table, error) {
	key, err := cacheKey(path, filters)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var data []byte
	err = c.db.QueryRowContext(ctx,
		"SELECT data FROM tables WHERE id = ?", key,
	).Scan(&data)
	switch {
	case err == nil:
		var res lookup.Table
		if err = c.enc.Decode(data, &res); err == nil {
			slog.Info("Lookup table is found in cache", "path", path)
			return &res, nil
		}
		slog.Warn("Cannot decode cached lookup table", "error", err)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, CacheError(c.path, err)
	}

	res, err := c.inner.Read(ctx, path, filters)
	if err != nil {
		return nil, err
	}

	data, err = c.enc.Encode(res)
	if err != nil {
		return nil, CacheError(c.path, err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO tables (id, path, created, data)
		VALUES (?, ?, ?, ?)`,
		key, path, time.Now().UTC().Format(time.RFC3339), data,
	)
	if err != nil {
		return nil, CacheError(c.path, err)
	}
	return res, nil
}

// Close closes the cache database.
func (c *CachedReader) Close() error {
	return c.db.Close()
}

// cacheKey identifies a file state together with a set of filters.
func cacheKey(path string, filters []lookup.Filter) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	fs := slices.Clone(filters)
	for i := range fs {
		fs[i].Values = slices.Sorted(slices.Values(fs[i].Values))
	}
	slices.SortFunc(fs, func(a, b lookup.Filter) int {
		return cmp.Or(
			cmp.Compare(a.Column, b.Column),
			strings.Compare(
				strings.Join(a.Values, "\x00"), strings.Join(b.Values, "\x00"),
			),
		)
	})
	fsJSON, err := gnfmt.GNjson{}.Encode(fs)
	if err != nil {
		return "", err
	}

	s := abs + "|" + strconv.FormatInt(info.Size(), 10) + "|" +
		strconv.FormatInt(info.ModTime().UnixNano(), 10) + "|" + string(fsJSON)
	return gnuuid.New(s).String(), nil
}
