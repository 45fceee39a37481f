package iocypher

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
	gocache "github.com/patrickmn/go-cache"
)

// page is a cached response body of one page query.
type page struct {
	Query string
	Body  []byte
}

// responseCache keeps API responses in memory and, optionally, in a
// Badger store on disk. Disk entries expire after the same TTL.
type responseCache struct {
	ttl time.Duration
	mem *gocache.Cache
	dir string
	db  *badger.DB
}

func newResponseCache(ttl time.Duration, dir string) (*responseCache, error) {
	res := &responseCache{
		ttl: ttl,
		mem: gocache.New(ttl, 2*ttl),
		dir: dir,
	}
	if dir == "" {
		return res, nil
	}

	err := gnsys.MakeDir(dir)
	if err != nil {
		return nil, CacheError(dir, err)
	}

	options := badger.DefaultOptions(dir)
	options.Logger = nil

	db, err := badger.Open(options)
	if err != nil {
		return nil, CacheError(dir, err)
	}
	res.db = db
	slog.Info("API cache opened", "dir", dir)
	return res, nil
}

func (c *responseCache) key(query string) string {
	return gnuuid.New(query).String()
}

func (c *responseCache) get(query string) ([]byte, bool) {
	k := c.key(query)
	if v, ok := c.mem.Get(k); ok {
		return v.([]byte), true
	}
	if c.db == nil {
		return nil, false
	}

	var valBytes []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(k))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		valBytes, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		slog.Warn("Cannot read API cache", "error", err)
		return nil, false
	}
	if valBytes == nil {
		return nil, false
	}

	enc := gnfmt.GNgob{}
	var p page
	if err = enc.Decode(valBytes, &p); err != nil || p.Query != query {
		return nil, false
	}
	c.mem.Set(k, p.Body, gocache.DefaultExpiration)
	return p.Body, true
}

func (c *responseCache) set(query string, body []byte) {
	k := c.key(query)
	c.mem.Set(k, body, gocache.DefaultExpiration)
	if c.db == nil {
		return
	}

	enc := gnfmt.GNgob{}
	valBytes, err := enc.Encode(page{Query: query, Body: body})
	if err != nil {
		slog.Warn("Cannot encode API response", "error", err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(k), valBytes).WithTTL(c.ttl)
		return txn.SetEntry(e)
	})
	if err != nil {
		slog.Warn("Cannot store API response", "error", err)
	}
}

func (c *responseCache) close() error {
	c.mem.Flush()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return CacheError(c.dir, err)
	}
	return nil
}
