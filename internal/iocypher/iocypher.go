// Package iocypher reads trait records from the Cypher web service of the
// Encyclopedia of Life.
package iocypher

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Handler pages through Cypher queries. It implements traitsrc.Handler.
type Handler struct {
	cfg     config.APIConfig
	client  *resty.Client
	limiter *rate.Limiter
	cache   *responseCache
	backoff time.Duration
	m       normalizer.Mapping
}

// New creates an API handler. If cacheDir is not empty and disk cache is
// enabled, responses are kept there between runs.
func New(cfg config.APIConfig, cacheDir string) (*Handler, error) {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		client.SetHeader("Authorization", "JWT "+cfg.Token)
	}

	lim := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		lim = rate.Inf
	}

	res := &Handler{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(lim, 1),
		backoff: time.Second,
		m:       normalizer.APIMapping(),
	}

	if cfg.CacheTTLSec > 0 {
		if !cfg.DiskCache {
			cacheDir = ""
		}
		ttl := time.Duration(cfg.CacheTTLSec) * time.Second
		c, err := newResponseCache(ttl, cacheDir)
		if err != nil {
			return nil, err
		}
		res.cache = c
	}
	return res, nil
}

func (h *Handler) Mapping() normalizer.Mapping {
	return h.m
}

func (h *Handler) Close() error {
	if h.cache == nil {
		return nil
	}
	return h.cache.close()
}

func (h *Handler) Iterate(ctx context.Context) iter.Seq2[record.Raw, error] {
	return h.Query(ctx, TraitQuery(h.cfg.PageSize))
}

func (h *Handler) IterateByKey(
	ctx context.Context,
	key record.Key,
	value string,
) iter.Seq2[record.Raw, error] {
	cond := Condition{Variable: h.m.SourceKey(key), Value: value}
	return h.Query(ctx, TraitQuery(h.cfg.PageSize, cond))
}

// Query runs a Cypher query page by page. The query must have a LIMIT
// clause, it becomes the size of a page. Pages are requested until the
// service returns no data.
func (h *Handler) Query(
	ctx context.Context,
	query string,
) iter.Seq2[record.Raw, error] {
	return func(yield func(record.Raw, error) bool) {
		base, limit, err := splitLimit(query)
		if err != nil {
			yield(nil, err)
			return
		}

		for skip := 0; ; skip += limit {
			q := pageQuery(base, skip, limit)
			body, err := h.fetch(ctx, q)
			if err != nil {
				yield(nil, err)
				return
			}
			rows, err := decode(body)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(rows) == 0 {
				return
			}
			slog.Debug("Got Cypher page", "skip", skip, "rows", len(rows))
			for _, v := range rows {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

func (h *Handler) fetch(ctx context.Context, query string) ([]byte, error) {
	if h.cache != nil {
		if body, ok := h.cache.get(query); ok {
			return body, nil
		}
	}

	var body []byte
	b := retry.WithMaxRetries(
		uint64(h.cfg.Retries),
		retry.NewExponential(h.backoff),
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}

		resp, err := h.client.R().
			SetContext(ctx).
			SetQueryParam("query", query).
			Post(h.cfg.URL)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("Cypher request failed", "error", err)
			return retry.RetryableError(RequestError(h.cfg.URL, err))
		}

		code := resp.StatusCode()
		switch {
		case code == http.StatusOK:
			body = resp.Body()
			return nil
		case code == http.StatusTooManyRequests || code >= 500:
			slog.Warn("Cypher request is rejected", "status", code)
			return retry.RetryableError(ResponseError(code, resp.String()))
		default:
			return ResponseError(code, resp.String())
		}
	})
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.set(query, body)
	}
	return body, nil
}

// decode zips columns and data of a Cypher response into records.
func decode(body []byte) ([]record.Raw, error) {
	if !gjson.ValidBytes(body) {
		return nil, DecodeError(errors.New("response is not JSON"))
	}
	res := gjson.ParseBytes(body)

	cols := res.Get("columns")
	if !cols.IsArray() {
		return nil, DecodeError(errors.New("response has no columns"))
	}
	var names []string
	for _, v := range cols.Array() {
		name := v.String()
		if name == "page_id" {
			name = "p.page_id"
		}
		names = append(names, name)
	}

	rows := res.Get("data").Array()
	recs := make([]record.Raw, 0, len(rows))
	for i, row := range rows {
		vals := row.Array()
		if len(vals) != len(names) {
			err := fmt.Errorf(
				"row %d has %d values for %d columns", i, len(vals), len(names),
			)
			return nil, DecodeError(err)
		}
		rec := make(record.Raw, len(names))
		for j, k := range names {
			rec[k] = value(vals[j])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func value(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			f := v.Float()
			if math.IsInf(f, 0) {
				return v.Raw
			}
			return f
		}
		return v.Int()
	case gjson.String:
		return v.String()
	default:
		return v.Raw
	}
}
