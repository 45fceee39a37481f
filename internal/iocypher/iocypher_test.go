package iocypher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var skipRe = regexp.MustCompile(`SKIP (\d+) LIMIT (\d+)$`)

// cypherServer answers with pages full of rows until 'pages' pages were
// served, then with an empty page.
type cypherServer struct {
	mu      sync.Mutex
	queries []string
	auth    []string
	pages   int
	fail    int
}

func (s *cypherServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail > 0 {
		s.fail--
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	q := r.URL.Query().Get("query")
	s.queries = append(s.queries, q)
	s.auth = append(s.auth, r.Header.Get("Authorization"))

	m := skipRe.FindStringSubmatch(q)
	if m == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	skip, _ := strconv.Atoi(m[1])
	limit, _ := strconv.Atoi(m[2])
	if skip/limit >= s.pages {
		fmt.Fprint(w, `{"columns":["page_id","t.eol_pk"],"data":[]}`)
		return
	}
	fmt.Fprintf(w,
		`{"columns":["page_id","t.eol_pk"],"data":[[328598,"R1-PK%d"],[328598,null]]}`,
		skip,
	)
}

func newHandler(t *testing.T, url string) *Handler {
	cfg := config.APIConfig{
		URL:               url,
		Token:             "secret",
		PageSize:          100,
		RequestsPerSecond: 1000,
		TimeoutSec:        5,
		Retries:           2,
	}
	h, err := New(cfg, "")
	require.Nil(t, err)
	h.backoff = time.Millisecond
	return h
}

func TestQueryPagination(t *testing.T) {
	assert := assert.New(t)
	srv := &cypherServer{pages: 2}
	ts := httptest.NewServer(srv)
	defer ts.Close()
	h := newHandler(t, ts.URL)

	var recs []record.Raw
	q := "MATCH (trait:Trait) RETURN trait LIMIT 100;"
	for rec, err := range h.Query(context.Background(), q) {
		require.Nil(t, err)
		recs = append(recs, rec)
	}

	assert.Len(recs, 4)
	assert.Equal([]string{
		"MATCH (trait:Trait) RETURN trait SKIP 0 LIMIT 100",
		"MATCH (trait:Trait) RETURN trait SKIP 100 LIMIT 100",
		"MATCH (trait:Trait) RETURN trait SKIP 200 LIMIT 100",
	}, srv.queries)
	assert.Equal("JWT secret", srv.auth[0])
	assert.Equal(int64(328598), recs[0]["p.page_id"])
	assert.Equal("R1-PK0", recs[0]["t.eol_pk"])
	assert.Nil(recs[1]["t.eol_pk"])
	assert.Equal("R1-PK100", recs[2]["t.eol_pk"])
}

func TestQueryMissingLimit(t *testing.T) {
	srv := &cypherServer{pages: 1}
	ts := httptest.NewServer(srv)
	defer ts.Close()
	h := newHandler(t, ts.URL)

	var errs []error
	for _, err := range h.Query(context.Background(), "MATCH (t:Trait) RETURN t") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var gnErr *gn.Error
	require.ErrorAs(t, errs[0], &gnErr)
	assert.Equal(t, errcode.CypherMissingLimitError, gnErr.Code)
	assert.Empty(t, srv.queries)
}

func TestQueryRetry(t *testing.T) {
	assert := assert.New(t)
	srv := &cypherServer{pages: 1, fail: 2}
	ts := httptest.NewServer(srv)
	defer ts.Close()
	h := newHandler(t, ts.URL)

	var count int
	for _, err := range h.Query(context.Background(), "MATCH (t) RETURN t LIMIT 10") {
		require.Nil(t, err)
		count++
	}
	assert.Equal(2, count)
	assert.Len(srv.queries, 2)
}

func TestQueryBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
	))
	defer ts.Close()
	h := newHandler(t, ts.URL)

	var errs []error
	for _, err := range h.Query(context.Background(), "MATCH (t) RETURN t LIMIT 10") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	var gnErr *gn.Error
	require.ErrorAs(t, errs[0], &gnErr)
	assert.Equal(t, errcode.CypherResponseError, gnErr.Code)
}

func TestIterateByKey(t *testing.T) {
	assert := assert.New(t)
	srv := &cypherServer{pages: 1}
	ts := httptest.NewServer(srv)
	defer ts.Close()
	h := newHandler(t, ts.URL)

	var count int
	for _, err := range h.IterateByKey(context.Background(), record.PageID, "328598") {
		require.Nil(t, err)
		count++
	}
	assert.Equal(2, count)
	require.Len(t, srv.queries, 2)
	assert.Contains(srv.queries[0], "WHERE p.page_id = 328598 OPTIONAL MATCH")
	assert.Contains(srv.queries[0], "ORDER BY t.eol_pk SKIP 0 LIMIT 100")
}

func TestDiskCache(t *testing.T) {
	assert := assert.New(t)
	srv := &cypherServer{pages: 1}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	cfg := config.APIConfig{
		URL:         ts.URL,
		PageSize:    100,
		TimeoutSec:  5,
		CacheTTLSec: 60,
		DiskCache:   true,
	}
	dir := t.TempDir()
	q := "MATCH (t) RETURN t LIMIT 10"

	run := func() int {
		h, err := New(cfg, dir)
		require.Nil(t, err)
		defer h.Close()
		var count int
		for range 2 {
			for _, err := range h.Query(context.Background(), q) {
				require.Nil(t, err)
				count++
			}
		}
		return count
	}

	assert.Equal(4, run())
	assert.Len(srv.queries, 2)
	assert.Equal(4, run())
	assert.Len(srv.queries, 2)
}

func TestValue(t *testing.T) {
	row := gjson.Parse(`[1e400, 2.5, 31500, "kg", null]`).Array()
	assert.Equal(t, "1e400", value(row[0]))
	assert.Equal(t, 2.5, value(row[1]))
	assert.Equal(t, int64(31500), value(row[2]))
	assert.Equal(t, "kg", value(row[3]))
	assert.Nil(t, value(row[4]))
}
