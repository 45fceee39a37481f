package iopg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/gnames/eoltraits/internal/iocsv"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string {
	return &s
}

// row builds a result row in the order of export columns.
func row(vals map[string]string) []any {
	res := make([]any, len(iocsv.Columns))
	for i, k := range iocsv.Columns {
		if v, ok := vals[k]; ok {
			res[i] = str(v)
		} else {
			res[i] = (*string)(nil)
		}
	}
	return res
}

func TestIterateByKey(t *testing.T) {
	assert := assert.New(t)
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	h := New(pool, "traits")
	rows := pool.NewRows(iocsv.Columns).
		AddRow(row(map[string]string{
			"eol_pk":    "R1-PK1",
			"page_id":   "328598",
			"predicate": "http://purl.obolibrary.org/obo/RO_0002303",
			"value_uri": "http://purl.obolibrary.org/obo/ENVO_00000446",
		})...).
		AddRow(row(map[string]string{
			"eol_pk":  "R1-PK2",
			"page_id": "328598",
			"literal": "present",
		})...)
	pool.ExpectQuery(regexp.QuoteMeta(h.selectSQL("page_id"))).
		WithArgs("328598").
		WillReturnRows(rows)

	var recs []record.Raw
	for rec, err := range h.IterateByKey(context.Background(), record.PageID, "328598") {
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)
	assert.Equal(int64(328598), recs[0]["page_id"])
	assert.Equal("R1-PK1", recs[0]["eol_pk"])
	assert.Nil(recs[0]["literal"])
	assert.Equal("present", recs[1]["literal"])
	assert.NoError(pool.ExpectationsWereMet())
}

func TestIterate(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	h := New(pool, "traits")
	rows := pool.NewRows(iocsv.Columns).
		AddRow(row(map[string]string{"eol_pk": "R1-PK1", "page_id": "1"})...)
	pool.ExpectQuery(regexp.QuoteMeta(h.selectSQL(""))).WillReturnRows(rows)

	var count int
	for _, err := range h.Iterate(context.Background()) {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 1, count)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestIterateErrors(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()
	h := New(pool, "traits")

	t.Run("unknown column", func(t *testing.T) {
		var errs []error
		for _, err := range h.IterateByKey(context.Background(), record.Key("weight"), "1") {
			errs = append(errs, err)
		}
		require.Len(t, errs, 1)
		var gnErr *gn.Error
		require.ErrorAs(t, errs[0], &gnErr)
		assert.Equal(t, errcode.PgUnknownColumnError, gnErr.Code)
	})

	t.Run("query failure", func(t *testing.T) {
		pool.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))
		var errs []error
		for _, err := range h.Iterate(context.Background()) {
			errs = append(errs, err)
		}
		require.Len(t, errs, 1)
		var gnErr *gn.Error
		require.ErrorAs(t, errs[0], &gnErr)
		assert.Equal(t, errcode.PgQueryError, gnErr.Code)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestSelectSQL(t *testing.T) {
	h := New(nil, "eol traits")
	q := h.selectSQL("eol_pk")
	assert.Contains(t, q, `"eol_pk"::text, "page_id"::text`)
	assert.Contains(t, q, `FROM "eol traits" WHERE "eol_pk"::text = $1`)

	h = New(nil, "public.traits")
	q = h.selectSQL("")
	assert.Contains(t, q, `FROM "public"."traits" ORDER BY eol_pk`)
}
