package lookup_test

import (
	"testing"

	"github.com/gnames/eoltraits/pkg/errcode"
	"github.com/gnames/eoltraits/pkg/lookup"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersFromPairs(t *testing.T) {
	fs, err := lookup.FiltersFromPairs(
		[][]string{{"767", "459"}, {"2"}}, []int{2, 3},
	)
	require.NoError(t, err)
	assert.Equal(t, []lookup.Filter{
		{Column: 2, Values: []string{"767", "459"}},
		{Column: 3, Values: []string{"2"}},
	}, fs)

	_, err = lookup.FiltersFromPairs([][]string{{"767"}}, []int{2, 3})
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.LookupFilterMismatchError, gnErr.Code)
}

func TestMatchAll(t *testing.T) {
	fs := []lookup.Filter{
		{Column: 2, Values: []string{"767", "459"}},
		{Column: 3, Values: []string{"2"}},
	}

	tests := []struct {
		msg string
		row []string
		res bool
	}{
		{"both match", []string{"a", "1", "767", "2"}, true},
		{"second value matches", []string{"a", "1", "459", "2"}, true},
		{"first fails", []string{"a", "1", "695", "2"}, false},
		{"second fails", []string{"a", "1", "767", "3"}, false},
		{"short row", []string{"a", "1", "767"}, false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, lookup.MatchAll(v.row, fs), v.msg)
	}
	assert.True(t, lookup.MatchAll([]string{"x"}, nil), "no filters")
}

func TestColumnIndex(t *testing.T) {
	tbl := lookup.Table{Header: []string{"resource_pk", "page_id", "resource_id"}}
	assert.Equal(t, 1, tbl.ColumnIndex("page_id"))
	assert.Equal(t, -1, tbl.ColumnIndex("nope"))
}
