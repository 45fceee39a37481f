// Package lookup describes tables that are read from delimited files and
// filtered by values of their columns.
package lookup

import (
	"context"
	"slices"
)

// Filter selects rows where the column at the Column position holds one
// of the Values.
type Filter struct {
	Column int
	Values []string
}

// Match returns true if the row satisfies the filter. Rows that are too
// short never match.
func (f Filter) Match(row []string) bool {
	if f.Column < 0 || f.Column >= len(row) {
		return false
	}
	return slices.Contains(f.Values, row[f.Column])
}

// MatchAll returns true if the row satisfies every filter.
func MatchAll(row []string, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(row) {
			return false
		}
	}
	return true
}

// FiltersFromPairs creates one filter for every criterion/column pair. A
// criterion is the set of values accepted in its column. Criteria and
// columns must have the same length.
func FiltersFromPairs(criteria [][]string, columns []int) ([]Filter, error) {
	if len(criteria) != len(columns) {
		return nil, FilterMismatchError(len(criteria), len(columns))
	}
	res := make([]Filter, len(criteria))
	for i := range criteria {
		res[i] = Filter{Column: columns[i], Values: criteria[i]}
	}
	return res, nil
}

// Table is the result of reading a lookup file. Header is always the
// first line of the file.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// ColumnIndex returns the position of a header field or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.Header, name)
}

// Reader loads rows of a lookup file that satisfy all filters.
type Reader interface {
	Read(ctx context.Context, path string, filters []Filter) (*Table, error)
}
