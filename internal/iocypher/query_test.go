package iocypher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLimit(t *testing.T) {
	tests := []struct {
		msg, query, base string
		limit            int
		isErr            bool
	}{
		{"semicolon", "MATCH (t) RETURN t LIMIT 100;", "MATCH (t) RETURN t", 100, false},
		{"lowercase", "MATCH (t) RETURN t limit 5", "MATCH (t) RETURN t", 5, false},
		{"order", "MATCH (t) RETURN t ORDER BY t.eol_pk LIMIT 7", "MATCH (t) RETURN t ORDER BY t.eol_pk", 7, false},
		{"no limit", "MATCH (t) RETURN t", "", 0, true},
		{"zero", "MATCH (t) RETURN t LIMIT 0", "", 0, true},
	}

	for _, v := range tests {
		base, limit, err := splitLimit(v.query)
		if v.isErr {
			assert.NotNil(t, err, v.msg)
			continue
		}
		assert.Nil(t, err, v.msg)
		assert.Equal(t, v.base, base, v.msg)
		assert.Equal(t, v.limit, limit, v.msg)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct{ in, out string }{
		{"328598", "328598"},
		{"-3", "-3"},
		{"R20-PK1", `"R20-PK1"`},
		{"http://eol.org/x", `"http://eol.org/x"`},
		{`a"b\c`, `"a\"b\\c"`},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, Literal(v.in), v.in)
	}
}

func TestTraitQuery(t *testing.T) {
	assert := assert.New(t)
	q := TraitQuery(50)
	assert.NotContains(q, "WHERE")
	assert.Contains(q, "RETURN obj.name, obj.uri, p.citation")
	assert.Contains(q, "ORDER BY t.eol_pk LIMIT 50")

	q = TraitQuery(10,
		Condition{Variable: "p.page_id", Value: "1"},
		Condition{Variable: "pred.uri", Value: "http://x"},
	)
	assert.Contains(q, `WHERE p.page_id = 1 AND pred.uri = "http://x"`)

	_, limit, err := splitLimit(q)
	assert.Nil(err)
	assert.Equal(10, limit)
}
