package iooutput

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/gnfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triples() []triple.Triple {
	return []triple.Triple{
		{
			Subject:   "328598",
			Predicate: "http://purl.obolibrary.org/obo/VT_0001259",
			Object:    triple.NumberObject(decimal.RequireFromString("9.5")),
			RecordID:  "R1-PK1",
			Unit:      "http://purl.obolibrary.org/obo/UO_0000009",
		},
		{
			Subject:   "328598",
			Predicate: "http://purl.obolibrary.org/obo/RO_0002303",
			Object:    triple.StringObject("forest, taiga"),
			RecordID:  "R1-PK2",
			Citation:  "Smith, 2001",
		},
	}
}

func TestNewFormat(t *testing.T) {
	tests := []struct {
		in  string
		out gnfmt.Format
	}{
		{"csv", gnfmt.CSV},
		{"TSV", gnfmt.TSV},
		{"compact", gnfmt.CompactJSON},
		{"pretty", gnfmt.PrettyJSON},
		{"what", gnfmt.CSV},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, NewFormat(v.in), v.in)
	}
}

func TestFormatDelimited(t *testing.T) {
	assert := assert.New(t)
	ts := triples()

	res, err := Format(ts, gnfmt.CSV, true)
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 3)
	assert.True(strings.HasPrefix(lines[0], "ID,Subject,Predicate"))
	assert.True(strings.HasPrefix(lines[1], ts[0].ID()+",328598,"))
	assert.Contains(lines[1], ",9.5,")
	assert.Contains(lines[2], `"forest, taiga"`)

	res, err = Format(ts, gnfmt.TSV, false)
	require.Nil(t, err)
	lines = strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 2)
	assert.Len(strings.Split(lines[0], "\t"), len(Header))
}

func TestFormatJSON(t *testing.T) {
	assert := assert.New(t)
	ts := triples()

	res, err := Format(ts, gnfmt.CompactJSON, true)
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 2)
	var obj map[string]any
	require.Nil(t, json.Unmarshal([]byte(lines[0]), &obj))
	assert.Equal(ts[0].ID(), obj["id"])
	assert.Equal("328598", obj["subject"])
	assert.Equal(9.5, obj["object"])

	res, err = Format(ts, gnfmt.PrettyJSON, true)
	require.Nil(t, err)
	var arr []map[string]any
	require.Nil(t, json.Unmarshal([]byte(res), &arr))
	require.Len(t, arr, 2)
	assert.Equal("forest, taiga", arr[1]["object"])
	assert.Equal("Smith, 2001", arr[1]["citation"])
}
