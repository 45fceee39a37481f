// Package iooutput renders triples as CSV, TSV or JSON.
package iooutput

import (
	"strings"

	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/gnfmt"
)

// Header lists the fields of CSV and TSV output.
var Header = []string{
	"ID", "Subject", "Predicate", "Object", "Unit",
	"SourceURL", "Citation", "RecordID",
}

// Output is a triple together with its identifier.
type Output struct {
	ID string `json:"id"`
	triple.Triple
}

// NewFormat converts a format name to gnfmt.Format. Unknown names give
// CSV.
func NewFormat(s string) gnfmt.Format {
	switch strings.ToLower(s) {
	case "tsv":
		return gnfmt.TSV
	case "compact":
		return gnfmt.CompactJSON
	case "pretty":
		return gnfmt.PrettyJSON
	default:
		return gnfmt.CSV
	}
}

// Format renders triples. CSV and TSV get a header line if withHeader is
// true. Compact JSON gives one object per line, pretty JSON gives an
// array.
func Format(
	ts []triple.Triple,
	f gnfmt.Format,
	withHeader bool,
) (string, error) {
	switch f {
	case gnfmt.CompactJSON:
		return jsonLines(ts)
	case gnfmt.PrettyJSON:
		return jsonArray(ts)
	default:
		return delimited(ts, f, withHeader), nil
	}
}

func delimited(ts []triple.Triple, f gnfmt.Format, withHeader bool) string {
	sep := ','
	if f == gnfmt.TSV {
		sep = '\t'
	}

	var sb strings.Builder
	if withHeader {
		sb.WriteString(gnfmt.ToCSV(Header, sep))
		sb.WriteString("\n")
	}
	for _, v := range ts {
		row := []string{
			v.ID(), v.Subject, v.Predicate, v.Object.String(), v.Unit,
			v.SourceURL, v.Citation, v.RecordID,
		}
		sb.WriteString(gnfmt.ToCSV(row, sep))
		sb.WriteString("\n")
	}
	return sb.String()
}

func jsonLines(ts []triple.Triple) (string, error) {
	enc := gnfmt.GNjson{}
	var sb strings.Builder
	for _, v := range ts {
		bs, err := enc.Encode(Output{ID: v.ID(), Triple: v})
		if err != nil {
			return "", err
		}
		sb.Write(bs)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func jsonArray(ts []triple.Triple) (string, error) {
	enc := gnfmt.GNjson{Pretty: true}
	out := make([]Output, len(ts))
	for i, v := range ts {
		out[i] = Output{ID: v.ID(), Triple: v}
	}
	bs, err := enc.Encode(out)
	if err != nil {
		return "", err
	}
	return string(bs) + "\n", nil
}
