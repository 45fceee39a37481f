// Package triple provides the subject-predicate-object statement that
// describes one trait fact of a taxon, together with the reducer that
// deduplicates and orders collections of triples.
package triple

import (
	"strings"

	"github.com/gnames/gnuuid"
)

// Triple is a trait statement about a taxon.
type Triple struct {
	// Subject is the EOL page ID of the taxon.
	Subject string `json:"subject"`

	// Predicate is the URI of the trait.
	Predicate string `json:"predicate"`

	// Object is the value of the trait.
	Object Object `json:"object"`

	// RecordID is the EOL identifier of the record the triple came from.
	// It is not a part of the triple identity.
	RecordID string `json:"recordId"`

	// Unit is the URI of measurement units, if any.
	Unit string `json:"unit,omitempty"`

	// SourceURL is the URL of the data source, if any.
	SourceURL string `json:"sourceUrl,omitempty"`

	// Citation is the bibliographic citation of the data, if any.
	Citation string `json:"citation,omitempty"`
}

// Key returns a string that identifies the fact the triple describes.
// Two triples with the same key are duplicates.
func (t Triple) Key() string {
	return strings.Join([]string{
		t.Subject, t.Predicate, t.Object.key(), t.Unit, t.SourceURL, t.Citation,
	}, "\x1f")
}

// ID returns a deterministic UUID v5 generated from the triple key.
func (t Triple) ID() string {
	return gnuuid.New(t.Key()).String()
}

// Compare orders triples by subject, predicate, object, unit, source
// and citation. Record ID breaks remaining ties.
func Compare(a, b Triple) int {
	if res := strings.Compare(a.Subject, b.Subject); res != 0 {
		return res
	}
	if res := strings.Compare(a.Predicate, b.Predicate); res != 0 {
		return res
	}
	if res := a.Object.Compare(b.Object); res != 0 {
		return res
	}
	if res := strings.Compare(a.Unit, b.Unit); res != 0 {
		return res
	}
	if res := strings.Compare(a.SourceURL, b.SourceURL); res != 0 {
		return res
	}
	if res := strings.Compare(a.Citation, b.Citation); res != 0 {
		return res
	}
	return strings.Compare(a.RecordID, b.RecordID)
}
