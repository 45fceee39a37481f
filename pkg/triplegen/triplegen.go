// Package triplegen creates triples from normalized trait records.
//
// A record is passed through an ordered chain of rules. Each rule decides
// if the record has a value it knows how to use as a triple object. When
// all rules are done, source URL and citation of the record are attached
// to every created triple.
package triplegen

import (
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/gnlib"
)

// Generator creates triples from a normalized record.
type Generator interface {
	// CreateTriples returns deduplicated and sorted triples of the record.
	// A record without trait values gives an empty result.
	CreateTriples(record.Normalized) ([]triple.Triple, error)
}

type generator struct {
	rules []Rule
}

// New creates a Generator. Without rules DefaultRules are used.
func New(rules ...Rule) Generator {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &generator{rules: rules}
}

func (g *generator) CreateTriples(n record.Normalized) ([]triple.Triple, error) {
	var res []triple.Triple
	for _, rule := range g.rules {
		ts, err := rule(n)
		if err != nil {
			return nil, err
		}
		res = append(res, ts...)
	}

	res = attachProvenance(n, res)
	return triple.Deduplicate(res), nil
}

func attachProvenance(n record.Normalized, ts []triple.Triple) []triple.Triple {
	if !n.Has(record.SourceURL) && !n.Has(record.Citation) {
		return ts
	}
	src := n.String(record.SourceURL)
	cit := gnlib.FixUtf8(n.String(record.Citation))
	for i := range ts {
		ts[i].SourceURL = src
		ts[i].Citation = cit
	}
	return ts
}
