package eol

import (
	"github.com/gnames/eoltraits/pkg/idconv"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/gnames/eoltraits/pkg/triplegen"
)

// Option configures the EOL processor.
type Option func(*eol)

// OptNormalizer replaces the normalizer created from the handler mapping.
func OptNormalizer(n normalizer.Normalizer) Option {
	return func(e *eol) {
		e.norm = n
	}
}

// OptGenerator replaces the default triple generator.
func OptGenerator(g triplegen.Generator) Option {
	return func(e *eol) {
		e.gen = g
	}
}

// OptResolver enables identifier conversion.
func OptResolver(r *idconv.Resolver) Option {
	return func(e *eol) {
		e.res = r
	}
}

// OptJobsNumber sets how many page IDs are processed concurrently.
func OptJobsNumber(i int) Option {
	return func(e *eol) {
		if i > 0 {
			e.jobs = i
		}
	}
}
