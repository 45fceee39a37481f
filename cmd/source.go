/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/eoltraits/internal/iocsv"
	"github.com/gnames/eoltraits/internal/iocypher"
	"github.com/gnames/eoltraits/internal/iofs"
	"github.com/gnames/eoltraits/internal/iolookup"
	"github.com/gnames/eoltraits/internal/iopg"
	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/eoltraits/pkg/eol"
	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/eoltraits/pkg/idconv"
	"github.com/gnames/eoltraits/pkg/lookup"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/gnames/eoltraits/pkg/traitsrc"
)

// newHandler creates a trait source of the configured type.
func newHandler(ctx context.Context, cfg *config.Config) (traitsrc.Handler, error) {
	switch traitsrc.Type(cfg.Source.Type) {
	case traitsrc.CSV:
		return iocsv.New(cfg.Source.TraitsFile, true), nil
	case traitsrc.API:
		h, err := iocypher.New(cfg.API, config.APICacheDir(cfg.HomeDir))
		if err != nil {
			return nil, err
		}
		return h, nil
	case traitsrc.PG:
		h, err := iopg.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, traitsrc.UnknownSourceError(cfg.Source.Type)
	}
}

// newResolver creates an identifier resolver. It returns nil if no
// identifier map is configured. The returned function releases the
// lookup cache.
func newResolver(
	cfg *config.Config,
	extra ...provider.DataProvider,
) (*idconv.Resolver, func(), error) {
	noop := func() {}
	if cfg.Mapping.ProviderIDsFile == "" {
		return nil, noop, nil
	}

	var rdr lookup.Reader = iolookup.NewCSVReader(true)
	release := noop
	if cfg.Mapping.WithCache {
		c, err := iolookup.NewCachedReader(config.LookupCacheDir(cfg.HomeDir), rdr)
		if err != nil {
			return nil, noop, err
		}
		rdr = c
		release = func() { c.Close() }
	}

	var ps []provider.DataProvider
	for _, v := range cfg.Mapping.RelevantProviders {
		if p := provider.New(v); p != provider.Unknown {
			ps = append(ps, p)
		}
	}
	if len(ps) == 0 {
		ps = eol.RelevantProviders
	}

	res := idconv.New(cfg.Mapping.ProviderIDsFile, rdr, ps...)
	for _, p := range extra {
		if p != provider.Unknown {
			res.AddRelevantProvider(p)
		}
	}
	return res, release, nil
}

// eolOptions collects orchestrator options from the configuration.
func eolOptions(cfg *config.Config, res *idconv.Resolver) ([]eol.Option, error) {
	opts := []eol.Option{eol.OptJobsNumber(cfg.JobsNumber)}
	if res != nil {
		opts = append(opts, eol.OptResolver(res))
	}
	if cfg.Source.MappingFile != "" {
		m, err := iofs.LoadMapping(cfg.Source.MappingFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, eol.OptNormalizer(normalizer.New(m)))
	}
	return opts, nil
}
