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
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/eoltraits/internal/iooutput"
	"github.com/gnames/eoltraits/pkg/eol"
	"github.com/gnames/eoltraits/pkg/ent/terms"
	"github.com/gnames/eoltraits/pkg/ent/triple"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getTraitsCmd returns the traits command.
func getTraitsCmd() *cobra.Command {
	traitsCmd := &cobra.Command{
		Use:   "traits PAGE_ID...",
		Short: "Print trait triples of EOL pages",
		Long: `Print trait triples of one or more EOL pages.

Every trait record of a page becomes a triple: the page ID is the
subject, the trait URI is the predicate and the value is the object.
Duplicate triples are removed, the rest are sorted.

Predicates can be given as URIs or as aliases:
  eats, is-eaten-by, preys-on, parasitizes, pollinates, habitat,
  has-habitat, present, native-range, introduced-range,
  extinction-status, body-mass, conservation-status

Examples:
  eoltraits traits 328598
  eoltraits traits 328598 328607 -p eats,habitat -f pretty
  eoltraits traits 328598 -s api
  eoltraits traits 328598 -s csv -t ~/eol/traits.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTraits(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	traitsCmd.Flags().StringP("source", "s", "",
		"trait source: csv, api or pg")
	traitsCmd.Flags().StringP("traits-file", "t", "",
		"path to traits.csv for the csv source")
	traitsCmd.Flags().StringSliceP("predicates", "p", nil,
		"return only these predicates (URIs or aliases)")
	traitsCmd.Flags().StringP("format", "f", "",
		"output format: csv, tsv, compact, pretty")
	traitsCmd.Flags().IntP("jobs", "j", 0,
		"number of pages processed concurrently")

	return traitsCmd
}

func runTraits(cmd *cobra.Command, pageIDs []string) error {
	ctx := context.Background()

	cfg.Update(flagOptions(cmd,
		sourceFlag, traitsFileFlag, predicatesFlag, formatFlag, jobsFlag,
	))

	h, err := newHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	eolOpts, err := eolOptions(cfg, nil)
	if err != nil {
		return err
	}
	e := eol.New(h, eolOpts...)

	preds := terms.ResolveAll(cfg.Output.Predicates)
	res, err := e.TraitsForPageIDs(ctx, pageIDs, preds)
	if err != nil {
		return err
	}

	ts := collect(pageIDs, res)
	slog.Info("Traits are ready",
		"pages", len(pageIDs),
		"triples", humanize.Comma(int64(len(ts))),
	)

	out, err := iooutput.Format(ts, iooutput.NewFormat(cfg.Output.Format), true)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// collect joins triples of pages in the order of page IDs. Repeated page
// IDs are printed once.
func collect(pageIDs []string, res map[string][]triple.Triple) []triple.Triple {
	seen := make(map[string]struct{}, len(pageIDs))
	var ts []triple.Triple
	for _, v := range pageIDs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ts = append(ts, res[v]...)
	}
	return ts
}
