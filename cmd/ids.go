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
	"strings"

	"github.com/gnames/eoltraits/pkg/eol"
	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// idMatch is a result of identifier conversion. Empty Output means the
// identifier was not found.
type idMatch struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// getIDsCmd returns the ids command with its subcommands.
func getIDsCmd() *cobra.Command {
	idsCmd := &cobra.Command{
		Use:   "ids",
		Short: "Convert identifiers between EOL and other providers",
		Long: `Convert identifiers of data providers to EOL page IDs and back.

Conversion uses provider_ids.csv of the EOL identifier map
(https://opendata.eol.org/dataset/identifier-map). Set its path in
the 'mapping' section of the config file or with --ids-file.

Known providers: gbif (767), itis (695), iucn (5), ncbi (676),
worms (459), frost (726). Providers can be given by name or by
EOL resource ID.`,
	}

	idsCmd.PersistentFlags().StringP("provider", "P", "gbif",
		"data provider name or EOL resource ID")
	idsCmd.PersistentFlags().StringP("ids-file", "i", "",
		"path to provider_ids.csv")
	idsCmd.PersistentFlags().StringP("format", "f", "",
		"output format: csv, tsv, compact, pretty")

	toPageCmd := &cobra.Command{
		Use:   "to-page ID...",
		Short: "Convert provider identifiers to EOL page IDs",
		Long: `Convert identifiers of a provider to EOL page IDs.

Examples:
  eoltraits ids to-page 2435099
  eoltraits ids to-page 180582 -P itis`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIDs(cmd, args, true)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fromPageCmd := &cobra.Command{
		Use:   "from-page PAGE_ID...",
		Short: "Convert EOL page IDs to provider identifiers",
		Long: `Convert EOL page IDs to identifiers of a provider.

Examples:
  eoltraits ids from-page 328598
  eoltraits ids from-page 328598 -P ncbi -f pretty`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIDs(cmd, args, false)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	idsCmd.AddCommand(toPageCmd, fromPageCmd)
	return idsCmd
}

func runIDs(cmd *cobra.Command, ids []string, toPage bool) error {
	ctx := context.Background()

	cfg.Update(flagOptions(cmd, idsFileFlag, formatFlag))

	s, _ := cmd.Flags().GetString("provider")
	p := provider.New(s)
	if p == provider.Unknown {
		gn.Warn("Unknown provider <em>%s</em>, matching all providers", s)
	}

	res, release, err := newResolver(cfg, p)
	if err != nil {
		return err
	}
	defer release()

	e := eol.New(nil, eol.OptResolver(res))
	matches, err := convertIDs(ctx, e, ids, p, toPage)
	if err != nil {
		return err
	}

	out, err := formatMatches(matches, cfg.Output.Format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func convertIDs(
	ctx context.Context,
	e eol.EOL,
	ids []string,
	p provider.DataProvider,
	toPage bool,
) ([]idMatch, error) {
	var outs []string
	var err error
	if toPage {
		outs, err = e.BatchPageIDs(ctx, ids, p)
	} else {
		outs, err = e.BatchForeignIDs(ctx, ids, p)
	}
	if err != nil {
		return nil, err
	}

	matches := make([]idMatch, len(ids))
	for i := range ids {
		matches[i] = idMatch{Input: ids[i], Output: outs[i]}
	}
	return matches, nil
}

func formatMatches(ms []idMatch, format string) (string, error) {
	switch format {
	case "compact", "pretty":
		enc := gnfmt.GNjson{Pretty: format == "pretty"}
		bs, err := enc.Encode(ms)
		if err != nil {
			return "", err
		}
		return string(bs) + "\n", nil
	}

	sep := ','
	if format == "tsv" {
		sep = '\t'
	}
	var sb strings.Builder
	sb.WriteString(gnfmt.ToCSV([]string{"Input", "Output"}, sep))
	sb.WriteString("\n")
	for _, v := range ms {
		sb.WriteString(gnfmt.ToCSV([]string{v.Input, v.Output}, sep))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
