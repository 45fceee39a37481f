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
	"github.com/gnames/eoltraits/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag converts a flag to config options if the flag was set.
type funcFlag func(cmd *cobra.Command) []config.Option

func flagOptions(cmd *cobra.Command, fs ...funcFlag) []config.Option {
	var res []config.Option
	for _, f := range fs {
		res = append(res, f(cmd)...)
	}
	return res
}

func sourceFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("source") {
		return nil
	}
	s, _ := cmd.Flags().GetString("source")
	return []config.Option{config.OptSourceType(s)}
}

func traitsFileFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("traits-file") {
		return nil
	}
	s, _ := cmd.Flags().GetString("traits-file")
	return []config.Option{config.OptSourceTraitsFile(s)}
}

func idsFileFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("ids-file") {
		return nil
	}
	s, _ := cmd.Flags().GetString("ids-file")
	return []config.Option{config.OptMappingProviderIDsFile(s)}
}

func predicatesFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("predicates") {
		return nil
	}
	ss, _ := cmd.Flags().GetStringSlice("predicates")
	return []config.Option{config.OptOutputPredicates(ss)}
}

func formatFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("format") {
		return nil
	}
	s, _ := cmd.Flags().GetString("format")
	return []config.Option{config.OptOutputFormat(s)}
}

func jobsFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("jobs") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("jobs")
	return []config.Option{config.OptJobsNumber(i)}
}
