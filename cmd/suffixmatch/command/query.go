// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nekitakamenev/suffixmatch"
	"github.com/nekitakamenev/suffixmatch/internal/fasta"
)

// NewQueryCommand returns a command that builds an index with build and
// prints the match length of every query.
func NewQueryCommand(name, short string, logger *zap.Logger, build func(string) suffixmatch.Matcher) (cmd *cobra.Command) {
	var text, reference string
	var queries []string

	cmd = &cobra.Command{
		Use:     name + " [query...]",
		Short:   short,
		Example: "suffixmatch " + name + " --string banana --query ana,xnana",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flag("reference").Changed {
				seq, err := fasta.First(reference)
				if err != nil {
					return err
				}
				text = seq
			}
			if text == "" {
				logger.Warn("empty reference, every query matches 0")
			}
			if strings.IndexByte(text, '$') >= 0 {
				logger.Warn("reference contains the sentinel '$'")
			}

			idx := build(text)
			logger.Debug("index built", zap.String("kind", name), zap.Int("length", len(text)))

			out := cmd.OutOrStdout()
			if sa, ok := idx.(*suffixmatch.SuffixArray); ok && sa != nil {
				fmt.Fprintln(out, sa.Offsets())
			}
			for _, q := range append(queries, args...) {
				fmt.Fprintf(out, "%s : %d\n", q, idx.Search(q))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "string", "", "Reference sequence")
	cmd.Flags().StringVar(&reference, "reference", "", "Reference sequence file (FASTA, first record)")
	cmd.Flags().StringSliceVar(&queries, "query", nil, "Query sequences")
	cmd.MarkFlagsOneRequired("string", "reference")
	cmd.MarkFlagsMutuallyExclusive("string", "reference")

	return cmd
}
