// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package command implements the suffixmatch CLI.
package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nekitakamenev/suffixmatch"
)

// NewCommand returns the root command for the suffixmatch CLI.
func NewCommand() (cmd *cobra.Command) {
	var level string
	logger := zap.NewNop()

	cmd = &cobra.Command{
		Use:          "suffixmatch",
		Short:        "suffix trie, tree and array matching",
		Long:         `suffixmatch indexes a reference sequence and reports longest-match lengths of noisy query reads.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zapcore.ParseLevel(level)
			if err != nil {
				return errors.Wrap(err, "log level")
			}
			enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
			*logger = *zap.New(zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), lvl))
			return nil
		},
	}

	cmd.AddCommand(
		NewQueryCommand("trie", "Query a suffix trie", logger, func(text string) suffixmatch.Matcher {
			return suffixmatch.NewSuffixTrie(text)
		}),
		NewQueryCommand("tree", "Query a suffix tree", logger, func(text string) suffixmatch.Matcher {
			return suffixmatch.NewSuffixTree(text)
		}),
		NewQueryCommand("array", "Query a suffix array", logger, func(text string) suffixmatch.Matcher {
			return suffixmatch.NewSuffixArray(text)
		}),
		NewSimulateCommand(logger),
	)

	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
