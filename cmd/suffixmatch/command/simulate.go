// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package command

import (
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nekitakamenev/suffixmatch/internal/bench"
	"github.com/nekitakamenev/suffixmatch/internal/config"
	"github.com/nekitakamenev/suffixmatch/internal/fasta"
)

// NewSimulateCommand returns the benchmark command.
func NewSimulateCommand(logger *zap.Logger) (cmd *cobra.Command) {
	var (
		path      string
		flagCfg   = config.Default()
		refLength string
	)

	cmd = &cobra.Command{
		Use:     "simulate",
		Short:   "Benchmark the indices on simulated reads",
		Example: "suffixmatch simulate --reference chr1.fa --ref-length 1e3,1e4,1e3 --n-reads 5 --error-rate 0.05",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("reference") {
				cfg.Reference = flagCfg.Reference
			}
			if flags.Changed("ref-length") {
				r, err := config.ParseRange(refLength)
				if err != nil {
					return err
				}
				cfg.RefLengths = r
			}
			if flags.Changed("n-reads") {
				cfg.Reads = flagCfg.Reads
			}
			if flags.Changed("error-rate") {
				cfg.ErrorRate = flagCfg.ErrorRate
			}
			if flags.Changed("n-size") {
				cfg.ReadLength = flagCfg.ReadLength
			}
			if flags.Changed("seed") {
				cfg.Seed = flagCfg.Seed
			}
			if flags.Changed("structures") {
				cfg.Structures = flagCfg.Structures
			}
			if flags.Changed("output") {
				cfg.Output = flagCfg.Output
			}
			if cfg.Reference == "" {
				return errors.New("simulate: no reference file")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reference, err := fasta.First(cfg.Reference)
			if err != nil {
				return err
			}
			logger.Info("reference loaded", zap.String("path", cfg.Reference), zap.Int("length", len(reference)))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			start := time.Now()
			rows, err := bench.Run(ctx, logger, reference, cfg)
			if err != nil {
				return err
			}
			logger.Info("simulation done", zap.Duration("runtime", time.Since(start)))

			if cfg.Output == config.OutputCSV {
				return bench.WriteCSV(cmd.OutOrStdout(), rows)
			}
			return bench.WriteTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "YAML simulation config")
	cmd.Flags().StringVar(&flagCfg.Reference, "reference", "", "Reference sequence file (FASTA)")
	cmd.Flags().StringVar(&refLength, "ref-length", "", "Reference lengths as min,max,step")
	cmd.Flags().IntVar(&flagCfg.Reads, "n-reads", flagCfg.Reads, "Number of reads to simulate")
	cmd.Flags().Float64Var(&flagCfg.ErrorRate, "error-rate", flagCfg.ErrorRate, "Substitution error rate of simulated reads")
	cmd.Flags().IntVar(&flagCfg.ReadLength, "n-size", flagCfg.ReadLength, "Length of simulated reads")
	cmd.Flags().Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "Random seed")
	cmd.Flags().StringSliceVar(&flagCfg.Structures, "structures", flagCfg.Structures, "Structures to benchmark")
	cmd.Flags().StringVar(&flagCfg.Output, "output", flagCfg.Output, "Output format (table, csv)")

	return cmd
}
