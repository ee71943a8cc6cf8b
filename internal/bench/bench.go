// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bench measures build and search cost of the suffix indices over
// simulated reads.
package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nekitakamenev/suffixmatch"
	"github.com/nekitakamenev/suffixmatch/internal/config"
	"github.com/nekitakamenev/suffixmatch/internal/readsim"
)

// Measurement is the cost of a single call.
type Measurement struct {
	Elapsed time.Duration
	Bytes   uint64 // Heap bytes allocated
}

// Measure runs fn once and reports its wall time and allocations.
func Measure(fn func()) Measurement {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	return Measurement{elapsed, after.TotalAlloc - before.TotalAlloc}
}

// Structure builds one kind of index.
type Structure struct {
	Name  string
	Build func(text string) suffixmatch.Matcher
}

var structures = map[string]Structure{
	config.Trie: {config.Trie, func(text string) suffixmatch.Matcher {
		return suffixmatch.NewSuffixTrie(text)
	}},
	config.Tree: {config.Tree, func(text string) suffixmatch.Matcher {
		return suffixmatch.NewSuffixTree(text)
	}},
	config.Array: {config.Array, func(text string) suffixmatch.Matcher {
		return suffixmatch.NewSuffixArray(text)
	}},
}

// Structures resolves structure names in order.
func Structures(names ...string) ([]Structure, error) {
	out := make([]Structure, 0, len(names))
	for _, name := range names {
		s, ok := structures[name]
		if !ok {
			return nil, errors.Errorf("bench: unknown structure %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}

// Result is the amortized cost of one structure at one reference length:
// the build cost plus the mean cost of a search.
type Result struct {
	Structure string
	Time      time.Duration
	Bytes     float64
	Match     float64 // Mean match length
}

// Row holds the results for one reference length.
type Row struct {
	Length  int
	Results []Result
}

// Run benchmarks the configured structures on windows of reference. A nil
// logger disables logging.
func Run(ctx context.Context, logger *zap.Logger, reference string, cfg config.Simulation) ([]Row, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	structs, err := Structures(cfg.Structures...)
	if err != nil {
		return nil, err
	}
	sim := readsim.New(cfg.Seed)
	var rows []Row
	for _, length := range cfg.RefLengths.Lengths() {
		if length > len(reference) {
			return rows, errors.Errorf("bench: length %d exceeds reference of %d bytes", length, len(reference))
		}
		window := sim.Window(reference, length)
		reads := sim.Reads(window, cfg.ReadLength, cfg.Reads, cfg.ErrorRate)
		row := Row{Length: length}
		for _, s := range structs {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			r := measure(s, window, reads)
			logger.Debug("measured",
				zap.String("structure", s.Name),
				zap.Int("length", length),
				zap.Duration("time", r.Time),
				zap.Float64("bytes", r.Bytes),
				zap.Float64("match", r.Match))
			row.Results = append(row.Results, r)
		}
		rows = append(rows, row)
		logger.Info("reference length done", zap.Int("length", length))
	}
	return rows, nil
}

func measure(s Structure, text string, reads []string) Result {
	var idx suffixmatch.Matcher
	build := Measure(func() { idx = s.Build(text) })
	var (
		elapsed      time.Duration
		bytes, match float64
	)
	for _, read := range reads {
		var n int
		m := Measure(func() { n = idx.Search(read) })
		elapsed += m.Elapsed
		bytes += float64(m.Bytes)
		match += float64(n)
	}
	r := Result{Structure: s.Name, Time: build.Elapsed, Bytes: float64(build.Bytes)}
	if k := len(reads); k > 0 {
		r.Time += elapsed / time.Duration(k)
		r.Bytes += bytes / float64(k)
		r.Match = match / float64(k)
	}
	return r
}
