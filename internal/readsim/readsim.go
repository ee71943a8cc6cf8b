// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package readsim simulates sequencing reads with substitution errors.
package readsim

import (
	"math/rand"
	"slices"
)

// fallback substitutes bytes of a single-symbol reference.
const fallback = 'N'

// Simulator draws reads from a reference. It is not safe for concurrent use.
type Simulator struct {
	rng *rand.Rand
}

// New returns a Simulator with a deterministic seed.
func New(seed int64) *Simulator {
	return &Simulator{rand.New(rand.NewSource(seed))}
}

// Window returns a uniformly random substring of ref of the given length, or
// ref itself if it is not longer than length.
func (s *Simulator) Window(ref string, length int) string {
	if length >= len(ref) {
		return ref
	}
	if length <= 0 {
		return ""
	}
	start := s.rng.Intn(len(ref) - length + 1)
	return ref[start : start+length]
}

// Read returns a random window of ref in which every byte is independently
// replaced by a different symbol of ref's alphabet with probability errorRate.
func (s *Simulator) Read(ref string, length int, errorRate float64) string {
	return s.read(alphabet(ref), ref, length, errorRate)
}

// Reads returns count reads, see Read.
func (s *Simulator) Reads(ref string, length, count int, errorRate float64) []string {
	symbols := alphabet(ref)
	reads := make([]string, count)
	for i := range reads {
		reads[i] = s.read(symbols, ref, length, errorRate)
	}
	return reads
}

func (s *Simulator) read(symbols []byte, ref string, length int, errorRate float64) string {
	read := []byte(s.Window(ref, length))
	if errorRate <= 0 {
		return string(read)
	}
	for i, b := range read {
		if s.rng.Float64() < errorRate {
			read[i] = s.substitute(symbols, b)
		}
	}
	return string(read)
}

// substitute returns a symbol different from b.
func (s *Simulator) substitute(symbols []byte, b byte) byte {
	if len(symbols) < 2 {
		if b == fallback {
			return fallback + 1
		}
		return fallback
	}
	for {
		if c := symbols[s.rng.Intn(len(symbols))]; c != b {
			return c
		}
	}
}

// alphabet returns the distinct bytes of ref in ascending order.
func alphabet(ref string) []byte {
	var seen [256]bool
	var out []byte
	for i := 0; i < len(ref); i++ {
		if !seen[ref[i]] {
			seen[ref[i]] = true
			out = append(out, ref[i])
		}
	}
	slices.Sort(out)
	return out
}
