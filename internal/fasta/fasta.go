// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fasta reads reference sequences in FASTA format.
package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingHeader is returned when sequence data precedes the first '>' line.
	ErrMissingHeader = errors.New("fasta: sequence data before header")
	// ErrNoRecords is returned by First for input without records.
	ErrNoRecords = errors.New("fasta: no records")
)

// maxLineSize bounds a single input line. Unwrapped genomes can be long.
const maxLineSize = 1 << 26

// Record is a single FASTA entry.
type Record struct {
	Name        string
	Description string
	Seq         string
}

// Read parses all records from r.
func Read(r io.Reader) ([]Record, error) {
	var (
		records []Record
		seq     strings.Builder
		lineNo  int
	)
	flush := func() {
		if len(records) > 0 {
			records[len(records)-1].Seq = seq.String()
		}
		seq.Reset()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", line[0] == ';':
			continue
		case line[0] == '>':
			flush()
			name, desc, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
			records = append(records, Record{Name: name, Description: strings.TrimSpace(desc)})
		default:
			if len(records) == 0 {
				return nil, errors.Wrapf(ErrMissingHeader, "line %d", lineNo)
			}
			seq.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "fasta: reading line %d", lineNo+1)
	}
	flush()
	return records, nil
}

// ReadFile parses all records from the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "fasta: open")
	}
	defer f.Close()
	records, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return records, nil
}

// First returns the sequence of the first record in the file at path.
func First(path string) (string, error) {
	records, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errors.Wrap(ErrNoRecords, path)
	}
	return records[0].Seq, nil
}
