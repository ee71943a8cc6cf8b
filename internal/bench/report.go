// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/pkg/errors"
)

// WriteTable prints rows as a padded table with time, memory and mean match
// length columns for every structure.
func WriteTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Label the first row.
	header := []string{"length"}
	for _, r := range rows[0].Results {
		header = append(header, r.Structure+" time", r.Structure+" mem", r.Structure+" match")
	}
	cells := [][]string{header}
	for _, row := range rows {
		line := []string{fmt.Sprint(row.Length)}
		for _, r := range row.Results {
			line = append(line,
				r.Time.String(),
				strconv.FormatPrefix(r.Bytes, strconv.Base1024, 2)+"B",
				fmt.Sprintf("%.2f", r.Match))
		}
		cells = append(cells, line)
	}

	// Compute the maximum lengths.
	maxLens := make([]int, len(header))
	for _, line := range cells {
		for i, s := range line {
			maxLens[i] = max(maxLens[i], len(s))
		}
	}

	var sb strings.Builder
	for _, line := range cells {
		for i, s := range line {
			if i == 0 {
				sb.WriteString(s + strings.Repeat(" ", maxLens[i]-len(s)))
				continue
			}
			sb.WriteString(strings.Repeat(" ", 2+maxLens[i]-len(s)) + s)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "bench: write table")
}

// WriteCSV writes one record per structure and reference length.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"length", "structure", "time_ns", "bytes", "mean_match"}); err != nil {
		return errors.Wrap(err, "bench: write csv")
	}
	for _, row := range rows {
		for _, r := range row.Results {
			rec := []string{
				fmt.Sprint(row.Length),
				r.Structure,
				fmt.Sprint(r.Time.Nanoseconds()),
				fmt.Sprintf("%.0f", r.Bytes),
				fmt.Sprintf("%.2f", r.Match),
			}
			if err := cw.Write(rec); err != nil {
				return errors.Wrap(err, "bench: write csv")
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "bench: write csv")
}
