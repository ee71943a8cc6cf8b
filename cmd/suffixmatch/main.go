// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command suffixmatch builds suffix indices over a reference sequence, answers
// longest-match queries and benchmarks the three index kinds.
//
// Example usage:
//
//	$ suffixmatch tree --string banana --query nana,xnana
//	nana : 4
//	xnana : 4
//
//	$ suffixmatch simulate --reference chr1.fa --ref-length 1e3,1e4,1e3 --n-reads 5
package main

import (
	"context"
	"os"

	"github.com/nekitakamenev/suffixmatch/cmd/suffixmatch/command"
)

func main() {
	if err := command.NewCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
