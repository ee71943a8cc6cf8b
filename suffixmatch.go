// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package suffixmatch indexes a reference text with a suffix trie, a compact
// suffix tree or a suffix array and reports longest-match lengths for
// possibly noisy probe strings.
//
// Text and probes are compared byte-wise. The reference must not contain the
// sentinel byte '$'.
package suffixmatch

// sentinel terminates every suffix of the indexed text. It sorts below every
// alphanumeric byte.
const sentinel = '$'

// Matcher is implemented by all three indices.
type Matcher interface {
	// Search returns the longest match length of probe against the index.
	Search(probe string) int
}

var (
	_ Matcher = (*SuffixTrie)(nil)
	_ Matcher = (*SuffixTree)(nil)
	_ Matcher = (*SuffixArray)(nil)
)

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
