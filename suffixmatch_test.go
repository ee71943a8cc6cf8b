package suffixmatch

import (
	"math/rand"
	"strings"
	"testing"
)

// genRandDNA returns a random text over ACGT.
func genRandDNA(rng *rand.Rand, size int) string {
	const alphabet = "ACGT"
	b := make([]byte, size)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// allStrings returns every string over alphabet with length in [1, maxLen].
func allStrings(alphabet string, maxLen int) []string {
	var out []string
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, s := range level {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, s+alphabet[i:i+1])
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// longestPrefixIn returns the length of the longest prefix of s occurring in text.
func longestPrefixIn(text, s string) int {
	for k := len(s); k > 0; k-- {
		if strings.Contains(text, s[:k]) {
			return k
		}
	}
	return 0
}

// treeSearch is the brute-force two-sided trim search.
func treeSearch(text, s string) int {
	var left, right int
	for k := 0; k < len(s); k++ {
		if strings.Contains(text, s[k:]) {
			left = len(s) - k
			break
		}
	}
	for k := len(s); k > 0; k-- {
		if strings.Contains(text, s[:k]) {
			right = k
			break
		}
	}
	return max(left, right)
}

// arraySearch is the brute-force left-trim search.
func arraySearch(text, s string) int {
	var best int
	for q := s; q != ""; q = q[1:] {
		l := longestPrefixIn(text, q)
		if l == len(q) {
			return l
		}
		best = max(best, l)
	}
	return best
}

func TestCommonPrefix(t *testing.T) {
	tests := map[string]struct {
		a, b string
		exp  int
	}{
		"both empty":    {"", "", 0},
		"one empty":     {"abc", "", 0},
		"equal":         {"abc", "abc", 3},
		"prefix":        {"ab", "abc", 2},
		"diverge":       {"abxd", "abyd", 2},
		"first differs": {"xbc", "abc", 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := commonPrefix(tc.a, tc.b); got != tc.exp {
				t.Errorf("commonPrefix(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.exp)
			}
		})
	}
}
