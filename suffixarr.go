// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixmatch

import (
	"slices"
	"strings"
)

// SuffixArray holds a text and the start offsets of its suffixes in
// lexicographical order. The empty suffix at len(text) comes first.
type SuffixArray struct {
	text string
	sa   []int
}

// frame is a pending depth-first visit of a tree node.
type frame struct {
	node, depth int
}

// NewSuffixArray derives a suffix array for text from a transient suffix tree.
// Returns nil for empty text.
func NewSuffixArray(text string) *SuffixArray {
	tree := NewSuffixTree(text)
	if tree == nil {
		return nil
	}
	sa := make([]int, 0, len(text)+1)
	keys := make([]byte, 0, 8)
	stack := []frame{{0, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := tree.nodes[f.node]
		depth := f.depth + len(node.label)
		// Leaves are the only nodes whose label carries the sentinel; depth
		// is then the length of the suffix plus one.
		if strings.IndexByte(node.label, sentinel) >= 0 {
			sa = append(sa, len(text)+1-depth)
		}
		keys = keys[:0]
		for b := range node.children {
			keys = append(keys, b)
		}
		// Push in descending order so children pop in ascending order.
		slices.Sort(keys)
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{node.children[keys[i]], depth})
		}
	}
	// The traversal order is not trusted; sort by the suffixes themselves.
	slices.SortFunc(sa, func(a, b int) int {
		return strings.Compare(text[a:], text[b:])
	})
	return &SuffixArray{text, sa}
}

// Text returns the indexed text.
func (sa *SuffixArray) Text() string {
	if sa == nil {
		return ""
	}
	return sa.text
}

// Offsets returns a copy of the suffix start offsets in lexicographical order.
func (sa *SuffixArray) Offsets() []int {
	if sa == nil {
		return nil
	}
	return slices.Clone(sa.sa)
}

// lookup binary searches the array for q. It returns the longest common
// prefix seen between q and the probed suffixes, and whether q occurs in full.
func lookup(text string, sa []int, q string) (best int, found bool) {
	lo, hi := 0, len(sa)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		suf := text[sa[mid]:]
		l := commonPrefix(q, suf)
		best = max(best, l)
		if l == len(q) {
			return best, true
		}
		// q sorts before suf when they diverge on a smaller byte of q.
		if l < len(suf) && q[l] < suf[l] {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return best, false
}

// Search looks up probe and then each of its proper suffixes, dropping one
// leading byte at a time. It returns the length of the first one that occurs
// in full, or else the longest common prefix seen over all lookups.
func (sa *SuffixArray) Search(probe string) int {
	if sa == nil || len(sa.sa) == 0 || probe == "" {
		return 0
	}
	var best int
	for q := probe; q != ""; q = q[1:] {
		l, found := lookup(sa.text, sa.sa, q)
		if found {
			return len(q)
		}
		best = max(best, l)
	}
	return best
}
