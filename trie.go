// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixmatch

// trieNode maps a byte to the subtrie reached through it.
type trieNode map[byte]trieNode

// SuffixTrie is an uncompressed trie of every suffix of a text.
type SuffixTrie struct {
	root trieNode
}

// NewSuffixTrie builds a suffix trie for text. Returns nil for empty text.
func NewSuffixTrie(text string) *SuffixTrie {
	if text == "" {
		return nil
	}
	root := trieNode{}
	for i := 0; i < len(text); i++ {
		curr := root
		for j := i; j < len(text); j++ {
			next, ok := curr[text[j]]
			if !ok {
				next = trieNode{}
				curr[text[j]] = next
			}
			curr = next
		}
		// Terminal marker.
		curr[sentinel] = trieNode{}
	}
	return &SuffixTrie{root}
}

// Search returns the length of the longest prefix of probe that occurs in the
// text.
func (t *SuffixTrie) Search(probe string) int {
	if t == nil || probe == "" {
		return 0
	}
	curr := t.root
	for i := 0; i < len(probe); i++ {
		next, ok := curr[probe[i]]
		if !ok {
			return i
		}
		curr = next
	}
	return len(probe)
}
