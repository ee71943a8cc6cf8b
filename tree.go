// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixmatch

// treeNode is an edge-compressed node. label holds the bytes of the incoming
// edge; children maps the first byte of each outgoing edge to a node index.
type treeNode struct {
	label    string
	children map[byte]int
}

// SuffixTree is a compact trie of every suffix of a sentinel-terminated text.
// Nodes live in an append-only slice; node 0 is the root.
type SuffixTree struct {
	nodes []treeNode
}

// NewSuffixTree builds a suffix tree for text by inserting its suffixes one at
// a time. Returns nil for empty text.
func NewSuffixTree(text string) *SuffixTree {
	if text == "" {
		return nil
	}
	text += string(sentinel)
	t := &SuffixTree{nodes: make([]treeNode, 1, 2*len(text))}
	for i := 0; i < len(text); i++ {
		t.insert(text[i:])
	}
	return t
}

// Len returns the number of nodes, root included.
func (t *SuffixTree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// addNode appends a node and returns its index.
func (t *SuffixTree) addNode(label string, children map[byte]int) int {
	t.nodes = append(t.nodes, treeNode{label, children})
	return len(t.nodes) - 1
}

// link points the edge of parent keyed by b at child.
func (t *SuffixTree) link(parent int, b byte, child int) {
	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[byte]int)
	}
	t.nodes[parent].children[b] = child
}

// insert adds suf to the tree, splitting the first edge it diverges on.
func (t *SuffixTree) insert(suf string) {
	n := 0
	for i := 0; i < len(suf); {
		b := suf[i]
		child, ok := t.nodes[n].children[b]
		if !ok {
			t.link(n, b, t.addNode(suf[i:], nil))
			return
		}
		label := t.nodes[child].label
		j := commonPrefix(suf[i:], label)
		if j < len(label) {
			// Split the edge: the shared prefix becomes a new internal node
			// and the old child keeps the unmatched rest of its label.
			mid := t.addNode(label[:j], map[byte]int{label[j]: child})
			t.nodes[child].label = label[j:]
			t.link(n, b, mid)
			child = mid
		}
		i += j
		n = child
	}
}

// match returns the length of the longest prefix of p spelled by a path from
// the root.
func (t *SuffixTree) match(p string) int {
	n, pos := 0, 0
	for pos < len(p) {
		child, ok := t.nodes[n].children[p[pos]]
		if !ok {
			return pos
		}
		label := t.nodes[child].label
		j := commonPrefix(p[pos:], label)
		pos += j
		if j < len(label) {
			return pos
		}
		n = child
	}
	return pos
}

// Search returns the longer of the longest suffix of probe and the longest
// prefix of probe that occur in the text in full. The suffix is found by
// dropping leading bytes, the prefix by dropping trailing ones.
func (t *SuffixTree) Search(probe string) int {
	if t == nil || probe == "" {
		return 0
	}
	var best int
	for p := probe; p != ""; p = p[1:] {
		if t.match(p) == len(p) {
			best = len(p)
			break
		}
	}
	for p := probe; p != ""; p = p[:len(p)-1] {
		if t.match(p) == len(p) {
			if len(p) > best {
				return len(p)
			}
			return best
		}
	}
	return best
}
