package radix

import (
	"slices"

	"golang.org/x/exp/maps"
)

func newNode(label string) *node {
	return &node{label: label}
}

func newLeaf(label string) *node {
	n := newNode(label)
	n.terminal = true
	return n
}

func (n *node) findChild(c byte) *node {
	return n.children[c]
}

func (n *node) addChild(child *node) {
	if n.children == nil {
		n.children = make(map[byte]*node)
	}
	n.children[child.label[0]] = child
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// match returns the length of the common prefix of the node label and key.
func (n *node) match(key string) int {
	return longestCommonPrefix(n.label, key)
}

// split cuts the label after m bytes. The receiver keeps the tail, its
// terminal flag and its children; the returned node holds the head and has
// the receiver as its only child.
func (n *node) split(m int) *node {
	head := newNode(n.label[:m])
	n.label = n.label[m:]
	head.addChild(n)
	return head
}

// mergeChild collapses a non-terminal node with its only child.
func (n *node) mergeChild() {
	var child *node
	for _, c := range n.children {
		child = c
	}
	n.label += child.label
	n.terminal = child.terminal
	n.children = child.children
}

// sortedKeys lists child keys in ascending byte order.
func (n *node) sortedKeys() []byte {
	keys := maps.Keys(n.children)
	slices.Sort(keys)
	return keys
}

func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	c := newNode(n.label)
	c.terminal = n.terminal
	for _, child := range n.children {
		c.addChild(child.clone())
	}
	return c
}

func (n *node) equal(other *node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.label != other.label || n.terminal != other.terminal || len(n.children) != len(other.children) {
		return false
	}
	for k, child := range n.children {
		if !child.equal(other.children[k]) {
			return false
		}
	}
	return true
}

func longestCommonPrefix(a, b string) int {
	idx, limit := 0, min(len(a), len(b))
	for ; idx < limit; idx++ {
		if a[idx] != b[idx] {
			break
		}
	}
	return idx
}
